package config

import (
	"context"
	"crypto/tls"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the client backing the JSON API response cache.
// Supported variables are REDIS_ADDR (or REDIS_HOST + REDIS_PORT),
// REDIS_PASSWORD, REDIS_DB and REDIS_TLS. It returns nil when REDIS_ADDR and
// REDIS_HOST are both unset or the server does not answer a ping; callers
// then run without a cache.
func NewRedisClient() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	port := getEnv("REDIS_PORT", "6379")
	addr := os.Getenv("REDIS_ADDR")
	if host != "" {
		addr = host + ":" + port
	}
	if addr == "" {
		return nil
	}

	dbNum := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if n, err := strconv.Atoi(dbStr); err == nil {
			dbNum = n
		}
	}
	var tlsConf *tls.Config
	if tlsEnv := os.Getenv("REDIS_TLS"); strings.EqualFold(tlsEnv, "true") || tlsEnv == "1" {
		tlsConf = &tls.Config{ServerName: strings.Split(addr, ":")[0]}
	}

	client := redis.NewClient(&redis.Options{
		Addr:      addr,
		Password:  os.Getenv("REDIS_PASSWORD"),
		DB:        dbNum,
		TLSConfig: tlsConf,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}

package config

import (
	"strconv"
	"time"
)

// CacheConfig controls the Redis response cache in front of the JSON API.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

func LoadCacheConfig() CacheConfig {
	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "30s"))
	if err != nil {
		ttl = 30 * time.Second
	}
	maxBody, err := strconv.Atoi(getEnv("CACHE_MAX_BODY_BYTES", "1048576"))
	if err != nil {
		maxBody = 1 << 20
	}
	return CacheConfig{
		Enabled:      getEnv("CACHE_ENABLED", "true") == "true",
		TTL:          ttl,
		Prefix:       getEnv("CACHE_PREFIX", "fyyur"),
		MaxBodyBytes: maxBody,
	}
}

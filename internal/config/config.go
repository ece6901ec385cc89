// internal/config/config.go
package config

import (
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Environment        string
	DatabaseURL        string
	FlashSecret        string
	CORSAllowedOrigins []string
	Cache              CacheConfig
}

func Load() *Config {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to read .env: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		host := getEnv("PSQL_HOST", "localhost")
		port := getEnv("PSQL_PORT", "5432")
		user := getEnv("PSQL_USER", "postgres")
		password := getEnv("PSQL_PASSWORD", "postgres")
		dbName := getEnv("PSQL_DB_NAME", "fyyur")

		u := &url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, password),
			Host:   host + ":" + port,
			Path:   dbName,
		}
		q := u.Query()
		q.Set("sslmode", "disable")
		u.RawQuery = q.Encode()
		databaseURL = u.String()
	}

	return &Config{
		Port:               getEnv("PORT", "5000"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DatabaseURL:        databaseURL,
		FlashSecret:        getEnv("FLASH_SECRET", "dev-flash-secret"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		Cache:              LoadCacheConfig(),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyyur/internal/config"
	"fyyur/internal/db"
	"fyyur/internal/db/migrations"
	"fyyur/internal/render"
	"fyyur/internal/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Create database if it doesn't exist
	if err := db.CreateDatabaseIfNotExists(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to ensure database exists: %v", err)
	}

	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := migrations.RunMigrations(database.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Fatalf("Failed to configure S3: %v", err)
	}
	if !s3Config.Enabled() {
		log.Println("S3_BUCKET_NAME not set, image uploads disabled")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("Redis not configured or unreachable, API cache disabled")
	} else {
		defer rdb.Close()
	}

	views, err := render.New()
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	router := routes.SetupRoutes(database.DB, cfg, s3Config, rdb, views)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %s (%s)", cfg.Port, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give server 5 seconds to finish current requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

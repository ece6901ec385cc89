package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"fyyur/internal/config"
	"fyyur/internal/handlers"
	fyyurmw "fyyur/internal/middleware"
)

// RegisterAPIRoutes mounts the read-only JSON API. Responses may be served
// from Redis for up to the configured cache TTL.
func RegisterAPIRoutes(r chi.Router, cfg *config.Config, rdb *redis.Client, handler *handlers.APIHandler) {
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Cache"},
		MaxAge:         300,
	}))
	r.Use(fyyurmw.ResponseCache(cfg.Cache, rdb))

	r.Get("/venues", handler.ListVenues)
	r.Get("/venues/{id}", handler.GetVenue)
	r.Get("/artists", handler.ListArtists)
	r.Get("/artists/{id}", handler.GetArtist)
	r.Get("/shows", handler.ListShows)
}

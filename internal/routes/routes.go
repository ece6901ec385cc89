// internal/routes/routes.go
package routes

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"

	"fyyur/internal/config"
	"fyyur/internal/handlers"
	fyyurmw "fyyur/internal/middleware"
	"fyyur/internal/render"
	"fyyur/internal/repository"
)

// SetupRoutes wires the HTML site, the JSON API, Swagger and the health
// check onto one router. rdb may be nil, which disables the API cache.
func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config, rdb *redis.Client, views *render.Renderer) *chi.Mux {
	r := chi.NewRouter()

	venues := repository.NewVenueRepository(db)
	artists := repository.NewArtistRepository(db)
	shows := repository.NewShowRepository(db)

	flasher := fyyurmw.NewFlasher(cfg.FlashSecret)
	base := handlers.NewBaseHandler(views, flasher)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(recoverer(base))

	r.NotFound(base.NotFound)

	r.Get("/health", handlers.Health(db))
	RegisterSwaggerRoutes(r)

	r.Route("/api/v1", func(r chi.Router) {
		RegisterAPIRoutes(r, cfg, rdb, handlers.NewAPIHandler(venues, artists, shows))
	})

	r.Group(func(r chi.Router) {
		r.Use(flasher.Middleware)

		home := handlers.NewHomeHandler(base, venues, artists)
		images := handlers.NewImageHandler(base, venues, artists, s3Config)
		r.Get("/", home.Index)
		RegisterVenueRoutes(r, handlers.NewVenueHandler(base, venues, shows), images)
		RegisterArtistRoutes(r, handlers.NewArtistHandler(base, artists, shows), images)
		RegisterShowRoutes(r, handlers.NewShowHandler(base, shows))
	})

	return r
}

// recoverer turns a panic into the 500 page instead of an empty response.
func recoverer(base *handlers.BaseHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				log.Printf("Recovered panic serving %s %s: %v", r.Method, r.URL.Path, rvr)
				middleware.PrintPrettyStack(rvr)
				base.ServerError(w, r)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

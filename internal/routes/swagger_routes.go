package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "fyyur/docs"
)

const swaggerIndex = "/swagger/index.html"

// RegisterSwaggerRoutes serves the browsable docs for /api/v1. The venue,
// artist and show groups start expanded since the API is small.
func RegisterSwaggerRoutes(r chi.Router) {
	toIndex := func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, swaggerIndex, http.StatusMovedPermanently)
	}
	r.Get("/swagger", toIndex)
	r.Get("/swagger/", toIndex)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
}

package routes

import (
	"github.com/go-chi/chi/v5"

	"fyyur/internal/handlers"
)

func RegisterArtistRoutes(r chi.Router, handler *handlers.ArtistHandler, images *handlers.ImageHandler) {
	r.Route("/artists", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Post("/search", handler.Search)
		r.Get("/create", handler.CreateForm)
		r.Post("/create", handler.Create)
		r.Get("/{id}", handler.Show)
		r.Delete("/{id}", handler.Delete)
		r.Post("/{id}/delete", handler.Delete)
		r.Get("/{id}/edit", handler.EditForm)
		r.Post("/{id}/edit", handler.Edit)
		r.Post("/{id}/image", images.UploadArtistImage)
	})
}

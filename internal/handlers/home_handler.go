package handlers

import (
	"log"
	"net/http"

	"fyyur/internal/interfaces"
)

const recentListings = 10

type HomeHandler struct {
	*BaseHandler
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
}

func NewHomeHandler(base *BaseHandler, venues interfaces.VenueRepository, artists interfaces.ArtistRepository) *HomeHandler {
	return &HomeHandler{BaseHandler: base, venues: venues, artists: artists}
}

// Index renders the landing page with the most recently listed venues and
// artists.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	venues, err := h.venues.Recent(r.Context(), recentListings)
	if err != nil {
		log.Printf("Failed to load recent venues: %v", err)
		h.ServerError(w, r)
		return
	}
	artists, err := h.artists.Recent(r.Context(), recentListings)
	if err != nil {
		log.Printf("Failed to load recent artists: %v", err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "pages/home.html", "", homeView{Venues: venues, Artists: artists})
}

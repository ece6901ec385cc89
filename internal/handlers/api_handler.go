package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

// APIHandler exposes the read models as JSON under /api/v1.
type APIHandler struct {
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
	shows   interfaces.ShowRepository
	now     func() time.Time
}

func NewAPIHandler(venues interfaces.VenueRepository, artists interfaces.ArtistRepository, shows interfaces.ShowRepository) *APIHandler {
	return &APIHandler{
		venues:  venues,
		artists: artists,
		shows:   shows,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func apiID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// ListVenues godoc
// @Tags Venues
// @Summary List or search venues
// @Produce json
// @Param search_term query string false "Case-insensitive name substring"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} handlers.paginatedResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 500 {object} handlers.errorResponse
// @Router /api/v1/venues [get]
func (h *APIHandler) ListVenues(w http.ResponseWriter, r *http.Request) {
	p, err := parsePaginationParams(r, 20, 100)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_pagination", "invalid pagination: "+err.Error())
		return
	}

	result, err := h.venues.Search(r.Context(), r.URL.Query().Get("search_term"), h.now())
	if err != nil {
		log.Printf("Failed to list venues: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_venues_failed", "Failed to list venues")
		return
	}
	writePaginatedResponse(w, http.StatusOK, pageOf(result.Data, p), p.page, p.pageSize, result.Count)
}

// GetVenue godoc
// @Tags Venues
// @Summary Get a venue with its past and upcoming shows
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} handlers.VenueDetail
// @Failure 400 {object} handlers.errorResponse
// @Failure 404 {object} handlers.errorResponse
// @Failure 500 {object} handlers.errorResponse
// @Router /api/v1/venues/{id} [get]
func (h *APIHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := apiID(w, r)
	if !ok {
		return
	}
	venue, err := h.venues.GetByID(r.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")
		return
	}
	if err != nil {
		log.Printf("Failed to get venue %d: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_venue_failed", "Failed to get venue")
		return
	}
	shows, err := h.shows.ListByVenue(r.Context(), id)
	if err != nil {
		log.Printf("Failed to list shows for venue %d: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_venue_failed", "Failed to get venue")
		return
	}
	writeJSON(w, http.StatusOK, newVenueDetail(venue, shows, h.now()))
}

// ListArtists godoc
// @Tags Artists
// @Summary List or search artists
// @Produce json
// @Param search_term query string false "Case-insensitive name substring"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} handlers.paginatedResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 500 {object} handlers.errorResponse
// @Router /api/v1/artists [get]
func (h *APIHandler) ListArtists(w http.ResponseWriter, r *http.Request) {
	p, err := parsePaginationParams(r, 20, 100)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_pagination", "invalid pagination: "+err.Error())
		return
	}

	result, err := h.artists.Search(r.Context(), r.URL.Query().Get("search_term"), h.now())
	if err != nil {
		log.Printf("Failed to list artists: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_artists_failed", "Failed to list artists")
		return
	}
	writePaginatedResponse(w, http.StatusOK, pageOf(result.Data, p), p.page, p.pageSize, result.Count)
}

// GetArtist godoc
// @Tags Artists
// @Summary Get an artist with its past and upcoming shows
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} handlers.ArtistDetail
// @Failure 400 {object} handlers.errorResponse
// @Failure 404 {object} handlers.errorResponse
// @Failure 500 {object} handlers.errorResponse
// @Router /api/v1/artists/{id} [get]
func (h *APIHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := apiID(w, r)
	if !ok {
		return
	}
	artist, err := h.artists.GetByID(r.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Artist not found")
		return
	}
	if err != nil {
		log.Printf("Failed to get artist %d: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_artist_failed", "Failed to get artist")
		return
	}
	shows, err := h.shows.ListByArtist(r.Context(), id)
	if err != nil {
		log.Printf("Failed to list shows for artist %d: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "get_artist_failed", "Failed to get artist")
		return
	}
	writeJSON(w, http.StatusOK, newArtistDetail(artist, shows, h.now()))
}

// ListShows godoc
// @Tags Shows
// @Summary List shows ordered by start time
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 200)"
// @Success 200 {object} handlers.paginatedResponse
// @Failure 400 {object} handlers.errorResponse
// @Failure 500 {object} handlers.errorResponse
// @Router /api/v1/shows [get]
func (h *APIHandler) ListShows(w http.ResponseWriter, r *http.Request) {
	p, err := parsePaginationParams(r, 50, 200)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_pagination", "invalid pagination: "+err.Error())
		return
	}

	shows, err := h.shows.List(r.Context())
	if err != nil {
		log.Printf("Failed to list shows: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "list_shows_failed", "Failed to list shows")
		return
	}
	if shows == nil {
		shows = []models.ShowListing{}
	}
	writePaginatedResponse(w, http.StatusOK, pageOf(shows, p), p.page, p.pageSize, len(shows))
}

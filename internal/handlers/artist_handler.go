package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"fyyur/internal/interfaces"
	"fyyur/internal/middleware"
	"fyyur/internal/models"
)

type ArtistHandler struct {
	*BaseHandler
	artists interfaces.ArtistRepository
	shows   interfaces.ShowRepository
}

func NewArtistHandler(base *BaseHandler, artists interfaces.ArtistRepository, shows interfaces.ShowRepository) *ArtistHandler {
	return &ArtistHandler{BaseHandler: base, artists: artists, shows: shows}
}

func artistPath(id int) string { return "/artists/" + strconv.Itoa(id) }

// List renders every artist ordered by name.
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artists.List(r.Context(), h.now())
	if err != nil {
		log.Printf("Failed to list artists: %v", err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "pages/artists.html", "Artists", artists)
}

func (h *ArtistHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	result, err := h.artists.Search(r.Context(), term, h.now())
	if err != nil {
		log.Printf("Failed to search artists for %q: %v", term, err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "pages/search_artists.html", "Artist search", searchView[models.ArtistSummary]{
		SearchTerm: term,
		Count:      result.Count,
		Results:    result.Data,
	})
}

func (h *ArtistHandler) Show(w http.ResponseWriter, r *http.Request) {
	artist, ok := h.lookup(w, r)
	if !ok {
		return
	}
	shows, err := h.shows.ListByArtist(r.Context(), artist.ID)
	if err != nil {
		log.Printf("Failed to list shows for artist %d: %v", artist.ID, err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "pages/show_artist.html", artist.Name, newArtistDetail(artist, shows, h.now()))
}

func (h *ArtistHandler) lookup(w http.ResponseWriter, r *http.Request) (*models.Artist, bool) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return nil, false
	}
	artist, err := h.artists.GetByID(r.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		log.Printf("Failed to get artist %d: %v", id, err)
		h.ServerError(w, r)
		return nil, false
	}
	return artist, true
}

func (h *ArtistHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	view := newFormView("/artists/create", "/artists", "", &models.ArtistForm{}, nil)
	h.render(w, r, http.StatusOK, "forms/new_artist.html", "New artist", view)
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f models.ArtistForm
	errs, err := decodeForm(r, &f)
	if err != nil {
		log.Printf("Failed to read artist form: %v", err)
		h.render(w, r, http.StatusBadRequest, "forms/new_artist.html", "New artist",
			newFormView("/artists/create", "/artists", "", &f, fieldErrors{"Name": "The form could not be read."}))
		return
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/new_artist.html", "New artist",
			newFormView("/artists/create", "/artists", "", &f, errs))
		return
	}

	artist := &models.Artist{}
	f.Apply(artist)
	if err := h.artists.Create(r.Context(), artist); err != nil {
		log.Printf("Failed to create artist %q: %v", f.Name, err)
		h.redirectWithFlash(w, r, "/", middleware.FlashError, "An error occurred. Artist "+f.Name+" could not be listed.")
		return
	}
	h.redirectWithFlash(w, r, "/", middleware.FlashSuccess, "Artist "+artist.Name+" was successfully listed!")
}

func (h *ArtistHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	artist, ok := h.lookup(w, r)
	if !ok {
		return
	}
	action := artistPath(artist.ID) + "/edit"
	view := newFormView(action, artistPath(artist.ID), artist.Name, models.NewArtistForm(artist), nil)
	h.render(w, r, http.StatusOK, "forms/edit_artist.html", "Edit "+artist.Name, view)
}

func (h *ArtistHandler) Edit(w http.ResponseWriter, r *http.Request) {
	artist, ok := h.lookup(w, r)
	if !ok {
		return
	}
	action := artistPath(artist.ID) + "/edit"

	var f models.ArtistForm
	errs, err := decodeForm(r, &f)
	if err != nil {
		log.Printf("Failed to read artist form: %v", err)
		errs = fieldErrors{"Name": "The form could not be read."}
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/edit_artist.html", "Edit "+artist.Name,
			newFormView(action, artistPath(artist.ID), artist.Name, &f, errs))
		return
	}

	f.Apply(artist)
	err = h.artists.Update(r.Context(), artist)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		h.NotFound(w, r)
	case err != nil:
		log.Printf("Failed to update artist %d: %v", artist.ID, err)
		h.redirectWithFlash(w, r, artistPath(artist.ID), middleware.FlashError, "An error occurred. Artist "+f.Name+" could not be updated.")
	default:
		h.redirectWithFlash(w, r, artistPath(artist.ID), middleware.FlashSuccess, "Artist "+artist.Name+" was successfully updated!")
	}
}

// Delete removes the artist and, with it, every show it plays.
func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	artist, ok := h.lookup(w, r)
	if !ok {
		return
	}
	name := artist.Name

	err := h.artists.Delete(r.Context(), artist.ID)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		h.NotFound(w, r)
	case err != nil:
		log.Printf("Failed to delete artist %d: %v", artist.ID, err)
		h.redirectWithFlash(w, r, artistPath(artist.ID), middleware.FlashError, "An error occurred. Artist "+name+" could not be deleted.")
	default:
		h.redirectWithFlash(w, r, "/artists", middleware.FlashSuccess, "Artist "+name+" was successfully deleted.")
	}
}

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

type VenueHandler struct {
	*BaseHandler
	venues interfaces.VenueRepository
	shows  interfaces.ShowRepository
}

func NewVenueHandler(base *BaseHandler, venues interfaces.VenueRepository, shows interfaces.ShowRepository) *VenueHandler {
	return &VenueHandler{BaseHandler: base, venues: venues, shows: shows}
}

func venuePath(id int) string { return "/venues/" + strconv.Itoa(id) }

// List renders every venue grouped by city and state.
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	venues, err := h.venues.List(r.Context(), h.now())
	if err != nil {
		log.Printf("Failed to list venues: %v", err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "pages/venues.html", "Venues", groupByArea(venues))
}

func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.FormValue("search_term")
	result, err := h.venues.Search(r.Context(), term, h.now())
	if err != nil {
		log.Printf("Failed to search venues for %q: %v", term, err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "pages/search_venues.html", "Venue search", searchView[models.VenueSummary]{
		SearchTerm: term,
		Count:      result.Count,
		Results:    result.Data,
	})
}

// Show renders one venue with its past and upcoming shows.
func (h *VenueHandler) Show(w http.ResponseWriter, r *http.Request) {
	venue, ok := h.lookup(w, r)
	if !ok {
		return
	}
	shows, err := h.shows.ListByVenue(r.Context(), venue.ID)
	if err != nil {
		log.Printf("Failed to list shows for venue %d: %v", venue.ID, err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "pages/show_venue.html", venue.Name, newVenueDetail(venue, shows, h.now()))
}

// lookup loads the venue named by {id}, answering 404 or 500 itself when it
// cannot.
func (h *VenueHandler) lookup(w http.ResponseWriter, r *http.Request) (*models.Venue, bool) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return nil, false
	}
	venue, err := h.venues.GetByID(r.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		log.Printf("Failed to get venue %d: %v", id, err)
		h.ServerError(w, r)
		return nil, false
	}
	return venue, true
}

func (h *VenueHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	view := newFormView("/venues/create", "/venues", "", &models.VenueForm{}, nil)
	h.render(w, r, http.StatusOK, "forms/new_venue.html", "New venue", view)
}

func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f models.VenueForm
	errs, err := decodeForm(r, &f)
	if err != nil {
		log.Printf("Failed to read venue form: %v", err)
		h.render(w, r, http.StatusBadRequest, "forms/new_venue.html", "New venue",
			newFormView("/venues/create", "/venues", "", &f, fieldErrors{"Name": "The form could not be read."}))
		return
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/new_venue.html", "New venue",
			newFormView("/venues/create", "/venues", "", &f, errs))
		return
	}

	venue := &models.Venue{}
	f.Apply(venue)
	if err := h.venues.Create(r.Context(), venue); err != nil {
		log.Printf("Failed to create venue %q: %v", f.Name, err)
		h.redirectWithFlash(w, r, "/", middleware.FlashError, "An error occurred. Venue "+f.Name+" could not be listed.")
		return
	}
	h.redirectWithFlash(w, r, "/", middleware.FlashSuccess, "Venue "+venue.Name+" was successfully listed!")
}

func (h *VenueHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	venue, ok := h.lookup(w, r)
	if !ok {
		return
	}
	action := venuePath(venue.ID) + "/edit"
	view := newFormView(action, venuePath(venue.ID), venue.Name, models.NewVenueForm(venue), nil)
	h.render(w, r, http.StatusOK, "forms/edit_venue.html", "Edit "+venue.Name, view)
}

// Edit overwrites every mutable field of the venue with the submitted form.
func (h *VenueHandler) Edit(w http.ResponseWriter, r *http.Request) {
	venue, ok := h.lookup(w, r)
	if !ok {
		return
	}
	action := venuePath(venue.ID) + "/edit"

	var f models.VenueForm
	errs, err := decodeForm(r, &f)
	if err != nil {
		log.Printf("Failed to read venue form: %v", err)
		errs = fieldErrors{"Name": "The form could not be read."}
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/edit_venue.html", "Edit "+venue.Name,
			newFormView(action, venuePath(venue.ID), venue.Name, &f, errs))
		return
	}

	f.Apply(venue)
	err = h.venues.Update(r.Context(), venue)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		h.NotFound(w, r)
	case err != nil:
		log.Printf("Failed to update venue %d: %v", venue.ID, err)
		h.redirectWithFlash(w, r, venuePath(venue.ID), middleware.FlashError, "An error occurred. Venue "+f.Name+" could not be updated.")
	default:
		h.redirectWithFlash(w, r, venuePath(venue.ID), middleware.FlashSuccess, "Venue "+venue.Name+" was successfully updated!")
	}
}

// Delete removes the venue and its shows. The name for the flash message is
// read before deleting so it is available on both outcomes.
func (h *VenueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	venue, ok := h.lookup(w, r)
	if !ok {
		return
	}
	name := venue.Name

	err := h.venues.Delete(r.Context(), venue.ID)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		h.NotFound(w, r)
	case err != nil:
		log.Printf("Failed to delete venue %d: %v", venue.ID, err)
		h.redirectWithFlash(w, r, venuePath(venue.ID), middleware.FlashError, "An error occurred. Venue "+name+" could not be deleted.")
	default:
		h.redirectWithFlash(w, r, "/venues", middleware.FlashSuccess, "Venue "+name+" was successfully deleted.")
	}
}

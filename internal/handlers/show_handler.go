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

type ShowHandler struct {
	*BaseHandler
	shows interfaces.ShowRepository
}

func NewShowHandler(base *BaseHandler, shows interfaces.ShowRepository) *ShowHandler {
	return &ShowHandler{BaseHandler: base, shows: shows}
}

func (h *ShowHandler) List(w http.ResponseWriter, r *http.Request) {
	shows, err := h.shows.List(r.Context())
	if err != nil {
		log.Printf("Failed to list shows: %v", err)
		h.ServerError(w, r)
		return
	}
	h.render(w, r, http.StatusOK, "pages/shows.html", "Shows", shows)
}

func (h *ShowHandler) CreateForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "forms/new_show.html", "New show",
		newFormView("/shows/create", "/shows", "", &models.ShowForm{}, nil))
}

// Create books a show. A venue or artist id that does not exist is reported
// as a failed listing, not a validation error, since only the store knows.
func (h *ShowHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f models.ShowForm
	errs, err := decodeForm(r, &f)
	if err != nil {
		log.Printf("Failed to read show form: %v", err)
		errs = fieldErrors{"StartTime": "The form could not be read."}
	}
	if len(errs) > 0 {
		h.render(w, r, http.StatusBadRequest, "forms/new_show.html", "New show",
			newFormView("/shows/create", "/shows", "", &f, errs))
		return
	}

	show := &models.Show{ArtistID: f.ArtistID, VenueID: f.VenueID, StartTime: f.StartTime.UTC()}
	if err := h.shows.Create(r.Context(), show); err != nil {
		msg := "An error occurred. Show could not be listed."
		var refErr *interfaces.InvalidReferenceError
		if errors.As(err, &refErr) {
			log.Printf("Rejected show: %v", refErr)
			switch refErr.Field {
			case "venue_id":
				msg += " No venue has id " + strconv.Itoa(f.VenueID) + "."
			case "artist_id":
				msg += " No artist has id " + strconv.Itoa(f.ArtistID) + "."
			}
		} else {
			log.Printf("Failed to create show: %v", err)
		}
		h.redirectWithFlash(w, r, "/shows/create", middleware.FlashError, msg)
		return
	}
	h.redirectWithFlash(w, r, "/", middleware.FlashSuccess, "Show was successfully listed!")
}

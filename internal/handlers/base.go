// internal/handlers/base.go
package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fyyur/internal/middleware"
	"fyyur/internal/render"
)

// BaseHandler carries what every HTML handler needs: the template set, the
// flash cookie signer and the clock used to split past from upcoming shows.
type BaseHandler struct {
	views   *render.Renderer
	flasher *middleware.Flasher
	now     func() time.Time
}

func NewBaseHandler(views *render.Renderer, flasher *middleware.Flasher) *BaseHandler {
	return &BaseHandler{
		views:   views,
		flasher: flasher,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *BaseHandler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any) {
	h.views.HTML(w, status, name, render.Page{
		Title:   title,
		Flashes: middleware.Flashes(r.Context()),
		Data:    data,
	})
}

// NotFound renders the 404 page. It doubles as the router's NotFound handler.
func (h *BaseHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "errors/404.html", "Not Found", nil)
}

func (h *BaseHandler) ServerError(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusInternalServerError, "errors/500.html", "Server Error", nil)
}

// redirectWithFlash queues a message for the next page and answers 303 so
// the browser follows up with a GET.
func (h *BaseHandler) redirectWithFlash(w http.ResponseWriter, r *http.Request, url, kind, text string) {
	if err := h.flasher.Add(w, middleware.FlashMessage{Kind: kind, Text: text}); err != nil {
		log.Printf("Failed to set flash message: %v", err)
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// pathID parses the {id} URL parameter. Non-numeric ids are reported as
// not found, the same as a missing row.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

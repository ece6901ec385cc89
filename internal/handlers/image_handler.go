package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"fyyur/internal/config"
	"fyyur/internal/interfaces"
	"fyyur/internal/middleware"
)

const maxImageBytes = 10 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// objectUploader is the slice of manager.Uploader the handler uses.
type objectUploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// ImageHandler stores venue and artist pictures in S3 and points the
// record's image_link at the public object URL.
type ImageHandler struct {
	*BaseHandler
	venues        interfaces.VenueRepository
	artists       interfaces.ArtistRepository
	uploader      objectUploader
	bucket        string
	publicBaseURL string
}

func NewImageHandler(base *BaseHandler, venues interfaces.VenueRepository, artists interfaces.ArtistRepository, s3Config *config.S3Config) *ImageHandler {
	h := &ImageHandler{BaseHandler: base, venues: venues, artists: artists}
	if s3Config.Enabled() {
		h.uploader = manager.NewUploader(s3Config.Client)
		h.bucket = s3Config.Bucket
		h.publicBaseURL = s3Config.PublicBaseURL
	}
	return h
}

func (h *ImageHandler) UploadVenueImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	venue, err := h.venues.GetByID(r.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("Failed to get venue %d: %v", id, err)
		h.ServerError(w, r)
		return
	}
	h.upload(w, r, "venues", venuePath(id), "Venue "+venue.Name, func(ctx context.Context, link string) error {
		return h.venues.SetImageLink(ctx, id, link)
	})
}

func (h *ImageHandler) UploadArtistImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.NotFound(w, r)
		return
	}
	artist, err := h.artists.GetByID(r.Context(), id)
	if errors.Is(err, interfaces.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("Failed to get artist %d: %v", id, err)
		h.ServerError(w, r)
		return
	}
	h.upload(w, r, "artists", artistPath(id), "Artist "+artist.Name, func(ctx context.Context, link string) error {
		return h.artists.SetImageLink(ctx, id, link)
	})
}

func (h *ImageHandler) upload(w http.ResponseWriter, r *http.Request, prefix, back, label string, setLink func(context.Context, string) error) {
	if h.uploader == nil {
		h.redirectWithFlash(w, r, back, middleware.FlashError, "Image uploads are not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes+1<<20)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		h.redirectWithFlash(w, r, back, middleware.FlashError, "The image could not be read. Images must be under 10 MB.")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		h.redirectWithFlash(w, r, back, middleware.FlashError, "Choose an image to upload.")
		return
	}
	defer file.Close()

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		h.redirectWithFlash(w, r, back, middleware.FlashError, "The image could not be read.")
		return
	}
	contentType := http.DetectContentType(sniff[:n])
	ext, ok := imageExtensions[contentType]
	if !ok {
		h.redirectWithFlash(w, r, back, middleware.FlashError, "Only JPEG, PNG, GIF and WebP images are accepted.")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		log.Printf("Failed to rewind upload: %v", err)
		h.ServerError(w, r)
		return
	}

	key := path.Join(prefix, uuid.New().String()+ext)
	if _, err := h.uploader.Upload(r.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	}); err != nil {
		log.Printf("Failed to upload %s to S3: %v", key, err)
		h.redirectWithFlash(w, r, back, middleware.FlashError, "An error occurred. "+label+" image could not be uploaded.")
		return
	}

	link := strings.TrimRight(h.publicBaseURL, "/") + "/" + key
	if err := setLink(r.Context(), link); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		log.Printf("Failed to save image link %s: %v", link, err)
		h.redirectWithFlash(w, r, back, middleware.FlashError, "An error occurred. "+label+" image could not be uploaded.")
		return
	}
	h.redirectWithFlash(w, r, back, middleware.FlashSuccess, label+" image was successfully uploaded!")
}

package interfaces

import (
	"context"
	"time"

	"fyyur/internal/models"
)

// ArtistRepository defines the interface for artist data operations
type ArtistRepository interface {
	List(ctx context.Context, now time.Time) ([]models.ArtistSummary, error)
	Search(ctx context.Context, term string, now time.Time) (*models.SearchResult[models.ArtistSummary], error)
	Recent(ctx context.Context, limit int) ([]models.Artist, error)
	GetByID(ctx context.Context, id int) (*models.Artist, error)
	Create(ctx context.Context, artist *models.Artist) error
	Update(ctx context.Context, artist *models.Artist) error
	SetImageLink(ctx context.Context, id int, link string) error
	Delete(ctx context.Context, id int) error
}

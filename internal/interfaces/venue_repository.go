package interfaces

import (
	"context"
	"time"

	"fyyur/internal/models"
)

// VenueRepository defines the interface for venue data operations
type VenueRepository interface {
	List(ctx context.Context, now time.Time) ([]models.VenueSummary, error)
	Search(ctx context.Context, term string, now time.Time) (*models.SearchResult[models.VenueSummary], error)
	Recent(ctx context.Context, limit int) ([]models.Venue, error)
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	Create(ctx context.Context, venue *models.Venue) error
	Update(ctx context.Context, venue *models.Venue) error
	SetImageLink(ctx context.Context, id int, link string) error
	Delete(ctx context.Context, id int) error
}

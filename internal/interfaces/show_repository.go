package interfaces

import (
	"context"

	"fyyur/internal/models"
)

// ShowRepository defines the interface for show data operations. Shows are
// only created directly; they disappear with their venue or artist.
type ShowRepository interface {
	List(ctx context.Context) ([]models.ShowListing, error)
	ListByVenue(ctx context.Context, venueID int) ([]models.ShowListing, error)
	ListByArtist(ctx context.Context, artistID int) ([]models.ShowListing, error)
	Create(ctx context.Context, show *models.Show) error
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

// foreignKeyViolation is the PostgreSQL SQLSTATE for a failed FK check.
const foreignKeyViolation = "23503"

type showRepository struct {
	db *sql.DB
}

func NewShowRepository(db *sql.DB) interfaces.ShowRepository {
	return &showRepository{db: db}
}

const showListingQuery = `
	SELECT s.id, s.venue_id, v.name, v.image_link,
		s.artist_id, a.name, a.image_link, s.start_time
	FROM shows s
	JOIN venue v ON v.id = s.venue_id
	JOIN artist a ON a.id = s.artist_id
`

func (r *showRepository) List(ctx context.Context) ([]models.ShowListing, error) {
	return r.queryListings(ctx, showListingQuery+` ORDER BY s.start_time, s.id`)
}

func (r *showRepository) ListByVenue(ctx context.Context, venueID int) ([]models.ShowListing, error) {
	return r.queryListings(ctx, showListingQuery+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *showRepository) ListByArtist(ctx context.Context, artistID int) ([]models.ShowListing, error) {
	return r.queryListings(ctx, showListingQuery+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *showRepository) queryListings(ctx context.Context, query string, args ...any) ([]models.ShowListing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing shows: %v", err)
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	shows := []models.ShowListing{}
	for rows.Next() {
		var s models.ShowListing
		if err := rows.Scan(
			&s.ID,
			&s.VenueID,
			&s.VenueName,
			&s.VenueImageLink,
			&s.ArtistID,
			&s.ArtistName,
			&s.ArtistImageLink,
			&s.StartTime,
		); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		s.StartTime = s.StartTime.UTC()
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return shows, nil
}

// Create inserts the show. A missing venue or artist yields an
// *interfaces.InvalidReferenceError.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	show.StartTime = show.StartTime.UTC()
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == foreignKeyViolation {
			return &interfaces.InvalidReferenceError{Resource: "show", Field: referenceField(pqErr.Constraint)}
		}
		log.Printf("Error creating show: %v", err)
		return fmt.Errorf("create show: %w", err)
	}
	return nil
}

func referenceField(constraint string) string {
	switch constraint {
	case "shows_venue_id_fkey":
		return "venue_id"
	case "shows_artist_id_fkey":
		return "artist_id"
	default:
		return ""
	}
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

type venueRepository struct {
	db *sql.DB
}

func NewVenueRepository(db *sql.DB) interfaces.VenueRepository {
	return &venueRepository{db: db}
}

const venueColumns = `id, name, city, state, address, phone, genres, image_link,
	facebook_link, website, seeking_talent, seeking_description, created_at`

const venueSummaryQuery = `
	SELECT v.id, v.name, v.city, v.state,
		COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
	FROM venue v
	LEFT JOIN shows s ON s.venue_id = v.id
`

func scanVenue(row interface{ Scan(...any) error }, venue *models.Venue) error {
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		pq.Array(&venue.Genres),
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.Website,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
		&venue.CreatedAt,
	)
	if err != nil {
		return err
	}
	venue.CreatedAt = venue.CreatedAt.UTC()
	return nil
}

// List returns every venue ordered by city, with its upcoming show count
// relative to now.
func (r *venueRepository) List(ctx context.Context, now time.Time) ([]models.VenueSummary, error) {
	query := venueSummaryQuery + `
	GROUP BY v.id
	ORDER BY v.city, v.state, v.name`

	return r.querySummaries(ctx, query, now.UTC())
}

func (r *venueRepository) Search(ctx context.Context, term string, now time.Time) (*models.SearchResult[models.VenueSummary], error) {
	query := venueSummaryQuery + `
	WHERE v.name ILIKE $2
	GROUP BY v.id
	ORDER BY v.name`

	venues, err := r.querySummaries(ctx, query, now.UTC(), containsPattern(term))
	if err != nil {
		return nil, err
	}
	return &models.SearchResult[models.VenueSummary]{Count: len(venues), Data: venues}, nil
}

func (r *venueRepository) querySummaries(ctx context.Context, query string, args ...any) ([]models.VenueSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing venues: %v", err)
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()

	venues := []models.VenueSummary{}
	for rows.Next() {
		var v models.VenueSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.State, &v.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return venues, nil
}

// Recent returns the most recently listed venues.
func (r *venueRepository) Recent(ctx context.Context, limit int) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venue ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent venues: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var v models.Venue
		if err := scanVenue(rows, &v); err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venue WHERE id = $1`

	var venue models.Venue
	if err := scanVenue(r.db.QueryRowContext(ctx, query, id), &venue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}
	return &venue, nil
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venue (
			name, city, state, address, phone, genres, image_link,
			facebook_link, website, seeking_talent, seeking_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(
			ctx,
			query,
			venue.Name,
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			pq.Array(nonNil(venue.Genres)),
			venue.ImageLink,
			venue.FacebookLink,
			venue.Website,
			venue.SeekingTalent,
			venue.SeekingDescription,
		).Scan(&venue.ID, &venue.CreatedAt)
	})
	if err != nil {
		log.Printf("Error creating venue: %v", err)
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of the venue with venue.ID.
func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	query := `
		UPDATE venue
		SET name = $1,
			city = $2,
			state = $3,
			address = $4,
			phone = $5,
			genres = $6,
			image_link = $7,
			facebook_link = $8,
			website = $9,
			seeking_talent = $10,
			seeking_description = $11
		WHERE id = $12
	`

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(
			ctx,
			query,
			venue.Name,
			venue.City,
			venue.State,
			venue.Address,
			venue.Phone,
			pq.Array(nonNil(venue.Genres)),
			venue.ImageLink,
			venue.FacebookLink,
			venue.Website,
			venue.SeekingTalent,
			venue.SeekingDescription,
			venue.ID,
		)
		if err != nil {
			return err
		}
		return requireRow(result)
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return err
		}
		log.Printf("Error updating venue %d: %v", venue.ID, err)
		return fmt.Errorf("update venue: %w", err)
	}
	return nil
}

func (r *venueRepository) SetImageLink(ctx context.Context, id int, link string) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `UPDATE venue SET image_link = $1 WHERE id = $2`, link, id)
		if err != nil {
			return err
		}
		return requireRow(result)
	})
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return fmt.Errorf("set venue image: %w", err)
	}
	return err
}

// Delete removes the venue and its shows in one transaction.
func (r *venueRepository) Delete(ctx context.Context, id int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE venue_id = $1`, id); err != nil {
			return fmt.Errorf("delete venue shows: %w", err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM venue WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireRow(result)
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return err
		}
		log.Printf("Error deleting venue %d: %v", id, err)
		return fmt.Errorf("delete venue: %w", err)
	}
	return nil
}

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

type artistRepository struct {
	db *sql.DB
}

func NewArtistRepository(db *sql.DB) interfaces.ArtistRepository {
	return &artistRepository{db: db}
}

const artistColumns = `id, name, city, state, phone, genres, image_link,
	facebook_link, website, seeking_venue, seeking_description, created_at`

const artistSummaryQuery = `
	SELECT a.id, a.name,
		COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
	FROM artist a
	LEFT JOIN shows s ON s.artist_id = a.id
`

func scanArtist(row interface{ Scan(...any) error }, artist *models.Artist) error {
	err := row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		pq.Array(&artist.Genres),
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.Website,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.CreatedAt,
	)
	if err != nil {
		return err
	}
	artist.CreatedAt = artist.CreatedAt.UTC()
	return nil
}

func (r *artistRepository) List(ctx context.Context, now time.Time) ([]models.ArtistSummary, error) {
	query := artistSummaryQuery + `
	GROUP BY a.id
	ORDER BY a.name`

	return r.querySummaries(ctx, query, now.UTC())
}

func (r *artistRepository) Search(ctx context.Context, term string, now time.Time) (*models.SearchResult[models.ArtistSummary], error) {
	query := artistSummaryQuery + `
	WHERE a.name ILIKE $2
	GROUP BY a.id
	ORDER BY a.name`

	artists, err := r.querySummaries(ctx, query, now.UTC(), containsPattern(term))
	if err != nil {
		return nil, err
	}
	return &models.SearchResult[models.ArtistSummary]{Count: len(artists), Data: artists}, nil
}

func (r *artistRepository) querySummaries(ctx context.Context, query string, args ...any) ([]models.ArtistSummary, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing artists: %v", err)
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := []models.ArtistSummary{}
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.ID, &a.Name, &a.NumUpcomingShows); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}

func (r *artistRepository) Recent(ctx context.Context, limit int) ([]models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artist ORDER BY created_at DESC, id DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var a models.Artist
		if err := scanArtist(rows, &a); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artist WHERE id = $1`

	var artist models.Artist
	if err := scanArtist(r.db.QueryRowContext(ctx, query, id), &artist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}
	return &artist, nil
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	query := `
		INSERT INTO artist (
			name, city, state, phone, genres, image_link,
			facebook_link, website, seeking_venue, seeking_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		return tx.QueryRowContext(
			ctx,
			query,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			pq.Array(nonNil(artist.Genres)),
			artist.ImageLink,
			artist.FacebookLink,
			artist.Website,
			artist.SeekingVenue,
			artist.SeekingDescription,
		).Scan(&artist.ID, &artist.CreatedAt)
	})
	if err != nil {
		log.Printf("Error creating artist: %v", err)
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	query := `
		UPDATE artist
		SET name = $1,
			city = $2,
			state = $3,
			phone = $4,
			genres = $5,
			image_link = $6,
			facebook_link = $7,
			website = $8,
			seeking_venue = $9,
			seeking_description = $10
		WHERE id = $11
	`

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(
			ctx,
			query,
			artist.Name,
			artist.City,
			artist.State,
			artist.Phone,
			pq.Array(nonNil(artist.Genres)),
			artist.ImageLink,
			artist.FacebookLink,
			artist.Website,
			artist.SeekingVenue,
			artist.SeekingDescription,
			artist.ID,
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
		log.Printf("Error updating artist %d: %v", artist.ID, err)
		return fmt.Errorf("update artist: %w", err)
	}
	return nil
}

func (r *artistRepository) SetImageLink(ctx context.Context, id int, link string) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `UPDATE artist SET image_link = $1 WHERE id = $2`, link, id)
		if err != nil {
			return err
		}
		return requireRow(result)
	})
	if err != nil && !errors.Is(err, interfaces.ErrNotFound) {
		return fmt.Errorf("set artist image: %w", err)
	}
	return err
}

// Delete removes the artist and its shows in one transaction.
func (r *artistRepository) Delete(ctx context.Context, id int) error {
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM shows WHERE artist_id = $1`, id); err != nil {
			return fmt.Errorf("delete artist shows: %w", err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM artist WHERE id = $1`, id)
		if err != nil {
			return err
		}
		return requireRow(result)
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return err
		}
		log.Printf("Error deleting artist %d: %v", id, err)
		return fmt.Errorf("delete artist: %w", err)
	}
	return nil
}

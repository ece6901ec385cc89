package models

import "time"

type Show struct {
	ID        int       `json:"id"`
	VenueID   int       `json:"venue_id"`
	ArtistID  int       `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowListing is a show joined with the names of both sides.
type ShowListing struct {
	ID              int       `json:"id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type ShowForm struct {
	ArtistID  int       `form:"artist_id" validate:"required,gt=0"`
	VenueID   int       `form:"venue_id" validate:"required,gt=0"`
	StartTime time.Time `form:"start_time" validate:"required"`
}

package models

import "time"

type Artist struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

type ArtistForm struct {
	Name               string   `form:"name" validate:"required"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,us_state"`
	Phone              string   `form:"phone" validate:"omitempty,max=120"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"omitempty,max=240"`
}

func (f *ArtistForm) Apply(a *Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = f.Genres
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.Website = f.Website
	a.SeekingVenue = f.SeekingVenue
	a.SeekingDescription = f.SeekingDescription
}

func NewArtistForm(a *Artist) *ArtistForm {
	return &ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ArtistSummary is a list row: an artist plus its upcoming show count.
type ArtistSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

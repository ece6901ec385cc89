package models

import "time"

type Venue struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	Website            string    `json:"website"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

// VenueSummary is a list row: a venue plus its upcoming show count.
type VenueSummary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city"`
	State            string `json:"state"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups venues that share a city and state.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

// VenueForm is the create/edit form for a venue.
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,us_state"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,max=120"`
	Genres             []string `form:"genres" validate:"required,min=1,dive,genre"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"omitempty,max=240"`
}

// Apply copies the form into v, overwriting every mutable field.
func (f *VenueForm) Apply(v *Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.Genres = f.Genres
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.Website = f.Website
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}

func NewVenueForm(v *Venue) *VenueForm {
	return &VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

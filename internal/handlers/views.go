package handlers

import (
	"time"

	"fyyur/internal/models"
)

type homeView struct {
	Venues  []models.Venue
	Artists []models.Artist
}

type searchView[T any] struct {
	SearchTerm string
	Count      int
	Results    []T
}

// formView backs every create/edit form. Name is the current name of the
// record being edited, empty on create.
type formView struct {
	Action string
	Cancel string
	Name   string
	Form   any
	Errors fieldErrors
	States []string
	Genres []string
}

func newFormView(action, cancel, name string, f any, errs fieldErrors) formView {
	return formView{
		Action: action,
		Cancel: cancel,
		Name:   name,
		Form:   f,
		Errors: errs,
		States: models.States,
		Genres: models.Genres,
	}
}

// VenueDetail is a venue with its shows split at the time of the request.
type VenueDetail struct {
	*models.Venue
	PastShows          []models.ShowListing `json:"past_shows"`
	UpcomingShows      []models.ShowListing `json:"upcoming_shows"`
	PastShowsCount     int                  `json:"past_shows_count"`
	UpcomingShowsCount int                  `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	*models.Artist
	PastShows          []models.ShowListing `json:"past_shows"`
	UpcomingShows      []models.ShowListing `json:"upcoming_shows"`
	PastShowsCount     int                  `json:"past_shows_count"`
	UpcomingShowsCount int                  `json:"upcoming_shows_count"`
}

func newVenueDetail(v *models.Venue, shows []models.ShowListing, now time.Time) VenueDetail {
	past, upcoming := partitionShows(shows, now)
	return VenueDetail{
		Venue:              v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func newArtistDetail(a *models.Artist, shows []models.ShowListing, now time.Time) ArtistDetail {
	past, upcoming := partitionShows(shows, now)
	return ArtistDetail{
		Artist:             a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

// partitionShows splits shows into past and upcoming relative to now. A show
// is upcoming only if it starts strictly after now, so one starting exactly
// at now is past. Input order is kept within each bucket.
func partitionShows(shows []models.ShowListing, now time.Time) (past, upcoming []models.ShowListing) {
	past = []models.ShowListing{}
	upcoming = []models.ShowListing{}
	for _, s := range shows {
		if s.StartTime.After(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// groupByArea folds venues ordered by city and state into one Area per
// city/state pair.
func groupByArea(venues []models.VenueSummary) []models.Area {
	areas := []models.Area{}
	for _, v := range venues {
		n := len(areas)
		if n > 0 && areas[n-1].City == v.City && areas[n-1].State == v.State {
			areas[n-1].Venues = append(areas[n-1].Venues, v)
			continue
		}
		areas = append(areas, models.Area{City: v.City, State: v.State, Venues: []models.VenueSummary{v}})
	}
	return areas
}

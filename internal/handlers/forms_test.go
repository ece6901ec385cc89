package handlers

import (
	"testing"
	"time"

	"fyyur/internal/models"
)

func TestDecodeFormParsesStartTimeAsUTC(t *testing.T) {
	for _, raw := range []string{"2035-04-01T20:00", "2035-04-01+20:00:00"} {
		var f models.ShowForm
		errs, err := decodeForm(postForm("/shows/create", "artist_id=1&venue_id=2&start_time="+raw), &f)
		if err != nil || len(errs) != 0 {
			t.Fatalf("%s: unexpected errors %v %v", raw, errs, err)
		}
		want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
		if !f.StartTime.Equal(want) || f.StartTime.Location() != time.UTC {
			t.Fatalf("%s: got %v", raw, f.StartTime)
		}
	}
}

func TestDecodeFormReportsFieldNames(t *testing.T) {
	var f models.ShowForm
	errs, err := decodeForm(postForm("/shows/create", "artist_id=x&venue_id=2&start_time=soon"), &f)
	if err != nil {
		t.Fatalf("decodeForm: %v", err)
	}
	if _, ok := errs["ArtistID"]; !ok {
		t.Errorf("expected ArtistID error, got %v", errs)
	}
	if _, ok := errs["StartTime"]; !ok {
		t.Errorf("expected StartTime error, got %v", errs)
	}
	if _, ok := errs["VenueID"]; ok {
		t.Errorf("VenueID is valid, got %v", errs)
	}
}

func TestDecodeFormCollapsesGenreErrors(t *testing.T) {
	var f models.ArtistForm
	errs, err := decodeForm(postForm("/artists/create", "name=X&city=Y&state=CA&genres=Jazz&genres=Polka&genres=Waltz"), &f)
	if err != nil {
		t.Fatalf("decodeForm: %v", err)
	}
	if errs["Genres"] != "Choose genres from the list." || len(errs) != 1 {
		t.Fatalf("unexpected errors %v", errs)
	}
}

func TestStructField(t *testing.T) {
	if got := structField(&models.VenueForm{}, "seeking_description"); got != "SeekingDescription" {
		t.Fatalf("got %q", got)
	}
	if got := structField(&models.VenueForm{}, "genres[1]"); got != "Genres" {
		t.Fatalf("got %q", got)
	}
}

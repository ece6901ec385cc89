package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"fyyur/internal/interfaces"
	"fyyur/internal/middleware"
	"fyyur/internal/models"
	"fyyur/internal/render"
)

// testNow is the fixed clock every handler test runs against.
var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

const testFlashSecret = "test-secret"

func newTestBase(t *testing.T) *BaseHandler {
	t.Helper()
	views, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	base := NewBaseHandler(views, middleware.NewFlasher(testFlashSecret))
	base.now = func() time.Time { return testNow }
	return base
}

// flashesFrom replays the response's flash cookie through the middleware
// and returns what the next page would show.
func flashesFrom(t *testing.T, w *httptest.ResponseRecorder) []middleware.FlashMessage {
	t.Helper()
	var got []middleware.FlashMessage
	h := middleware.NewFlasher(testFlashSecret).Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.Flashes(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.FlashCookieName && c.Value != "" {
			req.AddCookie(c)
		}
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func expectFlash(t *testing.T, w *httptest.ResponseRecorder, kind, text string) {
	t.Helper()
	got := flashesFrom(t, w)
	if len(got) != 1 || got[0].Kind != kind || got[0].Text != text {
		t.Fatalf("expected flash %s %q, got %+v", kind, text, got)
	}
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 got %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q got %q", location, got)
	}
}

func postForm(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func matchesTerm(name, term string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}

type mockVenueRepo struct {
	venues    map[int]*models.Venue
	upcoming  map[int]int
	nextID    int
	createErr error
	updateErr error
	deleteErr error
	deleted   []int
}

func newMockVenueRepo(venues ...models.Venue) *mockVenueRepo {
	m := &mockVenueRepo{venues: map[int]*models.Venue{}, upcoming: map[int]int{}, nextID: 1}
	for i := range venues {
		v := venues[i]
		m.venues[v.ID] = &v
		if v.ID >= m.nextID {
			m.nextID = v.ID + 1
		}
	}
	return m
}

var _ interfaces.VenueRepository = (*mockVenueRepo)(nil)

func (m *mockVenueRepo) summaries(term string) []models.VenueSummary {
	out := []models.VenueSummary{}
	for _, v := range m.venues {
		if matchesTerm(v.Name, term) {
			out = append(out, models.VenueSummary{ID: v.ID, Name: v.Name, City: v.City, State: v.State, NumUpcomingShows: m.upcoming[v.ID]})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].City != out[j].City {
			return out[i].City < out[j].City
		}
		if out[i].State != out[j].State {
			return out[i].State < out[j].State
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (m *mockVenueRepo) List(ctx context.Context, now time.Time) ([]models.VenueSummary, error) {
	return m.summaries(""), nil
}
func (m *mockVenueRepo) Search(ctx context.Context, term string, now time.Time) (*models.SearchResult[models.VenueSummary], error) {
	data := m.summaries(term)
	return &models.SearchResult[models.VenueSummary]{Count: len(data), Data: data}, nil
}
func (m *mockVenueRepo) Recent(ctx context.Context, limit int) ([]models.Venue, error) {
	out := []models.Venue{}
	for _, v := range m.venues {
		out = append(out, *v)
	}
	return out, nil
}
func (m *mockVenueRepo) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	v, ok := m.venues[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	cp := *v
	return &cp, nil
}
func (m *mockVenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	if m.createErr != nil {
		return m.createErr
	}
	venue.ID = m.nextID
	m.nextID++
	cp := *venue
	m.venues[venue.ID] = &cp
	return nil
}
func (m *mockVenueRepo) Update(ctx context.Context, venue *models.Venue) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.venues[venue.ID]; !ok {
		return interfaces.ErrNotFound
	}
	cp := *venue
	m.venues[venue.ID] = &cp
	return nil
}
func (m *mockVenueRepo) SetImageLink(ctx context.Context, id int, link string) error {
	v, ok := m.venues[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	v.ImageLink = link
	return nil
}
func (m *mockVenueRepo) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.venues[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(m.venues, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockArtistRepo struct {
	artists   map[int]*models.Artist
	nextID    int
	createErr error
	updateErr error
	deleteErr error
	deleted   []int
}

func newMockArtistRepo(artists ...models.Artist) *mockArtistRepo {
	m := &mockArtistRepo{artists: map[int]*models.Artist{}, nextID: 1}
	for i := range artists {
		a := artists[i]
		m.artists[a.ID] = &a
		if a.ID >= m.nextID {
			m.nextID = a.ID + 1
		}
	}
	return m
}

var _ interfaces.ArtistRepository = (*mockArtistRepo)(nil)

func (m *mockArtistRepo) summaries(term string) []models.ArtistSummary {
	out := []models.ArtistSummary{}
	for _, a := range m.artists {
		if matchesTerm(a.Name, term) {
			out = append(out, models.ArtistSummary{ID: a.ID, Name: a.Name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (m *mockArtistRepo) List(ctx context.Context, now time.Time) ([]models.ArtistSummary, error) {
	return m.summaries(""), nil
}
func (m *mockArtistRepo) Search(ctx context.Context, term string, now time.Time) (*models.SearchResult[models.ArtistSummary], error) {
	data := m.summaries(term)
	return &models.SearchResult[models.ArtistSummary]{Count: len(data), Data: data}, nil
}
func (m *mockArtistRepo) Recent(ctx context.Context, limit int) ([]models.Artist, error) {
	out := []models.Artist{}
	for _, a := range m.artists {
		out = append(out, *a)
	}
	return out, nil
}
func (m *mockArtistRepo) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	a, ok := m.artists[id]
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	cp := *a
	return &cp, nil
}
func (m *mockArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	if m.createErr != nil {
		return m.createErr
	}
	artist.ID = m.nextID
	m.nextID++
	cp := *artist
	m.artists[artist.ID] = &cp
	return nil
}
func (m *mockArtistRepo) Update(ctx context.Context, artist *models.Artist) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	if _, ok := m.artists[artist.ID]; !ok {
		return interfaces.ErrNotFound
	}
	cp := *artist
	m.artists[artist.ID] = &cp
	return nil
}
func (m *mockArtistRepo) SetImageLink(ctx context.Context, id int, link string) error {
	a, ok := m.artists[id]
	if !ok {
		return interfaces.ErrNotFound
	}
	a.ImageLink = link
	return nil
}
func (m *mockArtistRepo) Delete(ctx context.Context, id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.artists[id]; !ok {
		return interfaces.ErrNotFound
	}
	delete(m.artists, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockShowRepo struct {
	shows     []models.ShowListing
	created   []models.Show
	createErr error
}

var _ interfaces.ShowRepository = (*mockShowRepo)(nil)

func (m *mockShowRepo) List(ctx context.Context) ([]models.ShowListing, error) {
	return m.shows, nil
}
func (m *mockShowRepo) ListByVenue(ctx context.Context, venueID int) ([]models.ShowListing, error) {
	out := []models.ShowListing{}
	for _, s := range m.shows {
		if s.VenueID == venueID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *mockShowRepo) ListByArtist(ctx context.Context, artistID int) ([]models.ShowListing, error) {
	out := []models.ShowListing{}
	for _, s := range m.shows {
		if s.ArtistID == artistID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m *mockShowRepo) Create(ctx context.Context, show *models.Show) error {
	if m.createErr != nil {
		return m.createErr
	}
	show.ID = len(m.created) + 1
	m.created = append(m.created, *show)
	return nil
}

package routes

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"

	"fyyur/internal/config"
	"fyyur/internal/render"
)

type healthResp struct {
	Status string `json:"status"`
	DB     struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	} `json:"db"`
}

func testConfig() *config.Config {
	return &config.Config{FlashSecret: "dev", CORSAllowedOrigins: []string{"https://fyyur.example.com"}}
}

func newTestRouter(t *testing.T, db *sql.DB) *chi.Mux {
	t.Helper()
	views, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return SetupRoutes(db, testConfig(), &config.S3Config{}, nil, views)
}

func TestHealthDBOK(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()

	r := newTestRouter(t, db)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var resp healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ok" || resp.DB.Status != "ok" {
		t.Fatalf("expected db ok, got %+v", resp)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestHealthDBDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	r := newTestRouter(t, db)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d (%s)", w.Code, w.Body.String())
	}
	var resp healthResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.DB.Status != "down" {
		t.Fatalf("expected db down, got %+v", resp)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	w := httptest.NewRecorder()
	newTestRouter(t, db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "could not be found") {
		t.Fatalf("expected the 404 page, got %s", w.Body.String())
	}
}

func TestPanicRendersServerErrorPage(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	r := newTestRouter(t, db)
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Something went wrong") {
		t.Fatalf("expected the 500 page, got %s", w.Body.String())
	}
}

func TestAPIAllowsConfiguredOrigin(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM shows").WillReturnRows(sqlmock.NewRows([]string{
		"id", "venue_id", "venue_name", "venue_image_link", "artist_id", "artist_name", "artist_image_link", "start_time",
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shows", nil)
	req.Header.Set("Origin", "https://fyyur.example.com")
	w := httptest.NewRecorder()
	newTestRouter(t, db).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://fyyur.example.com" {
		t.Fatalf("expected CORS origin header, got %q", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCreateVenueFormIsServed(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	w := httptest.NewRecorder()
	newTestRouter(t, db).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/venues/create", nil))

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `action="/venues/create"`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestSwaggerRedirectsToIndex(t *testing.T) {
	r := newTestRouter(t, nil)
	for _, path := range []string{"/swagger", "/swagger/"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusMovedPermanently || w.Header().Get("Location") != "/swagger/index.html" {
			t.Fatalf("%s: expected redirect to index, got %d %q", path, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestSwaggerServesAPIDocument(t *testing.T) {
	r := newTestRouter(t, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Fyyur API") || !strings.Contains(w.Body.String(), "/api/v1/venues") {
		t.Fatalf("unexpected document %s", w.Body.String())
	}
}

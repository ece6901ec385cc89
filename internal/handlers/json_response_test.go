package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParsePaginationParams(t *testing.T) {
	cases := []struct {
		query   string
		want    paginationParams
		wantErr bool
	}{
		{query: "", want: paginationParams{page: 1, pageSize: 20, limit: 20, offset: 0}},
		{query: "page=3&page_size=10", want: paginationParams{page: 3, pageSize: 10, limit: 10, offset: 20}},
		{query: "page=0", wantErr: true},
		{query: "page_size=abc", wantErr: true},
		{query: "page_size=101", wantErr: true},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/?"+tc.query, nil)
		got, err := parsePaginationParams(r, 20, 100)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tc.query)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %+v, %v", tc.query, got, err)
		}
	}
}

func TestPageOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	if got := pageOf(items, paginationParams{limit: 2, offset: 4}); len(got) != 1 || got[0] != 5 {
		t.Fatalf("unexpected last page %v", got)
	}
	if got := pageOf(items, paginationParams{limit: 2, offset: 10}); got == nil || len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %v", got)
	}
}

func TestWriteJSONErrorResponseShape(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Venue not found")

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if w.Code != http.StatusNotFound || len(body) != 2 || body["error"] != "not_found" || body["message"] != "Venue not found" {
		t.Fatalf("unexpected error response %d %v", w.Code, body)
	}
}

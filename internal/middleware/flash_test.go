package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func flashRoundTrip(t *testing.T, f *Flasher, cookie *http.Cookie) ([]FlashMessage, *httptest.ResponseRecorder) {
	t.Helper()
	var got []FlashMessage
	h := f.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Flashes(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return got, w
}

func issuedCookie(t *testing.T, f *Flasher, msgs ...FlashMessage) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	if err := f.Add(w, msgs...); err != nil {
		t.Fatalf("Add: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != FlashCookieName {
		t.Fatalf("expected one flash cookie, got %+v", cookies)
	}
	return cookies[0]
}

func TestFlashDeliveredOnceAndCleared(t *testing.T) {
	f := NewFlasher("secret")
	cookie := issuedCookie(t, f, FlashMessage{Kind: FlashSuccess, Text: "Venue The Musical Hop was successfully listed!"})

	got, w := flashRoundTrip(t, f, cookie)
	if len(got) != 1 || got[0].Text != "Venue The Musical Hop was successfully listed!" || got[0].Kind != FlashSuccess {
		t.Fatalf("unexpected flashes: %+v", got)
	}

	cleared := w.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected the flash cookie to be expired, got %+v", cleared)
	}
}

func TestFlashWithoutCookie(t *testing.T) {
	got, w := flashRoundTrip(t, NewFlasher("secret"), nil)
	if got != nil {
		t.Fatalf("expected no flashes, got %+v", got)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatalf("expected no Set-Cookie")
	}
}

func TestFlashRejectsForeignSignature(t *testing.T) {
	cookie := issuedCookie(t, NewFlasher("other"), FlashMessage{Kind: FlashError, Text: "forged"})

	got, w := flashRoundTrip(t, NewFlasher("secret"), cookie)
	if got != nil {
		t.Fatalf("expected forged flash to be dropped, got %+v", got)
	}
	if len(w.Result().Cookies()) != 1 {
		t.Fatalf("expected the bad cookie to be cleared")
	}
}

func TestFlashExpires(t *testing.T) {
	f := NewFlasher("secret")
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return issued }
	cookie := issuedCookie(t, f, FlashMessage{Kind: FlashSuccess, Text: "late"})

	f.now = func() time.Time { return issued.Add(time.Hour) }
	if got, _ := flashRoundTrip(t, f, cookie); got != nil {
		t.Fatalf("expected expired flash to be dropped, got %+v", got)
	}
}

func TestAddWithoutMessagesSetsNothing(t *testing.T) {
	w := httptest.NewRecorder()
	if err := NewFlasher("secret").Add(w); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatalf("expected no cookie")
	}
}

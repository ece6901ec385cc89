package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxFlashes ctxKey = "flashes"

// FlashCookieName is the cookie carrying one-shot messages across a redirect.
const FlashCookieName = "fyyur_flash"

const (
	FlashSuccess = "success"
	FlashError   = "danger"
)

// FlashMessage is a one-shot notice shown on the next rendered page.
type FlashMessage struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type flashClaims struct {
	Messages []FlashMessage `json:"msgs"`
	jwt.RegisteredClaims
}

// Flasher signs pending messages into an HS256 cookie so they survive the
// redirect of a post/redirect/get flow without server-side session state.
type Flasher struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewFlasher(secret string) *Flasher {
	return &Flasher{secret: []byte(secret), ttl: 5 * time.Minute, now: time.Now}
}

// Add queues msgs for the next request. Messages already pending on this
// request are not carried over.
func (f *Flasher) Add(w http.ResponseWriter, msgs ...FlashMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	now := f.now()
	claims := flashClaims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(f.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(f.secret)
	if err != nil {
		return fmt.Errorf("sign flash cookie: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(f.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Middleware moves verified messages from the cookie into the request
// context and expires the cookie, so each message is shown once. Tampered or
// expired cookies are dropped silently.
func (f *Flasher) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(FlashCookieName)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     FlashCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		msgs, err := f.parse(c.Value)
		if err != nil {
			log.Printf("Discarding flash cookie: %v", err)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxFlashes, msgs)))
	})
}

func (f *Flasher) parse(value string) ([]FlashMessage, error) {
	var claims flashClaims
	token, err := jwt.ParseWithClaims(value, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return f.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(f.now))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims.Messages, nil
}

// Flashes returns the messages delivered with this request, if any.
func Flashes(ctx context.Context) []FlashMessage {
	msgs, _ := ctx.Value(ctxFlashes).([]FlashMessage)
	return msgs
}

package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"
)

type dbHealth struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status string   `json:"status"`
	DB     dbHealth `json:"db"`
}

// Health pings the database with a short timeout and answers 503 when the
// ping fails.
func Health(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status: "degraded",
				DB:     dbHealth{Status: "down", Error: err.Error()},
			})
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", DB: dbHealth{Status: "ok"}})
	}
}

package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	"fyyur/internal/config"
)

// captureWriter records status and body while forwarding to the client.
// Once the body passes limit it stops buffering and marks itself overflowed.
type captureWriter struct {
	http.ResponseWriter
	status     int
	buf        bytes.Buffer
	limit      int
	overflowed bool
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.overflowed {
		if cw.limit > 0 && cw.buf.Len()+len(b) > cw.limit {
			cw.overflowed = true
			cw.buf.Reset()
		} else {
			cw.buf.Write(b)
		}
	}
	return cw.ResponseWriter.Write(b)
}

// storedHeader drops headers that belong to a single request rather than to
// the resource. CORS headers depend on the caller's Origin and are written
// again by the cors handler on every request.
func storedHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, vals := range h {
		ck := http.CanonicalHeaderKey(k)
		if ck == "Vary" || ck == "Content-Length" || ck == "X-Cache" || strings.HasPrefix(ck, "Access-Control-") {
			continue
		}
		out[ck] = append([]string(nil), vals...)
	}
	return out
}

func cacheKey(prefix string, r *http.Request) string {
	sum := sha1.Sum([]byte(r.Method + ":" + r.URL.Path + ":q:" + r.URL.RawQuery))
	return fmt.Sprintf("%s:api:%x", prefix, sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// ResponseCache serves repeated GET requests from Redis. Only 200 responses
// are stored. Per-request headers such as CORS are left to the handlers
// running ahead of the cache, so a hit never repeats another caller's Origin.
// With caching disabled or no client it is a pass-through.
func ResponseCache(cfg config.CacheConfig, rdb *redis.Client) func(http.Handler) http.Handler {
	if !cfg.Enabled || rdb == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cacheKey(cfg.Prefix, r)
			if bs, err := rdb.Get(r.Context(), key).Bytes(); err == nil {
				if status, hdr, body, ok := decodePayload(bs); ok {
					for k, vals := range storedHeader(hdr) {
						if _, set := w.Header()[k]; set {
							continue
						}
						w.Header()[k] = vals
					}
					w.Header().Set("X-Cache", "HIT")
					w.WriteHeader(status)
					_, _ = w.Write(body)
					return
				}
			} else if !errors.Is(err, redis.Nil) {
				log.Printf("Cache lookup failed for %s: %v", r.URL.Path, err)
			}

			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(cw, r)

			if cw.status != http.StatusOK || cw.overflowed {
				return
			}
			payload, err := encodePayload(cw.status, storedHeader(w.Header()), cw.buf.Bytes())
			if err != nil {
				return
			}
			// The request context may already be cancelled once the client has
			// its response.
			if err := rdb.Set(context.WithoutCancel(r.Context()), key, payload, cfg.TTL).Err(); err != nil {
				log.Printf("Cache store failed for %s: %v", r.URL.Path, err)
			}
		})
	}
}

package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/yusuke-koga/claimgate/internal/api/response"
	"github.com/yusuke-koga/claimgate/internal/ratelimit"
)

const defaultRequestsPerWindow = 10

// RateLimit enforces the per-identity request budget before any request
// body is read or any upstream call is attempted.
type RateLimit struct {
	store ratelimit.Store
	limit int
}

// NewRateLimit creates a RateLimit middleware over the given store.
func NewRateLimit(store ratelimit.Store, limit int) *RateLimit {
	if limit <= 0 {
		limit = defaultRequestsPerWindow
	}
	return &RateLimit{store: store, limit: limit}
}

// Limit denies requests over the identity's budget with 429. A store error
// fails open: degraded limiting beats refusing every caller.
func (rl *RateLimit) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := ClientIdentity(r)

		dec, err := rl.store.Allow(r.Context(), identity)
		if err != nil {
			slog.Warn("rate limit store unavailable, failing open", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(dec.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(dec.ResetAt.Unix(), 10))

		if !dec.Allowed {
			retryAfter := int(time.Until(dec.ResetAt).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			response.Error(w, http.StatusTooManyRequests,
				"RATE_LIMIT_EXCEEDED", "Too many requests. Retry after the current window.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

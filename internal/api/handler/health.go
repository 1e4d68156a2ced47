package handler

import (
	"net/http"

	"github.com/yusuke-koga/claimgate/internal/api/response"
	"github.com/yusuke-koga/claimgate/internal/ratelimit"
)

// NewHealthHandler reports process liveness and rate-limit store
// reachability. The gateway holds no other stateful dependency worth
// checking — the upstream model is probed by real traffic only.
func NewHealthHandler(store ratelimit.Store, provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			response.Error(w, http.StatusServiceUnavailable, "DEGRADED",
				"Rate limit store unreachable")
			return
		}

		response.JSON(w, map[string]any{
			"status":   "ok",
			"provider": provider,
			"services": map[string]string{"rate_limit_store": "ok"},
		})
	}
}

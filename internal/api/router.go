// Package api wires the HTTP surface of the gateway.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/yusuke-koga/claimgate/internal/api/middleware"
)

// Dependencies holds all handler and middleware dependencies for the router.
type Dependencies struct {
	RateLimit *mw.RateLimit

	GatewayHandler http.HandlerFunc
	HealthHandler  http.HandlerFunc
}

// NewRouter builds the Chi router with the middleware stack and all routes.
// The rate limiter guards only the gateway endpoint: health checks must
// stay reachable for probes regardless of client budgets.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Logger)
	r.Use(mw.Recovery)

	r.Get("/api/health", deps.HealthHandler)

	r.Group(func(r chi.Router) {
		r.Use(deps.RateLimit.Limit)
		r.Post("/api/gateway", deps.GatewayHandler)
	})

	return r
}

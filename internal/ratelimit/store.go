// Package ratelimit provides per-identity request counting over a fixed
// window. The Store interface lets a single-process in-memory map and a
// shared Redis counter be used interchangeably; the middleware depends only
// on the interface.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Store tracks request counts per identity. Implementations must be safe
// for concurrent use.
type Store interface {
	// Allow records one request for identity and reports whether it is
	// within the limit for the current window. A denied request must not
	// advance the window.
	Allow(ctx context.Context, identity string) (Decision, error)
	Ping(ctx context.Context) error
}

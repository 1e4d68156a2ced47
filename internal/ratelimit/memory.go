package ratelimit

import (
	"context"
	"sync"
	"time"
)

type record struct {
	count   int
	resetAt time.Time
}

// MemoryStore is a process-local fixed-window counter. Records are created
// on first sight of an identity and replaced when their window has passed;
// they are never explicitly deleted, so the map grows with the number of
// distinct identities over the process lifetime. Accounting is only
// consistent within a single instance; a horizontally scaled deployment
// needs the shared RedisStore instead.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*record
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewMemoryStore creates a MemoryStore allowing limit requests per identity
// per window.
func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*record),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (s *MemoryStore) Allow(_ context.Context, identity string) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	rec, ok := s.records[identity]

	if !ok || now.After(rec.resetAt) {
		rec = &record{count: 1, resetAt: now.Add(s.window)}
		s.records[identity] = rec
		return Decision{Allowed: true, Remaining: s.limit - 1, ResetAt: rec.resetAt}, nil
	}

	if rec.count >= s.limit {
		return Decision{Allowed: false, Remaining: 0, ResetAt: rec.resetAt}, nil
	}

	rec.count++
	return Decision{Allowed: true, Remaining: s.limit - rec.count, ResetAt: rec.resetAt}, nil
}

func (s *MemoryStore) Ping(_ context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)

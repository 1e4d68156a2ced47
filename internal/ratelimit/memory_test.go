package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(limit int, window time.Duration) (*MemoryStore, *time.Time) {
	s := NewMemoryStore(limit, window)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestMemoryStore_AllowsUpToLimit(t *testing.T) {
	s, _ := newTestStore(10, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 10; i++ {
		dec, err := s.Allow(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, dec.Allowed, "request %d should be allowed", i)
		assert.Equal(t, 10-i, dec.Remaining)
	}

	dec, err := s.Allow(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, dec.Allowed, "11th request within the window must be denied")
	assert.Equal(t, 0, dec.Remaining)
}

func TestMemoryStore_WindowReset(t *testing.T) {
	s, now := newTestStore(10, time.Minute)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := s.Allow(ctx, "198.51.100.2")
		require.NoError(t, err)
	}
	dec, _ := s.Allow(ctx, "198.51.100.2")
	assert.False(t, dec.Allowed)

	// Just past the window from the first request: fresh window, count 1.
	*now = now.Add(time.Minute + time.Second)
	dec, err := s.Allow(ctx, "198.51.100.2")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, 9, dec.Remaining)
	assert.Equal(t, now.Add(time.Minute), dec.ResetAt)
}

func TestMemoryStore_DenialDoesNotExtendWindow(t *testing.T) {
	s, now := newTestStore(2, time.Minute)
	ctx := context.Background()

	first, _ := s.Allow(ctx, "client")
	s.Allow(ctx, "client")

	// Denied requests must not move the reset time.
	*now = now.Add(30 * time.Second)
	dec, _ := s.Allow(ctx, "client")
	assert.False(t, dec.Allowed)
	assert.Equal(t, first.ResetAt, dec.ResetAt)
}

func TestMemoryStore_IdentitiesAreIndependent(t *testing.T) {
	s, _ := newTestStore(1, time.Minute)
	ctx := context.Background()

	dec, _ := s.Allow(ctx, "a")
	assert.True(t, dec.Allowed)
	dec, _ = s.Allow(ctx, "a")
	assert.False(t, dec.Allowed)

	dec, _ = s.Allow(ctx, "b")
	assert.True(t, dec.Allowed, "identity b has its own bucket")
}

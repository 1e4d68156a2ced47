package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on a shared Redis counter so that multiple
// gateway instances see the same per-identity accounting. The window starts
// at the first request of each window: the expiry is armed with NX, so
// later increments never extend it.
type RedisStore struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRedisStore creates a RedisStore from a Redis URL.
func NewRedisStore(redisURL string, limit int, window time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{client: redis.NewClient(opts), limit: limit, window: window}, nil
}

// Allow counts one request in a single transactional pipeline. INCR and
// EXPIRE execute together, so a key can never be left counting without a
// TTL; ExpireNX also re-arms the expiry if one ever went missing, instead
// of denying that identity forever.
func (s *RedisStore) Allow(ctx context.Context, identity string) (Decision, error) {
	key := limitKey(identity)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, s.window)
	ttl := pipe.TTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, err
	}

	remainingWindow := ttl.Val()
	if remainingWindow < 0 {
		remainingWindow = s.window
	}
	resetAt := time.Now().Add(remainingWindow)

	count := incr.Val()
	if count > int64(s.limit) {
		return Decision{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}

	remaining := s.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: true, Remaining: remaining, ResetAt: resetAt}, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func limitKey(identity string) string {
	return fmt.Sprintf("ratelimit:%s", identity)
}

var _ Store = (*RedisStore)(nil)

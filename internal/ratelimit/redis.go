package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps counters in Redis so every instance shares them.
// Each key is INCRed and given a TTL on its first hit; the TTL is the window.
type RedisStore struct {
	rdb    redis.Cmdable
	window time.Duration
	prefix string
}

// NewRedisStore creates a RedisStore. prefix namespaces the keys, e.g. "rl:contact:".
func NewRedisStore(rdb redis.Cmdable, window time.Duration, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, window: window, prefix: prefix}
}

// NewRedisClient parses a redis:// URL and returns a client.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("ratelimit: parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

var _ Store = (*RedisStore)(nil)

func (s *RedisStore) Hit(ctx context.Context, key string) (int, time.Time, error) {
	k := s.prefix + key

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	ttl := pipe.PTTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("ratelimit: redis hit: %w", err)
	}

	remaining := ttl.Val()
	if remaining < 0 {
		// First hit of the window (or a key that lost its TTL).
		if err := s.rdb.PExpire(ctx, k, s.window).Err(); err != nil {
			return 0, time.Time{}, fmt.Errorf("ratelimit: redis expire: %w", err)
		}
		remaining = s.window
	}
	return int(incr.Val()), time.Now().Add(remaining), nil
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter provides a fixed-window request counter backed by Redis.
// Key format: ratelimit:<scope>:<client>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window.
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{client: client, limit: int64(limit), window: window}
}

// Allow records one request for the client under the scope and reports
// whether it stays within the window's budget. Counting is atomic; two
// concurrent calls never both see the last free slot.
func (l *RateLimiter) Allow(ctx context.Context, scope, client string) (bool, error) {
	key := l.key(scope, client)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}

	return incr.Val() <= l.limit, nil
}

func (l *RateLimiter) key(scope, client string) string {
	windowStart := time.Now().Unix() / int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, client, windowStart)
}

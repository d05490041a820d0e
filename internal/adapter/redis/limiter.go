// Package redis provides a fixed-window request limiter shared by every
// server instance through Redis.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/ecomind-backend/internal/config"
)

const keyPrefix = "ecomind:ratelimit:"

// Limiter counts requests per key in fixed windows with INCR and EXPIRE.
type Limiter struct {
	rdb    goredis.Cmdable
	limit  int
	window time.Duration
	now    func() time.Time
	log    *slog.Logger
}

// NewClient opens a Redis client from the rate limit settings.
func NewClient(cfg config.RateLimitConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// NewLimiter allows limit requests per key per window.
func NewLimiter(rdb goredis.Cmdable, limit int, window time.Duration, logger *slog.Logger) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		now:    time.Now,
		log:    logger.With("adapter", "redis_limiter"),
	}
}

// Allow increments the counter for key in the current window. When the
// count exceeds the limit it returns false and the time until the window
// resets. Errors are returned to the caller, which decides to fail open.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now()
	windowStart := now.Truncate(l.window)
	rkey := fmt.Sprintf("%s%s:%d", keyPrefix, key, windowStart.Unix())

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, rkey)
	pipe.Expire(ctx, rkey, l.window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("redis limiter: %w", err)
	}

	if incr.Val() > int64(l.limit) {
		retry := windowStart.Add(l.window).Sub(now)
		l.log.DebugContext(ctx, "limit exceeded", slog.Int64("count", incr.Val()))
		return false, retry, nil
	}
	return true, 0, nil
}

// Ping checks the Redis connection for health probes.
func (l *Limiter) Ping(ctx context.Context) error {
	if err := l.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const attemptsKeyPrefix = "auth_attempts"

// AttemptCounter is a fixed-window request counter backed by Redis. It
// satisfies echo's middleware.RateLimiterStore.
// Key format: auth_attempts:<identifier>
type AttemptCounter struct {
	client  *redis.Client
	limit   int64
	window  time.Duration
	timeout time.Duration
	log     zerolog.Logger
}

// NewAttemptCounter allows limit requests per identifier per window.
func NewAttemptCounter(client *redis.Client, limit int, window time.Duration, log zerolog.Logger) *AttemptCounter {
	return &AttemptCounter{
		client:  client,
		limit:   int64(limit),
		window:  window,
		timeout: defaultTimeout,
		log:     log,
	}
}

// Allow records one attempt and reports whether the identifier is still
// under its limit. Redis failures are logged and the attempt is allowed.
func (a *AttemptCounter) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	n, err := a.Hit(ctx, identifier)
	if err != nil {
		a.log.Warn().Err(err).Msg("attempt counter unavailable, allowing request")
		return true, nil
	}
	return n <= a.limit, nil
}

// Hit increments the identifier's counter and returns the new count. The
// window starts with the first hit.
func (a *AttemptCounter) Hit(ctx context.Context, identifier string) (int64, error) {
	key := a.key(identifier)

	var incr *redis.IntCmd
	_, err := a.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, a.window)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("attempt counter: %w", err)
	}
	return incr.Val(), nil
}

func (a *AttemptCounter) key(identifier string) string {
	return fmt.Sprintf("%s:%s", attemptsKeyPrefix, identifier)
}

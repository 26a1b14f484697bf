// Package cache provides a Redis-backed pace-profile cache.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/examiz/internal/analytics"
)

const (
	paceKeyPrefix = "examiz:pace:"
	paceTTL       = 30 * 24 * time.Hour
)

// PaceCache stores inferred pace profiles in Redis. It satisfies
// analytics.PaceCache; writes are best-effort from the caller's point of
// view.
type PaceCache struct {
	client *redis.Client
}

// New connects to the Redis instance at url and verifies the connection.
func New(ctx context.Context, url string) (*PaceCache, error) {
	if url == "" {
		return nil, fmt.Errorf("cache URL is empty")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid cache URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	return &PaceCache{client: client}, nil
}

// GetPace returns the cached pace for a student, if any.
func (c *PaceCache) GetPace(ctx context.Context, userID string) (analytics.Pace, bool) {
	val, err := c.client.Get(ctx, paceKeyPrefix+userID).Result()
	if err != nil {
		return "", false
	}
	return analytics.Pace(val), true
}

// SetPace stores the pace for a student with a rolling TTL.
func (c *PaceCache) SetPace(ctx context.Context, userID string, p analytics.Pace) error {
	if err := c.client.Set(ctx, paceKeyPrefix+userID, string(p), paceTTL).Err(); err != nil {
		return fmt.Errorf("cache pace for %s: %w", userID, err)
	}
	return nil
}

// Close shuts down the cache client.
func (c *PaceCache) Close() error {
	return c.client.Close()
}

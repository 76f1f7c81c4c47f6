// Package cache implements view caching and reminder bookkeeping on top of Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/profit-tracker/backend/internal/application/adapter"
)

const keyPrefix = "profit-tracker"

// DefaultViewTTL bounds how long a view survives when nothing invalidates it.
const DefaultViewTTL = 10 * time.Minute

// redisViewCache implements adapter.ViewCache. Each dashboard has a version counter that
// is part of every view key, so bumping the counter orphans all of its views at once and
// they expire through their TTL.
type redisViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisViewCache creates a Redis backed view cache.
func NewRedisViewCache(client *redis.Client, ttl time.Duration) adapter.ViewCache {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}
	return &redisViewCache{
		client: client,
		ttl:    ttl,
	}
}

func versionKey(dashboardID uuid.UUID) string {
	return fmt.Sprintf("%s:dashboard:%s:version", keyPrefix, dashboardID)
}

func (c *redisViewCache) version(ctx context.Context, dashboardID uuid.UUID) (int64, error) {
	version, err := c.client.Get(ctx, versionKey(dashboardID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read cache version: %w", err)
	}
	return version, nil
}

func viewKey(dashboardID uuid.UUID, version int64, key string) string {
	return fmt.Sprintf("%s:dashboard:%s:v%d:%s", keyPrefix, dashboardID, version, key)
}

// Get loads a cached value into dest. found is false on a miss. The returned version is
// the one the lookup used and must be handed to Set.
func (c *redisViewCache) Get(ctx context.Context, dashboardID uuid.UUID, key string, dest interface{}) (bool, int64, error) {
	version, err := c.version(ctx, dashboardID)
	if err != nil {
		return false, 0, err
	}

	raw, err := c.client.Get(ctx, viewKey(dashboardID, version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, version, nil
	}
	if err != nil {
		return false, version, fmt.Errorf("failed to read cached view: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, version, fmt.Errorf("failed to decode cached view: %w", err)
	}
	return true, version, nil
}

// Set stores value under key for the given dashboard version. A view stored for a
// version that was invalidated in the meantime is never read back.
func (c *redisViewCache) Set(ctx context.Context, dashboardID uuid.UUID, version int64, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}
	if err := c.client.Set(ctx, viewKey(dashboardID, version, key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store view: %w", err)
	}
	return nil
}

// Invalidate drops all cached views of the dashboard.
func (c *redisViewCache) Invalidate(ctx context.Context, dashboardID uuid.UUID) error {
	if err := c.client.Incr(ctx, versionKey(dashboardID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate views: %w", err)
	}
	return nil
}

// noopViewCache is used when Redis is disabled. Every read misses.
type noopViewCache struct{}

// NewNoopViewCache returns a view cache that stores nothing.
func NewNoopViewCache() adapter.ViewCache {
	return noopViewCache{}
}

func (noopViewCache) Get(context.Context, uuid.UUID, string, interface{}) (bool, int64, error) {
	return false, 0, nil
}

func (noopViewCache) Set(context.Context, uuid.UUID, int64, string, interface{}) error {
	return nil
}

func (noopViewCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}

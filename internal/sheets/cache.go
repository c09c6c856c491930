package sheets

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"warga-portal-svc/pkg/logger"
)

const cacheKeyPrefix = "sheet:"

// Cache is a redis-backed read cache for sheet tables. A nil *Cache is valid
// and behaves as a permanent miss, so callers never need to branch on it.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCache creates a sheet cache with the given TTL
func NewCache(client *redis.Client, ttl time.Duration, logger *logger.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached rows for a table, if present
func (c *Cache) Get(ctx context.Context, table string) ([]Row, bool) {
	if c == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, cacheKeyPrefix+table).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).WithField("table", table).Warn("Sheet cache read failed")
		}
		return nil, false
	}

	var rows []Row
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		c.logger.WithError(err).WithField("table", table).Warn("Sheet cache entry corrupt, ignoring")
		return nil, false
	}

	return rows, true
}

// Set stores rows for a table with the configured TTL
func (c *Cache) Set(ctx context.Context, table string, rows []Row) {
	if c == nil {
		return
	}

	data, err := json.Marshal(rows)
	if err != nil {
		c.logger.WithError(err).WithField("table", table).Warn("Failed to marshal sheet cache entry")
		return
	}

	if err := c.client.Set(ctx, cacheKeyPrefix+table, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("table", table).Warn("Sheet cache write failed")
	}
}

// Invalidate drops the cached rows for a table after a write
func (c *Cache) Invalidate(ctx context.Context, table string) {
	if c == nil {
		return
	}

	if err := c.client.Del(ctx, cacheKeyPrefix+table).Err(); err != nil {
		c.logger.WithError(err).WithField("table", table).Warn("Sheet cache invalidation failed")
	}
}

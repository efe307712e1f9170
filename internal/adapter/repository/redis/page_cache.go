package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pagecache:"

// PageCache implements domain.PageCache on Redis. Rendered page payloads are
// stored under pagecache:<path> with a TTL; invalidation deletes the key so
// the next read recomputes it.
type PageCache struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewPageCache creates a new Redis-backed page cache.
func NewPageCache(client *redis.Client, logger *slog.Logger, ttl time.Duration) *PageCache {
	return &PageCache{
		client: client,
		logger: logger.With("component", "page_cache"),
		ttl:    ttl,
	}
}

// Get returns the cached payload for a path and whether it was present. A
// missing key is not an error.
func (c *PageCache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, keyPrefix+path).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cached page %s: %w", path, err)
	}
	return payload, true, nil
}

// Set stores the payload for a path with the configured TTL.
func (c *PageCache) Set(ctx context.Context, path string, payload []byte) error {
	if err := c.client.Set(ctx, keyPrefix+path, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached page %s: %w", path, err)
	}
	return nil
}

// Invalidate marks the cached output for a path stale by deleting its key.
func (c *PageCache) Invalidate(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, keyPrefix+path).Err(); err != nil {
		return fmt.Errorf("invalidate cached page %s: %w", path, err)
	}
	c.logger.Debug("invalidated cached page", "path", path)
	return nil
}

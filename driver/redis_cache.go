// Package driver provides implementations for external dependencies.
package driver

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache implements port.CollectionCache on Redis. Snapshots are
// plain byte values under a shared TTL; invalidation deletes a
// collection's base key together with its parameterized variants.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a cache from a Redis URL.
func NewRedisCache(url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	return &RedisCache{client: redis.NewClient(opts), ttl: ttl}, nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping checks if Redis is available.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Get returns the cached snapshot for key, reporting a miss as absent
// rather than an error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set stores a snapshot under the cache TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}

// Invalidate drops each named collection: the base key and every
// "<collection>?..." parameterized variant.
func (c *RedisCache) Invalidate(ctx context.Context, collections ...string) error {
	keys := make([]string, 0, len(collections))
	keys = append(keys, collections...)

	for _, collection := range collections {
		iter := c.client.Scan(ctx, 0, collection+"?*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}

	return c.client.Del(ctx, keys...).Err()
}

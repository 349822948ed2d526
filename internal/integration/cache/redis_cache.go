// Package cache implements the tag-invalidated read cache used by the persistence layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freight-manager/backend/internal/application/adapter"
)

const (
	keyPrefix = "freight-manager:"
	tagPrefix = keyPrefix + "tag:"
)

// redisCache implements the adapter.Cache interface on top of Redis.
// Each tag is a Redis set holding the keys stored under it.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a new Redis backed cache. Entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) adapter.Cache {
	return &redisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get decodes the value stored at key into dest.
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return adapter.ErrCacheMiss
		}
		return fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	return nil
}

// Set stores value at key and adds the key to every tag set.
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, tags ...string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}

	pipe := c.client.TxPipeline()
	pipe.Set(ctx, keyPrefix+key, data, c.ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, tagPrefix+tag, keyPrefix+key)
		pipe.Expire(ctx, tagPrefix+tag, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes every key registered under the tags, then the tag sets themselves.
func (c *redisCache) Invalidate(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		tagKey := tagPrefix + tag

		keys, err := c.client.SMembers(ctx, tagKey).Result()
		if err != nil {
			return fmt.Errorf("failed to read cache tag %s: %w", tag, err)
		}

		if err := c.client.Del(ctx, append(keys, tagKey)...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate cache tag %s: %w", tag, err)
		}
	}
	return nil
}

// noopCache is used when Redis is disabled. Every read misses.
type noopCache struct{}

// NewNoopCache creates a cache that stores nothing.
func NewNoopCache() adapter.Cache {
	return noopCache{}
}

func (noopCache) Get(ctx context.Context, key string, dest interface{}) error {
	return adapter.ErrCacheMiss
}

func (noopCache) Set(ctx context.Context, key string, value interface{}, tags ...string) error {
	return nil
}

func (noopCache) Invalidate(ctx context.Context, tags ...string) error {
	return nil
}

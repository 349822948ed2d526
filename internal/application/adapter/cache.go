// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a key/value read cache whose entries are grouped by tags.
// Invalidating a tag drops every entry stored under it.
type Cache interface {
	// Get decodes the cached value into dest. It returns ErrCacheMiss when nothing is stored.
	Get(ctx context.Context, key string, dest interface{}) error

	// Set stores value under key and registers the key under every tag.
	Set(ctx context.Context, key string, value interface{}, tags ...string) error

	// Invalidate drops every entry registered under the tags.
	Invalidate(ctx context.Context, tags ...string) error
}

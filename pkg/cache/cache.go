// Package cache stores rendered diagrams keyed by what produced them.
//
// Three backends share the [Cache] interface: [FileCache] for the CLI,
// [RedisCache] for the HTTP server, and [NullCache] when caching is off.
// Keys come from a [Keyer], which hashes the box name together with every
// option that changes the output.
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/umlsvg/pkg/observability"
)

// Cache is a byte store with per-entry expiry. A zero ttl never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Fetch returns the cached value for key, or calls fn and stores its result.
// The boolean reports a cache hit. Cache read and write failures are not
// fatal: fn's result is still returned.
func Fetch(ctx context.Context, c Cache, key, keyType string, ttl time.Duration, fn func() ([]byte, error)) ([]byte, bool, error) {
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, keyType)

	data, err := fn()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		observability.Cache().OnCacheSet(ctx, keyType, len(data))
	}
	return data, false, nil
}

package cachemanager

import (
	"context"
	"time"
)

// ReadThroughCache wraps a loader function with a cache. Misses invoke the
// loader and store its result; loader errors are never cached.
type ReadThroughCache[K ~string, V any, I any] struct {
	cache     CacheManager[K, V]
	load      func(ctx context.Context, input I) (V, error)
	skipCache bool
}

// NewReadThroughCache creates a read-through cache. skipCache bypasses the
// cache entirely, which keeps call sites unchanged when caching is disabled.
func NewReadThroughCache[K ~string, V any, I any](
	cache CacheManager[K, V],
	load func(ctx context.Context, input I) (V, error),
	skipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:     cache,
		load:      load,
		skipCache: skipCache,
	}
}

// Get returns the cached value for key, loading and caching it on a miss.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.skipCache {
		return r.load(ctx, input)
	}

	if value, ok := r.cache.Get(ctx, key); ok {
		return value, nil
	}

	value, err := r.load(ctx, input)
	if err != nil {
		return value, err
	}
	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}

// GetWithRefresh is Get with a sliding TTL on hits.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if r.skipCache {
		return r.load(ctx, input)
	}

	if value, ok := r.cache.GetWithRefresh(ctx, key, ttl); ok {
		return value, nil
	}

	value, err := r.load(ctx, input)
	if err != nil {
		return value, err
	}
	r.cache.Set(ctx, key, value, ttl)
	return value, nil
}

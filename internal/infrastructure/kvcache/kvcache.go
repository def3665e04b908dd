// Package kvcache persists JSON-encoded values in a string-keyed blob store.
// Every failure is logged and treated as a miss; callers never see an error.
package kvcache

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/rs/zerolog"

	"github.com/modeboutique/storefront/internal/core/ports"
	"github.com/modeboutique/storefront/internal/pkg/metrics"
)

// Cache wraps a BlobStore with JSON encoding and failure tolerance.
// It implements ports.KeyValueCache.
type Cache struct {
	blobs ports.BlobStore
	log   zerolog.Logger
}

// New returns a Cache over blobs.
func New(blobs ports.BlobStore, log zerolog.Logger) *Cache {
	return &Cache{blobs: blobs, log: log}
}

// Load decodes the blob stored under key into dst, which must be a non-nil
// pointer. It returns false and leaves dst untouched when the key is absent,
// the store is unavailable, or the blob does not decode.
func (c *Cache) Load(ctx context.Context, key string, dst any) bool {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		c.log.Error().Str("key", key).Msg("cache load into non-pointer")
		return false
	}

	raw, found, err := c.blobs.Get(ctx, key)
	if err != nil {
		metrics.CacheFailuresTotal.WithLabelValues("load").Inc()
		c.log.Warn().Err(err).Str("key", key).Msg("cache load failed, using default")
		return false
	}
	if !found || raw == "" {
		return false
	}

	// Decode into a scratch value so a half-decoded blob never leaks into dst.
	scratch := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal([]byte(raw), scratch.Interface()); err != nil {
		metrics.CacheFailuresTotal.WithLabelValues("decode").Inc()
		c.log.Warn().Err(err).Str("key", key).Msg("cache entry corrupt, using default")
		return false
	}
	rv.Elem().Set(scratch.Elem())
	return true
}

// Save encodes value and writes it under key. Persistence is best-effort.
func (c *Cache) Save(ctx context.Context, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		metrics.CacheFailuresTotal.WithLabelValues("encode").Inc()
		c.log.Error().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := c.blobs.Set(ctx, key, string(b)); err != nil {
		metrics.CacheFailuresTotal.WithLabelValues("save").Inc()
		c.log.Warn().Err(err).Str("key", key).Msg("cache save failed")
	}
}

// Load is the typed form of Cache.Load: it returns def on any miss.
func Load[T any](ctx context.Context, c ports.KeyValueCache, key string, def T) T {
	v := def
	c.Load(ctx, key, &v)
	return v
}

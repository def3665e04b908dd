package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// BlobStore implements ports.BlobStore with plain Redis strings. Keys are
// stored under an optional prefix and never expire.
type BlobStore struct {
	client redis.UniversalClient
	prefix string
}

func NewBlobStore(client redis.UniversalClient, prefix string) *BlobStore {
	return &BlobStore{client: client, prefix: prefix}
}

func (b *BlobStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := b.client.Get(ctx, b.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("blob get %s: %w", key, err)
	}
	return v, true, nil
}

func (b *BlobStore) Set(ctx context.Context, key, value string) error {
	if err := b.client.Set(ctx, b.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("blob set %s: %w", key, err)
	}
	return nil
}

package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const echoTTL = time.Hour

// EchoFilter remembers notification ids this instance inserted so their
// realtime echo can be skipped.
// Key format: <prefix>echo:<instance>:<notification_id>
type EchoFilter struct {
	client   redis.UniversalClient
	prefix   string
	instance string
}

// NewEchoFilter scopes marks to instance so other processes sharing the same
// Redis still receive each other's inserts.
func NewEchoFilter(client redis.UniversalClient, prefix, instance string) *EchoFilter {
	return &EchoFilter{client: client, prefix: prefix, instance: instance}
}

// Seen reports whether id was marked by this instance.
func (f *EchoFilter) Seen(ctx context.Context, id string) (bool, error) {
	n, err := f.client.Exists(ctx, f.key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("echo check: %w", err)
	}
	return n > 0, nil
}

// Mark records id as emitted here (expires after echoTTL).
func (f *EchoFilter) Mark(ctx context.Context, id string) error {
	return f.client.Set(ctx, f.key(id), "1", echoTTL).Err()
}

func (f *EchoFilter) key(id string) string {
	return fmt.Sprintf("%secho:%s:%s", f.prefix, f.instance, id)
}

package ports

import "context"

// BlobStore is a durable string-keyed string store. Get reports found=false
// for a missing key.
type BlobStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// EchoFilter remembers notification ids emitted by this process so their
// realtime echo can be recognised.
type EchoFilter interface {
	Mark(ctx context.Context, id string) error
	Seen(ctx context.Context, id string) (bool, error)
}

// KeyValueCache persists JSON-encodable values under string keys. Load
// decodes into dst and reports whether it did; on any failure dst is left
// untouched so a pre-filled default survives. Save never fails visibly.
type KeyValueCache interface {
	Load(ctx context.Context, key string, dst any) bool
	Save(ctx context.Context, key string, value any)
}

// Keys of the persisted collections.
const (
	KeyArticles      = "boutique_articles"
	KeyClients       = "boutique_clients"
	KeyAdmin         = "boutique_admin"
	KeySettings      = "boutique_settings"
	KeyNotifications = "boutique_notifications"
	KeyOrders        = "boutique_orders"
)

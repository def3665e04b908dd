package ports

import (
	"context"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// NotificationRepository mirrors notifications to the remote gateway.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// NotificationFeed delivers notifications inserted by any client, in arrival
// order. Delivery is at-least-once; the channel closes when ctx is done or
// the underlying subscription fails.
type NotificationFeed interface {
	SubscribeInserts(ctx context.Context) (<-chan domain.Notification, error)
}

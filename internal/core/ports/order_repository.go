package ports

import (
	"context"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// OrderRepository mirrors orders to the remote gateway when the store runs
// in backend-synced mode.
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
}

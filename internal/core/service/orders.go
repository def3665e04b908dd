package service

import (
	"context"
	"fmt"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
)

// AddOrder records a pending order, newest first. With an order backend
// configured the order is written there first and a failure aborts.
func (s *Store) AddOrder(ctx context.Context, in domain.OrderInput) (*domain.Order, error) {
	o := domain.Order{
		ID:          s.newID(),
		ClientID:    in.ClientID,
		ClientName:  in.ClientName,
		ClientPhone: in.ClientPhone,
		ArticleID:   in.ArticleID,
		ArticleName: in.ArticleName,
		Status:      domain.OrderPending,
		CreatedAt:   s.now(),
	}

	if s.orderRepo != nil {
		if err := s.orderRepo.Create(ctx, &o); err != nil {
			s.gatewayFailed("add_order", err)
			return nil, fmt.Errorf("add order: %w", err)
		}
	}

	s.mu.Lock()
	s.orders = prepend(s.orders, o)
	s.cache.Save(ctx, ports.KeyOrders, s.orders)
	s.mu.Unlock()

	s.log.Info().Str("order_id", o.ID).Str("article_id", o.ArticleID).Str("client_id", o.ClientID).Msg("order recorded")
	return &o, nil
}

// UpdateOrderStatus moves an order forward along pending, confirmed,
// delivered. Any other move yields ErrInvalidTransition.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("update order %s: %w (unknown status %q)", id, domain.ErrInvalidTransition, status)
	}

	s.mu.RLock()
	idx := s.orderIndex(id)
	var current domain.Order
	if idx >= 0 {
		current = s.orders[idx]
	}
	s.mu.RUnlock()

	if idx < 0 {
		return nil, domain.ErrOrderNotFound
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("update order %s: %w (from %s to %s)", id, domain.ErrInvalidTransition, current.Status, status)
	}

	if s.orderRepo != nil {
		if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
			s.gatewayFailed("update_order_status", err)
			return nil, fmt.Errorf("update order %s: %w", id, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx = s.orderIndex(id)
	if idx < 0 {
		return nil, domain.ErrOrderNotFound
	}
	s.orders[idx].Status = status
	s.cache.Save(ctx, ports.KeyOrders, s.orders)
	updated := s.orders[idx]

	s.log.Info().Str("order_id", id).Str("status", string(status)).Msg("order status updated")
	return &updated, nil
}

// Orders returns every order, newest first.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// orderIndex must be called with s.mu held.
func (s *Store) orderIndex(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

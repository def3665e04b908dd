package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderDelivered OrderStatus = "delivered"
)

// validTransitions defines the allowed forward-only order transitions.
var validTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:   {OrderConfirmed},
	OrderConfirmed: {OrderDelivered},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrOrderNotFound = errors.New("order not found")

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s is one of the declared statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered:
		return true
	}
	return false
}

// Order is a buyer's request for an article. Client and article fields are
// copied at creation time and never re-read from their sources.
type Order struct {
	ID          string      `json:"id" bson:"_id" db:"id"`
	ClientID    string      `json:"client_id" bson:"client_id" db:"client_id"`
	ClientName  string      `json:"client_name" bson:"client_name" db:"client_name"`
	ClientPhone string      `json:"client_phone" bson:"client_phone" db:"client_phone"`
	ArticleID   string      `json:"article_id" bson:"article_id" db:"article_id"`
	ArticleName string      `json:"article_name" bson:"article_name" db:"article_name"`
	Status      OrderStatus `json:"status" bson:"status" db:"status"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at" db:"created_at"`
}

// OrderInput carries the snapshot fields of a new order.
type OrderInput struct {
	ClientID    string
	ClientName  string
	ClientPhone string
	ArticleID   string
	ArticleName string
}

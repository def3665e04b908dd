package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/modeboutique/storefront/internal/core/domain"
)

// OrderRepository mirrors orders into the orders table.
type OrderRepository struct {
	DB *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	query := `
        INSERT INTO orders (id, client_id, client_name, client_phone, article_id, article_name, status, created_at)
        VALUES (:id, :client_id, :client_name, :client_phone, :article_id, :article_name, :status, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, o)
	return err
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

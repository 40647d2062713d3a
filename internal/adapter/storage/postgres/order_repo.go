package postgres

import (
	"context"
	"errors"
	"fmt"

	"push-delivery-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderScopeResolver over the shop's orders table.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// ResolveOrder loads the recipients and display details of an order.
func (r *OrderRepo) ResolveOrder(ctx context.Context, orderID string) (*domain.OrderScope, error) {
	query := `SELECT o.id::text,
		COALESCE(o.pharmacy_id::text, ''),
		COALESCE(o.rider_id::text, ''),
		COALESCE(o.customer_phone, ''),
		COALESCE(o.delivery_address, ''),
		COALESCE((SELECT i.name FROM order_items i WHERE i.order_id = o.id ORDER BY i.id LIMIT 1), '')
		FROM orders o WHERE o.id::text = $1`

	order := &domain.OrderScope{}
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&order.OrderID, &order.PharmacyID, &order.RiderID,
		&order.CustomerPhone, &order.Address, &order.FirstItemName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve order: %w", err)
	}
	return order, nil
}

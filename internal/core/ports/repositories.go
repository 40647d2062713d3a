package ports

import (
	"context"
	"time"

	"push-delivery-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SubscriptionRepository defines persistence operations for push subscriptions.
// Methods accepting pgx.Tx run inside a caller-owned transaction.
type SubscriptionRepository interface {
	Save(ctx context.Context, tx pgx.Tx, sub *domain.Subscription) error
	// RemoveStaleBindings deletes rows holding endpoint under any other role or scope.
	RemoveStaleBindings(ctx context.Context, tx pgx.Tx, role domain.Role, target domain.ScopeTarget, endpoint string) (int64, error)
	Remove(ctx context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (int64, error)
	// RemoveByEndpoint deletes every row for endpoint, optionally limited to one role.
	RemoveByEndpoint(ctx context.Context, endpoint string, role *domain.Role) (int64, error)
	RemoveByScope(ctx context.Context, role domain.Role, target domain.ScopeTarget) (int64, error)
	// FetchActive returns non-invalidated rows for the scope, newest first. Not deduplicated.
	FetchActive(ctx context.Context, role domain.Role, target domain.ScopeTarget) ([]domain.Subscription, error)
	Find(ctx context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (*domain.Subscription, error)
	// InvalidateEndpoints soft-invalidates the given endpoints of one scope.
	InvalidateEndpoints(ctx context.Context, tx pgx.Tx, role domain.Role, target domain.ScopeTarget, endpoints []string, statusCode int, at time.Time) (int64, error)
}

// ReservationRepository defines persistence for delivery reservations.
type ReservationRepository interface {
	// Reserve inserts the pending sentinel row, skipping on conflict.
	// Returns false when a row for the same event already existed.
	// Returns domain.ErrReservationStoreMissing when the table is absent.
	Reserve(ctx context.Context, eventKey string, role domain.Role, target domain.ScopeTarget) (bool, error)
	Finalize(ctx context.Context, eventKey string, role domain.Role, target domain.ScopeTarget, status domain.ReservationStatus, errorType string, at time.Time) error
}

// OrderScopeResolver looks up the recipients and details of an order.
type OrderScopeResolver interface {
	// ResolveOrder returns nil, nil when the order does not exist.
	ResolveOrder(ctx context.Context, orderID string) (*domain.OrderScope, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"push-delivery-engine/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const subscriptionColumns = `id, role, order_id, pharmacy_id, rider_id, endpoint, auth_secret, public_key,
		invalidated_at, last_failure_status_code, created_at, updated_at`

// SubscriptionRepo implements ports.SubscriptionRepository.
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// Save upserts a subscription keyed by (role, scope, endpoint). On conflict the
// credentials are refreshed and the invalidation fields cleared; sub.ID and
// sub.CreatedAt are set from the stored row.
func (r *SubscriptionRepo) Save(ctx context.Context, tx pgx.Tx, sub *domain.Subscription) error {
	query := `INSERT INTO push_subscriptions
		(id, role, order_id, pharmacy_id, rider_id, endpoint, auth_secret, public_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (role, order_id, pharmacy_id, rider_id, endpoint) DO UPDATE SET
			auth_secret = EXCLUDED.auth_secret,
			public_key = EXCLUDED.public_key,
			invalidated_at = NULL,
			last_failure_status_code = NULL,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	err := tx.QueryRow(ctx, query,
		sub.ID, sub.Role,
		nullable(sub.Target.OrderID), nullable(sub.Target.PharmacyID), nullable(sub.Target.RiderID),
		sub.Endpoint, sub.AuthSecret, sub.PublicKey, sub.CreatedAt, sub.UpdatedAt,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert push subscription: %w", err)
	}
	sub.InvalidatedAt = nil
	sub.LastFailureStatusCode = nil
	return nil
}

// RemoveStaleBindings deletes rows holding endpoint under any other role or scope.
func (r *SubscriptionRepo) RemoveStaleBindings(ctx context.Context, tx pgx.Tx, role domain.Role, target domain.ScopeTarget, endpoint string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM push_subscriptions
		WHERE endpoint = $1 AND NOT (role = $2 AND %s IS NOT DISTINCT FROM $3)`, role.ScopeColumn())

	tag, err := tx.Exec(ctx, query, endpoint, role, target.ID(role))
	if err != nil {
		return 0, fmt.Errorf("remove stale push subscriptions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Remove deletes one endpoint from one scope.
func (r *SubscriptionRepo) Remove(ctx context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM push_subscriptions WHERE role = $1 AND %s = $2 AND endpoint = $3`, role.ScopeColumn())

	tag, err := r.pool.Exec(ctx, query, role, target.ID(role), endpoint)
	if err != nil {
		return 0, fmt.Errorf("remove push subscription: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RemoveByEndpoint deletes every row for endpoint, limited to role when non-nil.
func (r *SubscriptionRepo) RemoveByEndpoint(ctx context.Context, endpoint string, role *domain.Role) (int64, error) {
	query := `DELETE FROM push_subscriptions WHERE endpoint = $1`
	args := []any{endpoint}
	if role != nil {
		query += ` AND role = $2`
		args = append(args, *role)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("remove push subscriptions by endpoint: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RemoveByScope deletes every subscription of one scope.
func (r *SubscriptionRepo) RemoveByScope(ctx context.Context, role domain.Role, target domain.ScopeTarget) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM push_subscriptions WHERE role = $1 AND %s = $2`, role.ScopeColumn())

	tag, err := r.pool.Exec(ctx, query, role, target.ID(role))
	if err != nil {
		return 0, fmt.Errorf("remove push subscriptions by scope: %w", err)
	}
	return tag.RowsAffected(), nil
}

// FetchActive returns the non-invalidated subscriptions of a scope, most recently refreshed first.
func (r *SubscriptionRepo) FetchActive(ctx context.Context, role domain.Role, target domain.ScopeTarget) ([]domain.Subscription, error) {
	query := fmt.Sprintf(`SELECT %s FROM push_subscriptions
		WHERE role = $1 AND %s = $2 AND invalidated_at IS NULL
		ORDER BY updated_at DESC`, subscriptionColumns, role.ScopeColumn())

	rows, err := r.pool.Query(ctx, query, role, target.ID(role))
	if err != nil {
		return nil, fmt.Errorf("fetch active push subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan push subscription: %w", err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate push subscription rows: %w", err)
	}
	return subs, nil
}

// Find returns the subscription for one endpoint of a scope, or nil.
func (r *SubscriptionRepo) Find(ctx context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (*domain.Subscription, error) {
	query := fmt.Sprintf(`SELECT %s FROM push_subscriptions
		WHERE role = $1 AND %s = $2 AND endpoint = $3
		ORDER BY updated_at DESC LIMIT 1`, subscriptionColumns, role.ScopeColumn())

	sub, err := scanSubscription(r.pool.QueryRow(ctx, query, role, target.ID(role), endpoint))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find push subscription: %w", err)
	}
	return sub, nil
}

// InvalidateEndpoints soft-invalidates endpoints of one scope inside tx.
// Rows already invalidated keep their original timestamp and status code.
func (r *SubscriptionRepo) InvalidateEndpoints(
	ctx context.Context,
	tx pgx.Tx,
	role domain.Role,
	target domain.ScopeTarget,
	endpoints []string,
	statusCode int,
	at time.Time,
) (int64, error) {
	query := fmt.Sprintf(`UPDATE push_subscriptions
		SET invalidated_at = $1, last_failure_status_code = $2, updated_at = $1
		WHERE role = $3 AND %s = $4 AND endpoint = ANY($5) AND invalidated_at IS NULL`, role.ScopeColumn())

	tag, err := tx.Exec(ctx, query, at, statusCode, role, target.ID(role), endpoints)
	if err != nil {
		return 0, fmt.Errorf("invalidate push subscriptions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var (
		sub                          domain.Subscription
		orderID, pharmacyID, riderID *string
	)
	err := row.Scan(
		&sub.ID, &sub.Role, &orderID, &pharmacyID, &riderID,
		&sub.Endpoint, &sub.AuthSecret, &sub.PublicKey,
		&sub.InvalidatedAt, &sub.LastFailureStatusCode, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.Target = domain.ScopeTarget{OrderID: deref(orderID), PharmacyID: deref(pharmacyID), RiderID: deref(riderID)}
	return &sub, nil
}

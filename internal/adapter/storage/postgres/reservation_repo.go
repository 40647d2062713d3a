package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"push-delivery-engine/internal/core/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// ReservationRepo implements ports.ReservationRepository.
type ReservationRepo struct {
	pool Pool
}

// NewReservationRepo creates a new ReservationRepo.
func NewReservationRepo(pool Pool) *ReservationRepo {
	return &ReservationRepo{pool: pool}
}

// Reserve inserts the pending sentinel row for an event. It reports false when
// the unique index already holds a row for the same event, role and scope,
// including when a concurrent insert wins the race with a unique violation.
func (r *ReservationRepo) Reserve(ctx context.Context, eventKey string, role domain.Role, target domain.ScopeTarget) (bool, error) {
	query := `INSERT INTO push_delivery_reservations
		(event_key, role, order_id, pharmacy_id, rider_id, endpoint, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		eventKey, role,
		nullable(target.OrderID), nullable(target.PharmacyID), nullable(target.RiderID),
		domain.ReservationSentinelEndpoint, domain.ReservationPending, time.Now().UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
			return false, nil
		}
		return false, mapReservationError("insert delivery reservation", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Finalize records the terminal status of an event's reservation.
func (r *ReservationRepo) Finalize(
	ctx context.Context,
	eventKey string,
	role domain.Role,
	target domain.ScopeTarget,
	status domain.ReservationStatus,
	errorType string,
	at time.Time,
) error {
	query := fmt.Sprintf(`UPDATE push_delivery_reservations
		SET status = $1, error_type = $2, delivered_at = $3
		WHERE event_key = $4 AND role = $5 AND %s = $6 AND endpoint = $7`, role.ScopeColumn())

	_, err := r.pool.Exec(ctx, query,
		status, nullable(errorType), at,
		eventKey, role, target.ID(role), domain.ReservationSentinelEndpoint,
	)
	if err != nil {
		return mapReservationError("finalize delivery reservation", err)
	}
	return nil
}

// mapReservationError turns an undefined_table error into domain.ErrReservationStoreMissing.
func mapReservationError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUndefinedTable {
		return fmt.Errorf("%s: %w", op, domain.ErrReservationStoreMissing)
	}
	return fmt.Errorf("%s: %w", op, err)
}

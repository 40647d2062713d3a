package postgres

import (
	"context"
	"errors"
	"fmt"
)

var errSubscriptionSchemaMissing = errors.New("push_subscriptions table does not exist")

// Only the subscription table is required; the delivery gate runs
// untracked when the reservation table is absent.
const schemaCheckQuery = `SELECT to_regclass('push_subscriptions') IS NOT NULL`

// HealthCheck implements ports.HealthChecker for PostgreSQL.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the subscription table is present.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var present bool
	if err := h.pool.QueryRow(ctx, schemaCheckQuery).Scan(&present); err != nil {
		return fmt.Errorf("checking push schema: %w", err)
	}
	if !present {
		return errSubscriptionSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}

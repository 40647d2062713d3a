package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// DeadSubscriptionInvalidator soft-invalidates endpoints the provider reported as gone.
type DeadSubscriptionInvalidator struct {
	subRepo    ports.SubscriptionRepository
	transactor ports.DBTransactor
	enabled    bool
	log        zerolog.Logger
}

// NewDeadSubscriptionInvalidator creates an invalidator. enabled=false makes Invalidate a no-op.
func NewDeadSubscriptionInvalidator(
	subRepo ports.SubscriptionRepository,
	transactor ports.DBTransactor,
	enabled bool,
	log zerolog.Logger,
) *DeadSubscriptionInvalidator {
	return &DeadSubscriptionInvalidator{
		subRepo:    subRepo,
		transactor: transactor,
		enabled:    enabled,
		log:        log,
	}
}

// Invalidate marks the dead endpoints of one scope, one batch update per status
// code, committed as a single transaction. Returns rows updated per status code.
func (i *DeadSubscriptionInvalidator) Invalidate(
	ctx context.Context,
	role domain.Role,
	target domain.ScopeTarget,
	dead map[int][]string,
) (map[int]int64, error) {
	if !i.enabled || len(dead) == 0 {
		return nil, nil
	}

	codes := make([]int, 0, len(dead))
	for code, endpoints := range dead {
		if len(endpoints) > 0 {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return nil, nil
	}
	sort.Ints(codes)

	dbTx, err := i.transactor.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin invalidation tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := time.Now().UTC()
	updated := make(map[int]int64, len(codes))
	for _, code := range codes {
		n, err := i.subRepo.InvalidateEndpoints(ctx, dbTx, role, target, dead[code], code, now)
		if err != nil {
			return nil, fmt.Errorf("invalidate status %d: %w", code, err)
		}
		updated[code] = n
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit invalidation tx: %w", err)
	}

	i.log.Info().
		Str("role", string(role)).
		Str("scope", target.String()).
		Interface("invalidated", updated).
		Msg("dead subscriptions invalidated")

	return updated, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// DeliveryGate reserves one slot per (event key, role, scope) before a fan-out
// and records its terminal status afterwards. Once the reservation table is
// found missing the gate stays disabled for the life of the instance.
type DeliveryGate struct {
	repo        ports.ReservationRepository
	enabled     atomic.Bool
	missingOnce sync.Once
	log         zerolog.Logger
}

// NewDeliveryGate creates a gate. enabled=false turns it into a pass-through.
func NewDeliveryGate(repo ports.ReservationRepository, enabled bool, log zerolog.Logger) *DeliveryGate {
	g := &DeliveryGate{repo: repo, log: log}
	g.enabled.Store(enabled && repo != nil)
	return g
}

// Enabled reports whether reservations are currently tracked.
func (g *DeliveryGate) Enabled() bool {
	return g.enabled.Load()
}

// Reserve claims the slot for an event. It never fails: storage errors other
// than a missing table count as an existing reservation.
func (g *DeliveryGate) Reserve(ctx context.Context, eventKey string, role domain.Role, target domain.ScopeTarget) domain.Reservation {
	if !g.Enabled() {
		return domain.Reservation{}
	}

	inserted, err := g.repo.Reserve(ctx, eventKey, role, target)
	if err != nil {
		if errors.Is(err, domain.ErrReservationStoreMissing) {
			g.disable(err)
			return domain.Reservation{}
		}
		g.log.Warn().Err(err).
			Str("event_key", eventKey).
			Str("role", string(role)).
			Str("scope", target.String()).
			Msg("reservation insert failed, treating as duplicate")
		return domain.Reservation{TrackingEnabled: true, Deduped: true}
	}

	return domain.Reservation{TrackingEnabled: true, Deduped: !inserted}
}

// Finalize writes the terminal status of a reserved event.
func (g *DeliveryGate) Finalize(
	ctx context.Context,
	eventKey string,
	role domain.Role,
	target domain.ScopeTarget,
	status domain.ReservationStatus,
	failures map[domain.FailureKind]int,
) error {
	if !g.Enabled() {
		return nil
	}

	err := g.repo.Finalize(ctx, eventKey, role, target, status, JoinFailureKinds(failures), time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrReservationStoreMissing) {
			g.disable(err)
			return nil
		}
		return fmt.Errorf("finalize reservation %s: %w", eventKey, err)
	}
	return nil
}

func (g *DeliveryGate) disable(cause error) {
	g.enabled.Store(false)
	g.missingOnce.Do(func() {
		g.log.Warn().Err(cause).Msg("delivery reservation table missing, idempotency gate disabled")
	})
}

// JoinFailureKinds renders the kinds with a non-zero count, sorted and comma separated.
func JoinFailureKinds(failures map[domain.FailureKind]int) string {
	kinds := make([]string, 0, len(failures))
	for k, n := range failures {
		if n > 0 {
			kinds = append(kinds, string(k))
		}
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ",")
}

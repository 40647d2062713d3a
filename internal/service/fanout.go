package service

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"push-delivery-engine/config"
	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/pkg/apperror"
	"push-delivery-engine/pkg/logger"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FanoutRequest is one logical notification addressed to a scope.
// Subscriptions are expected to be deduplicated by endpoint already.
type FanoutRequest struct {
	Subscriptions []domain.Subscription
	Payload       domain.PushPayload
	Role          domain.Role
	Target        domain.ScopeTarget
	EventKey      string
}

// FanoutEngine delivers a payload to many subscriptions through a bounded worker pool.
type FanoutEngine struct {
	sender      ports.PushSender
	gate        *DeliveryGate
	invalidator *DeadSubscriptionInvalidator
	policy      RetryPolicy
	concurrency int
	metrics     ports.DeliveryMetrics
	log         zerolog.Logger
}

// NewFanoutEngine creates an engine. concurrency is clamped to [1, config.MaxConcurrency].
// A nil metrics sink disables instrumentation.
func NewFanoutEngine(
	sender ports.PushSender,
	gate *DeliveryGate,
	invalidator *DeadSubscriptionInvalidator,
	policy RetryPolicy,
	concurrency int,
	metrics ports.DeliveryMetrics,
	log zerolog.Logger,
) *FanoutEngine {
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > config.MaxConcurrency {
		concurrency = config.MaxConcurrency
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &FanoutEngine{
		sender:      sender,
		gate:        gate,
		invalidator: invalidator,
		policy:      policy,
		concurrency: concurrency,
		metrics:     metrics,
		log:         log,
	}
}

// Send runs one fan-out. Individual delivery failures are reported in the
// result, never as an error; the error return covers payload encoding only.
// ctx bounds the reservation only: sends and settlement ignore its cancellation
// and rely on the push client's per-request timeout.
func (e *FanoutEngine) Send(ctx context.Context, req FanoutRequest) (*domain.FanoutResult, error) {
	result := &domain.FanoutResult{
		EventKey: req.EventKey,
		Role:     req.Role,
		Target:   req.Target,
		Total:    len(req.Subscriptions),
	}
	if len(req.Subscriptions) == 0 {
		result.Skipped = true
		return result, nil
	}

	body, err := json.Marshal(req.Payload)
	if err != nil {
		return nil, apperror.ErrPayloadEncoding(err)
	}

	log := logger.Event(e.log, req.EventKey, string(req.Role), req.Target.String())

	reservation := e.gate.Reserve(ctx, req.EventKey, req.Role, req.Target)
	result.TrackingEnabled = reservation.TrackingEnabled
	if reservation.Deduped {
		result.Deduped = true
		e.metrics.ObserveDeduped(req.Role)
		log.Info().Msg("event already dispatched, skipping")
		return result, nil
	}

	// Once reserved, every slot runs to completion and the reservation is
	// settled even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	start := time.Now()
	result.Outcomes = e.dispatch(ctx, req.Subscriptions, body)
	aggregate(result)
	result.Status = domain.FinalStatus(result.Sent, result.Failed)

	for _, o := range result.Outcomes {
		e.metrics.ObserveAttempt(req.Role, o.Sent, o.FailureKind)
	}

	e.settle(ctx, log, req, result)

	e.metrics.ObserveFanout(req.Role, result.Status, time.Since(start))
	log.Info().
		Int("total", result.Total).
		Int("sent", result.Sent).
		Int("failed", result.Failed).
		Int64("invalidated", result.Invalidated).
		Str("status", string(result.Status)).
		Bool("tracking", result.TrackingEnabled).
		Msg("fanout complete")

	return result, nil
}

// dispatch runs min(concurrency, len(subs)) workers that claim subscriptions
// from a shared cursor until none remain.
func (e *FanoutEngine) dispatch(ctx context.Context, subs []domain.Subscription, body []byte) []domain.SendOutcome {
	outcomes := make([]domain.SendOutcome, len(subs))
	workers := e.concurrency
	if workers > len(subs) {
		workers = len(subs)
	}

	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(cursor.Add(1) - 1)
				if i >= len(subs) {
					return
				}
				sub := subs[i]
				outcomes[i] = e.policy.Deliver(ctx, sub.Endpoint, func(ctx context.Context) error {
					return e.sender.Send(ctx, sub, body)
				})
			}
		}()
	}
	wg.Wait()

	return outcomes
}

// settle invalidates dead endpoints and finalizes the reservation concurrently.
// Both are best-effort: failures are logged and do not change the result status.
func (e *FanoutEngine) settle(ctx context.Context, log zerolog.Logger, req FanoutRequest, result *domain.FanoutResult) {
	var g errgroup.Group

	if len(result.DeadEndpoints) > 0 {
		g.Go(func() error {
			updated, err := e.invalidator.Invalidate(ctx, req.Role, req.Target, result.DeadEndpoints)
			if err != nil {
				log.Error().Err(err).Msg("dead subscription invalidation failed")
				return nil
			}
			var total int64
			for code, n := range updated {
				total += n
				e.metrics.ObserveInvalidated(req.Role, code, n)
			}
			result.Invalidated = total
			return nil
		})
	}

	if result.TrackingEnabled {
		g.Go(func() error {
			if err := e.gate.Finalize(ctx, req.EventKey, req.Role, req.Target, result.Status, result.FailuresByKind); err != nil {
				log.Error().Err(err).Msg("reservation finalize failed")
			}
			return nil
		})
	}

	_ = g.Wait()
}

func aggregate(result *domain.FanoutResult) {
	result.FailuresByKind = make(map[domain.FailureKind]int)
	result.DeadEndpoints = make(map[int][]string)

	for _, o := range result.Outcomes {
		if o.Sent {
			result.Sent++
			continue
		}
		result.Failed++
		result.FailuresByKind[o.FailureKind]++
		if o.IsDeadEndpoint && o.StatusCode != nil {
			code := *o.StatusCode
			result.DeadEndpoints[code] = append(result.DeadEndpoints[code], o.Endpoint)
		}
	}
}

type noopMetrics struct{}

func (noopMetrics) ObserveAttempt(domain.Role, bool, domain.FailureKind)               {}
func (noopMetrics) ObserveFanout(domain.Role, domain.ReservationStatus, time.Duration) {}
func (noopMetrics) ObserveDeduped(domain.Role)                                         {}
func (noopMetrics) ObserveInvalidated(domain.Role, int, int64)                         {}

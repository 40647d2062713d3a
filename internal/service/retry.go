package service

import (
	"context"
	"fmt"
	"time"

	"push-delivery-engine/config"
	"push-delivery-engine/internal/core/domain"
)

// DefaultBackoffUnit is multiplied by the attempt number between retries.
const DefaultBackoffUnit = 60 * time.Millisecond

// RetryPolicy drives one subscription through bounded, linearly backed-off attempts.
type RetryPolicy struct {
	maxAttempts int
	backoffUnit time.Duration
}

// NewRetryPolicy builds a policy allowing 1+retryCount attempts.
// retryCount is clamped to [0, config.MaxRetryCount]; a zero unit selects DefaultBackoffUnit.
func NewRetryPolicy(retryCount int, backoffUnit time.Duration) RetryPolicy {
	if retryCount < 0 {
		retryCount = 0
	}
	if retryCount > config.MaxRetryCount {
		retryCount = config.MaxRetryCount
	}
	if backoffUnit <= 0 {
		backoffUnit = DefaultBackoffUnit
	}
	return RetryPolicy{maxAttempts: 1 + retryCount, backoffUnit: backoffUnit}
}

// MaxAttempts returns the total number of attempts allowed per subscription.
func (p RetryPolicy) MaxAttempts() int {
	return p.maxAttempts
}

// ShouldRetry reports whether another attempt follows the given one (1-based).
func (p RetryPolicy) ShouldRetry(c domain.Classification, attempt int) bool {
	return c.IsRetryable && attempt < p.maxAttempts
}

// Backoff returns the wait after the given attempt.
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	return p.backoffUnit * time.Duration(attempt)
}

// Deliver calls send until it succeeds or the policy gives up.
func (p RetryPolicy) Deliver(ctx context.Context, endpoint string, send func(ctx context.Context) error) domain.SendOutcome {
	out := domain.SendOutcome{Endpoint: endpoint}

	for attempt := 1; ; attempt++ {
		out.Attempts = attempt
		err := attemptSafely(ctx, send)
		if err == nil {
			out.Sent = true
			out.FailureKind = ""
			out.StatusCode = nil
			out.IsDeadEndpoint = false
			return out
		}

		c := ClassifyFailure(err)
		out.FailureKind = c.Kind
		out.StatusCode = c.StatusCode
		out.IsDeadEndpoint = c.IsDeadEndpoint

		if !p.ShouldRetry(c, attempt) {
			return out
		}

		timer := time.NewTimer(p.Backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return out
		case <-timer.C:
		}
	}
}

// attemptSafely converts a panic inside send into domain.ErrWorkerPanic.
func attemptSafely(ctx context.Context, send func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", domain.ErrWorkerPanic, r)
		}
	}()
	return send(ctx)
}

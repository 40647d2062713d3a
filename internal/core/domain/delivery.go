package domain

import (
	"errors"
	"fmt"
)

// ErrWorkerPanic marks a delivery attempt that panicked inside the push client.
var ErrWorkerPanic = errors.New("push worker panicked")

// FailureKind classifies why a push attempt failed.
type FailureKind string

const (
	FailureDeadEndpoint FailureKind = "dead_endpoint"
	FailureAuth         FailureKind = "auth_error"
	FailureTimeout      FailureKind = "timeout"
	FailureNetwork      FailureKind = "network"
	FailureUnknown      FailureKind = "unknown"
	FailureInternal     FailureKind = "internal"
)

// Classification is the classifier's verdict on one failed attempt.
type Classification struct {
	Kind           FailureKind
	StatusCode     *int
	IsDeadEndpoint bool
	IsRetryable    bool
}

// PushError is a failed push attempt as reported by the transport.
// StatusCode is zero when no HTTP response was received.
type PushError struct {
	StatusCode int
	Code       string // transport error code, e.g. ECONNRESET
	Body       string
	Err        error
}

func (e *PushError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("push rejected with status %d: %s", e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("push transport error %s: %v", e.Code, e.Err)
	default:
		return "push transport error " + e.Code
	}
}

func (e *PushError) Unwrap() error {
	return e.Err
}

// SendOutcome is the final result for one subscription within a fan-out.
type SendOutcome struct {
	Endpoint       string      `json:"endpoint"`
	Sent           bool        `json:"sent"`
	FailureKind    FailureKind `json:"failure_kind,omitempty"`
	StatusCode     *int        `json:"status_code,omitempty"`
	IsDeadEndpoint bool        `json:"is_dead_endpoint,omitempty"`
	Attempts       int         `json:"attempts"`
}

// FanoutResult aggregates one fan-out call.
type FanoutResult struct {
	EventKey        string              `json:"event_key"`
	Role            Role                `json:"role"`
	Target          ScopeTarget         `json:"target"`
	Skipped         bool                `json:"skipped"` // nothing to send
	Deduped         bool                `json:"deduped"`
	TrackingEnabled bool                `json:"tracking_enabled"`
	Total           int                 `json:"total"`
	Sent            int                 `json:"sent"`
	Failed          int                 `json:"failed"`
	FailuresByKind  map[FailureKind]int `json:"failures_by_kind,omitempty"`
	DeadEndpoints   map[int][]string    `json:"-"`
	Invalidated     int64               `json:"invalidated"`
	Status          ReservationStatus   `json:"status,omitempty"`
	Outcomes        []SendOutcome       `json:"-"`
}

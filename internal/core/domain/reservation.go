package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

// ReservationSentinelEndpoint marks gate rows apart from real recipient endpoints.
const ReservationSentinelEndpoint = "__delivery_gate__"

// ErrReservationStoreMissing is returned by reservation storage when its table does not exist.
var ErrReservationStoreMissing = errors.New("delivery reservation table does not exist")

// ReservationStatus is the lifecycle state of a delivery reservation.
type ReservationStatus string

const (
	ReservationPending       ReservationStatus = "pending"
	ReservationSent          ReservationStatus = "sent"
	ReservationFailed        ReservationStatus = "failed"
	ReservationPartialFailed ReservationStatus = "partial_failed"
)

// IsTerminal returns true once the reservation has been finalized.
func (s ReservationStatus) IsTerminal() bool {
	return s != ReservationPending
}

// FinalStatus derives the terminal status of a fan-out from its counts.
func FinalStatus(sent, failed int) ReservationStatus {
	switch {
	case failed == 0:
		return ReservationSent
	case sent > 0:
		return ReservationPartialFailed
	default:
		return ReservationFailed
	}
}

// DeliveryReservation is the idempotency record for one logical event.
type DeliveryReservation struct {
	EventKey    string            `json:"event_key"`
	Role        Role              `json:"role"`
	Target      ScopeTarget       `json:"target"`
	Status      ReservationStatus `json:"status"`
	ErrorType   string            `json:"error_type,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	DeliveredAt *time.Time        `json:"delivered_at,omitempty"`
}

// Reservation is the outcome of asking the delivery gate for a slot.
type Reservation struct {
	TrackingEnabled bool `json:"tracking_enabled"`
	Deduped         bool `json:"deduped"`
}

// Event key builders. Keys must be unique per logical event; reusing one
// across unrelated events suppresses the later event.

func OrderStatusEventKey(orderID, status string) string {
	return "order:" + orderID + ":customer:status:" + status
}

func NewOrderEventKey(orderID string) string {
	return "order:" + orderID + ":pharmacy:new"
}

func RiderDispatchEventKey(orderID, riderID string) string {
	return "order:" + orderID + ":rider:dispatch:" + riderID
}

func MessageEventKey(orderID string, role Role, content string) string {
	return "order:" + orderID + ":" + string(role) + ":message:" + ContentDigest(content)
}

// ContentDigest returns a short stable fingerprint of message content.
func ContentDigest(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:16]
}

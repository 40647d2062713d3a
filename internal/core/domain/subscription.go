package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies which party a push subscription belongs to.
type Role string

const (
	RoleCustomer Role = "customer"
	RolePharmacy Role = "pharmacy"
	RoleRider    Role = "rider"
)

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleCustomer, RolePharmacy, RoleRider:
		return r, true
	}
	return "", false
}

// ScopeColumn returns the storage column that scopes this role's rows.
func (r Role) ScopeColumn() string {
	switch r {
	case RolePharmacy:
		return "pharmacy_id"
	case RoleRider:
		return "rider_id"
	default:
		return "order_id"
	}
}

// ScopeTarget is the single identifier a role's subscriptions and
// reservations are keyed against. Exactly one field is set.
type ScopeTarget struct {
	OrderID    string `json:"order_id,omitempty"`
	PharmacyID string `json:"pharmacy_id,omitempty"`
	RiderID    string `json:"rider_id,omitempty"`
}

func ForOrder(orderID string) ScopeTarget       { return ScopeTarget{OrderID: orderID} }
func ForPharmacy(pharmacyID string) ScopeTarget { return ScopeTarget{PharmacyID: pharmacyID} }
func ForRider(riderID string) ScopeTarget       { return ScopeTarget{RiderID: riderID} }

// Valid reports whether exactly the identifier matching role is set.
func (t ScopeTarget) Valid(role Role) bool {
	set := 0
	for _, id := range []string{t.OrderID, t.PharmacyID, t.RiderID} {
		if id != "" {
			set++
		}
	}
	return set == 1 && t.ID(role) != ""
}

// ID returns the identifier relevant to role.
func (t ScopeTarget) ID(role Role) string {
	switch role {
	case RolePharmacy:
		return t.PharmacyID
	case RoleRider:
		return t.RiderID
	default:
		return t.OrderID
	}
}

func (t ScopeTarget) String() string {
	switch {
	case t.OrderID != "":
		return "order:" + t.OrderID
	case t.PharmacyID != "":
		return "pharmacy:" + t.PharmacyID
	case t.RiderID != "":
		return "rider:" + t.RiderID
	}
	return "none"
}

// Subscription is one recipient endpoint registered for push delivery.
type Subscription struct {
	ID                    uuid.UUID   `json:"id"`
	Role                  Role        `json:"role"`
	Target                ScopeTarget `json:"target"`
	Endpoint              string      `json:"endpoint"`
	AuthSecret            string      `json:"-"`
	PublicKey             string      `json:"-"`
	InvalidatedAt         *time.Time  `json:"invalidated_at,omitempty"`
	LastFailureStatusCode *int        `json:"last_failure_status_code,omitempty"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// IsActive returns true if the subscription has not been invalidated.
func (s *Subscription) IsActive() bool {
	return s.InvalidatedAt == nil
}

// SubscriptionAction tells a client what to do with its local push registration.
type SubscriptionAction string

const (
	ActionSync        SubscriptionAction = "sync"
	ActionResubscribe SubscriptionAction = "resubscribe"
	ActionNoop        SubscriptionAction = "noop"
)

// SubscriptionStatus is the result of a status lookup for one endpoint.
type SubscriptionStatus struct {
	Subscribed bool               `json:"subscribed"`
	Action     SubscriptionAction `json:"action"`
}

// StatusOf derives the status for a stored row; sub may be nil.
func StatusOf(sub *Subscription) SubscriptionStatus {
	switch {
	case sub == nil:
		return SubscriptionStatus{Subscribed: false, Action: ActionSync}
	case !sub.IsActive():
		return SubscriptionStatus{Subscribed: false, Action: ActionResubscribe}
	default:
		return SubscriptionStatus{Subscribed: true, Action: ActionNoop}
	}
}

// DedupeByEndpoint keeps the first subscription seen for each endpoint.
func DedupeByEndpoint(subs []Subscription) []Subscription {
	seen := make(map[string]struct{}, len(subs))
	out := make([]Subscription, 0, len(subs))
	for _, s := range subs {
		if _, dup := seen[s.Endpoint]; dup {
			continue
		}
		seen[s.Endpoint] = struct{}{}
		out = append(out, s)
	}
	return out
}

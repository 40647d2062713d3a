package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"customer", RoleCustomer, true},
		{"pharmacy", RolePharmacy, true},
		{"rider", RoleRider, true},
		{"admin", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRole_ScopeColumn(t *testing.T) {
	assert.Equal(t, "order_id", RoleCustomer.ScopeColumn())
	assert.Equal(t, "pharmacy_id", RolePharmacy.ScopeColumn())
	assert.Equal(t, "rider_id", RoleRider.ScopeColumn())
}

func TestScopeTarget_Valid(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		target ScopeTarget
		want   bool
	}{
		{"customer with order", RoleCustomer, ForOrder("o1"), true},
		{"pharmacy with pharmacy", RolePharmacy, ForPharmacy("p1"), true},
		{"rider with rider", RoleRider, ForRider("r1"), true},
		{"customer with pharmacy", RoleCustomer, ForPharmacy("p1"), false},
		{"rider with order", RoleRider, ForOrder("o1"), false},
		{"two identifiers", RoleCustomer, ScopeTarget{OrderID: "o1", RiderID: "r1"}, false},
		{"empty", RolePharmacy, ScopeTarget{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.Valid(tt.role))
		})
	}
}

func TestScopeTarget_String(t *testing.T) {
	assert.Equal(t, "order:42", ForOrder("42").String())
	assert.Equal(t, "pharmacy:7", ForPharmacy("7").String())
	assert.Equal(t, "rider:9", ForRider("9").String())
	assert.Equal(t, "none", ScopeTarget{}.String())
}

func TestStatusOf(t *testing.T) {
	now := time.Now()

	assert.Equal(t, SubscriptionStatus{Subscribed: false, Action: ActionSync}, StatusOf(nil))
	assert.Equal(t, SubscriptionStatus{Subscribed: false, Action: ActionResubscribe},
		StatusOf(&Subscription{InvalidatedAt: &now}))
	assert.Equal(t, SubscriptionStatus{Subscribed: true, Action: ActionNoop}, StatusOf(&Subscription{}))
}

func TestDedupeByEndpoint_FirstWins(t *testing.T) {
	subs := []Subscription{
		{Endpoint: "https://push.example/a", AuthSecret: "first"},
		{Endpoint: "https://push.example/b"},
		{Endpoint: "https://push.example/a", AuthSecret: "second"},
	}

	out := DedupeByEndpoint(subs)
	assert.Len(t, out, 2)
	assert.Equal(t, "first", out[0].AuthSecret)
	assert.Equal(t, "https://push.example/b", out[1].Endpoint)
}

func TestFinalStatus(t *testing.T) {
	tests := []struct {
		name         string
		sent, failed int
		want         ReservationStatus
	}{
		{"all sent", 3, 0, ReservationSent},
		{"some failed", 1, 2, ReservationPartialFailed},
		{"none sent", 0, 3, ReservationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FinalStatus(tt.sent, tt.failed))
			assert.True(t, tt.want.IsTerminal())
		})
	}
	assert.False(t, ReservationPending.IsTerminal())
}

func TestEventKeys(t *testing.T) {
	assert.Equal(t, "order:17:customer:status:delivered", OrderStatusEventKey("17", "delivered"))
	assert.Equal(t, "order:17:pharmacy:new", NewOrderEventKey("17"))
	assert.Equal(t, "order:17:rider:dispatch:r5", RiderDispatchEventKey("17", "r5"))

	k1 := MessageEventKey("17", RolePharmacy, "is the prescription ready?")
	k2 := MessageEventKey("17", RolePharmacy, "is the prescription ready?")
	k3 := MessageEventKey("17", RoleCustomer, "is the prescription ready?")
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Len(t, ContentDigest("x"), 16)
}

func TestPushError(t *testing.T) {
	withStatus := &PushError{StatusCode: 410, Body: "gone"}
	assert.Equal(t, "push rejected with status 410: gone", withStatus.Error())

	inner := fmt.Errorf("read: connection reset by peer")
	transport := &PushError{Code: "ECONNRESET", Err: inner}
	assert.Contains(t, transport.Error(), "ECONNRESET")
	assert.True(t, errors.Is(transport, inner))
}

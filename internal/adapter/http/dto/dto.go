package dto

import "push-delivery-engine/internal/core/domain"

// SubscriptionKeys mirrors PushSubscription.toJSON().keys in the browser.
type SubscriptionKeys struct {
	Auth   string `json:"auth" binding:"required,max=256,push_key"`
	P256dh string `json:"p256dh" binding:"required,max=256,push_key"`
}

// SubscriptionRequest is the body posted by the service worker after subscribing.
type SubscriptionRequest struct {
	Endpoint       string           `json:"endpoint" binding:"required,max=2048,safe_url"`
	ExpirationTime *int64           `json:"expirationTime,omitempty"`
	Keys           SubscriptionKeys `json:"keys" binding:"required"`
}

// RemoveSubscriptionRequest identifies one endpoint to drop from a scope.
type RemoveSubscriptionRequest struct {
	Endpoint string `json:"endpoint" binding:"required,max=2048"`
}

// RemoveByEndpointRequest drops an endpoint everywhere, or only under Role.
type RemoveByEndpointRequest struct {
	Endpoint string `json:"endpoint" binding:"required,max=2048"`
	Role     string `json:"role,omitempty" binding:"omitempty,oneof=customer pharmacy rider"`
}

// StatusQuery is the query string of a subscription status lookup.
type StatusQuery struct {
	Endpoint string `form:"endpoint" binding:"max=2048"`
}

// OrderStatusNotificationRequest triggers the customer status notification.
type OrderStatusNotificationRequest struct {
	Status string  `json:"status" binding:"required,max=40,safe_id"`
	Image  *string `json:"image,omitempty" binding:"omitempty,max=2048,safe_url"`
}

// MessageNotificationRequest triggers a chat message notification.
// EventKey overrides the content-derived key when the caller has a message ID.
type MessageNotificationRequest struct {
	Content  string `json:"content" binding:"required,max=4000"`
	EventKey string `json:"event_key,omitempty" binding:"omitempty,max=200"`
}

// SubscriptionResponse is returned after a successful subscribe.
type SubscriptionResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Endpoint string `json:"endpoint"`
}

// RemoveResponse reports how many subscription rows were deleted.
type RemoveResponse struct {
	Removed int64 `json:"removed"`
}

// VAPIDKeyResponse carries the application server key for pushManager.subscribe.
type VAPIDKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// FanoutResponse summarises a notification dispatch.
type FanoutResponse struct {
	EventKey        string         `json:"event_key"`
	Role            string         `json:"role"`
	Skipped         bool           `json:"skipped"`
	Deduped         bool           `json:"deduped"`
	TrackingEnabled bool           `json:"tracking_enabled"`
	Total           int            `json:"total"`
	Sent            int            `json:"sent"`
	Failed          int            `json:"failed"`
	FailuresByKind  map[string]int `json:"failures_by_kind,omitempty"`
	Invalidated     int64          `json:"invalidated"`
	Status          string         `json:"status,omitempty"`
}

// ToFanoutResponse maps a fan-out result onto its wire form.
func ToFanoutResponse(r *domain.FanoutResult) FanoutResponse {
	resp := FanoutResponse{
		EventKey:        r.EventKey,
		Role:            string(r.Role),
		Skipped:         r.Skipped,
		Deduped:         r.Deduped,
		TrackingEnabled: r.TrackingEnabled,
		Total:           r.Total,
		Sent:            r.Sent,
		Failed:          r.Failed,
		Invalidated:     r.Invalidated,
		Status:          string(r.Status),
	}
	if len(r.FailuresByKind) > 0 {
		resp.FailuresByKind = make(map[string]int, len(r.FailuresByKind))
		for kind, n := range r.FailuresByKind {
			resp.FailuresByKind[string(kind)] = n
		}
	}
	return resp
}

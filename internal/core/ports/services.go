package ports

import (
	"context"
	"time"

	"push-delivery-engine/internal/core/domain"
)

// PushSender delivers one serialized payload to one subscription.
// Failures are reported as *domain.PushError where the transport allows.
type PushSender interface {
	Send(ctx context.Context, sub domain.Subscription, payload []byte) error
}

// MessageComposer builds the payload for each notification kind.
type MessageComposer interface {
	OrderStatus(order domain.OrderScope, status string, image *string) domain.PushPayload
	NewOrder(order domain.OrderScope) domain.PushPayload
	RiderDispatch(order domain.OrderScope) domain.PushPayload
	PharmacyMessage(order domain.OrderScope, content string) domain.PushPayload
	CustomerMessage(order domain.OrderScope, content string) domain.PushPayload
}

// DeliveryMetrics receives fan-out instrumentation.
type DeliveryMetrics interface {
	ObserveAttempt(role domain.Role, sent bool, kind domain.FailureKind)
	ObserveFanout(role domain.Role, status domain.ReservationStatus, elapsed time.Duration)
	ObserveDeduped(role domain.Role)
	ObserveInvalidated(role domain.Role, statusCode int, count int64)
}

// TokenService issues and validates service-to-service JWTs.
type TokenService interface {
	Generate(service string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims identifies the internal caller behind a bearer token.
type TokenClaims struct {
	Service string
	TokenID string
}

// --- Service Ports (Business Logic) ---

// SubscriptionService manages recipient endpoints for every role.
type SubscriptionService interface {
	Save(ctx context.Context, req SaveSubscriptionRequest) (*domain.Subscription, error)
	Remove(ctx context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (int64, error)
	RemoveByEndpoint(ctx context.Context, endpoint string, role *domain.Role) (int64, error)
	RemoveAllForScope(ctx context.Context, role domain.Role, target domain.ScopeTarget) (int64, error)
	Status(ctx context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (domain.SubscriptionStatus, error)
	FetchActive(ctx context.Context, role domain.Role, target domain.ScopeTarget) ([]domain.Subscription, error)
}

// SaveSubscriptionRequest holds validated input for a subscribe call.
type SaveSubscriptionRequest struct {
	Role       domain.Role
	Target     domain.ScopeTarget
	Endpoint   string
	AuthSecret string
	PublicKey  string
}

// NotificationService is the per-event entry point used by the order workflow.
type NotificationService interface {
	SendOrderNotification(ctx context.Context, orderID, status string, image *string) (*domain.FanoutResult, error)
	SendNewOrderNotification(ctx context.Context, orderID string) (*domain.FanoutResult, error)
	SendRiderNotification(ctx context.Context, orderID string) (*domain.FanoutResult, error)
	SendPharmacyMessageNotification(ctx context.Context, orderID, content, eventKey string) (*domain.FanoutResult, error)
	SendCustomerMessageNotification(ctx context.Context, orderID, content, eventKey string) (*domain.FanoutResult, error)
}

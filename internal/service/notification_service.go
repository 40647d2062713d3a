package service

import (
	"context"
	"strings"

	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// NotificationServiceImpl implements ports.NotificationService.
type NotificationServiceImpl struct {
	orders   ports.OrderScopeResolver
	subs     ports.SubscriptionService
	composer ports.MessageComposer
	engine   *FanoutEngine
	log      zerolog.Logger
}

// NewNotificationService creates a new NotificationServiceImpl.
func NewNotificationService(
	orders ports.OrderScopeResolver,
	subs ports.SubscriptionService,
	composer ports.MessageComposer,
	engine *FanoutEngine,
	log zerolog.Logger,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		orders:   orders,
		subs:     subs,
		composer: composer,
		engine:   engine,
		log:      log,
	}
}

// SendOrderNotification tells the customer about an order status change.
func (s *NotificationServiceImpl) SendOrderNotification(ctx context.Context, orderID, status string, image *string) (*domain.FanoutResult, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, apperror.ErrInvalidEvent("status is required")
	}
	order, err := s.resolve(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, domain.RoleCustomer, domain.ForOrder(order.OrderID),
		domain.OrderStatusEventKey(order.OrderID, status),
		func() domain.PushPayload { return s.composer.OrderStatus(*order, status, image) })
}

// SendNewOrderNotification alerts the order's pharmacy.
func (s *NotificationServiceImpl) SendNewOrderNotification(ctx context.Context, orderID string) (*domain.FanoutResult, error) {
	order, err := s.resolve(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PharmacyID == "" {
		return s.skip(order.OrderID, domain.RolePharmacy, domain.NewOrderEventKey(order.OrderID)), nil
	}

	return s.dispatch(ctx, domain.RolePharmacy, domain.ForPharmacy(order.PharmacyID),
		domain.NewOrderEventKey(order.OrderID),
		func() domain.PushPayload { return s.composer.NewOrder(*order) })
}

// SendRiderNotification alerts the rider assigned to the order.
func (s *NotificationServiceImpl) SendRiderNotification(ctx context.Context, orderID string) (*domain.FanoutResult, error) {
	order, err := s.resolve(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RiderID == "" {
		return s.skip(order.OrderID, domain.RoleRider, domain.RiderDispatchEventKey(order.OrderID, "")), nil
	}

	return s.dispatch(ctx, domain.RoleRider, domain.ForRider(order.RiderID),
		domain.RiderDispatchEventKey(order.OrderID, order.RiderID),
		func() domain.PushPayload { return s.composer.RiderDispatch(*order) })
}

// SendPharmacyMessageNotification forwards a customer chat message to the pharmacy.
// An empty eventKey is derived from the message content.
func (s *NotificationServiceImpl) SendPharmacyMessageNotification(ctx context.Context, orderID, content, eventKey string) (*domain.FanoutResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.ErrInvalidEvent("content is required")
	}
	order, err := s.resolve(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if eventKey == "" {
		eventKey = domain.MessageEventKey(order.OrderID, domain.RolePharmacy, content)
	}
	if order.PharmacyID == "" {
		return s.skip(order.OrderID, domain.RolePharmacy, eventKey), nil
	}

	return s.dispatch(ctx, domain.RolePharmacy, domain.ForPharmacy(order.PharmacyID), eventKey,
		func() domain.PushPayload { return s.composer.PharmacyMessage(*order, content) })
}

// SendCustomerMessageNotification forwards a pharmacy chat message to the customer.
// An empty eventKey is derived from the message content.
func (s *NotificationServiceImpl) SendCustomerMessageNotification(ctx context.Context, orderID, content, eventKey string) (*domain.FanoutResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperror.ErrInvalidEvent("content is required")
	}
	order, err := s.resolve(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if eventKey == "" {
		eventKey = domain.MessageEventKey(order.OrderID, domain.RoleCustomer, content)
	}

	return s.dispatch(ctx, domain.RoleCustomer, domain.ForOrder(order.OrderID), eventKey,
		func() domain.PushPayload { return s.composer.CustomerMessage(*order, content) })
}

func (s *NotificationServiceImpl) resolve(ctx context.Context, orderID string) (*domain.OrderScope, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, apperror.ErrInvalidEvent("order id is required")
	}
	order, err := s.orders.ResolveOrder(ctx, orderID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	return order, nil
}

// dispatch fetches the scope's subscriptions and runs the fan-out.
// The payload is only composed when there is someone to send it to.
func (s *NotificationServiceImpl) dispatch(
	ctx context.Context,
	role domain.Role,
	target domain.ScopeTarget,
	eventKey string,
	compose func() domain.PushPayload,
) (*domain.FanoutResult, error) {
	subs, err := s.subs.FetchActive(ctx, role, target)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	req := FanoutRequest{
		Subscriptions: subs,
		Role:          role,
		Target:        target,
		EventKey:      eventKey,
	}
	if len(subs) > 0 {
		req.Payload = compose()
	} else {
		s.log.Debug().
			Str("event_key", eventKey).
			Str("role", string(role)).
			Str("scope", target.String()).
			Msg("no active subscriptions, skipping")
	}

	return s.engine.Send(ctx, req)
}

func (s *NotificationServiceImpl) skip(orderID string, role domain.Role, eventKey string) *domain.FanoutResult {
	s.log.Debug().
		Str("order_id", orderID).
		Str("role", string(role)).
		Str("event_key", eventKey).
		Msg("order has no recipient for role, skipping")
	return &domain.FanoutResult{EventKey: eventKey, Role: role, Skipped: true}
}

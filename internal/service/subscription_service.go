package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SubscriptionServiceImpl implements ports.SubscriptionService.
type SubscriptionServiceImpl struct {
	subRepo    ports.SubscriptionRepository
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionServiceImpl.
func NewSubscriptionService(
	subRepo ports.SubscriptionRepository,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{
		subRepo:    subRepo,
		transactor: transactor,
		log:        log,
	}
}

// Save registers or refreshes an endpoint for one scope. Any binding of the
// same endpoint to another role or scope is removed in the same transaction.
func (s *SubscriptionServiceImpl) Save(ctx context.Context, req ports.SaveSubscriptionRequest) (*domain.Subscription, error) {
	if err := validateScope(req.Role, req.Target); err != nil {
		return nil, err
	}
	if err := validateEndpoint(req.Endpoint); err != nil {
		return nil, err
	}
	if req.AuthSecret == "" || req.PublicKey == "" {
		return nil, apperror.ErrInvalidSubscription("subscription keys are required")
	}

	now := time.Now().UTC()
	sub := &domain.Subscription{
		ID:         uuid.New(),
		Role:       req.Role,
		Target:     req.Target,
		Endpoint:   req.Endpoint,
		AuthSecret: req.AuthSecret,
		PublicKey:  req.PublicKey,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	moved, err := s.subRepo.RemoveStaleBindings(ctx, dbTx, req.Role, req.Target, req.Endpoint)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := s.subRepo.Save(ctx, dbTx, sub); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("role", string(req.Role)).
		Str("scope", req.Target.String()).
		Int64("stale_removed", moved).
		Msg("push subscription saved")

	return sub, nil
}

func (s *SubscriptionServiceImpl) SaveSubscription(ctx context.Context, orderID, endpoint, authSecret, publicKey string) (*domain.Subscription, error) {
	return s.Save(ctx, ports.SaveSubscriptionRequest{
		Role: domain.RoleCustomer, Target: domain.ForOrder(orderID),
		Endpoint: endpoint, AuthSecret: authSecret, PublicKey: publicKey,
	})
}

func (s *SubscriptionServiceImpl) SavePharmacySubscription(ctx context.Context, pharmacyID, endpoint, authSecret, publicKey string) (*domain.Subscription, error) {
	return s.Save(ctx, ports.SaveSubscriptionRequest{
		Role: domain.RolePharmacy, Target: domain.ForPharmacy(pharmacyID),
		Endpoint: endpoint, AuthSecret: authSecret, PublicKey: publicKey,
	})
}

func (s *SubscriptionServiceImpl) SaveRiderSubscription(ctx context.Context, riderID, endpoint, authSecret, publicKey string) (*domain.Subscription, error) {
	return s.Save(ctx, ports.SaveSubscriptionRequest{
		Role: domain.RoleRider, Target: domain.ForRider(riderID),
		Endpoint: endpoint, AuthSecret: authSecret, PublicKey: publicKey,
	})
}

// Remove deletes one endpoint from one scope. Returns rows removed.
func (s *SubscriptionServiceImpl) Remove(ctx context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (int64, error) {
	if err := validateScope(role, target); err != nil {
		return 0, err
	}
	if endpoint == "" {
		return 0, apperror.ErrInvalidSubscription("endpoint is required")
	}
	n, err := s.subRepo.Remove(ctx, role, target, endpoint)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	return n, nil
}

func (s *SubscriptionServiceImpl) RemoveSubscription(ctx context.Context, orderID, endpoint string) (int64, error) {
	return s.Remove(ctx, domain.RoleCustomer, domain.ForOrder(orderID), endpoint)
}

func (s *SubscriptionServiceImpl) RemovePharmacySubscription(ctx context.Context, pharmacyID, endpoint string) (int64, error) {
	return s.Remove(ctx, domain.RolePharmacy, domain.ForPharmacy(pharmacyID), endpoint)
}

func (s *SubscriptionServiceImpl) RemoveRiderSubscription(ctx context.Context, riderID, endpoint string) (int64, error) {
	return s.Remove(ctx, domain.RoleRider, domain.ForRider(riderID), endpoint)
}

// RemoveByEndpoint deletes an endpoint everywhere, or only under role when given.
func (s *SubscriptionServiceImpl) RemoveByEndpoint(ctx context.Context, endpoint string, role *domain.Role) (int64, error) {
	if endpoint == "" {
		return 0, apperror.ErrInvalidSubscription("endpoint is required")
	}
	n, err := s.subRepo.RemoveByEndpoint(ctx, endpoint, role)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	return n, nil
}

// RemoveAllForScope deletes every subscription of one scope, e.g. once an order is closed.
func (s *SubscriptionServiceImpl) RemoveAllForScope(ctx context.Context, role domain.Role, target domain.ScopeTarget) (int64, error) {
	if err := validateScope(role, target); err != nil {
		return 0, err
	}
	n, err := s.subRepo.RemoveByScope(ctx, role, target)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	return n, nil
}

// Status tells a client whether its endpoint is registered for the scope.
func (s *SubscriptionServiceImpl) Status(ctx context.Context, role domain.Role, target domain.ScopeTarget, endpoint string) (domain.SubscriptionStatus, error) {
	if err := validateScope(role, target); err != nil {
		return domain.SubscriptionStatus{}, err
	}
	if endpoint == "" {
		return domain.StatusOf(nil), nil
	}
	sub, err := s.subRepo.Find(ctx, role, target, endpoint)
	if err != nil {
		return domain.SubscriptionStatus{}, apperror.ErrDatabaseError(err)
	}
	return domain.StatusOf(sub), nil
}

func (s *SubscriptionServiceImpl) GetSubscriptionStatus(ctx context.Context, orderID, endpoint string) (domain.SubscriptionStatus, error) {
	return s.Status(ctx, domain.RoleCustomer, domain.ForOrder(orderID), endpoint)
}

func (s *SubscriptionServiceImpl) GetPharmacySubscriptionStatus(ctx context.Context, pharmacyID, endpoint string) (domain.SubscriptionStatus, error) {
	return s.Status(ctx, domain.RolePharmacy, domain.ForPharmacy(pharmacyID), endpoint)
}

func (s *SubscriptionServiceImpl) GetRiderSubscriptionStatus(ctx context.Context, riderID, endpoint string) (domain.SubscriptionStatus, error) {
	return s.Status(ctx, domain.RoleRider, domain.ForRider(riderID), endpoint)
}

// FetchActive returns the scope's live subscriptions, one per endpoint.
// Storage errors are returned unwrapped so callers see an infrastructure outage as is.
func (s *SubscriptionServiceImpl) FetchActive(ctx context.Context, role domain.Role, target domain.ScopeTarget) ([]domain.Subscription, error) {
	subs, err := s.subRepo.FetchActive(ctx, role, target)
	if err != nil {
		return nil, err
	}
	return domain.DedupeByEndpoint(subs), nil
}

func validateScope(role domain.Role, target domain.ScopeTarget) error {
	if _, ok := domain.ParseRole(string(role)); !ok {
		return apperror.ErrInvalidRole()
	}
	if !target.Valid(role) {
		return apperror.ErrInvalidScope()
	}
	return nil
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return apperror.ErrInvalidSubscription("endpoint is required")
	}
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
		return apperror.ErrInvalidSubscription("endpoint must be an absolute http(s) URL")
	}
	return nil
}

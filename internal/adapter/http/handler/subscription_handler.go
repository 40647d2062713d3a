package handler

import (
	"push-delivery-engine/internal/adapter/http/dto"
	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/pkg/apperror"
	"push-delivery-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler serves the subscribe, unsubscribe and status routes of
// every role. The scope identifier is the :id path parameter.
type SubscriptionHandler struct {
	svc ports.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(svc ports.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

func scopeFor(role domain.Role, id string) domain.ScopeTarget {
	switch role {
	case domain.RolePharmacy:
		return domain.ForPharmacy(id)
	case domain.RoleRider:
		return domain.ForRider(id)
	default:
		return domain.ForOrder(id)
	}
}

// Subscribe handles POST /api/v1/{scope}/:id/push-subscriptions.
func (h *SubscriptionHandler) Subscribe(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&req)

		sub, err := h.svc.Save(c.Request.Context(), ports.SaveSubscriptionRequest{
			Role:       role,
			Target:     scopeFor(role, c.Param("id")),
			Endpoint:   req.Endpoint,
			AuthSecret: req.Keys.Auth,
			PublicKey:  req.Keys.P256dh,
		})
		if err != nil {
			response.Error(c, err)
			return
		}

		response.Created(c, dto.SubscriptionResponse{
			ID:       sub.ID.String(),
			Role:     string(sub.Role),
			Endpoint: sub.Endpoint,
		})
	}
}

// Unsubscribe handles DELETE /api/v1/{scope}/:id/push-subscriptions.
func (h *SubscriptionHandler) Unsubscribe(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RemoveSubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&req)

		n, err := h.svc.Remove(c.Request.Context(), role, scopeFor(role, c.Param("id")), req.Endpoint)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.RemoveResponse{Removed: n})
	}
}

// Status handles GET /api/v1/{scope}/:id/push-subscriptions/status?endpoint=.
func (h *SubscriptionHandler) Status(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q dto.StatusQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
		dto.SanitizeStruct(&q)

		status, err := h.svc.Status(c.Request.Context(), role, scopeFor(role, c.Param("id")), q.Endpoint)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, status)
	}
}

// RemoveByEndpoint handles DELETE /api/v1/push-subscriptions.
func (h *SubscriptionHandler) RemoveByEndpoint(c *gin.Context) {
	var req dto.RemoveByEndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var role *domain.Role
	if req.Role != "" {
		r := domain.Role(req.Role)
		role = &r
	}

	n, err := h.svc.RemoveByEndpoint(c.Request.Context(), req.Endpoint, role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RemoveResponse{Removed: n})
}

// RemoveAll handles DELETE /internal/v1/{scope}/:id/push-subscriptions.
func (h *SubscriptionHandler) RemoveAll(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := h.svc.RemoveAllForScope(c.Request.Context(), role, scopeFor(role, c.Param("id")))
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.RemoveResponse{Removed: n})
	}
}

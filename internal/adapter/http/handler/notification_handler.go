package handler

import (
	"push-delivery-engine/internal/adapter/http/dto"
	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/pkg/apperror"
	"push-delivery-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the internal routes the order workflow calls to
// fan out notifications.
type NotificationHandler struct {
	svc ports.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(svc ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// OrderStatus handles POST /internal/v1/orders/:id/notifications/status.
func (h *NotificationHandler) OrderStatus(c *gin.Context) {
	var req dto.OrderStatusNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.svc.SendOrderNotification(c.Request.Context(), c.Param("id"), req.Status, req.Image)
	respond(c, result, err)
}

// NewOrder handles POST /internal/v1/orders/:id/notifications/new-order.
func (h *NotificationHandler) NewOrder(c *gin.Context) {
	result, err := h.svc.SendNewOrderNotification(c.Request.Context(), c.Param("id"))
	respond(c, result, err)
}

// RiderDispatch handles POST /internal/v1/orders/:id/notifications/rider-dispatch.
func (h *NotificationHandler) RiderDispatch(c *gin.Context) {
	result, err := h.svc.SendRiderNotification(c.Request.Context(), c.Param("id"))
	respond(c, result, err)
}

// PharmacyMessage handles POST /internal/v1/orders/:id/notifications/pharmacy-message.
func (h *NotificationHandler) PharmacyMessage(c *gin.Context) {
	var req dto.MessageNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.svc.SendPharmacyMessageNotification(c.Request.Context(), c.Param("id"), req.Content, req.EventKey)
	respond(c, result, err)
}

// CustomerMessage handles POST /internal/v1/orders/:id/notifications/customer-message.
func (h *NotificationHandler) CustomerMessage(c *gin.Context) {
	var req dto.MessageNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.svc.SendCustomerMessageNotification(c.Request.Context(), c.Param("id"), req.Content, req.EventKey)
	respond(c, result, err)
}

// respond writes 202 for a suppressed duplicate and 200 otherwise.
func respond(c *gin.Context, result *domain.FanoutResult, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	if result.Deduped {
		response.Accepted(c, dto.ToFanoutResponse(result))
		return
	}
	response.OK(c, dto.ToFanoutResponse(result))
}

// pushUnavailable answers notification routes when VAPID credentials are absent.
func pushUnavailable(c *gin.Context) {
	response.Error(c, apperror.ErrPushNotConfigured())
}

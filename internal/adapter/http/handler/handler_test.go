package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"push-delivery-engine/internal/adapter/http/dto"
	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/internal/core/ports/mocks"
	"push-delivery-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testEndpoint = "https://fcm.googleapis.com/fcm/send/abc123"
	testAuth     = "tBHItJI5svbpez7KI4CCXg"
	testP256dh   = "BNcRdreALRFXTkOOUHK1EtK2wtaz5Ry4YfYCA_0QTpQtUbVlUls0VJXg7A8u-Ts1XbjhazAkj7I99e8QcYP7DkM"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonContext(t *testing.T, method, target string, body interface{}, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var raw []byte
	switch b := body.(type) {
	case nil:
	case string:
		raw = []byte(b)
	default:
		var err error
		raw, err = json.Marshal(b)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok, "response has no data: %s", w.Body.String())
	return data
}

func decodeErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	code, _ := resp["error_code"].(string)
	return code
}

// --- Subscription Handler Tests ---

func TestSubscribe_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockSubscriptionService(ctrl)
	h := NewSubscriptionHandler(svc)

	id := uuid.New()
	svc.EXPECT().Save(gomock.Any(), ports.SaveSubscriptionRequest{
		Role:       domain.RolePharmacy,
		Target:     domain.ForPharmacy("p7"),
		Endpoint:   testEndpoint,
		AuthSecret: testAuth,
		PublicKey:  testP256dh,
	}).Return(&domain.Subscription{ID: id, Role: domain.RolePharmacy, Endpoint: testEndpoint}, nil)

	c, w := jsonContext(t, http.MethodPost, "/api/v1/pharmacies/p7/push-subscriptions", dto.SubscriptionRequest{
		Endpoint: "  " + testEndpoint,
		Keys:     dto.SubscriptionKeys{Auth: testAuth, P256dh: testP256dh},
	}, gin.Param{Key: "id", Value: "p7"})

	h.Subscribe(domain.RolePharmacy)(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, id.String(), data["id"])
	assert.Equal(t, "pharmacy", data["role"])
}

func TestSubscribe_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockSubscriptionService(ctrl)
	h := NewSubscriptionHandler(svc)

	c, w := jsonContext(t, http.MethodPost, "/", `{"endpoint":"not-a-url","keys":{}}`, gin.Param{Key: "id", Value: "42"})
	h.Subscribe(domain.RoleCustomer)(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "SUB_001", decodeErrorCode(t, w))
}

func TestSubscribe_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockSubscriptionService(ctrl)
	h := NewSubscriptionHandler(svc)

	svc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDatabaseError(errors.New("down")))

	c, w := jsonContext(t, http.MethodPost, "/", dto.SubscriptionRequest{
		Endpoint: testEndpoint,
		Keys:     dto.SubscriptionKeys{Auth: testAuth, P256dh: testP256dh},
	}, gin.Param{Key: "id", Value: "42"})
	h.Subscribe(domain.RoleCustomer)(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "SYS_001", decodeErrorCode(t, w))
}

func TestUnsubscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockSubscriptionService(ctrl)
	h := NewSubscriptionHandler(svc)

	svc.EXPECT().Remove(gomock.Any(), domain.RoleRider, domain.ForRider("r1"), testEndpoint).Return(int64(1), nil)

	c, w := jsonContext(t, http.MethodDelete, "/", dto.RemoveSubscriptionRequest{Endpoint: testEndpoint},
		gin.Param{Key: "id", Value: "r1"})
	h.Unsubscribe(domain.RoleRider)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeData(t, w)["removed"])
}

func TestStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockSubscriptionService(ctrl)
	h := NewSubscriptionHandler(svc)

	svc.EXPECT().Status(gomock.Any(), domain.RoleCustomer, domain.ForOrder("42"), testEndpoint).
		Return(domain.SubscriptionStatus{Subscribed: false, Action: domain.ActionResubscribe}, nil)

	c, w := jsonContext(t, http.MethodGet, "/api/v1/orders/42/push-subscriptions/status?endpoint="+testEndpoint, nil,
		gin.Param{Key: "id", Value: "42"})
	h.Status(domain.RoleCustomer)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, false, data["subscribed"])
	assert.Equal(t, "resubscribe", data["action"])
}

func TestRemoveByEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockSubscriptionService(ctrl)
	h := NewSubscriptionHandler(svc)

	rider := domain.RoleRider
	svc.EXPECT().RemoveByEndpoint(gomock.Any(), testEndpoint, (*domain.Role)(nil)).Return(int64(3), nil)
	svc.EXPECT().RemoveByEndpoint(gomock.Any(), testEndpoint, &rider).Return(int64(1), nil)

	c, w := jsonContext(t, http.MethodDelete, "/", dto.RemoveByEndpointRequest{Endpoint: testEndpoint})
	h.RemoveByEndpoint(c)
	assert.Equal(t, float64(3), decodeData(t, w)["removed"])

	c, w = jsonContext(t, http.MethodDelete, "/", dto.RemoveByEndpointRequest{Endpoint: testEndpoint, Role: "rider"})
	h.RemoveByEndpoint(c)
	assert.Equal(t, float64(1), decodeData(t, w)["removed"])

	c, w = jsonContext(t, http.MethodDelete, "/", dto.RemoveByEndpointRequest{Endpoint: testEndpoint, Role: "admin"})
	h.RemoveByEndpoint(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockSubscriptionService(ctrl)
	h := NewSubscriptionHandler(svc)

	svc.EXPECT().RemoveAllForScope(gomock.Any(), domain.RoleCustomer, domain.ForOrder("42")).Return(int64(2), nil)

	c, w := jsonContext(t, http.MethodDelete, "/", nil, gin.Param{Key: "id", Value: "42"})
	h.RemoveAll(domain.RoleCustomer)(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeData(t, w)["removed"])
}

// --- Notification Handler Tests ---

func TestOrderStatus_Sent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockNotificationService(ctrl)
	h := NewNotificationHandler(svc)

	svc.EXPECT().SendOrderNotification(gomock.Any(), "42", "ready", (*string)(nil)).Return(&domain.FanoutResult{
		EventKey: "order:42:customer:status:ready",
		Role:     domain.RoleCustomer,
		Total:    2,
		Sent:     2,
		Status:   domain.ReservationSent,
	}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.OrderStatusNotificationRequest{Status: "ready"},
		gin.Param{Key: "id", Value: "42"})
	h.OrderStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, float64(2), data["sent"])
	assert.Equal(t, "sent", data["status"])
}

func TestOrderStatus_Deduped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockNotificationService(ctrl)
	h := NewNotificationHandler(svc)

	svc.EXPECT().SendOrderNotification(gomock.Any(), "42", "ready", gomock.Any()).
		Return(&domain.FanoutResult{Deduped: true, TrackingEnabled: true, Role: domain.RoleCustomer}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.OrderStatusNotificationRequest{Status: "ready"},
		gin.Param{Key: "id", Value: "42"})
	h.OrderStatus(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, true, decodeData(t, w)["deduped"])
}

func TestNewOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockNotificationService(ctrl)
	h := NewNotificationHandler(svc)

	svc.EXPECT().SendNewOrderNotification(gomock.Any(), "404").Return(nil, apperror.ErrNotFound("order"))

	c, w := jsonContext(t, http.MethodPost, "/", nil, gin.Param{Key: "id", Value: "404"})
	h.NewOrder(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "EVT_002", decodeErrorCode(t, w))
}

func TestRiderDispatch_Skipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockNotificationService(ctrl)
	h := NewNotificationHandler(svc)

	svc.EXPECT().SendRiderNotification(gomock.Any(), "42").
		Return(&domain.FanoutResult{Skipped: true, Role: domain.RoleRider}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", nil, gin.Param{Key: "id", Value: "42"})
	h.RiderDispatch(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeData(t, w)["skipped"])
}

func TestMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockNotificationService(ctrl)
	h := NewNotificationHandler(svc)

	svc.EXPECT().SendPharmacyMessageNotification(gomock.Any(), "42", "is it ready?", "msg-9").
		Return(&domain.FanoutResult{Role: domain.RolePharmacy, Total: 1, Sent: 1, Status: domain.ReservationSent}, nil)
	svc.EXPECT().SendCustomerMessageNotification(gomock.Any(), "42", "yes, pick up at 5", "").
		Return(&domain.FanoutResult{Role: domain.RoleCustomer, Total: 1, Failed: 1, Status: domain.ReservationFailed}, nil)

	c, w := jsonContext(t, http.MethodPost, "/", dto.MessageNotificationRequest{Content: " is it ready? ", EventKey: "msg-9"},
		gin.Param{Key: "id", Value: "42"})
	h.PharmacyMessage(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = jsonContext(t, http.MethodPost, "/", dto.MessageNotificationRequest{Content: "yes, pick up at 5"},
		gin.Param{Key: "id", Value: "42"})
	h.CustomerMessage(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "failed", decodeData(t, w)["status"])

	c, w = jsonContext(t, http.MethodPost, "/", `{"content":""}`, gin.Param{Key: "id", Value: "42"})
	h.CustomerMessage(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health & key ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mocks.NewMockHealthChecker(ctrl)
	rd := mocks.NewMockHealthChecker(ctrl)
	pg.EXPECT().Name().Return("postgresql").AnyTimes()
	rd.EXPECT().Name().Return("redis").AnyTimes()
	pg.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	rd.EXPECT().Ping(gomock.Any()).Return(nil)
	rd.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

	c, w := jsonContext(t, http.MethodGet, "/health", nil)
	HealthCheck(true, pg, rd)(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"push":"enabled"`)

	c, w = jsonContext(t, http.MethodGet, "/health", nil)
	HealthCheck(false, pg, rd)(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
	assert.Contains(t, w.Body.String(), `"push":"not_configured"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestVAPIDPublicKey(t *testing.T) {
	c, w := jsonContext(t, http.MethodGet, "/", nil)
	VAPIDPublicKey("BPub")(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "BPub", decodeData(t, w)["public_key"])

	c, w = jsonContext(t, http.MethodGet, "/", nil)
	VAPIDPublicKey("")(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "SEC_002", decodeErrorCode(t, w))
}

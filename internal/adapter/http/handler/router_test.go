package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"push-delivery-engine/internal/adapter/metrics"
	redisStore "push-delivery-engine/internal/adapter/storage/redis"
	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/internal/core/ports/mocks"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	subs   *mocks.MockSubscriptionService
	notify *mocks.MockNotificationService
	tokens *mocks.MockTokenService
	router http.Handler
}

func newRouterFixture(t *testing.T, withNotifications bool) *routerFixture {
	ctrl := gomock.NewController(t)
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := &routerFixture{
		subs:   mocks.NewMockSubscriptionService(ctrl),
		notify: mocks.NewMockNotificationService(ctrl),
		tokens: mocks.NewMockTokenService(ctrl),
	}
	deps := RouterDeps{
		SubscriptionSvc: f.subs,
		TokenSvc:        f.tokens,
		RateLimitStore:  redisStore.NewRateLimitStore(client),
		Metrics:         metrics.New(prometheus.NewRegistry()),
		VAPIDPublicKey:  "BPub",
		Logger:          zerolog.Nop(),
	}
	if withNotifications {
		deps.NotificationSvc = f.notify
	}
	f.router = SetupRouter(deps)
	return f
}

func (f *routerFixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestRouter_PublicRoutesPerRole(t *testing.T) {
	f := newRouterFixture(t, true)

	f.subs.EXPECT().Status(gomock.Any(), domain.RoleCustomer, domain.ForOrder("42"), "").
		Return(domain.SubscriptionStatus{Action: domain.ActionSync}, nil)
	f.subs.EXPECT().Status(gomock.Any(), domain.RolePharmacy, domain.ForPharmacy("p1"), "").
		Return(domain.SubscriptionStatus{Action: domain.ActionSync}, nil)
	f.subs.EXPECT().Status(gomock.Any(), domain.RoleRider, domain.ForRider("r1"), "").
		Return(domain.SubscriptionStatus{Action: domain.ActionSync}, nil)

	for _, path := range []string{
		"/api/v1/orders/42/push-subscriptions/status",
		"/api/v1/pharmacies/p1/push-subscriptions/status",
		"/api/v1/riders/r1/push-subscriptions/status",
	} {
		w := f.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"), path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}

	w := f.do(http.MethodGet, "/api/v1/push/vapid-public-key", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "BPub")
}

func TestRouter_InternalRoutesRequireToken(t *testing.T) {
	f := newRouterFixture(t, true)

	w := f.do(http.MethodPost, "/internal/v1/orders/42/notifications/new-order", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.tokens.EXPECT().Validate("tok").Return(&ports.TokenClaims{Service: "order-workflow"}, nil).Times(2)
	f.notify.EXPECT().SendNewOrderNotification(gomock.Any(), "42").
		Return(&domain.FanoutResult{Role: domain.RolePharmacy, Total: 1, Sent: 1, Status: domain.ReservationSent}, nil)
	f.subs.EXPECT().RemoveAllForScope(gomock.Any(), domain.RoleRider, domain.ForRider("r1")).Return(int64(1), nil)

	w = f.do(http.MethodPost, "/internal/v1/orders/42/notifications/new-order", "", "tok")
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodDelete, "/internal/v1/riders/r1/push-subscriptions", "", "tok")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_PushNotConfigured(t *testing.T) {
	f := newRouterFixture(t, false)

	f.tokens.EXPECT().Validate("tok").Return(&ports.TokenClaims{Service: "order-workflow"}, nil)

	w := f.do(http.MethodPost, "/internal/v1/orders/42/notifications/status", `{"status":"ready"}`, "tok")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SEC_002")
}

func TestRouter_SubscribeRateLimited(t *testing.T) {
	f := newRouterFixture(t, true)

	f.subs.EXPECT().Remove(gomock.Any(), domain.RoleCustomer, domain.ForOrder("42"), "https://push.example/a").
		Return(int64(0), nil).Times(30)

	body := `{"endpoint":"https://push.example/a"}`
	for i := 0; i < 30; i++ {
		assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/v1/orders/42/push-subscriptions", body, "").Code)
	}
	w := f.do(http.MethodDelete, "/api/v1/orders/42/push-subscriptions", body, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	f := newRouterFixture(t, true)

	f.do(http.MethodGet, "/api/v1/push/vapid-public-key", "", "")
	w := f.do(http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{endpoint="/api/v1/push/vapid-public-key",method="GET",status="200"} 1`)
}

package handler

import (
	"net/http"

	"push-delivery-engine/internal/adapter/http/middleware"
	redisStore "push-delivery-engine/internal/adapter/storage/redis"
	"push-delivery-engine/internal/core/domain"
	"push-delivery-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// MetricsProvider records HTTP metrics and serves the scrape endpoint.
type MetricsProvider interface {
	middleware.RequestRecorder
	Handler() http.Handler
}

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SubscriptionSvc ports.SubscriptionService
	NotificationSvc ports.NotificationService // nil = push not configured
	TokenSvc        ports.TokenService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Metrics         MetricsProvider // nil = no /metrics
	VAPIDPublicKey  string
	Logger          zerolog.Logger
}

// scopeRoutes maps the public path segment of each role.
var scopeRoutes = []struct {
	path string
	role domain.Role
}{
	{"orders", domain.RoleCustomer},
	{"pharmacies", domain.RolePharmacy},
	{"riders", domain.RoleRider},
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(middleware.Metrics(deps.Metrics))
	}
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", HealthCheck(deps.NotificationSvc != nil, deps.HealthCheckers...))
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	subs := NewSubscriptionHandler(deps.SubscriptionSvc)

	// --- Public routes (browser service workers) ---
	v1 := r.Group("/api/v1")
	v1.GET("/push/vapid-public-key", rl("vapid_key"), VAPIDPublicKey(deps.VAPIDPublicKey))
	v1.DELETE("/push-subscriptions", rl("unsubscribe"), subs.RemoveByEndpoint)
	for _, s := range scopeRoutes {
		g := v1.Group("/" + s.path + "/:id/push-subscriptions")
		g.POST("", rl("subscribe"), subs.Subscribe(s.role))
		g.DELETE("", rl("unsubscribe"), subs.Unsubscribe(s.role))
		g.GET("/status", rl("status"), subs.Status(s.role))
	}

	// --- Service-token routes (order workflow) ---
	internal := r.Group("/internal/v1", middleware.ServiceAuth(deps.TokenSvc, deps.Logger), rl("notifications"))
	for _, s := range scopeRoutes {
		internal.DELETE("/"+s.path+"/:id/push-subscriptions", subs.RemoveAll(s.role))
	}

	notify := internal.Group("/orders/:id/notifications")
	if deps.NotificationSvc == nil {
		notify.Any("/*kind", pushUnavailable)
		return r
	}
	n := NewNotificationHandler(deps.NotificationSvc)
	notify.POST("/status", n.OrderStatus)
	notify.POST("/new-order", n.NewOrder)
	notify.POST("/rider-dispatch", n.RiderDispatch)
	notify.POST("/pharmacy-message", n.PharmacyMessage)
	notify.POST("/customer-message", n.CustomerMessage)

	return r
}

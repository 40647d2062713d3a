package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"push-delivery-engine/config"
	httpHandler "push-delivery-engine/internal/adapter/http/handler"
	"push-delivery-engine/internal/adapter/metrics"
	"push-delivery-engine/internal/adapter/push"
	pgStorage "push-delivery-engine/internal/adapter/storage/postgres"
	redisStorage "push-delivery-engine/internal/adapter/storage/redis"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/internal/service"
	"push-delivery-engine/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("PDE_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Int("concurrency", cfg.Push.Concurrency).
		Int("retry_count", cfg.Push.RetryCount).
		Bool("dedupe_enabled", cfg.Push.DedupeEnabled).
		Bool("cleanup_enabled", cfg.Push.CleanupEnabled).
		Msg("starting push delivery engine")

	ctx := context.Background()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgresql")
	}
	defer pool.Close()

	// Redis only backs rate limiting; the service runs without it.
	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}
	var rateLimitStore *redisStorage.RateLimitStore
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
	} else {
		defer rdb.Close()
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, rateLimitStore)
	}

	// Repositories
	subRepo := pgStorage.NewSubscriptionRepo(pool)
	reservationRepo := pgStorage.NewReservationRepo(pool)
	orderRepo := pgStorage.NewOrderRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	tokenSvc := service.NewJWTTokenService(cfg.Auth.ServiceSecret, cfg.Auth.TokenExpiry, cfg.Auth.Issuer)
	if cfg.Auth.ServiceSecret == "" {
		log.Warn().Msg("auth.service_secret is empty, internal notification routes will reject every token")
	}

	subSvc := service.NewSubscriptionService(subRepo, transactor, logger.Component(log, "subscriptions"))

	var notificationSvc ports.NotificationService
	sender, err := push.NewWebPushSender(cfg.Push, &http.Client{Timeout: cfg.Push.RequestTimeout})
	if err != nil {
		log.Warn().Err(err).Msg("vapid credentials missing, notification routes disabled")
	} else {
		engineLog := logger.Component(log, "fanout")
		gate := service.NewDeliveryGate(reservationRepo, cfg.Push.DedupeEnabled, logger.Component(log, "delivery_gate"))
		invalidator := service.NewDeadSubscriptionInvalidator(subRepo, transactor, cfg.Push.CleanupEnabled, logger.Component(log, "invalidator"))
		policy := service.NewRetryPolicy(cfg.Push.RetryCount, service.DefaultBackoffUnit)
		engine := service.NewFanoutEngine(sender, gate, invalidator, policy, cfg.Push.Concurrency, m, engineLog)

		notificationSvc = service.NewNotificationService(
			orderRepo,
			subSvc,
			service.NewDefaultComposer(cfg.Push.AppURL, cfg.Push.Icon),
			engine,
			logger.Component(log, "notifications"),
		)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SubscriptionSvc: subSvc,
		NotificationSvc: notificationSvc,
		TokenSvc:        tokenSvc,
		RateLimitStore:  rateLimitStore,
		HealthCheckers:  healthCheckers,
		Metrics:         m,
		VAPIDPublicKey:  cfg.Push.VAPIDPublicKey,
		Logger:          log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	// In-flight fan-outs finish inside Shutdown; the timeout bounds the wait.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"push-delivery-engine/internal/adapter/http/dto"
	"push-delivery-engine/internal/core/ports"
	"push-delivery-engine/pkg/apperror"
	"push-delivery-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are pinged concurrently, each
// under its own timeout; any failure turns the response into a 503. A push
// sender that is not configured is reported but does not fail the check.
func HealthCheck(pushEnabled bool, checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := make([]dependencyStatus, len(checkers))

		var wg sync.WaitGroup
		for i, checker := range checkers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
				defer cancel()
				if err := checker.Ping(ctx); err != nil {
					results[i] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
					return
				}
				results[i] = dependencyStatus{Status: "healthy"}
			}()
		}
		wg.Wait()

		deps := make(map[string]dependencyStatus, len(checkers))
		status, code := "healthy", http.StatusOK
		for i, checker := range checkers {
			deps[checker.Name()] = results[i]
			if results[i].Status != "healthy" {
				status, code = "degraded", http.StatusServiceUnavailable
			}
		}

		push := "enabled"
		if !pushEnabled {
			push = "not_configured"
		}

		c.JSON(code, gin.H{
			"status":       status,
			"push":         push,
			"dependencies": deps,
		})
	}
}

// VAPIDPublicKey handles GET /api/v1/push/vapid-public-key.
func VAPIDPublicKey(publicKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if publicKey == "" {
			response.Error(c, apperror.ErrPushNotConfigured())
			return
		}
		c.Header("Cache-Control", "public, max-age=3600")
		response.OK(c, dto.VAPIDKeyResponse{PublicKey: publicKey})
	}
}

package service

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"

	"push-delivery-engine/internal/core/domain"
)

// Transport error codes as reported by domain.PushError.Code.
var (
	timeoutCodes = map[string]struct{}{
		"ETIMEDOUT":               {},
		"ESOCKETTIMEDOUT":         {},
		"ECONNABORTED":            {},
		"UND_ERR_CONNECT_TIMEOUT": {},
		"UND_ERR_HEADERS_TIMEOUT": {},
		"UND_ERR_BODY_TIMEOUT":    {},
	}
	networkCodes = map[string]struct{}{
		"ECONNRESET":     {},
		"ECONNREFUSED":   {},
		"EPIPE":          {},
		"ENOTFOUND":      {},
		"EAI_AGAIN":      {},
		"EHOSTUNREACH":   {},
		"ENETUNREACH":    {},
		"UND_ERR_SOCKET": {},
	}
)

// ClassifyFailure maps a failed push attempt to a failure kind.
// Rules are evaluated in order and the first match wins.
func ClassifyFailure(err error) domain.Classification {
	var statusCode int
	var code string

	var pushErr *domain.PushError
	if errors.As(err, &pushErr) {
		statusCode = pushErr.StatusCode
		code = pushErr.Code
	}

	c := domain.Classification{Kind: domain.FailureUnknown}
	if statusCode != 0 {
		sc := statusCode
		c.StatusCode = &sc
	}

	switch {
	case statusCode == http.StatusNotFound || statusCode == http.StatusGone:
		c.Kind = domain.FailureDeadEndpoint
		c.IsDeadEndpoint = true
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		c.Kind = domain.FailureAuth
	case errors.Is(err, context.Canceled):
		// caller gave up, never retried
		c.Kind = domain.FailureTimeout
	case isTimeout(err, code, statusCode):
		c.Kind = domain.FailureTimeout
		c.IsRetryable = true
	case isNetwork(err, code, statusCode):
		c.Kind = domain.FailureNetwork
		c.IsRetryable = true
	case errors.Is(err, domain.ErrWorkerPanic):
		c.Kind = domain.FailureInternal
	}
	return c
}

func isTimeout(err error, code string, statusCode int) bool {
	if statusCode == http.StatusRequestTimeout {
		return true
	}
	if _, ok := timeoutCodes[code]; ok {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ETIMEDOUT) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetwork(err error, code string, statusCode int) bool {
	if statusCode == http.StatusTooManyRequests || (statusCode >= 500 && statusCode <= 599) {
		return true
	}
	if _, ok := networkCodes[code]; ok {
		return true
	}
	return errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH)
}

package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Security & Authentication (SEC) ----

func ErrInvalidToken() *AppError {
	return New("SEC_001", "Invalid or expired service token", http.StatusUnauthorized)
}

func ErrPushNotConfigured() *AppError {
	return New("SEC_002", "Push credentials are not configured", http.StatusServiceUnavailable)
}

// ---- Subscriptions (SUB) ----

func ErrInvalidSubscription(message string) *AppError {
	return New("SUB_001", message, http.StatusBadRequest)
}

func ErrInvalidRole() *AppError {
	return New("SUB_002", "Unknown subscription role", http.StatusBadRequest)
}

func ErrInvalidScope() *AppError {
	return New("SUB_003", "Subscription scope does not match role", http.StatusBadRequest)
}

// ---- Events (EVT) ----

func ErrInvalidEvent(message string) *AppError {
	return New("EVT_001", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("EVT_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrPayloadEncoding(err error) *AppError {
	return Wrap("SYS_002", "Failed to encode push payload", http.StatusInternalServerError, err)
}

// Validation returns a SUB_001-style validation error.
func Validation(message string) *AppError {
	return New("SUB_001", message, http.StatusBadRequest)
}

package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. Low-level
// store and transport errors are wrapped, logged internally, and never
// exposed verbatim to callers.
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

// ---- Signature & Validation (SIG) ----

func ErrInvalidSignature() *AppError {
	return New("SIG_001", "Invalid webhook signature", http.StatusBadRequest)
}

func ErrMalformedPayload() *AppError {
	return New("SIG_002", "Malformed webhook payload", http.StatusBadRequest)
}

func ErrInvalidServiceToken() *AppError {
	return New("SIG_003", "Invalid or expired service token", http.StatusUnauthorized)
}

// ---- Subscription Business Logic (SUB) ----

func ErrSubscriptionNotFound() *AppError {
	return New("SUB_001", "Subscription not found", http.StatusNotFound)
}

func ErrSubscriptionConflict() *AppError {
	return New("SUB_002", "Tenant already has an active subscription", http.StatusConflict)
}

func ErrInvalidTransition() *AppError {
	return New("SUB_003", "Subscription status transition not allowed", http.StatusUnprocessableEntity)
}

// ---- Bulk Operations (BULK) ----

func ErrEmptyOperation() *AppError {
	return New("BULK_001", "Bulk operation has no tenant ids", http.StatusBadRequest)
}

func ErrUnknownOperation(kind string) *AppError {
	return New("BULK_002", fmt.Sprintf("Unknown bulk operation kind %q", kind), http.StatusBadRequest)
}

func ErrMissingPlan() *AppError {
	return New("BULK_003", "Operation requires a plan id", http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStoreError(err error) *AppError {
	return Wrap("SYS_001", "Internal store error", http.StatusInternalServerError, err)
}

func ErrDeliveryExhausted(err error) *AppError {
	return Wrap("SYS_002", "Delivery retries exhausted", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SIG_002", message, http.StatusBadRequest)
}

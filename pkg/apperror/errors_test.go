package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("SUB_001", "Subscription not found", http.StatusNotFound)
	assert.Equal(t, "[SUB_001] Subscription not found", e.Error())

	wrapped := Wrap("SYS_001", "Internal store error", http.StatusInternalServerError, errors.New("conn refused"))
	assert.Equal(t, "[SYS_001] Internal store error: conn refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("constraint violation")
	e := ErrStoreError(cause)

	assert.True(t, errors.Is(e, cause))

	var appErr *AppError
	assert.True(t, errors.As(fmt.Errorf("bulk chunk: %w", e), &appErr))
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestErrorConstructors_Status(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code string
		http int
	}{
		{"invalid signature", ErrInvalidSignature(), "SIG_001", http.StatusBadRequest},
		{"service token", ErrInvalidServiceToken(), "SIG_003", http.StatusUnauthorized},
		{"conflict", ErrSubscriptionConflict(), "SUB_002", http.StatusConflict},
		{"unknown op", ErrUnknownOperation("purge"), "BULK_002", http.StatusBadRequest},
		{"rate limit", ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{"delivery exhausted", ErrDeliveryExhausted(errors.New("timeout")), "SYS_002", http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.http, tt.err.HTTPStatus)
		})
	}
}

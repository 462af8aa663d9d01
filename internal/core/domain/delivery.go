package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryOutcome is the result of one callback delivery attempt.
type DeliveryOutcome string

const (
	DeliveryOutcomeSuccess DeliveryOutcome = "success"
	DeliveryOutcomeFailed  DeliveryOutcome = "failed"
)

// DeliveryAttempt is one row of the append-only delivery audit log.
// An event accumulates one row per attempt, across endpoints and retries.
type DeliveryAttempt struct {
	ID         uuid.UUID       `json:"id"`
	EventID    uuid.UUID       `json:"event_id"`
	EndpointID uuid.UUID       `json:"endpoint_id"`
	Attempt    int             `json:"attempt"`
	Outcome    DeliveryOutcome `json:"outcome"`
	HTTPStatus int             `json:"http_status"` // 0 when no response was received
	Error      *string         `json:"error,omitempty"`
	DurationMs int64           `json:"duration_ms"`
	CreatedAt  time.Time       `json:"created_at"`
}

// DeliveryStats is an aggregate over recent delivery attempts, consumed by
// the health monitor.
type DeliveryStats struct {
	Total         int64
	Failed        int64
	AvgDurationMs float64
}

// ErrorRate returns the failed fraction, 0 when no attempts were recorded.
func (s DeliveryStats) ErrorRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Failed) / float64(s.Total)
}

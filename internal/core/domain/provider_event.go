package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ProviderEvent is the audit record of one raw inbound payment-provider
// webhook call. Logged regardless of processing outcome.
type ProviderEvent struct {
	ID              uuid.UUID       `json:"id"`
	ProviderEventID string          `json:"provider_event_id"`
	Type            string          `json:"type"`
	RawBody         json.RawMessage `json:"raw_body"`
	Processed       bool            `json:"processed"`
	Error           *string         `json:"error,omitempty"`
	ReceivedAt      time.Time       `json:"received_at"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// CallbackEndpoint is a tenant-registered URL that receives signed event
// callbacks. Created by tenant configuration; the engine reads it only.
type CallbackEndpoint struct {
	ID         uuid.UUID   `json:"id"`
	TenantID   uuid.UUID   `json:"tenant_id"`
	URL        string      `json:"url"`
	EventTypes []EventType `json:"event_types"`
	SecretEnc  string      `json:"-"` // AES-256-GCM encrypted shared secret
	Active     bool        `json:"active"`
	CreatedAt  time.Time   `json:"created_at"`
}

// SubscribesTo reports whether the endpoint wants events of the given type.
func (e *CallbackEndpoint) SubscribesTo(t EventType) bool {
	for _, et := range e.EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

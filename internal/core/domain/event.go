package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType identifies one of the closed set of lifecycle event kinds.
type EventType string

const (
	EventSubscriptionUpdated   EventType = "subscription.updated"
	EventSubscriptionCancelled EventType = "subscription.cancelled"
	EventSubscriptionExpiring  EventType = "subscription.expiring"
	EventRenewalFailed         EventType = "subscription.renewal_failed"
	EventGroupSuspended        EventType = "group.suspended"
	EventPaymentSucceeded      EventType = "payment.succeeded"
	EventPaymentFailed         EventType = "payment.failed"
)

// LifecycleEvent is the durable record of a tenant-visible state change.
// It is written before any delivery attempt; only the processed flag and
// retry count mutate after creation.
type LifecycleEvent struct {
	ID            uuid.UUID       `json:"id"`
	Type          EventType       `json:"type"`
	TenantID      uuid.UUID       `json:"tenant_id"`
	Payload       json.RawMessage `json:"payload"`
	CorrelationID *string         `json:"correlation_id,omitempty"` // provider event id, if any
	Processed     bool            `json:"processed"`
	RetryCount    int             `json:"retry_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// --- Payload variants (one per event type) ---

// SubscriptionChange describes a status or plan change. SubscriptionID is
// zero for bulk transitions keyed by tenant.
type SubscriptionChange struct {
	SubscriptionID uuid.UUID          `json:"subscription_id,omitzero"`
	Status         SubscriptionStatus `json:"status"`
	PlanID         *uuid.UUID         `json:"plan_id,omitempty"`
	Reason         string             `json:"reason,omitempty"`
}

// PaymentResult describes the outcome of a provider payment.
type PaymentResult struct {
	ProviderEventID string `json:"provider_event_id"`
	Amount          int64  `json:"amount,omitempty"`
	Currency        string `json:"currency,omitempty"`
	FailureReason   string `json:"failure_reason,omitempty"`
}

// RenewalFailure describes a failed automatic renewal.
type RenewalFailure struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	EndDate        time.Time `json:"end_date"`
	Error          string    `json:"error"`
}

// ExpiryNotice warns a tenant about an upcoming expiry.
type ExpiryNotice struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	EndDate        time.Time `json:"end_date"`
	DaysRemaining  int       `json:"days_remaining"`
}

// SuspensionNotice describes an automatic suspension.
type SuspensionNotice struct {
	SubscriptionID uuid.UUID `json:"subscription_id"`
	Reason         string    `json:"reason"`
	GraceEndedAt   time.Time `json:"grace_ended_at"`
}

// NewLifecycleEvent builds an event with a marshalled payload variant.
func NewLifecycleEvent(eventType EventType, tenantID uuid.UUID, payload any) (*LifecycleEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &LifecycleEvent{
		ID:        uuid.New(),
		Type:      eventType,
		TenantID:  tenantID,
		Payload:   raw,
		CreatedAt: time.Now().UTC(),
	}, nil
}

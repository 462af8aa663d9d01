package ports

import (
	"context"
	"time"

	"subscription-automation-engine/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureService handles HMAC-SHA256 signing and verification of webhook
// payloads. The same canonical bytes must be used on both sides.
type SignatureService interface {
	Sign(secretKey string, payload []byte) string
	Verify(secretKey string, payload []byte, signature string) bool
}

// EncryptionService handles AES-256-GCM encryption of endpoint shared
// secrets at rest.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// DeliveryEngine performs at-least-once delivery of one event to one
// endpoint with bounded retries. Attempts for the same (event, endpoint)
// pair are strictly sequential.
type DeliveryEngine interface {
	// Deliver returns nil once a 2xx response is received, or the last
	// failure after the retry budget is exhausted. Every attempt is appended
	// to the delivery log either way.
	Deliver(ctx context.Context, event *domain.LifecycleEvent, endpoint *domain.CallbackEndpoint) error
}

// Broadcaster persists an event and fans it out to all matching tenant
// endpoints. Persistence is synchronous; delivery is not.
type Broadcaster interface {
	Broadcast(ctx context.Context, event *domain.LifecycleEvent) error
}

// BulkProcessor executes lifecycle transitions across many tenants in
// isolated chunks.
type BulkProcessor interface {
	Process(ctx context.Context, ops []domain.BulkOperation) domain.BulkResult
}

// HealthMonitor evaluates system health over a recent window. Check never
// returns an error; a failed evaluation yields a synthetic critical snapshot.
type HealthMonitor interface {
	Check(ctx context.Context) domain.HealthSnapshot
}

// OpsNotifier pushes critical alerts to external operator channels.
type OpsNotifier interface {
	Notify(ctx context.Context, alert domain.Alert) error
}

// ServiceTokenVerifier validates bearer tokens on the internal API. The
// subject identifies the calling service.
type ServiceTokenVerifier interface {
	Validate(token string) (service string, err error)
}

// WebhookIngestor processes one raw, already signature-verified provider
// webhook delivery. Redeliveries are acknowledged without reprocessing.
type WebhookIngestor interface {
	Ingest(ctx context.Context, body []byte) error
}

// SweepDedup dedupes notification sweeps by (tenant, offset, calendar day).
type SweepDedup interface {
	// MarkNotified returns true if the triple was not yet marked and is now
	// claimed by this caller, false if a notification was already sent.
	MarkNotified(ctx context.Context, tenantID uuid.UUID, offsetDays int, day time.Time) (bool, error)

	// Release drops a claimed triple so a later sweep the same day retries
	// a notification that failed to go out.
	Release(ctx context.Context, tenantID uuid.UUID, offsetDays int, day time.Time) error
}

// ReplayGuard dedupes inbound provider webhook deliveries by event id.
type ReplayGuard interface {
	// FirstSeen returns true if the provider event id has not been claimed
	// before, false on a redelivery.
	FirstSeen(ctx context.Context, providerEventID string) (bool, error)

	// Release drops a claimed event id so the provider's retry of a
	// delivery whose handling failed is processed as a fresh attempt.
	Release(ctx context.Context, providerEventID string) error
}

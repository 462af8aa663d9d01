package ports

import (
	"context"
	"time"

	"subscription-automation-engine/internal/core/domain"

	"github.com/google/uuid"
)

// NewSubscription holds the per-tenant values for a bulk create.
type NewSubscription struct {
	TenantID     uuid.UUID
	PlanID       uuid.UUID
	BillingCycle domain.BillingCycle
	StartDate    time.Time
	EndDate      time.Time
}

// DueSubscription pairs a subscription with its tenant's automation config,
// snapshotted at sweep start.
type DueSubscription struct {
	Subscription domain.Subscription
	Config       domain.AutomationConfig
}

// SubscriptionRepository defines persistence operations for subscriptions.
// Batch writes are chunk-sized by the caller; status writes are conditional
// on the expected prior status (compare-and-set).
type SubscriptionRepository interface {
	// CreateBatch inserts one active subscription per entry. The store's
	// one-active-per-tenant uniqueness constraint is the source of truth;
	// a violation fails the whole batch.
	CreateBatch(ctx context.Context, subs []NewSubscription) error

	// UpdatePlanBatch changes plan_id on currently active subscriptions.
	// Tenants without an active subscription are silently skipped.
	UpdatePlanBatch(ctx context.Context, tenantIDs []uuid.UUID, planID uuid.UUID) error

	// TransitionStatusBatch moves subscriptions whose status is in from to
	// the target status. Rows already in the target status count as
	// transitioned, so re-submission is idempotent. Returns the tenant ids
	// of the rows now in the target status; tenants with no matching row
	// are absent from the result.
	TransitionStatusBatch(ctx context.Context, tenantIDs []uuid.UUID, from []domain.SubscriptionStatus, to domain.SubscriptionStatus, reason *string) ([]uuid.UUID, error)

	// ExtendEndDate advances one subscription's end date, conditional on the
	// prior end date so concurrent sweeps cannot double-extend.
	ExtendEndDate(ctx context.Context, subscriptionID uuid.UUID, priorEnd, newEnd time.Time) (bool, error)

	// ActivateOnPayment flips a pending subscription to active and stamps
	// last_payment_at. An already-active row only gets the stamp refreshed.
	ActivateOnPayment(ctx context.Context, tenantID uuid.UUID, paidAt time.Time) error

	GetByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.Subscription, error)

	// ListDueForRenewal returns active subscriptions ending within the window,
	// joined with each tenant's automation config.
	ListDueForRenewal(ctx context.Context, now time.Time, window time.Duration) ([]DueSubscription, error)

	// ListExpired returns active subscriptions whose end date has passed,
	// joined with each tenant's automation config.
	ListExpired(ctx context.Context, now time.Time) ([]DueSubscription, error)

	// ListExpiringOn returns active subscriptions whose end date falls inside
	// the one-day window starting at dayStart.
	ListExpiringOn(ctx context.Context, dayStart time.Time) ([]domain.Subscription, error)

	CountByStatus(ctx context.Context, status domain.SubscriptionStatus) (int64, error)
	CountTenants(ctx context.Context) (int64, error)
}

// EventRepository defines persistence for the lifecycle event log.
type EventRepository interface {
	Create(ctx context.Context, event *domain.LifecycleEvent) error
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	IncrementRetry(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LifecycleEvent, error)
	CountByTypeSince(ctx context.Context, eventType domain.EventType, since time.Time) (int64, error)
	ListUnprocessed(ctx context.Context, limit int) ([]domain.LifecycleEvent, error)
}

// EndpointRepository provides read-only access to tenant callback endpoints.
type EndpointRepository interface {
	// ListActiveForEvent returns the tenant's active endpoints subscribed to
	// the given event type.
	ListActiveForEvent(ctx context.Context, tenantID uuid.UUID, eventType domain.EventType) ([]domain.CallbackEndpoint, error)
}

// DeliveryRepository appends to and aggregates the delivery audit log.
type DeliveryRepository interface {
	Create(ctx context.Context, attempt *domain.DeliveryAttempt) error
	StatsSince(ctx context.Context, since time.Time) (domain.DeliveryStats, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.DeliveryAttempt, error)
}

// AlertRepository persists health monitor alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	ResolveCategory(ctx context.Context, category domain.AlertCategory) error
	ListUnresolved(ctx context.Context) ([]domain.Alert, error)
}

// ProviderEventRepository logs raw inbound payment-provider events.
type ProviderEventRepository interface {
	Create(ctx context.Context, event *domain.ProviderEvent) error
	// Exists reports whether a provider event id has already been ingested.
	Exists(ctx context.Context, providerEventID string) (bool, error)
}

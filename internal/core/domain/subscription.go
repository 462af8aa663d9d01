package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the lifecycle state of a tenant subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusSuspended SubscriptionStatus = "suspended"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// BillingCycle represents the renewal period of a subscription.
type BillingCycle string

const (
	BillingCycleMonthly   BillingCycle = "monthly"
	BillingCycleQuarterly BillingCycle = "quarterly"
	BillingCycleYearly    BillingCycle = "yearly"
)

// Reason recorded when the enforcer suspends an overdue subscription.
const ReasonAutoSuspensionOverdue = "auto_suspension_overdue"

// Subscription is a tenant's plan membership. Rows are never deleted;
// cancellation is a terminal status transition.
type Subscription struct {
	ID               uuid.UUID          `json:"id"`
	TenantID         uuid.UUID          `json:"tenant_id"`
	PlanID           uuid.UUID          `json:"plan_id"`
	Status           SubscriptionStatus `json:"status"`
	BillingCycle     BillingCycle       `json:"billing_cycle"`
	StartDate        time.Time          `json:"start_date"`
	EndDate          time.Time          `json:"end_date"`
	LastPaymentAt    *time.Time         `json:"last_payment_at,omitempty"`
	SuspensionReason *string            `json:"suspension_reason,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// IsTerminal returns true if the subscription can no longer transition.
func (s *Subscription) IsTerminal() bool {
	return s.Status == SubscriptionStatusCancelled
}

// NextEndDate extends a given end date by one billing cycle.
// Cycle lengths are calendar-aware, not fixed day counts.
func (c BillingCycle) NextEndDate(from time.Time) time.Time {
	switch c {
	case BillingCycleQuarterly:
		return from.AddDate(0, 3, 0)
	case BillingCycleYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// AutomationConfig is the per-tenant automation policy. It is read as an
// immutable snapshot at sweep start.
type AutomationConfig struct {
	TenantID            uuid.UUID `json:"tenant_id"`
	AutoRenewal         bool      `json:"auto_renewal"`
	GracePeriodDays     int       `json:"grace_period_days"`
	AutoSuspendOnFail   bool      `json:"auto_suspend_on_failure"`
	MaxRetryAttempts    int       `json:"max_retry_attempts"`
	NotificationOffsets []int     `json:"notification_offsets"`
}

// GraceEnd computes the instant after which an expired subscription may be
// suspended under this config.
func (c *AutomationConfig) GraceEnd(endDate time.Time) time.Time {
	return endDate.AddDate(0, 0, c.GracePeriodDays)
}

package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillingCycle_NextEndDate(t *testing.T) {
	from := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		cycle BillingCycle
		want  time.Time
	}{
		{"monthly", BillingCycleMonthly, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)}, // Jan 31 + 1 month normalises past Feb
		{"quarterly", BillingCycleQuarterly, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"yearly", BillingCycleYearly, time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)},
		{"unknown defaults to monthly", BillingCycle("weekly"), time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cycle.NextEndDate(from))
		})
	}
}

func TestBillingCycle_NextEndDate_MidMonth(t *testing.T) {
	from := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), BillingCycleMonthly.NextEndDate(from))
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), BillingCycleQuarterly.NextEndDate(from))
}

func TestAutomationConfig_GraceEnd(t *testing.T) {
	cfg := &AutomationConfig{GracePeriodDays: 3}
	end := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 4, 12, 0, 0, 0, time.UTC), cfg.GraceEnd(end))
}

func TestSubscription_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status SubscriptionStatus
		want   bool
	}{
		{"pending", SubscriptionStatusPending, false},
		{"active", SubscriptionStatusActive, false},
		{"suspended", SubscriptionStatusSuspended, false},
		{"cancelled", SubscriptionStatusCancelled, true},
		{"expired", SubscriptionStatusExpired, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Subscription{Status: tt.status}
			assert.Equal(t, tt.want, s.IsTerminal())
		})
	}
}

func TestCallbackEndpoint_SubscribesTo(t *testing.T) {
	ep := &CallbackEndpoint{EventTypes: []EventType{EventPaymentSucceeded, EventSubscriptionUpdated}}
	assert.True(t, ep.SubscribesTo(EventPaymentSucceeded))
	assert.False(t, ep.SubscribesTo(EventPaymentFailed))
}

func TestNewLifecycleEvent(t *testing.T) {
	tenantID := uuid.New()
	subID := uuid.New()

	ev, err := NewLifecycleEvent(EventRenewalFailed, tenantID, RenewalFailure{
		SubscriptionID: subID,
		EndDate:        time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Error:          "store unavailable",
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, ev.ID)
	assert.Equal(t, EventRenewalFailed, ev.Type)
	assert.Equal(t, tenantID, ev.TenantID)
	assert.False(t, ev.Processed)
	assert.Zero(t, ev.RetryCount)
	assert.Contains(t, string(ev.Payload), subID.String())
}

func TestMaxSeverity(t *testing.T) {
	assert.Equal(t, HealthStatusHealthy, MaxSeverity(nil))
	assert.Equal(t, HealthStatusWarning, MaxSeverity([]Alert{{Severity: AlertSeverityWarning}}))
	assert.Equal(t, HealthStatusCritical, MaxSeverity([]Alert{
		{Severity: AlertSeverityWarning},
		{Severity: AlertSeverityCritical},
	}))
}

func TestDeliveryStats_ErrorRate(t *testing.T) {
	assert.Zero(t, DeliveryStats{}.ErrorRate())
	assert.InDelta(t, 0.25, DeliveryStats{Total: 8, Failed: 2}.ErrorRate(), 1e-9)
}

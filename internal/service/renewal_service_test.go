package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"
	"subscription-automation-engine/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type renewalTestDeps struct {
	s           *RenewalScheduler
	subRepo     *mocks.MockSubscriptionRepository
	broadcaster *mocks.MockBroadcaster
	ctrl        *gomock.Controller
}

func setupRenewalScheduler(t *testing.T) *renewalTestDeps {
	ctrl := gomock.NewController(t)
	d := &renewalTestDeps{
		subRepo:     mocks.NewMockSubscriptionRepository(ctrl),
		broadcaster: mocks.NewMockBroadcaster(ctrl),
		ctrl:        ctrl,
	}
	d.s = NewRenewalScheduler(d.subRepo, d.broadcaster, 0, 0, zerolog.Nop())
	return d
}

func dueSub(cycle domain.BillingCycle, endDate time.Time, autoRenewal bool) ports.DueSubscription {
	tenantID := uuid.New()
	return ports.DueSubscription{
		Subscription: domain.Subscription{
			ID:           uuid.New(),
			TenantID:     tenantID,
			PlanID:       uuid.New(),
			Status:       domain.SubscriptionStatusActive,
			BillingCycle: cycle,
			EndDate:      endDate,
		},
		Config: domain.AutomationConfig{
			TenantID:    tenantID,
			AutoRenewal: autoRenewal,
		},
	}
}

func TestRenewalScheduler_ExtendsByExactlyOneCycle(t *testing.T) {
	d := setupRenewalScheduler(t)
	defer d.ctrl.Finish()

	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	monthly := dueSub(domain.BillingCycleMonthly, end, true)
	yearly := dueSub(domain.BillingCycleYearly, end, true)

	d.subRepo.EXPECT().ListDueForRenewal(gomock.Any(), gomock.Any(), 7*24*time.Hour).
		Return([]ports.DueSubscription{monthly, yearly}, nil)
	d.subRepo.EXPECT().ExtendEndDate(gomock.Any(), monthly.Subscription.ID, end, end.AddDate(0, 1, 0)).
		Return(true, nil)
	d.subRepo.EXPECT().ExtendEndDate(gomock.Any(), yearly.Subscription.ID, end, end.AddDate(1, 0, 0)).
		Return(true, nil)
	d.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Times(2).Return(nil)

	require.NoError(t, d.s.Sweep(context.Background()))
}

func TestRenewalScheduler_SkipsAutoRenewalOff(t *testing.T) {
	d := setupRenewalScheduler(t)
	defer d.ctrl.Finish()

	manual := dueSub(domain.BillingCycleMonthly, time.Now().UTC(), false)
	d.subRepo.EXPECT().ListDueForRenewal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ports.DueSubscription{manual}, nil)

	require.NoError(t, d.s.Sweep(context.Background()))
}

func TestRenewalScheduler_FailureIsolatedAndAnnounced(t *testing.T) {
	d := setupRenewalScheduler(t)
	defer d.ctrl.Finish()

	end := time.Now().UTC().AddDate(0, 0, 2)
	failing := dueSub(domain.BillingCycleMonthly, end, true)
	healthy := dueSub(domain.BillingCycleMonthly, end, true)

	d.subRepo.EXPECT().ListDueForRenewal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ports.DueSubscription{failing, healthy}, nil)
	d.subRepo.EXPECT().ExtendEndDate(gomock.Any(), failing.Subscription.ID, gomock.Any(), gomock.Any()).
		Return(false, errors.New("write failed"))
	d.subRepo.EXPECT().ExtendEndDate(gomock.Any(), healthy.Subscription.ID, gomock.Any(), gomock.Any()).
		Return(true, nil)

	var (
		mu     sync.Mutex
		events []*domain.LifecycleEvent
	)
	d.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, e *domain.LifecycleEvent) error {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
			return nil
		})

	require.NoError(t, d.s.Sweep(context.Background()), "one tenant's failure never aborts the sweep")

	types := map[domain.EventType]int{}
	for _, e := range events {
		types[e.Type]++
	}
	assert.Equal(t, 1, types[domain.EventRenewalFailed])
	assert.Equal(t, 1, types[domain.EventSubscriptionUpdated])
}

func TestRenewalScheduler_StaleEndDateSkipsQuietly(t *testing.T) {
	d := setupRenewalScheduler(t)
	defer d.ctrl.Finish()

	sub := dueSub(domain.BillingCycleMonthly, time.Now().UTC(), true)
	d.subRepo.EXPECT().ListDueForRenewal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]ports.DueSubscription{sub}, nil)
	d.subRepo.EXPECT().ExtendEndDate(gomock.Any(), sub.Subscription.ID, gomock.Any(), gomock.Any()).
		Return(false, nil)

	// No event: a concurrent sweep already renewed this subscription.
	require.NoError(t, d.s.Sweep(context.Background()))
}

func TestRenewalScheduler_ListFailurePropagates(t *testing.T) {
	d := setupRenewalScheduler(t)
	defer d.ctrl.Finish()

	d.subRepo.EXPECT().ListDueForRenewal(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("query failed"))

	assert.Error(t, d.s.Sweep(context.Background()))
}

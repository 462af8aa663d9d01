package service

import (
	"context"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// defaultNotificationOffsets are the day-counts before expiry at which a
// tenant is warned.
var defaultNotificationOffsets = []int{30, 15, 7, 3, 1}

// NotificationScheduler emits subscription.expiring events at configured
// day offsets before a subscription's end date. A redis dedup keyed by
// (tenant, offset, calendar day) keeps overlapping sweeps from notifying
// the same tenant twice in one day.
type NotificationScheduler struct {
	subRepo     ports.SubscriptionRepository
	dedup       ports.SweepDedup
	broadcaster ports.Broadcaster
	offsets     []int
	log         zerolog.Logger
}

// NewNotificationScheduler creates a notification scheduler. An empty
// offsets slice falls back to {30, 15, 7, 3, 1}.
func NewNotificationScheduler(
	subRepo ports.SubscriptionRepository,
	dedup ports.SweepDedup,
	broadcaster ports.Broadcaster,
	offsets []int,
	log zerolog.Logger,
) *NotificationScheduler {
	if len(offsets) == 0 {
		offsets = defaultNotificationOffsets
	}
	return &NotificationScheduler{
		subRepo:     subRepo,
		dedup:       dedup,
		broadcaster: broadcaster,
		offsets:     offsets,
		log:         log,
	}
}

// Sweep scans one day-wide windows at each configured offset and notifies
// tenants whose subscriptions expire inside them.
func (s *NotificationScheduler) Sweep(ctx context.Context) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var notified int
	for _, offset := range s.offsets {
		dayStart := today.AddDate(0, 0, offset)
		expiring, err := s.subRepo.ListExpiringOn(ctx, dayStart)
		if err != nil {
			return err
		}

		for i := range expiring {
			sub := expiring[i]
			first, err := s.dedup.MarkNotified(ctx, sub.TenantID, offset, today)
			if err != nil {
				s.log.Error().Err(err).
					Str("tenant_id", sub.TenantID.String()).
					Int("offset_days", offset).
					Msg("notification: dedup check failed")
				continue
			}
			if !first {
				continue
			}

			if err := s.notify(ctx, &sub, offset); err != nil {
				s.log.Error().Err(err).
					Str("subscription_id", sub.ID.String()).
					Int("offset_days", offset).
					Msg("notification: failed to broadcast")
				// Undo the claim so a later sweep today retries the notice.
				if relErr := s.dedup.Release(ctx, sub.TenantID, offset, today); relErr != nil {
					s.log.Error().Err(relErr).
						Str("tenant_id", sub.TenantID.String()).
						Int("offset_days", offset).
						Msg("notification: failed to release dedup claim")
				}
				continue
			}
			notified++
		}
	}

	if notified > 0 {
		s.log.Info().Int("notified", notified).Msg("notification: sweep complete")
	}
	return nil
}

func (s *NotificationScheduler) notify(ctx context.Context, sub *domain.Subscription, offset int) error {
	event, err := domain.NewLifecycleEvent(domain.EventSubscriptionExpiring, sub.TenantID, domain.ExpiryNotice{
		SubscriptionID: sub.ID,
		EndDate:        sub.EndDate,
		DaysRemaining:  offset,
	})
	if err != nil {
		return err
	}
	return s.broadcaster.Broadcast(ctx, event)
}

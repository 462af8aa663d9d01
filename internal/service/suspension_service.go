package service

import (
	"context"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SuspensionEnforcer suspends active subscriptions whose grace window has
// elapsed. It is a pure function of the current time and stored state:
// every sweep re-derives the decision, so tenants still inside their grace
// window are simply revisited next time.
type SuspensionEnforcer struct {
	subRepo     ports.SubscriptionRepository
	broadcaster ports.Broadcaster
	log         zerolog.Logger
}

// NewSuspensionEnforcer creates a suspension enforcer.
func NewSuspensionEnforcer(subRepo ports.SubscriptionRepository, broadcaster ports.Broadcaster, log zerolog.Logger) *SuspensionEnforcer {
	return &SuspensionEnforcer{subRepo: subRepo, broadcaster: broadcaster, log: log}
}

// Sweep suspends every overdue subscription whose tenant opted into
// auto-suspension. The status write includes suspended in its from-set, so
// a repeated sweep reports the same outcome without a second transition.
func (s *SuspensionEnforcer) Sweep(ctx context.Context) error {
	now := time.Now().UTC()
	expired, err := s.subRepo.ListExpired(ctx, now)
	if err != nil {
		return err
	}

	var suspended, waiting int
	for i := range expired {
		sub := expired[i].Subscription
		cfg := expired[i].Config

		if !cfg.AutoSuspendOnFail {
			continue
		}
		graceEnd := cfg.GraceEnd(sub.EndDate)
		if !now.After(graceEnd) {
			waiting++
			continue
		}

		if err := s.suspend(ctx, &sub, graceEnd); err != nil {
			s.log.Error().Err(err).
				Str("subscription_id", sub.ID.String()).
				Str("tenant_id", sub.TenantID.String()).
				Msg("suspension: transition failed")
			continue
		}
		suspended++
	}

	if len(expired) > 0 {
		s.log.Info().
			Int("expired", len(expired)).
			Int("suspended", suspended).
			Int("in_grace", waiting).
			Msg("suspension: sweep complete")
	}
	return nil
}

func (s *SuspensionEnforcer) suspend(ctx context.Context, sub *domain.Subscription, graceEnd time.Time) error {
	reason := domain.ReasonAutoSuspensionOverdue
	transitioned, err := s.subRepo.TransitionStatusBatch(ctx,
		[]uuid.UUID{sub.TenantID},
		[]domain.SubscriptionStatus{domain.SubscriptionStatusActive, domain.SubscriptionStatusSuspended},
		domain.SubscriptionStatusSuspended, &reason)
	if err != nil {
		return err
	}
	if len(transitioned) == 0 {
		// Already cancelled or otherwise moved on; not ours to announce.
		return nil
	}

	event, err := domain.NewLifecycleEvent(domain.EventGroupSuspended, sub.TenantID, domain.SuspensionNotice{
		SubscriptionID: sub.ID,
		Reason:         reason,
		GraceEndedAt:   graceEnd,
	})
	if err == nil {
		err = s.broadcaster.Broadcast(ctx, event)
	}
	if err != nil {
		s.log.Error().Err(err).Str("subscription_id", sub.ID.String()).Msg("suspension: failed to broadcast event")
	}
	return nil
}

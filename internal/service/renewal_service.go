package service

import (
	"context"
	"sync"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

const defaultRenewalWindow = 7 * 24 * time.Hour

// RenewalScheduler extends active subscriptions approaching their end date
// by one billing cycle. Each tenant's extension is computed individually,
// but execution borrows the bulk processor's chunking discipline so one
// tenant's failure never aborts the rest of the sweep.
type RenewalScheduler struct {
	subRepo     ports.SubscriptionRepository
	broadcaster ports.Broadcaster
	window      time.Duration
	chunkSize   int
	log         zerolog.Logger
}

// NewRenewalScheduler creates a renewal scheduler. Zero values fall back to
// a 7-day lookahead window and the default chunk size.
func NewRenewalScheduler(
	subRepo ports.SubscriptionRepository,
	broadcaster ports.Broadcaster,
	window time.Duration,
	chunkSize int,
	log zerolog.Logger,
) *RenewalScheduler {
	if window <= 0 {
		window = defaultRenewalWindow
	}
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &RenewalScheduler{
		subRepo:     subRepo,
		broadcaster: broadcaster,
		window:      window,
		chunkSize:   chunkSize,
		log:         log,
	}
}

// Sweep renews every auto-renewal subscription ending within the window.
// The sweep is idempotent: the end-date extension is conditional on the
// prior end date, so a concurrent or repeated sweep cannot double-extend.
func (s *RenewalScheduler) Sweep(ctx context.Context) error {
	now := time.Now().UTC()
	due, err := s.subRepo.ListDueForRenewal(ctx, now, s.window)
	if err != nil {
		return err
	}

	eligible := due[:0]
	for _, d := range due {
		if d.Config.AutoRenewal {
			eligible = append(eligible, d)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	var (
		wg              sync.WaitGroup
		mu              sync.Mutex
		renewed, failed int
	)
	for _, chunk := range chunkSlice(eligible, s.chunkSize) {
		chunk := chunk
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, f := s.renewChunk(ctx, chunk)
			mu.Lock()
			renewed += r
			failed += f
			mu.Unlock()
		}()
	}
	wg.Wait()

	s.log.Info().
		Int("due", len(eligible)).
		Int("renewed", renewed).
		Int("failed", failed).
		Msg("renewal: sweep complete")
	return nil
}

func (s *RenewalScheduler) renewChunk(ctx context.Context, chunk []ports.DueSubscription) (renewed, failed int) {
	for i := range chunk {
		sub := chunk[i].Subscription
		newEnd := sub.BillingCycle.NextEndDate(sub.EndDate)

		ok, err := s.subRepo.ExtendEndDate(ctx, sub.ID, sub.EndDate, newEnd)
		if err != nil {
			failed++
			s.log.Error().Err(err).
				Str("subscription_id", sub.ID.String()).
				Str("tenant_id", sub.TenantID.String()).
				Msg("renewal: extension failed")
			s.announceFailure(ctx, &sub, err)
			continue
		}
		if !ok {
			// Another sweep got here first; nothing to do.
			continue
		}

		renewed++
		event, err := domain.NewLifecycleEvent(domain.EventSubscriptionUpdated, sub.TenantID, domain.SubscriptionChange{
			SubscriptionID: sub.ID,
			Status:         domain.SubscriptionStatusActive,
			PlanID:         &sub.PlanID,
			Reason:         "auto_renewal",
		})
		if err == nil {
			err = s.broadcaster.Broadcast(ctx, event)
		}
		if err != nil {
			s.log.Error().Err(err).Str("subscription_id", sub.ID.String()).Msg("renewal: failed to broadcast event")
		}
	}
	return renewed, failed
}

// announceFailure emits a renewal_failed event. The subscription keeps its
// current status; suspension is the enforcer's grace-gated decision.
func (s *RenewalScheduler) announceFailure(ctx context.Context, sub *domain.Subscription, cause error) {
	event, err := domain.NewLifecycleEvent(domain.EventRenewalFailed, sub.TenantID, domain.RenewalFailure{
		SubscriptionID: sub.ID,
		EndDate:        sub.EndDate,
		Error:          failureStoreError,
	})
	if err == nil {
		err = s.broadcaster.Broadcast(ctx, event)
	}
	if err != nil {
		s.log.Error().Err(err).
			Str("subscription_id", sub.ID.String()).
			AnErr("cause", cause).
			Msg("renewal: failed to broadcast failure event")
	}
}

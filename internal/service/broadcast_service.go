package service

import (
	"context"
	"sync"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// EventBroadcaster implements ports.Broadcaster. The event is persisted
// synchronously before anything else; delivery fan-out happens in the
// background and its failures never propagate to the caller.
type EventBroadcaster struct {
	eventRepo    ports.EventRepository
	endpointRepo ports.EndpointRepository
	engine       ports.DeliveryEngine
	log          zerolog.Logger
	wg           sync.WaitGroup
}

// NewEventBroadcaster creates an event broadcaster.
func NewEventBroadcaster(
	eventRepo ports.EventRepository,
	endpointRepo ports.EndpointRepository,
	engine ports.DeliveryEngine,
	log zerolog.Logger,
) *EventBroadcaster {
	return &EventBroadcaster{
		eventRepo:    eventRepo,
		endpointRepo: endpointRepo,
		engine:       engine,
		log:          log,
	}
}

// Broadcast persists the event, then fans it out to all matching active
// endpoints concurrently. Zero subscribers is a valid terminal state: the
// event is marked processed and nil is returned.
func (b *EventBroadcaster) Broadcast(ctx context.Context, event *domain.LifecycleEvent) error {
	if err := b.eventRepo.Create(ctx, event); err != nil {
		b.log.Error().Err(err).
			Str("event_type", string(event.Type)).
			Str("tenant_id", event.TenantID.String()).
			Msg("broadcast: failed to persist event")
		return err
	}

	endpoints, err := b.endpointRepo.ListActiveForEvent(ctx, event.TenantID, event.Type)
	if err != nil {
		// Event is durable; it stays unprocessed and surfaces via the
		// health monitor rather than failing the caller.
		b.log.Error().Err(err).
			Str("event_id", event.ID.String()).
			Msg("broadcast: failed to list endpoints")
		return nil
	}

	if len(endpoints) == 0 {
		if err := b.eventRepo.MarkProcessed(ctx, event.ID); err != nil {
			b.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("broadcast: failed to mark processed")
		}
		return nil
	}

	// Deliveries outlive the caller's request context.
	bgCtx := context.WithoutCancel(ctx)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.fanOut(bgCtx, event, endpoints)
	}()

	return nil
}

// Wait blocks until all in-flight fan-outs finish. Used on shutdown and in
// tests.
func (b *EventBroadcaster) Wait() {
	b.wg.Wait()
}

// fanOut delivers to every endpoint concurrently, then settles the event's
// bookkeeping: processed when all deliveries succeeded, retry count bumped
// otherwise.
func (b *EventBroadcaster) fanOut(ctx context.Context, event *domain.LifecycleEvent, endpoints []domain.CallbackEndpoint) {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)

	for i := range endpoints {
		ep := endpoints[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := b.engine.Deliver(ctx, event, &ep); err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if failed == 0 {
		if err := b.eventRepo.MarkProcessed(ctx, event.ID); err != nil {
			b.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("broadcast: failed to mark processed")
		}
		return
	}

	b.log.Warn().
		Str("event_id", event.ID.String()).
		Int("endpoints", len(endpoints)).
		Int("failed", failed).
		Msg("broadcast: some deliveries exhausted retries")
	if err := b.eventRepo.IncrementRetry(ctx, event.ID); err != nil {
		b.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("broadcast: failed to bump retry count")
	}
}

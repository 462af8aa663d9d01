package service

import (
	"context"
	"encoding/json"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"
	"subscription-automation-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// providerEnvelope is the wire shape of one provider webhook delivery.
type providerEnvelope struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Provider event types this ingestor understands. Anything else is
// acknowledged and logged without action.
const (
	providerPaymentSucceeded      = "payment.succeeded"
	providerPaymentFailed         = "payment.failed"
	providerSubscriptionUpdated   = "subscription.updated"
	providerSubscriptionCancelled = "subscription.cancelled"
)

// paymentSucceededData is the payload of a provider payment.succeeded event.
type paymentSucceededData struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Amount   int64     `json:"amount"`
	Currency string    `json:"currency"`
	PaidAt   time.Time `json:"paid_at"`
}

type paymentFailedData struct {
	TenantID      uuid.UUID `json:"tenant_id"`
	FailureReason string    `json:"failure_reason"`
}

type subscriptionChangeData struct {
	TenantID uuid.UUID  `json:"tenant_id"`
	PlanID   *uuid.UUID `json:"plan_id,omitempty"`
	Reason   string     `json:"reason,omitempty"`
}

// PaymentIngestionService implements ports.WebhookIngestor. The caller has
// already verified the HMAC signature over the raw body; this service
// parses the envelope, guards against redeliveries, applies the store
// mutation, broadcasts the resulting lifecycle event, and writes the raw
// audit row.
type PaymentIngestionService struct {
	subRepo      ports.SubscriptionRepository
	providerRepo ports.ProviderEventRepository
	replayGuard  ports.ReplayGuard
	broadcaster  ports.Broadcaster
	log          zerolog.Logger
}

// NewPaymentIngestionService creates a webhook ingestor.
func NewPaymentIngestionService(
	subRepo ports.SubscriptionRepository,
	providerRepo ports.ProviderEventRepository,
	replayGuard ports.ReplayGuard,
	broadcaster ports.Broadcaster,
	log zerolog.Logger,
) *PaymentIngestionService {
	return &PaymentIngestionService{
		subRepo:      subRepo,
		providerRepo: providerRepo,
		replayGuard:  replayGuard,
		broadcaster:  broadcaster,
		log:          log,
	}
}

// Ingest processes one delivery. A redelivered provider event id is
// acknowledged with nil and nothing is reapplied.
func (s *PaymentIngestionService) Ingest(ctx context.Context, body []byte) error {
	var env providerEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apperror.ErrMalformedPayload()
	}
	if env.ID == "" || env.Type == "" {
		return apperror.ErrMalformedPayload()
	}

	fresh, err := s.firstDelivery(ctx, env.ID)
	if err != nil {
		return apperror.ErrStoreError(err)
	}
	if !fresh {
		s.log.Debug().Str("provider_event_id", env.ID).Msg("ingest: redelivery ignored")
		return nil
	}

	handleErr := s.dispatch(ctx, &env)
	s.audit(ctx, &env, body, handleErr)
	if handleErr != nil {
		// Give the claim back so the provider's retry is not swallowed as
		// a redelivery of an event that was never applied.
		if relErr := s.replayGuard.Release(ctx, env.ID); relErr != nil {
			s.log.Warn().Err(relErr).Str("provider_event_id", env.ID).
				Msg("ingest: failed to release replay claim after handler error")
		}
	}
	return handleErr
}

// firstDelivery consults the redis replay guard with the provider event
// table as backstop, so a flushed cache cannot cause double processing.
func (s *PaymentIngestionService) firstDelivery(ctx context.Context, providerEventID string) (bool, error) {
	fresh, err := s.replayGuard.FirstSeen(ctx, providerEventID)
	if err != nil {
		s.log.Warn().Err(err).Msg("ingest: replay guard unavailable, using store backstop")
	} else if !fresh {
		return false, nil
	}

	exists, err := s.providerRepo.Exists(ctx, providerEventID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *PaymentIngestionService) dispatch(ctx context.Context, env *providerEnvelope) error {
	switch env.Type {
	case providerPaymentSucceeded:
		return s.handlePaymentSucceeded(ctx, env)
	case providerPaymentFailed:
		return s.handlePaymentFailed(ctx, env)
	case providerSubscriptionUpdated:
		return s.handleSubscriptionUpdated(ctx, env)
	case providerSubscriptionCancelled:
		return s.handleSubscriptionCancelled(ctx, env)
	default:
		s.log.Info().Str("type", env.Type).Msg("ingest: unhandled provider event type acknowledged")
		return nil
	}
}

func (s *PaymentIngestionService) handlePaymentSucceeded(ctx context.Context, env *providerEnvelope) error {
	var data paymentSucceededData
	if err := json.Unmarshal(env.Data, &data); err != nil || data.TenantID == uuid.Nil {
		return apperror.ErrMalformedPayload()
	}
	paidAt := data.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now().UTC()
	}

	if err := s.subRepo.ActivateOnPayment(ctx, data.TenantID, paidAt); err != nil {
		return apperror.ErrStoreError(err)
	}

	return s.announce(ctx, domain.EventPaymentSucceeded, data.TenantID, env.ID, domain.PaymentResult{
		ProviderEventID: env.ID,
		Amount:          data.Amount,
		Currency:        data.Currency,
	})
}

func (s *PaymentIngestionService) handlePaymentFailed(ctx context.Context, env *providerEnvelope) error {
	var data paymentFailedData
	if err := json.Unmarshal(env.Data, &data); err != nil || data.TenantID == uuid.Nil {
		return apperror.ErrMalformedPayload()
	}

	// No store mutation: a failed payment alone never changes status.
	// Suspension is the enforcer's grace-gated decision.
	return s.announce(ctx, domain.EventPaymentFailed, data.TenantID, env.ID, domain.PaymentResult{
		ProviderEventID: env.ID,
		FailureReason:   data.FailureReason,
	})
}

func (s *PaymentIngestionService) handleSubscriptionUpdated(ctx context.Context, env *providerEnvelope) error {
	var data subscriptionChangeData
	if err := json.Unmarshal(env.Data, &data); err != nil || data.TenantID == uuid.Nil {
		return apperror.ErrMalformedPayload()
	}

	if data.PlanID != nil {
		if err := s.subRepo.UpdatePlanBatch(ctx, []uuid.UUID{data.TenantID}, *data.PlanID); err != nil {
			return apperror.ErrStoreError(err)
		}
	}

	return s.announce(ctx, domain.EventSubscriptionUpdated, data.TenantID, env.ID, domain.SubscriptionChange{
		Status: domain.SubscriptionStatusActive,
		PlanID: data.PlanID,
		Reason: data.Reason,
	})
}

func (s *PaymentIngestionService) handleSubscriptionCancelled(ctx context.Context, env *providerEnvelope) error {
	var data subscriptionChangeData
	if err := json.Unmarshal(env.Data, &data); err != nil || data.TenantID == uuid.Nil {
		return apperror.ErrMalformedPayload()
	}

	var reason *string
	if data.Reason != "" {
		reason = &data.Reason
	}
	if _, err := s.subRepo.TransitionStatusBatch(ctx, []uuid.UUID{data.TenantID},
		[]domain.SubscriptionStatus{domain.SubscriptionStatusPending, domain.SubscriptionStatusActive, domain.SubscriptionStatusSuspended, domain.SubscriptionStatusCancelled},
		domain.SubscriptionStatusCancelled, reason); err != nil {
		return apperror.ErrStoreError(err)
	}

	return s.announce(ctx, domain.EventSubscriptionCancelled, data.TenantID, env.ID, domain.SubscriptionChange{
		Status: domain.SubscriptionStatusCancelled,
		Reason: data.Reason,
	})
}

func (s *PaymentIngestionService) announce(ctx context.Context, eventType domain.EventType, tenantID uuid.UUID, providerEventID string, payload any) error {
	event, err := domain.NewLifecycleEvent(eventType, tenantID, payload)
	if err != nil {
		return apperror.InternalError(err)
	}
	event.CorrelationID = &providerEventID
	if err := s.broadcaster.Broadcast(ctx, event); err != nil {
		return apperror.ErrStoreError(err)
	}
	return nil
}

// audit writes the raw delivery row. Best effort; the processing outcome
// already stands.
func (s *PaymentIngestionService) audit(ctx context.Context, env *providerEnvelope, body []byte, handleErr error) {
	row := &domain.ProviderEvent{
		ID:              uuid.New(),
		ProviderEventID: env.ID,
		Type:            env.Type,
		RawBody:         body,
		Processed:       handleErr == nil,
		ReceivedAt:      time.Now().UTC(),
	}
	if handleErr != nil {
		msg := handleErr.Error()
		row.Error = &msg
	}

	if err := s.providerRepo.Create(ctx, row); err != nil {
		s.log.Error().Err(err).Str("provider_event_id", env.ID).Msg("ingest: failed to write audit row")
	}
}

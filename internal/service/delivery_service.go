package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"
	"subscription-automation-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderEventSignature carries the HMAC-SHA256 hex of the canonical body.
const HeaderEventSignature = "X-Event-Signature"

// defaultRetryDelays is the fixed escalating schedule between attempts.
// Not exponential; tuned from observed production behaviour.
var defaultRetryDelays = []time.Duration{
	1 * time.Second,
	5 * time.Second,
	15 * time.Second,
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// eventEnvelope is the canonical JSON body sent to callback endpoints.
// Field order is the signature contract; do not reorder.
type eventEnvelope struct {
	ID      uuid.UUID        `json:"id"`
	Type    domain.EventType `json:"type"`
	Created int64            `json:"created"`
	Data    json.RawMessage  `json:"data"`
}

// CallbackDeliveryEngine implements ports.DeliveryEngine: at-least-once
// delivery of one event to one endpoint with a bounded retry schedule.
// Attempts for the same (event, endpoint) pair run strictly sequentially.
type CallbackDeliveryEngine struct {
	deliveryRepo ports.DeliveryRepository
	encSvc       ports.EncryptionService
	sigSvc       ports.SignatureService
	httpClient   HTTPClient
	maxAttempts  int
	retryDelays  []time.Duration
	log          zerolog.Logger
}

// NewCallbackDeliveryEngine creates a delivery engine. maxAttempts <= 0
// falls back to 3; nil retryDelays falls back to the default table.
func NewCallbackDeliveryEngine(
	deliveryRepo ports.DeliveryRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	maxAttempts int,
	retryDelays []time.Duration,
	log zerolog.Logger,
) *CallbackDeliveryEngine {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if len(retryDelays) == 0 {
		retryDelays = defaultRetryDelays
	}
	return &CallbackDeliveryEngine{
		deliveryRepo: deliveryRepo,
		encSvc:       encSvc,
		sigSvc:       sigSvc,
		httpClient:   httpClient,
		maxAttempts:  maxAttempts,
		retryDelays:  retryDelays,
		log:          log,
	}
}

// Deliver posts the signed canonical envelope to the endpoint, retrying per
// the delay table. Every attempt is appended to the delivery log before the
// next one starts. Returns nil on the first 2xx response.
func (e *CallbackDeliveryEngine) Deliver(ctx context.Context, event *domain.LifecycleEvent, endpoint *domain.CallbackEndpoint) error {
	secret, err := e.encSvc.Decrypt(endpoint.SecretEnc)
	if err != nil {
		e.log.Error().Err(err).
			Str("endpoint_id", endpoint.ID.String()).
			Msg("delivery: failed to decrypt endpoint secret")
		return err
	}

	body, err := json.Marshal(eventEnvelope{
		ID:      event.ID,
		Type:    event.Type,
		Created: event.CreatedAt.Unix(),
		Data:    event.Payload,
	})
	if err != nil {
		return fmt.Errorf("marshal event envelope: %w", err)
	}
	signature := e.sigSvc.Sign(secret, body)

	var lastErr error
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := e.wait(ctx, e.delayFor(attempt)); err != nil {
				return err
			}
		}

		status, duration, attemptErr := e.post(ctx, endpoint.URL, body, signature)
		e.record(ctx, event.ID, endpoint.ID, attempt, status, duration, attemptErr)

		if attemptErr == nil {
			e.log.Info().
				Str("event_id", event.ID.String()).
				Str("endpoint_id", endpoint.ID.String()).
				Int("attempt", attempt).
				Int("status", status).
				Msg("delivery: succeeded")
			return nil
		}

		lastErr = attemptErr
		e.log.Warn().Err(attemptErr).
			Str("event_id", event.ID.String()).
			Str("endpoint_id", endpoint.ID.String()).
			Int("attempt", attempt).
			Int("status", status).
			Msg("delivery: attempt failed")
	}

	e.log.Error().Err(lastErr).
		Str("event_id", event.ID.String()).
		Str("endpoint_id", endpoint.ID.String()).
		Int("attempts", e.maxAttempts).
		Msg("delivery: retries exhausted")
	return apperror.ErrDeliveryExhausted(lastErr)
}

// post issues one HTTP POST. Returns the status code (0 when no response
// was received), the elapsed time, and an error for anything non-2xx.
func (e *CallbackDeliveryEngine) post(ctx context.Context, url string, body []byte, signature string) (int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEventSignature, signature)

	start := time.Now()
	resp, err := e.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		return 0, duration, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, duration, fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}
	return resp.StatusCode, duration, nil
}

// record appends one attempt row. A failed append is logged but never
// interrupts the retry loop.
func (e *CallbackDeliveryEngine) record(ctx context.Context, eventID, endpointID uuid.UUID, attempt, status int, duration time.Duration, attemptErr error) {
	row := &domain.DeliveryAttempt{
		ID:         uuid.New(),
		EventID:    eventID,
		EndpointID: endpointID,
		Attempt:    attempt,
		Outcome:    domain.DeliveryOutcomeSuccess,
		HTTPStatus: status,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}
	if attemptErr != nil {
		row.Outcome = domain.DeliveryOutcomeFailed
		msg := attemptErr.Error()
		row.Error = &msg
	}

	if err := e.deliveryRepo.Create(ctx, row); err != nil {
		e.log.Error().Err(err).
			Str("event_id", eventID.String()).
			Int("attempt", attempt).
			Msg("delivery: failed to append attempt log")
	}
}

// delayFor returns the wait before the given attempt (attempt >= 2). The
// last table entry repeats if attempts exceed the table.
func (e *CallbackDeliveryEngine) delayFor(attempt int) time.Duration {
	idx := attempt - 2
	if idx >= len(e.retryDelays) {
		idx = len(e.retryDelays) - 1
	}
	return e.retryDelays[idx]
}

// wait sleeps for d or until the context is cancelled.
func (e *CallbackDeliveryEngine) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

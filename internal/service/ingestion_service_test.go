package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports/mocks"
	"subscription-automation-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ingestionTestDeps struct {
	s            *PaymentIngestionService
	subRepo      *mocks.MockSubscriptionRepository
	providerRepo *mocks.MockProviderEventRepository
	replayGuard  *mocks.MockReplayGuard
	broadcaster  *mocks.MockBroadcaster
	ctrl         *gomock.Controller
}

func setupIngestion(t *testing.T) *ingestionTestDeps {
	ctrl := gomock.NewController(t)
	d := &ingestionTestDeps{
		subRepo:      mocks.NewMockSubscriptionRepository(ctrl),
		providerRepo: mocks.NewMockProviderEventRepository(ctrl),
		replayGuard:  mocks.NewMockReplayGuard(ctrl),
		broadcaster:  mocks.NewMockBroadcaster(ctrl),
		ctrl:         ctrl,
	}
	d.s = NewPaymentIngestionService(d.subRepo, d.providerRepo, d.replayGuard, d.broadcaster, zerolog.Nop())
	return d
}

func providerBody(id, eventType string, data any) []byte {
	raw, _ := json.Marshal(data)
	body, _ := json.Marshal(map[string]json.RawMessage{
		"id":   json.RawMessage(fmt.Sprintf("%q", id)),
		"type": json.RawMessage(fmt.Sprintf("%q", eventType)),
		"data": raw,
	})
	return body
}

func TestIngestion_PaymentSucceededActivatesAndBroadcasts(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	tenantID := uuid.New()
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	body := providerBody("evt_001", "payment.succeeded", map[string]any{
		"tenant_id": tenantID,
		"amount":    4900,
		"currency":  "USD",
		"paid_at":   paidAt,
	})

	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_001").Return(true, nil)
	d.providerRepo.EXPECT().Exists(gomock.Any(), "evt_001").Return(false, nil)
	d.subRepo.EXPECT().ActivateOnPayment(gomock.Any(), tenantID, paidAt).Return(nil)

	var event *domain.LifecycleEvent
	d.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.LifecycleEvent) error {
			event = e
			return nil
		})
	d.providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *domain.ProviderEvent) error {
			assert.True(t, row.Processed)
			assert.Equal(t, "evt_001", row.ProviderEventID)
			return nil
		})

	require.NoError(t, d.s.Ingest(context.Background(), body))

	require.NotNil(t, event)
	assert.Equal(t, domain.EventPaymentSucceeded, event.Type)
	assert.Equal(t, tenantID, event.TenantID)
	require.NotNil(t, event.CorrelationID)
	assert.Equal(t, "evt_001", *event.CorrelationID)
}

func TestIngestion_RedeliveryIsIgnored(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	body := providerBody("evt_002", "payment.succeeded", map[string]any{"tenant_id": uuid.New()})
	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_002").Return(false, nil)

	// No store calls, no broadcast, no audit row: nothing to reprocess.
	require.NoError(t, d.s.Ingest(context.Background(), body))
}

func TestIngestion_StoreBackstopCatchesFlushedCache(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	body := providerBody("evt_003", "payment.succeeded", map[string]any{"tenant_id": uuid.New()})
	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_003").Return(true, nil)
	d.providerRepo.EXPECT().Exists(gomock.Any(), "evt_003").Return(true, nil)

	require.NoError(t, d.s.Ingest(context.Background(), body))
}

func TestIngestion_PaymentFailedBroadcastsWithoutMutation(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	tenantID := uuid.New()
	body := providerBody("evt_004", "payment.failed", map[string]any{
		"tenant_id":      tenantID,
		"failure_reason": "card_declined",
	})

	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_004").Return(true, nil)
	d.providerRepo.EXPECT().Exists(gomock.Any(), "evt_004").Return(false, nil)

	var event *domain.LifecycleEvent
	d.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *domain.LifecycleEvent) error {
			event = e
			return nil
		})
	d.providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, d.s.Ingest(context.Background(), body))
	assert.Equal(t, domain.EventPaymentFailed, event.Type)

	var payload domain.PaymentResult
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, "card_declined", payload.FailureReason)
}

func TestIngestion_SubscriptionCancelledTransitionsStatus(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	tenantID := uuid.New()
	body := providerBody("evt_005", "subscription.cancelled", map[string]any{
		"tenant_id": tenantID,
		"reason":    "customer_request",
	})

	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_005").Return(true, nil)
	d.providerRepo.EXPECT().Exists(gomock.Any(), "evt_005").Return(false, nil)
	d.subRepo.EXPECT().TransitionStatusBatch(gomock.Any(), []uuid.UUID{tenantID}, gomock.Any(),
		domain.SubscriptionStatusCancelled, gomock.Any()).Return([]uuid.UUID{tenantID}, nil)
	d.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(nil)
	d.providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, d.s.Ingest(context.Background(), body))
}

func TestIngestion_UnknownTypeIsAcked(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	body := providerBody("evt_006", "invoice.finalized", map[string]any{})
	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_006").Return(true, nil)
	d.providerRepo.EXPECT().Exists(gomock.Any(), "evt_006").Return(false, nil)
	d.providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, d.s.Ingest(context.Background(), body))
}

func TestIngestion_MalformedEnvelope(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	for _, body := range [][]byte{
		[]byte("not json"),
		[]byte(`{"type":"payment.succeeded"}`), // missing id
		[]byte(`{"id":"evt_007"}`),             // missing type
	} {
		err := d.s.Ingest(context.Background(), body)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "SIG_002", appErr.Code)
	}
}

func TestIngestion_FailedHandlerRecordsUnprocessedAudit(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	// payment.succeeded with no tenant id fails dispatch after the guard.
	body := providerBody("evt_008", "payment.succeeded", map[string]any{})
	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_008").Return(true, nil)
	d.providerRepo.EXPECT().Exists(gomock.Any(), "evt_008").Return(false, nil)
	d.providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *domain.ProviderEvent) error {
			assert.False(t, row.Processed)
			require.NotNil(t, row.Error)
			return nil
		})
	d.replayGuard.EXPECT().Release(gomock.Any(), "evt_008").Return(nil)

	assert.Error(t, d.s.Ingest(context.Background(), body))
}

func TestIngestion_HandlerFailureAllowsRedeliveryToReprocess(t *testing.T) {
	d := setupIngestion(t)
	defer d.ctrl.Finish()

	tenantID := uuid.New()
	paidAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	body := providerBody("evt_009", "payment.succeeded", map[string]any{
		"tenant_id": tenantID,
		"amount":    4900,
		"currency":  "USD",
		"paid_at":   paidAt,
	})

	// First delivery: the handler fails, so the replay claim is released
	// and the audit row stays unprocessed.
	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_009").Return(true, nil)
	d.providerRepo.EXPECT().Exists(gomock.Any(), "evt_009").Return(false, nil)
	d.subRepo.EXPECT().ActivateOnPayment(gomock.Any(), tenantID, paidAt).
		Return(errors.New("connection reset"))
	d.providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	d.replayGuard.EXPECT().Release(gomock.Any(), "evt_009").Return(nil)

	require.Error(t, d.s.Ingest(context.Background(), body))

	// Provider retry: the claim is gone, so the payment is applied this time.
	d.replayGuard.EXPECT().FirstSeen(gomock.Any(), "evt_009").Return(true, nil)
	d.providerRepo.EXPECT().Exists(gomock.Any(), "evt_009").Return(false, nil)
	d.subRepo.EXPECT().ActivateOnPayment(gomock.Any(), tenantID, paidAt).Return(nil)
	d.broadcaster.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Return(nil)
	d.providerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, d.s.Ingest(context.Background(), body))
}

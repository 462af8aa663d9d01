package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
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

// stubHTTPClient scripts one response per call.
type stubHTTPClient struct {
	calls     int
	responses []func(req *http.Request) (*http.Response, error)
}

func (c *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	i := c.calls
	c.calls++
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	return c.responses[i](req)
}

func respondWith(status int) func(req *http.Request) (*http.Response, error) {
	return func(_ *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(""))}, nil
	}
}

func transportError() func(req *http.Request) (*http.Response, error) {
	return func(_ *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}
}

var testRetryDelays = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}

type deliveryTestDeps struct {
	engine   *CallbackDeliveryEngine
	repo     *mocks.MockDeliveryRepository
	encSvc   *mocks.MockEncryptionService
	client   *stubHTTPClient
	ctrl     *gomock.Controller
	event    *domain.LifecycleEvent
	endpoint *domain.CallbackEndpoint
}

func setupDeliveryEngine(t *testing.T, client *stubHTTPClient) *deliveryTestDeps {
	ctrl := gomock.NewController(t)
	d := &deliveryTestDeps{
		repo:   mocks.NewMockDeliveryRepository(ctrl),
		encSvc: mocks.NewMockEncryptionService(ctrl),
		client: client,
		ctrl:   ctrl,
	}
	d.engine = NewCallbackDeliveryEngine(
		d.repo, d.encSvc, NewHMACSignatureService(), client, 3, testRetryDelays, zerolog.Nop(),
	)
	d.event = &domain.LifecycleEvent{
		ID:        uuid.New(),
		Type:      domain.EventSubscriptionUpdated,
		TenantID:  uuid.New(),
		Payload:   []byte(`{"status":"active"}`),
		CreatedAt: time.Now().UTC(),
	}
	d.endpoint = &domain.CallbackEndpoint{
		ID:        uuid.New(),
		TenantID:  d.event.TenantID,
		URL:       "https://tenant.example.com/callbacks",
		SecretEnc: "encrypted-secret",
		Active:    true,
	}
	return d
}

func TestCallbackDeliveryEngine_SuccessFirstAttempt(t *testing.T) {
	var signedHeader string
	client := &stubHTTPClient{responses: []func(*http.Request) (*http.Response, error){
		func(req *http.Request) (*http.Response, error) {
			signedHeader = req.Header.Get(HeaderEventSignature)
			return respondWith(http.StatusOK)(req)
		},
	}}
	d := setupDeliveryEngine(t, client)
	defer d.ctrl.Finish()

	d.encSvc.EXPECT().Decrypt("encrypted-secret").Return("shared-secret", nil)

	var rows []*domain.DeliveryAttempt
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.DeliveryAttempt) error {
			rows = append(rows, a)
			return nil
		})

	err := d.engine.Deliver(context.Background(), d.event, d.endpoint)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, domain.DeliveryOutcomeSuccess, rows[0].Outcome)
	assert.Equal(t, http.StatusOK, rows[0].HTTPStatus)
	assert.Equal(t, 1, rows[0].Attempt)
	assert.Regexp(t, `^[0-9a-f]{64}$`, signedHeader, "request must carry the HMAC signature header")
}

func TestCallbackDeliveryEngine_RetriesThenSucceeds(t *testing.T) {
	client := &stubHTTPClient{responses: []func(*http.Request) (*http.Response, error){
		respondWith(http.StatusInternalServerError),
		respondWith(http.StatusOK),
	}}
	d := setupDeliveryEngine(t, client)
	defer d.ctrl.Finish()

	d.encSvc.EXPECT().Decrypt(gomock.Any()).Return("shared-secret", nil)

	var rows []*domain.DeliveryAttempt
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, a *domain.DeliveryAttempt) error {
			rows = append(rows, a)
			return nil
		})

	err := d.engine.Deliver(context.Background(), d.event, d.endpoint)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, domain.DeliveryOutcomeFailed, rows[0].Outcome)
	assert.Equal(t, domain.DeliveryOutcomeSuccess, rows[1].Outcome)
	assert.Equal(t, 2, rows[1].Attempt)
}

func TestCallbackDeliveryEngine_ExhaustsRetryBudget(t *testing.T) {
	client := &stubHTTPClient{responses: []func(*http.Request) (*http.Response, error){
		respondWith(http.StatusServiceUnavailable),
	}}
	d := setupDeliveryEngine(t, client)
	defer d.ctrl.Finish()

	d.encSvc.EXPECT().Decrypt(gomock.Any()).Return("shared-secret", nil)

	var rows []*domain.DeliveryAttempt
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, a *domain.DeliveryAttempt) error {
			rows = append(rows, a)
			return nil
		})

	err := d.engine.Deliver(context.Background(), d.event, d.endpoint)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_002", appErr.Code)

	// Exactly maxAttempts rows, never more.
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Attempt)
		assert.Equal(t, domain.DeliveryOutcomeFailed, row.Outcome)
	}
}

func TestCallbackDeliveryEngine_RetryDelaysFollowTable(t *testing.T) {
	var attemptTimes []time.Time
	client := &stubHTTPClient{responses: []func(*http.Request) (*http.Response, error){
		func(req *http.Request) (*http.Response, error) {
			attemptTimes = append(attemptTimes, time.Now())
			return respondWith(http.StatusInternalServerError)(req)
		},
	}}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockDeliveryRepository(ctrl)
	encSvc := mocks.NewMockEncryptionService(ctrl)
	encSvc.EXPECT().Decrypt(gomock.Any()).Return("shared-secret", nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(4).Return(nil)

	// Distinct delays so each attempt maps to its own table entry; the
	// fourth attempt runs off the end and repeats the last one.
	delays := []time.Duration{10 * time.Millisecond, 30 * time.Millisecond}
	engine := NewCallbackDeliveryEngine(
		repo, encSvc, NewHMACSignatureService(), client, 4, delays, zerolog.Nop(),
	)

	event := &domain.LifecycleEvent{
		ID:        uuid.New(),
		Type:      domain.EventSubscriptionUpdated,
		TenantID:  uuid.New(),
		Payload:   []byte(`{"status":"active"}`),
		CreatedAt: time.Now().UTC(),
	}
	endpoint := &domain.CallbackEndpoint{
		ID:        uuid.New(),
		TenantID:  event.TenantID,
		URL:       "https://tenant.example.com/callbacks",
		SecretEnc: "encrypted-secret",
		Active:    true,
	}

	err := engine.Deliver(context.Background(), event, endpoint)
	require.Error(t, err)
	require.Len(t, attemptTimes, 4)

	gap12 := attemptTimes[1].Sub(attemptTimes[0])
	gap23 := attemptTimes[2].Sub(attemptTimes[1])
	gap34 := attemptTimes[3].Sub(attemptTimes[2])

	assert.GreaterOrEqual(t, gap12, 10*time.Millisecond, "second attempt waits the first table entry")
	assert.GreaterOrEqual(t, gap23, 30*time.Millisecond, "third attempt waits the second table entry")
	assert.GreaterOrEqual(t, gap34, 30*time.Millisecond, "past the table the last entry repeats")
	assert.Greater(t, gap23, gap12, "waits escalate across the table")
}

func TestCallbackDeliveryEngine_TransportErrorRecordsZeroStatus(t *testing.T) {
	client := &stubHTTPClient{responses: []func(*http.Request) (*http.Response, error){
		transportError(),
		respondWith(http.StatusOK),
	}}
	d := setupDeliveryEngine(t, client)
	defer d.ctrl.Finish()

	d.encSvc.EXPECT().Decrypt(gomock.Any()).Return("shared-secret", nil)

	var rows []*domain.DeliveryAttempt
	d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, a *domain.DeliveryAttempt) error {
			rows = append(rows, a)
			return nil
		})

	err := d.engine.Deliver(context.Background(), d.event, d.endpoint)
	require.NoError(t, err)

	assert.Equal(t, 0, rows[0].HTTPStatus, "no response received means status 0")
	require.NotNil(t, rows[0].Error)
	assert.Contains(t, *rows[0].Error, "connection refused")
}

func TestCallbackDeliveryEngine_DecryptFailureShortCircuits(t *testing.T) {
	client := &stubHTTPClient{responses: []func(*http.Request) (*http.Response, error){
		respondWith(http.StatusOK),
	}}
	d := setupDeliveryEngine(t, client)
	defer d.ctrl.Finish()

	d.encSvc.EXPECT().Decrypt(gomock.Any()).Return("", errors.New("bad ciphertext"))

	err := d.engine.Deliver(context.Background(), d.event, d.endpoint)
	require.Error(t, err)
	assert.Zero(t, client.calls, "no HTTP attempt without a usable secret")
}

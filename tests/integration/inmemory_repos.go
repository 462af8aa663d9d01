package integration

import (
	"context"
	"sync"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Subscription Repo ---

type inMemorySubscriptionRepo struct {
	mu      sync.RWMutex
	subs    map[uuid.UUID]*domain.Subscription // keyed by subscription id
	configs map[uuid.UUID]domain.AutomationConfig

	// transitionErr, when set, is consulted per TransitionStatusBatch call
	// to simulate store failures for specific chunks.
	transitionErr func(tenantIDs []uuid.UUID) error
}

func newInMemorySubscriptionRepo() *inMemorySubscriptionRepo {
	return &inMemorySubscriptionRepo{
		subs:    make(map[uuid.UUID]*domain.Subscription),
		configs: make(map[uuid.UUID]domain.AutomationConfig),
	}
}

func (r *inMemorySubscriptionRepo) seed(sub domain.Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	r.subs[sub.ID] = &sub
}

func (r *inMemorySubscriptionRepo) seedConfig(cfg domain.AutomationConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[cfg.TenantID] = cfg
}

func (r *inMemorySubscriptionRepo) configFor(tenantID uuid.UUID) domain.AutomationConfig {
	if cfg, ok := r.configs[tenantID]; ok {
		return cfg
	}
	return domain.AutomationConfig{TenantID: tenantID, AutoRenewal: true}
}

func (r *inMemorySubscriptionRepo) activeByTenant(tenantID uuid.UUID) *domain.Subscription {
	for _, s := range r.subs {
		if s.TenantID == tenantID && s.Status == domain.SubscriptionStatusActive {
			return s
		}
	}
	return nil
}

func (r *inMemorySubscriptionRepo) CreateBatch(ctx context.Context, newSubs []ports.NewSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ns := range newSubs {
		if r.activeByTenant(ns.TenantID) != nil {
			return &pgconn.PgError{Code: "23505", ConstraintName: "subscriptions_one_active_per_tenant"}
		}
	}
	now := time.Now().UTC()
	for _, ns := range newSubs {
		id := uuid.New()
		r.subs[id] = &domain.Subscription{
			ID:           id,
			TenantID:     ns.TenantID,
			PlanID:       ns.PlanID,
			Status:       domain.SubscriptionStatusActive,
			BillingCycle: ns.BillingCycle,
			StartDate:    ns.StartDate,
			EndDate:      ns.EndDate,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return nil
}

func (r *inMemorySubscriptionRepo) UpdatePlanBatch(ctx context.Context, tenantIDs []uuid.UUID, planID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tid := range tenantIDs {
		if s := r.activeByTenant(tid); s != nil {
			s.PlanID = planID
			s.UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

func (r *inMemorySubscriptionRepo) TransitionStatusBatch(ctx context.Context, tenantIDs []uuid.UUID, from []domain.SubscriptionStatus, to domain.SubscriptionStatus, reason *string) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.transitionErr != nil {
		if err := r.transitionErr(tenantIDs); err != nil {
			return nil, err
		}
	}
	fromSet := make(map[domain.SubscriptionStatus]bool, len(from))
	for _, f := range from {
		fromSet[f] = true
	}
	var transitioned []uuid.UUID
	for _, tid := range tenantIDs {
		for _, s := range r.subs {
			if s.TenantID != tid || !fromSet[s.Status] {
				continue
			}
			if s.Status != to {
				s.Status = to
				s.SuspensionReason = nil
				if to == domain.SubscriptionStatusSuspended {
					s.SuspensionReason = reason
				}
				s.UpdatedAt = time.Now().UTC()
			}
			transitioned = append(transitioned, tid)
			break
		}
	}
	return transitioned, nil
}

func (r *inMemorySubscriptionRepo) ExtendEndDate(ctx context.Context, subscriptionID uuid.UUID, priorEnd, newEnd time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[subscriptionID]
	if !ok || !s.EndDate.Equal(priorEnd) {
		return false, nil
	}
	s.EndDate = newEnd
	s.UpdatedAt = time.Now().UTC()
	return true, nil
}

func (r *inMemorySubscriptionRepo) ActivateOnPayment(ctx context.Context, tenantID uuid.UUID, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subs {
		if s.TenantID != tenantID {
			continue
		}
		switch s.Status {
		case domain.SubscriptionStatusPending:
			s.Status = domain.SubscriptionStatusActive
			fallthrough
		case domain.SubscriptionStatusActive:
			t := paidAt
			s.LastPaymentAt = &t
			s.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return nil
}

func (r *inMemorySubscriptionRepo) GetByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *domain.Subscription
	for _, s := range r.subs {
		if s.TenantID != tenantID {
			continue
		}
		if latest == nil || s.CreatedAt.After(latest.CreatedAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *inMemorySubscriptionRepo) ListDueForRenewal(ctx context.Context, now time.Time, window time.Duration) ([]ports.DueSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var due []ports.DueSubscription
	for _, s := range r.subs {
		if s.Status != domain.SubscriptionStatusActive {
			continue
		}
		if s.EndDate.After(now) && !s.EndDate.After(now.Add(window)) {
			due = append(due, ports.DueSubscription{Subscription: *s, Config: r.configFor(s.TenantID)})
		}
	}
	return due, nil
}

func (r *inMemorySubscriptionRepo) ListExpired(ctx context.Context, now time.Time) ([]ports.DueSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var expired []ports.DueSubscription
	for _, s := range r.subs {
		if s.Status == domain.SubscriptionStatusActive && s.EndDate.Before(now) {
			expired = append(expired, ports.DueSubscription{Subscription: *s, Config: r.configFor(s.TenantID)})
		}
	}
	return expired, nil
}

func (r *inMemorySubscriptionRepo) ListExpiringOn(ctx context.Context, dayStart time.Time) ([]domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dayEnd := dayStart.Add(24 * time.Hour)
	var out []domain.Subscription
	for _, s := range r.subs {
		if s.Status != domain.SubscriptionStatusActive {
			continue
		}
		if !s.EndDate.Before(dayStart) && s.EndDate.Before(dayEnd) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *inMemorySubscriptionRepo) CountByStatus(ctx context.Context, status domain.SubscriptionStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, s := range r.subs {
		if s.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *inMemorySubscriptionRepo) CountTenants(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[uuid.UUID]bool)
	for _, s := range r.subs {
		seen[s.TenantID] = true
	}
	return int64(len(seen)), nil
}

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.RWMutex
	events map[uuid.UUID]*domain.LifecycleEvent
	order  []uuid.UUID
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{events: make(map[uuid.UUID]*domain.LifecycleEvent)}
}

func (r *inMemoryEventRepo) Create(ctx context.Context, event *domain.LifecycleEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *event
	r.events[event.ID] = &cp
	r.order = append(r.order, event.ID)
	return nil
}

func (r *inMemoryEventRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.events[id]; ok {
		e.Processed = true
	}
	return nil
}

func (r *inMemoryEventRepo) IncrementRetry(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.events[id]; ok {
		e.RetryCount++
	}
	return nil
}

func (r *inMemoryEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LifecycleEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *inMemoryEventRepo) CountByTypeSince(ctx context.Context, eventType domain.EventType, since time.Time) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, e := range r.events {
		if e.Type == eventType && !e.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (r *inMemoryEventRepo) ListUnprocessed(ctx context.Context, limit int) ([]domain.LifecycleEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LifecycleEvent
	for _, id := range r.order {
		if e := r.events[id]; !e.Processed {
			out = append(out, *e)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// all returns a snapshot of every event in insertion order.
func (r *inMemoryEventRepo) all() []domain.LifecycleEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LifecycleEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.events[id])
	}
	return out
}

// --- In-Memory Endpoint Repo ---

type inMemoryEndpointRepo struct {
	mu        sync.RWMutex
	endpoints []domain.CallbackEndpoint
}

func newInMemoryEndpointRepo() *inMemoryEndpointRepo {
	return &inMemoryEndpointRepo{}
}

func (r *inMemoryEndpointRepo) seed(e domain.CallbackEndpoint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.endpoints = append(r.endpoints, e)
}

func (r *inMemoryEndpointRepo) ListActiveForEvent(ctx context.Context, tenantID uuid.UUID, eventType domain.EventType) ([]domain.CallbackEndpoint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.CallbackEndpoint
	for _, e := range r.endpoints {
		if e.TenantID == tenantID && e.Active && e.SubscribesTo(eventType) {
			out = append(out, e)
		}
	}
	return out, nil
}

// --- In-Memory Delivery Repo ---

type inMemoryDeliveryRepo struct {
	mu       sync.RWMutex
	attempts []domain.DeliveryAttempt
}

func newInMemoryDeliveryRepo() *inMemoryDeliveryRepo {
	return &inMemoryDeliveryRepo{}
}

func (r *inMemoryDeliveryRepo) Create(ctx context.Context, attempt *domain.DeliveryAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = append(r.attempts, *attempt)
	return nil
}

func (r *inMemoryDeliveryRepo) StatsSince(ctx context.Context, since time.Time) (domain.DeliveryStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var stats domain.DeliveryStats
	var totalMs int64
	for _, a := range r.attempts {
		if a.CreatedAt.Before(since) {
			continue
		}
		stats.Total++
		totalMs += a.DurationMs
		if a.Outcome == domain.DeliveryOutcomeFailed {
			stats.Failed++
		}
	}
	if stats.Total > 0 {
		stats.AvgDurationMs = float64(totalMs) / float64(stats.Total)
	}
	return stats, nil
}

func (r *inMemoryDeliveryRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.DeliveryAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.DeliveryAttempt
	for _, a := range r.attempts {
		if a.EventID == eventID {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- In-Memory Alert Repo ---

type inMemoryAlertRepo struct {
	mu     sync.RWMutex
	alerts []domain.Alert
}

func newInMemoryAlertRepo() *inMemoryAlertRepo {
	return &inMemoryAlertRepo{}
}

func (r *inMemoryAlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	r.alerts = append(r.alerts, *alert)
	return nil
}

func (r *inMemoryAlertRepo) ResolveCategory(ctx context.Context, category domain.AlertCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.alerts {
		if r.alerts[i].Category == category {
			r.alerts[i].Resolved = true
		}
	}
	return nil
}

func (r *inMemoryAlertRepo) ListUnresolved(ctx context.Context) ([]domain.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Alert
	for _, a := range r.alerts {
		if !a.Resolved {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- In-Memory Provider Event Repo ---

type inMemoryProviderEventRepo struct {
	mu     sync.RWMutex
	events map[string]domain.ProviderEvent // keyed by provider event id
}

func newInMemoryProviderEventRepo() *inMemoryProviderEventRepo {
	return &inMemoryProviderEventRepo{events: make(map[string]domain.ProviderEvent)}
}

func (r *inMemoryProviderEventRepo) Create(ctx context.Context, event *domain.ProviderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	r.events[event.ProviderEventID] = *event
	return nil
}

func (r *inMemoryProviderEventRepo) Exists(ctx context.Context, providerEventID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[providerEventID]
	return ok && e.Processed, nil
}

func (r *inMemoryProviderEventRepo) get(providerEventID string) (domain.ProviderEvent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[providerEventID]
	return e, ok
}

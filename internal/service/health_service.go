package service

import (
	"context"
	"fmt"
	"time"

	"subscription-automation-engine/config"
	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HealthMonitorService implements ports.HealthMonitor. It aggregates store
// metrics over a recent window, evaluates four independent thresholds with
// warning and critical bands, and pushes critical alerts to the ops
// notifier synchronously. Check never returns an error: any internal
// failure becomes a synthetic critical snapshot so that a broken monitor
// is itself visible.
type HealthMonitorService struct {
	subRepo      ports.SubscriptionRepository
	eventRepo    ports.EventRepository
	deliveryRepo ports.DeliveryRepository
	alertRepo    ports.AlertRepository
	notifier     ports.OpsNotifier
	cfg          config.AlertsConfig
	log          zerolog.Logger
}

// NewHealthMonitorService creates a health monitor.
func NewHealthMonitorService(
	subRepo ports.SubscriptionRepository,
	eventRepo ports.EventRepository,
	deliveryRepo ports.DeliveryRepository,
	alertRepo ports.AlertRepository,
	notifier ports.OpsNotifier,
	cfg config.AlertsConfig,
	log zerolog.Logger,
) *HealthMonitorService {
	if cfg.Window <= 0 {
		cfg.Window = 24 * time.Hour
	}
	if cfg.CriticalSeverityFactor <= 1 {
		cfg.CriticalSeverityFactor = 2.5
	}
	return &HealthMonitorService{
		subRepo:      subRepo,
		eventRepo:    eventRepo,
		deliveryRepo: deliveryRepo,
		alertRepo:    alertRepo,
		notifier:     notifier,
		cfg:          cfg,
		log:          log,
	}
}

// Check evaluates system health over the configured window.
func (h *HealthMonitorService) Check(ctx context.Context) domain.HealthSnapshot {
	now := time.Now().UTC()

	metrics, err := h.gather(ctx, now)
	if err != nil {
		h.log.Error().Err(err).Msg("health: metric gathering failed")
		return h.syntheticCritical(ctx, now, err)
	}

	alerts := h.evaluate(metrics)
	snapshot := domain.HealthSnapshot{
		Status:    domain.MaxSeverity(alerts),
		Metrics:   metrics,
		Alerts:    alerts,
		CheckedAt: now,
	}

	h.settle(ctx, alerts)
	return snapshot
}

func (h *HealthMonitorService) gather(ctx context.Context, now time.Time) (domain.HealthMetrics, error) {
	since := now.Add(-h.cfg.Window)
	var m domain.HealthMetrics
	var err error

	if m.ActiveSubscriptions, err = h.subRepo.CountByStatus(ctx, domain.SubscriptionStatusActive); err != nil {
		return m, fmt.Errorf("count active: %w", err)
	}
	if m.SuspendedSubscriptions, err = h.subRepo.CountByStatus(ctx, domain.SubscriptionStatusSuspended); err != nil {
		return m, fmt.Errorf("count suspended: %w", err)
	}
	if m.TotalTenants, err = h.subRepo.CountTenants(ctx); err != nil {
		return m, fmt.Errorf("count tenants: %w", err)
	}
	if m.FailedRenewals, err = h.eventRepo.CountByTypeSince(ctx, domain.EventRenewalFailed, since); err != nil {
		return m, fmt.Errorf("count failed renewals: %w", err)
	}

	stats, err := h.deliveryRepo.StatsSince(ctx, since)
	if err != nil {
		return m, fmt.Errorf("delivery stats: %w", err)
	}
	m.AvgResponseTimeMs = stats.AvgDurationMs
	m.ErrorRate = stats.ErrorRate()
	return m, nil
}

// evaluate applies the four thresholds. Each produces at most one alert;
// severity escalates to critical when the value exceeds the warning
// threshold by the critical factor.
func (h *HealthMonitorService) evaluate(m domain.HealthMetrics) []domain.Alert {
	var alerts []domain.Alert

	if m.ActiveSubscriptions > 0 {
		ratio := float64(m.FailedRenewals) / float64(m.ActiveSubscriptions)
		if a, ok := h.threshold(ratio, h.cfg.MaxFailedRenewalRatio, domain.AlertCategoryBilling,
			fmt.Sprintf("failed renewal ratio %.3f over the last %s", ratio, h.cfg.Window)); ok {
			alerts = append(alerts, a)
		}
	}

	if a, ok := h.threshold(m.AvgResponseTimeMs, h.cfg.MaxResponseTimeMs, domain.AlertCategoryPerformance,
		fmt.Sprintf("average delivery response time %.0fms", m.AvgResponseTimeMs)); ok {
		alerts = append(alerts, a)
	}

	if a, ok := h.threshold(m.ErrorRate, h.cfg.MaxErrorRate, domain.AlertCategoryPerformance,
		fmt.Sprintf("delivery error rate %.3f", m.ErrorRate)); ok {
		alerts = append(alerts, a)
	}

	if m.TotalTenants > 0 {
		ratio := float64(m.SuspendedSubscriptions) / float64(m.TotalTenants)
		if a, ok := h.threshold(ratio, h.cfg.MaxSuspendedRatio, domain.AlertCategorySubscription,
			fmt.Sprintf("suspended tenant ratio %.3f", ratio)); ok {
			alerts = append(alerts, a)
		}
	}

	return alerts
}

// threshold returns an alert when value exceeds limit, escalated to
// critical past limit * factor. A non-positive limit disables the check.
func (h *HealthMonitorService) threshold(value, limit float64, category domain.AlertCategory, message string) (domain.Alert, bool) {
	if limit <= 0 || value <= limit {
		return domain.Alert{}, false
	}
	severity := domain.AlertSeverityWarning
	if value > limit*h.cfg.CriticalSeverityFactor {
		severity = domain.AlertSeverityCritical
	}
	return domain.Alert{
		ID:        uuid.New(),
		Severity:  severity,
		Category:  category,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}, true
}

// settle persists new alerts, resolves categories that came back healthy,
// and pushes criticals to the ops channel. Bookkeeping failures are logged
// only; the snapshot already stands on its own.
func (h *HealthMonitorService) settle(ctx context.Context, alerts []domain.Alert) {
	breached := make(map[domain.AlertCategory]bool, len(alerts))
	for i := range alerts {
		a := alerts[i]
		breached[a.Category] = true

		if err := h.alertRepo.Create(ctx, &a); err != nil {
			h.log.Error().Err(err).Str("category", string(a.Category)).Msg("health: failed to persist alert")
		}
		if a.Severity == domain.AlertSeverityCritical {
			if err := h.notifier.Notify(ctx, a); err != nil {
				h.log.Error().Err(err).Str("category", string(a.Category)).Msg("health: ops notification failed")
			}
		}
	}

	for _, category := range []domain.AlertCategory{
		domain.AlertCategorySubscription,
		domain.AlertCategoryPerformance,
		domain.AlertCategoryBilling,
	} {
		if breached[category] {
			continue
		}
		if err := h.alertRepo.ResolveCategory(ctx, category); err != nil {
			h.log.Error().Err(err).Str("category", string(category)).Msg("health: failed to resolve alerts")
		}
	}
}

// syntheticCritical reports the monitor's own failure as a critical
// snapshot instead of propagating the error.
func (h *HealthMonitorService) syntheticCritical(ctx context.Context, now time.Time, cause error) domain.HealthSnapshot {
	alert := domain.Alert{
		ID:        uuid.New(),
		Severity:  domain.AlertSeverityCritical,
		Category:  domain.AlertCategoryPerformance,
		Message:   fmt.Sprintf("health check failed: %v", cause),
		CreatedAt: now,
	}
	if err := h.notifier.Notify(ctx, alert); err != nil {
		h.log.Error().Err(err).Msg("health: ops notification failed")
	}
	return domain.HealthSnapshot{
		Status:    domain.HealthStatusCritical,
		Alerts:    []domain.Alert{alert},
		CheckedAt: now,
	}
}

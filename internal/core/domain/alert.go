package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertSeverity orders alert importance.
type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// AlertCategory groups alerts by subsystem.
type AlertCategory string

const (
	AlertCategorySubscription AlertCategory = "subscription"
	AlertCategoryPerformance  AlertCategory = "performance"
	AlertCategorySecurity     AlertCategory = "security"
	AlertCategoryBilling      AlertCategory = "billing"
)

// Alert is a persisted threshold breach raised by the health monitor.
type Alert struct {
	ID        uuid.UUID     `json:"id"`
	Severity  AlertSeverity `json:"severity"`
	Category  AlertCategory `json:"category"`
	Message   string        `json:"message"`
	TenantIDs []uuid.UUID   `json:"tenant_ids,omitempty"`
	Resolved  bool          `json:"resolved"`
	CreatedAt time.Time     `json:"created_at"`
}

// HealthStatus is the overall system state derived from active alerts.
type HealthStatus string

const (
	HealthStatusHealthy  HealthStatus = "healthy"
	HealthStatusWarning  HealthStatus = "warning"
	HealthStatusCritical HealthStatus = "critical"
)

// HealthMetrics are the raw numbers gathered over the evaluation window.
type HealthMetrics struct {
	ActiveSubscriptions    int64   `json:"active_subscriptions"`
	SuspendedSubscriptions int64   `json:"suspended_subscriptions"`
	FailedRenewals         int64   `json:"failed_renewals"`
	TotalTenants           int64   `json:"total_tenants"`
	AvgResponseTimeMs      float64 `json:"avg_response_time_ms"`
	ErrorRate              float64 `json:"error_rate"`
}

// HealthSnapshot is the computed, non-persisted result of one health check.
type HealthSnapshot struct {
	Status    HealthStatus  `json:"status"`
	Metrics   HealthMetrics `json:"metrics"`
	Alerts    []Alert       `json:"alerts"`
	CheckedAt time.Time     `json:"last_check"`
}

// MaxSeverity folds a set of alerts into an overall status.
func MaxSeverity(alerts []Alert) HealthStatus {
	status := HealthStatusHealthy
	for _, a := range alerts {
		switch a.Severity {
		case AlertSeverityCritical:
			return HealthStatusCritical
		case AlertSeverityWarning:
			status = HealthStatusWarning
		}
	}
	return status
}

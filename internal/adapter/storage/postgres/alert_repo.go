package postgres

import (
	"context"
	"fmt"

	"subscription-automation-engine/internal/core/domain"
)

// AlertRepo implements ports.AlertRepository.
type AlertRepo struct {
	pool Pool
}

// NewAlertRepo creates a new AlertRepo.
func NewAlertRepo(pool Pool) *AlertRepo {
	return &AlertRepo{pool: pool}
}

// Create persists a new alert.
func (r *AlertRepo) Create(ctx context.Context, a *domain.Alert) error {
	query := `INSERT INTO alerts (id, severity, category, message, tenant_ids, resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, string(a.Severity), string(a.Category), a.Message,
		a.TenantIDs, a.Resolved, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// ResolveCategory marks all unresolved alerts in a category resolved,
// called after a healthy evaluation of that category.
func (r *AlertRepo) ResolveCategory(ctx context.Context, category domain.AlertCategory) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE alerts SET resolved = TRUE WHERE category = $1 AND resolved = FALSE`,
		string(category),
	)
	if err != nil {
		return fmt.Errorf("resolve alerts: %w", err)
	}
	return nil
}

// ListUnresolved returns all open alerts, newest first.
func (r *AlertRepo) ListUnresolved(ctx context.Context) ([]domain.Alert, error) {
	query := `SELECT id, severity, category, message, tenant_ids, resolved, created_at
		FROM alerts WHERE resolved = FALSE ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list unresolved alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		if err := rows.Scan(
			&a.ID, &a.Severity, &a.Category, &a.Message,
			&a.TenantIDs, &a.Resolved, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

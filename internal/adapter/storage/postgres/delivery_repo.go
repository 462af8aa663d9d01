package postgres

import (
	"context"
	"fmt"
	"time"

	"subscription-automation-engine/internal/core/domain"

	"github.com/google/uuid"
)

// DeliveryRepo implements ports.DeliveryRepository over the append-only
// delivery audit log.
type DeliveryRepo struct {
	pool Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(pool Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

// Create appends one attempt row. Attempts are never updated or deleted.
func (r *DeliveryRepo) Create(ctx context.Context, a *domain.DeliveryAttempt) error {
	query := `INSERT INTO delivery_attempts (id, event_id, endpoint_id, attempt, outcome, http_status, error, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.EventID, a.EndpointID, a.Attempt, string(a.Outcome),
		a.HTTPStatus, a.Error, a.DurationMs, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert delivery attempt: %w", err)
	}
	return nil
}

// StatsSince aggregates attempt counts, failure counts, and average duration
// over the recent window. Consumed by the health monitor.
func (r *DeliveryRepo) StatsSince(ctx context.Context, since time.Time) (domain.DeliveryStats, error) {
	query := `SELECT COUNT(*),
			COUNT(*) FILTER (WHERE outcome = 'failed'),
			COALESCE(AVG(duration_ms), 0)
		FROM delivery_attempts WHERE created_at >= $1`

	var stats domain.DeliveryStats
	err := r.pool.QueryRow(ctx, query, since).Scan(&stats.Total, &stats.Failed, &stats.AvgDurationMs)
	if err != nil {
		return domain.DeliveryStats{}, fmt.Errorf("delivery stats: %w", err)
	}
	return stats, nil
}

// ListByEvent returns all attempts for one event, newest first.
func (r *DeliveryRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.DeliveryAttempt, error) {
	query := `SELECT id, event_id, endpoint_id, attempt, outcome, http_status, error, duration_ms, created_at
		FROM delivery_attempts WHERE event_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attempts by event: %w", err)
	}
	defer rows.Close()

	var attempts []domain.DeliveryAttempt
	for rows.Next() {
		var a domain.DeliveryAttempt
		if err := rows.Scan(
			&a.ID, &a.EventID, &a.EndpointID, &a.Attempt, &a.Outcome,
			&a.HTTPStatus, &a.Error, &a.DurationMs, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan delivery attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

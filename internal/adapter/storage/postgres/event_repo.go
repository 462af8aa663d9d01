package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"subscription-automation-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository over the lifecycle event log.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

const eventColumns = `id, event_type, tenant_id, payload, correlation_id, processed, retry_count, created_at`

// Create persists a lifecycle event. Called before any delivery attempt.
func (r *EventRepo) Create(ctx context.Context, e *domain.LifecycleEvent) error {
	query := `INSERT INTO lifecycle_events (id, event_type, tenant_id, payload, correlation_id, processed, retry_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, string(e.Type), e.TenantID, e.Payload, e.CorrelationID,
		e.Processed, e.RetryCount, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lifecycle event: %w", err)
	}
	return nil
}

// MarkProcessed sets the processed flag.
func (r *EventRepo) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE lifecycle_events SET processed = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark event processed: %w", err)
	}
	return nil
}

// IncrementRetry bumps the bookkeeping retry counter.
func (r *EventRepo) IncrementRetry(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `UPDATE lifecycle_events SET retry_count = retry_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment event retry: %w", err)
	}
	return nil
}

// GetByID fetches one event.
func (r *EventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LifecycleEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM lifecycle_events WHERE id = $1`

	e := &domain.LifecycleEvent{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Type, &e.TenantID, &e.Payload, &e.CorrelationID,
		&e.Processed, &e.RetryCount, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return e, nil
}

// CountByTypeSince counts events of a type created after the given instant.
func (r *EventRepo) CountByTypeSince(ctx context.Context, eventType domain.EventType, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM lifecycle_events WHERE event_type = $1 AND created_at >= $2`,
		string(eventType), since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count events by type: %w", err)
	}
	return n, nil
}

// ListUnprocessed returns the oldest unprocessed events, for operator
// tooling and redelivery sweeps.
func (r *EventRepo) ListUnprocessed(ctx context.Context, limit int) ([]domain.LifecycleEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM lifecycle_events
		WHERE processed = FALSE ORDER BY created_at LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list unprocessed events: %w", err)
	}
	defer rows.Close()

	var events []domain.LifecycleEvent
	for rows.Next() {
		var e domain.LifecycleEvent
		if err := rows.Scan(
			&e.ID, &e.Type, &e.TenantID, &e.Payload, &e.CorrelationID,
			&e.Processed, &e.RetryCount, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

package postgres

import (
	"context"
	"fmt"

	"subscription-automation-engine/internal/core/domain"
)

// ProviderEventRepo implements ports.ProviderEventRepository, the audit log
// of raw inbound payment-provider webhook calls.
type ProviderEventRepo struct {
	pool Pool
}

// NewProviderEventRepo creates a new ProviderEventRepo.
func NewProviderEventRepo(pool Pool) *ProviderEventRepo {
	return &ProviderEventRepo{pool: pool}
}

// Create logs one raw inbound event, processed or not.
func (r *ProviderEventRepo) Create(ctx context.Context, e *domain.ProviderEvent) error {
	query := `INSERT INTO provider_events (id, provider_event_id, event_type, raw_body, processed, error, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.ProviderEventID, e.Type, e.RawBody, e.Processed, e.Error, e.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert provider event: %w", err)
	}
	return nil
}

// Exists reports whether a provider event id was already ingested. Backstop
// behind the redis replay guard, for when redis state was lost.
func (r *ProviderEventRepo) Exists(ctx context.Context, providerEventID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM provider_events WHERE provider_event_id = $1 AND processed = TRUE)`,
		providerEventID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("provider event exists: %w", err)
	}
	return exists, nil
}

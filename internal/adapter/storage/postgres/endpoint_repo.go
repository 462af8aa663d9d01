package postgres

import (
	"context"
	"fmt"

	"subscription-automation-engine/internal/core/domain"

	"github.com/google/uuid"
)

// EndpointRepo implements ports.EndpointRepository. Endpoints are written by
// tenant configuration elsewhere; the engine only reads them.
type EndpointRepo struct {
	pool Pool
}

// NewEndpointRepo creates a new EndpointRepo.
func NewEndpointRepo(pool Pool) *EndpointRepo {
	return &EndpointRepo{pool: pool}
}

// ListActiveForEvent returns the tenant's active endpoints subscribed to the
// given event type.
func (r *EndpointRepo) ListActiveForEvent(ctx context.Context, tenantID uuid.UUID, eventType domain.EventType) ([]domain.CallbackEndpoint, error) {
	query := `SELECT id, tenant_id, url, event_types, secret_enc, active, created_at
		FROM callback_endpoints
		WHERE tenant_id = $1 AND active = TRUE AND $2 = ANY(event_types)`

	rows, err := r.pool.Query(ctx, query, tenantID, string(eventType))
	if err != nil {
		return nil, fmt.Errorf("list endpoints for event: %w", err)
	}
	defer rows.Close()

	var endpoints []domain.CallbackEndpoint
	for rows.Next() {
		var ep domain.CallbackEndpoint
		var types []string
		if err := rows.Scan(
			&ep.ID, &ep.TenantID, &ep.URL, &types, &ep.SecretEnc,
			&ep.Active, &ep.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan endpoint: %w", err)
		}
		ep.EventTypes = make([]domain.EventType, len(types))
		for i, t := range types {
			ep.EventTypes[i] = domain.EventType(t)
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, rows.Err()
}

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Stable failure categories surfaced to callers. Raw store errors stay in
// the logs only.
const (
	failureInvalidOperation = "invalid_operation"
	failureMissingPlan      = "missing_plan"
	failureConflict         = "conflict"
	failureInvalidState     = "invalid_state"
	failureStoreError       = "store_error"
)

const defaultChunkSize = 50

// BulkOperationProcessor implements ports.BulkProcessor. Each operation's
// tenant set is deduplicated, partitioned into fixed-size chunks, and the
// chunks run concurrently. A chunk failure marks only that chunk's tenants
// as failed; other chunks are unaffected.
type BulkOperationProcessor struct {
	subRepo     ports.SubscriptionRepository
	broadcaster ports.Broadcaster
	chunkSize   int
	log         zerolog.Logger
}

// NewBulkOperationProcessor creates a bulk processor. chunkSize <= 0 falls
// back to the default of 50.
func NewBulkOperationProcessor(
	subRepo ports.SubscriptionRepository,
	broadcaster ports.Broadcaster,
	chunkSize int,
	log zerolog.Logger,
) *BulkOperationProcessor {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &BulkOperationProcessor{
		subRepo:     subRepo,
		broadcaster: broadcaster,
		chunkSize:   chunkSize,
		log:         log,
	}
}

// Process executes the operations in order and returns the merged outcome.
// Every submitted tenant id appears exactly once per operation, either in
// the success list or in the failure list.
func (p *BulkOperationProcessor) Process(ctx context.Context, ops []domain.BulkOperation) domain.BulkResult {
	var result domain.BulkResult
	for i := range ops {
		result.Merge(p.processOne(ctx, &ops[i]))
	}
	return result
}

func (p *BulkOperationProcessor) processOne(ctx context.Context, op *domain.BulkOperation) domain.BulkResult {
	tenants := dedupeIDs(op.TenantIDs)
	if len(tenants) == 0 {
		return domain.BulkResult{}
	}

	if op.Kind == domain.BulkOpCreate || op.Kind == domain.BulkOpUpdate {
		if op.PlanID == nil {
			return failAll(tenants, failureMissingPlan)
		}
	}
	switch op.Kind {
	case domain.BulkOpCreate, domain.BulkOpUpdate, domain.BulkOpSuspend, domain.BulkOpReactivate, domain.BulkOpCancel:
	default:
		return failAll(tenants, failureInvalidOperation)
	}

	chunks := chunkSlice(tenants, p.chunkSize)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result domain.BulkResult
	)
	for i := range chunks {
		chunk := chunks[i]
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := p.runChunk(ctx, op, chunk)
			mu.Lock()
			result.Merge(r)
			mu.Unlock()
		}()
	}
	wg.Wait()

	p.log.Info().
		Str("operation", string(op.Kind)).
		Int("tenants", len(tenants)).
		Int("chunks", len(chunks)).
		Int("succeeded", len(result.Succeeded)).
		Int("failed", len(result.Failed)).
		Msg("bulk: operation complete")
	return result
}

// runChunk applies one operation to one chunk. Store errors are reduced to a
// stable category covering every tenant in the chunk.
func (p *BulkOperationProcessor) runChunk(ctx context.Context, op *domain.BulkOperation, chunk []uuid.UUID) domain.BulkResult {
	var (
		result domain.BulkResult
		err    error
	)

	switch op.Kind {
	case domain.BulkOpCreate:
		result, err = p.createChunk(ctx, op, chunk)
	case domain.BulkOpUpdate:
		err = p.subRepo.UpdatePlanBatch(ctx, chunk, *op.PlanID)
		if err == nil {
			result.Succeeded = chunk
		}
	case domain.BulkOpSuspend:
		result, err = p.transitionChunk(ctx, chunk,
			[]domain.SubscriptionStatus{domain.SubscriptionStatusActive, domain.SubscriptionStatusSuspended},
			domain.SubscriptionStatusSuspended, op.Reason)
	case domain.BulkOpReactivate:
		result, err = p.transitionChunk(ctx, chunk,
			[]domain.SubscriptionStatus{domain.SubscriptionStatusSuspended, domain.SubscriptionStatusActive},
			domain.SubscriptionStatusActive, nil)
	case domain.BulkOpCancel:
		result, err = p.transitionChunk(ctx, chunk,
			[]domain.SubscriptionStatus{domain.SubscriptionStatusPending, domain.SubscriptionStatusActive, domain.SubscriptionStatusSuspended, domain.SubscriptionStatusCancelled},
			domain.SubscriptionStatusCancelled, op.Reason)
	}

	if err != nil {
		p.log.Error().Err(err).
			Str("operation", string(op.Kind)).
			Int("chunk_size", len(chunk)).
			Msg("bulk: chunk failed")
		return failAll(chunk, categorize(err))
	}

	p.announce(ctx, op, result.Succeeded)
	return result
}

// transitionChunk applies one status change to a chunk. Only tenants the
// store reports as holding the target status are succeeded and announced;
// tenants with no row in the from set are surfaced as invalid_state
// failures rather than credited with a transition that never happened.
func (p *BulkOperationProcessor) transitionChunk(ctx context.Context, chunk []uuid.UUID, from []domain.SubscriptionStatus, to domain.SubscriptionStatus, reason *string) (domain.BulkResult, error) {
	transitioned, err := p.subRepo.TransitionStatusBatch(ctx, chunk, from, to, reason)
	if err != nil {
		return domain.BulkResult{}, err
	}

	matched := make(map[uuid.UUID]struct{}, len(transitioned))
	for _, id := range transitioned {
		matched[id] = struct{}{}
	}
	result := domain.BulkResult{Succeeded: transitioned}
	for _, id := range chunk {
		if _, ok := matched[id]; !ok {
			result.Failed = append(result.Failed, domain.BulkFailure{TenantID: id, Error: failureInvalidState})
		}
	}
	return result, nil
}

// createChunk inserts one active subscription per tenant with a full billing
// cycle ahead of it. The store's one-active-per-tenant constraint fails the
// whole chunk on violation.
func (p *BulkOperationProcessor) createChunk(ctx context.Context, op *domain.BulkOperation, chunk []uuid.UUID) (domain.BulkResult, error) {
	start := time.Now().UTC()
	if op.EffectiveDate != nil {
		start = op.EffectiveDate.UTC()
	}
	cycle := op.BillingCycle
	end := cycle.NextEndDate(start)

	subs := make([]ports.NewSubscription, 0, len(chunk))
	for _, tenantID := range chunk {
		subs = append(subs, ports.NewSubscription{
			TenantID:     tenantID,
			PlanID:       *op.PlanID,
			BillingCycle: cycle,
			StartDate:    start,
			EndDate:      end,
		})
	}
	if err := p.subRepo.CreateBatch(ctx, subs); err != nil {
		return domain.BulkResult{}, err
	}
	return domain.BulkResult{Succeeded: chunk}, nil
}

// announce emits one subscription.updated event per transitioned tenant.
// Event failures are logged and do not fail the tenant's operation.
func (p *BulkOperationProcessor) announce(ctx context.Context, op *domain.BulkOperation, tenants []uuid.UUID) {
	status, ok := resultingStatus(op.Kind)
	if !ok {
		return
	}

	for _, tenantID := range tenants {
		change := domain.SubscriptionChange{Status: status, PlanID: op.PlanID}
		if op.Reason != nil {
			change.Reason = *op.Reason
		}
		event, err := domain.NewLifecycleEvent(domain.EventSubscriptionUpdated, tenantID, change)
		if err != nil {
			p.log.Error().Err(err).Str("tenant_id", tenantID.String()).Msg("bulk: failed to build event")
			continue
		}
		if err := p.broadcaster.Broadcast(ctx, event); err != nil {
			p.log.Error().Err(err).Str("tenant_id", tenantID.String()).Msg("bulk: failed to broadcast event")
		}
	}
}

func resultingStatus(kind domain.BulkOperationKind) (domain.SubscriptionStatus, bool) {
	switch kind {
	case domain.BulkOpCreate, domain.BulkOpReactivate:
		return domain.SubscriptionStatusActive, true
	case domain.BulkOpUpdate:
		return domain.SubscriptionStatusActive, true
	case domain.BulkOpSuspend:
		return domain.SubscriptionStatusSuspended, true
	case domain.BulkOpCancel:
		return domain.SubscriptionStatusCancelled, true
	default:
		return "", false
	}
}

// categorize maps a store error to a stable failure category.
func categorize(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return failureConflict
	}
	return failureStoreError
}

func failAll(tenants []uuid.UUID, category string) domain.BulkResult {
	failures := make([]domain.BulkFailure, 0, len(tenants))
	for _, id := range tenants {
		failures = append(failures, domain.BulkFailure{TenantID: id, Error: category})
	}
	return domain.BulkResult{Failed: failures}
}

// dedupeIDs removes duplicate tenant ids preserving first-seen order, so a
// tenant is never assigned to two chunks of the same operation.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// chunkSlice partitions items into consecutive chunks of at most size.
func chunkSlice[T any](items []T, size int) [][]T {
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

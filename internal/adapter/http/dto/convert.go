package dto

import (
	"time"

	"github.com/google/uuid"

	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/pkg/apperror"
)

var validKinds = map[domain.BulkOperationKind]bool{
	domain.BulkOpCreate:     true,
	domain.BulkOpUpdate:     true,
	domain.BulkOpSuspend:    true,
	domain.BulkOpReactivate: true,
	domain.BulkOpCancel:     true,
}

var validCycles = map[domain.BillingCycle]bool{
	domain.BillingCycleMonthly:   true,
	domain.BillingCycleQuarterly: true,
	domain.BillingCycleYearly:    true,
}

// ToDomain validates the request and converts it into a domain operation.
// Kind and id validation happens here so the processor only ever sees
// well-formed input from the HTTP surface.
func (r BulkOperationRequest) ToDomain(now time.Time) (domain.BulkOperation, error) {
	kind := domain.BulkOperationKind(r.Operation)
	if !validKinds[kind] {
		return domain.BulkOperation{}, apperror.ErrUnknownOperation(r.Operation)
	}
	if len(r.TenantIDs) == 0 {
		return domain.BulkOperation{}, apperror.ErrEmptyOperation()
	}

	op := domain.BulkOperation{
		Kind:          kind,
		TenantIDs:     make([]uuid.UUID, 0, len(r.TenantIDs)),
		EffectiveDate: r.EffectiveDate,
		SubmittedAt:   now,
	}
	for _, raw := range r.TenantIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.BulkOperation{}, apperror.ErrMalformedPayload()
		}
		op.TenantIDs = append(op.TenantIDs, id)
	}

	if r.PlanID != "" {
		id, err := uuid.Parse(r.PlanID)
		if err != nil {
			return domain.BulkOperation{}, apperror.ErrMalformedPayload()
		}
		op.PlanID = &id
	}
	if kind == domain.BulkOpCreate || kind == domain.BulkOpUpdate {
		if op.PlanID == nil {
			return domain.BulkOperation{}, apperror.ErrMissingPlan()
		}
	}

	if r.BillingCycle != "" {
		cycle := domain.BillingCycle(r.BillingCycle)
		if !validCycles[cycle] {
			return domain.BulkOperation{}, apperror.ErrUnknownOperation(r.BillingCycle)
		}
		op.BillingCycle = cycle
	} else if kind == domain.BulkOpCreate {
		op.BillingCycle = domain.BillingCycleMonthly
	}

	if r.Reason != "" {
		reason := r.Reason
		op.Reason = &reason
	}
	return op, nil
}

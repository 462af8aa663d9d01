package domain

import (
	"time"

	"github.com/google/uuid"
)

// BulkOperationKind is the lifecycle transition a bulk operation applies.
type BulkOperationKind string

const (
	BulkOpCreate     BulkOperationKind = "create"
	BulkOpUpdate     BulkOperationKind = "update"
	BulkOpSuspend    BulkOperationKind = "suspend"
	BulkOpReactivate BulkOperationKind = "reactivate"
	BulkOpCancel     BulkOperationKind = "cancel"
)

// BulkOperation is a transient unit of multi-tenant work. It lives only for
// the duration of chunked execution; the audit trail is the event log.
type BulkOperation struct {
	Kind          BulkOperationKind `json:"operation"`
	TenantIDs     []uuid.UUID       `json:"tenant_ids"`
	PlanID        *uuid.UUID        `json:"plan_id,omitempty"`
	BillingCycle  BillingCycle      `json:"billing_cycle,omitempty"`
	Reason        *string           `json:"reason,omitempty"`
	EffectiveDate *time.Time        `json:"effective_date,omitempty"`
	SubmittedAt   time.Time         `json:"submitted_at"`
}

// BulkFailure records one tenant that could not be transitioned, with a
// stable error category rather than the raw store error.
type BulkFailure struct {
	TenantID uuid.UUID `json:"tenant_id"`
	Error    string    `json:"error"`
}

// BulkResult partitions the submitted tenant set into outcomes.
type BulkResult struct {
	Succeeded []uuid.UUID   `json:"success"`
	Failed    []BulkFailure `json:"failed"`
}

// Merge folds another result into r.
func (r *BulkResult) Merge(other BulkResult) {
	r.Succeeded = append(r.Succeeded, other.Succeeded...)
	r.Failed = append(r.Failed, other.Failed...)
}

package dto

import (
	"time"

	"subscription-automation-engine/internal/core/domain"
)

// BulkOperationRequest is one operation in an internal bulk submission.
type BulkOperationRequest struct {
	Operation     string     `json:"operation" binding:"required"`
	TenantIDs     []string   `json:"tenant_ids" binding:"required,min=1"`
	PlanID        string     `json:"plan_id,omitempty"`
	BillingCycle  string     `json:"billing_cycle,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	EffectiveDate *time.Time `json:"effective_date,omitempty"`
}

// BulkSubmissionRequest is the body of POST /internal/bulk-operations.
type BulkSubmissionRequest struct {
	Operations []BulkOperationRequest `json:"operations" binding:"required,min=1,max=20,dive"`
}

// BulkResultResponse mirrors domain.BulkResult on the wire.
type BulkResultResponse struct {
	Success []string          `json:"success"`
	Failed  []BulkFailureItem `json:"failed"`
}

// BulkFailureItem is one failed tenant with its stable error category.
type BulkFailureItem struct {
	TenantID string `json:"tenant_id"`
	Error    string `json:"error"`
}

// FromBulkResult converts a domain result to its wire shape.
func FromBulkResult(r domain.BulkResult) BulkResultResponse {
	resp := BulkResultResponse{
		Success: make([]string, 0, len(r.Succeeded)),
		Failed:  make([]BulkFailureItem, 0, len(r.Failed)),
	}
	for _, id := range r.Succeeded {
		resp.Success = append(resp.Success, id.String())
	}
	for _, f := range r.Failed {
		resp.Failed = append(resp.Failed, BulkFailureItem{TenantID: f.TenantID.String(), Error: f.Error})
	}
	return resp
}

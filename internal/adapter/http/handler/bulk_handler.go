package handler

import (
	"time"

	"subscription-automation-engine/internal/adapter/http/dto"
	"subscription-automation-engine/internal/core/domain"
	"subscription-automation-engine/internal/core/ports"
	"subscription-automation-engine/pkg/apperror"
	"subscription-automation-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// BulkHandler handles internal bulk lifecycle operations.
type BulkHandler struct {
	processor ports.BulkProcessor
}

// NewBulkHandler creates a new BulkHandler.
func NewBulkHandler(processor ports.BulkProcessor) *BulkHandler {
	return &BulkHandler{processor: processor}
}

// Submit handles POST /internal/bulk-operations. The whole submission is
// validated before any operation runs, so a malformed entry rejects the
// batch instead of half-applying it.
func (h *BulkHandler) Submit(c *gin.Context) {
	var req dto.BulkSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	now := time.Now().UTC()
	ops := make([]domain.BulkOperation, 0, len(req.Operations))
	for _, opReq := range req.Operations {
		op, err := opReq.ToDomain(now)
		if err != nil {
			response.Error(c, err)
			return
		}
		ops = append(ops, op)
	}

	result := h.processor.Process(c.Request.Context(), ops)
	response.OK(c, dto.FromBulkResult(result))
}

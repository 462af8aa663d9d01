package handler

import (
	"io"

	"subscription-automation-engine/internal/core/ports"
	"subscription-automation-engine/pkg/apperror"
	"subscription-automation-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// WebhookHandler receives payment-provider webhooks.
type WebhookHandler struct {
	sigSvc   ports.SignatureService
	ingestor ports.WebhookIngestor
	secret   string
	log      zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(sigSvc ports.SignatureService, ingestor ports.WebhookIngestor, secret string, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{sigSvc: sigSvc, ingestor: ingestor, secret: secret, log: log}
}

// Receive handles POST /webhooks/payments. The signature is computed over
// the raw body, so the body must be read before any JSON binding.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.Error(c, apperror.ErrMalformedPayload())
		return
	}

	signature := c.GetHeader("X-Signature")
	if !h.sigSvc.Verify(h.secret, body, signature) {
		h.log.Warn().Str("client_ip", c.ClientIP()).Msg("webhook signature verification failed")
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}

	if err := h.ingestor.Ingest(c.Request.Context(), body); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"received": true})
}

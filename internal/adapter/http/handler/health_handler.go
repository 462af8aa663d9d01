package handler

import (
	"net/http"

	"subscription-automation-engine/internal/core/ports"
	"subscription-automation-engine/pkg/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health — deep health check verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}

// HealthStatusHandler exposes the business health monitor on the internal API.
type HealthStatusHandler struct {
	monitor ports.HealthMonitor
}

// NewHealthStatusHandler creates a new HealthStatusHandler.
func NewHealthStatusHandler(monitor ports.HealthMonitor) *HealthStatusHandler {
	return &HealthStatusHandler{monitor: monitor}
}

// Status handles GET /internal/health-status. It runs a fresh evaluation
// rather than returning the last sweep's snapshot, so operators always see
// current numbers.
func (h *HealthStatusHandler) Status(c *gin.Context) {
	snapshot := h.monitor.Check(c.Request.Context())
	response.OK(c, snapshot)
}

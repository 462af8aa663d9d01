package handler

import (
	"subscription-automation-engine/internal/adapter/http/middleware"
	redisStore "subscription-automation-engine/internal/adapter/storage/redis"
	"subscription-automation-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SigSvc         ports.SignatureService
	Ingestor       ports.WebhookIngestor
	BulkProc       ports.BulkProcessor
	HealthMon      ports.HealthMonitor
	TokenVerifier  ports.ServiceTokenVerifier
	WebhookSecret  string
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// --- Provider webhooks (HMAC over the raw body, no bearer auth) ---
	webhookHandler := NewWebhookHandler(deps.SigSvc, deps.Ingestor, deps.WebhookSecret, deps.Logger)
	webhooks := r.Group("/webhooks")
	{
		webhooks.POST("/payments", rl("webhooks"), webhookHandler.Receive)
	}

	// --- Internal API (service-token authenticated) ---
	tokenAuth := middleware.ServiceTokenAuth(deps.TokenVerifier, deps.Logger)
	bulkHandler := NewBulkHandler(deps.BulkProc)
	healthStatusHandler := NewHealthStatusHandler(deps.HealthMon)

	internal := r.Group("/internal", tokenAuth)
	{
		internal.POST("/bulk-operations", rl("internal"), bulkHandler.Submit)
		internal.GET("/health-status", rl("internal"), healthStatusHandler.Status)
	}

	return r
}

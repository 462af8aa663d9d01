package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subscription-automation-engine/config"
	httpHandler "subscription-automation-engine/internal/adapter/http/handler"
	pgStorage "subscription-automation-engine/internal/adapter/storage/postgres"
	redisStorage "subscription-automation-engine/internal/adapter/storage/redis"
	"subscription-automation-engine/internal/core/ports"
	"subscription-automation-engine/internal/service"
	"subscription-automation-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New("engine", cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Subscription Automation Engine")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	subRepo := pgStorage.NewSubscriptionRepo(pool)
	eventRepo := pgStorage.NewEventRepo(pool)
	endpointRepo := pgStorage.NewEndpointRepo(pool)
	deliveryRepo := pgStorage.NewDeliveryRepo(pool)
	alertRepo := pgStorage.NewAlertRepo(pool)
	providerEventRepo := pgStorage.NewProviderEventRepo(pool)

	// Initialize Redis stores
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	replayGuard := redisStorage.NewReplayGuard(rdb)
	sweepDedup := redisStorage.NewSweepDedup(rdb)

	// Initialize core services
	encSvc, err := service.NewAESEncryptionService(cfg.AES.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewServiceTokenService(cfg.Auth.ServiceTokenSecret, 24*time.Hour, cfg.Auth.Issuer)

	// Initialize delivery pipeline
	deliveryEngine := service.NewCallbackDeliveryEngine(
		deliveryRepo,
		encSvc,
		sigSvc,
		&http.Client{Timeout: cfg.Delivery.Timeout},
		cfg.Delivery.MaxAttempts,
		cfg.Delivery.RetryDelays,
		log,
	)
	broadcaster := service.NewEventBroadcaster(eventRepo, endpointRepo, deliveryEngine, log)

	// Initialize lifecycle services
	bulkProc := service.NewBulkOperationProcessor(subRepo, broadcaster, cfg.Bulk.ChunkSize, log)
	renewal := service.NewRenewalScheduler(subRepo, broadcaster, cfg.Scheduler.RenewalWindow, cfg.Bulk.ChunkSize, log)
	suspension := service.NewSuspensionEnforcer(subRepo, broadcaster, log)
	notification := service.NewNotificationScheduler(subRepo, sweepDedup, broadcaster, cfg.Scheduler.NotificationOffsets, log)
	opsNotifier := service.NewChatWebhookNotifier(
		cfg.Alerts.OpsWebhookURL,
		cfg.Alerts.OpsNotifyTimeout,
		&http.Client{Timeout: cfg.Alerts.OpsNotifyTimeout},
		log,
	)
	healthMon := service.NewHealthMonitorService(subRepo, eventRepo, deliveryRepo, alertRepo, opsNotifier, cfg.Alerts, log)
	ingestor := service.NewPaymentIngestionService(subRepo, providerEventRepo, replayGuard, broadcaster, log)

	// Periodic sweeps. Each sweep is bounded by the interval so a stuck
	// sweep cannot pile up behind the ticker.
	interval := cfg.Scheduler.SweepInterval
	sweepers := []*service.Sweeper{
		service.NewSweeper("renewal", interval, interval, renewal.Sweep, log),
		service.NewSweeper("suspension", interval, interval, suspension.Sweep, log),
		service.NewSweeper("notification", interval, interval, notification.Sweep, log),
		service.NewSweeper("health", interval, interval, func(ctx context.Context) error {
			healthMon.Check(ctx)
			return nil
		}, log),
	}
	for _, s := range sweepers {
		s.Start()
	}

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SigSvc:         sigSvc,
		Ingestor:       ingestor,
		BulkProc:       bulkProc,
		HealthMon:      healthMon,
		TokenVerifier:  tokenSvc,
		WebhookSecret:  cfg.Provider.WebhookSecret,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	// Stop accepting new work before draining in-flight deliveries.
	for _, s := range sweepers {
		s.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	broadcaster.Wait()
	log.Info().Msg("Engine exited")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weekly-lottery/config"
	httpHandler "weekly-lottery/internal/adapter/http/handler"
	"weekly-lottery/internal/adapter/http/middleware"
	"weekly-lottery/internal/adapter/metrics"
	"weekly-lottery/internal/service"
	"weekly-lottery/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("LOTTERY_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("schedule", cfg.Lottery.DrawSchedule).
		Msg("Starting weekly lottery")

	ctx := context.Background()

	backends := connectBackends(ctx, cfg, log)
	defer backends.Close()

	loc, err := cfg.Lottery.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid lottery timezone")
	}
	cadence, err := service.NewCadence(cfg.Lottery.DrawSchedule, loc)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid draw schedule")
	}

	registry := buildRegistry(cfg, backends, log)
	if registry.Len() == 0 {
		log.Warn().Msg("No currency providers available, the lottery will accept no entries")
	}

	stores, err := buildStores(cfg, backends, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up lottery storage")
	}

	recorder := metrics.NewRecorder()
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Notices always go to the log; the game server bridge gets them by webhook when configured.
	notifiers := service.MultiNotifier{service.NewLogNotifier(log.With().Str("component", "notices").Logger())}
	var webhook *service.WebhookNotifier
	if cfg.Notifier.WebhookURL != "" {
		webhook = service.NewWebhookNotifier(
			cfg.Notifier.WebhookURL,
			cfg.Notifier.Secret,
			sigSvc,
			&http.Client{Timeout: cfg.Notifier.Timeout},
			log.With().Str("component", "webhook").Logger(),
		)
		notifiers = append(notifiers, webhook)
		log.Info().Str("url", cfg.Notifier.WebhookURL).Msg("Notice webhook enabled")
	}

	lottery := service.NewLotteryService(service.LotteryDeps{
		Registry:   registry,
		Cadence:    cadence,
		StateStore: stores.state,
		Rewards:    stores.rewards,
		Presence:   stores.presence,
		Notifier:   notifiers,
		History:    stores.history,
		Metrics:    recorder,
		Persistence: service.PersisterOptions{
			Timeout:    cfg.Lottery.SaveTimeout,
			Retries:    cfg.Lottery.SaveRetries,
			RetryDelay: cfg.Lottery.SaveRetryDelay,
		},
		Logger: log.With().Str("component", "lottery").Logger(),
	})
	if err := lottery.Recover(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to restore lottery state")
	}

	scheduler := service.NewScheduler(lottery, service.SchedulerOptions{
		TickInterval:      cfg.Lottery.TickInterval,
		BroadcastInterval: cfg.Lottery.BroadcastInterval,
		BroadcastDelay:    cfg.Lottery.BroadcastDelay,
	}, log.With().Str("component", "scheduler").Logger())
	scheduler.Start(ctx)

	// Load OpenAPI document for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI document loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI document not found, Swagger UI will be unavailable")
	}

	deps := httpHandler.RouterDeps{
		Lottery:        lottery,
		Scheduler:      scheduler,
		TokenSvc:       tokenSvc,
		NonceTTL:       cfg.Lottery.NonceTTL,
		RateLimitRules: middleware.RateLimitRules(cfg.RateLimit),
		HealthCheckers: backends.healthCheckers(),
		Metrics:        recorder,
		HistoryLimit:   cfg.Lottery.HistoryLimit,
		Logger:         log,
	}
	if backends.redis != nil {
		deps.SubmissionGuard = backends.nonceStore()
		if cfg.RateLimit.Enabled {
			deps.RateLimitStore = backends.rateLimitStore()
		}
	}
	router := httpHandler.SetupRouter(deps)

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Scheduler did not stop cleanly")
	}
	if err := lottery.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Final lottery save failed")
	}
	if webhook != nil {
		if err := webhook.Close(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Pending webhook deliveries dropped")
		}
	}

	log.Info().Msg("Lottery stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/config"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/events"
	apphttp "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/http"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/http/router"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/profiles"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scheduler"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scores"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/preset"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/rank"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/db"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Scoring Core
	// ========================================================================

	reg := registry.NewWithDefaults()
	presets := preset.NewLibrary(reg)
	if cfg.PresetsPath != "" {
		if err := presets.LoadFile(cfg.PresetsPath); err != nil {
			log.Error("failed to load presets overlay", "path", cfg.PresetsPath, "error", err)
			panic("failed to load presets overlay: " + err.Error())
		}
		log.Info("presets overlay loaded", "path", cfg.PresetsPath)
	}

	scoringEngine := engine.New(reg, log)
	ranker := rank.New(scoringEngine, log)

	rescorer, closeRescorer := initRescorer(cfg, log)
	if closeRescorer != nil {
		defer closeRescorer()
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	profilesModule := profiles.NewModule(pool, reg, presets, eventBus, val, log)
	scoresModule := scores.NewModule(scoringEngine, ranker, profilesModule.Service, val)
	listingsModule := listings.NewModule(pool, ranker, profilesModule.Service, eventBus, val, log)
	leadsModule := leads.NewModule(pool, scoringEngine, eventBus, val, log)
	leadsModule.RegisterEventHandlers(eventBus, rescorer, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			profilesModule,
			scoresModule,
			listingsModule,
			leadsModule,
		},
	}

	engineHTTP := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engineHTTP.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initRescorer connects the asynq client when Redis is configured. Without
// it the API still serves; background re-grades are simply skipped.
func initRescorer(cfg *config.Config, log *logger.Logger) (leads.Rescorer, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; background lead rescoring disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize scheduler client", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}

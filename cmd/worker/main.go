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
	leadrepo "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/repository"
	leadservice "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scheduler"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/db"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env, "queue", cfg.AsynqQueue)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	eventBus := events.NewInMemoryBus(log)

	reg := registry.NewWithDefaults()
	scoringEngine := engine.New(reg, log)
	grader := leadservice.New(leadrepo.New(pool), scoringEngine, eventBus, log)

	worker, err := scheduler.NewWorker(cfg, grader, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	worker.Run(ctx)
	log.Info("worker stopped")
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

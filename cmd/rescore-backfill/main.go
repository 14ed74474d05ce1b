// Command rescore-backfill re-grades every stored lead once and exits.
// Use it after deploying a scoring model change, when waiting for the
// event-driven rescore queue is not an option.
package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/config"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/events"
	leadrepo "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/repository"
	leadservice "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/db"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting rescore backfill", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	repo := leadrepo.New(pool)
	eventBus := events.NewInMemoryBus(log)
	grader := leadservice.New(repo, engine.New(registry.NewWithDefaults(), log), eventBus, log)

	ids, err := repo.ListIDs(ctx)
	if err != nil {
		log.Error("failed to list leads", "error", err)
		panic("failed to list leads: " + err.Error())
	}
	log.Info("backfill starting", "leads", len(ids))

	var graded, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, id := range ids {
		g.Go(func() error {
			if _, err := grader.Score(gctx, id); err != nil {
				log.Error("lead rescore failed", "lead_id", id.String(), "error", err.Error())
				failed.Add(1)
				return nil
			}
			graded.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("backfill aborted", "error", err)
		panic("backfill aborted: " + err.Error())
	}

	log.Info("backfill complete", "graded", graded.Load(), "failed", failed.Load())
}

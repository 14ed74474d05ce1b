package scheduler

import (
	"context"
	"fmt"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// LeadGrader re-grades leads. Implemented by the leads service.
type LeadGrader interface {
	Score(ctx context.Context, leadID uuid.UUID) (scoring.AggregateScore, error)
	GradeAll(ctx context.Context) (graded int, failed int, err error)
}

// Worker consumes re-grade tasks from the queue.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	grader LeadGrader
	log    *logger.Logger
}

// NewWorker builds the asynq server and registers the task handlers.
func NewWorker(cfg Config, grader LeadGrader, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		grader: grader,
		log:    log,
	}

	mux.HandleFunc(TaskLeadRescore, w.handleLeadRescore)
	mux.HandleFunc(TaskLeadRescoreAll, w.handleLeadRescoreAll)

	return w, nil
}

// Run serves tasks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

func (w *Worker) handleLeadRescore(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadRescorePayload(task)
	if err != nil {
		return err
	}

	leadID, err := uuid.Parse(payload.LeadID)
	if err != nil {
		return err
	}

	score, err := w.grader.Score(ctx, leadID)
	if err != nil {
		return err
	}

	w.log.Info("lead rescored",
		"lead_id", leadID.String(),
		"total_score", score.TotalScore,
		"classification", score.Classification,
	)
	return nil
}

func (w *Worker) handleLeadRescoreAll(ctx context.Context, task *asynq.Task) error {
	graded, failed, err := w.grader.GradeAll(ctx)
	if err != nil {
		return err
	}

	w.log.Info("lead rescore sweep finished", "graded", graded, "failed", failed)
	return nil
}

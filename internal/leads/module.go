// Package leads provides the leads domain module.
package leads

import (
	"context"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/events"
	apphttp "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/http"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/handler"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Rescorer queues background re-grades. Implemented by the scheduler
// client; nil when no job backend is configured.
type Rescorer interface {
	EnqueueLeadRescore(ctx context.Context, leadID uuid.UUID) error
	EnqueueLeadRescoreAll(ctx context.Context) error
}

// Module represents the leads domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new leads module with all dependencies wired
func NewModule(pool *pgxpool.Pool, eng *engine.Engine, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eng, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes registers the module's routes under /api/v1/leads
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/leads"))
}

// RegisterEventHandlers subscribes the background re-grade triggers:
// changed lead data re-grades that lead, a changed profile re-grades
// everything graded under it. Queue failures are logged, never fatal; the
// next data change will enqueue again.
func (m *Module) RegisterEventHandlers(bus events.Bus, rescorer Rescorer, log *logger.Logger) {
	if rescorer == nil {
		log.Warn("no job backend configured, skipping lead rescore subscriptions")
		return
	}

	bus.Subscribe(events.LeadDataChanged{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		changed, ok := event.(events.LeadDataChanged)
		if !ok {
			return nil
		}
		return rescorer.EnqueueLeadRescore(ctx, changed.LeadID)
	}))

	bus.Subscribe(events.ProfileUpdated{}.EventName(), events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		return rescorer.EnqueueLeadRescoreAll(ctx)
	}))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

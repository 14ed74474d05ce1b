// Package scores provides the scoring domain module: factor catalog
// discovery and ad-hoc score/rank endpoints.
package scores

import (
	apphttp "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/http"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scores/handler"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scores/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/rank"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"
)

// Module represents the scores domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new scores module with all dependencies wired
func NewModule(eng *engine.Engine, ranker *rank.Ranker, profiles service.ProfileProvider, val *validator.Validator) *Module {
	svc := service.New(eng, ranker, profiles)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "scores"
}

// RegisterRoutes registers the module's routes under /api/v1
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterFactorRoutes(ctx.V1.Group("/factors"))
	m.handler.RegisterScoringRoutes(ctx.V1.Group("/scoring"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

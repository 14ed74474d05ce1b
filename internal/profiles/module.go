// Package profiles provides the preference profile domain module.
package profiles

import (
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/events"
	apphttp "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/http"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/profiles/handler"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/profiles/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/profiles/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/preset"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the profiles domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new profiles module with all dependencies wired
func NewModule(pool *pgxpool.Pool, reg *registry.Registry, presets *preset.Library, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, reg, presets, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "profiles"
}

// RegisterRoutes registers the module's routes under /api/v1
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/profiles"))
	m.handler.RegisterPresetRoutes(ctx.V1.Group("/presets"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

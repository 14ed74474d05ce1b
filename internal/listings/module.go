// Package listings provides the listings domain module.
package listings

import (
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/events"
	apphttp "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/http"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/handler"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/rank"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the listings domain module
type Module struct {
	handler *handler.Handler
	Service *service.Service
}

// NewModule creates a new listings module with all dependencies wired
func NewModule(pool *pgxpool.Pool, ranker *rank.Ranker, profiles service.ProfileProvider, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, ranker, profiles, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		Service: svc,
	}
}

// Name returns the module name for logging
func (m *Module) Name() string {
	return "listings"
}

// RegisterRoutes registers the module's routes under /api/v1/listings
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/listings"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

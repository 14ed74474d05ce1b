// Package service exposes the scoring engine as application use cases:
// factor discovery and registration, single-entity scoring and batch
// ranking against stored preference profiles.
package service

import (
	"context"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scores/transport"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/rank"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"

	"github.com/google/uuid"
)

// ProfileProvider loads stored preference profiles. Implemented by the
// profiles service.
type ProfileProvider interface {
	Get(ctx context.Context, id uuid.UUID) (scoring.PreferenceProfile, error)
}

// Service implements the scoring use cases.
type Service struct {
	engine   *engine.Engine
	ranker   *rank.Ranker
	profiles ProfileProvider
}

// New creates a new scores service.
func New(eng *engine.Engine, ranker *rank.Ranker, profiles ProfileProvider) *Service {
	return &Service{engine: eng, ranker: ranker, profiles: profiles}
}

// ListFactors returns factor definitions, optionally filtered by category.
func (s *Service) ListFactors(category string) ([]transport.FactorResponse, error) {
	reg := s.engine.Registry()

	var defs []scoring.FactorDefinition
	if category == "" {
		defs = reg.All()
	} else {
		cat := scoring.Category(category)
		if !cat.Valid() {
			return nil, apperr.Validation("unknown category " + category)
		}
		defs = reg.ListByCategory(cat)
	}

	out := make([]transport.FactorResponse, 0, len(defs))
	for _, def := range defs {
		out = append(out, toFactorResponse(def))
	}
	return out, nil
}

// RegisterFactor adds a custom factor to the registry.
func (s *Service) RegisterFactor(req transport.RegisterFactorRequest) (transport.FactorResponse, error) {
	def := scoring.FactorDefinition{
		ID:             req.ID,
		Category:       scoring.Category(req.Category),
		Description:    req.Description,
		Source:         scoring.DataSource(req.Source),
		Scale:          scoring.Scale(req.Scale),
		CategoryScores: req.CategoryScores,
		DefaultWeight:  req.DefaultWeight,
		DefaultEnabled: req.DefaultEnabled,
	}
	if err := s.engine.Registry().Register(def); err != nil {
		return transport.FactorResponse{}, err
	}
	return toFactorResponse(def), nil
}

// Score computes one entity's aggregate score against a stored profile.
func (s *Service) Score(ctx context.Context, req transport.ScoreRequest) (scoring.AggregateScore, error) {
	profile, err := s.profiles.Get(ctx, req.ProfileID)
	if err != nil {
		return scoring.AggregateScore{}, err
	}
	return s.engine.ComputeScore(req.EntityID, req.Attributes, profile)
}

// Rank scores a batch of entities against a stored profile and returns them
// ordered best-first. Individual entity failures are reported, not fatal.
func (s *Service) Rank(ctx context.Context, req transport.RankRequest) (transport.RankResponse, error) {
	profile, err := s.profiles.Get(ctx, req.ProfileID)
	if err != nil {
		return transport.RankResponse{}, err
	}

	entities := make([]rank.Entity, 0, len(req.Entities))
	for _, e := range req.Entities {
		entities = append(entities, rank.Entity{ID: e.EntityID, Attributes: e.Attributes})
	}

	result, err := s.ranker.RankBatch(ctx, entities, profile)
	if err != nil {
		return transport.RankResponse{}, err
	}

	resp := transport.RankResponse{
		Scores:   result.Scores,
		Failures: make([]transport.FailureDTO, 0, len(result.Failures)),
	}
	for _, f := range result.Failures {
		resp.Failures = append(resp.Failures, transport.FailureDTO{
			EntityID: f.EntityID,
			Code:     f.Code,
			Reason:   f.Reason,
		})
	}
	return resp, nil
}

func toFactorResponse(def scoring.FactorDefinition) transport.FactorResponse {
	return transport.FactorResponse{
		ID:             def.ID,
		Category:       string(def.Category),
		Description:    def.Description,
		Source:         string(def.Source),
		Scale:          string(def.Scale),
		CategoryScores: def.CategoryScores,
		DefaultWeight:  def.DefaultWeight,
		DefaultEnabled: def.DefaultEnabled,
	}
}

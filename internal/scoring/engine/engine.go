// Package engine is the aggregation core shared by listing ranking and lead
// grading. Given an attribute map and a preference profile it produces a
// per-factor breakdown, a total score, a grade, a classification and a
// recommendation. Every call is a pure function of its inputs.
package engine

import (
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/normalize"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"
)

// Engine computes weighted multi-factor scores. It holds no per-call state;
// scoring is safe to run concurrently.
type Engine struct {
	reg *registry.Registry
	log *logger.Logger
}

// New creates an engine backed by the given factor registry.
func New(reg *registry.Registry, log *logger.Logger) *Engine {
	return &Engine{reg: reg, log: log}
}

// Registry exposes the factor catalog for callers that list or register
// factors through the engine surface.
func (e *Engine) Registry() *registry.Registry { return e.reg }

// ComputeScore scores one entity against a profile.
//
// The profile is validated first: no enabled factors or a weight outside
// [1,10] rejects the call before any scoring work. Each enabled factor is
// then normalized (missing values score the midpoint and set the flag),
// weighted, and aggregated into totalScore = 100 * sum(weighted) /
// sum(maxPossible), clamped to [0,100] against floating-point drift.
func (e *Engine) ComputeScore(entityID string, attrs scoring.AttributeMap, profile scoring.PreferenceProfile) (scoring.AggregateScore, error) {
	if err := profile.Validate(); err != nil {
		return scoring.AggregateScore{}, err
	}

	nctx := normalize.Context{Budget: profile.Budget}

	enabled := profile.EnabledFactors()
	breakdown := make([]scoring.FactorScore, 0, len(enabled))

	var sumWeighted, sumMax float64
	missing := 0

	for _, sel := range enabled {
		def, err := e.reg.Lookup(sel.FactorID)
		if err != nil {
			return scoring.AggregateScore{}, err
		}

		res, err := normalize.Normalize(def, attrs[sel.FactorID], nctx)
		if err != nil {
			return scoring.AggregateScore{}, err
		}

		fs := scoring.FactorScore{
			FactorID:        sel.FactorID,
			RawValue:        attrs[sel.FactorID],
			NormalizedScore: res.Score,
			Weight:          sel.Weight,
			WeightedScore:   scoring.Round1(res.Score * float64(sel.Weight)),
			MaxPossible:     10 * float64(sel.Weight),
			MissingData:     res.Missing,
		}
		if res.Missing {
			missing++
		}
		if res.Mismatched && e.log != nil {
			e.log.Warn("attribute kind mismatch",
				"entity_id", entityID,
				"factor_id", sel.FactorID,
			)
		}

		sumWeighted += fs.WeightedScore
		sumMax += fs.MaxPossible
		breakdown = append(breakdown, fs)
	}

	total := scoring.Round2(scoring.Clamp(100*sumWeighted/sumMax, 0, 100))

	scheme := profile.Classification
	if scheme.IsZero() {
		scheme = scoring.ListingClassification()
	}

	result := scoring.AggregateScore{
		EntityID:       entityID,
		TotalScore:     total,
		Grade:          scoring.GradeFor(total),
		Classification: scheme.Classify(total),
		Breakdown:      breakdown,
	}
	result.Recommendation = e.recommend(scheme, result)

	if e.log != nil {
		e.log.ScoreComputed(entityID, total, result.Grade, result.Classification, missing)
	}

	return result, nil
}

// Package rank scores a collection of entities against one profile and
// assigns deterministic ranks. Entities are scored in parallel; a failure on
// one entity is recorded against that entity only and never aborts the batch.
package rank

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"
)

// Entity is one scoring subject in a batch.
type Entity struct {
	ID         string               `json:"id"`
	Attributes scoring.AttributeMap `json:"attributes"`
}

// Failure reports why one entity could not be scored.
type Failure struct {
	EntityID string `json:"entityId"`
	Code     string `json:"code,omitempty"`
	Reason   string `json:"reason"`
}

// Result is a batch report: successes carry ranks 1..N with no gaps;
// failures are listed separately with reasons.
type Result struct {
	Scores   []scoring.AggregateScore `json:"scores"`
	Failures []Failure                `json:"failures,omitempty"`
}

// Ranker runs batches through the weighted factor engine.
type Ranker struct {
	engine *engine.Engine
	log    *logger.Logger
}

// New creates a batch ranker.
func New(eng *engine.Engine, log *logger.Logger) *Ranker {
	return &Ranker{engine: eng, log: log}
}

// RankBatch scores every entity against the profile and ranks the
// successes.
//
// The profile is validated once up front; an invalid profile fails the whole
// call since no entity could score. Entities are scored concurrently across
// a worker pool sized to the available CPUs. Results are sorted by total
// score descending with ties broken by entity id, so re-running the same
// batch always yields the same order.
func (r *Ranker) RankBatch(ctx context.Context, entities []Entity, profile scoring.PreferenceProfile) (Result, error) {
	if err := profile.Validate(); err != nil {
		return Result{}, err
	}

	type outcome struct {
		score scoring.AggregateScore
		fail  *Failure
	}
	outcomes := make([]outcome, len(entities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, entity := range entities {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			score, err := r.engine.ComputeScore(entity.ID, entity.Attributes, profile)
			if err != nil {
				outcomes[i] = outcome{fail: &Failure{
					EntityID: entity.ID,
					Code:     apperr.CodeOf(err),
					Reason:   err.Error(),
				}}
				return nil
			}
			outcomes[i] = outcome{score: score}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Only context cancellation surfaces here; per-entity errors are
		// captured in the outcomes.
		return Result{}, err
	}

	var result Result
	for _, o := range outcomes {
		if o.fail != nil {
			result.Failures = append(result.Failures, *o.fail)
			continue
		}
		result.Scores = append(result.Scores, o.score)
	}

	sort.SliceStable(result.Scores, func(i, j int) bool {
		if result.Scores[i].TotalScore != result.Scores[j].TotalScore {
			return result.Scores[i].TotalScore > result.Scores[j].TotalScore
		}
		return result.Scores[i].EntityID < result.Scores[j].EntityID
	})

	for i := range result.Scores {
		position := i + 1
		result.Scores[i].Rank = &position
	}

	if r.log != nil {
		r.log.BatchRanked(profile.ID.String(), len(result.Scores), len(result.Failures))
	}

	return result, nil
}

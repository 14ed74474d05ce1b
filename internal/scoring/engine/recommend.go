package engine

import (
	"fmt"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
)

// nearMaxRatio is the fill level above which a factor is not worth chasing:
// when every factor clears it, the recommendation falls back to nurture.
const nearMaxRatio = 0.9

// recommend derives the actionable message from the breakdown already
// computed. It performs no extra lookups and is deterministic: ties on the
// weakest factor resolve to the first in breakdown (profile) order.
func (e *Engine) recommend(scheme scoring.ClassificationScheme, result scoring.AggregateScore) string {
	if result.Classification == scheme.TopTier() {
		return "High-priority match: act within 24 hours while interest is hottest."
	}

	weakest, ok := weakestLink(result.Breakdown)
	if !ok {
		return "All factors are near their maximum; keep nurturing and monitor for changes."
	}

	description := weakest.FactorID
	if def, err := e.reg.Lookup(weakest.FactorID); err == nil && def.Description != "" {
		description = def.Description
	}

	if weakest.MissingData {
		return fmt.Sprintf("Fill the data gap on %q before acting; it was scored without evidence.", description)
	}
	return fmt.Sprintf("Follow up on the weakest dimension: %s.", description)
}

// weakestLink returns the enabled factor with the lowest fill ratio, or
// ok=false when every factor is already near its maximum.
func weakestLink(breakdown []scoring.FactorScore) (scoring.FactorScore, bool) {
	var weakest scoring.FactorScore
	found := false
	for _, fs := range breakdown {
		if !found || fs.Ratio() < weakest.Ratio() {
			weakest = fs
			found = true
		}
	}
	if !found || weakest.Ratio() >= nearMaxRatio {
		return scoring.FactorScore{}, false
	}
	return weakest, true
}

// Package normalize converts raw attribute values onto the engine's common
// [0,10] scale. Each rule family is explicit and independently testable;
// there are no per-factor special cases outside the declared scale.
package normalize

import (
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
)

// Midpoint is the score assigned when a raw value is missing. Absence is
// neither a penalty nor a bonus; the missing-data flag tells callers which
// factors were scored on no evidence. This policy is uniform across every
// factor type.
const Midpoint = 5.0

// BudgetStretch is how far past the budget max the price score decays to
// zero: a listing at 110% of budget max (or beyond) scores 0.
const BudgetStretch = 1.1

// Context carries per-call inputs some rules need beyond the raw value.
type Context struct {
	// Budget is the profile's budget range, required by budget-relative
	// factors. Scoring a budget-relative factor without a budget marks the
	// factor missing rather than guessing.
	Budget *scoring.BudgetRange
}

// Result is the outcome of normalizing one raw value. Mismatched marks a
// value of the wrong kind for the factor's scale (a number for a boolean
// factor, a category code for a numeric one); such values score the same
// midpoint as absent data but callers can tell the two apart.
type Result struct {
	Score      float64
	Missing    bool
	Mismatched bool
}

// Normalize maps raw onto [0,10] according to the factor's declared scale.
// Scores are rounded to one decimal place before weighting so breakdowns
// reproduce across platforms. A missing raw value scores Midpoint with the
// Missing flag set, for every scale; a wrong-kind value additionally sets
// Mismatched.
func Normalize(def scoring.FactorDefinition, raw scoring.Value, ctx Context) (Result, error) {
	if raw.IsAbsent() {
		return Result{Score: Midpoint, Missing: true}, nil
	}

	switch def.Scale {
	case scoring.ScaleBoolean:
		return boolRule(raw), nil
	case scoring.ScaleIndex100:
		return indexRule(raw), nil
	case scoring.ScaleRating5:
		return ratingRule(raw), nil
	case scoring.ScaleBudget:
		return budgetRule(raw, ctx), nil
	case scoring.ScaleCategorical:
		return categoricalRule(def, raw)
	default:
		// Unreachable for registered factors; Validate rejects unknown scales.
		return Result{Score: Midpoint, Missing: true}, nil
	}
}

// boolRule: true scores 10, false scores 0. A non-boolean value for a
// boolean factor carries no usable signal and scores the midpoint, marked
// as a kind mismatch.
func boolRule(raw scoring.Value) Result {
	if raw.Kind() != scoring.KindBool {
		return Result{Score: Midpoint, Missing: true, Mismatched: true}
	}
	if raw.Bool() {
		return Result{Score: 10}
	}
	return Result{Score: 0}
}

// indexRule: a 0-100 bounded index divided by 10, clamped against
// out-of-range provider values.
func indexRule(raw scoring.Value) Result {
	if raw.Kind() != scoring.KindNumber {
		return Result{Score: Midpoint, Missing: true, Mismatched: true}
	}
	return Result{Score: scoring.Round1(scoring.Clamp(raw.Float()/10, 0, 10))}
}

// ratingRule: a 1-5 rating multiplied by 2, clamped.
func ratingRule(raw scoring.Value) Result {
	if raw.Kind() != scoring.KindNumber {
		return Result{Score: Midpoint, Missing: true, Mismatched: true}
	}
	return Result{Score: scoring.Round1(scoring.Clamp(raw.Float()*2, 0, 10))}
}

// budgetRule: piecewise-linear price fit. 10 at or below budget min, 0 at or
// above BudgetStretch times budget max, linear in between.
func budgetRule(raw scoring.Value, ctx Context) Result {
	if raw.Kind() != scoring.KindNumber {
		return Result{Score: Midpoint, Missing: true, Mismatched: true}
	}
	if ctx.Budget == nil || ctx.Budget.Max <= 0 {
		return Result{Score: Midpoint, Missing: true}
	}

	price := raw.Float()
	floor := ctx.Budget.Min
	ceiling := ctx.Budget.Max * BudgetStretch

	switch {
	case price <= floor:
		return Result{Score: 10}
	case price >= ceiling:
		return Result{Score: 0}
	default:
		return Result{Score: scoring.Round1(10 * (ceiling - price) / (ceiling - floor))}
	}
}

// categoricalRule looks the code up in the factor's score table. Unmapped
// codes fail; they are never silently defaulted.
func categoricalRule(def scoring.FactorDefinition, raw scoring.Value) (Result, error) {
	if raw.Kind() != scoring.KindCategory {
		return Result{Score: Midpoint, Missing: true, Mismatched: true}, nil
	}

	score, ok := def.CategoryScores[raw.Code()]
	if !ok {
		return Result{}, scoring.ErrUnknownCategory(def.ID, raw.Code())
	}
	return Result{Score: scoring.Round1(score)}, nil
}

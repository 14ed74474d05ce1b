package engine

import (
	"strings"
	"testing"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(registry.NewWithDefaults(), nil)
}

func profileWith(factors ...scoring.FactorSelection) scoring.PreferenceProfile {
	return scoring.PreferenceProfile{Factors: factors}
}

func TestComputeScore_WeightedAggregation(t *testing.T) {
	eng := newTestEngine(t)

	// walkability 80 => 8.0, weighted 48 of 60; garage true => 10, weighted 40 of 40.
	// total = 100 * 88 / 100 = 88.
	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorWalkability, Weight: 6, Enabled: true},
		scoring.FactorSelection{FactorID: registry.FactorHasGarage, Weight: 4, Enabled: true},
	)
	attrs := scoring.AttributeMap{
		registry.FactorWalkability: scoring.Number(80),
		registry.FactorHasGarage:   scoring.Boolean(true),
	}

	result, err := eng.ComputeScore("listing-1", attrs, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalScore != 88 {
		t.Fatalf("expected total 88, got %v", result.TotalScore)
	}
	if result.Grade != "A" {
		t.Fatalf("expected grade A, got %q", result.Grade)
	}
	if result.Classification != "prime" {
		t.Fatalf("expected classification prime, got %q", result.Classification)
	}
	if len(result.Breakdown) != 2 {
		t.Fatalf("expected 2 breakdown lines, got %d", len(result.Breakdown))
	}

	walk := result.Breakdown[0]
	if walk.FactorID != registry.FactorWalkability {
		t.Fatalf("breakdown must follow profile order, got %q first", walk.FactorID)
	}
	if walk.NormalizedScore != 8 || walk.WeightedScore != 48 || walk.MaxPossible != 60 {
		t.Fatalf("unexpected walkability line: norm=%v weighted=%v max=%v",
			walk.NormalizedScore, walk.WeightedScore, walk.MaxPossible)
	}
	if walk.MissingData {
		t.Fatal("walkability was supplied; missing flag must be clear")
	}
}

func TestComputeScore_DisabledFactorsAreIgnored(t *testing.T) {
	eng := newTestEngine(t)

	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorHasGarage, Weight: 4, Enabled: true},
		scoring.FactorSelection{FactorID: registry.FactorHasPool, Weight: 10, Enabled: false},
	)
	attrs := scoring.AttributeMap{
		registry.FactorHasGarage: scoring.Boolean(true),
		registry.FactorHasPool:   scoring.Boolean(false),
	}

	result, err := eng.ComputeScore("listing-1", attrs, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalScore != 100 {
		t.Fatalf("disabled pool factor must not drag the total, got %v", result.TotalScore)
	}
	if len(result.Breakdown) != 1 {
		t.Fatalf("expected 1 breakdown line, got %d", len(result.Breakdown))
	}
}

func TestComputeScore_MissingValueScoresMidpoint(t *testing.T) {
	eng := newTestEngine(t)

	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorWalkability, Weight: 6, Enabled: true},
	)

	result, err := eng.ComputeScore("listing-1", scoring.AttributeMap{}, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalScore != 50 {
		t.Fatalf("expected midpoint total 50, got %v", result.TotalScore)
	}
	if !result.Breakdown[0].MissingData {
		t.Fatal("expected the missing-data flag on the breakdown line")
	}
}

func TestComputeScore_BooleanExtremes(t *testing.T) {
	eng := newTestEngine(t)
	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorHasGarage, Weight: 7, Enabled: true},
	)

	best, err := eng.ComputeScore("a", scoring.AttributeMap{registry.FactorHasGarage: scoring.Boolean(true)}, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	worst, err := eng.ComputeScore("b", scoring.AttributeMap{registry.FactorHasGarage: scoring.Boolean(false)}, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if best.TotalScore != 100 || best.Grade != "A" {
		t.Fatalf("expected 100/A for true, got %v/%q", best.TotalScore, best.Grade)
	}
	if worst.TotalScore != 0 || worst.Grade != "F" {
		t.Fatalf("expected 0/F for false, got %v/%q", worst.TotalScore, worst.Grade)
	}
}

func TestComputeScore_RejectsInvalidProfile(t *testing.T) {
	eng := newTestEngine(t)

	cases := []struct {
		name    string
		profile scoring.PreferenceProfile
	}{
		{"no enabled factors", profileWith(
			scoring.FactorSelection{FactorID: registry.FactorHasGarage, Weight: 4, Enabled: false},
		)},
		{"weight below range", profileWith(
			scoring.FactorSelection{FactorID: registry.FactorHasGarage, Weight: 0, Enabled: true},
		)},
		{"weight above range", profileWith(
			scoring.FactorSelection{FactorID: registry.FactorHasGarage, Weight: 11, Enabled: true},
		)},
	}

	for _, tc := range cases {
		_, err := eng.ComputeScore("x", scoring.AttributeMap{}, tc.profile)
		if err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
		if !apperr.HasCode(err, scoring.CodeInvalidProfile) {
			t.Fatalf("%s: expected code %q, got %q", tc.name, scoring.CodeInvalidProfile, apperr.CodeOf(err))
		}
	}
}

func TestComputeScore_UnknownFactorFails(t *testing.T) {
	eng := newTestEngine(t)

	profile := profileWith(
		scoring.FactorSelection{FactorID: "no_such_factor", Weight: 5, Enabled: true},
	)

	_, err := eng.ComputeScore("x", scoring.AttributeMap{}, profile)
	if err == nil {
		t.Fatal("expected an error for the unregistered factor")
	}
	if !apperr.HasCode(err, scoring.CodeUnknownFactor) {
		t.Fatalf("expected code %q, got %q", scoring.CodeUnknownFactor, apperr.CodeOf(err))
	}
}

func TestComputeScore_GradeCutPoints(t *testing.T) {
	eng := newTestEngine(t)
	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorWalkability, Weight: 5, Enabled: true},
	)

	cases := []struct {
		raw   float64
		grade string
	}{
		{80, "A"},
		{79, "B"},
		{60, "B"},
		{59, "C"},
		{40, "C"},
		{39, "D"},
		{20, "D"},
		{19, "F"},
	}

	for _, tc := range cases {
		result, err := eng.ComputeScore("x",
			scoring.AttributeMap{registry.FactorWalkability: scoring.Number(tc.raw)}, profile)
		if err != nil {
			t.Fatalf("raw %v: unexpected error: %v", tc.raw, err)
		}
		if result.Grade != tc.grade {
			t.Fatalf("raw %v (total %v): expected grade %q, got %q", tc.raw, result.TotalScore, tc.grade, result.Grade)
		}
	}
}

func TestComputeScore_CustomClassificationScheme(t *testing.T) {
	eng := newTestEngine(t)

	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorLeadEngagement, Weight: 5, Enabled: true},
	)
	profile.Classification = scoring.LeadClassification()

	result, err := eng.ComputeScore("lead-1",
		scoring.AttributeMap{registry.FactorLeadEngagement: scoring.Number(75)}, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Classification != "hot" {
		t.Fatalf("expected hot at total %v, got %q", result.TotalScore, result.Classification)
	}
}

func TestRecommendation_TopTierActsNow(t *testing.T) {
	eng := newTestEngine(t)
	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorHasGarage, Weight: 4, Enabled: true},
	)

	result, err := eng.ComputeScore("x",
		scoring.AttributeMap{registry.FactorHasGarage: scoring.Boolean(true)}, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.Recommendation, "High-priority match") {
		t.Fatalf("expected the act-now recommendation, got %q", result.Recommendation)
	}
}

func TestRecommendation_PointsAtWeakestFactor(t *testing.T) {
	eng := newTestEngine(t)
	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorWalkability, Weight: 6, Enabled: true},
		scoring.FactorSelection{FactorID: registry.FactorCrimeSafety, Weight: 6, Enabled: true},
	)
	attrs := scoring.AttributeMap{
		registry.FactorWalkability: scoring.Number(90),
		registry.FactorCrimeSafety: scoring.Number(20),
	}

	result, err := eng.ComputeScore("x", attrs, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result.Recommendation, "crime-safety") {
		t.Fatalf("expected the recommendation to name the weakest dimension, got %q", result.Recommendation)
	}
}

func TestRecommendation_MissingDataGapNamedFirst(t *testing.T) {
	eng := newTestEngine(t)
	profile := profileWith(
		scoring.FactorSelection{FactorID: registry.FactorWalkability, Weight: 6, Enabled: true},
		scoring.FactorSelection{FactorID: registry.FactorCrimeSafety, Weight: 6, Enabled: true},
	)
	// Crime safety absent: midpoint 5.0 is the weakest line and it is a gap.
	attrs := scoring.AttributeMap{
		registry.FactorWalkability: scoring.Number(90),
	}

	result, err := eng.ComputeScore("x", attrs, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(result.Recommendation, "Fill the data gap") {
		t.Fatalf("expected the data-gap recommendation, got %q", result.Recommendation)
	}
}

package normalize

import (
	"errors"
	"testing"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
)

func boolDef() scoring.FactorDefinition {
	return scoring.FactorDefinition{ID: "has_garage", Scale: scoring.ScaleBoolean}
}

func indexDef() scoring.FactorDefinition {
	return scoring.FactorDefinition{ID: "walkability", Scale: scoring.ScaleIndex100}
}

func ratingDef() scoring.FactorDefinition {
	return scoring.FactorDefinition{ID: "school_rating", Scale: scoring.ScaleRating5}
}

func budgetDef() scoring.FactorDefinition {
	return scoring.FactorDefinition{ID: "price_fit", Scale: scoring.ScaleBudget}
}

func categoricalDef() scoring.FactorDefinition {
	return scoring.FactorDefinition{
		ID:             "flood_zone",
		Scale:          scoring.ScaleCategorical,
		CategoryScores: map[string]float64{"X": 10, "AE": 4, "VE": 0},
	}
}

func TestNormalize_AbsentScoresMidpointForEveryScale(t *testing.T) {
	defs := []scoring.FactorDefinition{boolDef(), indexDef(), ratingDef(), budgetDef(), categoricalDef()}

	for _, def := range defs {
		res, err := Normalize(def, scoring.Value{}, Context{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", def.ID, err)
		}
		if res.Score != Midpoint {
			t.Fatalf("%s: expected midpoint %v for absent value, got %v", def.ID, Midpoint, res.Score)
		}
		if !res.Missing {
			t.Fatalf("%s: expected missing flag for absent value", def.ID)
		}
	}
}

func TestNormalize_Boolean(t *testing.T) {
	res, err := Normalize(boolDef(), scoring.Boolean(true), Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 10 || res.Missing {
		t.Fatalf("expected true=>10, got %v (missing=%v)", res.Score, res.Missing)
	}

	res, err = Normalize(boolDef(), scoring.Boolean(false), Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 0 || res.Missing {
		t.Fatalf("expected false=>0, got %v (missing=%v)", res.Score, res.Missing)
	}
}

func TestNormalize_Index100(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{0, 0},
		{50, 5},
		{73, 7.3},
		{100, 10},
		{120, 10}, // out-of-range provider value clamps
		{-5, 0},
	}

	for _, tc := range cases {
		res, err := Normalize(indexDef(), scoring.Number(tc.raw), Context{})
		if err != nil {
			t.Fatalf("raw %v: unexpected error: %v", tc.raw, err)
		}
		if res.Score != tc.want {
			t.Fatalf("raw %v: expected %v, got %v", tc.raw, tc.want, res.Score)
		}
		if res.Missing {
			t.Fatalf("raw %v: unexpected missing flag", tc.raw)
		}
	}
}

func TestNormalize_Rating5(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{1, 2},
		{3.5, 7},
		{5, 10},
		{6, 10}, // clamps
	}

	for _, tc := range cases {
		res, err := Normalize(ratingDef(), scoring.Number(tc.raw), Context{})
		if err != nil {
			t.Fatalf("raw %v: unexpected error: %v", tc.raw, err)
		}
		if res.Score != tc.want {
			t.Fatalf("raw %v: expected %v, got %v", tc.raw, tc.want, res.Score)
		}
	}
}

func TestNormalize_BudgetRelative(t *testing.T) {
	ctx := Context{Budget: &scoring.BudgetRange{Min: 200000, Max: 400000}}

	cases := []struct {
		name  string
		price float64
		want  float64
	}{
		{"below min", 150000, 10},
		{"at min", 200000, 10},
		{"halfway to stretched ceiling", 320000, 5},
		{"at 110 percent of max", 440000, 0},
		{"beyond ceiling", 900000, 0},
	}

	for _, tc := range cases {
		res, err := Normalize(budgetDef(), scoring.Number(tc.price), ctx)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if res.Score != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, res.Score)
		}
		if res.Missing {
			t.Fatalf("%s: unexpected missing flag", tc.name)
		}
	}
}

func TestNormalize_BudgetWithoutBudgetRangeIsMissing(t *testing.T) {
	res, err := Normalize(budgetDef(), scoring.Number(300000), Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != Midpoint || !res.Missing {
		t.Fatalf("expected midpoint+missing without a budget range, got %v (missing=%v)", res.Score, res.Missing)
	}
}

func TestNormalize_Categorical(t *testing.T) {
	res, err := Normalize(categoricalDef(), scoring.CategoryCode("AE"), Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 4 || res.Missing {
		t.Fatalf("expected AE=>4, got %v (missing=%v)", res.Score, res.Missing)
	}
}

func TestNormalize_UnmappedCategoryFails(t *testing.T) {
	_, err := Normalize(categoricalDef(), scoring.CategoryCode("Z9"), Context{})
	if err == nil {
		t.Fatal("expected an error for the unmapped category code")
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperr.Error, got %T", err)
	}
	if appErr.Code != scoring.CodeUnknownCategory {
		t.Fatalf("expected code %q, got %q", scoring.CodeUnknownCategory, appErr.Code)
	}
}

func TestNormalize_WrongValueKindIsMissing(t *testing.T) {
	cases := []struct {
		name string
		def  scoring.FactorDefinition
		raw  scoring.Value
	}{
		{"number for boolean factor", boolDef(), scoring.Number(1)},
		{"boolean for index factor", indexDef(), scoring.Boolean(true)},
		{"string for rating factor", ratingDef(), scoring.CategoryCode("great")},
		{"boolean for budget factor", budgetDef(), scoring.Boolean(true)},
		{"boolean for categorical factor", categoricalDef(), scoring.Boolean(true)},
	}

	for _, tc := range cases {
		res, err := Normalize(tc.def, tc.raw, Context{Budget: &scoring.BudgetRange{Min: 200000, Max: 400000}})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if res.Score != Midpoint || !res.Missing {
			t.Fatalf("%s: expected midpoint+missing, got %v (missing=%v)", tc.name, res.Score, res.Missing)
		}
		if !res.Mismatched {
			t.Fatalf("%s: expected the kind mismatch to be flagged", tc.name)
		}
	}
}

func TestNormalize_AbsentValueIsNotAMismatch(t *testing.T) {
	res, err := Normalize(indexDef(), scoring.Value{}, Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Missing || res.Mismatched {
		t.Fatalf("expected missing without mismatch for an absent value, got missing=%v mismatched=%v", res.Missing, res.Mismatched)
	}
}

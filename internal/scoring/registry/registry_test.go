package registry

import (
	"testing"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
)

func TestBuiltinCatalogsAreValid(t *testing.T) {
	for _, def := range append(ListingFactors(), LeadFactors()...) {
		if err := def.Validate(); err != nil {
			t.Fatalf("builtin factor %q is invalid: %v", def.ID, err)
		}
	}
}

func TestNewWithDefaults_ContainsAllCatalogFactors(t *testing.T) {
	r := NewWithDefaults()

	want := len(ListingFactors()) + len(LeadFactors())
	if got := len(r.All()); got != want {
		t.Fatalf("expected %d registered factors, got %d", want, got)
	}

	for _, id := range []string{FactorPriceFit, FactorFloodZone, FactorLeadTimeline, FactorLeadRecency} {
		if _, err := r.Lookup(id); err != nil {
			t.Fatalf("expected %q in the default registry: %v", id, err)
		}
	}
}

func TestRegister_DuplicateConflictsAndKeepsOriginal(t *testing.T) {
	r := New()

	original := scoring.FactorDefinition{
		ID:            "noise_level",
		Category:      scoring.CategoryEnvironment,
		Source:        scoring.SourceEnrichment,
		Scale:         scoring.ScaleIndex100,
		DefaultWeight: 4,
	}
	if err := r.Register(original); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	duplicate := original
	duplicate.DefaultWeight = 9
	err := r.Register(duplicate)
	if err == nil {
		t.Fatal("expected a conflict for the duplicate id")
	}
	if !apperr.HasCode(err, scoring.CodeDuplicateFactorID) {
		t.Fatalf("expected code %q, got %q", scoring.CodeDuplicateFactorID, apperr.CodeOf(err))
	}

	def, err := r.Lookup("noise_level")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.DefaultWeight != 4 {
		t.Fatalf("duplicate registration must not touch the original, got weight %d", def.DefaultWeight)
	}
}

func TestRegister_RejectsInvalidDefinition(t *testing.T) {
	r := New()

	cases := []struct {
		name string
		def  scoring.FactorDefinition
	}{
		{"missing id", scoring.FactorDefinition{Category: scoring.CategoryProperty, Scale: scoring.ScaleBoolean, DefaultWeight: 5}},
		{"unknown category", scoring.FactorDefinition{ID: "x", Category: "vibes", Scale: scoring.ScaleBoolean, DefaultWeight: 5}},
		{"weight out of range", scoring.FactorDefinition{ID: "x", Category: scoring.CategoryProperty, Scale: scoring.ScaleBoolean, DefaultWeight: 11}},
		{"categorical without table", scoring.FactorDefinition{ID: "x", Category: scoring.CategoryProperty, Scale: scoring.ScaleCategorical, DefaultWeight: 5}},
		{"table on non-categorical", scoring.FactorDefinition{ID: "x", Category: scoring.CategoryProperty, Scale: scoring.ScaleBoolean, DefaultWeight: 5, CategoryScores: map[string]float64{"A": 1}}},
	}

	for _, tc := range cases {
		if err := r.Register(tc.def); err == nil {
			t.Fatalf("%s: expected a validation error", tc.name)
		}
	}
}

func TestLookup_UnknownFactor(t *testing.T) {
	r := NewWithDefaults()

	_, err := r.Lookup("no_such_factor")
	if err == nil {
		t.Fatal("expected an error for the unknown factor")
	}
	if !apperr.HasCode(err, scoring.CodeUnknownFactor) {
		t.Fatalf("expected code %q, got %q", scoring.CodeUnknownFactor, apperr.CodeOf(err))
	}
}

func TestListByCategory_PreservesRegistrationOrder(t *testing.T) {
	r := NewWithDefaults()

	defs := r.ListByCategory(scoring.CategoryFinancial)
	if len(defs) < 2 {
		t.Fatalf("expected at least 2 financial factors, got %d", len(defs))
	}
	if defs[0].ID != FactorPriceFit {
		t.Fatalf("expected %q first in the financial category, got %q", FactorPriceFit, defs[0].ID)
	}
	for _, def := range defs {
		if def.Category != scoring.CategoryFinancial {
			t.Fatalf("factor %q leaked into the financial category", def.ID)
		}
	}
}

func TestDefaultSelections_MirrorCatalogDefaults(t *testing.T) {
	defs := ListingFactors()
	selections := DefaultSelections(defs)

	if len(selections) != len(defs) {
		t.Fatalf("expected %d selections, got %d", len(defs), len(selections))
	}
	for i, sel := range selections {
		if sel.FactorID != defs[i].ID || sel.Weight != defs[i].DefaultWeight || sel.Enabled != defs[i].DefaultEnabled {
			t.Fatalf("selection %d does not mirror catalog entry %q", i, defs[i].ID)
		}
	}
}

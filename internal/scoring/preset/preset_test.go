package preset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	return NewLibrary(registry.NewWithDefaults())
}

func defaultProfile() scoring.PreferenceProfile {
	return scoring.PreferenceProfile{
		Factors: registry.DefaultSelections(registry.ListingFactors()),
	}
}

func writePresetsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "presets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write presets file: %v", err)
	}
	return path
}

func selectionFor(t *testing.T, p scoring.PreferenceProfile, factorID string) scoring.FactorSelection {
	t.Helper()
	for _, sel := range p.Factors {
		if sel.FactorID == factorID {
			return sel
		}
	}
	t.Fatalf("factor %q not in profile", factorID)
	return scoring.FactorSelection{}
}

func TestNewLibrary_ShipsBuiltins(t *testing.T) {
	lib := newTestLibrary(t)

	names := lib.Names()
	want := []string{"commuter", "family", "first-time-buyer", "investor", LeadQualification}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected builtin presets %v, got %v", want, names)
	}
}

func TestApply_MergesOnlyListedFactors(t *testing.T) {
	lib := newTestLibrary(t)
	before := defaultProfile()

	after, err := lib.Apply(before, "family")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	school := selectionFor(t, after, registry.FactorSchoolRating)
	if school.Weight != 10 || !school.Enabled {
		t.Fatalf("expected school rating 10/enabled, got %d/%v", school.Weight, school.Enabled)
	}
	activity := selectionFor(t, after, registry.FactorNeighborhoodActivity)
	if activity.Enabled {
		t.Fatal("family preset must disable neighborhood activity")
	}

	// Factors the preset never mentions keep their previous settings.
	price := selectionFor(t, after, registry.FactorPriceFit)
	if price.Weight != 8 || !price.Enabled {
		t.Fatalf("price fit must be untouched, got %d/%v", price.Weight, price.Enabled)
	}

	if after.PresetName == nil || *after.PresetName != "family" {
		t.Fatalf("expected preset name recorded, got %v", after.PresetName)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	lib := newTestLibrary(t)
	before := defaultProfile()
	snapshot := before.Clone()

	if _, err := lib.Apply(before, "investor"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(before.Factors, snapshot.Factors) {
		t.Fatal("Apply must not mutate the input profile")
	}
	if before.PresetName != nil {
		t.Fatal("Apply must not stamp the input profile")
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	lib := newTestLibrary(t)

	for _, name := range []string{"family", "investor", "commuter", "first-time-buyer"} {
		once, err := lib.Apply(defaultProfile(), name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		twice, err := lib.Apply(once, name)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("%s: applying twice must be a no-op\nonce:  %+v\ntwice: %+v", name, once, twice)
		}
	}
}

func TestApply_AppendsFactorAbsentFromProfile(t *testing.T) {
	lib := newTestLibrary(t)

	// A narrow profile that never configured commute access.
	profile := scoring.PreferenceProfile{
		Factors: []scoring.FactorSelection{
			{FactorID: registry.FactorPriceFit, Weight: 8, Enabled: true},
		},
	}

	after, err := lib.Apply(profile, "commuter")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	commute := selectionFor(t, after, registry.FactorCommuteAccess)
	if commute.Weight != 10 || !commute.Enabled {
		t.Fatalf("expected commute access appended at 10/enabled, got %d/%v", commute.Weight, commute.Enabled)
	}

	// Walkability is overridden on weight only; it arrives with its catalog
	// default enablement.
	walk := selectionFor(t, after, registry.FactorWalkability)
	if walk.Weight != 9 || !walk.Enabled {
		t.Fatalf("expected walkability 9/enabled, got %d/%v", walk.Weight, walk.Enabled)
	}
}

func TestApply_UnknownPreset(t *testing.T) {
	lib := newTestLibrary(t)

	_, err := lib.Apply(defaultProfile(), "no-such-preset")
	if err == nil {
		t.Fatal("expected an error for the unknown preset")
	}
	if !apperr.HasCode(err, scoring.CodeUnknownPreset) {
		t.Fatalf("expected code %q, got %q", scoring.CodeUnknownPreset, apperr.CodeOf(err))
	}
}

func TestLoadFile_AddsCustomPreset(t *testing.T) {
	lib := newTestLibrary(t)
	path := writePresetsFile(t, `
presets:
  - name: waterfront
    description: Weight environment factors for coastal buyers
    overrides:
      - factor: flood_zone
        weight: 10
      - factor: air_quality
        weight: 7
        enabled: true
`)

	if err := lib.LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, err := lib.Apply(defaultProfile(), "waterfront")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flood := selectionFor(t, after, registry.FactorFloodZone)
	if flood.Weight != 10 {
		t.Fatalf("expected flood zone weight 10, got %d", flood.Weight)
	}
	air := selectionFor(t, after, registry.FactorAirQuality)
	if air.Weight != 7 || !air.Enabled {
		t.Fatalf("expected air quality 7/enabled, got %d/%v", air.Weight, air.Enabled)
	}
}

func TestLoadFile_RejectsReservedPreset(t *testing.T) {
	lib := newTestLibrary(t)
	path := writePresetsFile(t, `
presets:
  - name: lead-qualification
    overrides:
      - factor: lead_budget
        weight: 1
`)

	err := lib.LoadFile(path)
	if err == nil {
		t.Fatal("expected the reserved preset to be rejected")
	}
	if !apperr.HasCode(err, scoring.CodeReservedPreset) {
		t.Fatalf("expected code %q, got %q", scoring.CodeReservedPreset, apperr.CodeOf(err))
	}

	// The built-in stays intact.
	p, err := lib.Get(LeadQualification)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Overrides) != 5 {
		t.Fatalf("expected the builtin lead-qualification preset untouched, got %d overrides", len(p.Overrides))
	}
}

func TestLoadFile_RejectsUnknownFactor(t *testing.T) {
	lib := newTestLibrary(t)
	path := writePresetsFile(t, `
presets:
  - name: broken
    overrides:
      - factor: no_such_factor
        weight: 5
`)

	if err := lib.LoadFile(path); err == nil {
		t.Fatal("expected an error for the unknown factor id")
	}
}

func TestLoadFile_RejectsWeightOutOfRange(t *testing.T) {
	lib := newTestLibrary(t)
	path := writePresetsFile(t, `
presets:
  - name: broken
    overrides:
      - factor: walkability
        weight: 42
`)

	err := lib.LoadFile(path)
	if err == nil {
		t.Fatal("expected an error for the out-of-range weight")
	}
	if !apperr.HasCode(err, scoring.CodeInvalidFactorWeight) {
		t.Fatalf("expected code %q, got %q", scoring.CodeInvalidFactorWeight, apperr.CodeOf(err))
	}
}

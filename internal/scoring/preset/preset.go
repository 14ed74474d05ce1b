// Package preset provides named weight/enable overlays that can be merged
// onto a preference profile. Built-in presets ship with the binary; extra
// presets can be overlaid from a YAML file. Applying a preset is idempotent:
// applying the same preset twice in a row yields an identical profile.
package preset

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
)

// LeadQualification is the fixed preset used for lead grading. It is
// reserved: YAML overlays may not redefine it and profile owners may not
// edit the resulting weights.
const LeadQualification = "lead-qualification"

// Override adjusts one factor. Nil fields leave the existing value
// untouched.
type Override struct {
	FactorID string `yaml:"factor"`
	Weight   *int   `yaml:"weight,omitempty"`
	Enabled  *bool  `yaml:"enabled,omitempty"`
}

// Preset is a named, ordered list of factor overrides.
type Preset struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Overrides   []Override `yaml:"overrides"`
}

// Library holds the available presets.
type Library struct {
	mu      sync.RWMutex
	presets map[string]Preset
	reg     *registry.Registry
}

// NewLibrary creates a library with the built-in presets, validated against
// the given registry.
func NewLibrary(reg *registry.Registry) *Library {
	l := &Library{presets: make(map[string]Preset), reg: reg}
	for _, p := range builtins() {
		// Built-ins are covered by tests; failing here is a programming error.
		if err := l.add(p, true); err != nil {
			panic(err)
		}
	}
	return l
}

// LoadFile overlays presets from a YAML file. Redefining a reserved preset
// fails; redefining another built-in replaces it.
func (l *Library) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read presets file: %w", err)
	}

	var doc struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse presets file: %w", err)
	}

	for _, p := range doc.Presets {
		if err := l.add(p, false); err != nil {
			return err
		}
	}
	return nil
}

func (l *Library) add(p Preset, builtin bool) error {
	if p.Name == "" {
		return apperr.Validation("preset name is required")
	}
	if !builtin && p.Name == LeadQualification {
		return apperr.Conflict("preset " + LeadQualification + " is reserved").
			WithCode(scoring.CodeReservedPreset)
	}

	for _, o := range p.Overrides {
		if _, err := l.reg.Lookup(o.FactorID); err != nil {
			return err
		}
		if o.Weight != nil && (*o.Weight < scoring.MinWeight || *o.Weight > scoring.MaxWeight) {
			return apperr.Validation(fmt.Sprintf("preset %q: factor %q weight %d outside [%d,%d]",
				p.Name, o.FactorID, *o.Weight, scoring.MinWeight, scoring.MaxWeight)).
				WithCode(scoring.CodeInvalidFactorWeight)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.presets[p.Name] = p
	return nil
}

// Get returns a preset by name.
func (l *Library) Get(name string) (Preset, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.presets[name]
	if !ok {
		return Preset{}, scoring.ErrUnknownPreset(name)
	}
	return p, nil
}

// Names lists the available preset names, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply merges the named preset's overrides onto the profile and returns
// the result. Only listed factors change; everything else is untouched. A
// factor listed in the preset but absent from the profile is appended with
// its catalog defaults before the override lands, so presets can enable
// factors the owner never configured. Apply never touches timestamps; the
// persistence layer owns those. Applying the same preset twice produces an
// identical profile.
func (l *Library) Apply(profile scoring.PreferenceProfile, name string) (scoring.PreferenceProfile, error) {
	p, err := l.Get(name)
	if err != nil {
		return scoring.PreferenceProfile{}, err
	}

	out := profile.Clone()

	index := make(map[string]int, len(out.Factors))
	for i, sel := range out.Factors {
		index[sel.FactorID] = i
	}

	for _, o := range p.Overrides {
		i, ok := index[o.FactorID]
		if !ok {
			def, err := l.reg.Lookup(o.FactorID)
			if err != nil {
				return scoring.PreferenceProfile{}, err
			}
			out.Factors = append(out.Factors, scoring.FactorSelection{
				FactorID: def.ID,
				Weight:   def.DefaultWeight,
				Enabled:  def.DefaultEnabled,
			})
			i = len(out.Factors) - 1
			index[o.FactorID] = i
		}

		if o.Weight != nil {
			out.Factors[i].Weight = *o.Weight
		}
		if o.Enabled != nil {
			out.Factors[i].Enabled = *o.Enabled
		}
	}

	applied := p.Name
	out.PresetName = &applied
	return out, nil
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// builtins returns the presets compiled into the binary.
func builtins() []Preset {
	return []Preset{
		{
			Name:        "family",
			Description: "Prioritize schools, safety and space for a family move",
			Overrides: []Override{
				{FactorID: registry.FactorSchoolRating, Weight: intPtr(10), Enabled: boolPtr(true)},
				{FactorID: registry.FactorCrimeSafety, Weight: intPtr(9), Enabled: boolPtr(true)},
				{FactorID: registry.FactorPropertySize, Weight: intPtr(6), Enabled: boolPtr(true)},
				{FactorID: registry.FactorHasGarage, Weight: intPtr(5), Enabled: boolPtr(true)},
				{FactorID: registry.FactorNeighborhoodActivity, Enabled: boolPtr(false)},
			},
		},
		{
			Name:        "investor",
			Description: "Prioritize price, market trend and resale fundamentals",
			Overrides: []Override{
				{FactorID: registry.FactorPriceFit, Weight: intPtr(10)},
				{FactorID: registry.FactorMarketTrend, Weight: intPtr(9), Enabled: boolPtr(true)},
				{FactorID: registry.FactorPropertyCondition, Weight: intPtr(8)},
				{FactorID: registry.FactorFloodZone, Weight: intPtr(7)},
				{FactorID: registry.FactorSchoolRating, Weight: intPtr(5)},
			},
		},
		{
			Name:        "commuter",
			Description: "Prioritize walkability and transit access",
			Overrides: []Override{
				{FactorID: registry.FactorCommuteAccess, Weight: intPtr(10), Enabled: boolPtr(true)},
				{FactorID: registry.FactorWalkability, Weight: intPtr(9)},
				{FactorID: registry.FactorNeighborhoodActivity, Weight: intPtr(6), Enabled: boolPtr(true)},
			},
		},
		{
			Name:        "first-time-buyer",
			Description: "Prioritize affordability and move-in readiness",
			Overrides: []Override{
				{FactorID: registry.FactorPriceFit, Weight: intPtr(10)},
				{FactorID: registry.FactorCrimeSafety, Weight: intPtr(8)},
				{FactorID: registry.FactorPropertyCondition, Weight: intPtr(7)},
			},
		},
		{
			Name:        LeadQualification,
			Description: "Fixed lead-grading weights; not user-editable",
			Overrides: []Override{
				{FactorID: registry.FactorLeadBudget, Weight: intPtr(8), Enabled: boolPtr(true)},
				{FactorID: registry.FactorLeadTimeline, Weight: intPtr(9), Enabled: boolPtr(true)},
				{FactorID: registry.FactorLeadEngagement, Weight: intPtr(7), Enabled: boolPtr(true)},
				{FactorID: registry.FactorLeadContact, Weight: intPtr(5), Enabled: boolPtr(true)},
				{FactorID: registry.FactorLeadRecency, Weight: intPtr(6), Enabled: boolPtr(true)},
			},
		},
	}
}

// Package scoring defines the data model shared by the weighted multi-factor
// scoring engine: factor definitions, preference profiles, attribute maps and
// score results. The engine itself lives in the subpackages (registry,
// normalize, engine, rank, preset); everything here is pure data.
package scoring

import "fmt"

// Category groups factors for filtering and display. It never affects
// computation.
type Category string

const (
	CategoryLocation    Category = "location"
	CategoryProperty    Category = "property"
	CategoryFinancial   Category = "financial"
	CategoryLifestyle   Category = "lifestyle"
	CategorySafety      Category = "safety"
	CategorySchools     Category = "schools"
	CategoryEnvironment Category = "environment"
	CategoryAmenities   Category = "amenities"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryLocation,
		CategoryProperty,
		CategoryFinancial,
		CategoryLifestyle,
		CategorySafety,
		CategorySchools,
		CategoryEnvironment,
		CategoryAmenities,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// DataSource describes where a factor's raw value originates.
type DataSource string

const (
	// SourceRaw values come straight off the scored entity's own record.
	SourceRaw DataSource = "raw-attribute"
	// SourceEnrichment values are supplied by external enrichment providers
	// (walkability, school ratings, flood zones, crime indices) ahead of
	// scoring. The engine never fetches them.
	SourceEnrichment DataSource = "enrichment-provided"
	// SourceDerived values are computed by an attribute assembler from
	// several underlying signals (e.g. lead engagement).
	SourceDerived DataSource = "derived"
)

// Scale declares how a factor's raw value maps onto the engine's common
// [0,10] scale. The normalizer dispatches on this.
type Scale string

const (
	// ScaleBoolean: true scores 10, false scores 0.
	ScaleBoolean Scale = "boolean"
	// ScaleIndex100: raw value already on 0-100; divided by 10.
	ScaleIndex100 Scale = "index-100"
	// ScaleRating5: raw value on the 1-5 rating scale; multiplied by 2.
	ScaleRating5 Scale = "rating-5"
	// ScaleBudget: price measured against the profile's budget range,
	// piecewise-linear between budget min and 110% of budget max.
	ScaleBudget Scale = "budget-relative"
	// ScaleCategorical: raw category code looked up in the factor's
	// category score table.
	ScaleCategorical Scale = "categorical"
)

// FactorDefinition is the immutable catalog entry for one scoring dimension.
// Definitions are owned by the factor registry; everything else consults the
// registry rather than hard-coding factor semantics.
type FactorDefinition struct {
	ID             string             `json:"id"`
	Category       Category           `json:"category"`
	Description    string             `json:"description"`
	Source         DataSource         `json:"dataSourceKind"`
	Scale          Scale              `json:"scale"`
	CategoryScores map[string]float64 `json:"categoryScores,omitempty"`
	DefaultWeight  int                `json:"defaultWeight"`
	DefaultEnabled bool               `json:"defaultEnabled"`
}

// Validate checks a definition is internally consistent before registration.
func (d FactorDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("factor id is required")
	}
	if !d.Category.Valid() {
		return fmt.Errorf("factor %q: unknown category %q", d.ID, d.Category)
	}
	if d.DefaultWeight < MinWeight || d.DefaultWeight > MaxWeight {
		return fmt.Errorf("factor %q: default weight %d outside [%d,%d]", d.ID, d.DefaultWeight, MinWeight, MaxWeight)
	}
	switch d.Scale {
	case ScaleBoolean, ScaleIndex100, ScaleRating5, ScaleBudget:
		if len(d.CategoryScores) > 0 {
			return fmt.Errorf("factor %q: category scores only apply to categorical factors", d.ID)
		}
	case ScaleCategorical:
		if len(d.CategoryScores) == 0 {
			return fmt.Errorf("factor %q: categorical factor needs a category score table", d.ID)
		}
		for code, score := range d.CategoryScores {
			if score < 0 || score > 10 {
				return fmt.Errorf("factor %q: category %q score %v outside [0,10]", d.ID, code, score)
			}
		}
	default:
		return fmt.Errorf("factor %q: unknown scale %q", d.ID, d.Scale)
	}
	return nil
}

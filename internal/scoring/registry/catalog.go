package registry

import "github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"

// Lead factor ids. The lead catalog is fixed: five derived signals assembled
// from the lead record, scored with the non-editable lead-qualification
// preset.
const (
	FactorLeadBudget     = "lead_budget"
	FactorLeadTimeline   = "lead_timeline"
	FactorLeadEngagement = "lead_engagement"
	FactorLeadContact    = "lead_contact"
	FactorLeadRecency    = "lead_recency"
)

// Listing factor ids.
const (
	FactorPriceFit             = "price_fit"
	FactorWalkability          = "walkability"
	FactorCommuteAccess        = "commute_access"
	FactorSchoolRating         = "school_rating"
	FactorCrimeSafety          = "crime_safety"
	FactorFloodZone            = "flood_zone"
	FactorAirQuality           = "air_quality"
	FactorPropertyCondition    = "property_condition"
	FactorPropertySize         = "property_size"
	FactorHasGarage            = "has_garage"
	FactorHasPool              = "has_pool"
	FactorMarketTrend          = "market_trend"
	FactorNeighborhoodActivity = "neighborhood_activity"
)

// FloodZoneScores maps FEMA flood zone classes onto the [0,10] scale.
// X is minimal risk, A-class zones carry mandatory insurance, V/VE are
// coastal high-hazard. Unmapped codes fail scoring rather than defaulting.
func FloodZoneScores() map[string]float64 {
	return map[string]float64{
		"X":  10,
		"B":  8,
		"C":  8,
		"D":  6,
		"A":  5,
		"AE": 4,
		"AH": 4,
		"AO": 4,
		"V":  1,
		"VE": 0,
	}
}

// TimelineScores maps a lead's purchase-timeline bracket onto [0,10].
// The bracket is derived from free-text timeline matching by the lead
// attribute assembler; "unspecified" is a real signal (no urgency
// indicated), distinct from a missing value.
func TimelineScores() map[string]float64 {
	return map[string]float64{
		"immediate":   10,
		"short_term":  7,
		"mid_term":    5,
		"long_term":   2,
		"unspecified": 0,
	}
}

// ListingFactors is the built-in, user-editable listing factor catalog.
func ListingFactors() []scoring.FactorDefinition {
	return []scoring.FactorDefinition{
		{
			ID:             FactorPriceFit,
			Category:       scoring.CategoryFinancial,
			Description:    "Asking price measured against your budget range",
			Source:         scoring.SourceRaw,
			Scale:          scoring.ScaleBudget,
			DefaultWeight:  8,
			DefaultEnabled: true,
		},
		{
			ID:             FactorWalkability,
			Category:       scoring.CategoryLocation,
			Description:    "Walk Score of the surrounding neighborhood",
			Source:         scoring.SourceEnrichment,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  6,
			DefaultEnabled: true,
		},
		{
			ID:             FactorCommuteAccess,
			Category:       scoring.CategoryLocation,
			Description:    "Transit and highway access for commuting",
			Source:         scoring.SourceEnrichment,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  5,
			DefaultEnabled: false,
		},
		{
			ID:             FactorSchoolRating,
			Category:       scoring.CategorySchools,
			Description:    "Assigned-school district rating",
			Source:         scoring.SourceEnrichment,
			Scale:          scoring.ScaleRating5,
			DefaultWeight:  7,
			DefaultEnabled: true,
		},
		{
			ID:             FactorCrimeSafety,
			Category:       scoring.CategorySafety,
			Description:    "Neighborhood crime-safety index",
			Source:         scoring.SourceEnrichment,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  7,
			DefaultEnabled: true,
		},
		{
			ID:             FactorFloodZone,
			Category:       scoring.CategoryEnvironment,
			Description:    "FEMA flood zone classification",
			Source:         scoring.SourceEnrichment,
			Scale:          scoring.ScaleCategorical,
			CategoryScores: FloodZoneScores(),
			DefaultWeight:  5,
			DefaultEnabled: true,
		},
		{
			ID:             FactorAirQuality,
			Category:       scoring.CategoryEnvironment,
			Description:    "Air quality index for the area",
			Source:         scoring.SourceEnrichment,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  4,
			DefaultEnabled: false,
		},
		{
			ID:             FactorPropertyCondition,
			Category:       scoring.CategoryProperty,
			Description:    "Overall condition rating from the listing",
			Source:         scoring.SourceRaw,
			Scale:          scoring.ScaleRating5,
			DefaultWeight:  6,
			DefaultEnabled: true,
		},
		{
			ID:             FactorPropertySize,
			Category:       scoring.CategoryProperty,
			Description:    "Living area relative to comparable listings",
			Source:         scoring.SourceDerived,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  4,
			DefaultEnabled: false,
		},
		{
			ID:             FactorHasGarage,
			Category:       scoring.CategoryAmenities,
			Description:    "Garage on the property",
			Source:         scoring.SourceRaw,
			Scale:          scoring.ScaleBoolean,
			DefaultWeight:  4,
			DefaultEnabled: true,
		},
		{
			ID:             FactorHasPool,
			Category:       scoring.CategoryAmenities,
			Description:    "Pool on the property",
			Source:         scoring.SourceRaw,
			Scale:          scoring.ScaleBoolean,
			DefaultWeight:  3,
			DefaultEnabled: false,
		},
		{
			ID:             FactorMarketTrend,
			Category:       scoring.CategoryFinancial,
			Description:    "Local market appreciation trend estimate",
			Source:         scoring.SourceEnrichment,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  5,
			DefaultEnabled: false,
		},
		{
			ID:             FactorNeighborhoodActivity,
			Category:       scoring.CategoryLifestyle,
			Description:    "Dining, shopping and nightlife nearby",
			Source:         scoring.SourceEnrichment,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  4,
			DefaultEnabled: false,
		},
	}
}

// LeadFactors is the fixed lead-grading catalog. All five factors are
// enabled; the weights here are the grading weights and are not
// user-editable.
func LeadFactors() []scoring.FactorDefinition {
	return []scoring.FactorDefinition{
		{
			ID:             FactorLeadBudget,
			Category:       scoring.CategoryFinancial,
			Description:    "Stated budget and its purchasing power",
			Source:         scoring.SourceDerived,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  8,
			DefaultEnabled: true,
		},
		{
			ID:             FactorLeadTimeline,
			Category:       scoring.CategoryLifestyle,
			Description:    "Purchase timeline urgency",
			Source:         scoring.SourceDerived,
			Scale:          scoring.ScaleCategorical,
			CategoryScores: TimelineScores(),
			DefaultWeight:  9,
			DefaultEnabled: true,
		},
		{
			ID:             FactorLeadEngagement,
			Category:       scoring.CategoryLifestyle,
			Description:    "Property views, email opens and attended showings",
			Source:         scoring.SourceDerived,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  7,
			DefaultEnabled: true,
		},
		{
			ID:             FactorLeadContact,
			Category:       scoring.CategoryLifestyle,
			Description:    "Contact completeness (dialable phone, email)",
			Source:         scoring.SourceDerived,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  5,
			DefaultEnabled: true,
		},
		{
			ID:             FactorLeadRecency,
			Category:       scoring.CategoryLifestyle,
			Description:    "Time since last contact",
			Source:         scoring.SourceDerived,
			Scale:          scoring.ScaleIndex100,
			DefaultWeight:  6,
			DefaultEnabled: true,
		},
	}
}

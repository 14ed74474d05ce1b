package service

import (
	"strings"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
)

// AssembleAttributes maps a listing row onto the engine's attribute map.
// Absent columns simply stay out of the map; the normalizer substitutes the
// missing-data midpoint and flags the factor.
func AssembleAttributes(listing *repository.Listing) scoring.AttributeMap {
	attrs := scoring.AttributeMap{
		registry.FactorPriceFit: scoring.Number(listing.Price),
	}

	putNumber(attrs, registry.FactorWalkability, listing.WalkScore)
	putNumber(attrs, registry.FactorCommuteAccess, listing.CommuteScore)
	putNumber(attrs, registry.FactorSchoolRating, listing.SchoolRating)
	putNumber(attrs, registry.FactorCrimeSafety, listing.CrimeSafetyIndex)
	putNumber(attrs, registry.FactorAirQuality, listing.AirQualityIndex)
	putNumber(attrs, registry.FactorPropertyCondition, listing.ConditionRating)
	putNumber(attrs, registry.FactorPropertySize, listing.SizePercentile)
	putNumber(attrs, registry.FactorMarketTrend, listing.MarketTrendIndex)
	putNumber(attrs, registry.FactorNeighborhoodActivity, listing.NeighborhoodActivity)

	if listing.FloodZone != nil {
		attrs[registry.FactorFloodZone] = scoring.CategoryCode(strings.ToUpper(strings.TrimSpace(*listing.FloodZone)))
	}
	if listing.HasGarage != nil {
		attrs[registry.FactorHasGarage] = scoring.Boolean(*listing.HasGarage)
	}
	if listing.HasPool != nil {
		attrs[registry.FactorHasPool] = scoring.Boolean(*listing.HasPool)
	}

	return attrs
}

func putNumber(attrs scoring.AttributeMap, factorID string, v *float64) {
	if v != nil {
		attrs[factorID] = scoring.Number(*v)
	}
}

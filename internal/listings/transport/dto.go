package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateListingRequest is the request body for adding a listing.
type CreateListingRequest struct {
	Address           string   `json:"address" validate:"required,min=1,max=300"`
	City              string   `json:"city" validate:"required,min=1,max=100"`
	PostalCode        string   `json:"postalCode,omitempty" validate:"max=20"`
	Price             float64  `json:"price" validate:"required,gt=0"`
	Bedrooms          int      `json:"bedrooms" validate:"min=0,max=50"`
	Bathrooms         float64  `json:"bathrooms" validate:"min=0,max=50"`
	LivingAreaSqft    *float64 `json:"livingAreaSqft,omitempty" validate:"omitempty,gt=0"`
	ConditionRating   *float64 `json:"conditionRating,omitempty" validate:"omitempty,min=1,max=5"`
	HasGarage         *bool    `json:"hasGarage,omitempty"`
	HasPool           *bool    `json:"hasPool,omitempty"`
}

// EnrichmentRequest carries third-party enrichment values for a listing.
// All fields are optional; only supplied fields are updated.
type EnrichmentRequest struct {
	WalkScore            *float64 `json:"walkScore,omitempty" validate:"omitempty,min=0,max=100"`
	CommuteScore         *float64 `json:"commuteScore,omitempty" validate:"omitempty,min=0,max=100"`
	SchoolRating         *float64 `json:"schoolRating,omitempty" validate:"omitempty,min=1,max=5"`
	CrimeSafetyIndex     *float64 `json:"crimeSafetyIndex,omitempty" validate:"omitempty,min=0,max=100"`
	FloodZone            *string  `json:"floodZone,omitempty" validate:"omitempty,max=5"`
	AirQualityIndex      *float64 `json:"airQualityIndex,omitempty" validate:"omitempty,min=0,max=100"`
	MarketTrendIndex     *float64 `json:"marketTrendIndex,omitempty" validate:"omitempty,min=0,max=100"`
	NeighborhoodActivity *float64 `json:"neighborhoodActivity,omitempty" validate:"omitempty,min=0,max=100"`
	SizePercentile       *float64 `json:"sizePercentile,omitempty" validate:"omitempty,min=0,max=100"`
}

// RankListingsRequest ranks stored listings against a profile. An empty
// listingIds list ranks every listing.
type RankListingsRequest struct {
	ProfileID  uuid.UUID   `json:"profileId" validate:"required"`
	ListingIDs []uuid.UUID `json:"listingIds,omitempty" validate:"max=500"`
}

// ListingResponse is the response body for a listing.
type ListingResponse struct {
	ID              uuid.UUID          `json:"id"`
	Address         string             `json:"address"`
	City            string             `json:"city"`
	PostalCode      string             `json:"postalCode,omitempty"`
	Price           float64            `json:"price"`
	Bedrooms        int                `json:"bedrooms"`
	Bathrooms       float64            `json:"bathrooms"`
	LivingAreaSqft  *float64           `json:"livingAreaSqft,omitempty"`
	ConditionRating *float64           `json:"conditionRating,omitempty"`
	HasGarage       *bool              `json:"hasGarage,omitempty"`
	HasPool         *bool              `json:"hasPool,omitempty"`
	Enrichment      EnrichmentResponse `json:"enrichment"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// EnrichmentResponse mirrors the stored enrichment values.
type EnrichmentResponse struct {
	WalkScore            *float64 `json:"walkScore,omitempty"`
	CommuteScore         *float64 `json:"commuteScore,omitempty"`
	SchoolRating         *float64 `json:"schoolRating,omitempty"`
	CrimeSafetyIndex     *float64 `json:"crimeSafetyIndex,omitempty"`
	FloodZone            *string  `json:"floodZone,omitempty"`
	AirQualityIndex      *float64 `json:"airQualityIndex,omitempty"`
	MarketTrendIndex     *float64 `json:"marketTrendIndex,omitempty"`
	NeighborhoodActivity *float64 `json:"neighborhoodActivity,omitempty"`
	SizePercentile       *float64 `json:"sizePercentile,omitempty"`
}

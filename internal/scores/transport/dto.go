package transport

import (
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"

	"github.com/google/uuid"
)

// RegisterFactorRequest is the request body for registering a custom factor.
type RegisterFactorRequest struct {
	ID             string             `json:"id" validate:"required,min=1,max=100"`
	Category       string             `json:"category" validate:"required"`
	Description    string             `json:"description,omitempty" validate:"max=500"`
	Source         string             `json:"source" validate:"required,oneof=raw-attribute enrichment-provided derived"`
	Scale          string             `json:"scale" validate:"required,oneof=boolean index-100 rating-5 budget-relative categorical"`
	CategoryScores map[string]float64 `json:"categoryScores,omitempty"`
	DefaultWeight  int                `json:"defaultWeight" validate:"required,factorweight"`
	DefaultEnabled bool               `json:"defaultEnabled"`
}

// FactorResponse describes one factor definition.
type FactorResponse struct {
	ID             string             `json:"id"`
	Category       string             `json:"category"`
	Description    string             `json:"description,omitempty"`
	Source         string             `json:"source"`
	Scale          string             `json:"scale"`
	CategoryScores map[string]float64 `json:"categoryScores,omitempty"`
	DefaultWeight  int                `json:"defaultWeight"`
	DefaultEnabled bool               `json:"defaultEnabled"`
}

// ScoreRequest scores one entity's attributes against a stored profile.
type ScoreRequest struct {
	EntityID   string               `json:"entityId" validate:"required,min=1"`
	ProfileID  uuid.UUID            `json:"profileId" validate:"required"`
	Attributes scoring.AttributeMap `json:"attributes" validate:"required"`
}

// RankEntityDTO is one entity in a batch ranking request.
type RankEntityDTO struct {
	EntityID   string               `json:"entityId" validate:"required,min=1"`
	Attributes scoring.AttributeMap `json:"attributes" validate:"required"`
}

// RankRequest ranks a batch of entities against a stored profile.
type RankRequest struct {
	ProfileID uuid.UUID       `json:"profileId" validate:"required"`
	Entities  []RankEntityDTO `json:"entities" validate:"required,min=1,max=500,dive"`
}

// FailureDTO reports one entity that could not be scored.
type FailureDTO struct {
	EntityID string `json:"entityId"`
	Code     string `json:"code,omitempty"`
	Reason   string `json:"reason"`
}

// RankResponse is the ordered batch ranking result.
type RankResponse struct {
	Scores   []scoring.AggregateScore `json:"scores"`
	Failures []FailureDTO             `json:"failures"`
}

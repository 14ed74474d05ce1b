package transport

import (
	"time"

	"github.com/google/uuid"
)

// FactorSelectionDTO is one factor row in a profile request or response.
type FactorSelectionDTO struct {
	FactorID string `json:"factorId" validate:"required"`
	Weight   int    `json:"weight" validate:"required,factorweight"`
	Enabled  bool   `json:"enabled"`
}

// BudgetDTO is the buyer's budget window.
type BudgetDTO struct {
	Min float64 `json:"min" validate:"gte=0"`
	Max float64 `json:"max" validate:"gtfield=Min"`
}

// CreateProfileRequest is the request body for creating a profile.
// Omitting factors seeds the profile with the catalog defaults.
type CreateProfileRequest struct {
	OwnerID uuid.UUID            `json:"ownerId" validate:"required"`
	Factors []FactorSelectionDTO `json:"factors,omitempty" validate:"omitempty,dive"`
	Budget  *BudgetDTO           `json:"budget,omitempty"`
}

// UpdateProfileRequest replaces a profile's factor selections and budget.
type UpdateProfileRequest struct {
	Factors []FactorSelectionDTO `json:"factors" validate:"required,min=1,dive"`
	Budget  *BudgetDTO           `json:"budget,omitempty"`
}

// ApplyPresetRequest names the preset to merge onto the profile.
type ApplyPresetRequest struct {
	Preset string `json:"preset" validate:"required"`
}

// ProfileResponse is the response body for a preference profile.
type ProfileResponse struct {
	ID         uuid.UUID            `json:"id"`
	OwnerID    uuid.UUID            `json:"ownerId"`
	Factors    []FactorSelectionDTO `json:"factors"`
	Budget     *BudgetDTO           `json:"budget,omitempty"`
	PresetName *string              `json:"presetName,omitempty"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// PresetOverrideDTO is one factor override inside a preset.
type PresetOverrideDTO struct {
	FactorID string `json:"factorId"`
	Weight   *int   `json:"weight,omitempty"`
	Enabled  *bool  `json:"enabled,omitempty"`
}

// PresetResponse describes one available preset.
type PresetResponse struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Reserved    bool                `json:"reserved"`
	Overrides   []PresetOverrideDTO `json:"overrides"`
}

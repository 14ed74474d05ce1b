package scoring

import (
	"time"

	"github.com/google/uuid"
)

// Weight bounds for a single factor.
const (
	MinWeight = 1
	MaxWeight = 10
)

// FactorSelection is one (factor, weight, enabled) triple in a profile.
// Order within the profile is preserved and determines breakdown order.
type FactorSelection struct {
	FactorID string `json:"factorId"`
	Weight   int    `json:"weight"`
	Enabled  bool   `json:"enabled"`
}

// BudgetRange is the buyer's budget window used by budget-relative factors.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// PreferenceProfile is a user's or the system's chosen set of enabled
// factors and weights. The engine only ever reads profiles; mutation happens
// through explicit factor edits or preset application upstream.
type PreferenceProfile struct {
	ID             uuid.UUID            `json:"id"`
	Owner          uuid.UUID            `json:"owner"`
	Factors        []FactorSelection    `json:"factors"`
	Budget         *BudgetRange         `json:"budget,omitempty"`
	Classification ClassificationScheme `json:"-"`
	PresetName     *string              `json:"presetName"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// Validate rejects profiles that cannot be scored: every weight must be in
// [MinWeight,MaxWeight] and at least one factor must be enabled. A profile
// with zero enabled factors has no valid total and must fail here, never
// silently score zero.
func (p PreferenceProfile) Validate() error {
	enabled := 0
	for _, f := range p.Factors {
		if f.Weight < MinWeight || f.Weight > MaxWeight {
			return ErrInvalidProfile("factor " + f.FactorID + ": weight outside the 1-10 range")
		}
		if f.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return ErrInvalidProfile("profile has no enabled factors")
	}
	return nil
}

// EnabledFactors returns the enabled selections in profile order.
func (p PreferenceProfile) EnabledFactors() []FactorSelection {
	out := make([]FactorSelection, 0, len(p.Factors))
	for _, f := range p.Factors {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

// Clone returns a deep copy so preset application never aliases the input.
func (p PreferenceProfile) Clone() PreferenceProfile {
	out := p
	out.Factors = make([]FactorSelection, len(p.Factors))
	copy(out.Factors, p.Factors)
	if p.Budget != nil {
		budget := *p.Budget
		out.Budget = &budget
	}
	if p.PresetName != nil {
		name := *p.PresetName
		out.PresetName = &name
	}
	out.Classification = p.Classification.clone()
	return out
}

// ClassificationTier is one labeled band on the percentage scale.
type ClassificationTier struct {
	Label    string  `json:"label"`
	MinScore float64 `json:"minScore"`
}

// ClassificationScheme maps a total score onto a domain label. Tiers are
// ordered by descending MinScore; the last tier should have MinScore 0 so
// every score classifies.
type ClassificationScheme struct {
	Name  string               `json:"name"`
	Tiers []ClassificationTier `json:"tiers"`
}

func (s ClassificationScheme) clone() ClassificationScheme {
	out := s
	out.Tiers = make([]ClassificationTier, len(s.Tiers))
	copy(out.Tiers, s.Tiers)
	return out
}

// IsZero reports whether no scheme was declared.
func (s ClassificationScheme) IsZero() bool { return len(s.Tiers) == 0 }

// Classify returns the label of the first tier whose floor the score meets.
func (s ClassificationScheme) Classify(total float64) string {
	for _, tier := range s.Tiers {
		if total >= tier.MinScore {
			return tier.Label
		}
	}
	if len(s.Tiers) > 0 {
		return s.Tiers[len(s.Tiers)-1].Label
	}
	return ""
}

// TopTier returns the label of the highest band, or "" for an empty scheme.
func (s ClassificationScheme) TopTier() string {
	if len(s.Tiers) == 0 {
		return ""
	}
	return s.Tiers[0].Label
}

// LeadClassification is the fixed hot/warm/cold scheme for lead grading.
func LeadClassification() ClassificationScheme {
	return ClassificationScheme{
		Name: "lead",
		Tiers: []ClassificationTier{
			{Label: "hot", MinScore: 70},
			{Label: "warm", MinScore: 40},
			{Label: "cold", MinScore: 0},
		},
	}
}

// ListingClassification is the default match-quality scheme for listings.
func ListingClassification() ClassificationScheme {
	return ClassificationScheme{
		Name: "listing",
		Tiers: []ClassificationTier{
			{Label: "prime", MinScore: 75},
			{Label: "strong", MinScore: 50},
			{Label: "fair", MinScore: 25},
			{Label: "weak", MinScore: 0},
		},
	}
}

// GradeFor maps a total score onto the fixed A-F letter grade cut points.
func GradeFor(total float64) string {
	switch {
	case total >= 80:
		return "A"
	case total >= 60:
		return "B"
	case total >= 40:
		return "C"
	case total >= 20:
		return "D"
	default:
		return "F"
	}
}

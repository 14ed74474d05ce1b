package scoring

import "math"

// FactorScore is the per-factor line of a scoring breakdown. RawValue is
// echoed back for audit so a caller can always see what the engine saw.
type FactorScore struct {
	FactorID        string  `json:"factorId"`
	RawValue        Value   `json:"rawValue"`
	NormalizedScore float64 `json:"normalizedScore"`
	Weight          int     `json:"weight"`
	WeightedScore   float64 `json:"weightedScore"`
	MaxPossible     float64 `json:"maxPossible"`
	MissingData     bool    `json:"missingData"`
}

// Ratio returns weightedScore/maxPossible, the factor's fill level.
func (f FactorScore) Ratio() float64 {
	if f.MaxPossible == 0 {
		return 0
	}
	return f.WeightedScore / f.MaxPossible
}

// AggregateScore is the complete result of scoring one entity against one
// profile. It is a pure function of (AttributeMap, PreferenceProfile) and is
// never persisted by the engine itself.
type AggregateScore struct {
	EntityID       string        `json:"entityId"`
	TotalScore     float64       `json:"totalScore"`
	Grade          string        `json:"grade"`
	Classification string        `json:"classification"`
	Breakdown      []FactorScore `json:"breakdown"`
	Recommendation string        `json:"recommendation"`
	Rank           *int          `json:"rank,omitempty"`
}

// Round1 rounds to one decimal place. Normalized scores are rounded before
// weighting so breakdowns reproduce across platforms.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places, the precision of total scores.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds v to [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

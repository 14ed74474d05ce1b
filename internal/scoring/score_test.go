package scoring

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAggregateScore_JSONRoundTrip(t *testing.T) {
	rank := 3
	original := AggregateScore{
		EntityID:       "listing-42",
		TotalScore:     71.25,
		Grade:          "B",
		Classification: "strong",
		Breakdown: []FactorScore{
			{
				FactorID:        "price_fit",
				RawValue:        Number(425000),
				NormalizedScore: 6.5,
				Weight:          8,
				WeightedScore:   52,
				MaxPossible:     80,
			},
			{
				FactorID:        "flood_zone",
				RawValue:        CategoryCode("AE"),
				NormalizedScore: 4,
				Weight:          5,
				WeightedScore:   20,
				MaxPossible:     50,
			},
			{
				FactorID:        "has_garage",
				RawValue:        Boolean(true),
				NormalizedScore: 10,
				Weight:          4,
				WeightedScore:   40,
				MaxPossible:     40,
			},
			{
				FactorID:        "school_rating",
				RawValue:        Value{},
				NormalizedScore: 5,
				Weight:          7,
				WeightedScore:   35,
				MaxPossible:     70,
				MissingData:     true,
			},
		},
		Recommendation: "Follow up on the weakest dimension: FEMA flood zone classification.",
		Rank:           &rank,
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded AggregateScore
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("round trip changed the score\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestFactorScore_Ratio(t *testing.T) {
	fs := FactorScore{WeightedScore: 45, MaxPossible: 60}
	if got := fs.Ratio(); got != 0.75 {
		t.Fatalf("expected ratio 0.75, got %v", got)
	}

	zero := FactorScore{}
	if got := zero.Ratio(); got != 0 {
		t.Fatalf("expected 0 for zero max, got %v", got)
	}
}

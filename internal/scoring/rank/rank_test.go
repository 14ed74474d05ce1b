package rank

import (
	"context"
	"testing"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
)

func newTestRanker(t *testing.T) *Ranker {
	t.Helper()
	return New(engine.New(registry.NewWithDefaults(), nil), nil)
}

func walkProfile() scoring.PreferenceProfile {
	return scoring.PreferenceProfile{
		Factors: []scoring.FactorSelection{
			{FactorID: registry.FactorWalkability, Weight: 6, Enabled: true},
		},
	}
}

func walkEntity(id string, walkability float64) Entity {
	return Entity{
		ID:         id,
		Attributes: scoring.AttributeMap{registry.FactorWalkability: scoring.Number(walkability)},
	}
}

func TestRankBatch_OrdersByScoreDescending(t *testing.T) {
	r := newTestRanker(t)

	entities := []Entity{
		walkEntity("mid", 50),
		walkEntity("best", 95),
		walkEntity("worst", 10),
	}

	result, err := r.RankBatch(context.Background(), entities, walkProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(result.Scores))
	}

	wantOrder := []string{"best", "mid", "worst"}
	for i, want := range wantOrder {
		got := result.Scores[i]
		if got.EntityID != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got.EntityID)
		}
		if got.Rank == nil || *got.Rank != i+1 {
			t.Fatalf("position %d: expected rank %d, got %v", i, i+1, got.Rank)
		}
	}
}

func TestRankBatch_TiesBreakByEntityID(t *testing.T) {
	r := newTestRanker(t)

	entities := []Entity{
		walkEntity("zulu", 70),
		walkEntity("alpha", 70),
		walkEntity("mike", 70),
	}

	result, err := r.RankBatch(context.Background(), entities, walkProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantOrder := []string{"alpha", "mike", "zulu"}
	for i, want := range wantOrder {
		if result.Scores[i].EntityID != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, result.Scores[i].EntityID)
		}
	}
}

func TestRankBatch_IsDeterministic(t *testing.T) {
	r := newTestRanker(t)

	entities := []Entity{
		walkEntity("b", 80),
		walkEntity("a", 80),
		walkEntity("c", 40),
		walkEntity("d", 90),
	}

	first, err := r.RankBatch(context.Background(), entities, walkProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for run := 0; run < 5; run++ {
		again, err := r.RankBatch(context.Background(), entities, walkProfile())
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", run, err)
		}
		for i := range first.Scores {
			if again.Scores[i].EntityID != first.Scores[i].EntityID {
				t.Fatalf("run %d: order changed at position %d: %q vs %q",
					run, i, again.Scores[i].EntityID, first.Scores[i].EntityID)
			}
		}
	}
}

func TestRankBatch_FailureIsolatesOneEntity(t *testing.T) {
	r := newTestRanker(t)

	profile := scoring.PreferenceProfile{
		Factors: []scoring.FactorSelection{
			{FactorID: registry.FactorWalkability, Weight: 6, Enabled: true},
			{FactorID: registry.FactorFloodZone, Weight: 5, Enabled: true},
		},
	}

	good := func(id string, walk float64, zone string) Entity {
		return Entity{ID: id, Attributes: scoring.AttributeMap{
			registry.FactorWalkability: scoring.Number(walk),
			registry.FactorFloodZone:   scoring.CategoryCode(zone),
		}}
	}

	entities := []Entity{
		good("ok-1", 90, "X"),
		good("bad", 80, "Z9"), // unmapped flood zone code
		good("ok-2", 40, "AE"),
	}

	result, err := r.RankBatch(context.Background(), entities, profile)
	if err != nil {
		t.Fatalf("a per-entity failure must not abort the batch: %v", err)
	}

	if len(result.Scores) != 2 {
		t.Fatalf("expected 2 ranked entities, got %d", len(result.Scores))
	}
	if len(result.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(result.Failures))
	}

	failure := result.Failures[0]
	if failure.EntityID != "bad" {
		t.Fatalf("expected the failure on %q, got %q", "bad", failure.EntityID)
	}
	if failure.Code != scoring.CodeUnknownCategory {
		t.Fatalf("expected code %q, got %q", scoring.CodeUnknownCategory, failure.Code)
	}
	if failure.Reason == "" {
		t.Fatal("expected a human-readable failure reason")
	}

	// Ranks stay gapless over the successes only.
	for i, score := range result.Scores {
		if score.Rank == nil || *score.Rank != i+1 {
			t.Fatalf("expected gapless rank %d, got %v", i+1, score.Rank)
		}
	}
}

func TestRankBatch_InvalidProfileFailsWholeCall(t *testing.T) {
	r := newTestRanker(t)

	profile := scoring.PreferenceProfile{
		Factors: []scoring.FactorSelection{
			{FactorID: registry.FactorWalkability, Weight: 0, Enabled: true},
		},
	}

	_, err := r.RankBatch(context.Background(), []Entity{walkEntity("a", 50)}, profile)
	if err == nil {
		t.Fatal("expected the whole call to fail on an invalid profile")
	}
	if !apperr.HasCode(err, scoring.CodeInvalidProfile) {
		t.Fatalf("expected code %q, got %q", scoring.CodeInvalidProfile, apperr.CodeOf(err))
	}
}

func TestRankBatch_EmptyBatch(t *testing.T) {
	r := newTestRanker(t)

	result, err := r.RankBatch(context.Background(), nil, walkProfile())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Scores) != 0 || len(result.Failures) != 0 {
		t.Fatalf("expected an empty report, got %d scores / %d failures",
			len(result.Scores), len(result.Failures))
	}
}

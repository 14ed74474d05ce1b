package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scores/service"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/rank"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubProfiles struct {
	profile scoring.PreferenceProfile
	err     error
}

func (s stubProfiles) Get(ctx context.Context, id uuid.UUID) (scoring.PreferenceProfile, error) {
	if s.err != nil {
		return scoring.PreferenceProfile{}, s.err
	}
	return s.profile, nil
}

func newTestRouter(t *testing.T, profiles service.ProfileProvider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng := engine.New(registry.NewWithDefaults(), nil)
	svc := service.New(eng, rank.New(eng, nil), profiles)
	h := New(svc, validator.New())

	router := gin.New()
	h.RegisterFactorRoutes(router.Group("/api/v1/factors"))
	h.RegisterScoringRoutes(router.Group("/api/v1/scoring"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestListFactors(t *testing.T) {
	router := newTestRouter(t, stubProfiles{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/factors", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var factors []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &factors); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := len(registry.ListingFactors()) + len(registry.LeadFactors())
	if len(factors) != want {
		t.Fatalf("expected %d factors, got %d", want, len(factors))
	}
}

func TestListFactors_FilterByCategory(t *testing.T) {
	router := newTestRouter(t, stubProfiles{})

	rec := doJSON(t, router, http.MethodGet, "/api/v1/factors?category=amenities", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var factors []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &factors); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(factors) != 2 {
		t.Fatalf("expected 2 amenity factors, got %d", len(factors))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/v1/factors?category=bogus", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an unknown category, got %d", rec.Code)
	}
}

func TestRegisterFactor(t *testing.T) {
	router := newTestRouter(t, stubProfiles{})

	body := map[string]any{
		"id":            "noise_level",
		"category":      "environment",
		"description":   "Street and air-traffic noise",
		"source":        "enrichment-provided",
		"scale":         "index-100",
		"defaultWeight": 4,
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/factors", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Registering the same id again conflicts.
	rec = doJSON(t, router, http.MethodPost, "/api/v1/factors", body)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterFactor_RejectsBadWeight(t *testing.T) {
	router := newTestRouter(t, stubProfiles{})

	body := map[string]any{
		"id":            "noise_level",
		"category":      "environment",
		"source":        "enrichment-provided",
		"scale":         "index-100",
		"defaultWeight": 15,
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/factors", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestScore(t *testing.T) {
	profile := scoring.PreferenceProfile{
		ID: uuid.New(),
		Factors: []scoring.FactorSelection{
			{FactorID: registry.FactorWalkability, Weight: 6, Enabled: true},
		},
	}
	router := newTestRouter(t, stubProfiles{profile: profile})

	body := map[string]any{
		"entityId":  "listing-42",
		"profileId": profile.ID,
		"attributes": map[string]any{
			"walkability": 80,
		},
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/scoring/score", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var score scoring.AggregateScore
	if err := json.Unmarshal(rec.Body.Bytes(), &score); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if score.EntityID != "listing-42" {
		t.Fatalf("expected entity listing-42, got %q", score.EntityID)
	}
	if score.TotalScore != 80 {
		t.Fatalf("expected total 80, got %v", score.TotalScore)
	}
	if len(score.Breakdown) != 1 {
		t.Fatalf("expected 1 breakdown line, got %d", len(score.Breakdown))
	}
}

func TestScore_UnknownProfile(t *testing.T) {
	router := newTestRouter(t, stubProfiles{err: apperr.NotFound("profile not found")})

	body := map[string]any{
		"entityId":   "listing-42",
		"profileId":  uuid.New(),
		"attributes": map[string]any{"walkability": 80},
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/scoring/score", body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRank_ReportsFailuresAlongsideScores(t *testing.T) {
	profile := scoring.PreferenceProfile{
		ID: uuid.New(),
		Factors: []scoring.FactorSelection{
			{FactorID: registry.FactorFloodZone, Weight: 5, Enabled: true},
		},
	}
	router := newTestRouter(t, stubProfiles{profile: profile})

	body := map[string]any{
		"profileId": profile.ID,
		"entities": []map[string]any{
			{"entityId": "good", "attributes": map[string]any{"flood_zone": "X"}},
			{"entityId": "bad", "attributes": map[string]any{"flood_zone": "??"}},
		},
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/scoring/rank", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Scores   []scoring.AggregateScore `json:"scores"`
		Failures []struct {
			EntityID string `json:"entityId"`
			Code     string `json:"code"`
		} `json:"failures"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.Scores) != 1 || resp.Scores[0].EntityID != "good" {
		t.Fatalf("expected one ranked entity %q, got %+v", "good", resp.Scores)
	}
	if len(resp.Failures) != 1 || resp.Failures[0].EntityID != "bad" {
		t.Fatalf("expected one failure for %q, got %+v", "bad", resp.Failures)
	}
	if resp.Failures[0].Code != scoring.CodeUnknownCategory {
		t.Fatalf("expected failure code %q, got %q", scoring.CodeUnknownCategory, resp.Failures[0].Code)
	}
}

func TestRank_RejectsEmptyBatch(t *testing.T) {
	router := newTestRouter(t, stubProfiles{})

	body := map[string]any{
		"profileId": uuid.New(),
		"entities":  []map[string]any{},
	}

	rec := doJSON(t, router, http.MethodPost, "/api/v1/scoring/rank", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

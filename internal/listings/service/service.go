// Package service contains the listings business logic: CRUD, enrichment
// intake and ranking stored listings against a preference profile.
package service

import (
	"context"
	"time"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/events"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/listings/transport"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/rank"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"

	"github.com/google/uuid"
)

// ProfileProvider loads stored preference profiles.
type ProfileProvider interface {
	Get(ctx context.Context, id uuid.UUID) (scoring.PreferenceProfile, error)
}

// Service implements listings use cases.
type Service struct {
	repo     *repository.Repository
	ranker   *rank.Ranker
	profiles ProfileProvider
	bus      events.Bus
	log      *logger.Logger
}

// New creates a new listings service.
func New(repo *repository.Repository, ranker *rank.Ranker, profiles ProfileProvider, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, ranker: ranker, profiles: profiles, bus: bus, log: log}
}

// Create adds a listing.
func (s *Service) Create(ctx context.Context, req transport.CreateListingRequest) (*repository.Listing, error) {
	now := time.Now().UTC()
	listing := &repository.Listing{
		ID:              uuid.New(),
		Address:         req.Address,
		City:            req.City,
		Price:           req.Price,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		LivingAreaSqft:  req.LivingAreaSqft,
		ConditionRating: req.ConditionRating,
		HasGarage:       req.HasGarage,
		HasPool:         req.HasPool,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.PostalCode != "" {
		listing.PostalCode = &req.PostalCode
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		s.log.DatabaseError("listings.create", err)
		return nil, apperr.Internal("failed to create listing")
	}

	s.bus.Publish(ctx, events.ListingCreated{
		BaseEvent: events.NewBaseEvent(),
		ListingID: listing.ID,
	})
	return listing, nil
}

// Get returns one listing by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*repository.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all listings, newest first.
func (s *Service) List(ctx context.Context) ([]repository.Listing, error) {
	return s.repo.List(ctx, nil)
}

// Delete removes a listing.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// UpdateEnrichment merges enrichment provider values onto a listing and
// announces which fields changed.
func (s *Service) UpdateEnrichment(ctx context.Context, id uuid.UUID, req transport.EnrichmentRequest) (*repository.Listing, error) {
	listing, err := s.repo.UpdateEnrichment(ctx, id, repository.Enrichment{
		WalkScore:            req.WalkScore,
		CommuteScore:         req.CommuteScore,
		SchoolRating:         req.SchoolRating,
		CrimeSafetyIndex:     req.CrimeSafetyIndex,
		FloodZone:            req.FloodZone,
		AirQualityIndex:      req.AirQualityIndex,
		MarketTrendIndex:     req.MarketTrendIndex,
		NeighborhoodActivity: req.NeighborhoodActivity,
		SizePercentile:       req.SizePercentile,
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.ListingEnriched{
		BaseEvent: events.NewBaseEvent(),
		ListingID: listing.ID,
		Fields:    enrichedFields(req),
	})
	return listing, nil
}

// Rank scores stored listings against a profile and returns them ordered
// best-first. Listings that fail to score (e.g. an unmapped flood zone
// code) are reported individually and do not sink the batch.
func (s *Service) Rank(ctx context.Context, req transport.RankListingsRequest) (rank.Result, error) {
	profile, err := s.profiles.Get(ctx, req.ProfileID)
	if err != nil {
		return rank.Result{}, err
	}

	listings, err := s.repo.List(ctx, req.ListingIDs)
	if err != nil {
		return rank.Result{}, err
	}

	entities := make([]rank.Entity, 0, len(listings))
	for i := range listings {
		entities = append(entities, rank.Entity{
			ID:         listings[i].ID.String(),
			Attributes: AssembleAttributes(&listings[i]),
		})
	}

	return s.ranker.RankBatch(ctx, entities, profile)
}

func enrichedFields(req transport.EnrichmentRequest) []string {
	var fields []string
	add := func(name string, set bool) {
		if set {
			fields = append(fields, name)
		}
	}
	add("walkScore", req.WalkScore != nil)
	add("commuteScore", req.CommuteScore != nil)
	add("schoolRating", req.SchoolRating != nil)
	add("crimeSafetyIndex", req.CrimeSafetyIndex != nil)
	add("floodZone", req.FloodZone != nil)
	add("airQualityIndex", req.AirQualityIndex != nil)
	add("marketTrendIndex", req.MarketTrendIndex != nil)
	add("neighborhoodActivity", req.NeighborhoodActivity != nil)
	add("sizePercentile", req.SizePercentile != nil)
	return fields
}

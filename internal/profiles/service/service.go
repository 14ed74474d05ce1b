// Package service contains the preference profile business logic.
package service

import (
	"context"
	"time"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/events"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/profiles/transport"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/preset"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/registry"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"

	"github.com/google/uuid"
)

// Repository defines the persistence operations the service needs.
type Repository interface {
	Create(ctx context.Context, profile scoring.PreferenceProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (scoring.PreferenceProfile, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]scoring.PreferenceProfile, error)
	Update(ctx context.Context, profile scoring.PreferenceProfile) (scoring.PreferenceProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements preference profile use cases.
type Service struct {
	repo    Repository
	reg     *registry.Registry
	presets *preset.Library
	bus     events.Bus
	log     *logger.Logger
}

// New creates a new profiles service.
func New(repo Repository, reg *registry.Registry, presets *preset.Library, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, reg: reg, presets: presets, bus: bus, log: log}
}

// Create builds and persists a new profile. An empty factor list seeds the
// profile with the listing catalog defaults.
func (s *Service) Create(ctx context.Context, req transport.CreateProfileRequest) (scoring.PreferenceProfile, error) {
	var factors []scoring.FactorSelection
	if len(req.Factors) == 0 {
		factors = registry.DefaultSelections(registry.ListingFactors())
	} else {
		var err error
		factors, err = s.toSelections(req.Factors)
		if err != nil {
			return scoring.PreferenceProfile{}, err
		}
	}

	now := time.Now().UTC()
	profile := scoring.PreferenceProfile{
		ID:        uuid.New(),
		Owner:     req.OwnerID,
		Factors:   factors,
		Budget:    toBudget(req.Budget),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := profile.Validate(); err != nil {
		return scoring.PreferenceProfile{}, err
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		s.log.DatabaseError("profiles.create", err)
		return scoring.PreferenceProfile{}, apperr.Internal("failed to create profile")
	}

	s.bus.Publish(ctx, events.ProfileCreated{
		BaseEvent: events.NewBaseEvent(),
		ProfileID: profile.ID,
		OwnerID:   profile.Owner,
	})
	return profile, nil
}

// Get returns one profile by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (scoring.PreferenceProfile, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByOwner returns the owner's profiles, newest first.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]scoring.PreferenceProfile, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Update replaces the profile's factors and budget. A manual edit clears the
// preset name: the profile no longer matches any named preset.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateProfileRequest) (scoring.PreferenceProfile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return scoring.PreferenceProfile{}, err
	}

	factors, err := s.toSelections(req.Factors)
	if err != nil {
		return scoring.PreferenceProfile{}, err
	}

	profile.Factors = factors
	profile.Budget = toBudget(req.Budget)
	profile.PresetName = nil
	if err := profile.Validate(); err != nil {
		return scoring.PreferenceProfile{}, err
	}

	updated, err := s.repo.Update(ctx, profile)
	if err != nil {
		return scoring.PreferenceProfile{}, err
	}

	s.publishUpdated(ctx, updated, "user_update")
	return updated, nil
}

// Delete removes a profile.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ApplyPreset merges a named preset onto the profile and persists the
// result. The lead-qualification preset is reserved for the grading
// pipeline and cannot be applied to user profiles.
func (s *Service) ApplyPreset(ctx context.Context, id uuid.UUID, name string) (scoring.PreferenceProfile, error) {
	if name == preset.LeadQualification {
		return scoring.PreferenceProfile{}, apperr.Validation("preset " + name + " is reserved").
			WithCode(scoring.CodeReservedPreset)
	}

	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return scoring.PreferenceProfile{}, err
	}

	applied, err := s.presets.Apply(profile, name)
	if err != nil {
		return scoring.PreferenceProfile{}, err
	}

	updated, err := s.repo.Update(ctx, applied)
	if err != nil {
		return scoring.PreferenceProfile{}, err
	}

	s.bus.Publish(ctx, events.PresetApplied{
		BaseEvent:  events.NewBaseEvent(),
		ProfileID:  updated.ID,
		OwnerID:    updated.Owner,
		PresetName: name,
	})
	s.publishUpdated(ctx, updated, "preset_applied")
	return updated, nil
}

// Presets returns the available presets for discovery.
func (s *Service) Presets() []transport.PresetResponse {
	names := s.presets.Names()
	out := make([]transport.PresetResponse, 0, len(names))
	for _, name := range names {
		p, err := s.presets.Get(name)
		if err != nil {
			continue
		}
		resp := transport.PresetResponse{
			Name:        p.Name,
			Description: p.Description,
			Reserved:    p.Name == preset.LeadQualification,
		}
		for _, o := range p.Overrides {
			resp.Overrides = append(resp.Overrides, transport.PresetOverrideDTO{
				FactorID: o.FactorID,
				Weight:   o.Weight,
				Enabled:  o.Enabled,
			})
		}
		out = append(out, resp)
	}
	return out
}

func (s *Service) publishUpdated(ctx context.Context, profile scoring.PreferenceProfile, source string) {
	s.bus.Publish(ctx, events.ProfileUpdated{
		BaseEvent: events.NewBaseEvent(),
		ProfileID: profile.ID,
		OwnerID:   profile.Owner,
		Source:    source,
	})
}

// toSelections validates every factor id against the registry and rejects
// duplicates within the request.
func (s *Service) toSelections(dtos []transport.FactorSelectionDTO) ([]scoring.FactorSelection, error) {
	seen := make(map[string]struct{}, len(dtos))
	out := make([]scoring.FactorSelection, 0, len(dtos))
	for _, dto := range dtos {
		if _, err := s.reg.Lookup(dto.FactorID); err != nil {
			return nil, err
		}
		if _, dup := seen[dto.FactorID]; dup {
			return nil, scoring.ErrDuplicateFactorID(dto.FactorID)
		}
		seen[dto.FactorID] = struct{}{}
		out = append(out, scoring.FactorSelection{
			FactorID: dto.FactorID,
			Weight:   dto.Weight,
			Enabled:  dto.Enabled,
		})
	}
	return out, nil
}

func toBudget(dto *transport.BudgetDTO) *scoring.BudgetRange {
	if dto == nil {
		return nil
	}
	return &scoring.BudgetRange{Min: dto.Min, Max: dto.Max}
}

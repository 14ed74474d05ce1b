// Package service contains the leads business logic: CRUD, engagement
// tracking and grading with the fixed lead-qualification factor set.
package service

import (
	"context"
	"time"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/events"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/repository"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/leads/transport"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring/engine"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/logger"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/phone"

	"github.com/google/uuid"
)

// Service implements leads use cases.
type Service struct {
	repo   *repository.Repository
	engine *engine.Engine
	bus    events.Bus
	log    *logger.Logger
}

// New creates a new leads service.
func New(repo *repository.Repository, eng *engine.Engine, bus events.Bus, log *logger.Logger) *Service {
	return &Service{repo: repo, engine: eng, bus: bus, log: log}
}

// Create adds a lead. The phone number, when present, is normalized to
// E.164 before storage.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (*repository.Lead, error) {
	now := time.Now().UTC()
	lead := &repository.Lead{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Email != "" {
		lead.Email = &req.Email
	}
	if req.Phone != "" {
		normalized := phone.NormalizeE164(req.Phone)
		lead.Phone = &normalized
	}
	if req.Source != "" {
		lead.Source = &req.Source
	}
	if req.TimelineText != "" {
		lead.TimelineText = &req.TimelineText
	}
	lead.Budget = req.Budget

	if err := s.repo.Create(ctx, lead); err != nil {
		s.log.DatabaseError("leads.create", err)
		return nil, apperr.Internal("failed to create lead")
	}

	s.bus.Publish(ctx, events.LeadCreated{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Source:    req.Source,
	})
	s.publishDataChanged(ctx, lead.ID, "import")
	return lead, nil
}

// Get returns one lead by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*repository.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all leads, newest first.
func (s *Service) List(ctx context.Context) ([]repository.Lead, error) {
	return s.repo.List(ctx)
}

// Delete removes a lead.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Update applies partial field updates and announces the data change so the
// scheduler can queue a re-grade.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateLeadRequest) (*repository.Lead, error) {
	fields := repository.UpdateFields{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Budget:       req.Budget,
		TimelineText: req.TimelineText,
	}
	if req.Phone != nil {
		normalized := phone.NormalizeE164(*req.Phone)
		fields.Phone = &normalized
	}

	lead, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	s.publishDataChanged(ctx, lead.ID, "user_update")
	return lead, nil
}

// RecordEngagement increments engagement counters and optionally stamps the
// last contact time.
func (s *Service) RecordEngagement(ctx context.Context, id uuid.UUID, req transport.EngagementRequest) (*repository.Lead, error) {
	var contactedAt *time.Time
	if req.ContactedNow {
		now := time.Now().UTC()
		contactedAt = &now
	}

	lead, err := s.repo.RecordEngagement(ctx, id, req.PropertyViews, req.EmailOpens, req.ShowingsAttended, contactedAt)
	if err != nil {
		return nil, err
	}

	s.publishDataChanged(ctx, lead.ID, "engagement")
	return lead, nil
}

// Score grades one lead with the fixed lead-qualification profile,
// persists the result and returns the full breakdown.
func (s *Service) Score(ctx context.Context, id uuid.UUID) (scoring.AggregateScore, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return scoring.AggregateScore{}, err
	}
	return s.grade(ctx, lead, time.Now().UTC())
}

// GradeAll re-grades every lead. Individual failures are logged and
// skipped; the sweep continues.
func (s *Service) GradeAll(ctx context.Context) (graded int, failed int, err error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		return 0, 0, err
	}

	now := time.Now().UTC()
	for i := range leads {
		if _, err := s.grade(ctx, &leads[i], now); err != nil {
			s.log.Error("lead grading failed", "lead_id", leads[i].ID.String(), "error", err.Error())
			failed++
			continue
		}
		graded++
	}
	return graded, failed, nil
}

func (s *Service) grade(ctx context.Context, lead *repository.Lead, now time.Time) (scoring.AggregateScore, error) {
	attrs := AssembleAttributes(lead, now)

	score, err := s.engine.ComputeScore(lead.ID.String(), attrs, GradingProfile())
	if err != nil {
		return scoring.AggregateScore{}, err
	}

	if err := s.repo.SaveScore(ctx, lead.ID, score.TotalScore, score.Grade, score.Classification, score.Recommendation, now); err != nil {
		return scoring.AggregateScore{}, err
	}

	s.bus.Publish(ctx, events.LeadGraded{
		BaseEvent:      events.NewBaseEvent(),
		LeadID:         lead.ID,
		TotalScore:     score.TotalScore,
		Grade:          score.Grade,
		Classification: score.Classification,
	})
	return score, nil
}

func (s *Service) publishDataChanged(ctx context.Context, leadID uuid.UUID, source string) {
	s.bus.Publish(ctx, events.LeadDataChanged{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    leadID,
		Source:    source,
	})
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leadNotFoundMsg = "lead not found"

// Lead represents the lead database model. Score columns hold the last
// persisted grading result and are nullable until the first grade.
type Lead struct {
	ID               uuid.UUID  `db:"id"`
	FirstName        string     `db:"first_name"`
	LastName         string     `db:"last_name"`
	Email            *string    `db:"email"`
	Phone            *string    `db:"phone"`
	Source           *string    `db:"source"`
	Budget           *float64   `db:"budget"`
	TimelineText     *string    `db:"timeline_text"`
	PropertyViews    int        `db:"property_views"`
	EmailOpens       int        `db:"email_opens"`
	ShowingsAttended int        `db:"showings_attended"`
	LastContactAt    *time.Time `db:"last_contact_at"`

	Score          *float64   `db:"score"`
	Grade          *string    `db:"grade"`
	Classification *string    `db:"classification"`
	Recommendation *string    `db:"recommendation"`
	ScoredAt       *time.Time `db:"scored_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const leadColumns = `id, first_name, last_name, email, phone, source, budget, timeline_text,
	property_views, email_opens, showings_attended, last_contact_at,
	score, grade, classification, recommendation, scored_at, created_at, updated_at`

// Repository provides database operations for leads.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new lead.
func (r *Repository) Create(ctx context.Context, lead *Lead) error {
	query := `
		INSERT INTO leads (
			id, first_name, last_name, email, phone, source, budget, timeline_text,
			property_views, email_opens, showings_attended, last_contact_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.pool.Exec(ctx, query,
		lead.ID, lead.FirstName, lead.LastName, lead.Email, lead.Phone, lead.Source,
		lead.Budget, lead.TimelineText, lead.PropertyViews, lead.EmailOpens,
		lead.ShowingsAttended, lead.LastContactAt, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

// GetByID retrieves a lead by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	var lead Lead
	err := r.pool.QueryRow(ctx, query, id).Scan(scanTargets(&lead)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(leadNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return &lead, nil
}

// List retrieves all leads, newest first.
func (r *Repository) List(ctx context.Context) ([]Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(scanTargets(&lead)...); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leads: %w", err)
	}
	return leads, nil
}

// ListIDs returns every lead id, for batch re-grades.
func (r *Repository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM leads ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan lead id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lead ids: %w", err)
	}
	return ids, nil
}

// Update applies partial field updates and returns the fresh row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fields UpdateFields) (*Lead, error) {
	query := `
		UPDATE leads SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			email = COALESCE($4, email),
			phone = COALESCE($5, phone),
			budget = COALESCE($6, budget),
			timeline_text = COALESCE($7, timeline_text),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + leadColumns

	var lead Lead
	err := r.pool.QueryRow(ctx, query, id,
		fields.FirstName, fields.LastName, fields.Email, fields.Phone,
		fields.Budget, fields.TimelineText,
	).Scan(scanTargets(&lead)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(leadNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return &lead, nil
}

// RecordEngagement increments engagement counters and optionally stamps the
// last contact time.
func (r *Repository) RecordEngagement(ctx context.Context, id uuid.UUID, views, opens, showings int, contactedAt *time.Time) (*Lead, error) {
	query := `
		UPDATE leads SET
			property_views = property_views + $2,
			email_opens = email_opens + $3,
			showings_attended = showings_attended + $4,
			last_contact_at = COALESCE($5, last_contact_at),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + leadColumns

	var lead Lead
	err := r.pool.QueryRow(ctx, query, id, views, opens, showings, contactedAt).Scan(scanTargets(&lead)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(leadNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to record engagement: %w", err)
	}
	return &lead, nil
}

// SaveScore persists a grading result on the lead row.
func (r *Repository) SaveScore(ctx context.Context, id uuid.UUID, total float64, grade, classification, recommendation string, scoredAt time.Time) error {
	query := `
		UPDATE leads SET
			score = $2, grade = $3, classification = $4, recommendation = $5, scored_at = $6
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, total, grade, classification, recommendation, scoredAt)
	if err != nil {
		return fmt.Errorf("failed to save lead score: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(leadNotFoundMsg)
	}
	return nil
}

// Delete removes a lead.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(leadNotFoundMsg)
	}
	return nil
}

// UpdateFields carries a partial lead update. Nil fields keep their value.
type UpdateFields struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	Budget       *float64
	TimelineText *string
}

func scanTargets(l *Lead) []interface{} {
	return []interface{}{
		&l.ID, &l.FirstName, &l.LastName, &l.Email, &l.Phone, &l.Source, &l.Budget,
		&l.TimelineText, &l.PropertyViews, &l.EmailOpens, &l.ShowingsAttended,
		&l.LastContactAt, &l.Score, &l.Grade, &l.Classification, &l.Recommendation,
		&l.ScoredAt, &l.CreatedAt, &l.UpdatedAt,
	}
}

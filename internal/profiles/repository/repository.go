package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileNotFoundMsg = "profile not found"

// Profile represents the preference profile database model. Factor
// selections are stored as a jsonb array to keep their order.
type Profile struct {
	ID         uuid.UUID  `db:"id"`
	OwnerID    uuid.UUID  `db:"owner_id"`
	Factors    []byte     `db:"factors"`
	BudgetMin  *float64   `db:"budget_min"`
	BudgetMax  *float64   `db:"budget_max"`
	PresetName *string    `db:"preset_name"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// Repository provides database operations for preference profiles.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new profiles repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new profile.
func (r *Repository) Create(ctx context.Context, profile scoring.PreferenceProfile) error {
	row, err := toRow(profile)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO preference_profiles (
			id, owner_id, factors, budget_min, budget_max, preset_name, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.pool.Exec(ctx, query,
		row.ID, row.OwnerID, row.Factors, row.BudgetMin, row.BudgetMax,
		row.PresetName, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (scoring.PreferenceProfile, error) {
	query := `SELECT id, owner_id, factors, budget_min, budget_max, preset_name, created_at, updated_at
		FROM preference_profiles WHERE id = $1`

	var row Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.OwnerID, &row.Factors, &row.BudgetMin, &row.BudgetMax,
		&row.PresetName, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return scoring.PreferenceProfile{}, apperr.NotFound(profileNotFoundMsg)
		}
		return scoring.PreferenceProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return fromRow(row)
}

// ListByOwner retrieves all profiles belonging to an owner, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]scoring.PreferenceProfile, error) {
	query := `SELECT id, owner_id, factors, budget_min, budget_max, preset_name, created_at, updated_at
		FROM preference_profiles WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []scoring.PreferenceProfile
	for rows.Next() {
		var row Profile
		if err := rows.Scan(
			&row.ID, &row.OwnerID, &row.Factors, &row.BudgetMin, &row.BudgetMax,
			&row.PresetName, &row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profile, err := fromRow(row)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	return profiles, nil
}

// Update replaces a profile's factors, budget and preset name. The
// repository owns the UpdatedAt timestamp.
func (r *Repository) Update(ctx context.Context, profile scoring.PreferenceProfile) (scoring.PreferenceProfile, error) {
	row, err := toRow(profile)
	if err != nil {
		return scoring.PreferenceProfile{}, err
	}

	query := `
		UPDATE preference_profiles
		SET factors = $2, budget_min = $3, budget_max = $4, preset_name = $5, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, factors, budget_min, budget_max, preset_name, created_at, updated_at`

	var out Profile
	err = r.pool.QueryRow(ctx, query, row.ID, row.Factors,
		row.BudgetMin, row.BudgetMax, row.PresetName).Scan(
		&out.ID, &out.OwnerID, &out.Factors, &out.BudgetMin, &out.BudgetMax,
		&out.PresetName, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return scoring.PreferenceProfile{}, apperr.NotFound(profileNotFoundMsg)
		}
		return scoring.PreferenceProfile{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return fromRow(out)
}

// Delete removes a profile.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM preference_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(profileNotFoundMsg)
	}
	return nil
}

func toRow(profile scoring.PreferenceProfile) (Profile, error) {
	factors, err := json.Marshal(profile.Factors)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to encode factors: %w", err)
	}

	row := Profile{
		ID:         profile.ID,
		OwnerID:    profile.Owner,
		Factors:    factors,
		PresetName: profile.PresetName,
		CreatedAt:  profile.CreatedAt,
		UpdatedAt:  profile.UpdatedAt,
	}
	if profile.Budget != nil {
		budgetMin, budgetMax := profile.Budget.Min, profile.Budget.Max
		row.BudgetMin = &budgetMin
		row.BudgetMax = &budgetMax
	}
	return row, nil
}

func fromRow(row Profile) (scoring.PreferenceProfile, error) {
	var factors []scoring.FactorSelection
	if err := json.Unmarshal(row.Factors, &factors); err != nil {
		return scoring.PreferenceProfile{}, fmt.Errorf("failed to decode factors: %w", err)
	}

	profile := scoring.PreferenceProfile{
		ID:         row.ID,
		Owner:      row.OwnerID,
		Factors:    factors,
		PresetName: row.PresetName,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.BudgetMin != nil && row.BudgetMax != nil {
		profile.Budget = &scoring.BudgetRange{Min: *row.BudgetMin, Max: *row.BudgetMax}
	}
	return profile, nil
}

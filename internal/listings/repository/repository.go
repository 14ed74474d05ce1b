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

const listingNotFoundMsg = "listing not found"

// Listing represents the listing database model. Enrichment values are
// nullable: a listing can be scored before enrichment lands, in which case
// the engine substitutes the missing-data midpoint.
type Listing struct {
	ID              uuid.UUID `db:"id"`
	Address         string    `db:"address"`
	City            string    `db:"city"`
	PostalCode      *string   `db:"postal_code"`
	Price           float64   `db:"price"`
	Bedrooms        int       `db:"bedrooms"`
	Bathrooms       float64   `db:"bathrooms"`
	LivingAreaSqft  *float64  `db:"living_area_sqft"`
	ConditionRating *float64  `db:"condition_rating"`
	HasGarage       *bool     `db:"has_garage"`
	HasPool         *bool     `db:"has_pool"`

	WalkScore            *float64 `db:"walk_score"`
	CommuteScore         *float64 `db:"commute_score"`
	SchoolRating         *float64 `db:"school_rating"`
	CrimeSafetyIndex     *float64 `db:"crime_safety_index"`
	FloodZone            *string  `db:"flood_zone"`
	AirQualityIndex      *float64 `db:"air_quality_index"`
	MarketTrendIndex     *float64 `db:"market_trend_index"`
	NeighborhoodActivity *float64 `db:"neighborhood_activity"`
	SizePercentile       *float64 `db:"size_percentile"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const listingColumns = `id, address, city, postal_code, price, bedrooms, bathrooms,
	living_area_sqft, condition_rating, has_garage, has_pool,
	walk_score, commute_score, school_rating, crime_safety_index, flood_zone,
	air_quality_index, market_trend_index, neighborhood_activity, size_percentile,
	created_at, updated_at`

// Repository provides database operations for listings.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new listings repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new listing.
func (r *Repository) Create(ctx context.Context, listing *Listing) error {
	query := `
		INSERT INTO listings (
			id, address, city, postal_code, price, bedrooms, bathrooms,
			living_area_sqft, condition_rating, has_garage, has_pool, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		listing.ID, listing.Address, listing.City, listing.PostalCode, listing.Price,
		listing.Bedrooms, listing.Bathrooms, listing.LivingAreaSqft, listing.ConditionRating,
		listing.HasGarage, listing.HasPool, listing.CreatedAt, listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// GetByID retrieves a listing by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`

	var listing Listing
	err := r.pool.QueryRow(ctx, query, id).Scan(scanTargets(&listing)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(listingNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// List retrieves listings, newest first. An empty ids slice returns all.
func (r *Repository) List(ctx context.Context, ids []uuid.UUID) ([]Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC`
	args := []interface{}{}
	if len(ids) > 0 {
		query = `SELECT ` + listingColumns + ` FROM listings WHERE id = ANY($1) ORDER BY created_at DESC`
		args = append(args, ids)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	var listings []Listing
	for rows.Next() {
		var listing Listing
		if err := rows.Scan(scanTargets(&listing)...); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}
	return listings, nil
}

// UpdateEnrichment merges enrichment values onto a listing. Nil fields keep
// their stored value (COALESCE), so providers can deliver partial payloads.
func (r *Repository) UpdateEnrichment(ctx context.Context, id uuid.UUID, e Enrichment) (*Listing, error) {
	query := `
		UPDATE listings SET
			walk_score = COALESCE($2, walk_score),
			commute_score = COALESCE($3, commute_score),
			school_rating = COALESCE($4, school_rating),
			crime_safety_index = COALESCE($5, crime_safety_index),
			flood_zone = COALESCE($6, flood_zone),
			air_quality_index = COALESCE($7, air_quality_index),
			market_trend_index = COALESCE($8, market_trend_index),
			neighborhood_activity = COALESCE($9, neighborhood_activity),
			size_percentile = COALESCE($10, size_percentile),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + listingColumns

	var listing Listing
	err := r.pool.QueryRow(ctx, query, id,
		e.WalkScore, e.CommuteScore, e.SchoolRating, e.CrimeSafetyIndex, e.FloodZone,
		e.AirQualityIndex, e.MarketTrendIndex, e.NeighborhoodActivity, e.SizePercentile,
	).Scan(scanTargets(&listing)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(listingNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to update enrichment: %w", err)
	}
	return &listing, nil
}

// Delete removes a listing.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(listingNotFoundMsg)
	}
	return nil
}

// Enrichment carries a partial enrichment update.
type Enrichment struct {
	WalkScore            *float64
	CommuteScore         *float64
	SchoolRating         *float64
	CrimeSafetyIndex     *float64
	FloodZone            *string
	AirQualityIndex      *float64
	MarketTrendIndex     *float64
	NeighborhoodActivity *float64
	SizePercentile       *float64
}

func scanTargets(l *Listing) []interface{} {
	return []interface{}{
		&l.ID, &l.Address, &l.City, &l.PostalCode, &l.Price, &l.Bedrooms, &l.Bathrooms,
		&l.LivingAreaSqft, &l.ConditionRating, &l.HasGarage, &l.HasPool,
		&l.WalkScore, &l.CommuteScore, &l.SchoolRating, &l.CrimeSafetyIndex, &l.FloodZone,
		&l.AirQualityIndex, &l.MarketTrendIndex, &l.NeighborhoodActivity, &l.SizePercentile,
		&l.CreatedAt, &l.UpdatedAt,
	}
}

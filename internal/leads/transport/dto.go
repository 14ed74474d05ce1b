package transport

import (
	"time"

	"github.com/google/uuid"
)

// CreateLeadRequest is the request body for creating a lead.
type CreateLeadRequest struct {
	FirstName    string   `json:"firstName" validate:"required,min=1,max=100"`
	LastName     string   `json:"lastName" validate:"required,min=1,max=100"`
	Email        string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string   `json:"phone,omitempty" validate:"max=30"`
	Source       string   `json:"source,omitempty" validate:"max=100"`
	Budget       *float64 `json:"budget,omitempty" validate:"omitempty,gt=0"`
	TimelineText string   `json:"timelineText,omitempty" validate:"max=500"`
}

// UpdateLeadRequest updates a lead's grading-relevant fields. Nil fields
// keep their stored value.
type UpdateLeadRequest struct {
	FirstName    *string  `json:"firstName,omitempty" validate:"omitempty,min=1,max=100"`
	LastName     *string  `json:"lastName,omitempty" validate:"omitempty,min=1,max=100"`
	Email        *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string  `json:"phone,omitempty" validate:"omitempty,max=30"`
	Budget       *float64 `json:"budget,omitempty" validate:"omitempty,gt=0"`
	TimelineText *string  `json:"timelineText,omitempty" validate:"omitempty,max=500"`
}

// EngagementRequest records engagement activity on a lead. Counters are
// increments, not totals.
type EngagementRequest struct {
	PropertyViews     int  `json:"propertyViews" validate:"min=0,max=1000"`
	EmailOpens        int  `json:"emailOpens" validate:"min=0,max=1000"`
	ShowingsAttended  int  `json:"showingsAttended" validate:"min=0,max=100"`
	ContactedNow      bool `json:"contactedNow"`
}

// ScoreSummary is the persisted grading result on a lead.
type ScoreSummary struct {
	TotalScore     float64    `json:"totalScore"`
	Grade          string     `json:"grade"`
	Classification string     `json:"classification"`
	Recommendation string     `json:"recommendation,omitempty"`
	ScoredAt       *time.Time `json:"scoredAt,omitempty"`
}

// LeadResponse is the response body for a lead.
type LeadResponse struct {
	ID               uuid.UUID     `json:"id"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	Email            string        `json:"email,omitempty"`
	Phone            string        `json:"phone,omitempty"`
	Source           string        `json:"source,omitempty"`
	Budget           *float64      `json:"budget,omitempty"`
	TimelineText     string        `json:"timelineText,omitempty"`
	PropertyViews    int           `json:"propertyViews"`
	EmailOpens       int           `json:"emailOpens"`
	ShowingsAttended int           `json:"showingsAttended"`
	LastContactAt    *time.Time    `json:"lastContactAt,omitempty"`
	Score            *ScoreSummary `json:"score,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

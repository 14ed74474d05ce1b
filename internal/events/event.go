// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Profile Domain Events
// =============================================================================

// ProfileCreated is published when a preference profile is created.
type ProfileCreated struct {
	BaseEvent
	ProfileID uuid.UUID `json:"profileId"`
	OwnerID   uuid.UUID `json:"ownerId"`
}

func (e ProfileCreated) EventName() string { return "profiles.profile.created" }

// ProfileUpdated is published when a profile's factor selections, weights
// or budget change. Persisted scores computed with the old profile are
// stale after this event.
type ProfileUpdated struct {
	BaseEvent
	ProfileID uuid.UUID `json:"profileId"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Source    string    `json:"source"` // "user_update", "preset_applied"
}

func (e ProfileUpdated) EventName() string { return "profiles.profile.updated" }

// PresetApplied is published when a named preset is merged onto a profile.
type PresetApplied struct {
	BaseEvent
	ProfileID  uuid.UUID `json:"profileId"`
	OwnerID    uuid.UUID `json:"ownerId"`
	PresetName string    `json:"presetName"`
}

func (e PresetApplied) EventName() string { return "profiles.preset.applied" }

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadCreated is published when a new lead enters the system.
type LeadCreated struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Source string    `json:"source,omitempty"`
}

func (e LeadCreated) EventName() string { return "leads.lead.created" }

// LeadDataChanged is published when grading-relevant lead data changes:
// budget, timeline, contact details, engagement counters or last-contact
// time. The scheduler reacts by queueing a re-grade.
type LeadDataChanged struct {
	BaseEvent
	LeadID uuid.UUID `json:"leadId"`
	Source string    `json:"source"` // "user_update", "engagement", "import"
}

func (e LeadDataChanged) EventName() string { return "leads.data.changed" }

// LeadGraded is published after a lead's score is recomputed and persisted.
type LeadGraded struct {
	BaseEvent
	LeadID         uuid.UUID `json:"leadId"`
	TotalScore     float64   `json:"totalScore"`
	Grade          string    `json:"grade"`
	Classification string    `json:"classification"`
}

func (e LeadGraded) EventName() string { return "leads.lead.graded" }

// =============================================================================
// Listings Domain Events
// =============================================================================

// ListingCreated is published when a listing is added.
type ListingCreated struct {
	BaseEvent
	ListingID uuid.UUID `json:"listingId"`
}

func (e ListingCreated) EventName() string { return "listings.listing.created" }

// ListingEnriched is published when third-party enrichment data lands on a
// listing (walk score, school rating, flood zone, ...). Scores computed
// before enrichment carried midpoint placeholders for those factors.
type ListingEnriched struct {
	BaseEvent
	ListingID uuid.UUID `json:"listingId"`
	Fields    []string  `json:"fields"`
}

func (e ListingEnriched) EventName() string { return "listings.listing.enriched" }

// Package registry holds the static catalog of factor definitions. It is the
// single source of truth for categories, default weights and data-source
// kinds; no other component hard-codes factor semantics.
package registry

import (
	"sync"

	"github.com/CR-AudioViz-AI/javari-realty-sub005/internal/scoring"
	"github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"
)

// Registry is a thread-safe factor catalog. Definitions are registered once
// (at startup or via the admin surface) and are immutable afterwards.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]scoring.FactorDefinition
	order []string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byID: make(map[string]scoring.FactorDefinition)}
}

// NewWithDefaults creates a registry seeded with the built-in listing factor
// catalog and the fixed lead factor catalog.
func NewWithDefaults() *Registry {
	r := New()
	for _, def := range append(ListingFactors(), LeadFactors()...) {
		// Built-in catalogs are validated by tests; a conflict here is a
		// programming error.
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a definition to the catalog. Duplicate ids conflict and
// leave the existing entry untouched.
func (r *Registry) Register(def scoring.FactorDefinition) error {
	if err := def.Validate(); err != nil {
		return apperr.Validation(err.Error()).WithCode(scoring.CodeInvalidFactorWeight)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[def.ID]; exists {
		return scoring.ErrDuplicateFactorID(def.ID)
	}
	r.byID[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// Lookup resolves a factor definition by id.
func (r *Registry) Lookup(factorID string) (scoring.FactorDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.byID[factorID]
	if !ok {
		return scoring.FactorDefinition{}, scoring.ErrUnknownFactor(factorID)
	}
	return def, nil
}

// ListByCategory returns the definitions in a category, in registration order.
func (r *Registry) ListByCategory(category scoring.Category) []scoring.FactorDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []scoring.FactorDefinition
	for _, id := range r.order {
		if def := r.byID[id]; def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// All returns every definition in registration order.
func (r *Registry) All() []scoring.FactorDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.FactorDefinition, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// DefaultSelections builds the (factorId, weight, enabled) triples for the
// given definitions, in catalog order. New profiles start from these.
func DefaultSelections(defs []scoring.FactorDefinition) []scoring.FactorSelection {
	out := make([]scoring.FactorSelection, 0, len(defs))
	for _, def := range defs {
		out = append(out, scoring.FactorSelection{
			FactorID: def.ID,
			Weight:   def.DefaultWeight,
			Enabled:  def.DefaultEnabled,
		})
	}
	return out
}

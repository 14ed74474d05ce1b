package scoring

import "github.com/CR-AudioViz-AI/javari-realty-sub005/platform/apperr"

// Stable error codes for the engine's failure taxonomy. Batch reports and
// HTTP responses carry these so callers can react programmatically.
const (
	CodeInvalidProfile      = "invalid_profile"
	CodeUnknownFactor       = "unknown_factor"
	CodeUnknownCategory     = "unknown_category_value"
	CodeUnknownPreset       = "unknown_preset"
	CodeDuplicateFactorID   = "duplicate_factor_id"
	CodeReservedPreset      = "reserved_preset"
	CodeInvalidFactorWeight = "invalid_factor_weight"
)

// ErrInvalidProfile rejects a profile before any scoring work happens.
func ErrInvalidProfile(message string) *apperr.Error {
	return apperr.Validation(message).WithCode(CodeInvalidProfile)
}

// ErrUnknownFactor flags a factor id missing from the registry.
func ErrUnknownFactor(factorID string) *apperr.Error {
	return apperr.NotFound("unknown factor " + factorID).WithCode(CodeUnknownFactor)
}

// ErrUnknownCategory flags a categorical raw value with no mapping entry.
// Unmapped categories fail; they are never silently defaulted.
func ErrUnknownCategory(factorID, code string) *apperr.Error {
	return apperr.Validation("factor " + factorID + ": unmapped category value " + code).
		WithCode(CodeUnknownCategory)
}

// ErrUnknownPreset flags a preset name missing from the library.
func ErrUnknownPreset(name string) *apperr.Error {
	return apperr.NotFound("unknown preset " + name).WithCode(CodeUnknownPreset)
}

// ErrDuplicateFactorID flags a registration conflict. Already-registered
// factors are unaffected.
func ErrDuplicateFactorID(factorID string) *apperr.Error {
	return apperr.Conflict("factor " + factorID + " is already registered").
		WithCode(CodeDuplicateFactorID)
}

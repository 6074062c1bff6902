package dice

import (
	apperrors "github.com/louisbranch/diceroll/internal/platform/errors"
)

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = apperrors.New(apperrors.CodeDiceInvalidSpec, "dice must have positive sides and count")

// ErrLimitExceeded indicates an expression is outside the configured limits.
var ErrLimitExceeded = apperrors.New(apperrors.CodeDiceLimitExceeded, "dice expression exceeds limits")

// ErrMissingSource indicates a roll was requested without a random source.
var ErrMissingSource = apperrors.New(apperrors.CodeUnknown, "random source is required")

// Expression describes one "NdS[+/-M]" roll: Count dice with Sides faces,
// with Modifier added once to the aggregate.
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// RollResult captures the dice rolled for an expression.
//
// Values holds one entry per die in the order rolled. Total is always the
// sum of Values plus Modifier.
type RollResult struct {
	Values   []int
	Modifier int
	Total    int
}

// MaxCountCeiling caps the dice in one expression whatever the configured
// limits say.
const MaxCountCeiling = 1_000_000

// Limits bounds what an expression may ask for. A zero or negative field
// falls back to the matching DefaultLimits value.
type Limits struct {
	MaxCount    int
	MaxSides    int
	MaxModifier int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxCount:    1000,
		MaxSides:    1_000_000,
		MaxModifier: 1_000_000,
	}
}

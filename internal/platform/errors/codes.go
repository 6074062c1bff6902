// Package errors provides structured error handling for the dice roller.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Expression errors
	CodeExpressionMalformed Code = "EXPRESSION_MALFORMED"
	CodeExpressionBadToken  Code = "EXPRESSION_BAD_TOKEN"

	// Dice/mechanics errors
	CodeDiceInvalidSpec   Code = "DICE_INVALID_SPEC"
	CodeDiceLimitExceeded Code = "DICE_LIMIT_EXCEEDED"

	// Input errors
	CodeInputClosed Code = "INPUT_CLOSED"
)

// Recoverable reports whether an error with this code leaves the command
// loop usable. Recoverable errors are reported to the user and the loop
// prompts again; anything else ends the process.
func (c Code) Recoverable() bool {
	switch c {
	case CodeExpressionMalformed,
		CodeExpressionBadToken,
		CodeDiceInvalidSpec,
		CodeDiceLimitExceeded:
		return true

	default:
		return false
	}
}

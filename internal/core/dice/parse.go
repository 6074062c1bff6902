package dice

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	apperrors "github.com/louisbranch/diceroll/internal/platform/errors"
)

// ParseError reports a line that is not a valid dice expression.
type ParseError struct {
	Line  string // Input as given to ParseExpression
	Token string // Offending token; empty when the whole line is malformed
	Err   *apperrors.Error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse dice expression %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse dice expression %q: token %q: %v", e.Line, e.Token, e.Err)
}

// Unwrap returns the domain error describing the failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Code returns the machine-readable code of the failure.
func (e *ParseError) Code() apperrors.Code {
	if e.Err == nil {
		return apperrors.CodeUnknown
	}
	return e.Err.Code
}

// ParseExpression parses "<count>d<sides>" optionally followed by
// "+<modifier>" or "-<modifier>".
//
// Surrounding whitespace is ignored on the line and on each token, and letter
// case is ignored ("2D6" == "2d6"). A missing count defaults to 1 ("d20"
// rolls one d20) and a missing modifier defaults to 0. Count and sides must be
// at least 1. A ParseError keeps line exactly as given; its Token is taken
// from the case-folded text.
func ParseExpression(line string) (Expression, error) {
	text := cases.Fold().String(strings.TrimSpace(line))
	if strings.Count(text, "d") != 1 {
		return Expression{}, malformed(line, "", "expression must contain exactly one d")
	}

	countToken, rest, _ := strings.Cut(text, "d")
	if strings.ContainsAny(countToken, "+-") {
		return Expression{}, malformed(line, countToken, "count must not be signed")
	}

	sidesToken, modifierToken := rest, ""
	negative, hasModifier := false, false
	if i := strings.IndexAny(rest, "+-"); i >= 0 {
		sidesToken, modifierToken = rest[:i], rest[i+1:]
		negative, hasModifier = rest[i] == '-', true
		if strings.ContainsAny(modifierToken, "+-") {
			return Expression{}, malformed(line, modifierToken, "only one modifier is allowed")
		}
	}

	expr := Expression{Count: 1}
	var err error

	if strings.TrimSpace(countToken) != "" {
		if expr.Count, err = parseToken(line, countToken); err != nil {
			return Expression{}, err
		}
	}
	if expr.Sides, err = parseToken(line, sidesToken); err != nil {
		return Expression{}, err
	}
	if hasModifier {
		if expr.Modifier, err = parseToken(line, modifierToken); err != nil {
			return Expression{}, err
		}
		if negative {
			expr.Modifier = -expr.Modifier
		}
	}

	if expr.Count < 1 || expr.Sides < 1 {
		return Expression{}, &ParseError{Line: line, Err: ErrInvalidDiceSpec}
	}
	return expr, nil
}

// Check reports whether expr fits within limits. Count is never allowed
// above MaxCountCeiling, and the largest possible total must fit in an int.
func (e Expression) Check(limits Limits) error {
	if e.Count < 1 || e.Sides < 1 {
		return ErrInvalidDiceSpec
	}
	limits = limits.withDefaults()
	if e.Count > min(limits.MaxCount, MaxCountCeiling) {
		return limitError("count", e.Count, min(limits.MaxCount, MaxCountCeiling))
	}
	if e.Sides > limits.MaxSides {
		return limitError("sides", e.Sides, limits.MaxSides)
	}
	if e.Modifier > limits.MaxModifier || e.Modifier < -limits.MaxModifier {
		return limitError("modifier", e.Modifier, limits.MaxModifier)
	}
	if maxSides := (math.MaxInt - abs(e.Modifier)) / e.Count; e.Sides > maxSides {
		return limitError("sides", e.Sides, maxSides)
	}
	return nil
}

func (l Limits) withDefaults() Limits {
	defaults := DefaultLimits()
	if l.MaxCount <= 0 {
		l.MaxCount = defaults.MaxCount
	}
	if l.MaxSides <= 0 {
		l.MaxSides = defaults.MaxSides
	}
	if l.MaxModifier <= 0 {
		l.MaxModifier = defaults.MaxModifier
	}
	return l
}

// String renders the expression in the form ParseExpression accepts.
func (e Expression) String() string {
	switch {
	case e.Modifier > 0:
		return fmt.Sprintf("%dd%d+%d", e.Count, e.Sides, e.Modifier)
	case e.Modifier < 0:
		return fmt.Sprintf("%dd%d-%d", e.Count, e.Sides, -e.Modifier)
	default:
		return fmt.Sprintf("%dd%d", e.Count, e.Sides)
	}
}

func parseToken(line, token string) (int, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return 0, malformed(line, token, "missing number")
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ParseError{
			Line:  line,
			Token: trimmed,
			Err: apperrors.WrapWithMetadata(
				apperrors.CodeExpressionBadToken,
				"token is not an integer",
				map[string]string{"Token": trimmed},
				err,
			),
		}
	}
	return value, nil
}

func malformed(line, token, message string) *ParseError {
	return &ParseError{
		Line:  line,
		Token: strings.TrimSpace(token),
		Err:   apperrors.New(apperrors.CodeExpressionMalformed, message),
	}
}

func limitError(field string, value, limit int) error {
	return apperrors.WrapWithMetadata(
		apperrors.CodeDiceLimitExceeded,
		fmt.Sprintf("%s %d exceeds limit %d", field, value, limit),
		map[string]string{
			"Field": field,
			"Value": strconv.Itoa(value),
			"Limit": strconv.Itoa(limit),
		},
		ErrLimitExceeded,
	)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Package dice implements dice expressions and the roll engine.
package dice

import "github.com/louisbranch/diceroll/internal/random"

// Roll rolls the dice described by expr.
//
// # Dispatch
//
// An expression with a Count of 1 is rolled with RollOne; any larger count
// is rolled with RollMany. Both produce a RollResult, so callers only need
// Count to decide how to report it.
//
// # Totals
//
// The Modifier is applied once to the aggregate, never per die:
// Total == sum(Values) + Modifier.
//
// # Errors
//
//   - src must be non-nil, otherwise ErrMissingSource is returned.
//   - expr must have Sides > 0 and Count > 0, otherwise
//     ErrInvalidDiceSpec is returned.
//
// Example:
//
//	expr, _ := ParseExpression("2d8+5")
//	result, err := Roll(random.NewWithSeed(1), expr)
//	// result.Values has two entries in [1, 8]; result.Total is their sum + 5.
func Roll(src random.Source, expr Expression) (RollResult, error) {
	if src == nil {
		return RollResult{}, ErrMissingSource
	}
	if expr.Sides <= 0 || expr.Count <= 0 {
		return RollResult{}, ErrInvalidDiceSpec
	}

	if expr.Count == 1 {
		return RollOne(src, expr.Sides, expr.Modifier), nil
	}
	return RollMany(src, expr.Count, expr.Sides, expr.Modifier), nil
}

// RollOne rolls a single die and adds modifier to it.
// sides must be at least 1.
func RollOne(src random.Source, sides, modifier int) RollResult {
	value := rollDie(src, sides)
	return RollResult{
		Values:   []int{value},
		Modifier: modifier,
		Total:    value + modifier,
	}
}

// RollMany rolls count dice with the given sides, keeping the values in the
// order rolled, and adds modifier once to their sum.
func RollMany(src random.Source, count, sides, modifier int) RollResult {
	values := make([]int, 0, count)
	sum := 0
	for i := 0; i < count; i++ {
		roll := RollOne(src, sides, 0)
		values = append(values, roll.Values[0])
		sum += roll.Total
	}

	return RollResult{
		Values:   values,
		Modifier: modifier,
		Total:    sum + modifier,
	}
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(src random.Source, sides int) int {
	return src.Uniform(1, sides)
}

// Package validate checks calculator inputs before they reach the formula
// layer. The UI layer is expected to range-check first; these checks are
// the defensive second line and the error type carries enough context to
// name the offending field.
package validate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Error reports an invalid input field and the constraint it violated.
type Error struct {
	Field      string
	Constraint string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Constraint)
}

// Errorf builds an Error with a formatted constraint description.
func Errorf(field, format string, args ...any) *Error {
	return &Error{Field: field, Constraint: fmt.Sprintf(format, args...)}
}

// Range checks min <= value <= max.
func Range(field string, value, min, max float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Errorf(field, "must be a finite number")
	}
	if value < min || value > max {
		return Errorf(field, "must be between %g and %g", min, max)
	}
	return nil
}

// Positive checks value > 0.
func Positive(field string, value float64) error {
	if math.IsNaN(value) || value <= 0 {
		return Errorf(field, "must be a positive number")
	}
	return nil
}

// NonNegative checks value >= 0.
func NonNegative(field string, value float64) error {
	if math.IsNaN(value) || value < 0 {
		return Errorf(field, "must not be negative")
	}
	return nil
}

// Step checks that value sits on the grid min + k*step. A zero step
// disables the check.
func Step(field string, value, min, step float64) error {
	if step == 0 {
		return nil
	}
	k := (value - min) / step
	if math.Abs(k-math.Round(k)) > 1e-9 {
		return Errorf(field, "must be a multiple of %g", step)
	}
	return nil
}

// OneOf checks value against an allowed set.
func OneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return Errorf(field, "must be one of %v", allowed)
}

// Amount parses a monetary string to a float rounded to two decimal
// places, rejecting non-numeric and non-positive values. Decimal parsing
// keeps user-typed cents exact before the float conversion.
func Amount(field, raw string) (float64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, Errorf(field, "must be a number, got %q", raw)
	}
	if d.Sign() <= 0 {
		return 0, Errorf(field, "must be a positive amount")
	}
	v, _ := d.Round(2).Float64()
	return v, nil
}

// Float parses a plain numeric string.
func Float(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, Errorf(field, "must be a number, got %q", raw)
	}
	return v, nil
}

// Package mathlib provides basic floating-point arithmetic operations.
package mathlib

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when an argument violates an operation's
// precondition.
var ErrInvalidArgument = errors.New("invalid argument")

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a minus b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Divide returns a divided by b. It fails with ErrInvalidArgument when b is
// zero. Non-finite values are not rejected and follow IEEE-754 semantics.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero is not allowed", ErrInvalidArgument)
	}
	return a / b, nil
}

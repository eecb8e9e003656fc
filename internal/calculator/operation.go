// Package calculator exposes the mathlib operations to the CLI and HTTP API
// with tracing, metrics and structured logging around every call.
package calculator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperation is returned for an operation name that is not one of
// Operations.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names one binary arithmetic operation.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpDivide   Operation = "divide"
)

// Operations lists every supported operation in display order.
var Operations = []Operation{OpAdd, OpSubtract, OpDivide}

// Symbol returns the infix operator used when logging an expression.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

// ParseOperation resolves a case-insensitive operation name.
func ParseOperation(name string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Operations {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownOperation, name)
}

package wordle

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every ValidationError.
var ErrInvalidInput = errors.New("invalid input")

// ValidationError is returned by a constraint mutation whose input was rejected.
// The constraints are left as they were.
type ValidationError struct {
	Op     string
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s(%q): %s", e.Op, e.Input, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(op, input, reason string) *ValidationError {
	return &ValidationError{Op: op, Input: input, Reason: reason}
}

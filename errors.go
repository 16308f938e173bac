package coordstate

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is reported when an increment exceeds math.MaxUint16.
	ErrOverflow = errors.New("arithmetic overflow")
	// ErrUnderflow is reported when a decrement goes below zero.
	ErrUnderflow = errors.New("arithmetic underflow")
)

// BoundaryError describes a single field that would leave the uint16 range.
type BoundaryError struct {
	Field string // "x" or "y"
	Value uint16 // field value before the transition
	Kind  error  // ErrOverflow or ErrUnderflow
}

func (e *BoundaryError) Error() string {
	op := "+"
	if e.Kind == ErrUnderflow {
		op = "-"
	}
	return fmt.Sprintf("field %s: %v: %d %s 1", e.Field, e.Kind, e.Value, op)
}

func (e *BoundaryError) Unwrap() error {
	return e.Kind
}

// IsBoundaryViolation reports whether err carries an overflow or underflow.
func IsBoundaryViolation(err error) bool {
	return errors.Is(err, ErrOverflow) || errors.Is(err, ErrUnderflow)
}

// Package coordstate implements a two-field coordinate record with a pure
// zero predicate and a value-returning transition rule.
//
// State is a value type. Transition never mutates its receiver; it either
// returns a fresh State or reports an arithmetic boundary violation.
package coordstate

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// State is a coordinate pair of 16-bit unsigned fields.
type State struct {
	X uint16 `yaml:"x"`
	Y uint16 `yaml:"y"`
}

// New returns a State with the given fields.
func New(x, y uint16) State {
	return State{X: x, Y: y}
}

// IsZero reports whether value is zero.
func IsZero(value uint32) bool {
	return value == 0
}

// Matches reports whether threshold equals either field.
func (s State) Matches(threshold uint16) bool {
	return threshold == s.X || threshold == s.Y
}

// Transition returns the successor of s for threshold.
// When threshold matches X or Y both fields are incremented, otherwise both
// are decremented. A field leaving the uint16 range yields the zero State and
// an error matching ErrOverflow or ErrUnderflow.
func (s State) Transition(threshold uint16) (State, error) {
	if s.Matches(threshold) {
		return s.step(1, ErrOverflow, func(v uint16) bool { return v == math.MaxUint16 })
	}
	return s.step(-1, ErrUnderflow, func(v uint16) bool { return v == 0 })
}

func (s State) step(delta int, kind error, atLimit func(uint16) bool) (State, error) {
	var merr *multierror.Error
	if atLimit(s.X) {
		merr = multierror.Append(merr, &BoundaryError{Field: "x", Value: s.X, Kind: kind})
	}
	if atLimit(s.Y) {
		merr = multierror.Append(merr, &BoundaryError{Field: "y", Value: s.Y, Kind: kind})
	}
	if merr != nil {
		// Single violations are returned unwrapped.
		if len(merr.Errors) == 1 {
			return State{}, merr.Errors[0]
		}
		return State{}, merr
	}
	return State{
		X: uint16(int(s.X) + delta),
		Y: uint16(int(s.Y) + delta),
	}, nil
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.X, s.Y)
}

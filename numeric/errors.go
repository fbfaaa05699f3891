// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set shared by vector, matrix and codec.
// All public operations MUST return (a wrap of) one of these sentinels, and
// tests MUST check them via errors.Is. No operation panics on user input.

package numeric

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "linalg: ..." so both packages read the same
// in logs. Wrap with context via Errorf at the detection site only.
var (
	// ErrInvalidArgument reports malformed construction input: a negative
	// size, a nil source slice, empty or ragged nested rows, or a nil operand.
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrDimensionMismatch reports operands whose shapes are incompatible for
	// the requested operation (Add/Sub/Hadamard need equal shapes,
	// DotProduct needs a.Cols == b.Rows, MulVec needs Cols == len).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrIndexOutOfBounds reports an index outside the declared bounds.
	ErrIndexOutOfBounds = errors.New("linalg: index out of bounds")
)

// Errorf wraps err with an operation tag, e.g. "Dense.Add: linalg: ...".
// The result still matches the wrapped sentinel via errors.Is.
// Callers must only pass a non-nil err.
func Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// IndexErrorf wraps err with a method name and the offending coordinates,
// e.g. "Dense.At(3,1): linalg: index out of bounds".
func IndexErrorf(method string, err error, idx ...int) error {
	switch len(idx) {
	case 1:
		return fmt.Errorf("%s(%d): %w", method, idx[0], err)
	case 2:
		return fmt.Errorf("%s(%d,%d): %w", method, idx[0], idx[1], err)
	default:
		return fmt.Errorf("%s: %w", method, err)
	}
}

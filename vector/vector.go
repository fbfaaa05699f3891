// SPDX-License-Identifier: MIT

// Package vector - storage, construction and safe accessors.
//
// Purpose:
//   - Own a contiguous []T buffer whose length never changes.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Deep-copy on construction and on Clone/Slice so no two values share memory.

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is a dense, fixed-length sequence of numbers.
// The zero value is a valid empty vector.
type Vector[T numeric.Number] struct {
	data []T // owned buffer; len(data) is the vector length
}

var _ fmt.Stringer = (*Vector[float64])(nil)

// New returns a vector of n zeros.
//
// Errors:
//   - ErrInvalidArgument if n < 0.
//
// Complexity: O(n) time and memory.
func New[T numeric.Number](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, numeric.Errorf(ctxNew, ErrInvalidArgument)
	}

	return &Vector[T]{data: make([]T, n)}, nil
}

// FromSlice returns a vector holding a copy of xs.
// Later writes to xs never reach the vector, and vice versa.
//
// A nil xs means no data was given and fails with ErrInvalidArgument;
// an empty non-nil slice yields a length-0 vector.
//
// Complexity: O(len(xs)).
func FromSlice[T numeric.Number](xs []T) (*Vector[T], error) {
	if xs == nil {
		return nil, numeric.Errorf(ctxFromSlice, ErrInvalidArgument)
	}
	buf := make([]T, len(xs))
	copy(buf, xs)

	return &Vector[T]{data: buf}, nil
}

// Of is a convenience form of FromSlice for literal data.
// It never fails: variadic arguments always form a non-nil slice.
func Of[T numeric.Number](xs ...T) *Vector[T] {
	buf := make([]T, len(xs))
	copy(buf, xs)

	return &Vector[T]{data: buf}
}

// Len returns the number of elements. A nil *Vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}

	return len(v.data)
}

// At returns element i or ErrIndexOutOfBounds when i is outside [0, Len).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		return numeric.Zero[T](), numeric.IndexErrorf(ctxAt, ErrIndexOutOfBounds, i)
	}

	return v.data[i], nil
}

// Set stores x at index i or returns ErrIndexOutOfBounds.
func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.Len() {
		return numeric.IndexErrorf(ctxSet, ErrIndexOutOfBounds, i)
	}
	v.data[i] = x

	return nil
}

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	buf := make([]T, v.Len())
	if v != nil {
		copy(buf, v.data)
	}

	return &Vector[T]{data: buf}
}

// Slice returns a copy of the elements in order.
func (v *Vector[T]) Slice() []T {
	return v.Clone().data
}

// Do calls f for each element in index order until f returns false.
func (v *Vector[T]) Do(f func(i int, x T) bool) {
	for i := 0; i < v.Len(); i++ {
		if !f(i, v.data[i]) {
			return
		}
	}
}

// Equal reports whether v and o have the same length and equal elements.
// Comparison uses native ==, so a NaN element never equals anything.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v.Len() != o.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the elements in order, e.g. "[1, 2, 3]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(&sb, "%v", v.data[i])
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

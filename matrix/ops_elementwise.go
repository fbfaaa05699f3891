// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the private elementwise kernel (ew*) behind Add/Sub/Hadamard and
//     their *Assign forms, so the tight loop exists exactly once.
//
// Determinism & Performance:
//   - One flat loop 0..n-1 over row-major buffers; the operator switch sits
//     outside the loop.
//   - dst may alias a (in-place forms); each index is read before it is written.

package matrix

import "github.com/katalvlaran/linalg/numeric"

// ewOp selects the elementwise operator.
type ewOp uint8

const (
	ewAdd ewOp = iota // dst = a + b
	ewSub             // dst = a - b
	ewMul             // dst = a ⊙ b
)

// ewApply writes a (op) b into dst. All three slices have equal length.
func ewApply[T numeric.Number](dst, a, b []T, op ewOp) {
	switch op {
	case ewAdd:
		for idx := range dst {
			dst[idx] = a[idx] + b[idx]
		}
	case ewSub:
		for idx := range dst {
			dst[idx] = a[idx] - b[idx]
		}
	case ewMul:
		for idx := range dst {
			dst[idx] = a[idx] * b[idx]
		}
	}
}

// ewBinary validates shapes and returns a fresh Dense holding a (op) b.
// Operands are never mutated.
func ewBinary[T numeric.Number](a, b *Dense[T], op ewOp, tag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, numeric.Errorf(tag, err)
	}
	out := newDense[T](a.r, a.c)
	ewApply(out.data, a.data, b.data, op)

	return out, nil
}

// ewInPlace validates shapes, then writes a (op) b into a and returns a.
// Nothing is written when validation fails.
func ewInPlace[T numeric.Number](a, b *Dense[T], op ewOp, tag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, numeric.Errorf(tag, err)
	}
	ewApply(a.data, a.data, b.data, op)

	return a, nil
}

// Add returns m + o elementwise as a new matrix.
//
// Errors:
//   - ErrInvalidArgument (nil operand), ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Add(o *Dense[T]) (*Dense[T], error) { return ewBinary(m, o, ewAdd, opAdd) }

// AddAssign adds o into m elementwise and returns m.
// On error m is left unchanged.
func (m *Dense[T]) AddAssign(o *Dense[T]) (*Dense[T], error) {
	return ewInPlace(m, o, ewAdd, opAddAssign)
}

// Sub returns m - o elementwise as a new matrix.
func (m *Dense[T]) Sub(o *Dense[T]) (*Dense[T], error) { return ewBinary(m, o, ewSub, opSub) }

// SubAssign subtracts o from m elementwise and returns m.
func (m *Dense[T]) SubAssign(o *Dense[T]) (*Dense[T], error) {
	return ewInPlace(m, o, ewSub, opSubAssign)
}

// Hadamard returns the elementwise product m ⊙ o as a new matrix.
// Hadamard ≠ matrix multiplication; use DotProduct for m×o.
func (m *Dense[T]) Hadamard(o *Dense[T]) (*Dense[T], error) {
	return ewBinary(m, o, ewMul, opHadamard)
}

// HadamardAssign multiplies m by o elementwise in place and returns m.
func (m *Dense[T]) HadamardAssign(o *Dense[T]) (*Dense[T], error) {
	return ewInPlace(m, o, ewMul, opHadamardAssign)
}

// Scale returns k*m as a new matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Scale(k T) *Dense[T] {
	out := newDense[T](m.Rows(), m.Cols())
	for idx := range out.data {
		out.data[idx] = m.data[idx] * k
	}

	return out
}

// ScaleAssign multiplies every element of m by k in place and returns m.
func (m *Dense[T]) ScaleAssign(k T) *Dense[T] {
	if m == nil {
		return nil
	}
	for idx := range m.data {
		m.data[idx] *= k
	}

	return m
}

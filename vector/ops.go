// SPDX-License-Identifier: MIT
// Package vector - elementwise and reducing arithmetic.
//
// Every binary kernel follows the same stages:
//   - Stage 1: validate both operands (non-nil, equal length).
//   - Stage 2: run one flat loop 0..n-1 over the backing buffers.
//
// Validation always completes before the first write, which is what keeps a
// failed *Assign call from partially mutating its receiver.

package vector

import "github.com/katalvlaran/linalg/numeric"

// validatePair checks that both operands exist and have equal length.
func validatePair[T numeric.Number](tag string, v, o *Vector[T]) error {
	if v == nil || o == nil {
		return numeric.Errorf(tag, ErrInvalidArgument)
	}
	if len(v.data) != len(o.data) {
		return numeric.Errorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// Add returns v + o elementwise as a new Vector.
//
// Errors:
//   - ErrInvalidArgument when either operand is nil.
//   - ErrDimensionMismatch when lengths differ.
//
// Complexity: O(n) time and memory.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(ctxAdd, v, o); err != nil {
		return nil, err
	}
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] + o.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// AddAssign adds o into v elementwise and returns v.
// On error v is left unchanged.
func (v *Vector[T]) AddAssign(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(ctxAddAssign, v, o); err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] += o.data[i]
	}

	return v, nil
}

// Sub returns v - o elementwise as a new Vector.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(ctxSub, v, o); err != nil {
		return nil, err
	}
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] - o.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// SubAssign subtracts o from v elementwise and returns v.
// On error v is left unchanged.
func (v *Vector[T]) SubAssign(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(ctxSubAssign, v, o); err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] -= o.data[i]
	}

	return v, nil
}

// Scale returns k*v as a new Vector. A nil receiver scales as empty.
func (v *Vector[T]) Scale(k T) *Vector[T] {
	out := make([]T, v.Len())
	for i := range out {
		out[i] = v.data[i] * k
	}

	return &Vector[T]{data: out}
}

// ScaleAssign multiplies every element of v by k in place and returns v.
func (v *Vector[T]) ScaleAssign(k T) *Vector[T] {
	for i := 0; i < v.Len(); i++ {
		v.data[i] *= k
	}

	return v
}

// Hadamard returns the elementwise product v ⊙ o as a new Vector.
// Use Dot for the scalar product.
func (v *Vector[T]) Hadamard(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(ctxHadamard, v, o); err != nil {
		return nil, err
	}
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = v.data[i] * o.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// HadamardAssign multiplies v by o elementwise in place and returns v.
// On error v is left unchanged.
func (v *Vector[T]) HadamardAssign(o *Vector[T]) (*Vector[T], error) {
	if err := validatePair(ctxHadAssign, v, o); err != nil {
		return nil, err
	}
	for i := range v.data {
		v.data[i] *= o.data[i]
	}

	return v, nil
}

// Dot returns Σ v[i]*o[i]. The sum accumulates in index order, so float
// results are reproducible across runs. Two empty vectors dot to zero.
//
// Errors:
//   - ErrInvalidArgument when either operand is nil.
//   - ErrDimensionMismatch when lengths differ.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if err := validatePair(ctxDot, v, o); err != nil {
		return numeric.Zero[T](), err
	}
	var acc T
	for i := range v.data {
		acc += v.data[i] * o.data[i]
	}

	return acc, nil
}

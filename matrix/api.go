// SPDX-License-Identifier: MIT
// Package matrix: free-function facades.
//
// These mirror the methods for callers who prefer functional composition
// (e.g. matrix.Product(a, b) in a pipeline). They add no behavior.

package matrix

import (
	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

// Zeros is an alias of New.
func Zeros[T numeric.Number](rows, cols int) (*Dense[T], error) { return New[T](rows, cols) }

// ZerosLike returns a zero matrix with m's shape.
func ZerosLike[T numeric.Number](m *Dense[T]) *Dense[T] { return newDense[T](m.Rows(), m.Cols()) }

// Sum returns a + b.
func Sum[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return a.Add(b) }

// Diff returns a - b.
func Diff[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return a.Sub(b) }

// HadamardProd returns a ⊙ b.
func HadamardProd[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return a.Hadamard(b) }

// Product returns the matrix product a × b.
func Product[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return a.DotProduct(b) }

// T returns mᵀ.
func T[E numeric.Number](m *Dense[E]) *Dense[E] { return m.Transpose() }

// ScaleBy returns alpha*m.
func ScaleBy[T numeric.Number](m *Dense[T], alpha T) *Dense[T] { return m.Scale(alpha) }

// MatVecMul returns m · v.
func MatVecMul[T numeric.Number](m *Dense[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	return m.MulVec(v)
}

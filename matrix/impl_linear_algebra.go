// SPDX-License-Identifier: MIT
// Package matrix - transpose, matrix product and matrix-vector product.
//
// Purpose:
//   - Host the kernels that change shape or reduce over an inner dimension.
//   - All kernels validate through validators.go and wrap with an op* tag.
//
// Determinism:
//   - Fixed loop orders; sums accumulate in increasing k, so float results are
//     reproducible run to run.

package matrix

import (
	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

// Transpose returns a new matrix with rows and columns swapped (mᵀ), so
// result[j][i] == m[i][j] and the shape becomes (Cols, Rows).
// The original matrix is never mutated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	rows, cols := m.Shape()
	res := newDense[T](cols, rows) // dims flipped

	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res
}

// DotProduct performs standard matrix multiplication C = m × o.
// Implementation:
//   - Stage 1: validate both operands and the inner dimension (m.Cols == o.Rows).
//   - Stage 2: i→k→j loop over row-major strides, accumulating into C's row i.
//
// Returns:
//   - *Dense of shape (m.Rows, o.Cols) with C[i][j] = Σ_k m[i][k]·o[k][j].
//
// Errors:
//   - ErrInvalidArgument (nil operand, or a result shape whose element count
//     overflows int), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - No zero-skipping: every product is formed, so NaN/Inf propagate as
//     native arithmetic dictates.
func (m *Dense[T]) DotProduct(o *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(m, o); err != nil {
		return nil, numeric.Errorf(opDotProduct, err)
	}

	aRows, aCols, bCols := m.r, m.c, o.c
	if err := validateDims(aRows, bCols); err != nil {
		return nil, numeric.Errorf(opDotProduct, err)
	}
	res := newDense[T](aRows, bCols)
	var (
		i, k, j                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// m.data layout: i*aCols + k
	// o.data layout: k*bCols + j
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = m.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * o.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MulVec computes y = m · v for a column vector v.
//
// Contract: m and v non-nil; v.Len() == m.Cols().
// Result: y[i] = Σ_j m[i][j]·v[j], a Vector of length m.Rows().
// Complexity: Time O(r*c), Space O(r + c).
func (m *Dense[T]) MulVec(v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateVecLen(m, v); err != nil {
		return nil, numeric.Errorf(opMulVec, err)
	}

	x := v.Slice()
	y := make([]T, m.r)
	var (
		i, j, base int
		acc        T
	)
	for i = 0; i < m.r; i++ {
		acc = numeric.Zero[T]()
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return vector.FromSlice(y)
}

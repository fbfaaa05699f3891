// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape checks shared by every kernel.
//  - Return sentinel-wrapped errors tagged with the validator name; kernels
//    add their own operation tag on top.
//
// Note:
//  - Composite validators run in a fixed order: NotNil → Shape.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/numeric"
	"github.com/katalvlaran/linalg/vector"
)

// validateDims rejects negative dimensions and shapes whose element count
// rows*cols does not fit in an int.
func validateDims(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return fmt.Errorf("shape %dx%d: %w", rows, cols, ErrInvalidArgument)
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return fmt.Errorf("shape %dx%d overflows: %w", rows, cols, ErrInvalidArgument)
	}

	return nil
}

// validateNotNil rejects nil operands.
func validateNotNil[T numeric.Number](ms ...*Dense[T]) error {
	for _, m := range ms {
		if m == nil {
			return numeric.Errorf("ValidateNotNil", ErrInvalidArgument)
		}
	}

	return nil
}

// ValidateSameShape reports ErrDimensionMismatch unless a and b have identical
// shapes. It backs Add/Sub/Hadamard and their *Assign forms.
// Complexity: O(1).
func ValidateSameShape[T numeric.Number](a, b *Dense[T]) error {
	if err := validateNotNil(a, b); err != nil {
		return numeric.Errorf("ValidateSameShape", err)
	}
	if a.r != b.r {
		return numeric.Errorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return numeric.Errorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible reports ErrDimensionMismatch unless a.Cols == b.Rows.
func ValidateMulCompatible[T numeric.Number](a, b *Dense[T]) error {
	if err := validateNotNil(a, b); err != nil {
		return numeric.Errorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return numeric.Errorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen reports ErrDimensionMismatch unless v.Len() == m.Cols().
// A nil vector is ErrInvalidArgument.
func ValidateVecLen[T numeric.Number](m *Dense[T], v *vector.Vector[T]) error {
	if err := validateNotNil(m); err != nil {
		return numeric.Errorf("ValidateVecLen", err)
	}
	if v == nil {
		return numeric.Errorf("ValidateVecLen", ErrInvalidArgument)
	}
	if v.Len() != m.c {
		return numeric.Errorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

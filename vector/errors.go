// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/numeric"

// Package-level aliases of the shared sentinels, so callers can write
// errors.Is(err, vector.ErrDimensionMismatch) without importing numeric.
var (
	ErrInvalidArgument   = numeric.ErrInvalidArgument
	ErrDimensionMismatch = numeric.ErrDimensionMismatch
	ErrIndexOutOfBounds  = numeric.ErrIndexOutOfBounds
)

// Method tags used in error wrappers.
const (
	ctxNew       = "vector.New"
	ctxFromSlice = "vector.FromSlice"
	ctxAt        = "Vector.At"
	ctxSet       = "Vector.Set"
	ctxAdd       = "Vector.Add"
	ctxAddAssign = "Vector.AddAssign"
	ctxSub       = "Vector.Sub"
	ctxSubAssign = "Vector.SubAssign"
	ctxHadamard  = "Vector.Hadamard"
	ctxHadAssign = "Vector.HadamardAssign"
	ctxDot       = "Vector.Dot"
)

// SPDX-License-Identifier: MIT
// Package matrix: sentinel aliases and error context tags.
// All operations MUST return (a wrap of) one of the numeric sentinels, and
// tests MUST check them via errors.Is. No operation panics on user input.

package matrix

import "github.com/katalvlaran/linalg/numeric"

// The matrix and vector packages share one sentinel set, so a mismatch from
// MulVec matches both matrix.ErrDimensionMismatch and
// vector.ErrDimensionMismatch.
var (
	// ErrInvalidArgument is returned for a negative shape, empty or ragged
	// rows, or a nil operand.
	ErrInvalidArgument = numeric.ErrInvalidArgument

	// ErrDimensionMismatch is returned when operand shapes are incompatible.
	ErrDimensionMismatch = numeric.ErrDimensionMismatch

	// ErrIndexOutOfBounds is returned by At/Set/Row/Col for invalid indices.
	ErrIndexOutOfBounds = numeric.ErrIndexOutOfBounds
)

// ---------- error context tags ----------

const (
	ctxNew         = "matrix.New"
	ctxIdentity    = "matrix.NewIdentity"
	ctxFromRows    = "matrix.FromRows"
	ctxFromVectors = "matrix.FromVectors"
	ctxAt          = "Dense.At"
	ctxSet         = "Dense.Set"
	ctxRow         = "Dense.Row"
	ctxCol         = "Dense.Col"
)

// Operation name constants for unified error wrapping.
const (
	opAdd            = "Dense.Add"
	opAddAssign      = "Dense.AddAssign"
	opSub            = "Dense.Sub"
	opSubAssign      = "Dense.SubAssign"
	opHadamard       = "Dense.Hadamard"
	opHadamardAssign = "Dense.HadamardAssign"
	opDotProduct     = "Dense.DotProduct"
	opMulVec         = "Dense.MulVec"
)

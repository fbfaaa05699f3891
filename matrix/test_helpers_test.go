// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep data integral so exact comparisons are valid.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense[T interface{ ~int | ~float64 }](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.New[T](r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a matrix from literal rows or fails the test.
func MustRows[T interface{ ~int | ~float64 }](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T interface{ ~int | ~float64 }](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomFill overwrites m with small deterministic integers in [-9, 9].
func RandomFill(t testing.TB, m *matrix.Dense[int], seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ int) int { return rng.Intn(19) - 9 })
}

// RandomDense allocates an r×c matrix filled by RandomFill.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense[int] {
	t.Helper()
	m := MustDense[int](t, r, c)
	RandomFill(t, m, seed)

	return m
}

// CompareExact asserts m holds exactly want, element by element.
func CompareExact[T interface{ ~int | ~float64 }](t testing.TB, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "element [%d,%d]", i, j)
		}
	}
}

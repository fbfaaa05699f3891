// Package matrix_test contains unit tests for Dense construction and access.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

// TestNewDefaultZero covers New(2,3): shape (2,3) and every element 0.
func TestNewDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{2, 3},
		{3, 3},
		{1, 6},
	} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense[int](t, tc.rows, tc.cols)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.cols, c)
			m.Do(func(i, j, v int) bool {
				require.Zerof(t, v, "element [%d,%d]", i, j)
				return true
			})
		})
	}
}

func TestNewZeroDimensions(t *testing.T) {
	m, err := matrix.New[float64](0, 3)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 3, c)
	require.Equal(t, "", m.String())

	tr := m.Transpose()
	r, c = tr.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 0, c)
}

// TestNewInvalidDimensions ensures New rejects negative dimensions.
func TestNewInvalidDimensions(t *testing.T) {
	_, err := matrix.New[int](-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.New[int](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	_, err = matrix.NewIdentity[int](-2)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

// TestNewOverflowingShape ensures shapes whose element count does not fit in
// an int are rejected instead of wrapping into a short buffer.
func TestNewOverflowingShape(t *testing.T) {
	cases := map[string]struct{ rows, cols int }{
		"max rows": {math.MaxInt, 2},
		"max cols": {2, math.MaxInt},
		"half+1":   {math.MaxInt/2 + 1, 2},
		"square":   {math.MaxInt/3 + 1, math.MaxInt/3 + 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := matrix.New[int](tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
			require.Nil(t, m)

			_, err = matrix.Zeros[int](tc.rows, tc.cols)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
		})
	}

	_, err := matrix.NewIdentity[int](math.MaxInt/2 + 1)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)

	// Zero-element shapes stay legal however long the other side is.
	m, err := matrix.New[int](math.MaxInt, 0)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, math.MaxInt, r)
	require.Equal(t, 0, c)
}

func TestFromRowsInvalid(t *testing.T) {
	cases := map[string][][]int{
		"nil":       nil,
		"no rows":   {},
		"empty row": {{}},
		"ragged":    {{1, 2}, {3}},
		"ragged 2":  {{1}, {2, 3}},
		"late":      {{1, 2}, {3, 4}, {}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.FromRows(rows)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
		})
	}
}

// TestFromRowsDeepCopy verifies the matrix never aliases its source rows.
func TestFromRowsDeepCopy(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	m := MustRows(t, src)

	src[0][0] = 100
	src[1] = []int{7, 7}
	CompareExact(t, [][]int{{1, 2}, {3, 4}}, m)

	out := m.ToRows()
	out[1][1] = -4
	require.Equal(t, 4, MustAt(t, m, 1, 1))
}

func TestFromVectors(t *testing.T) {
	m, err := matrix.FromVectors(vector.Of(1, 2, 3), vector.Of(4, 5, 6))
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.FromVectors[int]()
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = matrix.FromVectors(vector.Of(1), nil)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = matrix.FromVectors(vector.Of(1, 2), vector.Of(3))
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestIdentity(t *testing.T) {
	id, err := matrix.NewIdentity[float64](3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)
}

// TestAtSetOutOfBounds ensures At/Set return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense[float64](t, 2, 2)

	for _, idx := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -1}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1.23), matrix.ErrIndexOutOfBounds)
	}
	require.True(t, m.Equal(MustDense[float64](t, 2, 2)))
}

// TestSetGet validates Set followed by At on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense[float64](t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	require.Equal(t, 7.89, MustAt(t, m, 1, 2))
}

func TestRowCol(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	r, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, r.Slice())

	c, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int{3, 6}, c.Slice())

	// Row is a copy.
	require.NoError(t, r.Set(0, 40))
	require.Equal(t, 4, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestCloneIndependence ensures Clone returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

func TestEqual(t *testing.T) {
	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	require.True(t, a.Equal(MustRows(t, [][]int{{1, 2}, {3, 4}})))
	require.False(t, a.Equal(MustRows(t, [][]int{{1, 2}, {3, 5}})))
	require.False(t, a.Equal(MustRows(t, [][]int{{1, 2, 3, 4}})))
	require.False(t, a.Equal(nil))
}

// TestStringOutput checks that String formats one row per line.
func TestStringOutput(t *testing.T) {
	m := MustRows(t, [][]int{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	f := MustRows(t, [][]float64{{0.5, -1}})
	require.Equal(t, "[0.5, -1]\n", f.String())
}

func TestApply(t *testing.T) {
	m := MustDense[int](t, 2, 2)
	got := m.Apply(func(i, j, _ int) int { return 10*i + j })
	require.Same(t, m, got)
	CompareExact(t, [][]int{{0, 1}, {10, 11}}, m)
}

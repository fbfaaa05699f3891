package vector_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/vector"
	"github.com/stretchr/testify/require"
)

// randVector builds a deterministic vector of n small integers.
func randVector(rng *rand.Rand, n int) *vector.Vector[int] {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = rng.Intn(21) - 10
	}
	v, _ := vector.FromSlice(xs)

	return v
}

// TestDotScenario covers the canonical [1,2,3]·[4,5,6] case.
func TestDotScenario(t *testing.T) {
	got, err := vector.Of(1, 2, 3).Dot(vector.Of(4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, 32, got)

	f, err := vector.Of(0.5, 2).Dot(vector.Of(4.0, 0.25))
	require.NoError(t, err)
	require.InDelta(t, 2.5, f, 1e-12)

	zero, err := vector.Of[int]().Dot(vector.Of[int]())
	require.NoError(t, err)
	require.Equal(t, 0, zero)
}

// TestAddProperty checks (u+v)[i] == u[i]+v[i] over random inputs.
func TestAddProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(16)
		u, v := randVector(rng, n), randVector(rng, n)

		s, err := u.Add(v)
		require.NoError(t, err)
		require.Equal(t, n, s.Len())
		for i := 0; i < n; i++ {
			a, _ := u.At(i)
			b, _ := v.At(i)
			c, _ := s.At(i)
			require.Equal(t, a+b, c)
		}
	}
}

func TestPureOpsDoNotMutate(t *testing.T) {
	u := vector.Of(1, 2, 3)
	v := vector.Of(4, 5, 6)

	sum, err := u.Add(v)
	require.NoError(t, err)
	require.Equal(t, []int{5, 7, 9}, sum.Slice())

	diff, err := u.Sub(v)
	require.NoError(t, err)
	require.Equal(t, []int{-3, -3, -3}, diff.Slice())

	had, err := u.Hadamard(v)
	require.NoError(t, err)
	require.Equal(t, []int{4, 10, 18}, had.Slice())

	require.Equal(t, []int{3, 6, 9}, u.Scale(3).Slice())

	require.Equal(t, []int{1, 2, 3}, u.Slice())
	require.Equal(t, []int{4, 5, 6}, v.Slice())
}

// TestAssignOpsReturnReceiver ensures *Assign mutates and returns the same value.
func TestAssignOpsReturnReceiver(t *testing.T) {
	u := vector.Of(1.0, 2.0, 3.0)
	v := vector.Of(1.0, 1.0, 2.0)

	got, err := u.AddAssign(v)
	require.NoError(t, err)
	require.Same(t, u, got)
	require.Equal(t, []float64{2, 3, 5}, u.Slice())

	got, err = u.SubAssign(v)
	require.NoError(t, err)
	require.Same(t, u, got)
	require.Equal(t, []float64{1, 2, 3}, u.Slice())

	got, err = u.HadamardAssign(v)
	require.NoError(t, err)
	require.Same(t, u, got)
	require.Equal(t, []float64{1, 2, 6}, u.Slice())

	require.Same(t, u, u.ScaleAssign(0.5))
	require.Equal(t, []float64{0.5, 1, 3}, u.Slice())
}

// TestDimensionMismatchLeavesOperands ensures failed ops leave both sides untouched.
func TestDimensionMismatchLeavesOperands(t *testing.T) {
	u := vector.Of(1, 2, 3)
	v := vector.Of(1, 2)

	ops := map[string]func() error{
		"Add":            func() error { _, err := u.Add(v); return err },
		"AddAssign":      func() error { _, err := u.AddAssign(v); return err },
		"Sub":            func() error { _, err := u.Sub(v); return err },
		"SubAssign":      func() error { _, err := u.SubAssign(v); return err },
		"Hadamard":       func() error { _, err := u.Hadamard(v); return err },
		"HadamardAssign": func() error { _, err := u.HadamardAssign(v); return err },
		"Dot":            func() error { _, err := u.Dot(v); return err },
		"ReverseAssign":  func() error { _, err := v.AddAssign(u); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, op(), vector.ErrDimensionMismatch)
			require.Equal(t, []int{1, 2, 3}, u.Slice())
			require.Equal(t, []int{1, 2}, v.Slice())
		})
	}
}

func TestNilOperand(t *testing.T) {
	u := vector.Of(1, 2)
	_, err := u.Add(nil)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)
	_, err = u.Dot(nil)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)

	var nilVec *vector.Vector[int]
	_, err = nilVec.AddAssign(u)
	require.ErrorIs(t, err, vector.ErrInvalidArgument)
}

// TestSelfAssign covers aliasing the receiver as the operand.
func TestSelfAssign(t *testing.T) {
	u := vector.Of(1, 2, 3)
	_, err := u.AddAssign(u)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, u.Slice())

	_, err = u.HadamardAssign(u)
	require.NoError(t, err)
	require.Equal(t, []int{4, 16, 36}, u.Slice())
}

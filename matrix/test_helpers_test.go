// SPDX-License-Identifier: MIT
// Package matrix_test: fixtures shared by the kernel and statistics tests.
//
// All fixtures are finite and deterministic; random data is always seeded.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpca/matrix"
)

// hide wraps a Matrix so kernels cannot type-assert *Dense and must take
// their At/Set fallback paths.
type hide struct{ matrix.Matrix }

// MustDense allocates a zero r×c *Dense.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major values.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// RandomDense draws an r×c table of U(-1,1) values from seed.
func RandomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = 2*rng.Float64() - 1
	}

	return NewFilledDense(t, r, c, vals)
}

func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact requires m to equal the literal bit for bit.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Len(t, want, m.Rows(), "rows")
	for i := range want {
		require.Len(t, want[i], m.Cols(), "cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose requires matrix.AllClose(a, b, rtol, atol).
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "AllClose(rtol=%g, atol=%g)\na=%v\nb=%v", rtol, atol, a, b)
}

// sliceClose requires |a[i]-b[i]| ≤ atol + rtol·|b[i]| for every i.
func sliceClose(t *testing.T, a, b []float64, rtol, atol float64) {
	t.Helper()
	require.Len(t, a, len(b))
	for i := range a {
		require.InDelta(t, b[i], a[i], atol+rtol*math.Abs(b[i]), "index %d", i)
	}
}

func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	require.ErrorIs(t, err, target)
}

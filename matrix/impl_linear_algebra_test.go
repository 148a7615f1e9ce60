// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_KnownAndFallback(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, got)

	gotH, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareClose(t, gotH, got, 0, 0)

	_, err = matrix.Mul(a, a)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	a := RandomDense(t, 4, 7, 1)
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.Equal(t, 7, at.Rows())
	assert.Equal(t, 4, at.Cols())
	att, err := matrix.Transpose(at)
	require.NoError(t, err)
	CompareClose(t, att, a, 0, 0)
}

func TestScale_RejectsNonFinite(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, -2})
	got, err := matrix.Scale(a, -3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-3, 6}}, got)

	_, err = matrix.Scale(a, math.NaN())
	AssertErrorIs(t, err, matrix.ErrNaNInf)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	y, err := matrix.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	_, err = matrix.MatVec(a, []float64{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	y, err = matrix.MatVec(hide{a}, []float64{0, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 5}, y)
}

func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	var err error
	// non-square → ErrDimensionMismatch
	ns := MustDense(t, 3, 4)
	_, _, err = matrix.Eigen(ns, 1e-10, 50)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)

	// not symmetric within tol → ErrAsymmetry
	asym := MustDense(t, 3, 3)
	MustSet(t, asym, 0, 1, 1)
	MustSet(t, asym, 1, 0, 2)
	_, _, err = matrix.Eigen(asym, 1e-12, 50)
	AssertErrorIs(t, err, matrix.ErrAsymmetry)

	// zero iterations with nonzero off-diagonals → ErrMatrixEigenFailed
	sym := NewFilledDense(t, 3, 3, []float64{
		2, 1, 0,
		1, 3, 0,
		0, 0, 4,
	})
	_, _, err = matrix.Eigen(sym, 1e-12, 0)
	AssertErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

// TestEigen_Diagonal_NoRotation: diagonal matrices return the exact diagonal and Q=I.
func TestEigen_Diagonal_NoRotation(t *testing.T) {
	t.Parallel()

	diagVals := []float64{1, -2, 5, 3}
	A := MustDense(t, 4, 4)
	for i := range diagVals {
		MustSet(t, A, i, i, diagVals[i])
	}

	vals, Q, err := matrix.Eigen(A, 1e-12, 10)
	require.NoError(t, err)
	assert.Equal(t, diagVals, vals)
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	CompareClose(t, Q, I, 0, 0)
}

func TestEigen_2x2_Analytic(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	vals, Q, err := matrix.Eigen(A, 1e-12, 50)
	require.NoError(t, err)

	got := append([]float64(nil), vals...)
	sort.Float64s(got)
	assert.InDelta(t, 1.0, got[0], 1e-12)
	assert.InDelta(t, 3.0, got[1], 1e-12)

	// Eigenvectors are (1,±1)/√2 up to sign.
	inv := 1 / math.Sqrt2
	for k := 0; k < 2; k++ {
		assert.InDelta(t, inv, math.Abs(MustAt(t, Q, 0, k)), 1e-12)
		assert.InDelta(t, inv, math.Abs(MustAt(t, Q, 1, k)), 1e-12)
	}
}

// TestEigen_Reconstruction checks A·Q = Q·diag(λ) and QᵀQ = I on a random SPD matrix,
// on both the Dense fast path and the interface fallback.
func TestEigen_Reconstruction(t *testing.T) {
	t.Parallel()

	X := RandomDense(t, 40, 6, 99)
	A, _, err := matrix.Covariance(X)
	require.NoError(t, err)

	for name, in := range map[string]matrix.Matrix{"dense": A, "fallback": hide{A}} {
		vals, Q, err := matrix.Eigen(in, 1e-13, 1000)
		require.NoError(t, err, name)

		AQ, err := matrix.Mul(A, Q)
		require.NoError(t, err)
		var i, k int
		for k = 0; k < 6; k++ {
			for i = 0; i < 6; i++ {
				assert.InDelta(t, vals[k]*MustAt(t, Q, i, k), MustAt(t, AQ, i, k), 1e-10, "%s: A·q_%d", name, k)
			}
		}

		Qt, err := matrix.Transpose(Q)
		require.NoError(t, err)
		QtQ, err := matrix.Mul(Qt, Q)
		require.NoError(t, err)
		I, err := matrix.NewIdentity(6)
		require.NoError(t, err)
		CompareClose(t, QtQ, I, 0, 1e-12)
	}
}

func TestEigen_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{4, 1, 1, 3})
	before := A.Clone()
	_, _, err := matrix.Eigen(A, 1e-12, 50)
	require.NoError(t, err)
	CompareClose(t, A, before, 0, 0)
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
)

const epsTight = 1e-12

// ------------------------------
// ColumnMeans / CenterColumns
// ------------------------------

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})
	Xh := hide{X}

	Yf, meansF, err := matrix.CenterColumns(X)
	if err != nil {
		t.Fatalf("fast: %v", err)
	}
	Ys, meansS, err := matrix.CenterColumns(Xh)
	if err != nil {
		t.Fatalf("slow: %v", err)
	}

	// Means should be [5.5, 11, 16.5].
	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0, 0)
	sliceClose(t, meansS, want, 0, 0)

	CompareClose(t, Yf, Ys, 0, 0)

	// Column averages of Y ≈ 0.
	var i, j int
	var sum float64
	for j = 0; j < 3; j++ {
		sum = 0.0
		for i = 0; i < 2; i++ {
			sum += MustAt(t, Yf, i, j)
		}
		if math.Abs(sum/2) > epsTight {
			t.Fatalf("col %d not centered: avg=%g", j, sum/2)
		}
	}
}

func TestColumnMeans_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.ColumnMeans(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

// ------------------------------
// ColumnStdDevs
// ------------------------------

func TestColumnStdDevs_SampleDivisor(t *testing.T) {
	t.Parallel()

	// Column 0: {2,4,4,4,5,5,7,9}: mean 5, Σ(x-mean)² = 32 → sample var 32/7.
	// Column 1: constant → std 0.
	X := NewFilledDense(t, 8, 2, []float64{
		2, 1,
		4, 1,
		4, 1,
		4, 1,
		5, 1,
		5, 1,
		7, 1,
		9, 1,
	})
	stds, means, err := matrix.ColumnStdDevs(X)
	if err != nil {
		t.Fatalf("ColumnStdDevs: %v", err)
	}
	sliceClose(t, means, []float64{5, 1}, 0, epsTight)
	sliceClose(t, stds, []float64{math.Sqrt(32.0 / 7.0), 0}, 0, epsTight)

	stdsH, _, err := matrix.ColumnStdDevs(hide{X})
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	sliceClose(t, stdsH, stds, 0, 0)
}

func TestColumnStdDevs_TooFewRows(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	_, _, err := matrix.ColumnStdDevs(X)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ------------------------------
// Covariance / Correlation
// ------------------------------

func TestCovariance_Known(t *testing.T) {
	t.Parallel()

	// x = {1,2,3}, y = {2,4,6}: var(x)=1, var(y)=4, cov=2.
	X := NewFilledDense(t, 3, 2, []float64{1, 2, 2, 4, 3, 6})
	cov, means, err := matrix.Covariance(X)
	if err != nil {
		t.Fatalf("Covariance: %v", err)
	}
	sliceClose(t, means, []float64{2, 4}, 0, epsTight)
	CompareClose(t, cov, NewFilledDense(t, 2, 2, []float64{1, 2, 2, 4}), 0, epsTight)

	covH, _, err := matrix.Covariance(hide{X})
	if err != nil {
		t.Fatalf("fallback: %v", err)
	}
	CompareClose(t, covH, cov, 0, 0)
}

func TestCovariance_TooFewRows(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Covariance(NewFilledDense(t, 1, 2, []float64{1, 2}))
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCorrelation_UnitDiagonalAndSymmetry(t *testing.T) {
	t.Parallel()

	X := RandomDense(t, 50, 4, 42)
	corr, _, stds, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if err = matrix.ValidateSymmetric(corr, 0); err != nil {
		t.Fatalf("corr not exactly symmetric: %v", err)
	}

	var i, j int
	var v float64
	for i = 0; i < 4; i++ {
		if stds[i] <= 0 {
			t.Fatalf("std[%d]=%g; want > 0", i, stds[i])
		}
		if v = MustAt(t, corr, i, i); math.Abs(v-1) > 1e-12 {
			t.Fatalf("corr[%d,%d]=%g; want 1", i, i, v)
		}
		for j = 0; j < 4; j++ {
			if v = MustAt(t, corr, i, j); math.Abs(v) > 1+1e-12 {
				t.Fatalf("|corr[%d,%d]|=%g > 1", i, j, v)
			}
		}
	}
}

func TestCorrelation_ScaleInvariant(t *testing.T) {
	t.Parallel()

	X := RandomDense(t, 30, 3, 7)
	Y, err := matrix.Scale(X, 12.5)
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	cx, _, _, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation X: %v", err)
	}
	cy, _, _, err := matrix.Correlation(Y)
	if err != nil {
		t.Fatalf("Correlation Y: %v", err)
	}
	CompareClose(t, cx, cy, 0, 1e-12)
}

func TestCorrelation_DegenerateColumnZeroed(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 3, 2, []float64{1, 5, 2, 5, 3, 5})
	corr, _, stds, err := matrix.Correlation(X)
	if err != nil {
		t.Fatalf("Correlation: %v", err)
	}
	if stds[1] != 0 {
		t.Fatalf("std[1]=%g; want 0", stds[1])
	}
	CompareClose(t, corr, NewFilledDense(t, 2, 2, []float64{1, 0, 0, 0}), 0, epsTight)
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the standardize-then-decompose pipeline is built on
//     (means, sample standard deviations, centering, covariance, correlation) as
//     deterministic compositions over Mul/Transpose/Scale and the ew* kernels.
//
// Exposed API (see api.go):
//   - ColumnMeans(X)   -> means                 // Σ_i X[i,j] / r
//   - ColumnStdDevs(X) -> (stds, means)         // sample std: divide by r-1
//   - CenterColumns(X) -> (Xc, means)           // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)          // (Xcᵀ Xc)/(r-1)
//   - Correlation(X)   -> (Corr, means, stds)   // Pearson via z-scoring; std=0 → zeroed row/col
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops for centering.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opColumnStdDevs = "ColumnStdDevs"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opCorrelation   = "Correlation"
)

// columnMeans accumulates Σ_i X[i,j] in i→j order and divides by r.
// Returns a zero-filled slice of length c when r == 0.
func columnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := d.r, d.c
	means := make([]float64, c)
	if r == 0 {
		return means, nil
	}

	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means, nil
}

// centerColumns subtracts the per-column mean from every element.
//
// Behavior highlights:
//   - Zero-size (0×N or N×0): returns (X, zeroMeans, nil) without allocations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
func centerColumns(X Matrix) (Matrix, []float64, error) {
	means, err := columnMeans(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	if X.Rows() == 0 || X.Cols() == 0 {
		return X, means, nil
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// columnStdDevs computes the sample standard deviation of each column,
// sqrt(Σ_i (X[i,j]-mean_j)² / (r-1)), together with the means used.
//
// The two-pass form (center first, then sum squares) keeps round-off
// well below the 1e-9 tolerance the z-score round trip is tested at.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r < 2 and c > 0.
func columnStdDevs(X Matrix) ([]float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnStdDevs, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		return make([]float64, 0), make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opColumnStdDevs, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnStdDevs, err)
	}
	d := Xc.(*Dense) // centerColumns returns *Dense for r>0 && c>0

	sumsq := make([]float64, c)
	var i, j, base int
	var v float64
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			v = d.data[base+j]
			sumsq[j] += v * v
		}
	}

	stds := make([]float64, c)
	inv := 1.0 / float64(r-1)
	for j = 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * inv)
	}

	return stds, means, nil
}

// covariance computes the sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
//
// Behavior highlights:
//   - Symmetric output; diagonal equals per-column sample variances.
//   - c == 0 yields a legal 0×0 matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, _ := newDenseZeroOK(0, 0)
		return z, make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := gram(Xc, r-1)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return cov, means, nil
}

// correlation computes the Pearson correlation of columns via z-scoring:
// Corr = (Zᵀ Z)/(r-1), Z = (X − mean)·diag(1/std).
// A degenerate column (std == 0) becomes a zero row/column in Corr, including
// its diagonal; callers that must reject such columns check stds themselves.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func correlation(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := X.Rows(), X.Cols()
	if c == 0 {
		z, _ := newDenseZeroOK(0, 0)
		return z, make([]float64, 0), make([]float64, 0), nil
	}
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	stds, means, err := columnStdDevs(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	invStd := make([]float64, c)
	for j := 0; j < c; j++ {
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}
	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	corr, err := gram(Z, r-1)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return corr, means, stds, nil
}

// gram returns (Xᵀ X)/div through the canonical Transpose/Mul/Scale kernels and
// then mirrors the upper triangle so the result is exactly symmetric.
func gram(X Matrix, div int) (*Dense, error) {
	Xt, err := Transpose(X)
	if err != nil {
		return nil, err
	}
	G, err := Mul(Xt, X)
	if err != nil {
		return nil, err
	}
	S, err := Scale(G, 1.0/float64(div))
	if err != nil {
		return nil, err
	}
	out := S.(*Dense)
	n := out.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out.data[j*n+i] = out.data[i*n+j]
		}
	}

	return out, nil
}

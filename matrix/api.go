// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for the statistics and element-wise kernels.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// ScaleColumns returns out[i,j] = X[i,j] * scale[j].
// ErrDimensionMismatch when len(scale) != Cols(X).
func ScaleColumns(X Matrix, scale []float64) (*Dense, error) {
	return ewScaleCols(X, scale)
}

// SubtractColumns returns out[i,j] = X[i,j] - shift[j].
// ErrDimensionMismatch when len(shift) != Cols(X).
func SubtractColumns(X Matrix, shift []float64) (*Dense, error) {
	return ewBroadcastSubCols(X, shift)
}

// ---------- Statistics (public surface → internal implementations) ----------

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
// Time: O(r*c). Space: O(c).
func ColumnMeans(X Matrix) ([]float64, error) { return columnMeans(X) }

// ColumnStdDevs returns the per-column sample standard deviations (divisor r-1)
// and the column means used to compute them. Requires r >= 2.
// Time: O(r*c). Space: O(r*c) for the centered scratch copy.
func ColumnStdDevs(X Matrix) (stds, means []float64, err error) { return columnStdDevs(X) }

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
// Time: O(r*c). Space: O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// Covariance returns the sample covariance matrix (c×c) and the column means.
// Definition: Cov = (Xcᵀ Xc) / (r − 1), Xc = X − mean(X).
// Requires r >= 2. Time: O(r*c²). Space: O(c²).
func Covariance(X Matrix) (Matrix, []float64, error) { return covariance(X) }

// Correlation returns the Pearson correlation matrix (c×c), the column means,
// and the column sample standard deviations. Degenerate columns (std == 0)
// produce zero rows/columns. Requires r >= 2. Time: O(r*c²). Space: O(c²).
func Correlation(X Matrix) (Matrix, []float64, []float64, error) { return correlation(X) }

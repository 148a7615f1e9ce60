// SPDX-License-Identifier: MIT

package pca

import (
	"math"

	"github.com/katalvlaran/lvpca/matrix"
)

const opStandardize = "Standardize"

// roundOffUlps bounds, in units of ε·|mean|, the standard deviation that
// summation round-off can leave in a column with no real spread.
const roundOffUlps = 32

const epsilon = 0x1p-52

// Standardized is a z-scored matrix together with the statistics that produced it.
// It is immutable: accessors return copies.
type Standardized struct {
	z       *matrix.Dense
	means   []float64
	stds    []float64
	columns []string
}

// Matrix returns a copy of the R×C z-scored data.
func (s *Standardized) Matrix() *matrix.Dense { return s.z.Clone().(*matrix.Dense) }

// Rows returns R.
func (s *Standardized) Rows() int { return s.z.Rows() }

// Cols returns C.
func (s *Standardized) Cols() int { return s.z.Cols() }

// Means returns the per-column means of the original data.
func (s *Standardized) Means() []float64 { return append([]float64(nil), s.means...) }

// StdDevs returns the per-column sample standard deviations of the original data.
func (s *Standardized) StdDevs() []float64 { return append([]float64(nil), s.stds...) }

// Columns returns the column names.
func (s *Standardized) Columns() []string { return append([]string(nil), s.columns...) }

// Standardize z-scores every column of X: z[i,j] = (x[i,j] − mean_j) / sd_j, where
// sd_j is the sample standard deviation (divisor R−1).
//
// Implementation:
//   - Stage 1: validate shape (R ≥ 2, C ≥ 1), finiteness and the column-name option.
//   - Stage 2: column means and sample std-devs via matrix.ColumnStdDevs.
//   - Stage 3: reject the first column that is constant, or whose sd is at most
//     32·ε·|mean| (spread the two-pass sums cannot tell from round-off).
//   - Stage 4: Z = (X − means)·diag(1/sd).
//
// Errors:
//   - ErrInvalidInput (wrapping the matrix sentinel when one applies).
//   - *ColumnError matching ErrDegenerateColumn.
//
// Complexity:
//   - Time O(R*C), Space O(R*C). X is never mutated.
func Standardize(X matrix.Matrix, opts ...Option) (*Standardized, error) {
	o := gatherOptions(opts...)

	if err := validateInput(X); err != nil {
		return nil, err
	}
	r, c := X.Rows(), X.Cols()
	names, err := o.columnNames(c)
	if err != nil {
		return nil, invalidf(opStandardize, nil, "%v", err)
	}

	stds, means, err := matrix.ColumnStdDevs(X)
	if err != nil {
		return nil, invalidf(opStandardize, err, "column statistics")
	}

	inv := make([]float64, c)
	for j := 0; j < c; j++ {
		if zeroSpread(X, j, stds[j], means[j]) {
			return nil, &ColumnError{Index: j, Name: names[j], Mean: means[j], StdDev: stds[j]}
		}
		inv[j] = 1 / stds[j]
	}

	centered, err := matrix.SubtractColumns(X, means)
	if err != nil {
		return nil, invalidf(opStandardize, err, "center")
	}
	z, err := matrix.ScaleColumns(centered, inv)
	if err != nil {
		return nil, invalidf(opStandardize, err, "scale")
	}

	o.logger.WithField("rows", r).WithField("columns", c).Debug("standardized input")

	return &Standardized{z: z, means: means, stds: stds, columns: names}, nil
}

// validateInput applies the InvalidInput contract shared by every entry point.
func validateInput(X matrix.Matrix) error {
	if err := matrix.ValidateNotNil(X); err != nil {
		return invalidf(opStandardize, err, "nil matrix")
	}
	r, c := X.Rows(), X.Cols()
	if c < 1 {
		return invalidf(opStandardize, nil, "no columns")
	}
	if r < 2 {
		return invalidf(opStandardize, nil, "%d row(s); need at least 2", r)
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return invalidf(opStandardize, err, "non-finite value")
	}

	return nil
}

// zeroSpread reports whether column j has no variance: every value equals the
// first, or sd is within round-off of 0 relative to the mean. There is no
// absolute floor, so the check does not depend on the column's unit.
func zeroSpread(X matrix.Matrix, j int, sd, mean float64) bool {
	if sd == 0 || sd <= roundOffUlps*epsilon*math.Abs(mean) {
		return true
	}
	first, _ := X.At(0, j)
	var v float64
	for i := 1; i < X.Rows(); i++ {
		if v, _ = X.At(i, j); v != first {
			return false
		}
	}

	return true
}

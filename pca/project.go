// SPDX-License-Identifier: MIT

package pca

import (
	"math"

	"github.com/katalvlaran/lvpca/matrix"
)

const (
	opProject    = "Project"
	opProjectRow = "ProjectRow"
)

// Project maps new observations onto the fitted components: each row is
// standardized with the fitted means and standard deviations, then multiplied
// by the loadings. Projecting the training data reproduces Scores.
//
// Errors:
//   - ErrInvalidInput for a nil matrix, a column-count mismatch or non-finite cells.
func (r *Result) Project(X matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, invalidf(opProject, err, "nil matrix")
	}
	c := len(r.columns)
	if X.Cols() != c {
		return nil, invalidf(opProject, nil, "%d columns, fitted on %d", X.Cols(), c)
	}
	if err := matrix.ValidateFinite(X); err != nil {
		return nil, invalidf(opProject, err, "non-finite value")
	}
	vt, err := matrix.Transpose(r.loadings)
	if err != nil {
		return nil, invalidf(opProject, err, "loadings")
	}

	out, err := matrix.NewZeros(X.Rows(), c)
	if err != nil {
		return nil, invalidf(opProject, err, "%d rows", X.Rows())
	}
	row := make([]float64, c)
	var proj []float64
	for i := 0; i < X.Rows(); i++ {
		for j := range row {
			if row[j], err = X.At(i, j); err != nil {
				return nil, invalidf(opProject, err, "row %d", i)
			}
		}
		if proj, err = r.projectRow(vt, row); err != nil {
			return nil, invalidf(opProject, err, "row %d", i)
		}
		for k, v := range proj {
			if err = out.Set(i, k, v); err != nil {
				return nil, invalidf(opProject, err, "row %d", i)
			}
		}
	}

	return out, nil
}

// ProjectRow is Project for a single observation: it returns the C component
// scores of x.
//
// Errors:
//   - ErrInvalidInput when len(x) differs from the fitted column count or x holds
//     a NaN or ±Inf.
func (r *Result) ProjectRow(x []float64) ([]float64, error) {
	if len(x) != len(r.columns) {
		return nil, invalidf(opProjectRow, nil, "%d values, fitted on %d columns", len(x), len(r.columns))
	}
	for j, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, invalidf(opProjectRow, matrix.ErrNaNInf, "value %d", j)
		}
	}
	vt, err := matrix.Transpose(r.loadings)
	if err != nil {
		return nil, invalidf(opProjectRow, err, "loadings")
	}
	out, err := r.projectRow(vt, x)
	if err != nil {
		return nil, invalidf(opProjectRow, err, "project")
	}

	return out, nil
}

// projectRow z-scores x with the fitted statistics and returns Vᵀ·z.
func (r *Result) projectRow(vt matrix.Matrix, x []float64) ([]float64, error) {
	z := make([]float64, len(x))
	for j, v := range x {
		z[j] = (v - r.means[j]) * (1 / r.stds[j])
	}

	return matrix.MatVec(vt, z)
}

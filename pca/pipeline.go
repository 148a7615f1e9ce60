// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/katalvlaran/lvpca/matrix"
)

const opCorrelation = "Correlation"

// Run standardizes X and decomposes the result in one call
// (StandardizeAndDecompose). The options apply to both stages.
//
// Errors:
//   - ErrInvalidInput, ErrDegenerateColumn (as *ColumnError), and the solver
//     errors of Decompose.
func Run(X matrix.Matrix, opts ...Option) (*Result, error) {
	z, err := Standardize(X, opts...)
	if err != nil {
		return nil, err
	}

	return Decompose(z, opts...)
}

// Correlation returns the C×C Pearson correlation matrix of X, the input of a
// correlation heatmap. Unlike matrix.Correlation it rejects zero-variance
// columns instead of zeroing them.
func Correlation(X matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := validateInput(X); err != nil {
		return nil, err
	}
	names, err := o.columnNames(X.Cols())
	if err != nil {
		return nil, invalidf(opCorrelation, nil, "%v", err)
	}

	corr, means, stds, err := matrix.Correlation(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCorrelation, err)
	}
	for j, sd := range stds {
		if zeroSpread(X, j, sd, means[j]) {
			return nil, &ColumnError{Index: j, Name: names[j], Mean: means[j], StdDev: sd}
		}
	}

	return corr.(*matrix.Dense), nil
}

// FromRows builds the input matrix from row slices. Empty, ragged or non-finite
// input fails with ErrInvalidInput (wrapping the matrix sentinel).
func FromRows(rows [][]float64) (*matrix.Dense, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, invalidf("FromRows", err, "%d rows", len(rows))
	}

	return m, nil
}

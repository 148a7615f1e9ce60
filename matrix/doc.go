// SPDX-License-Identifier: MIT

// Package matrix offers a small, deterministic dense linear-algebra core for
// column-oriented statistics.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - Kernels: Mul, Transpose, Scale, MatVec.
//   - Column statistics: ColumnMeans, ColumnStdDevs (sample, r−1),
//     CenterColumns, Covariance, Correlation.
//   - Eigen, a Jacobi eigen-decomposition for symmetric matrices.
//
// Every kernel is pure: inputs are never mutated and every call returns a
// freshly allocated result. Loop orders are fixed, so identical inputs yield
// bit-identical outputs.
//
// Errors are package sentinels (ErrDimensionMismatch, ErrNaNInf, ...) wrapped
// with the operation name; match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix

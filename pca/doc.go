// SPDX-License-Identifier: MIT

// Package pca standardizes a numeric table and decomposes it into principal
// components.
//
// The pipeline has two stages:
//
//	Standardize  X (R×C)  → Z, z[i,j] = (x[i,j] − mean_j) / sd_j   (sample sd, R−1)
//	Decompose    Z        → eigenpairs of cov(Z) = corr(X), sorted by variance
//
// Run chains both. The Result exposes what plotting and reporting code needs:
// per-component loadings (variable plots), per-row scores with optional group
// labels (biplots), and explained-variance fractions (axis labels such as
// "PC1 (68.8%)").
//
// Determinism:
//
//   - Components are sorted by descending eigenvalue. Eigenvalues equal within
//     the tie tolerance are ordered by the column index of their largest-magnitude
//     loading, then by solver order.
//   - Each loading vector is signed so that its largest-magnitude entry is
//     positive; magnitude ties go to the lowest column index.
//
// Two solvers are available and agree up to the sign convention above:
// MethodJacobi (default) runs Jacobi rotations on the C×C covariance matrix;
// MethodSVD factorizes Z/√(R−1) with gonum.
//
// Errors:
//
//   - ErrInvalidInput: nil/empty/too-small matrix, NaN or ±Inf cells,
//     option lengths that do not match the data.
//   - ErrDegenerateColumn: a zero-variance column, reported as *ColumnError.
//   - ErrInsufficientRows is never returned as an error: when R < C the result
//     carries a Warning matching it and the warning is logged.
package pca

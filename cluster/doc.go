// SPDX-License-Identifier: MIT

// Package cluster orders variables for a clustered correlation heatmap.
//
// CorrelationDistance turns a correlation matrix into distances (1 − r, or
// 1 − |r| when the sign of a correlation should not separate variables).
// Agglomerate then builds a dendrogram bottom-up with single, complete or
// average linkage. Dendrogram.Order is the leaf sequence of that tree, and
// Reorder permutes the rows and columns of any square matrix into it.
//
// Merges use scipy-style ids: leaves are 0..n−1 and the cluster formed by merge
// k gets id n+k. Every step merges the closest pair of active clusters; equal
// distances are resolved by the lowest (a, b) id pair, so the output is
// deterministic.
//
// Complexity: O(n³) distance evaluations for n variables, which is ample for
// the handful of columns a PCA table has.
package cluster

// SPDX-License-Identifier: MIT

// Package report serializes PCA results for downstream collaborators: plotting
// scripts read JSON or YAML, people read the aligned text tables.
//
// FromResult summarizes a pca.Result (eigenvalues, explained and cumulative
// variance, loadings by column). Correlation and Scores wrap the heatmap and
// biplot inputs. Every report type implements Tabler, so Encode can render any
// of them in each Format.
package report

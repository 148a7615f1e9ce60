// SPDX-License-Identifier: MIT

// Package lvpca standardizes numeric tables and decomposes them into
// principal components, deterministically.
//
// 🚀 What is lvpca?
//
//	A small, pure-Go toolkit for the "z-score then PCA" workflow:
//		• Standardization: column means and sample standard deviations (r−1)
//		• Decomposition: Jacobi eigen-solver on the covariance, or thin SVD
//		• Deterministic output: stable ordering of tied components and a fixed
//		  sign convention, so two runs never disagree
//		• Datasets: CSV ingestion with NA handling and a built-in penguins table
//		• Correlation clustering: average/single/complete linkage dendrograms
//		• Reports: table, JSON and YAML renderings, plus the lvpca CLI
//
// Under the hood, everything is organized into subpackages:
//
//	matrix/     Dense storage, kernels, column statistics and the Jacobi solver
//	pca/        Standardize, Decompose, Run, Project and the Result accessors
//	dataset/    CSV reader, records with metadata, the embedded penguins sample
//	cluster/    hierarchical clustering of correlation distances
//	report/     summaries of results and their encoders
//	cmd/lvpca   the command-line front end
//
// Quick example:
//
//	X, _ := pca.FromRows([][]float64{{1, 2}, {2, 1}, {3, 4}, {4, 3}})
//	res, err := pca.Run(X, pca.WithColumns("x", "y"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.AxisLabel(0)) // PC1 (80.0%)
//
//	go install github.com/katalvlaran/lvpca/cmd/lvpca@latest
package lvpca

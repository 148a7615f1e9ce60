// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvpca/matrix"
)

// ExampleCorrelation computes the Pearson correlation of two perfectly
// anti-correlated columns.
func ExampleCorrelation() {
	X, _ := matrix.NewDenseFromRows([][]float64{
		{1, 10},
		{2, 8},
		{3, 6},
		{4, 4},
	})
	corr, means, stds, err := matrix.Correlation(X)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	r, _ := corr.At(0, 1)
	fmt.Printf("means=%v\n", means)
	fmt.Printf("stds=[%.4f %.4f]\n", stds[0], stds[1])
	fmt.Printf("r=%.3f\n", r)
	// Output:
	// means=[2.5 7]
	// stds=[1.2910 2.5820]
	// r=-1.000
}

// ExampleEigen decomposes a 2×2 symmetric matrix.
func ExampleEigen() {
	A, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1},
		{1, 2},
	})
	vals, _, err := matrix.Eigen(A, 1e-12, 50)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sort.Float64s(vals)
	fmt.Printf("%.3f %.3f\n", vals[0], vals[1])
	// Output:
	// 1.000 3.000
}

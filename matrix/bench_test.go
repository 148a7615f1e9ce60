// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvpca/matrix"
)

// benchData builds a deterministic r×c Dense for benchmarks.
func benchData(b *testing.B, r, c int) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	vals := make([]float64, r*c)
	for k := range vals {
		vals[k] = rng.NormFloat64()
	}
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		b.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// BenchmarkCorrelation_340x4 mirrors the size of a small measurement table.
func BenchmarkCorrelation_340x4(b *testing.B) {
	X := benchData(b, 340, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := matrix.Correlation(X); err != nil {
			b.Fatalf("Correlation: %v", err)
		}
	}
}

// BenchmarkEigen_32 decomposes a 32×32 covariance matrix.
func BenchmarkEigen_32(b *testing.B) {
	A, _, err := matrix.Covariance(benchData(b, 200, 32))
	if err != nil {
		b.Fatalf("Covariance: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = matrix.Eigen(A, 1e-12, 100000); err != nil {
			b.Fatalf("Eigen: %v", err)
		}
	}
}

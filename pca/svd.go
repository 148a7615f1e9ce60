// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/matrix"
)

// svdComponents factorizes Z/√(R−1) = U·Σ·Vᵀ with gonum; the right singular
// vectors are the loadings and λ_k = σ_k². For R < C the full V is requested so
// that C vectors exist; the missing singular values are zero.
func svdComponents(z *matrix.Dense) ([]component, error) {
	r, c := z.Shape()
	scale := 1 / math.Sqrt(float64(r-1))
	data := z.RawRowMajor()
	for k := range data {
		data[k] *= scale
	}
	A := mat.NewDense(r, c, data)

	kind := mat.SVDThin
	if r < c {
		kind = mat.SVDFull
	}
	var svd mat.SVD
	if ok := svd.Factorize(A, kind); !ok {
		return nil, fmt.Errorf("svd factorization: %w", matrix.ErrMatrixEigenFailed)
	}
	sigma := svd.Values(nil)
	var V mat.Dense
	svd.VTo(&V)

	comps := make([]component, c)
	for k := 0; k < c; k++ {
		vec := make([]float64, c)
		for j := 0; j < c; j++ {
			vec[j] = V.At(j, k)
		}
		var lambda float64
		if k < len(sigma) {
			lambda = sigma[k] * sigma[k]
		}
		comps[k] = component{value: lambda, vec: vec, index: k}
	}

	return comps, nil
}

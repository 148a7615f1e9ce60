// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose, scalar scaling, matrix-vector product and
// the symmetric Jacobi eigen-decomposition. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel converts its operands once via asDense, so the hot loops run on
//     flat row-major buffers regardless of the caller's Matrix implementation.
//   - Inputs are never mutated; each kernel allocates a fresh result.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial value for row-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opEigen     = "Eigen"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a×b as a new Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j loop order so the inner loop streams both rows contiguously.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	r, n, c := da.r, da.c, db.c
	out, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j, aBase, bBase, oBase int
	var aik float64
	for i = 0; i < r; i++ {
		aBase, oBase = i*n, i*c
		for k = 0; k < n; k++ {
			aik = da.data[aBase+k]
			if aik == 0 {
				continue // skip zero multiplications
			}
			bBase = k * c
			for j = 0; j < c; j++ {
				out.data[oBase+j] += aik * db.data[bBase+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := newDenseZeroOK(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// Scale returns alpha*m as a new Dense.
// Errors: ErrNilMatrix; ErrNaNInf when alpha is not finite.
func Scale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out, err := newDenseZeroOK(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range d.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy into a working Dense A and set Q = I.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j scan order and
//     apply the rotation that annihilates it; accumulate the rotation into Q.
//   - Stage 3: stop when max off-diagonal < tol; fail if maxIter rotations did not get there.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the largest off-diagonal magnitude (typ. 1e-10..1e-13).
//   - maxIter: cap on the number of rotations.
//
// Returns:
//   - []float64: eigenvalues, in the diagonal order of the rotated matrix (unsorted).
//   - Matrix: Q (n×n) whose column k is the unit eigenvector of eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf (bad tol or non-finite cell),
//     ErrAsymmetry, ErrMatrixEigenFailed (no convergence within maxIter).
//
// Determinism:
//   - Fixed pivot scan and update order: identical inputs give bit-identical outputs.
//
// Complexity:
//   - Time O(maxIter * n), plus O(n²) per pivot search; Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	tol = math.Abs(tol)

	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := src.Clone().(*Dense) // working copy; the input stays untouched
	q, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var i int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1.0
	}

	var (
		iter, p, r     int
		app, aqq, apq  float64
		theta, t, c, s float64
		aip, aiq       float64
		qip, qiq       float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff, pp, qq := maxOffDiagonal(a)
		if maxOff < tol {
			break
		}
		p, r = pp, qq

		app = a.data[p*n+p]
		aqq = a.data[r*n+r]
		apq = a.data[p*n+r]

		// θ = (aqq−app)/(2·apq); t is the smaller root of t² + 2θt − 1 = 0.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			aiq = a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*aiq
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[r*n+r] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qiq = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+r] = s*qip + c*qiq
		}
	}

	if maxOff, _, _ := maxOffDiagonal(a); maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("off-diagonal %g after %d rotations: %w",
			maxOff, maxIter, ErrMatrixEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}

// maxOffDiagonal scans the strict upper triangle in i→j order and returns the
// largest magnitude together with its position. Ties keep the first hit.
func maxOffDiagonal(a *Dense) (float64, int, int) {
	n := a.r
	maxOff := NormZero
	p, q := 0, 0
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}

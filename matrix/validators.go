// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry/finiteness checks here.
//  - Return tagged sentinels so call sites can wrap uniformly with their op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// Validator tags, one per exported validator.
const (
	tagNotNil        = "ValidateNotNil"
	tagSameShape     = "ValidateSameShape"
	tagSquare        = "ValidateSquare"
	tagVecLen        = "ValidateVecLen"
	tagSymmetric     = "ValidateSymmetric"
	tagMulCompatible = "ValidateMulCompatible"
	tagFinite        = "ValidateFinite"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf(tagSameShape, ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(tagSameShape, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows()==Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf(tagSquare, ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(tagSquare, ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures x has exactly n entries.
// A nil slice is accepted only when n==0.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(tagVecLen, ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A is square and symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrDimensionMismatch on structural issues, ErrNaNInf on a
// non-finite tol, ErrAsymmetry on violation. A negative tol is used as |tol|.
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tagSymmetric, err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf(tagSymmetric, ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	if n <= 1 {
		return nil // trivially symmetric
	}

	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // shape already validated
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(tagSymmetric, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf(tagMulCompatible, ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(tagMulCompatible, ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m in i→j order and rejects the first NaN/±Inf cell.
// The error names the offending coordinates and matches ErrNaNInf.
//
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tagFinite, err)
	}
	r, c := m.Rows(), m.Cols()

	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(tagFinite, fmt.Errorf("(%d,%d): %w", k/c, k%c, ErrNaNInf))
			}
		}
		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tagFinite, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(tagFinite, fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

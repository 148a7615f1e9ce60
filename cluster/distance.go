// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpca/matrix"
)

// DistanceOption tunes CorrelationDistance.
type DistanceOption func(*distanceOptions)

type distanceOptions struct {
	absolute bool
}

// Absolute makes strongly negative correlations close: d = 1 − |r|.
func Absolute() DistanceOption {
	return func(o *distanceOptions) { o.absolute = true }
}

// CorrelationDistance converts a correlation matrix into a distance matrix,
// d = 1 − r by default (range [0, 2]). The diagonal is exactly 0 and round-off
// below 0 is clamped.
//
// Errors: ErrInvalidInput when corr is not square, symmetric and finite, or has
// entries outside [−1, 1] beyond round-off.
func CorrelationDistance(corr matrix.Matrix, opts ...DistanceOption) (*matrix.Dense, error) {
	var o distanceOptions
	for _, set := range opts {
		set(&o)
	}
	if err := matrix.ValidateSymmetric(corr, symmetryTol); err != nil {
		return nil, fmt.Errorf("CorrelationDistance: %w: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateFinite(corr); err != nil {
		return nil, fmt.Errorf("CorrelationDistance: %w: %w", ErrInvalidInput, err)
	}
	n := corr.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("CorrelationDistance: %w: %w", ErrInvalidInput, err)
	}

	var r, d float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			r, _ = corr.At(i, j)
			if math.Abs(r) > 1+1e-9 {
				return nil, fmt.Errorf("CorrelationDistance: %w: r=%g at (%d,%d)", ErrInvalidInput, r, i, j)
			}
			if o.absolute {
				r = math.Abs(r)
			}
			d = math.Max(0, 1-r)
			if err = out.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("CorrelationDistance: %w", err)
			}
		}
	}

	return out, nil
}

// Reorder permutes the rows and columns of a square matrix into order, e.g. a
// correlation matrix into Dendrogram.Order.
func Reorder(m matrix.Matrix, order []int) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("Reorder: %w: %w", ErrInvalidInput, err)
	}
	if len(order) != m.Rows() {
		return nil, fmt.Errorf("Reorder: %w: order has %d entries for %d items", ErrInvalidInput, len(order), m.Rows())
	}
	seen := make([]bool, len(order))
	for _, k := range order {
		if k < 0 || k >= len(order) || seen[k] {
			return nil, fmt.Errorf("Reorder: %w: %v is not a permutation", ErrInvalidInput, order)
		}
		seen[k] = true
	}

	src, ok := m.(*matrix.Dense)
	if !ok {
		var err error
		if src, err = toDense(m); err != nil {
			return nil, fmt.Errorf("Reorder: %w", err)
		}
	}

	return src.Induced(order, order)
}

func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	n := m.Rows()
	out, err := matrix.NewDense(n, m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

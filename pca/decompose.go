// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvpca/matrix"
)

const opDecompose = "Decompose"

// component is one eigenpair before ordering; index is the solver's position.
type component struct {
	value float64
	vec   []float64
	index int
	lead  int // column of the largest-magnitude loading
}

// Decompose computes the principal components of a standardized matrix.
//
// Implementation:
//   - Stage 1: eigenpairs of the covariance of Z (Jacobi) or of the SVD of Z/√(R−1).
//   - Stage 2: fix signs so each vector's largest-magnitude loading is positive.
//   - Stage 3: order by descending eigenvalue; near-equal eigenvalues are ordered by
//     the column of their largest loading, then by solver index.
//   - Stage 4: clamp round-off negatives to 0, compute explained variance and Z·V.
//
// When R < C the result carries a WarnInsufficientRows warning, which is also
// logged at Warn level; the call still succeeds.
//
// Errors:
//   - ErrInvalidInput for a nil input or labels of the wrong length.
//   - matrix.ErrMatrixEigenFailed (wrapped) when the solver does not converge or
//     yields a clearly negative eigenvalue.
func Decompose(z *Standardized, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if z == nil || z.z == nil {
		return nil, invalidf(opDecompose, nil, "nil standardized matrix")
	}
	r, c := z.z.Shape()
	if o.hasLabels && len(o.labels) != r {
		return nil, invalidf(opDecompose, nil, "%d labels for %d rows", len(o.labels), r)
	}

	var (
		comps []component
		err   error
	)
	switch o.method {
	case MethodSVD:
		comps, err = svdComponents(z.z)
	default:
		comps, err = jacobiComponents(z.z, o)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opDecompose, o.method, err)
	}

	for k := range comps {
		comps[k].lead = orientSign(comps[k].vec, o.tieTol)
	}
	orderComponents(comps, o.tieTol)

	eigs := make([]float64, c)
	var total float64
	for k := range comps {
		v := comps[k].value
		if v < 0 {
			if v < -o.tieTol*float64(c) {
				return nil, fmt.Errorf("%s: eigenvalue %d is %g: %w", opDecompose, k, v, matrix.ErrMatrixEigenFailed)
			}
			v = 0
		}
		eigs[k] = v
		total += v
	}
	explained := make([]float64, c)
	for k := range eigs {
		explained[k] = eigs[k] / total
	}

	loadings, err := matrix.NewZeros(c, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	for k := range comps {
		for j, v := range comps[k].vec {
			if err = loadings.Set(j, k, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opDecompose, err)
			}
		}
	}
	scores, err := matrix.Mul(z.z, loadings)
	if err != nil {
		return nil, fmt.Errorf("%s: scores: %w", opDecompose, err)
	}

	res := &Result{
		method:      o.method,
		columns:     z.Columns(),
		means:       z.Means(),
		stds:        z.StdDevs(),
		eigenvalues: eigs,
		explained:   explained,
		loadings:    loadings,
		scores:      scores.(*matrix.Dense),
	}
	if o.hasLabels {
		res.labels = append([]string(nil), o.labels...)
	}
	if r < c {
		w := Warning{
			Code:    WarnInsufficientRows,
			Message: fmt.Sprintf("%d rows for %d columns; components beyond %d carry no variance", r, c, r-1),
		}
		res.warnings = append(res.warnings, w)
		o.logger.WithField("rows", r).WithField("columns", c).Warn(w.Message)
	}

	o.logger.WithField("method", o.method.String()).
		WithField("eigenvalues", eigs).
		Debug("decomposed")

	return res, nil
}

// jacobiComponents diagonalizes the covariance of z with matrix.Eigen.
func jacobiComponents(z *matrix.Dense, o Options) ([]component, error) {
	cov, _, err := matrix.Covariance(z)
	if err != nil {
		return nil, err
	}
	c := cov.Cols()
	vals, Q, err := matrix.Eigen(cov, o.tol, o.maxIterations(c))
	if err != nil {
		return nil, err
	}
	q := Q.(*matrix.Dense)

	comps := make([]component, c)
	var vec []float64
	for k := 0; k < c; k++ {
		if vec, err = q.Col(k); err != nil {
			return nil, err
		}
		comps[k] = component{value: vals[k], vec: vec, index: k}
	}

	return comps, nil
}

// orientSign flips vec in place so its largest-magnitude entry is positive and
// returns that entry's index. Entries within tieTol of the maximum tie; the lowest
// index wins.
func orientSign(vec []float64, tieTol float64) int {
	maxAbs := 0.0
	for _, v := range vec {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	lead := 0
	for j, v := range vec {
		if math.Abs(v) >= maxAbs-tieTol*maxAbs {
			lead = j
			break
		}
	}
	if vec[lead] < 0 {
		for j := range vec {
			vec[j] = -vec[j]
		}
	}

	return lead
}

// orderComponents sorts by descending eigenvalue, then reorders every run of
// eigenvalues within tieTol of the run's first element by (lead, index).
func orderComponents(comps []component, tieTol float64) {
	sort.SliceStable(comps, func(a, b int) bool { return comps[a].value > comps[b].value })

	for start := 0; start < len(comps); {
		end := start + 1
		ref := comps[start].value
		for end < len(comps) && ref-comps[end].value <= tieTol*math.Max(1, math.Abs(ref)) {
			end++
		}
		if end-start > 1 {
			run := comps[start:end]
			sort.SliceStable(run, func(a, b int) bool {
				if run[a].lead != run[b].lead {
					return run[a].lead < run[b].lead
				}
				return run[a].index < run[b].index
			})
		}
		start = end
	}
}

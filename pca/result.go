// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"

	"github.com/katalvlaran/lvpca/matrix"
)

// WarningCode classifies a non-fatal condition attached to a Result.
type WarningCode int

const (
	// WarnInsufficientRows: fewer observations than variables (R < C). The trailing
	// eigenvalues are zero and their loadings span an arbitrary basis of the null space.
	WarnInsufficientRows WarningCode = iota + 1
)

// String returns a stable snake_case name for logs and reports.
func (c WarningCode) String() string {
	switch c {
	case WarnInsufficientRows:
		return "insufficient_rows"
	default:
		return fmt.Sprintf("warning(%d)", int(c))
	}
}

// Warning is a non-fatal annotation on a Result.
type Warning struct {
	Code    WarningCode
	Message string
}

// Err returns the sentinel matching the warning, for errors.Is checks.
func (w Warning) Err() error {
	switch w.Code {
	case WarnInsufficientRows:
		return fmt.Errorf("%w: %s", ErrInsufficientRows, w.Message)
	default:
		return fmt.Errorf("%s: %s", w.Code, w.Message)
	}
}

func (w Warning) String() string { return w.Code.String() + ": " + w.Message }

// BiplotPoint is one observation placed on two principal axes.
type BiplotPoint struct {
	Row   int
	Label string
	X, Y  float64
}

// LoadingArrow is one variable drawn on the variable (correlation-circle) plot.
type LoadingArrow struct {
	Column string
	X, Y   float64
}

// Result holds the decomposition of a standardized matrix. Components are ordered
// by descending eigenvalue; all accessors return copies.
type Result struct {
	method      Method
	columns     []string
	labels      []string
	means       []float64
	stds        []float64
	eigenvalues []float64
	explained   []float64
	loadings    *matrix.Dense // C×C, column k = component k
	scores      *matrix.Dense // R×C
	warnings    []Warning
}

// Method reports the solver that produced the result.
func (r *Result) Method() Method { return r.method }

// Columns returns the variable names in input order.
func (r *Result) Columns() []string { return append([]string(nil), r.columns...) }

// NumComponents returns C (every component is kept).
func (r *Result) NumComponents() int { return len(r.eigenvalues) }

// NumRows returns R.
func (r *Result) NumRows() int { return r.scores.Rows() }

// Eigenvalues returns λ in descending order.
func (r *Result) Eigenvalues() []float64 { return append([]float64(nil), r.eigenvalues...) }

// ExplainedVariance returns λ_k / Σλ per component.
func (r *Result) ExplainedVariance() []float64 { return append([]float64(nil), r.explained...) }

// CumulativeVariance returns the running sum of ExplainedVariance.
func (r *Result) CumulativeVariance() []float64 {
	out := make([]float64, len(r.explained))
	acc := 0.0
	for k, v := range r.explained {
		acc += v
		out[k] = acc
	}

	return out
}

// Loading returns the unit loading vector of component k (length C), or nil when
// k is out of range.
func (r *Result) Loading(k int) []float64 {
	if k < 0 || k >= r.NumComponents() {
		return nil
	}
	v, _ := r.loadings.Col(k)

	return v
}

// Loadings returns the C×C loading matrix; column k is component k.
func (r *Result) Loadings() *matrix.Dense { return r.loadings.Clone().(*matrix.Dense) }

// Scores returns the R×C score matrix Z·V.
func (r *Result) Scores() *matrix.Dense { return r.scores.Clone().(*matrix.Dense) }

// Score returns the score of row i on component k.
func (r *Result) Score(i, k int) (float64, error) {
	v, err := r.scores.At(i, k)
	if err != nil {
		return 0, fmt.Errorf("Score(%d,%d): %w: %w", i, k, ErrComponentRange, err)
	}

	return v, nil
}

// Labels returns the per-row group labels, or nil when none were supplied.
func (r *Result) Labels() []string {
	if r.labels == nil {
		return nil
	}

	return append([]string(nil), r.labels...)
}

// Means returns the column means used for standardization.
func (r *Result) Means() []float64 { return append([]float64(nil), r.means...) }

// StdDevs returns the column sample standard deviations used for standardization.
func (r *Result) StdDevs() []float64 { return append([]float64(nil), r.stds...) }

// Warnings returns the non-fatal annotations (empty for a well-posed input).
func (r *Result) Warnings() []Warning { return append([]Warning(nil), r.warnings...) }

// AxisLabel formats component k as "PC1 (68.8%)". Out-of-range k yields "PC?".
func (r *Result) AxisLabel(k int) string {
	if k < 0 || k >= r.NumComponents() {
		return "PC?"
	}

	return fmt.Sprintf("PC%d (%.1f%%)", k+1, 100*r.explained[k])
}

// Biplot returns every row's scores on components kx and ky with its group label.
// Nil when either index is out of range.
func (r *Result) Biplot(kx, ky int) []BiplotPoint {
	if !r.validComponent(kx) || !r.validComponent(ky) {
		return nil
	}
	n := r.scores.Rows()
	pts := make([]BiplotPoint, n)
	var x, y float64
	for i := 0; i < n; i++ {
		x, _ = r.scores.At(i, kx)
		y, _ = r.scores.At(i, ky)
		pts[i] = BiplotPoint{Row: i, X: x, Y: y}
		if r.labels != nil {
			pts[i].Label = r.labels[i]
		}
	}

	return pts
}

// Arrows returns each variable's loadings on components kx and ky.
// Nil when either index is out of range.
func (r *Result) Arrows(kx, ky int) []LoadingArrow {
	if !r.validComponent(kx) || !r.validComponent(ky) {
		return nil
	}
	out := make([]LoadingArrow, len(r.columns))
	var x, y float64
	for j, name := range r.columns {
		x, _ = r.loadings.At(j, kx)
		y, _ = r.loadings.At(j, ky)
		out[j] = LoadingArrow{Column: name, X: x, Y: y}
	}

	return out
}

func (r *Result) validComponent(k int) bool { return k >= 0 && k < r.NumComponents() }

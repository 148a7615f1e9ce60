// SPDX-License-Identifier: MIT

// Package pca: functional configuration for Standardize, Decompose and Run.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, the single place where defaults and derived values are resolved.
package pca

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the Jacobi convergence threshold on the largest off-diagonal
	// covariance entry.
	DefaultTolerance = 1e-12

	// DefaultTieTolerance is the relative distance under which two eigenvalues (or two
	// loading magnitudes) are treated as equal for ordering and sign decisions.
	DefaultTieTolerance = 1e-9

	// DefaultMaxSweeps bounds the Jacobi solver: the rotation cap is
	// DefaultMaxSweeps × C(C−1)/2 unless WithMaxIterations overrides it.
	DefaultMaxSweeps = 100

	// DefaultMethod is the eigen solver used when WithMethod is not given.
	DefaultMethod = MethodJacobi
)

const (
	panicTolerance  = "pca: tolerance must be finite and > 0"
	panicIterations = "pca: max iterations must be > 0"
	panicMethod     = "pca: unsupported method"
)

// Method selects the eigen solver.
type Method int

const (
	// MethodJacobi runs Jacobi rotations on the C×C covariance matrix (matrix.Eigen).
	MethodJacobi Method = iota
	// MethodSVD factorizes Z/√(R−1) with gonum's SVD; λ_k = σ_k².
	MethodSVD
)

// String returns the lower-case solver name used by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodJacobi:
		return "jacobi"
	case MethodSVD:
		return "svd"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps "jacobi"/"eigen" and "svd" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "jacobi", "eigen":
		return MethodJacobi, nil
	case "svd":
		return MethodSVD, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Option mutates the internal configuration.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; build it with
// the WithX setters.
type Options struct {
	tol       float64
	tieTol    float64
	maxIter   int // 0 → derived from DefaultMaxSweeps and the column count
	method    Method
	columns   []string
	labels    []string
	logger    logrus.FieldLogger
	hasLabels bool
}

// WithTolerance sets the Jacobi convergence tolerance.
// Panics when tol is not finite or not positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolerance)
	}

	return func(o *Options) { o.tol = tol }
}

// WithTieTolerance sets the relative tolerance for eigenvalue and loading ties.
// Panics when tol is not finite or not positive.
func WithTieTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolerance)
	}

	return func(o *Options) { o.tieTol = tol }
}

// WithMaxIterations caps the number of Jacobi rotations. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicIterations)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithMethod selects the eigen solver. Panics on an unknown Method value.
func WithMethod(m Method) Option {
	if m != MethodJacobi && m != MethodSVD {
		panic(panicMethod)
	}

	return func(o *Options) { o.method = m }
}

// WithColumns names the input columns. The slice is copied; its length must match
// the column count of the data or the call fails with ErrInvalidInput.
func WithColumns(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.columns = cp }
}

// WithLabels attaches one group label per row (e.g. species) for biplot overlays.
// The slice is copied; its length must match the row count or the call fails with
// ErrInvalidInput.
func WithLabels(labels []string) Option {
	cp := append([]string(nil), labels...)

	return func(o *Options) {
		o.labels = cp
		o.hasLabels = true
	}
}

// WithLogger routes warnings (e.g. insufficient rows) and debug traces to l.
// A nil logger restores the default discard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies setters on top of the defaults (last writer wins) and
// fills derived values.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:    DefaultTolerance,
		tieTol: DefaultTieTolerance,
		method: DefaultMethod,
	}
	for _, set := range user {
		set(&o)
	}
	if o.logger == nil {
		o.logger = discardLogger()
	}

	return o
}

// maxIterations returns the Jacobi rotation cap for c columns.
func (o Options) maxIterations(c int) int {
	if o.maxIter > 0 {
		return o.maxIter
	}
	pairs := c * (c - 1) / 2
	if pairs < 1 {
		pairs = 1
	}

	return DefaultMaxSweeps * pairs
}

// columnNames returns the configured names, or col1..colC when none were given.
func (o Options) columnNames(c int) ([]string, error) {
	if o.columns == nil {
		names := make([]string, c)
		for j := range names {
			names[j] = fmt.Sprintf("col%d", j+1)
		}
		return names, nil
	}
	if len(o.columns) != c {
		return nil, fmt.Errorf("%d column names for %d columns", len(o.columns), c)
	}

	return append([]string(nil), o.columns...), nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// SPDX-License-Identifier: MIT

package pca_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpca/matrix"
)

// rawMatrix is a Matrix backed by row slices that performs no validation, so
// tests can hand NaN cells and empty shapes to the pipeline.
type rawMatrix struct {
	rows [][]float64
	cols int
}

func (m *rawMatrix) Rows() int { return len(m.rows) }
func (m *rawMatrix) Cols() int { return m.cols }

func (m *rawMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return 0, matrix.ErrOutOfRange
	}

	return m.rows[i][j], nil
}

func (m *rawMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.cols {
		return matrix.ErrOutOfRange
	}
	m.rows[i][j] = v

	return nil
}

func (m *rawMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.rows))
	for i := range m.rows {
		cp[i] = append([]float64(nil), m.rows[i]...)
	}

	return &rawMatrix{rows: cp, cols: m.cols}
}

// mustRows builds a Dense from row literals or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// correlatedTable returns an r×c table driven by two latent factors with
// column-specific scales and offsets, so its eigenvalues are well separated.
func correlatedTable(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		f1, f2 := rng.NormFloat64(), rng.NormFloat64()
		row := make([]float64, c)
		for j := range row {
			w1 := 1.0 / float64(j+1)
			w2 := float64(j%3) - 1
			noise := 0.3 * float64(j+1) * rng.NormFloat64()
			row[j] = float64(10*(j+1)) + float64(j+1)*(w1*f1+0.5*w2*f2+noise)
		}
		rows[i] = row
	}

	return mustRows(t, rows)
}

// column extracts column j of m.
func column(t *testing.T, m *matrix.Dense, j int) []float64 {
	t.Helper()
	v, err := m.Col(j)
	require.NoError(t, err)

	return v
}

// at reads m[i,j] or fails the test.
func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}


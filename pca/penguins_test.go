// SPDX-License-Identifier: MIT

package pca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvpca/dataset"
	"github.com/katalvlaran/lvpca/pca"
)

// TestPenguins_Scenario runs the whole pipeline on the embedded penguin sample:
// drop incomplete rows, standardize the four measurements, decompose.
func TestPenguins_Scenario(t *testing.T) {
	t.Parallel()

	ds, err := dataset.Penguins()
	require.NoError(t, err)
	ds, err = ds.DropIncomplete()
	require.NoError(t, err)
	require.Equal(t, 342, ds.Len())

	cols := []string{dataset.FlipperLength, dataset.BillLength, dataset.BillDepth, dataset.BodyMass}
	X, err := ds.Matrix(cols...)
	require.NoError(t, err)
	species, err := ds.Labels(dataset.Species)
	require.NoError(t, err)

	for _, m := range methods {
		res, err := pca.Run(X, pca.WithColumns(cols...), pca.WithLabels(species), pca.WithMethod(m))
		require.NoError(t, err, m.String())
		assert.Empty(t, res.Warnings())

		eig := res.Eigenvalues()
		assert.InDelta(t, 4, floats.Sum(eig), 1e-9)
		for k := 1; k < 4; k++ {
			assert.Greater(t, eig[0], eig[k], "PC1 has the largest eigenvalue")
		}
		ev := res.ExplainedVariance()
		assert.Greater(t, ev[0], 0.6)
		assert.Less(t, ev[0], 0.8)

		pc1 := res.Loading(0)
		flipper, bill, depth, mass := pc1[0], pc1[1], pc1[2], pc1[3]
		assert.Greater(t, flipper, 0.0, "flipper length leads PC1")
		assert.Equal(t, math.Signbit(flipper), math.Signbit(mass), "flipper and mass load together")
		assert.InDelta(t, flipper, mass, 0.15, "comparable magnitude")
		assert.NotEqual(t, math.Signbit(flipper), math.Signbit(depth), "bill depth loads opposite")
		assert.Greater(t, bill, 0.0)

		// Gentoo (long flippers, heavy) sit at the positive end of PC1, Adelie at the negative.
		sum := map[string]float64{}
		n := map[string]int{}
		for _, p := range res.Biplot(0, 1) {
			sum[p.Label] += p.X
			n[p.Label]++
		}
		assert.Equal(t, 151, n["Adelie"])
		assert.Greater(t, sum["Gentoo"]/float64(n["Gentoo"]), 1.0)
		assert.Less(t, sum["Adelie"]/float64(n["Adelie"]), -1.0)

		assert.Regexp(t, `^PC1 \(\d+\.\d%\)$`, res.AxisLabel(0))
	}
}

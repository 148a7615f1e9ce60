// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpca/internal/cli"
	"github.com/katalvlaran/lvpca/report"
)

// run executes one command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestPCA_BuiltinPenguinsJSON(t *testing.T) {
	out, logs, err := run(t, "pca", "--builtin", "penguins", "-o", "json",
		"--columns", "flipper_length_mm,bill_length_mm,bill_depth_mm,body_mass_g")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "jacobi", s.Method)
	assert.Equal(t, 342, s.Rows)
	require.Len(t, s.Components, 4)
	assert.Greater(t, s.Components[0].Explained, 0.6)
	assert.Equal(t, "flipper_length_mm", s.Components[0].Loadings[0].Column)
	assert.Contains(t, logs, "removed rows with missing values")
	assert.Contains(t, logs, "dropped=2")
}

func TestPCA_SVDTableWithComponents(t *testing.T) {
	out, _, err := run(t, "pca", "--builtin", "penguins", "--method", "svd", "--components", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "PC1")
	assert.Contains(t, lines[2], "PC2")
}

func TestScores_GroupLabels(t *testing.T) {
	out, _, err := run(t, "scores", "--builtin", "penguins", "--group", "species", "-o", "yaml")
	require.NoError(t, err)

	var sc report.Scores
	require.NoError(t, yaml.Unmarshal([]byte(out), &sc))
	assert.Equal(t, []string{"PC1", "PC2"}, sc.Components)
	require.Len(t, sc.Rows, 342)
	assert.Equal(t, "Adelie", sc.Rows[0].Label)
	assert.Equal(t, "Gentoo", sc.Rows[341].Label)
	assert.Len(t, sc.Rows[0].Values, 2)
}

func TestCorr_ClusterFromCSVAndConfig(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"name,a,b,c\n"+
			"p,1,9,2\n"+
			"q,2,7,1\n"+
			"r,3,6,NA\n"+
			"s,4,2,3\n"+
			"u,5,1,5\n"), 0o600))
	cfgPath := filepath.Join(dir, "lvpca.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\ncorr:\n  cluster: complete\n"), 0o600))

	out, _, err := run(t, "corr", "--config", cfgPath, "--file", csvPath)
	require.NoError(t, err)

	var c report.Correlation
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "complete", c.Linkage)
	assert.Len(t, c.Merges, 2)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, c.Columns)
	for i := range c.Values {
		assert.InDelta(t, 1, c.Values[i][i], 1e-12)
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("LVPCA_OUTPUT_FORMAT", "yaml")
	out, _, err := run(t, "pca", "--builtin", "penguins", "--components", "1")
	require.NoError(t, err)

	var s report.Summary
	require.NoError(t, yaml.Unmarshal([]byte(out), &s))
	assert.Len(t, s.Components, 1)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{"pca"}, "no input"},
		{"unknown builtin", []string{"pca", "--builtin", "iris"}, "unknown builtin"},
		{"unknown method", []string{"pca", "--builtin", "penguins", "--method", "qr"}, "unknown method"},
		{"unknown column", []string{"pca", "--builtin", "penguins", "--columns", "wingspan"}, "unknown column"},
		{"unknown format", []string{"pca", "--builtin", "penguins", "-o", "xml"}, "unknown format"},
		{"unknown linkage", []string{"corr", "--builtin", "penguins", "--cluster", "ward"}, "unknown linkage"},
		{"bad log format", []string{"pca", "--builtin", "penguins", "--log-format", "xml"}, "unknown log format"},
		{"missing config", []string{"pca", "--builtin", "penguins", "--config", "/nonexistent/lvpca.yaml"}, "reading config"},
	}
	for _, tc := range cases {
		_, _, err := run(t, tc.args...)
		require.Error(t, err, tc.name)
		assert.Contains(t, err.Error(), tc.want, tc.name)
	}
}

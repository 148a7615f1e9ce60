// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/katalvlaran/lvpca/cluster"
	"github.com/katalvlaran/lvpca/matrix"
	"github.com/katalvlaran/lvpca/pca"
)

// Loading is one variable's weight in a component.
type Loading struct {
	Column string  `json:"column" yaml:"column"`
	Value  float64 `json:"value" yaml:"value"`
}

// Component describes one principal component.
type Component struct {
	Name       string    `json:"name" yaml:"name"`
	Label      string    `json:"label" yaml:"label"`
	Eigenvalue float64   `json:"eigenvalue" yaml:"eigenvalue"`
	Explained  float64   `json:"explained" yaml:"explained"`
	Cumulative float64   `json:"cumulative" yaml:"cumulative"`
	Loadings   []Loading `json:"loadings" yaml:"loadings"`
}

// Summary is the serializable view of a pca.Result.
type Summary struct {
	Method     string      `json:"method" yaml:"method"`
	Rows       int         `json:"rows" yaml:"rows"`
	Columns    []string    `json:"columns" yaml:"columns"`
	Means      []float64   `json:"means" yaml:"means"`
	StdDevs    []float64   `json:"std_devs" yaml:"std_devs"`
	Components []Component `json:"components" yaml:"components"`
	Warnings   []string    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// FromResult summarizes the first n components of res; n <= 0 or beyond the
// component count keeps all of them.
func FromResult(res *pca.Result, n int) Summary {
	total := res.NumComponents()
	if n <= 0 || n > total {
		n = total
	}
	cols := res.Columns()
	eig, ev, cum := res.Eigenvalues(), res.ExplainedVariance(), res.CumulativeVariance()

	s := Summary{
		Method:     res.Method().String(),
		Rows:       res.NumRows(),
		Columns:    cols,
		Means:      res.Means(),
		StdDevs:    res.StdDevs(),
		Components: make([]Component, n),
	}
	for k := 0; k < n; k++ {
		vec := res.Loading(k)
		loads := make([]Loading, len(cols))
		for j, name := range cols {
			loads[j] = Loading{Column: name, Value: vec[j]}
		}
		s.Components[k] = Component{
			Name:       fmt.Sprintf("PC%d", k+1),
			Label:      res.AxisLabel(k),
			Eigenvalue: eig[k],
			Explained:  ev[k],
			Cumulative: cum[k],
			Loadings:   loads,
		}
	}
	for _, w := range res.Warnings() {
		s.Warnings = append(s.Warnings, w.String())
	}

	return s
}

// Table renders one row per component, then one row per variable's loadings.
func (s Summary) Table() ([]string, [][]string) {
	header := append([]string{"component", "eigenvalue", "explained", "cumulative"}, s.Columns...)
	rows := make([][]string, len(s.Components))
	for k, c := range s.Components {
		row := []string{c.Name, f4(c.Eigenvalue), pct(c.Explained), pct(c.Cumulative)}
		for _, l := range c.Loadings {
			row = append(row, f4(l.Value))
		}
		rows[k] = row
	}

	return header, rows
}

// Correlation is a (possibly reordered) correlation matrix with its dendrogram.
type Correlation struct {
	Columns []string        `json:"columns" yaml:"columns"`
	Values  [][]float64     `json:"values" yaml:"values"`
	Linkage string          `json:"linkage,omitempty" yaml:"linkage,omitempty"`
	Merges  []cluster.Merge `json:"merges,omitempty" yaml:"merges,omitempty"`
}

// NewCorrelation captures corr under the given column names. When dg is
// non-nil, rows and columns follow dg.Order.
func NewCorrelation(corr matrix.Matrix, columns []string, dg *cluster.Dendrogram, linkage cluster.Linkage) (Correlation, error) {
	if corr == nil || corr.Rows() != len(columns) || corr.Cols() != len(columns) {
		return Correlation{}, fmt.Errorf("NewCorrelation: %d names: %w", len(columns), matrix.ErrDimensionMismatch)
	}
	out := Correlation{Columns: append([]string(nil), columns...)}
	m := corr
	if dg != nil {
		reordered, err := cluster.Reorder(corr, dg.Order)
		if err != nil {
			return Correlation{}, fmt.Errorf("NewCorrelation: %w", err)
		}
		m = reordered
		for i, k := range dg.Order {
			out.Columns[i] = columns[k]
		}
		out.Linkage = linkage.String()
		out.Merges = append([]cluster.Merge(nil), dg.Merges...)
	}
	out.Values = make([][]float64, m.Rows())
	for i := range out.Values {
		out.Values[i] = make([]float64, m.Cols())
		for j := range out.Values[i] {
			out.Values[i][j], _ = m.At(i, j)
		}
	}

	return out, nil
}

// Table renders the square matrix with the column names as row headers.
func (c Correlation) Table() ([]string, [][]string) {
	header := append([]string{""}, c.Columns...)
	rows := make([][]string, len(c.Values))
	for i, vals := range c.Values {
		row := []string{c.Columns[i]}
		for _, v := range vals {
			row = append(row, f3(v))
		}
		rows[i] = row
	}

	return header, rows
}

// ScoreRow is one observation's coordinates on the reported components.
type ScoreRow struct {
	Row    int       `json:"row" yaml:"row"`
	Label  string    `json:"label,omitempty" yaml:"label,omitempty"`
	Values []float64 `json:"values" yaml:"values"`
}

// Scores is the biplot input: per-row scores and group labels.
type Scores struct {
	Components []string   `json:"components" yaml:"components"`
	Rows       []ScoreRow `json:"rows" yaml:"rows"`
}

// ScoresFromResult keeps the first n components (all when n <= 0).
func ScoresFromResult(res *pca.Result, n int) Scores {
	total := res.NumComponents()
	if n <= 0 || n > total {
		n = total
	}
	out := Scores{Components: make([]string, n), Rows: make([]ScoreRow, res.NumRows())}
	for k := 0; k < n; k++ {
		out.Components[k] = fmt.Sprintf("PC%d", k+1)
	}
	labels := res.Labels()
	S := res.Scores()
	for i := range out.Rows {
		row, _ := S.Row(i)
		out.Rows[i] = ScoreRow{Row: i, Values: row[:n]}
		if labels != nil {
			out.Rows[i].Label = labels[i]
		}
	}

	return out
}

// Table renders one line per observation.
func (s Scores) Table() ([]string, [][]string) {
	header := append([]string{"row", "label"}, s.Components...)
	rows := make([][]string, len(s.Rows))
	for i, r := range s.Rows {
		row := []string{fmt.Sprint(r.Row), r.Label}
		for _, v := range r.Values {
			row = append(row, f4(v))
		}
		rows[i] = row
	}

	return header, rows
}

func f3(v float64) string  { return fmt.Sprintf("%.3f", v) }
func f4(v float64) string  { return fmt.Sprintf("%.4f", v) }
func pct(v float64) string { return fmt.Sprintf("%.1f%%", 100*v) }

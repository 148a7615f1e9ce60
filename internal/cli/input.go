// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvpca/dataset"
	"github.com/katalvlaran/lvpca/matrix"
)

var errNoInput = errors.New("no input: use --file or --builtin penguins")

// table is the analysis input after NA filtering.
type table struct {
	X       *matrix.Dense
	columns []string
	labels  []string
}

// loadTable reads the configured source, selects columns and drops incomplete rows.
func (a *app) loadTable() (*table, error) {
	ds, err := a.readDataset()
	if err != nil {
		return nil, err
	}

	columns := a.v.GetStringSlice("input.columns")
	if len(columns) == 0 {
		columns = ds.Columns
	}
	complete, err := ds.DropIncomplete(columns...)
	if err != nil {
		return nil, err
	}
	if dropped := ds.Len() - complete.Len(); dropped > 0 {
		a.log.WithField("dropped", dropped).WithField("kept", complete.Len()).Info("removed rows with missing values")
	}

	X, err := complete.Matrix(columns...)
	if err != nil {
		return nil, err
	}
	t := &table{X: X, columns: append([]string(nil), columns...)}
	if group := a.v.GetString("input.group"); group != "" {
		if t.labels, err = complete.Labels(group); err != nil {
			return nil, err
		}
	}
	a.log.WithField("rows", X.Rows()).WithField("columns", strings.Join(columns, ",")).Debug("loaded table")

	return t, nil
}

func (a *app) readDataset() (*dataset.Dataset, error) {
	file, builtin := a.v.GetString("input.file"), a.v.GetString("input.builtin")
	switch {
	case file != "" && builtin != "":
		return nil, fmt.Errorf("--file and --builtin are mutually exclusive")
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return dataset.ReadCSV(f)
	case strings.EqualFold(builtin, "penguins"):
		return dataset.Penguins()
	case builtin != "":
		return nil, fmt.Errorf("unknown builtin dataset %q", builtin)
	default:
		return nil, errNoInput
	}
}

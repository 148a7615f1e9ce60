// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvpca/matrix"
)

// Record is one observation. Values follows Dataset.Columns and holds NaN for a
// missing measurement; Meta follows Dataset.Meta.
type Record struct {
	Values []float64
	Meta   []string
}

// Dataset is an in-memory table of records with named numeric and categorical
// columns. Methods never modify the receiver.
type Dataset struct {
	Columns []string // numeric column names
	Meta    []string // categorical column names
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }

// ColumnIndex returns the position of a numeric column in Columns.
func (d *Dataset) ColumnIndex(name string) (int, error) {
	for j, c := range d.Columns {
		if c == name {
			return j, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// MetaIndex returns the position of a categorical column in Meta.
func (d *Dataset) MetaIndex(name string) (int, error) {
	for j, c := range d.Meta {
		if c == name {
			return j, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// indices resolves numeric column names; no names means every numeric column.
func (d *Dataset) indices(cols []string) ([]int, error) {
	if len(cols) == 0 {
		idx := make([]int, len(d.Columns))
		for j := range idx {
			idx[j] = j
		}
		return idx, nil
	}
	idx := make([]int, len(cols))
	var err error
	for k, name := range cols {
		if idx[k], err = d.ColumnIndex(name); err != nil {
			return nil, err
		}
	}

	return idx, nil
}

// checkRecords rejects records whose Values or Meta length differs from the
// header. ReadCSV never builds such records; hand-built datasets can.
func (d *Dataset) checkRecords() error {
	for i, rec := range d.Records {
		if len(rec.Values) != len(d.Columns) {
			return fmt.Errorf("%w: record %d has %d values for %d columns", ErrInvalidInput, i, len(rec.Values), len(d.Columns))
		}
		if len(rec.Meta) != len(d.Meta) {
			return fmt.Errorf("%w: record %d has %d meta values for %d columns", ErrInvalidInput, i, len(rec.Meta), len(d.Meta))
		}
	}

	return nil
}

// DropIncomplete returns a dataset without the records that miss a value in any
// of the listed numeric columns (all numeric columns when none are listed).
// Records are shared with the receiver, not copied.
func (d *Dataset) DropIncomplete(cols ...string) (*Dataset, error) {
	idx, err := d.indices(cols)
	if err != nil {
		return nil, fmt.Errorf("DropIncomplete: %w", err)
	}
	if err = d.checkRecords(); err != nil {
		return nil, fmt.Errorf("DropIncomplete: %w", err)
	}

	out := &Dataset{
		Columns: append([]string(nil), d.Columns...),
		Meta:    append([]string(nil), d.Meta...),
		Records: make([]Record, 0, len(d.Records)),
	}
	for _, rec := range d.Records {
		if complete(rec, idx) {
			out.Records = append(out.Records, rec)
		}
	}

	return out, nil
}

func complete(rec Record, idx []int) bool {
	for _, j := range idx {
		if math.IsNaN(rec.Values[j]) {
			return false
		}
	}

	return true
}

// Matrix copies the listed numeric columns (all when none are listed) into an
// R×len(cols) Dense, in the given column order.
//
// Errors:
//   - ErrUnknownColumn for a name not in Columns.
//   - ErrMissingValue, naming the first missing cell; call DropIncomplete first.
//   - ErrInvalidInput when a record's length does not match the header.
//   - matrix.ErrInvalidDimensions when the dataset is empty.
func (d *Dataset) Matrix(cols ...string) (*matrix.Dense, error) {
	idx, err := d.indices(cols)
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}
	if err = d.checkRecords(); err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}
	m, err := matrix.NewDense(len(d.Records), len(idx))
	if err != nil {
		return nil, fmt.Errorf("Matrix: %d records × %d columns: %w", len(d.Records), len(idx), err)
	}

	var v float64
	for i, rec := range d.Records {
		for k, j := range idx {
			v = rec.Values[j]
			if math.IsNaN(v) {
				return nil, fmt.Errorf("Matrix: record %d column %q: %w", i, d.Columns[j], ErrMissingValue)
			}
			if err = m.Set(i, k, v); err != nil {
				return nil, fmt.Errorf("Matrix: record %d column %q: %w", i, d.Columns[j], err)
			}
		}
	}

	return m, nil
}

// Labels returns the values of one categorical column, one per record.
func (d *Dataset) Labels(meta string) ([]string, error) {
	j, err := d.MetaIndex(meta)
	if err != nil {
		return nil, fmt.Errorf("Labels: %w", err)
	}
	if err = d.checkRecords(); err != nil {
		return nil, fmt.Errorf("Labels: %w", err)
	}
	out := make([]string, len(d.Records))
	for i, rec := range d.Records {
		out[i] = rec.Meta[j]
	}

	return out, nil
}

// Groups returns the distinct values of a categorical column in order of first
// appearance, with their record counts.
func (d *Dataset) Groups(meta string) ([]string, map[string]int, error) {
	labels, err := d.Labels(meta)
	if err != nil {
		return nil, nil, err
	}
	var order []string
	counts := make(map[string]int)
	for _, l := range labels {
		if _, seen := counts[l]; !seen {
			order = append(order, l)
		}
		counts[l]++
	}

	return order, counts, nil
}

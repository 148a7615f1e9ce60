// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
)

const opReadCSV = "ReadCSV"

// DefaultNAValues are the cell contents read as a missing value.
var DefaultNAValues = []string{"NA", "", "NaN"}

// Option configures ReadCSV.
type Option func(*Options)

// Options is the resolved ReadCSV configuration.
type Options struct {
	numeric []string
	meta    []string
	na      map[string]struct{}
	comma   rune
}

// WithNumeric lists the columns parsed as numbers, in output order. Without it,
// every column whose non-missing cells all parse as numbers is numeric.
func WithNumeric(cols ...string) Option {
	cp := append([]string(nil), cols...)

	return func(o *Options) { o.numeric = cp }
}

// WithMeta lists the categorical columns to keep. Without it, every column that
// is not numeric is kept as metadata.
func WithMeta(cols ...string) Option {
	cp := append([]string(nil), cols...)

	return func(o *Options) { o.meta = cp }
}

// WithNAValues replaces the set of missing-value tokens. Tokens are matched
// after trimming surrounding spaces.
func WithNAValues(tokens ...string) Option {
	return func(o *Options) {
		o.na = make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			o.na[strings.TrimSpace(tok)] = struct{}{}
		}
	}
}

// WithComma sets the field delimiter (default ','). Panics on a newline, quote
// or the Unicode replacement character, which encoding/csv cannot use.
func WithComma(r rune) Option {
	if r == '\n' || r == '\r' || r == '"' || r == 0xFFFD {
		panic("dataset: invalid delimiter")
	}

	return func(o *Options) { o.comma = r }
}

func gatherOptions(user ...Option) Options {
	o := Options{comma: ','}
	WithNAValues(DefaultNAValues...)(&o)
	for _, set := range user {
		set(&o)
	}

	return o
}

func (o Options) isNA(cell string) bool {
	_, ok := o.na[strings.TrimSpace(cell)]

	return ok
}

// ReadCSV parses a header row followed by data rows.
//
// Implementation:
//   - Stage 1: read every row; the first is the header (trimmed, unique, non-empty).
//   - Stage 2: resolve numeric and categorical columns from the options, or infer
//     numeric columns from the data when WithNumeric is absent.
//   - Stage 3: convert cells; NA tokens become NaN in Values.
//
// All problems (ragged rows, unparseable numbers, unknown columns) are collected
// and returned together; the error matches ErrInvalidInput, and ErrUnknownColumn
// too when a requested column is absent.
func ReadCSV(r io.Reader, opts ...Option) (*Dataset, error) {
	o := gatherOptions(opts...)

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opReadCSV, ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w: no header row", opReadCSV, ErrInvalidInput)
	}

	var errs *multierror.Error
	header := make([]string, len(rows[0]))
	pos := make(map[string]int, len(header))
	for j, h := range rows[0] {
		h = strings.TrimSpace(h)
		switch _, dup := pos[h]; {
		case h == "":
			errs = multierror.Append(errs, fmt.Errorf("header column %d is empty", j+1))
		case dup:
			errs = multierror.Append(errs, fmt.Errorf("header column %q is duplicated", h))
		default:
			pos[h] = j
		}
		header[j] = h
	}

	body := rows[1:]
	for i, row := range body {
		if len(row) != len(header) {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %d fields, header has %d", i+2, len(row), len(header)))
		}
	}
	if errs.ErrorOrNil() != nil {
		return nil, fmt.Errorf("%s: %w: %w", opReadCSV, ErrInvalidInput, errs)
	}

	numeric := o.numeric
	if numeric == nil {
		numeric = inferNumeric(header, body, o)
	}
	meta := o.meta
	if meta == nil {
		meta = remaining(header, numeric)
	}
	numIdx := resolve(numeric, pos, &errs)
	metaIdx := resolve(meta, pos, &errs)

	ds := &Dataset{
		Columns: append([]string(nil), numeric...),
		Meta:    append([]string(nil), meta...),
		Records: make([]Record, len(body)),
	}
	var v float64
	for i, row := range body {
		rec := Record{Values: make([]float64, len(numIdx)), Meta: make([]string, len(metaIdx))}
		for k, j := range numIdx {
			if j < 0 {
				continue
			}
			cell := row[j]
			if o.isNA(cell) {
				rec.Values[k] = math.NaN()
				continue
			}
			if v, err = parseNumber(cell); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d column %q: %w", i+2, header[j], err))
				continue
			}
			rec.Values[k] = v
		}
		for k, j := range metaIdx {
			if j >= 0 {
				rec.Meta[k] = strings.TrimSpace(row[j])
			}
		}
		ds.Records[i] = rec
	}
	if errs.ErrorOrNil() != nil {
		return nil, fmt.Errorf("%s: %w: %w", opReadCSV, ErrInvalidInput, errs)
	}

	return ds, nil
}

// parseNumber accepts finite decimal numbers only.
func parseNumber(cell string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, fmt.Errorf("%q is not a number", cell)
		}
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not finite", cell)
	}

	return v, nil
}

// inferNumeric keeps, in header order, the columns whose non-missing cells all
// parse and which have at least one such cell.
func inferNumeric(header []string, body [][]string, o Options) []string {
	var out []string
	for j, h := range header {
		seen, ok := false, true
		for _, row := range body {
			if o.isNA(row[j]) {
				continue
			}
			if _, err := parseNumber(row[j]); err != nil {
				ok = false
				break
			}
			seen = true
		}
		if ok && seen {
			out = append(out, h)
		}
	}

	return out
}

func remaining(header, taken []string) []string {
	skip := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		skip[t] = struct{}{}
	}
	var out []string
	for _, h := range header {
		if _, ok := skip[h]; !ok {
			out = append(out, h)
		}
	}

	return out
}

// resolve maps names to header positions; unknown names record an error and map to -1.
func resolve(names []string, pos map[string]int, errs **multierror.Error) []int {
	idx := make([]int, len(names))
	for k, name := range names {
		j, ok := pos[name]
		if !ok {
			*errs = multierror.Append(*errs, fmt.Errorf("%w: %q", ErrUnknownColumn, name))
			j = -1
		}
		idx[k] = j
	}

	return idx
}

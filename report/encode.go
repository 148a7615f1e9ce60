// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format int

const (
	// FormatTable is an aligned, human-readable text table.
	FormatTable Format = iota
	// FormatJSON is indented JSON.
	FormatJSON
	// FormatYAML is YAML with two-space indentation.
	FormatYAML
)

// ErrUnknownFormat is returned by ParseFormat and Encode for an unsupported format.
var ErrUnknownFormat = errors.New("report: unknown format")

// ErrNotTabular is returned by Encode when FormatTable is requested for a value
// that does not implement Tabler.
var ErrNotTabular = errors.New("report: value has no table form")

func (f Format) String() string {
	switch f {
	case FormatTable:
		return "table"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat maps "table", "json" and "yaml"/"yml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Tabler is implemented by values with a text-table form.
type Tabler interface {
	Table() (header []string, rows [][]string)
}

// Encode writes v to w in format f.
func Encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("Encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("Encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("Encode yaml: %w", err)
		}
		return nil
	case FormatTable:
		t, ok := v.(Tabler)
		if !ok {
			return fmt.Errorf("Encode: %T: %w", v, ErrNotTabular)
		}
		return writeTable(w, t)
	default:
		return fmt.Errorf("Encode: %w: %v", ErrUnknownFormat, f)
	}
}

func writeTable(w io.Writer, t Tabler) error {
	header, rows := t.Table()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("Encode table: %w", err)
	}

	return nil
}

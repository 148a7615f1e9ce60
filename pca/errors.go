// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a malformed input matrix or option: nil, fewer than two rows,
	// no columns, non-finite cells, or labels/column names of the wrong length.
	ErrInvalidInput = errors.New("pca: invalid input")

	// ErrDegenerateColumn marks a column whose sample standard deviation is zero.
	// Returned wrapped in *ColumnError, which names the column.
	ErrDegenerateColumn = errors.New("pca: degenerate column")

	// ErrInsufficientRows marks a table with fewer rows than columns. It is surfaced
	// through Result.Warnings, never as a returned error.
	ErrInsufficientRows = errors.New("pca: fewer rows than columns")

	// ErrUnknownMethod is returned by ParseMethod for an unrecognized solver name.
	ErrUnknownMethod = errors.New("pca: unknown method")

	// ErrComponentRange marks a row or component index outside the result.
	ErrComponentRange = errors.New("pca: index out of range")
)

// ColumnError reports a zero-variance column by position and name.
// errors.Is(err, ErrDegenerateColumn) holds for every *ColumnError.
type ColumnError struct {
	Index  int     // zero-based column index
	Name   string  // column name, when known
	Mean   float64 // the column's (constant) value
	StdDev float64 // observed sample standard deviation (0 or round-off)
}

func (e *ColumnError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%v: column %d (%q) has zero variance (mean=%g)", ErrDegenerateColumn, e.Index, e.Name, e.Mean)
	}

	return fmt.Sprintf("%v: column %d has zero variance (mean=%g)", ErrDegenerateColumn, e.Index, e.Mean)
}

// Unwrap lets errors.Is match ErrDegenerateColumn.
func (e *ColumnError) Unwrap() error { return ErrDegenerateColumn }

// invalidf builds an ErrInvalidInput error with operation context. When cause is
// non-nil it stays reachable through errors.Is as well.
func invalidf(op string, cause error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		return fmt.Errorf("%s: %w: %s: %w", op, ErrInvalidInput, msg, cause)
	}

	return fmt.Errorf("%s: %w: %s", op, ErrInvalidInput, msg)
}

// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrInvalidInput marks malformed tabular input.
	ErrInvalidInput = errors.New("dataset: invalid input")

	// ErrUnknownColumn marks a column name absent from the dataset.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrMissingValue marks a missing (NA) cell where a number is required.
	ErrMissingValue = errors.New("dataset: missing value")
)

// SPDX-License-Identifier: MIT

// Package dataset is the input boundary of the PCA pipeline: a small table of
// observations with named numeric measurements and categorical metadata.
//
// A Dataset is read from CSV (ReadCSV), filtered upstream of the decomposition
// (DropIncomplete removes rows with missing measurements) and turned into a
// matrix.Dense over the chosen numeric columns (Matrix). Labels extracts one
// categorical column, e.g. species, for colouring a biplot.
//
// Missing values are stored as NaN in Record.Values. The NA tokens are
// configurable; the defaults are "NA", "NaN" and the empty cell.
//
// Penguins returns an embedded sample with the Palmer penguins schema
// (species, island, bill_length_mm, bill_depth_mm, flipper_length_mm,
// body_mass_g, sex, year). The values are synthetic: they were drawn from
// per-species means and covariances resembling the published measurements and
// keep its shape of 344 rows, two of which have every measurement missing.
//
// Errors:
//   - ErrInvalidInput: malformed CSV (no header, ragged rows, unparseable
//     numeric cells, unknown or duplicate columns). ReadCSV reports every
//     problem it finds in one aggregated error.
//   - ErrUnknownColumn: a column name that is not part of the dataset.
//   - ErrMissingValue: Matrix was asked for a cell that is missing.
package dataset

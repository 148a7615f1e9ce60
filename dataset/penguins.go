// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
)

//go:embed data/penguins.csv
var penguinsCSV []byte

// Penguin column names.
const (
	Species       = "species"
	Island        = "island"
	Sex           = "sex"
	Year          = "year"
	BillLength    = "bill_length_mm"
	BillDepth     = "bill_depth_mm"
	FlipperLength = "flipper_length_mm"
	BodyMass      = "body_mass_g"
)

const penguinRowCount = 344

// PenguinMeasurements lists the four numeric penguin columns in file order.
var PenguinMeasurements = []string{BillLength, BillDepth, FlipperLength, BodyMass}

// Penguins parses the embedded penguin sample. The measurements are numeric
// columns; species, island, sex and year are metadata.
func Penguins() (*Dataset, error) {
	ds, err := ReadCSV(bytes.NewReader(penguinsCSV),
		WithNumeric(PenguinMeasurements...),
		WithMeta(Species, Island, Sex, Year),
	)
	if err != nil {
		return nil, fmt.Errorf("Penguins: %w", err)
	}
	if ds.Len() != penguinRowCount {
		return nil, fmt.Errorf("Penguins: %d records, want %d: %w", ds.Len(), penguinRowCount, ErrInvalidInput)
	}

	return ds, nil
}

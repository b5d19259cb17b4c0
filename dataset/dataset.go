// SPDX-License-Identifier: MIT

// Package dataset supplies sample matrices for the statistical tests: the
// embedded Fisher iris data and a loader for numeric CSV files.
package dataset

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvstat/matrix"
)

//go:embed iris.csv
var irisCSV string

// Iris species labels as they appear in the embedded data.
const (
	Setosa     = "setosa"
	Versicolor = "versicolor"
	Virginica  = "virginica"
)

// Iris feature column indices.
const (
	SepalLength = iota
	SepalWidth
	PetalLength
	PetalWidth
)

var (
	// ErrUnknownSpecies is returned by Select for a label absent from the data.
	ErrUnknownSpecies = errors.New("dataset: unknown species")

	// ErrParse is returned when a CSV cell is not a number.
	ErrParse = errors.New("dataset: malformed numeric cell")
)

// Iris holds the 150 observations of Fisher's iris data.
type Iris struct {
	FeatureNames []string
	Features     *matrix.Dense // 150×4
	Species      []string      // one label per row of Features
}

// LoadIris parses the embedded copy of the data set.
func LoadIris() (*Iris, error) {
	rd := csv.NewReader(strings.NewReader(irisCSV))
	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: iris: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("dataset: iris: %w", matrix.ErrInvalidInput)
	}

	header := records[0]
	body := records[1:]
	nFeat := len(header) - 1

	rows := make([][]float64, len(body))
	species := make([]string, len(body))
	for i, rec := range body {
		rows[i], err = parseRow(rec[:nFeat], i+2)
		if err != nil {
			return nil, fmt.Errorf("dataset: iris: %w", err)
		}
		species[i] = rec[nFeat]
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("dataset: iris: %w", err)
	}

	return &Iris{
		FeatureNames: append([]string(nil), header[:nFeat]...),
		Features:     m,
		Species:      species,
	}, nil
}

// Select returns the rows of one species restricted to the given feature
// columns, in the given order. With no columns every feature is kept.
//
// Errors: ErrUnknownSpecies; matrix.ErrOutOfRange for a bad column index.
func (ir *Iris) Select(species string, cols ...int) (*matrix.Dense, error) {
	var idx []int
	for i, s := range ir.Species {
		if s == species {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("%q: %w", species, ErrUnknownSpecies)
	}
	if len(cols) == 0 {
		cols = make([]int, ir.Features.Cols())
		for j := range cols {
			cols[j] = j
		}
	}

	return ir.Features.Induced(idx, cols)
}

// LoadCSV reads a numeric matrix from comma-separated text, one observation
// per line. A first line with no numeric cell at all is treated as a header;
// a partly numeric first line is data and fails with ErrParse.
//
// Errors: ErrParse for a non-numeric cell past the header;
// matrix.ErrInvalidInput for empty or ragged data.
func LoadCSV(r io.Reader) (*matrix.Dense, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1 // ragged input is reported by matrix.NewFromRows
	rd.TrimLeadingSpace = true
	rd.Comment = '#'

	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: csv: %w", err)
	}

	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		if i == 0 && isHeader(rec) {
			continue
		}
		row, perr := parseRow(rec, i+1)
		if perr != nil {
			return nil, fmt.Errorf("dataset: csv: %w", perr)
		}
		rows = append(rows, row)
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("dataset: csv: %w", err)
	}

	return m, nil
}

// isHeader reports whether no cell of rec parses as a number.
func isHeader(rec []string) bool {
	for _, cell := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err == nil {
			return false
		}
	}

	return true
}

func parseRow(rec []string, line int) ([]float64, error) {
	row := make([]float64, len(rec))
	var err error
	for j, cell := range rec {
		if row[j], err = strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
			return nil, fmt.Errorf("line %d column %d %q: %w", line, j+1, cell, ErrParse)
		}
	}

	return row, nil
}

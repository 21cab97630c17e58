package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/phasor/grid"
)

var (
	// errEmptyCSV indicates an input without any sample.
	errEmptyCSV = errors.New("field csv: no samples")

	// errRaggedCSV indicates rows of differing length.
	errRaggedCSV = errors.New("field csv: rows differ in length")

	// errTooManyAxes indicates a field that has no CSV rendering.
	errTooManyAxes = errors.New("field csv: only 1-D and 2-D fields can be written")
)

// readField parses a CSV field. Each record is one row along axis 1; values
// within a record run along axis 0. A single record gives a 1-D field.
// Lines starting with '#' are ignored.
func readField(r io.Reader) (*grid.Field, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("field csv: %w", err)
	}
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, errEmptyCSV
	}

	cols := len(records[0])
	data := make([]float64, 0, cols*len(records))
	for row, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", errRaggedCSV, row, len(rec), cols)
		}
		for col, s := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("field csv: row %d col %d: %w", row, col, err)
			}
			data = append(data, v)
		}
	}

	if len(records) == 1 {
		return grid.FromSlice(data, cols)
	}
	return grid.FromSlice(data, cols, len(records))
}

// writeField writes f in the layout readField accepts, preceded by a shape
// comment.
func writeField(w io.Writer, f *grid.Field) error {
	if f.Dims() > 2 {
		return fmt.Errorf("%w: %v", errTooManyAxes, f.Shape())
	}
	if _, err := fmt.Fprintf(w, "# shape %s\n", shapeString(f.Shape())); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cols := f.Size(0)
	data := f.Data()
	rec := make([]string, cols)
	for lo := 0; lo < len(data); lo += cols {
		for j, v := range data[lo : lo+cols] {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/optmat/optmat/internal/models"
	"github.com/optmat/optmat/internal/optics"
)

// CSVOptions control how a column file is read. The layout follows the
// common measurement export: column 0 is the wavelength, columns 1..k are
// indices of modes 1..k.
type CSVOptions struct {
	// Mode selects which index column to read (0 = column 1).
	Mode int
	// Delimiter defaults to ','.
	Delimiter rune
	// Unit of the wavelength column; defaults to nanometers.
	Unit optics.Unit
}

// FromCSV reads (wavelength, index) rows from r and builds a tabulated
// model.
func FromCSV(r io.Reader, opts CSVOptions) (*models.Tabulated, error) {
	samples, unit, err := ReadCSV(r, opts)
	if err != nil {
		return nil, err
	}
	return FromPairs(samples, unit)
}

// ReadCSV parses the raw samples without building a model, for callers
// that persist or transform the data first.
func ReadCSV(r io.Reader, opts CSVOptions) ([]Sample, optics.Unit, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.Unit == "" {
		opts.Unit = optics.Nanometers
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", optics.ErrMalformedSource, err)
	}

	col := opts.Mode + 1
	samples := make([]Sample, 0, len(rows))
	for i, row := range rows {
		if len(row) <= col {
			return nil, "", fmt.Errorf("%w: row %d has %d columns, need %d",
				optics.ErrMalformedSource, i, len(row), col+1)
		}
		wl, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, "", fmt.Errorf("%w: row %d wavelength %q", optics.ErrMalformedSource, i, row[0])
		}
		n, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return nil, "", fmt.Errorf("%w: row %d index %q", optics.ErrMalformedSource, i, row[col])
		}
		samples = append(samples, Sample{Wavelength: wl, Index: n})
	}

	return samples, opts.Unit, nil
}

// FromCSVFile is FromCSV over a file path.
func FromCSVFile(path string, opts CSVOptions) (*models.Tabulated, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromCSV(f, opts)
}

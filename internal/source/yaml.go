package source

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/optmat/optmat/internal/models"
	"github.com/optmat/optmat/internal/optics"
)

// Document is the yaml material-data schema:
//
//	material: BK7
//	unit: um
//	samples:
//	  - [0.40, 1.5308]
//	  - [0.60, 1.5163]
//
// Unit defaults to micrometers when omitted.
type Document struct {
	Material string      `yaml:"material"`
	Unit     string      `yaml:"unit"`
	Samples  [][]float64 `yaml:"samples"`
}

// FromYAML decodes a material document from r and builds a tabulated model.
func FromYAML(r io.Reader) (string, *models.Tabulated, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", nil, fmt.Errorf("%w: %v", optics.ErrMalformedSource, err)
	}

	unit := optics.Unit(doc.Unit)
	if doc.Unit == "" {
		unit = optics.Micrometers
	}

	samples := make([]Sample, 0, len(doc.Samples))
	for i, row := range doc.Samples {
		if len(row) != 2 {
			return "", nil, fmt.Errorf("%w: sample %d has %d values, want 2",
				optics.ErrMalformedSource, i, len(row))
		}
		samples = append(samples, Sample{Wavelength: row[0], Index: row[1]})
	}

	tab, err := FromPairs(samples, unit)
	if err != nil {
		return "", nil, err
	}
	return doc.Material, tab, nil
}

// FromYAMLFile is FromYAML over a file path.
func FromYAMLFile(path string) (string, *models.Tabulated, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	return FromYAML(f)
}

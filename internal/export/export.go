// Package export writes dispersion sweep curves to CSV, JSON and SVG.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"github.com/optmat/optmat/internal/engine"
)

// SweepData is the JSON document for one exported sweep.
type SweepData struct {
	Material      string    `json:"material"`
	Points        int       `json:"points"`
	Wavelengths   []float64 `json:"wavelengths_m"`
	Index         []float64 `json:"n"`
	GroupIndex    []float64 `json:"ng"`
	GroupVelocity []float64 `json:"vg_m_per_s"`
	GVD           []float64 `json:"gvd_s2_per_m"`
}

func newSweepData(material string, c *engine.Curve) SweepData {
	return SweepData{
		Material:      material,
		Points:        c.Len(),
		Wavelengths:   c.Wavelengths,
		Index:         c.Index,
		GroupIndex:    c.GroupIndex,
		GroupVelocity: c.GroupVelocity,
		GVD:           c.GVD,
	}
}

// WriteJSON encodes the sweep as indented JSON.
func WriteJSON(w io.Writer, material string, c *engine.Curve) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newSweepData(material, c))
}

// ExportJSON writes the sweep to a JSON file.
func ExportJSON(path, material string, c *engine.Curve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, material, c)
}

// WriteCSV encodes the sweep as CSV with a header row.
func WriteCSV(w io.Writer, c *engine.Curve) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"wavelength_m", "n", "ng", "vg_m_per_s", "gvd_s2_per_m"}); err != nil {
		return err
	}
	for i := range c.Wavelengths {
		row := []string{
			strconv.FormatFloat(c.Wavelengths[i], 'e', 9, 64),
			strconv.FormatFloat(c.Index[i], 'g', 12, 64),
			strconv.FormatFloat(c.GroupIndex[i], 'g', 12, 64),
			strconv.FormatFloat(c.GroupVelocity[i], 'g', 12, 64),
			strconv.FormatFloat(c.GVD[i], 'e', 9, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the sweep to a CSV file.
func ExportCSV(path string, c *engine.Curve) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, c)
}

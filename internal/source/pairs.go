package source

import (
	"github.com/optmat/optmat/internal/models"
	"github.com/optmat/optmat/internal/optics"
)

// Sample is one measured point: wavelength in the source's declared unit,
// plus the refractive index at that wavelength.
type Sample struct {
	Wavelength float64
	Index      float64
}

// FromPairs validates raw samples and builds a tabulated model.
// Wavelengths convert from the declared unit to meters; ordering,
// duplicates and non-numeric values are rejected by the model
// constructor with ErrMalformedSource.
func FromPairs(samples []Sample, unit optics.Unit) (*models.Tabulated, error) {
	factor, err := unit.Factor()
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(samples))
	ns := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.Wavelength * factor
		ns[i] = s.Index
	}
	return models.NewTabulated(xs, ns)
}

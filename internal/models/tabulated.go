package models

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/optmat/optmat/internal/optics"
)

// MinSamples is the minimum number of (λ, n) pairs any interpolation needs.
// Four or more give a stable cubic fit; two fall back to a straight line.
const MinSamples = 2

// Tabulated is a data-driven dispersion model interpolating measured
// (λ, n) samples with an Akima cubic spline. Queries outside the sampled
// domain are refused: measured dispersion is not valid beyond its span.
// Immutable after construction.
type Tabulated struct {
	xs     []float64 // meters, strictly increasing
	spline interp.AkimaSpline
}

// NewTabulated builds a model from sample wavelengths [m] and refractive
// indices. Wavelengths must be finite, positive and strictly increasing.
func NewTabulated(wavelengths, indices []float64) (*Tabulated, error) {
	if len(wavelengths) != len(indices) {
		return nil, fmt.Errorf("%w: %d wavelengths vs %d indices",
			optics.ErrMalformedSource, len(wavelengths), len(indices))
	}
	if len(wavelengths) < MinSamples {
		return nil, fmt.Errorf("%w: got %d samples, need at least %d",
			optics.ErrInsufficientData, len(wavelengths), MinSamples)
	}
	for i, x := range wavelengths {
		if !optics.Wavelength(x).IsValid() {
			return nil, fmt.Errorf("%w: sample %d wavelength %g", optics.ErrMalformedSource, i, x)
		}
		if math.IsNaN(indices[i]) || math.IsInf(indices[i], 0) {
			return nil, fmt.Errorf("%w: sample %d index %g", optics.ErrMalformedSource, i, indices[i])
		}
		if i > 0 && x <= wavelengths[i-1] {
			return nil, fmt.Errorf("%w: wavelengths not strictly increasing at sample %d",
				optics.ErrMalformedSource, i)
		}
	}

	t := &Tabulated{xs: append([]float64(nil), wavelengths...)}
	ns := append([]float64(nil), indices...)
	if err := t.spline.Fit(t.xs, ns); err != nil {
		return nil, fmt.Errorf("%w: %v", optics.ErrMalformedSource, err)
	}
	return t, nil
}

// Domain returns the sampled wavelength span [m].
func (t *Tabulated) Domain() (min, max optics.Wavelength) {
	return optics.Wavelength(t.xs[0]), optics.Wavelength(t.xs[len(t.xs)-1])
}

func (t *Tabulated) check(wl optics.Wavelength) error {
	x := wl.Meters()
	if x < t.xs[0] || x > t.xs[len(t.xs)-1] {
		return fmt.Errorf("%w: λ=%g m outside [%g, %g]",
			optics.ErrOutOfRange, x, t.xs[0], t.xs[len(t.xs)-1])
	}
	return nil
}

func (t *Tabulated) Permittivity(wl optics.Wavelength) (float64, error) {
	if err := t.check(wl); err != nil {
		return 0, err
	}
	n := t.spline.Predict(wl.Meters())
	return n * n, nil
}

// DPermittivity returns dε/dλ [1/m] from the spline's own derivative
// (ε = n², so ε' = 2·n·n'). The spline derivative is exact for the fitted
// interpolant; re-differencing the samples would stack a second numerical
// error source on top of the fit.
func (t *Tabulated) DPermittivity(wl optics.Wavelength) (float64, error) {
	if err := t.check(wl); err != nil {
		return 0, err
	}
	x := wl.Meters()
	n := t.spline.Predict(x)
	dn := t.spline.PredictDerivative(x)
	return 2.0 * n * dn, nil
}

package optics

import "math"

// SpeedOfLight is c in vacuum [m/s].
const SpeedOfLight = 299792458.0

// Wavelength is a physical wavelength in meters.
type Wavelength float64

// Meters returns the wavelength as a bare float64 in meters.
func (w Wavelength) Meters() float64 { return float64(w) }

// Micrometers returns the wavelength in micrometers.
func (w Wavelength) Micrometers() float64 { return float64(w) * 1e6 }

// Nanometers returns the wavelength in nanometers.
func (w Wavelength) Nanometers() float64 { return float64(w) * 1e9 }

// IsValid reports whether the wavelength is strictly positive and finite.
func (w Wavelength) IsValid() bool {
	v := float64(w)
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// DispersionModel is the capability every material model exposes: relative
// permittivity ε as a function of wavelength. Implementations are immutable
// after construction and safe for concurrent queries.
//
// Two families exist: closed-form models (Sellmeier, Laurent, Cauchy) and
// data-driven models (Tabulated, interpolated from measured samples).
type DispersionModel interface {
	// Permittivity returns ε(λ). It fails with ErrSingularity at an
	// analytic pole and ErrOutOfRange outside a tabulated domain.
	Permittivity(wl Wavelength) (float64, error)
}

// DerivativeModel is implemented by models that can evaluate dε/dλ
// analytically. The derivative is with respect to wavelength in meters.
type DerivativeModel interface {
	DispersionModel
	DPermittivity(wl Wavelength) (float64, error)
}

// SecondDerivativeModel is implemented by models that can evaluate
// d²ε/dλ² analytically [1/m²].
type SecondDerivativeModel interface {
	DerivativeModel
	D2Permittivity(wl Wavelength) (float64, error)
}

// Ranged is implemented by models valid only on a bounded wavelength
// domain, such as Tabulated.
type Ranged interface {
	Domain() (min, max Wavelength)
}

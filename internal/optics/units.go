package optics

import "fmt"

// Unit is a declared wavelength unit for sample data whose scale is known
// up front (file adapters). Bare query wavelengths go through Resolve
// instead.
type Unit string

const (
	Meters      Unit = "m"
	Micrometers Unit = "um"
	Nanometers  Unit = "nm"
)

// Factor returns the multiplier converting a value in this unit to meters.
func (u Unit) Factor() (float64, error) {
	switch u {
	case Meters:
		return 1.0, nil
	case Micrometers:
		return 1e-6, nil
	case Nanometers:
		return 1e-9, nil
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrMalformedSource, string(u))
}

// Magnitude windows for unit inference. Each window is the optical range
// 200 nm - 20 um expressed on one unit scale; the three windows are
// disjoint, so classification is unambiguous.
const (
	minMeters = 2e-7
	maxMeters = 2e-5
	minMicro  = 0.2
	maxMicro  = 20.0
	minNano   = 200.0
	maxNano   = 20000.0
)

// Resolve infers the unit of a bare numeric wavelength from its order of
// magnitude and returns the canonical value in meters. A bare float carries
// no unit information; the inference is a bounded ergonomic convenience
// valid only across the optical spectrum. Values matching no window fail
// with ErrAmbiguousUnit.
func Resolve(value float64) (Wavelength, error) {
	switch {
	case value >= minMeters && value <= maxMeters:
		return Wavelength(value), nil
	case value >= minMicro && value <= maxMicro:
		return Wavelength(value * 1e-6), nil
	case value >= minNano && value <= maxNano:
		return Wavelength(value * 1e-9), nil
	}
	return 0, fmt.Errorf("%w: %g", ErrAmbiguousUnit, value)
}

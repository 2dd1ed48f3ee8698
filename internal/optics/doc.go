// Package optics provides core primitives for wavelength-dependent
// material dispersion.
//
// The package defines the fundamental types shared by every model and
// engine in the repository:
//
//   - [Wavelength]: a physical wavelength, canonically in meters
//   - [Resolve]: unit inference for bare numeric wavelengths
//   - [DispersionModel]: interface for permittivity models (ε(λ))
//   - [DerivativeModel], [SecondDerivativeModel]: optional analytic
//     derivative capabilities a model may expose
//
// # Example
//
//	wl, _ := optics.Resolve(1550) // recognized as nm -> 1.55e-6 m
//	eps, _ := model.Permittivity(wl)
//	n := math.Sqrt(eps)
//
// # Thread Safety
//
// Models are immutable after construction and every query is a pure
// function of (model, λ), so concurrent queries require no locking.
package optics

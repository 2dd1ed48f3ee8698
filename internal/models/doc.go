// Package models provides dispersion model implementations.
//
// Each model implements the [optics.DispersionModel] interface, defining
// relative permittivity as a function of wavelength:
//
//   - [Sellmeier]: classical resonance form 1 + Σ B·λ²/(λ²−C)
//   - [Laurent]: offset resonance form A + Σ B/(λ²−C) − D·λ²
//   - [Cauchy]: inverse power series in λ²
//   - [Tabulated]: spline interpolation over measured (λ, n) samples
//   - [Constant]: fixed permittivity (vacuum, air)
//
// Closed-form models also implement [optics.SecondDerivativeModel], so
// derived quantities come from exact derivatives. Tabulated models expose
// the spline's first derivative only.
//
// All closed-form coefficients are parameterized in micrometers, the
// convention the optics literature uses; conversion from canonical meters
// happens at the evaluation boundary.
package models

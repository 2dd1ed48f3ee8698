// Package engine turns a dispersion model's permittivity function into
// the full suite of derived optical quantities: refractive index, its
// wavelength derivatives, group index, group velocity and group-velocity
// dispersion.
//
// The engine borrows a model per call and caches nothing; every query is
// a pure function of (model, λ). When a model exposes analytic
// derivatives they are used directly; otherwise the engine falls back to
// central finite differences with a relative step (see [RelStep]).
// Model errors propagate verbatim: a finite-difference point that lands
// outside a tabulated domain fails with the model's own error instead of
// being clamped.
package engine

package engine

import "github.com/optmat/optmat/internal/optics"

// Material binds a dispersion model to the derivative engine behind the
// caller-facing query API. Every method accepts a bare numeric wavelength
// and resolves its unit per optics.Resolve, so m.N(1.55e-6), m.N(1.55)
// and m.N(1550) are the same query.
type Material struct {
	name  string
	model optics.DispersionModel
	eng   *Engine
}

func NewMaterial(name string, model optics.DispersionModel) *Material {
	return &Material{name: name, model: model, eng: New()}
}

func (m *Material) Name() string { return m.name }

// Model exposes the underlying dispersion model for direct engine use.
func (m *Material) Model() optics.DispersionModel { return m.model }

// Eps returns the relative permittivity ε(λ).
func (m *Material) Eps(wavelength float64) (float64, error) {
	wl, err := optics.Resolve(wavelength)
	if err != nil {
		return 0, err
	}
	return m.model.Permittivity(wl)
}

// N returns the phase refractive index.
func (m *Material) N(wavelength float64) (float64, error) {
	wl, err := optics.Resolve(wavelength)
	if err != nil {
		return 0, err
	}
	return m.eng.Index(m.model, wl)
}

// Ng returns the group index.
func (m *Material) Ng(wavelength float64) (float64, error) {
	wl, err := optics.Resolve(wavelength)
	if err != nil {
		return 0, err
	}
	return m.eng.GroupIndex(m.model, wl)
}

// Vg returns the group velocity [m/s].
func (m *Material) Vg(wavelength float64) (float64, error) {
	wl, err := optics.Resolve(wavelength)
	if err != nil {
		return 0, err
	}
	return m.eng.GroupVelocity(m.model, wl)
}

// Gvd returns the group-velocity dispersion β₂ [s²/m].
func (m *Material) Gvd(wavelength float64) (float64, error) {
	wl, err := optics.Resolve(wavelength)
	if err != nil {
		return 0, err
	}
	return m.eng.GVD(m.model, wl)
}

// Beta0 returns the propagation constant [1/m].
func (m *Material) Beta0(wavelength float64) (float64, error) {
	wl, err := optics.Resolve(wavelength)
	if err != nil {
		return 0, err
	}
	return m.eng.Beta0(m.model, wl)
}

// Beta1 returns 1/vg [s/m].
func (m *Material) Beta1(wavelength float64) (float64, error) {
	wl, err := optics.Resolve(wavelength)
	if err != nil {
		return 0, err
	}
	return m.eng.Beta1(m.model, wl)
}

// Beta2 returns β₂, identical to Gvd.
func (m *Material) Beta2(wavelength float64) (float64, error) {
	return m.Gvd(wavelength)
}

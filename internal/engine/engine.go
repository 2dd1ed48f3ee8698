package engine

import (
	"math"

	"github.com/optmat/optmat/internal/optics"
)

// RelStep is the relative finite-difference step: h = λ·RelStep. The step
// balances truncation error (∝ h²) against floating-point cancellation
// (∝ 1/h); at 1e-6 the 3-point second difference that GVD rests on keeps
// a few percent headroom above the precision floor while truncation stays
// negligible.
const RelStep = 1e-6

// Engine computes derived optical quantities from any dispersion model.
// A zero-cost value; safe for concurrent use.
type Engine struct {
	relStep float64
}

func New() *Engine {
	return &Engine{relStep: RelStep}
}

// Index returns the phase refractive index n(λ) = sqrt(ε(λ)).
func (e *Engine) Index(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	eps, err := m.Permittivity(wl)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(eps), nil
}

// DIndex returns dn/dλ [1/m]. With an analytic dε/dλ the chain rule
// n' = ε'/(2n) is exact; otherwise a central difference on Index.
func (e *Engine) DIndex(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	if dm, ok := m.(optics.DerivativeModel); ok {
		eps, err := dm.Permittivity(wl)
		if err != nil {
			return 0, err
		}
		deps, err := dm.DPermittivity(wl)
		if err != nil {
			return 0, err
		}
		return deps / (2 * math.Sqrt(eps)), nil
	}

	h := wl.Meters() * e.relStep
	plus, err := e.Index(m, wl+optics.Wavelength(h))
	if err != nil {
		return 0, err
	}
	minus, err := e.Index(m, wl-optics.Wavelength(h))
	if err != nil {
		return 0, err
	}
	return (plus - minus) / (2 * h), nil
}

// D2Index returns d²n/dλ² [1/m²]. With analytic ε' and ε'' the closed
// form n'' = ε''/(2n) − (ε')²/(4n³) is exact; otherwise a 3-point central
// second difference on Index with the same step DIndex uses.
func (e *Engine) D2Index(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	if sm, ok := m.(optics.SecondDerivativeModel); ok {
		eps, err := sm.Permittivity(wl)
		if err != nil {
			return 0, err
		}
		deps, err := sm.DPermittivity(wl)
		if err != nil {
			return 0, err
		}
		d2eps, err := sm.D2Permittivity(wl)
		if err != nil {
			return 0, err
		}
		n := math.Sqrt(eps)
		return d2eps/(2*n) - deps*deps/(4*n*n*n), nil
	}

	h := wl.Meters() * e.relStep
	plus, err := e.Index(m, wl+optics.Wavelength(h))
	if err != nil {
		return 0, err
	}
	mid, err := e.Index(m, wl)
	if err != nil {
		return 0, err
	}
	minus, err := e.Index(m, wl-optics.Wavelength(h))
	if err != nil {
		return 0, err
	}
	return (plus - 2*mid + minus) / (h * h), nil
}

// GroupIndex returns ng(λ) = n − λ·dn/dλ.
func (e *Engine) GroupIndex(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	n, err := e.Index(m, wl)
	if err != nil {
		return 0, err
	}
	dn, err := e.DIndex(m, wl)
	if err != nil {
		return 0, err
	}
	return n - wl.Meters()*dn, nil
}

// GroupVelocity returns vg(λ) = c/ng [m/s].
func (e *Engine) GroupVelocity(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	ng, err := e.GroupIndex(m, wl)
	if err != nil {
		return 0, err
	}
	return optics.SpeedOfLight / ng, nil
}

// GVD returns the group-velocity dispersion β₂ = λ³/(2πc²)·d²n/dλ² [s²/m].
func (e *Engine) GVD(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	d2n, err := e.D2Index(m, wl)
	if err != nil {
		return 0, err
	}
	l := wl.Meters()
	return l * l * l / (2 * math.Pi * optics.SpeedOfLight * optics.SpeedOfLight) * d2n, nil
}

// Beta0 returns the propagation constant β₀ = 2πn/λ [1/m].
func (e *Engine) Beta0(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	n, err := e.Index(m, wl)
	if err != nil {
		return 0, err
	}
	return 2 * math.Pi * n / wl.Meters(), nil
}

// Beta1 returns the inverse group velocity β₁ = 1/vg = ng/c [s/m].
func (e *Engine) Beta1(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	ng, err := e.GroupIndex(m, wl)
	if err != nil {
		return 0, err
	}
	return ng / optics.SpeedOfLight, nil
}

// Beta2 is the GVD under its Taylor-expansion name.
func (e *Engine) Beta2(m optics.DispersionModel, wl optics.Wavelength) (float64, error) {
	return e.GVD(m, wl)
}

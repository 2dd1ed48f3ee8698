package models

import (
	"fmt"

	"github.com/optmat/optmat/internal/optics"
)

// Laurent evaluates the offset resonance form many literature fits use
// (KTP, BBO, BiBO, TiO2, LiNbO3):
//
//	ε(λ) = A + Σ B_i/(λ²−C_i) − D·λ²
//
// with λ in micrometers. Immutable after construction.
type Laurent struct {
	a     float64
	terms []Term
	d     float64
}

func NewLaurent(a float64, d float64, terms ...Term) *Laurent {
	t := make([]Term, len(terms))
	copy(t, terms)
	return &Laurent{a: a, terms: t, d: d}
}

func (l *Laurent) Permittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	x2 := x * x
	eps := l.a - l.d*x2
	for _, t := range l.terms {
		if nearPole(x2, t.C) {
			return 0, fmt.Errorf("%w: λ=%g um at C=%g um²", optics.ErrSingularity, x, t.C)
		}
		eps += t.B / (x2 - t.C)
	}
	return eps, nil
}

// DPermittivity returns dε/dλ [1/m]: dε/dx = Σ −2·B·x/(x²−C)² − 2·D·x.
func (l *Laurent) DPermittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	x2 := x * x
	d := -2.0 * l.d * x
	for _, t := range l.terms {
		if nearPole(x2, t.C) {
			return 0, fmt.Errorf("%w: λ=%g um at C=%g um²", optics.ErrSingularity, x, t.C)
		}
		den := x2 - t.C
		d += -2.0 * t.B * x / (den * den)
	}
	return d * 1e6, nil
}

// D2Permittivity returns d²ε/dλ² [1/m²]:
// d²ε/dx² = Σ 2·B·(3x²+C)/(x²−C)³ − 2·D.
func (l *Laurent) D2Permittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	x2 := x * x
	d2 := -2.0 * l.d
	for _, t := range l.terms {
		if nearPole(x2, t.C) {
			return 0, fmt.Errorf("%w: λ=%g um at C=%g um²", optics.ErrSingularity, x, t.C)
		}
		den := x2 - t.C
		d2 += 2.0 * t.B * (3*x2 + t.C) / (den * den * den)
	}
	return d2 * 1e12, nil
}

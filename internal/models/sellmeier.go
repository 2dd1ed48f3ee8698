package models

import (
	"fmt"

	"github.com/optmat/optmat/internal/optics"
)

// poleEps is the relative width around a resonance treated as singular.
const poleEps = 1e-9

// Term is a single Sellmeier resonance with strength B and resonance
// constant C [um^2].
type Term struct {
	B float64
	C float64
}

// Sellmeier evaluates the classical Sellmeier equation
//
//	ε(λ) = 1 + Σ B_i·λ²/(λ²−C_i)
//
// with λ in micrometers. Immutable after construction.
type Sellmeier struct {
	terms []Term
}

func NewSellmeier(terms ...Term) *Sellmeier {
	t := make([]Term, len(terms))
	copy(t, terms)
	return &Sellmeier{terms: t}
}

func (s *Sellmeier) Permittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	x2 := x * x
	eps := 1.0
	for _, t := range s.terms {
		if nearPole(x2, t.C) {
			return 0, fmt.Errorf("%w: λ=%g um at C=%g um²", optics.ErrSingularity, x, t.C)
		}
		eps += t.B * x2 / (x2 - t.C)
	}
	return eps, nil
}

// DPermittivity returns dε/dλ [1/m], from the exact derivative
// dε/dx = Σ −2·B·C·x/(x²−C)² with x in micrometers.
func (s *Sellmeier) DPermittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	x2 := x * x
	d := 0.0
	for _, t := range s.terms {
		if nearPole(x2, t.C) {
			return 0, fmt.Errorf("%w: λ=%g um at C=%g um²", optics.ErrSingularity, x, t.C)
		}
		den := x2 - t.C
		d += -2.0 * t.B * t.C * x / (den * den)
	}
	return d * 1e6, nil // per um -> per m
}

// D2Permittivity returns d²ε/dλ² [1/m²], from
// d²ε/dx² = Σ 2·B·C·(3x²+C)/(x²−C)³.
func (s *Sellmeier) D2Permittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	x2 := x * x
	d2 := 0.0
	for _, t := range s.terms {
		if nearPole(x2, t.C) {
			return 0, fmt.Errorf("%w: λ=%g um at C=%g um²", optics.ErrSingularity, x, t.C)
		}
		den := x2 - t.C
		d2 += 2.0 * t.B * t.C * (3*x2 + t.C) / (den * den * den)
	}
	return d2 * 1e12, nil // per um² -> per m²
}

// nearPole reports whether x2 sits within the singular window of c.
func nearPole(x2, c float64) bool {
	scale := x2
	if c > scale {
		scale = c
	}
	if scale < 0 {
		scale = -scale
	}
	diff := x2 - c
	if diff < 0 {
		diff = -diff
	}
	return diff <= poleEps*scale
}

package models

import (
	"math"

	"github.com/optmat/optmat/internal/optics"
)

// Cauchy evaluates an inverse power series directly in permittivity,
//
//	ε(λ) = Σ A_i/λ^(2i)
//
// with λ in micrometers (chalcogenide glass fits). Pole-free for λ > 0.
type Cauchy struct {
	coefs []float64
}

func NewCauchy(coefs ...float64) *Cauchy {
	c := make([]float64, len(coefs))
	copy(c, coefs)
	return &Cauchy{coefs: c}
}

func (c *Cauchy) Permittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	eps := 0.0
	for i, a := range c.coefs {
		eps += a / math.Pow(x, float64(2*i))
	}
	return eps, nil
}

// DPermittivity returns dε/dλ [1/m]: dε/dx = Σ −2i·A_i/x^(2i+1).
func (c *Cauchy) DPermittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	d := 0.0
	for i, a := range c.coefs {
		if i == 0 {
			continue
		}
		d += -2.0 * float64(i) * a / math.Pow(x, float64(2*i+1))
	}
	return d * 1e6, nil
}

// D2Permittivity returns d²ε/dλ² [1/m²]:
// d²ε/dx² = Σ 2i·(2i+1)·A_i/x^(2i+2).
func (c *Cauchy) D2Permittivity(wl optics.Wavelength) (float64, error) {
	x := wl.Micrometers()
	d2 := 0.0
	for i, a := range c.coefs {
		if i == 0 {
			continue
		}
		d2 += 2.0 * float64(i) * float64(2*i+1) * a / math.Pow(x, float64(2*i+2))
	}
	return d2 * 1e12, nil
}

// CauchyIndex is the Cauchy series expressed in refractive index rather
// than permittivity,
//
//	n(λ) = Σ A_i/λ^(2i), ε = n²
//
// (polymer fits such as SU-8).
type CauchyIndex struct {
	coefs []float64
}

func NewCauchyIndex(coefs ...float64) *CauchyIndex {
	c := make([]float64, len(coefs))
	copy(c, coefs)
	return &CauchyIndex{coefs: c}
}

func (c *CauchyIndex) index(x float64) (n, dn, d2n float64) {
	for i, a := range c.coefs {
		n += a / math.Pow(x, float64(2*i))
		if i > 0 {
			dn += -2.0 * float64(i) * a / math.Pow(x, float64(2*i+1))
			d2n += 2.0 * float64(i) * float64(2*i+1) * a / math.Pow(x, float64(2*i+2))
		}
	}
	return n, dn, d2n
}

func (c *CauchyIndex) Permittivity(wl optics.Wavelength) (float64, error) {
	n, _, _ := c.index(wl.Micrometers())
	return n * n, nil
}

func (c *CauchyIndex) DPermittivity(wl optics.Wavelength) (float64, error) {
	n, dn, _ := c.index(wl.Micrometers())
	return 2.0 * n * dn * 1e6, nil
}

func (c *CauchyIndex) D2Permittivity(wl optics.Wavelength) (float64, error) {
	n, dn, d2n := c.index(wl.Micrometers())
	return 2.0 * (dn*dn + n*d2n) * 1e12, nil
}

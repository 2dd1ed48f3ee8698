package models

import "github.com/optmat/optmat/internal/optics"

// Constant is a dispersion-free model with fixed permittivity (air, vacuum).
type Constant struct {
	eps float64
}

func NewConstant(eps float64) *Constant {
	return &Constant{eps: eps}
}

func (c *Constant) Permittivity(optics.Wavelength) (float64, error) { return c.eps, nil }

func (c *Constant) DPermittivity(optics.Wavelength) (float64, error) { return 0, nil }

func (c *Constant) D2Permittivity(optics.Wavelength) (float64, error) { return 0, nil }

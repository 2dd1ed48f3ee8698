// Package catalog maps material names to preconfigured dispersion models
// built from literature coefficients. Pure data lookup: the catalog holds
// constructors, not shared model instances, so every Get returns an
// independent immutable model.
package catalog

import (
	"fmt"
	"sort"

	"github.com/optmat/optmat/internal/engine"
	"github.com/optmat/optmat/internal/models"
	"github.com/optmat/optmat/internal/optics"
)

type entry struct {
	description string
	build       func() optics.DispersionModel
}

// Catalog is an explicitly constructed material registry. No global
// default instance exists; callers create and pass one.
type Catalog struct {
	entries map[string]entry
}

func New() *Catalog {
	c := &Catalog{entries: make(map[string]entry)}

	c.register("air", "air (dispersion-free)", func() optics.DispersionModel {
		return models.NewConstant(1.0)
	})
	c.register("sio2", "fused silica (Malitson 1965)", newSiO2)
	c.register("al2o3-o", "sapphire, ordinary axis (Malitson)", newAl2O3o)
	c.register("al2o3-e", "sapphire, extraordinary axis (Malitson)", newAl2O3e)
	c.register("tio2-o", "rutile TiO2, ordinary axis (DeVore)", newTiO2o)
	c.register("tio2-e", "rutile TiO2, extraordinary axis (DeVore)", newTiO2e)
	c.register("ktp-x", "KTP, x axis (Kato 2002)", func() optics.DispersionModel { return newKtp('x') })
	c.register("ktp-y", "KTP, y axis (Kato 2002)", func() optics.DispersionModel { return newKtp('y') })
	c.register("ktp-z", "KTP, z axis (Kato 2002)", func() optics.DispersionModel { return newKtp('z') })
	c.register("ln-o", "lithium niobate, ordinary", func() optics.DispersionModel { return newLn('o') })
	c.register("ln-e", "lithium niobate, extraordinary", func() optics.DispersionModel { return newLn('e') })
	c.register("tfln-o", "thin-film lithium niobate, ordinary", func() optics.DispersionModel { return newTfln('o') })
	c.register("tfln-e", "thin-film lithium niobate, extraordinary", func() optics.DispersionModel { return newTfln('e') })
	c.register("lnmg-o", "MgO-doped lithium niobate, ordinary", func() optics.DispersionModel { return newLnMg('o') })
	c.register("lnmg-e", "MgO-doped lithium niobate, extraordinary", func() optics.DispersionModel { return newLnMg('e') })
	c.register("bbo-o", "beta barium borate, ordinary", func() optics.DispersionModel { return newBbo('o') })
	c.register("bbo-e", "beta barium borate, extraordinary", func() optics.DispersionModel { return newBbo('e') })
	c.register("bibo-x", "bismuth borate, x axis", func() optics.DispersionModel { return newBibo('x') })
	c.register("bibo-y", "bismuth borate, y axis", func() optics.DispersionModel { return newBibo('y') })
	c.register("bibo-z", "bismuth borate, z axis", func() optics.DispersionModel { return newBibo('z') })
	c.register("as2s3", "arsenic trisulfide glass (Boudebs 2004)", func() optics.DispersionModel {
		return models.NewCauchy(5.41, 0.20, 0.14)
	})
	c.register("as2se3", "arsenic triselenide glass (Boudebs 2004)", func() optics.DispersionModel {
		return models.NewCauchy(7.56, 1.03, 0.12)
	})
	c.register("gese4", "GeSe4 chalcogenide glass", func() optics.DispersionModel {
		return models.NewCauchy(5.73, 0.80, -0.18)
	})
	c.register("ge10as10se80", "Ge10As10Se80 chalcogenide glass", func() optics.DispersionModel {
		return models.NewCauchy(5.73, 0.80, -0.18)
	})
	c.register("su8", "SU-8 photoresist", func() optics.DispersionModel {
		return models.NewCauchyIndex(1.5525, 0.00629, 0.0004)
	})

	return c
}

func (c *Catalog) register(name, description string, build func() optics.DispersionModel) {
	c.entries[name] = entry{description: description, build: build}
}

// Get returns a fresh model for a named material.
func (c *Catalog) Get(name string) (optics.DispersionModel, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", optics.ErrUnknownMaterial, name)
	}
	return e.build(), nil
}

// Material wraps the named model in the caller-facing query facade.
func (c *Catalog) Material(name string) (*engine.Material, error) {
	m, err := c.Get(name)
	if err != nil {
		return nil, err
	}
	return engine.NewMaterial(name, m), nil
}

// Describe returns the human-readable material description.
func (c *Catalog) Describe(name string) (string, error) {
	e, ok := c.entries[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", optics.ErrUnknownMaterial, name)
	}
	return e.description, nil
}

// Names lists all registered materials in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/optmat/optmat/internal/engine"
)

// quantities maps flag names to curve columns and axis captions.
var quantities = map[string]struct {
	caption string
	column  func(*engine.Curve) []float64
}{
	"n":   {"refractive index n(λ)", func(c *engine.Curve) []float64 { return c.Index }},
	"ng":  {"group index ng(λ)", func(c *engine.Curve) []float64 { return c.GroupIndex }},
	"vg":  {"group velocity vg(λ) [m/s]", func(c *engine.Curve) []float64 { return c.GroupVelocity }},
	"gvd": {"GVD(λ) [s²/m]", func(c *engine.Curve) []float64 { return c.GVD }},
}

// Column returns the curve values for a quantity name (n, ng, vg, gvd).
func Column(c *engine.Curve, quantity string) ([]float64, error) {
	q, ok := quantities[quantity]
	if !ok {
		return nil, fmt.Errorf("viz: unknown quantity %q (want n, ng, vg or gvd)", quantity)
	}
	return q.column(c), nil
}

// Plot renders a sweep quantity as a terminal chart with the wavelength
// band in the caption.
func Plot(material string, c *engine.Curve, quantity string, width, height int) (string, error) {
	q, ok := quantities[quantity]
	if !ok {
		return "", fmt.Errorf("viz: unknown quantity %q (want n, ng, vg or gvd)", quantity)
	}
	if c.Len() == 0 {
		return "", fmt.Errorf("viz: empty sweep")
	}

	minUm := c.Wavelengths[0] * 1e6
	maxUm := c.Wavelengths[c.Len()-1] * 1e6
	caption := fmt.Sprintf("%s: %s, %.4g–%.4g µm", material, q.caption, minUm, maxUm)

	chart := asciigraph.Plot(q.column(c),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
	return chart, nil
}

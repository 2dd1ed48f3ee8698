package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/optmat/optmat/internal/engine"
)

// CurveToSVG renders one quantity of a sweep as an SVG polyline.
// The values slice must come from the same curve as the wavelengths
// (Index, GroupIndex, GroupVelocity or GVD).
func CurveToSVG(c *engine.Curve, values []float64, width, height int, strokeColor string) string {
	if c.Len() < 2 || len(values) != c.Len() {
		return ""
	}

	minX, maxX := c.Wavelengths[0], c.Wavelengths[c.Len()-1]
	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i := range values {
		x := (c.Wavelengths[i] - minX) / rangeX * float64(width)
		y := float64(height) - (values[i]-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// ExportSVG writes one quantity of a sweep to an SVG file.
func ExportSVG(path string, c *engine.Curve, values []float64, width, height int, strokeColor string) error {
	svg := CurveToSVG(c, values, width, height, strokeColor)
	if svg == "" {
		return fmt.Errorf("export: not enough points for SVG")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

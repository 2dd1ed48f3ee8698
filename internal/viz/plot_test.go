package viz

import (
	"strings"
	"testing"

	"github.com/optmat/optmat/internal/engine"
)

func testCurve() *engine.Curve {
	return &engine.Curve{
		Wavelengths:   []float64{1.0e-6, 1.2e-6, 1.4e-6, 1.6e-6},
		Index:         []float64{1.4504, 1.4482, 1.4462, 1.4440},
		GroupIndex:    []float64{1.4626, 1.4629, 1.4646, 1.4673},
		GroupVelocity: []float64{2.05e8, 2.049e8, 2.047e8, 2.043e8},
		GVD:           []float64{1.67e-26, -3.1e-27, -2.19e-26, -3.9e-26},
	}
}

func TestColumn(t *testing.T) {
	c := testCurve()

	col, err := Column(c, "gvd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(col) != 4 || col[0] != 1.67e-26 {
		t.Errorf("expected gvd column, got %v", col)
	}

	if _, err := Column(c, "beta7"); err == nil {
		t.Errorf("expected error for unknown quantity")
	}
}

func TestPlot(t *testing.T) {
	c := testCurve()

	chart, err := Plot("sio2", c, "n", 60, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(chart, "sio2") {
		t.Errorf("expected material name in caption")
	}
	if !strings.Contains(chart, "µm") {
		t.Errorf("expected wavelength band in caption")
	}

	if _, err := Plot("sio2", c, "nope", 60, 10); err == nil {
		t.Errorf("expected error for unknown quantity")
	}
	if _, err := Plot("sio2", &engine.Curve{}, "n", 60, 10); err == nil {
		t.Errorf("expected error for empty sweep")
	}
}

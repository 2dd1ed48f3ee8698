package optics

import (
	"errors"
	"math"
	"testing"
)

func TestResolveEquivalentScales(t *testing.T) {
	cases := []struct {
		value float64
		unit  string
	}{
		{1.55e-6, "meters"},
		{1.55, "micrometers"},
		{1550, "nanometers"},
	}

	for _, c := range cases {
		wl, err := Resolve(c.value)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.unit, err)
		}
		if math.Abs(wl.Meters()-1.55e-6) > 1e-18 {
			t.Errorf("%s: expected 1.55e-6 m, got %g", c.unit, wl.Meters())
		}
	}
}

func TestResolveAmbiguous(t *testing.T) {
	for _, v := range []float64{3e7, 0, -1.55, 50.0, 1e-9, 21e-6, math.NaN(), math.Inf(1)} {
		if _, err := Resolve(v); !errors.Is(err, ErrAmbiguousUnit) {
			t.Errorf("resolve(%g): expected ErrAmbiguousUnit, got %v", v, err)
		}
	}
}

func TestResolveWindowEdges(t *testing.T) {
	for _, v := range []float64{2e-7, 2e-5, 0.2, 20.0, 200.0, 20000.0} {
		wl, err := Resolve(v)
		if err != nil {
			t.Errorf("resolve(%g): unexpected error: %v", v, err)
			continue
		}
		if !wl.IsValid() {
			t.Errorf("resolve(%g): invalid wavelength %g", v, wl.Meters())
		}
	}
}

func TestUnitFactor(t *testing.T) {
	if f, _ := Nanometers.Factor(); f != 1e-9 {
		t.Errorf("expected 1e-9, got %g", f)
	}
	if f, _ := Micrometers.Factor(); f != 1e-6 {
		t.Errorf("expected 1e-6, got %g", f)
	}
	if _, err := Unit("furlong").Factor(); !errors.Is(err, ErrMalformedSource) {
		t.Errorf("expected ErrMalformedSource for unknown unit, got %v", err)
	}
}

func TestWavelengthConversions(t *testing.T) {
	wl := Wavelength(1.55e-6)
	if math.Abs(wl.Micrometers()-1.55) > 1e-12 {
		t.Errorf("expected 1.55 um, got %g", wl.Micrometers())
	}
	if math.Abs(wl.Nanometers()-1550) > 1e-9 {
		t.Errorf("expected 1550 nm, got %g", wl.Nanometers())
	}
}

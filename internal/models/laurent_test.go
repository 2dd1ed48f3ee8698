package models

import (
	"errors"
	"math"
	"testing"

	"github.com/optmat/optmat/internal/optics"
)

// KTP z-axis coefficients (Kato, Appl. Opt. 41, 2002).
func ktpZ() *Laurent {
	return NewLaurent(4.59423, 0, Term{B: 0.06206, C: 0.04763}, Term{B: 110.80672, C: 86.12171})
}

func TestLaurentPermittivity(t *testing.T) {
	l := ktpZ()

	eps, err := l.Permittivity(optics.Wavelength(1.064e-6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x2 := 1.064 * 1.064
	want := 4.59423 + 0.06206/(x2-0.04763) + 110.80672/(x2-86.12171)
	if math.Abs(eps-want) > 1e-12 {
		t.Errorf("expected eps %.12f, got %.12f", want, eps)
	}
	if n := math.Sqrt(eps); n < 1.7 || n > 1.95 {
		t.Errorf("KTP n_z(1.064 um) = %g outside plausible range", n)
	}
}

func TestLaurentSingularity(t *testing.T) {
	l := NewLaurent(2.0, 0, Term{B: 0.5, C: 1.0})

	if _, err := l.Permittivity(optics.Wavelength(1e-6)); !errors.Is(err, optics.ErrSingularity) {
		t.Errorf("expected ErrSingularity at C=1 um², got %v", err)
	}
}

func TestLaurentDerivativesAgainstFiniteDifference(t *testing.T) {
	l := NewLaurent(2.3730, 0.0044, Term{B: 0.0128, C: 0.0156}) // BBO e-axis
	wl := optics.Wavelength(0.8e-6)

	d1, err := l.DPermittivity(wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	plus, _ := l.Permittivity(wl + fdStep)
	mid, _ := l.Permittivity(wl)
	minus, _ := l.Permittivity(wl - fdStep)

	fd1 := (plus - minus) / (2 * fdStep)
	if rel := math.Abs(d1-fd1) / math.Abs(fd1); rel > 1e-5 {
		t.Errorf("first derivative: analytic %g vs fd %g (rel %g)", d1, fd1, rel)
	}

	d2, err := l.D2Permittivity(wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fd2 := (plus - 2*mid + minus) / (fdStep * fdStep)
	if rel := math.Abs(d2-fd2) / math.Abs(fd2); rel > 1e-4 {
		t.Errorf("second derivative: analytic %g vs fd %g (rel %g)", d2, fd2, rel)
	}
}

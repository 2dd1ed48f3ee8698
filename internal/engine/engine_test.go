package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/optmat/optmat/internal/models"
	"github.com/optmat/optmat/internal/optics"
)

// opaque hides a model's analytic derivatives so the engine must fall
// back to finite differences.
type opaque struct {
	m optics.DispersionModel
}

func (o opaque) Permittivity(wl optics.Wavelength) (float64, error) {
	return o.m.Permittivity(wl)
}

func fusedSilica() *models.Sellmeier {
	return models.NewSellmeier(
		models.Term{B: 0.6961663, C: 0.0684043 * 0.0684043},
		models.Term{B: 0.4079426, C: 0.1162414 * 0.1162414},
		models.Term{B: 0.8974794, C: 9.896161 * 9.896161},
	)
}

func TestIndexIsSqrtPermittivity(t *testing.T) {
	e := New()
	m := models.NewSellmeier(models.Term{B: 1.0, C: 0.01})
	wl := optics.Wavelength(1e-6)

	eps, err := m.Permittivity(wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantEps := 1.0 + 1.0/(1.0-0.01)
	if math.Abs(eps-wantEps) > 1e-12 {
		t.Fatalf("expected eps %.12f, got %.12f", wantEps, eps)
	}

	n, err := e.Index(m, wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != math.Sqrt(eps) {
		t.Errorf("index %g is not sqrt of permittivity %g", n, eps)
	}
}

func TestFiniteDifferenceMatchesAnalytic(t *testing.T) {
	e := New()
	m := fusedSilica()
	wl := optics.Wavelength(1.55e-6)

	analytic, err := e.DIndex(m, wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fd, err := e.DIndex(opaque{m}, wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rel := math.Abs(fd-analytic) / math.Abs(analytic); rel > 1e-5 {
		t.Errorf("fd dn/dl %g vs analytic %g (rel %g)", fd, analytic, rel)
	}
}

func TestSecondDifferenceMatchesAnalytic(t *testing.T) {
	e := New()
	m := fusedSilica()
	wl := optics.Wavelength(0.8e-6)

	analytic, err := e.D2Index(m, wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fd, err := e.D2Index(opaque{m}, wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The second difference sits close to the cancellation floor; a few
	// percent is the expected agreement at this step size.
	if rel := math.Abs(fd-analytic) / math.Abs(analytic); rel > 0.25 {
		t.Errorf("fd d2n/dl2 %g vs analytic %g (rel %g)", fd, analytic, rel)
	}
}

func TestGroupQuantities(t *testing.T) {
	e := New()
	m := fusedSilica()
	wl := optics.Wavelength(1.55e-6)

	n, _ := e.Index(m, wl)
	dn, _ := e.DIndex(m, wl)
	ng, err := e.GroupIndex(m, wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := n - wl.Meters()*dn; math.Abs(ng-want) > 1e-12 {
		t.Errorf("group index %g != n - λ·dn/dλ = %g", ng, want)
	}
	// Normal material: dn/dλ < 0 in the near infrared, so ng > n.
	if ng <= n {
		t.Errorf("expected ng > n for fused silica at 1.55 um, got ng=%g n=%g", ng, n)
	}

	vg, err := e.GroupVelocity(m, wl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vg >= optics.SpeedOfLight || vg <= 0 {
		t.Errorf("group velocity %g outside (0, c)", vg)
	}
	if math.Abs(vg-optics.SpeedOfLight/ng) > 1e-3 {
		t.Errorf("vg %g != c/ng %g", vg, optics.SpeedOfLight/ng)
	}

	b1, _ := e.Beta1(m, wl)
	if math.Abs(b1-1/vg) > 1e-18 {
		t.Errorf("beta1 %g != 1/vg %g", b1, 1/vg)
	}
	b0, _ := e.Beta0(m, wl)
	if want := 2 * math.Pi * n / wl.Meters(); math.Abs(b0-want)/want > 1e-12 {
		t.Errorf("beta0 %g != 2πn/λ %g", b0, want)
	}
}

func TestGVDSignChange(t *testing.T) {
	e := New()
	m := fusedSilica()

	// Fused silica has normal dispersion at 1.0 um, anomalous at 1.6 um,
	// with the zero-dispersion wavelength near 1.27 um.
	normal, err := e.GVD(m, optics.Wavelength(1.0e-6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	anomalous, err := e.GVD(m, optics.Wavelength(1.6e-6))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if normal <= 0 {
		t.Errorf("expected positive GVD at 1.0 um, got %g", normal)
	}
	if anomalous >= 0 {
		t.Errorf("expected negative GVD at 1.6 um, got %g", anomalous)
	}
}

func TestModelErrorsPropagate(t *testing.T) {
	e := New()

	sing := models.NewSellmeier(models.Term{B: 1.0, C: 0.64})
	if _, err := e.Index(sing, optics.Wavelength(0.8e-6)); !errors.Is(err, optics.ErrSingularity) {
		t.Errorf("expected ErrSingularity through Index, got %v", err)
	}

	xs := []float64{1.0e-6, 1.2e-6, 1.4e-6, 1.6e-6, 1.8e-6, 2.0e-6}
	ns := []float64{1.450, 1.449, 1.448, 1.446, 1.444, 1.441}
	tab, err := models.NewTabulated(xs, ns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	max := optics.Wavelength(2.0e-6)

	// Index and the spline's own first derivative work at the endpoint.
	if _, err := e.Index(tab, max); err != nil {
		t.Errorf("index at λ_max failed: %v", err)
	}
	if _, err := e.DIndex(tab, max); err != nil {
		t.Errorf("dn/dλ at λ_max failed: %v", err)
	}

	// The second derivative needs λ+h beyond the domain: the model's own
	// error comes back, not a clamped value.
	if _, err := e.D2Index(tab, max); !errors.Is(err, optics.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange from d2n at λ_max, got %v", err)
	}
	if _, err := e.GVD(tab, max); !errors.Is(err, optics.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange from GVD at λ_max, got %v", err)
	}
}

func TestMaterialUnitEquivalence(t *testing.T) {
	m := NewMaterial("sio2", fusedSilica())

	a, err := m.N(1.55e-6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := m.N(1.55)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := m.N(1550)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(a-b) > 1e-12 || math.Abs(b-c) > 1e-12 {
		t.Errorf("unit-equivalent queries disagree: %.15f %.15f %.15f", a, b, c)
	}
	if a < 1.43 || a > 1.46 {
		t.Errorf("fused silica n(1.55 um) = %g outside literature range", a)
	}

	if _, err := m.N(3e7); !errors.Is(err, optics.ErrAmbiguousUnit) {
		t.Errorf("expected ErrAmbiguousUnit, got %v", err)
	}
}

func TestMaterialSingleTermSellmeier(t *testing.T) {
	m := NewMaterial("single-term", models.NewSellmeier(models.Term{B: 1.0, C: 0.01}))

	eps, err := m.Eps(1.0) // 1 um
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 1.0 + 1.0/(1.0-0.01)
	if math.Abs(eps-want) > 1e-12 {
		t.Errorf("expected eps %.12f, got %.12f", want, eps)
	}

	n, err := m.N(1e-6) // same λ given in meters
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(n-math.Sqrt(want)) > 1e-12 {
		t.Errorf("expected n %.12f, got %.12f", math.Sqrt(want), n)
	}
}

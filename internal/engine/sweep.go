package engine

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/optmat/optmat/internal/optics"
)

// Curve is a dispersion sweep: every derived quantity sampled over a
// wavelength band. Slices share the same length and ordering.
type Curve struct {
	Wavelengths   []float64 // m
	Index         []float64
	GroupIndex    []float64
	GroupVelocity []float64 // m/s
	GVD           []float64 // s²/m
}

// Len returns the number of sampled points.
func (c *Curve) Len() int { return len(c.Wavelengths) }

// Sweep samples n, ng, vg and GVD at `samples` evenly spaced wavelengths
// across [min, max]. Any model error at any point aborts the sweep; for
// tabulated models callers must keep max a few finite-difference steps
// inside the domain (the engine does not clamp).
func (e *Engine) Sweep(m optics.DispersionModel, min, max optics.Wavelength, samples int) (*Curve, error) {
	if samples < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 samples, got %d", samples)
	}
	if !min.IsValid() || !max.IsValid() || min >= max {
		return nil, fmt.Errorf("invalid sweep band [%g, %g]", min.Meters(), max.Meters())
	}

	c := newCurve(min, max, samples)
	for i := range c.Wavelengths {
		if err := e.fill(m, c, i); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ParallelSweep is Sweep fanned out over worker goroutines. Queries are
// pure, so points partition freely; the first error wins.
func (e *Engine) ParallelSweep(m optics.DispersionModel, min, max optics.Wavelength, samples int) (*Curve, error) {
	if samples < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 samples, got %d", samples)
	}
	if !min.IsValid() || !max.IsValid() || min >= max {
		return nil, fmt.Errorf("invalid sweep band [%g, %g]", min.Meters(), max.Meters())
	}

	c := newCurve(min, max, samples)
	workers := runtime.NumCPU()
	if workers > samples {
		workers = samples
	}
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < samples; i += workers {
				if err := e.fill(m, c, i); err != nil {
					errs[w] = err
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newCurve(min, max optics.Wavelength, samples int) *Curve {
	c := &Curve{
		Wavelengths:   make([]float64, samples),
		Index:         make([]float64, samples),
		GroupIndex:    make([]float64, samples),
		GroupVelocity: make([]float64, samples),
		GVD:           make([]float64, samples),
	}
	span := max.Meters() - min.Meters()
	for i := range c.Wavelengths {
		c.Wavelengths[i] = min.Meters() + span*float64(i)/float64(samples-1)
	}
	return c
}

func (e *Engine) fill(m optics.DispersionModel, c *Curve, i int) error {
	wl := optics.Wavelength(c.Wavelengths[i])

	n, err := e.Index(m, wl)
	if err != nil {
		return err
	}
	ng, err := e.GroupIndex(m, wl)
	if err != nil {
		return err
	}
	gvd, err := e.GVD(m, wl)
	if err != nil {
		return err
	}

	c.Index[i] = n
	c.GroupIndex[i] = ng
	c.GroupVelocity[i] = optics.SpeedOfLight / ng
	c.GVD[i] = gvd
	return nil
}

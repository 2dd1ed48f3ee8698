package optics

import "errors"

// Domain errors for dispersion queries.
var (
	// ErrAmbiguousUnit indicates a bare wavelength whose magnitude matches
	// no accepted unit scale.
	ErrAmbiguousUnit = errors.New("optics: ambiguous wavelength unit (outside optical range)")

	// ErrSingularity indicates a query at an analytic pole of the model.
	ErrSingularity = errors.New("optics: wavelength at model resonance (pole)")

	// ErrOutOfRange indicates a query outside a tabulated model's domain.
	ErrOutOfRange = errors.New("optics: wavelength outside tabulated domain")

	// ErrInsufficientData indicates too few samples to interpolate.
	ErrInsufficientData = errors.New("optics: too few samples for interpolation")

	// ErrMalformedSource indicates non-monotonic or non-numeric source data.
	ErrMalformedSource = errors.New("optics: malformed sample data")

	// ErrUnknownMaterial indicates a catalog miss.
	ErrUnknownMaterial = errors.New("optics: unknown material")
)

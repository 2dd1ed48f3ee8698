// Package source adapts external refractive-index data into tabulated
// dispersion models. Adapters validate eagerly and fail with
// optics.ErrMalformedSource on non-numeric or non-monotonic data; all
// file I/O completes before a model is constructed, so downstream
// queries never block.
package source

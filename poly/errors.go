package poly

import "errors"

var (
	// ErrInvalidDegree is returned for a negative maximal degree.
	ErrInvalidDegree = errors.New("poly: maximal degree must be >= 0")

	// ErrTooManyCoefficients is returned when more than maxDeg+1 coefficients are given.
	ErrTooManyCoefficients = errors.New("poly: more coefficients than the maximal degree allows")

	// ErrNoCoefficients is returned when no coefficient is supplied; at least one
	// is needed to fix the field.
	ErrNoCoefficients = errors.New("poly: at least one coefficient is required")
)

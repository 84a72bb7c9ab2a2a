package transform

import "errors"

var (
	// ErrNilRule is returned when a transform is constructed without a rule.
	ErrNilRule = errors.New("transform: nil rule")

	// ErrNilSpace is returned when the domain or range is nil.
	ErrNilSpace = errors.New("transform: nil space")

	// ErrNotInRange indicates that the rule maps a domain basis vector
	// outside the span of the declared range.
	ErrNotInRange = errors.New("transform: image not contained in range")

	// ErrNotInvariant is returned by Quotient when T(U) ⊄ U.
	ErrNotInvariant = errors.New("transform: subspace is not invariant")
)

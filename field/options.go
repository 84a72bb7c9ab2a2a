// SPDX-License-Identifier: MIT

// Package field: functional configuration for tolerance-based fields.
// Real and Complex carry their tolerance per value; constructors accept
// ...Option and resolve them through gatherOptions.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package field

import "math"

// DefaultEpsilon is the absolute tolerance used by Real and Complex equality
// when no WithEpsilon option is supplied.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "field: WithEpsilon: eps must be finite, non-negative"

// Option configures a tolerance-based scalar.
type Option func(*options)

type options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the absolute tolerance used by Equal and by the snapping
// of sums onto 0 and 1. eps = 0 gives exact comparison.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

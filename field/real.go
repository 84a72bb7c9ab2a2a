// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"strconv"
)

// Real is a float64 scalar with an absolute comparison tolerance.
//
// Behavior highlights:
//   - Equal(a, b) holds when |a − b| ≤ max(a.eps, b.eps).
//   - Add snaps results within eps of 0 or ±1 onto those values, and Mul snaps
//     near-zero products onto 0, so elimination does not carry 1e-17 residue
//     into pivot selection.
//   - The zero value Real{} is 0 with eps = 0 (exact comparison); prefer NewReal.
type Real struct {
	v   float64
	eps float64
}

// NewReal constructs a Real with the tolerance resolved from opts
// (DefaultEpsilon unless WithEpsilon is supplied).
func NewReal(v float64, opts ...Option) Real {
	o := gatherOptions(opts...)

	return Real{v: v, eps: o.eps}
}

// Reals is a convenience constructor for a slice of Reals sharing opts.
func Reals(opts []Option, vs ...float64) []Real {
	o := gatherOptions(opts...)
	out := make([]Real, len(vs))
	for i, v := range vs {
		out[i] = Real{v: v, eps: o.eps}
	}

	return out
}

// Float returns the underlying float64.
func (r Real) Float() float64 { return r.v }

// Epsilon returns the tolerance carried by r.
func (r Real) Epsilon() float64 { return r.eps }

// SqrtReal returns √r, or false for negative r.
func SqrtReal(r Real) (Real, bool) {
	if r.v < 0 {
		return Real{}, false
	}

	return Real{v: math.Sqrt(r.v), eps: r.eps}, true
}

// Add returns r + o, snapped onto 0 or ±1 when within tolerance.
func (r Real) Add(o Real) Real {
	eps := math.Max(r.eps, o.eps)

	return Real{v: snap(r.v+o.v, eps), eps: eps}
}

// Mul returns r · o, snapped onto 0 when within tolerance.
func (r Real) Mul(o Real) Real {
	eps := math.Max(r.eps, o.eps)
	p := r.v * o.v
	if math.Abs(p) <= eps {
		p = 0
	}

	return Real{v: p, eps: eps}
}

// Neg returns −r.
func (r Real) Neg() Real { return Real{v: -r.v, eps: r.eps} }

// Inv returns 1/r. Inv of zero yields ±Inf.
func (r Real) Inv() Real { return Real{v: 1 / r.v, eps: r.eps} }

// Zero returns 0 with r's tolerance.
func (r Real) Zero() Real { return Real{eps: r.eps} }

// One returns 1 with r's tolerance.
func (r Real) One() Real { return Real{v: 1, eps: r.eps} }

// Equal reports |r − o| ≤ max(r.eps, o.eps).
func (r Real) Equal(o Real) bool {
	return math.Abs(r.v-o.v) <= math.Max(r.eps, o.eps)
}

// String formats r with the shortest representation that round-trips.
func (r Real) String() string {
	return strconv.FormatFloat(r.v, 'g', -1, 64)
}

func snap(x, eps float64) float64 {
	switch {
	case math.Abs(x) <= eps:
		return 0
	case math.Abs(x-1) <= eps:
		return 1
	case math.Abs(x+1) <= eps:
		return -1
	}

	return x
}

// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"math/cmplx"
	"strconv"
)

// Complex is a complex128 scalar with the same tolerance policy as Real:
// two values are equal when the modulus of their difference is within
// max(a.eps, b.eps).
type Complex struct {
	v   complex128
	eps float64
}

// NewComplex constructs re + im·i with the tolerance resolved from opts.
func NewComplex(re, im float64, opts ...Option) Complex {
	o := gatherOptions(opts...)

	return Complex{v: complex(re, im), eps: o.eps}
}

// Complex128 returns the underlying complex128.
func (c Complex) Complex128() complex128 { return c.v }

// Real returns the real part.
func (c Complex) Real() float64 { return real(c.v) }

// Imag returns the imaginary part.
func (c Complex) Imag() float64 { return imag(c.v) }

// Conj returns the complex conjugate.
func (c Complex) Conj() Complex { return Complex{v: cmplx.Conj(c.v), eps: c.eps} }

// Abs returns the modulus |c|.
func (c Complex) Abs() float64 { return cmplx.Abs(c.v) }

// SqrtComplex returns the principal square root of c. It always exists.
func SqrtComplex(c Complex) (Complex, bool) {
	return Complex{v: cmplx.Sqrt(c.v), eps: c.eps}, true
}

// Add returns c + o; each component is snapped like Real.Add.
func (c Complex) Add(o Complex) Complex {
	eps := math.Max(c.eps, o.eps)
	s := c.v + o.v

	return Complex{v: complex(snap(real(s), eps), snap(imag(s), eps)), eps: eps}
}

// Mul returns c · o with near-zero components snapped onto 0.
func (c Complex) Mul(o Complex) Complex {
	eps := math.Max(c.eps, o.eps)
	p := c.v * o.v
	re, im := real(p), imag(p)
	if math.Abs(re) <= eps {
		re = 0
	}
	if math.Abs(im) <= eps {
		im = 0
	}

	return Complex{v: complex(re, im), eps: eps}
}

// Neg returns −c.
func (c Complex) Neg() Complex { return Complex{v: -c.v, eps: c.eps} }

// Inv returns 1/c.
func (c Complex) Inv() Complex { return Complex{v: 1 / c.v, eps: c.eps} }

// Zero returns 0 with c's tolerance.
func (c Complex) Zero() Complex { return Complex{eps: c.eps} }

// One returns 1 with c's tolerance.
func (c Complex) One() Complex { return Complex{v: 1, eps: c.eps} }

// Equal reports |c − o| ≤ max(c.eps, o.eps).
func (c Complex) Equal(o Complex) bool {
	return cmplx.Abs(c.v-o.v) <= math.Max(c.eps, o.eps)
}

// String formats c like strconv.FormatComplex, e.g. "(1+2i)".
func (c Complex) String() string {
	return strconv.FormatComplex(c.v, 'g', -1, 128)
}

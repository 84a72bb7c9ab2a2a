// SPDX-License-Identifier: MIT

package field

import "fmt"

// Field is the capability set a scalar type must provide to drive the
// linear-algebra engine. F is the concrete type itself, so a Real is used as
// field.Field[Real] and operations never need run-time downcasts.
//
// Laws (not checked at run time, callers must supply a real field):
//   - Add and Mul are commutative and associative; Mul distributes over Add.
//   - a.Add(a.Zero()) equals a; a.Mul(a.One()) equals a.
//   - a.Add(a.Neg()) equals Zero(); a.Mul(a.Inv()) equals One() for a ≠ Zero().
type Field[F any] interface {
	// Add returns the sum of the receiver and other.
	Add(other F) F

	// Mul returns the product of the receiver and other.
	Mul(other F) F

	// Neg returns the additive inverse.
	Neg() F

	// Inv returns the multiplicative inverse. Undefined on Zero().
	Inv() F

	// Zero returns the additive identity of the receiver's field.
	Zero() F

	// One returns the multiplicative identity of the receiver's field.
	One() F

	// Equal reports field equality (tolerance-based for Real and Complex).
	Equal(other F) bool

	fmt.Stringer
}

// Sub returns a − b.
func Sub[F Field[F]](a, b F) F { return a.Add(b.Neg()) }

// Div returns a · b⁻¹. b must not be zero.
func Div[F Field[F]](a, b F) F { return a.Mul(b.Inv()) }

// IsZero reports whether a equals the additive identity of its field.
func IsZero[F Field[F]](a F) bool { return a.Equal(a.Zero()) }

// IsOne reports whether a equals the multiplicative identity of its field.
func IsOne[F Field[F]](a F) bool { return a.Equal(a.One()) }

// Sum folds values with Add starting from zero's additive identity.
// zero is only used as a sample to obtain the identity when values is empty.
func Sum[F Field[F]](zero F, values ...F) F {
	acc := zero.Zero()
	for _, v := range values {
		acc = acc.Add(v)
	}

	return acc
}

// Pow returns a^n by binary exponentiation. Negative n uses a⁻¹, so a must be
// non-zero in that case. Pow(a, 0) is One() (including for a = 0).
func Pow[F Field[F]](a F, n int) F {
	if n < 0 {
		a = a.Inv()
		n = -n
	}
	res := a.One()
	base := a
	for n > 0 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}

	return res
}

// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Modulus is a validated prime p that acts as the factory for ModP values.
type Modulus struct {
	p uint64
}

// NewModulus validates that p is prime and returns the factory for ℤ/pℤ.
// Primality is decided by big.Int.ProbablyPrime(0) (Baillie-PSW), which is
// exact for every uint64.
func NewModulus(p uint64) (*Modulus, error) {
	if p < 2 || !new(big.Int).SetUint64(p).ProbablyPrime(0) {
		return nil, fmt.Errorf("NewModulus(%d): %w", p, ErrModulusNotPrime)
	}

	return &Modulus{p: p}, nil
}

// P returns the prime modulus.
func (m *Modulus) P() uint64 { return m.p }

// Int returns v mod p as a ModP; negative v is mapped to its representative
// in [0, p).
func (m *Modulus) Int(v int64) ModP {
	if v >= 0 {
		return ModP{v: uint64(v) % m.p, p: m.p}
	}
	// -v may overflow for MinInt64; go through uint64 negation.
	r := (^uint64(v) + 1) % m.p

	return ModP{v: (m.p - r) % m.p, p: m.p}
}

// Ints maps a slice of int64 into ModP values.
func (m *Modulus) Ints(vs ...int64) []ModP {
	out := make([]ModP, len(vs))
	for i, v := range vs {
		out[i] = m.Int(v)
	}

	return out
}

// Parse reads a base-10 integer (optionally negative) and reduces it mod p.
func (m *Modulus) Parse(s string) (ModP, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ModP{}, fmt.Errorf("Modulus.Parse(%q): %w", s, ErrParse)
	}

	return m.Int(n), nil
}

// ModP is an element of ℤ/pℤ. Only values obtained from a Modulus are valid;
// the zero value ModP{} has no modulus and must not be used in arithmetic.
type ModP struct {
	v uint64
	p uint64
}

// Uint64 returns the canonical representative in [0, p).
func (a ModP) Uint64() uint64 { return a.v }

// Modulus returns p.
func (a ModP) Modulus() uint64 { return a.p }

// Add returns (a + o) mod p without overflow for any 64-bit prime.
func (a ModP) Add(o ModP) ModP {
	s, carry := bits.Add64(a.v, o.v, 0)
	if carry != 0 || s >= a.p {
		s -= a.p
	}

	return ModP{v: s, p: a.p}
}

// Mul returns (a · o) mod p using a 128-bit intermediate product.
func (a ModP) Mul(o ModP) ModP {
	hi, lo := bits.Mul64(a.v, o.v)

	return ModP{v: bits.Rem64(hi, lo, a.p), p: a.p}
}

// Neg returns (p − a) mod p.
func (a ModP) Neg() ModP {
	if a.v == 0 {
		return a
	}

	return ModP{v: a.p - a.v, p: a.p}
}

// Inv returns a^(p−2) mod p (Fermat). Inv of zero is undefined.
func (a ModP) Inv() ModP { return powMod(a, a.p-2) }

// Zero returns 0 mod p.
func (a ModP) Zero() ModP { return ModP{p: a.p} }

// One returns 1 mod p.
func (a ModP) One() ModP { return ModP{v: 1 % a.p, p: a.p} }

// Equal reports equality of representatives.
func (a ModP) Equal(o ModP) bool { return a.v == o.v }

// String returns the decimal representative.
func (a ModP) String() string { return strconv.FormatUint(a.v, 10) }

// powMod raises a to an unsigned exponent; Pow only accepts int.
func powMod(a ModP, e uint64) ModP {
	res := a.One()
	base := a
	for e > 0 {
		if e&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}

	return res
}

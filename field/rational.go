// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
)

// Rat is an exact rational scalar backed by math/big.Rat.
// The zero value Rat{} is 0. Rat values never share their big.Rat, so they
// behave as immutable values.
type Rat struct {
	r *big.Rat
}

// NewRat returns a/b. It panics when b == 0, like big.NewRat.
func NewRat(a, b int64) Rat { return Rat{r: big.NewRat(a, b)} }

// Rats builds a slice of integer-valued rationals.
func Rats(vs ...int64) []Rat {
	out := make([]Rat, len(vs))
	for i, v := range vs {
		out[i] = Rat{r: new(big.Rat).SetInt64(v)}
	}

	return out
}

// Big returns a copy of the underlying big.Rat.
func (q Rat) Big() *big.Rat { return new(big.Rat).Set(q.val()) }

func (q Rat) val() *big.Rat {
	if q.r == nil {
		return new(big.Rat)
	}

	return q.r
}

// Add returns q + o.
func (q Rat) Add(o Rat) Rat { return Rat{r: new(big.Rat).Add(q.val(), o.val())} }

// Mul returns q · o.
func (q Rat) Mul(o Rat) Rat { return Rat{r: new(big.Rat).Mul(q.val(), o.val())} }

// Neg returns −q.
func (q Rat) Neg() Rat { return Rat{r: new(big.Rat).Neg(q.val())} }

// Inv returns 1/q. Inv of zero is zero.
func (q Rat) Inv() Rat {
	if q.val().Sign() == 0 {
		return Rat{}
	}

	return Rat{r: new(big.Rat).Inv(q.val())}
}

// Zero returns 0.
func (Rat) Zero() Rat { return Rat{} }

// One returns 1.
func (Rat) One() Rat { return Rat{r: big.NewRat(1, 1)} }

// Equal reports exact equality.
func (q Rat) Equal(o Rat) bool { return q.val().Cmp(o.val()) == 0 }

// String returns "a/b", or "a" when the denominator is 1.
func (q Rat) String() string { return q.val().RatString() }

// ParseRat accepts "a/b", integers and decimal fractions ("0.25").
func ParseRat(s string) (Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, fmt.Errorf("ParseRat(%q): %w", s, ErrParse)
	}

	return Rat{r: r}, nil
}

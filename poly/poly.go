// Package poly provides polynomials of bounded degree as vectors over a
// field, their evaluation at scalars, square matrices and operators, and the
// derivative operator on the polynomial space.
package poly

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/transform"
)

const panicMaxDegree = "poly: Polynomial: maximal degree mismatch"

// Polynomial is c₀ + c₁x + … + c_d x^d living in the space of polynomials of
// degree ≤ MaxDegree(). Coordinates are the coefficients in ascending order.
type Polynomial[F field.Field[F]] struct {
	c matrix.Column[F] // len == maxDeg+1
}

// New returns the polynomial with ascending coefficients coeffs, padded with
// zeros up to maxDeg.
//
// Errors: ErrInvalidDegree, ErrNoCoefficients, ErrTooManyCoefficients.
func New[F field.Field[F]](maxDeg int, coeffs ...F) (Polynomial[F], error) {
	switch {
	case maxDeg < 0:
		return Polynomial[F]{}, fmt.Errorf("poly.New(%d): %w", maxDeg, ErrInvalidDegree)
	case len(coeffs) == 0:
		return Polynomial[F]{}, fmt.Errorf("poly.New(%d): %w", maxDeg, ErrNoCoefficients)
	case len(coeffs) > maxDeg+1:
		return Polynomial[F]{}, fmt.Errorf("poly.New(%d): %w", maxDeg, ErrTooManyCoefficients)
	}
	c := matrix.ZeroColumn(maxDeg+1, coeffs[0])
	copy(c, coeffs)

	return Polynomial[F]{c: c}, nil
}

// Monomial returns x^k in the space of degree ≤ maxDeg.
func Monomial[F field.Field[F]](maxDeg, k int, sample F) (Polynomial[F], error) {
	if k < 0 || k > maxDeg {
		return Polynomial[F]{}, fmt.Errorf("poly.Monomial(%d,%d): %w", maxDeg, k, ErrTooManyCoefficients)
	}
	p, err := New(maxDeg, sample.Zero())
	if err != nil {
		return Polynomial[F]{}, err
	}
	p.c[k] = sample.One()

	return p, nil
}

// Monomials returns the space of polynomials of degree ≤ maxDeg with the
// standard basis 1, x, …, x^maxDeg.
func Monomials[F field.Field[F]](maxDeg int, sample F) (*matrix.Space[Polynomial[F], F], error) {
	if maxDeg < 0 {
		return nil, fmt.Errorf("poly.Monomials(%d): %w", maxDeg, ErrInvalidDegree)
	}
	basis := make([]Polynomial[F], maxDeg+1)
	for k := range basis {
		p, err := Monomial(maxDeg, k, sample)
		if err != nil {
			return nil, err
		}
		basis[k] = p
	}

	return matrix.NewSpace[Polynomial[F], F](maxDeg+1, basis...)
}

// MaxDegree returns the bound of the space p lives in.
func (p Polynomial[F]) MaxDegree() int { return len(p.c) - 1 }

// Coeff returns the coefficient of x^k; zero beyond MaxDegree.
func (p Polynomial[F]) Coeff(k int) F {
	if k < 0 || k >= len(p.c) {
		return p.c[0].Zero()
	}

	return p.c[k]
}

// Degree returns the index of the highest non-zero coefficient, or −1 for
// the zero polynomial.
func (p Polynomial[F]) Degree() int {
	for k := len(p.c) - 1; k >= 0; k-- {
		if !field.IsZero(p.c[k]) {
			return k
		}
	}

	return -1
}

// Eval returns p(x) by Horner's rule.
func (p Polynomial[F]) Eval(x F) F {
	acc := p.c[len(p.c)-1]
	for k := len(p.c) - 2; k >= 0; k-- {
		acc = acc.Mul(x).Add(p.c[k])
	}

	return acc
}

// EvalMatrix returns p(A) = Σ cₖ Aᵏ by Horner's rule.
func (p Polynomial[F]) EvalMatrix(a *matrix.Square[F]) (*matrix.Square[F], error) {
	if a == nil || a.Matrix == nil {
		return nil, fmt.Errorf("poly.EvalMatrix: %w", matrix.ErrNilMatrix)
	}
	id := a.Identity()
	acc := &matrix.Square[F]{Matrix: id.Scale(p.c[len(p.c)-1])}
	for k := len(p.c) - 2; k >= 0; k-- {
		m, err := acc.Mul(a)
		if err != nil {
			return nil, fmt.Errorf("poly.EvalMatrix: %w", err)
		}
		acc = &matrix.Square[F]{Matrix: m.Add(id.Scale(p.c[k]))}
	}

	return acc, nil
}

// EvalTransform returns the operator p(T) = Σ cₖ Tᵏ.
func EvalTransform[V matrix.Vector[V, F], F field.Field[F]](p Polynomial[F], t *transform.Endo[V, F]) (*transform.Endo[V, F], error) {
	coeffs := p.c.Clone()

	return transform.NewEndo(t.Domain(), func(v V) V {
		acc := v.Scale(coeffs[0])
		w := v
		for k := 1; k < len(coeffs); k++ {
			w = t.Apply(w)
			acc = acc.Add(w.Scale(coeffs[k]))
		}

		return acc
	})
}

// Derivative returns d/dx. It lowers degree by one, so a polynomial of
// degree ≤ MaxDegree() keeps the same bound.
func (p Polynomial[F]) Derivative() Polynomial[F] {
	out := p.Zero()
	for k := 1; k < len(p.c); k++ {
		out.c[k-1] = times(p.c[k], k)
	}

	return out
}

// DerivativeOperator returns d/dx as a nilpotent operator on the space of
// polynomials of degree ≤ maxDeg.
func DerivativeOperator[F field.Field[F]](maxDeg int, sample F) (*transform.Endo[Polynomial[F], F], error) {
	s, err := Monomials(maxDeg, sample)
	if err != nil {
		return nil, err
	}

	return transform.NewEndo(s, Polynomial[F].Derivative)
}

// times returns n·c (c added n times) by doubling.
func times[F field.Field[F]](c F, n int) F {
	acc := c.Zero()
	for n > 0 {
		if n&1 == 1 {
			acc = acc.Add(c)
		}
		c = c.Add(c)
		n >>= 1
	}

	return acc
}

// Add returns p + q. Panics when maximal degrees differ.
func (p Polynomial[F]) Add(q Polynomial[F]) Polynomial[F] {
	if len(p.c) != len(q.c) {
		panic(panicMaxDegree)
	}

	return Polynomial[F]{c: p.c.Add(q.c)}
}

// Scale returns k·p.
func (p Polynomial[F]) Scale(k F) Polynomial[F] { return Polynomial[F]{c: p.c.Scale(k)} }

// Neg returns −p.
func (p Polynomial[F]) Neg() Polynomial[F] { return Polynomial[F]{c: p.c.Neg()} }

// Zero returns the zero polynomial with the same maximal degree.
func (p Polynomial[F]) Zero() Polynomial[F] { return Polynomial[F]{c: p.c.Zero()} }

// Coordinates returns the coefficients c₀ … c_maxDeg.
func (p Polynomial[F]) Coordinates() matrix.Column[F] { return p.c.Clone() }

// Equal compares coefficients.
func (p Polynomial[F]) Equal(q Polynomial[F]) bool { return p.c.Equal(q.c) }

// String renders terms from the highest degree down, e.g. "3x^2 + x + -1".
func (p Polynomial[F]) String() string {
	var terms []string
	for k := len(p.c) - 1; k >= 0; k-- {
		c := p.c[k]
		if field.IsZero(c) {
			continue
		}
		var coef string
		if k == 0 || !field.IsOne(c) {
			coef = c.String()
		}
		switch k {
		case 0:
			terms = append(terms, coef)
		case 1:
			terms = append(terms, coef+"x")
		default:
			terms = append(terms, coef+"x^"+strconv.Itoa(k))
		}
	}
	if len(terms) == 0 {
		return "0"
	}

	return strings.Join(terms, " + ")
}

package transform

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

const panicNoRep = "transform: Coordinates: representation undefined"

// Compose returns t∘s (apply s, then t).
//
// Errors: matrix.ErrDimensionMismatch when s's range and t's domain live in
// different ambient spaces.
func Compose[U matrix.Vector[U, F], V matrix.Vector[V, F], W matrix.Vector[W, F], F field.Field[F]](
	t *Transform[V, W, F], s *Transform[U, V, F],
) (*Transform[U, W, F], error) {
	if t == nil || s == nil {
		return nil, fmt.Errorf("transform.Compose: %w", ErrNilRule)
	}
	if s.rng.Dim() != t.domain.Dim() {
		return nil, fmt.Errorf("transform.Compose: %w", matrix.ErrDimensionMismatch)
	}
	tr, sr := t.rule, s.rule

	return New(s.domain, t.rng, func(u U) W { return tr(sr(u)) })
}

// Power returns tᵏ for k ≥ 0 (t⁰ is the identity on t's domain).
//
// Errors: matrix.ErrNegativeExponent.
func Power[V matrix.Vector[V, F], F field.Field[F]](t *Endo[V, F], k int) (*Endo[V, F], error) {
	if k < 0 {
		return nil, fmt.Errorf("transform.Power(%d): %w", k, matrix.ErrNegativeExponent)
	}
	rule := t.rule

	return NewEndo(t.domain, func(v V) V {
		for i := 0; i < k; i++ {
			v = rule(v)
		}

		return v
	})
}

// Cyclic returns the cyclic subspace span{v, Tv, T²v, …}: images are added
// until one is already in the span.
func Cyclic[V matrix.Vector[V, F], F field.Field[F]](t *Endo[V, F], v V) *matrix.Space[V, F] {
	out := t.domain.Empty()
	for out.Add(v) == 1 {
		v = t.rule(v)
	}

	return out
}

// IsNilpotent reports whether some power of t (at most its dimension) is zero.
func IsNilpotent[V matrix.Vector[V, F], F field.Field[F]](t *Endo[V, F]) (bool, error) {
	if t.domain.IsEmpty() {
		return true, nil
	}
	p, err := Power(t, t.domain.Dimension())
	if err != nil {
		return false, err
	}
	k, err := p.Kernel()
	if err != nil {
		return false, err
	}

	return k.Dimension() == t.domain.Dimension(), nil
}

// Vector capability: transforms over the same spaces add and scale
// pointwise. The receiver's spaces are kept.

// Add returns t + o.
func (t *Transform[V, W, F]) Add(o *Transform[V, W, F]) *Transform[V, W, F] {
	tr, or := t.rule, o.rule

	return &Transform[V, W, F]{domain: t.domain, rng: t.rng, rule: func(v V) W { return tr(v).Add(or(v)) }}
}

// Scale returns k·t.
func (t *Transform[V, W, F]) Scale(k F) *Transform[V, W, F] {
	tr := t.rule

	return &Transform[V, W, F]{domain: t.domain, rng: t.rng, rule: func(v V) W { return tr(v).Scale(k) }}
}

// Neg returns −t.
func (t *Transform[V, W, F]) Neg() *Transform[V, W, F] {
	tr := t.rule

	return &Transform[V, W, F]{domain: t.domain, rng: t.rng, rule: func(v V) W { return tr(v).Neg() }}
}

// Zero returns the zero map between t's spaces.
func (t *Transform[V, W, F]) Zero() *Transform[V, W, F] {
	tr := t.rule

	return &Transform[V, W, F]{domain: t.domain, rng: t.rng, rule: func(v V) W { return tr(v).Zero() }}
}

// Coordinates returns the row-major entries of the representation.
// Panics when the representation is undefined (empty spaces or a rule that
// leaves its range), which makes t unusable as a vector.
func (t *Transform[V, W, F]) Coordinates() matrix.Column[F] {
	rep, err := t.Matrix()
	if err != nil {
		panic(panicNoRep)
	}

	return rep.Coordinates()
}

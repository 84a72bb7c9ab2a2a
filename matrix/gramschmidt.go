// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
)

// InnerProduct is a caller-supplied symmetric bilinear (or Hermitian) form.
type InnerProduct[V any, F field.Field[F]] func(a, b V) F

// GramSchmidt returns an orthogonal (not normalised) basis of s with respect
// to inner, in the same order: wₖ = vₖ − Σ_{j<k} ⟨vₖ, wⱼ⟩/⟨wⱼ, wⱼ⟩ · wⱼ.
// Orthonormalize adds the normalisation for fields with square roots.
//
// Errors: ErrDegenerate when some wⱼ has ⟨wⱼ, wⱼ⟩ = 0 (possible over finite
// fields or for indefinite forms).
func GramSchmidt[V Vector[V, F], F field.Field[F]](s *Space[V, F], inner InnerProduct[V, F]) (*Space[V, F], error) {
	out := s.Empty()
	ws := make([]V, 0, len(s.basis))
	norms := make([]F, 0, len(s.basis))
	for k, v := range s.basis {
		w := v
		for j, u := range ws {
			coef := field.Div(inner(v, u), norms[j])
			w = w.Add(u.Scale(coef).Neg())
		}
		nn := inner(w, w)
		if field.IsZero(nn) {
			return nil, matrixErrorf(fmt.Sprintf("GramSchmidt: vector %d", k), ErrDegenerate)
		}
		ws = append(ws, w)
		norms = append(norms, nn)
	}
	out.Add(ws...)

	return out, nil
}

// SquareRoot returns √a, or false when a has no square root in the field
// (field.SqrtReal, field.SqrtComplex).
type SquareRoot[F any] func(a F) (F, bool)

// Orthonormalize runs GramSchmidt and scales every wₖ by 1/√⟨wₖ, wₖ⟩.
//
// Errors: those of GramSchmidt, and ErrNoSquareRoot when sqrt rejects some
// ⟨wₖ, wₖ⟩ (for example a negative value over the reals).
func Orthonormalize[V Vector[V, F], F field.Field[F]](s *Space[V, F], inner InnerProduct[V, F], sqrt SquareRoot[F]) (*Space[V, F], error) {
	o, err := GramSchmidt(s, inner)
	if err != nil {
		return nil, err
	}
	basis := o.Basis()
	us := make([]V, 0, len(basis))
	for k, w := range basis {
		r, ok := sqrt(inner(w, w))
		if !ok {
			return nil, matrixErrorf(fmt.Sprintf("Orthonormalize: vector %d", k), ErrNoSquareRoot)
		}
		us = append(us, w.Scale(r.Inv()))
	}
	out := s.Empty()
	out.Add(us...)

	return out, nil
}

// DotProduct is the standard bilinear form Σ aᵢ·bᵢ on coordinates.
func DotProduct[V Vector[V, F], F field.Field[F]](a, b V) F {
	return a.Coordinates().Dot(b.Coordinates())
}

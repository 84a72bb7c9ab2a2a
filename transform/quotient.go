package transform

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Quotient returns the operator T̄(v + U) = T(v) + U induced on V/U by an
// operator t for which U is invariant (T(U) ⊆ U).
//
// Errors: ErrNotInvariant; matrix.ErrInvalidDimensions when U is the whole
// domain (the quotient is {0}).
func Quotient[V matrix.Vector[V, F], F field.Field[F]](
	t *Endo[V, F], u *matrix.Space[V, F],
) (*Endo[matrix.Coset[V, F], F], error) {
	for _, b := range u.Basis() {
		if !u.Contains(t.rule(b)) {
			return nil, fmt.Errorf("transform.Quotient: %w", ErrNotInvariant)
		}
	}
	q := matrix.NewQuotient(u)
	s, err := q.Space(t.domain.Basis()...)
	if err != nil {
		return nil, fmt.Errorf("transform.Quotient: %w", err)
	}
	rule := t.rule

	return NewEndo(s, func(c matrix.Coset[V, F]) matrix.Coset[V, F] {
		return q.Coset(rule(c.Representative()))
	})
}

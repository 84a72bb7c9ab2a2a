// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlalg/field"

// Quotient is the quotient space V/U for a subspace U. It hands out Cosets
// and fixes the canonical representative used for their coordinates.
//
// The canonical representative of v + U is v reduced against the reduced
// row-echelon form of U's basis (as rows): it has a zero at every pivot
// position. Dropping those positions gives a coordinate column of length
// Dim() − Dimension(U), an isomorphism V/U → F^(dim−k).
type Quotient[V Vector[V, F], F field.Field[F]] struct {
	sub    *Space[V, F]
	rref   *Matrix[F] // nil when U = {0}
	pivots []int
	free   []int // non-pivot positions, ascending
}

// NewQuotient prepares V/U. U is cloned.
func NewQuotient[V Vector[V, F], F field.Field[F]](u *Space[V, F]) *Quotient[V, F] {
	q := &Quotient[V, F]{sub: u.Clone()}
	isPivot := make([]bool, u.dim)
	if !u.IsEmpty() {
		m, _ := FromRows(u.coords...)
		q.pivots = gaussJordan(m, nil)
		q.rref = m
		for _, p := range q.pivots {
			isPivot[p] = true
		}
	}
	for i := 0; i < u.dim; i++ {
		if !isPivot[i] {
			q.free = append(q.free, i)
		}
	}

	return q
}

// Subspace returns a copy of U.
func (q *Quotient[V, F]) Subspace() *Space[V, F] { return q.sub.Clone() }

// Dim returns dim(V) − dim(U).
func (q *Quotient[V, F]) Dim() int { return len(q.free) }

// Coset returns v + U.
func (q *Quotient[V, F]) Coset(v V) Coset[V, F] { return Coset[V, F]{rep: v, q: q} }

// Space builds a space of cosets of ambient dimension Dim() from the given
// representatives (dependent classes skipped as usual).
//
// Errors: ErrInvalidDimensions when U is the whole space (V/U = {0}).
func (q *Quotient[V, F]) Space(reps ...V) (*Space[Coset[V, F], F], error) {
	cs := make([]Coset[V, F], len(reps))
	for i, r := range reps {
		cs[i] = q.Coset(r)
	}

	return NewSpace[Coset[V, F], F](q.Dim(), cs...)
}

// canonical returns the reduced coordinates of v (zeros at pivot positions).
func (q *Quotient[V, F]) canonical(v V) Column[F] {
	c := v.Coordinates()
	for row, p := range q.pivots {
		k := c[p]
		if field.IsZero(k) {
			continue
		}
		r := q.rref.row(row)
		for j := range c {
			c[j] = c[j].Add(r[j].Mul(k).Neg())
		}
	}

	return c
}

// Coset is the class v + U of a Quotient. It satisfies Vector[Coset, F].
type Coset[V Vector[V, F], F field.Field[F]] struct {
	rep V
	q   *Quotient[V, F]
}

// Representative returns the representative the coset was built from.
func (c Coset[V, F]) Representative() V { return c.rep }

// Canonical returns the canonical representative as a vector.
func (c Coset[V, F]) Canonical() Column[F] { return c.q.canonical(c.rep) }

// Add returns (v + w) + U.
func (c Coset[V, F]) Add(o Coset[V, F]) Coset[V, F] {
	return Coset[V, F]{rep: c.rep.Add(o.rep), q: c.q}
}

// Scale returns k·v + U.
func (c Coset[V, F]) Scale(k F) Coset[V, F] { return Coset[V, F]{rep: c.rep.Scale(k), q: c.q} }

// Neg returns −v + U.
func (c Coset[V, F]) Neg() Coset[V, F] { return Coset[V, F]{rep: c.rep.Neg(), q: c.q} }

// Zero returns U itself (0 + U).
func (c Coset[V, F]) Zero() Coset[V, F] { return Coset[V, F]{rep: c.rep.Zero(), q: c.q} }

// Coordinates returns the canonical representative restricted to the
// non-pivot positions of U.
func (c Coset[V, F]) Coordinates() Column[F] {
	full := c.q.canonical(c.rep)
	out := make(Column[F], len(c.q.free))
	for i, p := range c.q.free {
		out[i] = full[p]
	}

	return out
}

// Contains reports whether w ∈ v + U, i.e. v − w ∈ U.
func (c Coset[V, F]) Contains(w V) bool {
	return c.q.sub.Contains(c.rep.Add(w.Neg()))
}

// Equivalent reports whether both cosets are the same class.
func (c Coset[V, F]) Equivalent(o Coset[V, F]) bool { return c.Contains(o.rep) }

// String renders the canonical representative followed by "+ U".
func (c Coset[V, F]) String() string { return c.q.canonical(c.rep).String() + " + U" }

// SPDX-License-Identifier: MIT
// Package matrix: the vector-space (basis) abstraction.
//
// Purpose:
//   - Hold an ordered basis of linearly independent vectors of a fixed
//     ambient dimension and answer span queries against it.
//
// Invariants:
//   - 0 < dim; len(basis) ≤ dim; basis vectors are linearly independent.
//   - The cached basis matrix (basis coordinates as columns, padded with zero
//     columns up to dim) is rebuilt only by Add; nothing else mutates basis.
//   - The additive identity is contained in every space, including the empty one.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/field"
)

// Space is a subspace of an ambient space of dimension Dim(), described by
// an ordered basis. V is the vector type and F its field.
type Space[V Vector[V, F], F field.Field[F]] struct {
	dim    int
	basis  []V
	coords []Column[F] // coordinates of basis, same order
	mat    *Square[F]  // dim×dim basis matrix; nil while basis is empty
}

// NewSpace creates a space of ambient dimension dim and grows it with
// vectors through Add (dependent or mis-shaped candidates are skipped).
//
// Errors: ErrInvalidDimensions when dim <= 0.
func NewSpace[V Vector[V, F], F field.Field[F]](dim int, vectors ...V) (*Space[V, F], error) {
	if dim <= 0 {
		return nil, matrixErrorf("NewSpace", ErrInvalidDimensions)
	}
	s := &Space[V, F]{dim: dim}
	s.Add(vectors...)

	return s, nil
}

// Span is NewSpace for coordinate columns, where F is inferred from the columns.
func Span[F field.Field[F]](dim int, cols ...Column[F]) (*Space[Column[F], F], error) {
	return NewSpace[Column[F], F](dim, cols...)
}

// Add appends each candidate, in call order, that has the ambient dimension
// and is not already in the span. Candidates are skipped silently once the
// space is spanning. Returns the number of vectors accepted.
//
// Complexity: O(dim³) per candidate (one Solve against the basis matrix).
func (s *Space[V, F]) Add(vectors ...V) int {
	added := 0
	for _, v := range vectors {
		if s.IsSpanning() {
			break
		}
		c := v.Coordinates()
		if len(c) != s.dim || s.containsCoords(c) {
			continue
		}
		s.basis = append(s.basis, v)
		s.coords = append(s.coords, c)
		s.rebuild()
		added++
	}

	return added
}

// rebuild recomputes the cached basis matrix. Called only from Add.
func (s *Space[V, F]) rebuild() {
	z := s.coords[0][0].Zero()
	m := zeros(s.dim, s.dim, z)
	for j, c := range s.coords {
		for i, v := range c {
			m.data[i*s.dim+j] = v
		}
	}
	s.mat = &Square[F]{Matrix: m}
}

// Dim returns the ambient dimension.
func (s *Space[V, F]) Dim() int { return s.dim }

// Dimension returns the number of basis vectors.
func (s *Space[V, F]) Dimension() int { return len(s.basis) }

// IsEmpty reports whether the basis is empty (the space is {0}).
func (s *Space[V, F]) IsEmpty() bool { return len(s.basis) == 0 }

// IsSpanning reports whether the basis spans the ambient space.
func (s *Space[V, F]) IsSpanning() bool { return len(s.basis) == s.dim }

// Basis returns a copy of the basis slice (vectors themselves are values).
func (s *Space[V, F]) Basis() []V {
	out := make([]V, len(s.basis))
	copy(out, s.basis)

	return out
}

// BasisMatrix returns a copy of the dim×dim basis matrix (basis coordinates
// as columns, zero columns after them), or nil for an empty space.
func (s *Space[V, F]) BasisMatrix() *Square[F] {
	if s.mat == nil {
		return nil
	}

	return &Square[F]{Matrix: s.mat.Clone()}
}

// Contains reports whether v lies in the span of the basis.
// The zero vector is always contained; mis-shaped vectors never are.
func (s *Space[V, F]) Contains(v V) bool {
	c := v.Coordinates()

	return len(c) == s.dim && s.containsCoords(c)
}

func (s *Space[V, F]) containsCoords(c Column[F]) bool {
	if c.IsZero() {
		return true
	}
	if s.mat == nil {
		return false
	}
	_, ok := solve(s.mat.Matrix, c)

	return ok
}

// Coordinates returns x with v = Σ x[i]·basis[i] and ok = true, or
// (nil, false) when v is not contained. len(x) == Dimension().
func (s *Space[V, F]) Coordinates(v V) (Column[F], bool) {
	c := v.Coordinates()
	if len(c) != s.dim {
		return nil, false
	}
	if s.mat == nil {
		return Column[F]{}, c.IsZero()
	}
	x, ok := solve(s.mat.Matrix, c)
	if !ok {
		return nil, false
	}

	return x[:len(s.basis)], true
}

// LinearCombination returns Σ coeffs[i]·basis[i].
//
// Errors: ErrEmptySpace, ErrDimensionMismatch when len(coeffs) != Dimension().
func (s *Space[V, F]) LinearCombination(coeffs ...F) (V, error) {
	var zero V
	if s.IsEmpty() {
		return zero, matrixErrorf("LinearCombination", ErrEmptySpace)
	}
	if len(coeffs) != len(s.basis) {
		return zero, matrixErrorf("LinearCombination", ErrDimensionMismatch)
	}

	return s.combine(coeffs), nil
}

func (s *Space[V, F]) combine(coeffs []F) V {
	acc := s.basis[0].Scale(coeffs[0])
	for i := 1; i < len(coeffs); i++ {
		acc = acc.Add(s.basis[i].Scale(coeffs[i]))
	}

	return acc
}

// Clone returns an independent space with the same ambient dimension and basis.
func (s *Space[V, F]) Clone() *Space[V, F] {
	out := &Space[V, F]{
		dim:    s.dim,
		basis:  s.Basis(),
		coords: make([]Column[F], len(s.coords)),
	}
	copy(out.coords, s.coords)
	if s.mat != nil {
		out.mat = s.BasisMatrix()
	}

	return out
}

// Empty returns a space with the same ambient dimension and no basis.
func (s *Space[V, F]) Empty() *Space[V, F] { return &Space[V, F]{dim: s.dim} }

// Reverse returns a space holding the same basis in reverse order.
func (s *Space[V, F]) Reverse() *Space[V, F] {
	out := s.Empty()
	for i := len(s.basis) - 1; i >= 0; i-- {
		out.basis = append(out.basis, s.basis[i])
		out.coords = append(out.coords, s.coords[i])
	}
	if len(out.basis) > 0 {
		out.rebuild()
	}

	return out
}

// String renders "span{(1, 0), (0, 1)} ⊆ F^2".
func (s *Space[V, F]) String() string {
	var b strings.Builder
	b.WriteString("span{")
	for i, c := range s.coords {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	fmt.Fprintf(&b, "} ⊆ F^%d", s.dim)

	return b.String()
}

// Sum returns U + W: a clone of u grown with w's basis.
//
// Errors: ErrDimensionMismatch when ambient dimensions differ.
func Sum[V Vector[V, F], F field.Field[F]](u, w *Space[V, F]) (*Space[V, F], error) {
	if u.dim != w.dim {
		return nil, matrixErrorf("Sum", ErrDimensionMismatch)
	}
	out := u.Clone()
	out.Add(w.basis...)

	return out, nil
}

// Intersection returns U ∩ W.
//
// Implementation:
//   - Stage 1: Build M = [u₁ … u_k | −w₁ … −w_m] (coordinates as columns).
//   - Stage 2: For every null-space vector x of M, the first k entries are
//     coefficients of a vector Σ xᵢ·uᵢ lying in both spaces.
//   - Stage 3: Accumulate those vectors into an empty space of the same dim.
//
// Errors: ErrDimensionMismatch when ambient dimensions differ.
func Intersection[V Vector[V, F], F field.Field[F]](u, w *Space[V, F]) (*Space[V, F], error) {
	if u.dim != w.dim {
		return nil, matrixErrorf("Intersection", ErrDimensionMismatch)
	}
	out := u.Empty()
	if u.IsEmpty() || w.IsEmpty() {
		return out, nil
	}
	cols := make([]Column[F], 0, len(u.coords)+len(w.coords))
	cols = append(cols, u.coords...)
	for _, c := range w.coords {
		cols = append(cols, c.Neg())
	}
	m, err := FromColumns(cols...)
	if err != nil {
		return nil, matrixErrorf("Intersection", err)
	}
	k := len(u.basis)
	for _, x := range nullSpaceColumns(m) {
		out.Add(u.combine(x[:k]))
	}

	return out, nil
}

// TransitionMatrix returns the change-of-coordinates matrix T with
// [v]_to = T·[v]_from, i.e. to.BasisMatrix⁻¹ · from.BasisMatrix.
//
// Errors: ErrDimensionMismatch, ErrNotSpanning.
func TransitionMatrix[V Vector[V, F], F field.Field[F]](from, to *Space[V, F]) (*Square[F], error) {
	if from.dim != to.dim {
		return nil, matrixErrorf("TransitionMatrix", ErrDimensionMismatch)
	}
	if !from.IsSpanning() || !to.IsSpanning() {
		return nil, matrixErrorf("TransitionMatrix", ErrNotSpanning)
	}
	inv, ok := to.mat.Inverse()
	if !ok {
		// A spanning basis matrix is always invertible.
		return nil, matrixErrorf("TransitionMatrix", ErrSingular)
	}

	return &Square[F]{Matrix: mul(inv.Matrix, from.mat.Matrix)}, nil
}

// EqualSpaces reports whether u and w are the same subspace (same ambient
// dimension, same dimension, and u's basis lies in w).
func EqualSpaces[V Vector[V, F], F field.Field[F]](u, w *Space[V, F]) bool {
	if u.dim != w.dim || len(u.basis) != len(w.basis) {
		return false
	}
	for _, c := range u.coords {
		if !w.containsCoords(c) {
			return false
		}
	}

	return true
}

// SPDX-License-Identifier: MIT
// Package matrix: the square refinement.
//
// Purpose:
//   - Square[F] embeds *Matrix[F] and adds the operations that only make
//     sense for n×n matrices: Det, Minor, Adjugate, Inverse, Trace, Power, LU,
//     InBasis.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
)

// Square is an n×n Matrix. The embedded *Matrix provides accessors,
// Vector-capability methods and elimination queries.
type Square[F field.Field[F]] struct {
	*Matrix[F]
}

// NewSquare builds a Square from rows.
//
// Errors: those of New, plus ErrNonSquare.
func NewSquare[F field.Field[F]](rows [][]F) (*Square[F], error) {
	m, err := New(rows)
	if err != nil {
		return nil, err
	}

	return AsSquare(m)
}

// AsSquare views m as a Square (sharing no storage with m).
//
// Errors: ErrNilMatrix, ErrNonSquare.
func AsSquare[F field.Field[F]](m *Matrix[F]) (*Square[F], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("AsSquare", err)
	}

	return &Square[F]{Matrix: m.Clone()}, nil
}

// Size returns n.
func (s *Square[F]) Size() int { return s.r }

// Identity returns the identity of the same size and field.
func (s *Square[F]) Identity() *Square[F] {
	return &Square[F]{Matrix: identity(s.r, s.data[0])}
}

// Trace returns Σ aᵢᵢ.
func (s *Square[F]) Trace() F {
	acc := s.data[0]
	for i := 1; i < s.r; i++ {
		acc = acc.Add(s.at(i, i))
	}

	return acc
}

// Det returns the determinant by fraction-free (Bareiss) elimination.
//
// Implementation:
//   - Stage 1: Work on a clone M; prev = One(); sign = One().
//   - Stage 2: For k = 0..n−2: if M[k][k] is zero, swap in the first row
//     below with a non-zero entry in column k and flip sign; no such row
//     means det = 0. Then for i, j > k:
//     M[i][j] = (M[i][j]·M[k][k] − M[i][k]·M[k][j]) · prev⁻¹; prev = M[k][k].
//   - Stage 3: det = sign · M[n−1][n−1].
//
// Complexity: O(n³).
func (s *Square[F]) Det() F {
	n := s.r
	m := s.Clone()
	one := m.data[0].One()
	sign, prev := one, one
	for k := 0; k < n-1; k++ {
		if field.IsZero(m.at(k, k)) {
			p := -1
			for i := k + 1; i < n; i++ {
				if !field.IsZero(m.at(i, k)) {
					p = i
					break
				}
			}
			if p < 0 {
				return one.Zero()
			}
			m.swapRows(k, p)
			sign = sign.Neg()
		}
		pivot := m.at(k, k)
		invPrev := prev.Inv()
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				v := m.at(i, j).Mul(pivot).Add(m.at(i, k).Mul(m.at(k, j)).Neg())
				m.set(i, j, v.Mul(invPrev))
			}
		}
		prev = pivot
	}

	return sign.Mul(m.at(n-1, n-1))
}

// Minor returns the (n−1)×(n−1) matrix obtained by deleting row i and column j.
//
// Errors: ErrInvalidDimensions for a 1×1 receiver, ErrOutOfRange.
func (s *Square[F]) Minor(i, j int) (*Square[F], error) {
	n := s.r
	if n == 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d,%d)", opMinor, i, j), ErrOutOfRange)
	}

	return &Square[F]{Matrix: s.minor(i, j)}, nil
}

func (s *Square[F]) minor(i, j int) *Matrix[F] {
	n := s.r
	out := &Matrix[F]{r: n - 1, c: n - 1, data: make([]F, 0, (n-1)*(n-1))}
	for r := 0; r < n; r++ {
		if r == i {
			continue
		}
		for c := 0; c < n; c++ {
			if c != j {
				out.data = append(out.data, s.at(r, c))
			}
		}
	}

	return out
}

// Adjugate returns adj(A) with adj(A)[i][j] = (−1)^(i+j)·det(Minor(j, i)).
// The adjugate of a 1×1 matrix is [1].
//
// Complexity: O(n⁵) (n² determinants).
func (s *Square[F]) Adjugate() *Square[F] {
	n := s.r
	if n == 1 {
		return s.Identity()
	}
	out := &Matrix[F]{r: n, c: n, data: make([]F, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := (&Square[F]{Matrix: s.minor(j, i)}).Det()
			if (i+j)%2 == 1 {
				d = d.Neg()
			}
			out.data[i*n+j] = d
		}
	}

	return &Square[F]{Matrix: out}
}

// Inverse returns A⁻¹ and true, or (nil, false) when A is singular.
//
// Implementation:
//   - Stage 1: Reduce a clone to canonical form recording the row operations.
//   - Stage 2: rank < n → not invertible.
//   - Stage 3: Replay the same operations on the identity; it becomes A⁻¹.
//
// Complexity: O(n³).
func (s *Square[F]) Inverse() (*Square[F], bool) {
	w := s.Clone()
	rec := &transcript[F]{}
	if len(gaussJordan(w, rec)) < s.r {
		return nil, false
	}
	inv := identity(s.r, s.data[0])
	rec.replay(inv)

	return &Square[F]{Matrix: inv}, true
}

// IsInvertible reports full rank.
func (s *Square[F]) IsInvertible() bool { return s.Rank() == s.r }

// Mul returns s·o for two squares of equal size.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (s *Square[F]) Mul(o *Square[F]) (*Square[F], error) {
	if o == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	m, err := Mul(s.Matrix, o.Matrix)
	if err != nil {
		return nil, err
	}

	return &Square[F]{Matrix: m}, nil
}

// Power returns A^exp by binary exponentiation; A⁰ = I.
//
// Errors: ErrNegativeExponent.
// Complexity: O(n³·log exp).
func (s *Square[F]) Power(exp int) (*Square[F], error) {
	if exp < 0 {
		return nil, matrixErrorf(fmt.Sprintf("%s(%d)", opPower, exp), ErrNegativeExponent)
	}
	res := identity(s.r, s.data[0])
	base := s.Matrix
	for exp > 0 {
		if exp&1 == 1 {
			res = mul(res, base)
		}
		exp >>= 1
		if exp > 0 {
			base = mul(base, base)
		}
	}

	return &Square[F]{Matrix: res}, nil
}

// InBasis returns P⁻¹·A·P, the operator A expressed in the basis formed by
// the columns of P.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
func (s *Square[F]) InBasis(p *Square[F]) (*Square[F], error) {
	if p == nil || p.Matrix == nil {
		return nil, matrixErrorf(opInBasis, ErrNilMatrix)
	}
	if p.r != s.r {
		return nil, matrixErrorf(opInBasis, ErrDimensionMismatch)
	}
	inv, ok := p.Inverse()
	if !ok {
		return nil, matrixErrorf(opInBasis, ErrSingular)
	}

	return &Square[F]{Matrix: mul(mul(inv.Matrix, s.Matrix), p.Matrix)}, nil
}

// LUResult holds P·A = L·U with L unit lower triangular, U upper triangular
// and P a permutation matrix.
type LUResult[F field.Field[F]] struct {
	L, U, P *Square[F]
}

// LU factors A with first-non-zero row pivoting. A column with no non-zero
// candidate leaves a zero on U's diagonal and factoring continues, so the
// factorisation exists for singular matrices too.
//
// Implementation:
//   - Stage 1: U = clone(A), L = 0, perm = identity ordering.
//   - Stage 2: For each k, pick the first row p ≥ k with U[p][k] ≠ 0; swap
//     rows k and p in U, in perm and in the already-built part of L.
//   - Stage 3: For i > k: l = U[i][k]·U[k][k]⁻¹; row_i(U) −= l·row_k(U);
//     L[i][k] = l. Finally set L's diagonal to One().
//
// Complexity: O(n³).
func (s *Square[F]) LU() *LUResult[F] {
	n := s.r
	u := s.Clone()
	z := s.data[0].Zero()
	l := zeros(n, n, z)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for k := 0; k < n; k++ {
		p := -1
		for i := k; i < n; i++ {
			if !field.IsZero(u.at(i, k)) {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		if p != k {
			u.swapRows(k, p)
			perm[k], perm[p] = perm[p], perm[k]
			for j := 0; j < k; j++ {
				lk, lp := l.at(k, j), l.at(p, j)
				l.set(k, j, lp)
				l.set(p, j, lk)
			}
		}
		inv := u.at(k, k).Inv()
		for i := k + 1; i < n; i++ {
			e := u.at(i, k)
			if field.IsZero(e) {
				continue
			}
			f := e.Mul(inv)
			u.addRowMultiple(i, k, f.Neg())
			u.set(i, k, z)
			l.set(i, k, f)
		}
	}
	one := z.One()
	pm := zeros(n, n, z)
	for i := 0; i < n; i++ {
		l.set(i, i, one)
		pm.set(i, perm[i], one)
	}

	return &LUResult[F]{L: &Square[F]{Matrix: l}, U: &Square[F]{Matrix: u}, P: &Square[F]{Matrix: pm}}
}

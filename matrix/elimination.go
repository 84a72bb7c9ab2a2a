// SPDX-License-Identifier: MIT
// Package matrix: Gaussian-elimination kernels.
//
// Purpose:
//   - echelon: row-echelon form by first-non-zero pivoting.
//   - gaussJordan: reduced row-echelon (canonical) form.
//   - Public facades EchelonForm, CanonicalForm, Rank, Pivots operate on a
//     private clone and never touch the caller's matrix.
//
// Notes:
//   - Pivot choice is "first entry that is not Zero() scanning down"; the
//     field's Equal decides what zero means, so tolerance lives in the field.

package matrix

import "github.com/katalvlaran/lvlalg/field"

// echelon reduces m in place to row-echelon form and returns the pivot
// column of each pivot row (len(pivots) == rank).
//
// Implementation:
//   - Stage 1: For each column left→right, scan rows from the current pivot
//     row downward for the first non-zero entry; none → no pivot, next column.
//   - Stage 2: Swap that row up to the pivot row when it is below.
//   - Stage 3: For every row below, add −(entry·pivot⁻¹)·pivotRow; the
//     eliminated entry is then set to Zero() exactly.
//   - Every row operation is recorded in rec (nil rec records nothing).
//
// Complexity: O(r·c·min(r,c)) field operations.
func echelon[F field.Field[F]](m *Matrix[F], rec *transcript[F]) []int {
	pivots := make([]int, 0, min(m.r, m.c))
	row := 0
	for col := 0; col < m.c && row < m.r; col++ {
		p := -1
		for i := row; i < m.r; i++ {
			if !field.IsZero(m.at(i, col)) {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		if p != row {
			m.swapRows(p, row)
			rec.swap(p, row)
		}
		inv := m.at(row, col).Inv()
		for i := row + 1; i < m.r; i++ {
			e := m.at(i, col)
			if field.IsZero(e) {
				continue
			}
			k := e.Mul(inv).Neg()
			m.addRowMultiple(i, row, k)
			rec.addMul(i, row, k)
			m.set(i, col, e.Zero())
		}
		pivots = append(pivots, col)
		row++
	}

	return pivots
}

// gaussJordan reduces m in place to reduced row-echelon form: every pivot is
// One() and is the only non-zero entry of its column. Returns pivot columns.
//
// Implementation:
//   - Stage 1: echelon(m, rec).
//   - Stage 2: For each pivot row, scale by pivot⁻¹, then clear the pivot
//     column in all rows above it.
func gaussJordan[F field.Field[F]](m *Matrix[F], rec *transcript[F]) []int {
	pivots := echelon(m, rec)
	for row, col := range pivots {
		p := m.at(row, col)
		if !field.IsOne(p) {
			k := p.Inv()
			m.scaleRow(row, k)
			rec.scale(row, k)
		}
		m.set(row, col, p.One())
		for i := 0; i < row; i++ {
			e := m.at(i, col)
			if field.IsZero(e) {
				continue
			}
			k := e.Neg()
			m.addRowMultiple(i, row, k)
			rec.addMul(i, row, k)
			m.set(i, col, e.Zero())
		}
	}

	return pivots
}

// EchelonForm returns a row-echelon form of m and its rank.
// The result is not reduced: pivots are not normalised and entries above
// pivots are untouched.
//
// Errors: ErrNilMatrix.
func EchelonForm[F field.Field[F]](m *Matrix[F]) (*Matrix[F], int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, 0, matrixErrorf("EchelonForm", err)
	}
	w := m.Clone()
	pivots := echelon(w, nil)

	return w, len(pivots), nil
}

// CanonicalForm returns the reduced row-echelon form of m.
//
// Errors: ErrNilMatrix.
func CanonicalForm[F field.Field[F]](m *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("CanonicalForm", err)
	}
	w := m.Clone()
	gaussJordan(w, nil)

	return w, nil
}

// Rank returns the number of pivots of m's row-echelon form.
func (m *Matrix[F]) Rank() int {
	return len(echelon(m.Clone(), nil))
}

// Pivots returns the pivot ("leading entry") column of each non-zero row of
// m's reduced form, in increasing order.
func (m *Matrix[F]) Pivots() []int {
	return echelon(m.Clone(), nil)
}

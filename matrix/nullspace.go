// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlalg/field"

// NullSpace returns {x : m·x = 0} as a space of ambient dimension m.Cols().
//
// Implementation:
//   - Stage 1: Reduce a clone to canonical form and record pivot columns.
//   - Stage 2: For each free (non-pivot) column f build x with x[f] = 1, and
//     for each pivot row i with pivot column p, x[p] = −R[i][f].
//
// The candidates are independent by construction (distinct free coordinates),
// so Dimension() == m.Cols() − Rank().
//
// Errors: ErrNilMatrix.
func NullSpace[F field.Field[F]](m *Matrix[F]) (*Space[Column[F], F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("NullSpace", err)
	}

	return Span(m.c, nullSpaceColumns(m)...)
}

func nullSpaceColumns[F field.Field[F]](m *Matrix[F]) []Column[F] {
	w := m.Clone()
	pivots := gaussJordan(w, nil)
	isPivot := make([]bool, m.c)
	for _, p := range pivots {
		isPivot[p] = true
	}
	one := m.data[0].One()
	out := make([]Column[F], 0, m.c-len(pivots))
	for f := 0; f < m.c; f++ {
		if isPivot[f] {
			continue
		}
		x := ZeroColumn(m.c, one)
		x[f] = one
		for row, p := range pivots {
			x[p] = w.at(row, f).Neg()
		}
		out = append(out, x)
	}

	return out
}

// ColumnSpace returns the span of m's columns (ambient dimension m.Rows()).
//
// Errors: ErrNilMatrix.
func ColumnSpace[F field.Field[F]](m *Matrix[F]) (*Space[Column[F], F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ColumnSpace", err)
	}

	return Span(m.r, m.Columns()...)
}

// RowSpace returns the span of m's rows (ambient dimension m.Cols()).
//
// Errors: ErrNilMatrix.
func RowSpace[F field.Field[F]](m *Matrix[F]) (*Space[Column[F], F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("RowSpace", err)
	}
	rows := make([]Column[F], m.r)
	for i := range rows {
		rows[i] = m.row(i)
	}

	return Span(m.c, rows...)
}

// SPDX-License-Identifier: MIT
// Package matrix: checked arithmetic.
//
// Purpose:
//   - Provide error-returning counterparts of the Vector-capability methods
//     (Add/Sub) plus products and transposition.
//
// Notes:
//   - Every kernel validates through validators.go and wraps with its op tag.
//   - Inputs are never mutated; a fresh result is allocated.

package matrix

import "github.com/katalvlaran/lvlalg/field"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opMulColumn = "MulColumn"
	opTranspose = "Transpose"
	opSolve     = "Solve"
	opMinor     = "Minor"
	opPower     = "Power"
	opInBasis   = "InBasis"
)

// Add returns a + b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
// Complexity: O(r*c).
func Add[F field.Field[F]](a, b *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return a.addUnchecked(b), nil
}

// Sub returns a − b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub[F field.Field[F]](a, b *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return a.addUnchecked(b.Neg()), nil
}

// Mul returns the product a·b of an r×n and an n×c matrix.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: Classic i→j→k triple loop; the accumulator starts from the
//     first product term, so no zero sample is needed.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
// Complexity: O(r*n*c).
func Mul[F field.Field[F]](a, b *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

func mul[F field.Field[F]](a, b *Matrix[F]) *Matrix[F] {
	r, n, c := a.r, a.c, b.c
	out := &Matrix[F]{r: r, c: c, data: make([]F, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			acc := a.data[i*n].Mul(b.data[j])
			for k := 1; k < n; k++ {
				acc = acc.Add(a.data[i*n+k].Mul(b.data[k*c+j]))
			}
			out.data[i*c+j] = acc
		}
	}

	return out
}

// MulColumn returns a·x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != a.Cols().
func MulColumn[F field.Field[F]](a *Matrix[F], x Column[F]) (Column[F], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMulColumn, err)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMulColumn, err)
	}

	return mulColumn(a, x), nil
}

func mulColumn[F field.Field[F]](a *Matrix[F], x Column[F]) Column[F] {
	out := make(Column[F], a.r)
	for i := 0; i < a.r; i++ {
		acc := a.data[i*a.c].Mul(x[0])
		for k := 1; k < a.c; k++ {
			acc = acc.Add(a.data[i*a.c+k].Mul(x[k]))
		}
		out[i] = acc
	}

	return out
}

// Transpose returns mᵀ.
//
// Errors: ErrNilMatrix.
func Transpose[F field.Field[F]](m *Matrix[F]) (*Matrix[F], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.transpose(), nil
}

func (m *Matrix[F]) transpose() *Matrix[F] {
	out := &Matrix[F]{r: m.c, c: m.r, data: make([]F, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// T returns mᵀ; the receiver form of Transpose.
func (m *Matrix[F]) T() *Matrix[F] { return m.transpose() }

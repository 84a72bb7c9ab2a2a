// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures over Real, Rat, GF2 and ModP.
//   - Keep Must* helpers fatal on error so table cases stay short.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

type (
	realCol   = matrix.Column[field.Real]
	realSpace = matrix.Space[realCol, field.Real]
	ratCol    = matrix.Column[field.Rat]
)

// R builds a Real column with the default tolerance.
func R(vs ...float64) realCol { return field.Reals(nil, vs...) }

// Q builds an integer-valued Rat column.
func Q(vs ...int64) ratCol { return field.Rats(vs...) }

// MustReal builds a Real matrix from float rows or fails the test.
func MustReal(t *testing.T, rows [][]float64) *matrix.Matrix[field.Real] {
	t.Helper()
	raw := make([][]field.Real, len(rows))
	for i, r := range rows {
		raw[i] = field.Reals(nil, r...)
	}
	m, err := matrix.New(raw)
	require.NoError(t, err)

	return m
}

// MustRealSquare is MustReal followed by AsSquare.
func MustRealSquare(t *testing.T, rows [][]float64) *matrix.Square[field.Real] {
	t.Helper()
	s, err := matrix.AsSquare(MustReal(t, rows))
	require.NoError(t, err)

	return s
}

// MustRat builds an exact rational matrix from integer rows.
func MustRat(t *testing.T, rows [][]int64) *matrix.Matrix[field.Rat] {
	t.Helper()
	raw := make([][]field.Rat, len(rows))
	for i, r := range rows {
		raw[i] = field.Rats(r...)
	}
	m, err := matrix.New(raw)
	require.NoError(t, err)

	return m
}

// MustRatSquare is MustRat followed by AsSquare.
func MustRatSquare(t *testing.T, rows [][]int64) *matrix.Square[field.Rat] {
	t.Helper()
	s, err := matrix.AsSquare(MustRat(t, rows))
	require.NoError(t, err)

	return s
}

// MustModP builds a matrix over ℤ/pℤ.
func MustModP(t *testing.T, p uint64, rows [][]int64) *matrix.Matrix[field.ModP] {
	t.Helper()
	mod, err := field.NewModulus(p)
	require.NoError(t, err)
	raw := make([][]field.ModP, len(rows))
	for i, r := range rows {
		raw[i] = mod.Ints(r...)
	}
	m, err := matrix.New(raw)
	require.NoError(t, err)

	return m
}

// MustGF2 builds a boolean matrix from 0/1 rows.
func MustGF2(t *testing.T, rows [][]int) *matrix.Matrix[field.GF2] {
	t.Helper()
	raw := make([][]field.GF2, len(rows))
	for i, r := range rows {
		raw[i] = make([]field.GF2, len(r))
		for j, v := range r {
			raw[i][j] = v != 0
		}
	}
	m, err := matrix.New(raw)
	require.NoError(t, err)

	return m
}

// MustMul multiplies or fails the test.
func MustMul[F field.Field[F]](t *testing.T, a, b *matrix.Matrix[F]) *matrix.Matrix[F] {
	t.Helper()
	out, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return out
}

// MustAt reads an entry or fails the test.
func MustAt[F field.Field[F]](t *testing.T, m *matrix.Matrix[F], i, j int) F {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSpan builds a Real column space or fails the test.
func MustSpan(t *testing.T, dim int, cols ...realCol) *realSpace {
	t.Helper()
	s, err := matrix.Span(dim, cols...)
	require.NoError(t, err)

	return s
}

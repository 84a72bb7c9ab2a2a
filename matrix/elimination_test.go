// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

func TestEchelonForm(t *testing.T) {
	t.Parallel()

	m := MustRat(t, [][]int64{{0, 2, 4}, {1, 1, 1}, {2, 4, 6}})
	ef, rank, err := matrix.EchelonForm(m)
	require.NoError(t, err)
	assert.Equal(t, 2, rank)
	// First column pivot comes from the second row after the swap.
	assert.True(t, ef.Equal(MustRat(t, [][]int64{{1, 1, 1}, {0, 2, 4}, {0, 0, 0}})))
	// Input untouched.
	assert.True(t, m.Equal(MustRat(t, [][]int64{{0, 2, 4}, {1, 1, 1}, {2, 4, 6}})))
}

func TestCanonicalForm(t *testing.T) {
	t.Parallel()

	m := MustRat(t, [][]int64{{3, 6, 6, 3, 9}, {6, 12, 13, 0, 3}})
	cf, err := matrix.CanonicalForm(m)
	require.NoError(t, err)
	assert.True(t, cf.Equal(MustRat(t, [][]int64{{1, 2, 0, 13, 33}, {0, 0, 1, -6, -15}})))
	assert.Equal(t, []int{0, 2}, m.Pivots())

	_, err = matrix.CanonicalForm[field.Rat](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRank_AcrossFields(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, MustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}).Rank())
	assert.Equal(t, 1, MustReal(t, [][]float64{{0, 0}, {0, 3}}).Rank())
	assert.Equal(t, 0, MustRat(t, [][]int64{{0, 0}, {0, 0}}).Rank())

	// Over GF(2) the rows 110, 011, 101 sum to zero.
	assert.Equal(t, 2, MustGF2(t, [][]int{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}}).Rank())

	// Over ℤ/5ℤ, [[1,2],[3,1]] has det 1 − 6 = −5 ≡ 0.
	assert.Equal(t, 1, MustModP(t, 5, [][]int64{{1, 2}, {3, 1}}).Rank())
	assert.Equal(t, 2, MustModP(t, 7, [][]int64{{1, 2}, {3, 1}}).Rank())
}

func TestNullSpace_Scenario(t *testing.T) {
	t.Parallel()

	a := MustReal(t, [][]float64{{3, 6, 6, 3, 9}, {6, 12, 13, 0, 3}})
	ns, err := matrix.NullSpace(a)
	require.NoError(t, err)
	assert.Equal(t, 5, ns.Dim())
	assert.Equal(t, 3, ns.Dimension())
	for _, x := range ns.Basis() {
		ax, err := matrix.MulColumn(a, x)
		require.NoError(t, err)
		assert.True(t, ax.IsZero(), "A·%s = %s", x, ax)
	}
	assert.True(t, ns.Contains(R(-2, 1, 0, 0, 0)))
	assert.True(t, ns.Contains(R(-13, 0, 6, 1, 0)))
	assert.False(t, ns.Contains(R(1, 0, 0, 0, 0)))
}

func TestRankNullity(t *testing.T) {
	t.Parallel()

	cases := [][][]int64{
		{{1, 2}, {3, 4}},
		{{1, 2, 3}, {2, 4, 6}},
		{{0, 0, 0}},
		{{1}, {2}, {3}},
		{{1, 0, 2, -1}, {0, 1, 1, 1}, {1, 1, 3, 0}},
		{{2, 4, 1}, {1, 2, 0}, {3, 6, 1}, {0, 0, 1}},
	}
	for _, rows := range cases {
		a := MustRat(t, rows)
		ns, err := matrix.NullSpace(a)
		require.NoError(t, err)
		cs, err := matrix.ColumnSpace(a)
		require.NoError(t, err)
		rs, err := matrix.RowSpace(a)
		require.NoError(t, err)

		r := a.Rank()
		assert.Equal(t, r, cs.Dimension(), "column space of %v", rows)
		assert.Equal(t, r, rs.Dimension(), "row space of %v", rows)
		assert.Equal(t, a.Cols(), r+ns.Dimension(), "rank-nullity of %v", rows)
	}
}

func TestSolve_Overdetermined(t *testing.T) {
	t.Parallel()

	a := MustReal(t, [][]float64{{1, -2}, {3, 5}, {4, 3}})
	x, ok, err := matrix.Solve(a, R(-1, 8, 7))
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 1.0, x[0].Float(), 1e-12)
	assert.InDelta(t, 1.0, x[1].Float(), 1e-12)
}

func TestSolve_Outcomes(t *testing.T) {
	t.Parallel()

	a := MustRat(t, [][]int64{{1, 2, 1}, {2, 4, 0}, {3, 6, 1}})

	t.Run("consistent underdetermined", func(t *testing.T) {
		b := Q(2, 4, 6)
		x, ok, err := matrix.Solve(a, b)
		require.NoError(t, err)
		require.True(t, ok)
		ax, err := matrix.MulColumn(a, x)
		require.NoError(t, err)
		assert.True(t, ax.Equal(b))
		assert.Equal(t, "0", x[1].String(), "free variable is zero")
	})

	t.Run("inconsistent", func(t *testing.T) {
		x, ok, err := matrix.Solve(a, Q(1, 0, 0))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, x)
	})

	t.Run("shape", func(t *testing.T) {
		_, _, err := matrix.Solve(a, Q(1, 2))
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	})

	t.Run("input untouched", func(t *testing.T) {
		b := Q(2, 4, 6)
		_, _, err := matrix.Solve(a, b)
		require.NoError(t, err)
		assert.True(t, b.Equal(Q(2, 4, 6)))
		assert.True(t, a.Equal(MustRat(t, [][]int64{{1, 2, 1}, {2, 4, 0}, {3, 6, 1}})))
	})
}

func TestSolve_FiniteFields(t *testing.T) {
	t.Parallel()

	// x + y = 1, y + z = 0, x + z = 1 over GF(2): x = 1, y = 0, z = 0 (z free).
	g := MustGF2(t, [][]int{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}})
	x, ok, err := matrix.Solve(g, matrix.NewColumn[field.GF2](true, false, true))
	require.NoError(t, err)
	require.True(t, ok)
	gx, err := matrix.MulColumn(g, x)
	require.NoError(t, err)
	assert.Equal(t, "(1, 0, 1)", gx.String())

	// det [[2,3],[1,4]] = 5 ≠ 0 mod 7.
	m := MustModP(t, 7, [][]int64{{2, 3}, {1, 4}})
	mod, err := field.NewModulus(7)
	require.NoError(t, err)
	b := matrix.NewColumn(mod.Ints(1, 2)...)
	y, ok, err := matrix.Solve(m, b)
	require.NoError(t, err)
	require.True(t, ok)
	my, err := matrix.MulColumn(m, y)
	require.NoError(t, err)
	assert.True(t, my.Equal(b))

	// det [[2,3],[1,5]] = 7 ≡ 0 and row 0 = 2·row 1, but 1 ≢ 2·2: inconsistent.
	singular := MustModP(t, 7, [][]int64{{2, 3}, {1, 5}})
	_, ok, err = matrix.Solve(singular, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

func TestDet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int64
		want string
	}{
		{"1x1", [][]int64{{-4}}, "-4"},
		{"2x2", [][]int64{{1, 2}, {3, 4}}, "-2"},
		{"needs row swap", [][]int64{{0, 1}, {1, 0}}, "-1"},
		{"zero leading pivot 3x3", [][]int64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}}, "-5"},
		{"last row expansion", [][]int64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}}, "-1"},
		{"singular", [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, "0"},
		{"zero column", [][]int64{{0, 1}, {0, 2}}, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MustRatSquare(t, tc.rows).Det().String())
		})
	}
}

func TestDet_AgainstGonum(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{2, -1, 0, 3},
		{1, 4, -2, 0},
		{0, 5, 1, -1},
		{3, 0, 2, 2},
	}
	flat := make([]float64, 0, 16)
	for _, r := range rows {
		flat = append(flat, r...)
	}
	want := mat.Det(mat.NewDense(4, 4, flat))

	got := MustRealSquare(t, rows).Det()
	assert.InDelta(t, want, got.Float(), 1e-9)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	a := MustRatSquare(t, [][]int64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}})
	inv, ok := a.Inverse()
	require.True(t, ok)
	id := a.Identity()

	left, err := a.Mul(inv)
	require.NoError(t, err)
	right, err := inv.Mul(a)
	require.NoError(t, err)
	assert.True(t, left.Equal(id.Matrix))
	assert.True(t, right.Equal(id.Matrix))
	assert.True(t, a.IsInvertible())

	_, ok = MustRatSquare(t, [][]int64{{1, 2}, {2, 4}}).Inverse()
	assert.False(t, ok)
	assert.False(t, MustRatSquare(t, [][]int64{{1, 2}, {2, 4}}).IsInvertible())
}

func TestInverse_RealAgainstGonum(t *testing.T) {
	t.Parallel()

	rows := [][]float64{{4, 7, 2}, {3, 6, 1}, {2, 5, 3}}
	a := MustRealSquare(t, rows)
	inv, ok := a.Inverse()
	require.True(t, ok)

	var want mat.Dense
	require.NoError(t, want.Inverse(mat.NewDense(3, 3, []float64{4, 7, 2, 3, 6, 1, 2, 5, 3})))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want.At(i, j), MustAt(t, inv.Matrix, i, j).Float(), 1e-9)
		}
	}
}

func TestInverse_ModP(t *testing.T) {
	t.Parallel()

	a, err := matrix.AsSquare(MustModP(t, 11, [][]int64{{3, 5, 1}, {2, 0, 7}, {1, 1, 1}}))
	require.NoError(t, err)
	inv, ok := a.Inverse()
	require.True(t, ok)
	p, err := a.Mul(inv)
	require.NoError(t, err)
	assert.True(t, p.Equal(a.Identity().Matrix))
}

func TestAdjugate(t *testing.T) {
	t.Parallel()

	a := MustRatSquare(t, [][]int64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}})
	adj := a.Adjugate()
	assert.True(t, adj.Equal(MustRat(t, [][]int64{{-24, 18, 5}, {20, -15, -4}, {-5, 4, 1}})))

	// A·adj(A) = det(A)·I
	prod, err := a.Mul(adj)
	require.NoError(t, err)
	assert.True(t, prod.Equal(a.Identity().Scale(a.Det())))

	one := MustRatSquare(t, [][]int64{{7}})
	assert.Equal(t, "[1]", one.Adjugate().String())
}

func TestMinor(t *testing.T) {
	t.Parallel()

	a := MustRatSquare(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	m, err := a.Minor(1, 1)
	require.NoError(t, err)
	assert.Equal(t, "[1 3]\n[7 9]", m.String())

	_, err = a.Minor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = MustRatSquare(t, [][]int64{{1}}).Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestPowerAndTrace(t *testing.T) {
	t.Parallel()

	fib := MustRatSquare(t, [][]int64{{1, 1}, {1, 0}})
	p, err := fib.Power(10)
	require.NoError(t, err)
	assert.Equal(t, "[89 55]\n[55 34]", p.String())

	p0, err := fib.Power(0)
	require.NoError(t, err)
	assert.True(t, p0.Equal(fib.Identity().Matrix))

	_, err = fib.Power(-1)
	require.ErrorIs(t, err, matrix.ErrNegativeExponent)

	assert.Equal(t, "1", fib.Trace().String())
}

func TestLU(t *testing.T) {
	t.Parallel()

	cases := [][][]int64{
		{{2, 1, 1}, {4, -6, 0}, {-2, 7, 2}},
		{{0, 1, 2}, {1, 0, 3}, {4, -3, 8}},
		{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}},
		{{0, 0}, {0, 1}},
	}
	for _, rows := range cases {
		a := MustRatSquare(t, rows)
		lu := a.LU()
		pa, err := lu.P.Mul(a)
		require.NoError(t, err)
		lxu, err := lu.L.Mul(lu.U)
		require.NoError(t, err)
		assert.True(t, pa.Equal(lxu.Matrix), "P·A = L·U for %v", rows)

		n := a.Size()
		for i := 0; i < n; i++ {
			assert.Equal(t, "1", MustAt(t, lu.L.Matrix, i, i).String())
			for j := i + 1; j < n; j++ {
				assert.Equal(t, "0", MustAt(t, lu.L.Matrix, i, j).String())
			}
			for j := 0; j < i; j++ {
				assert.Equal(t, "0", MustAt(t, lu.U.Matrix, i, j).String())
			}
		}
	}
}

func TestInBasis(t *testing.T) {
	t.Parallel()

	a := MustRatSquare(t, [][]int64{{2, 1}, {0, 3}})
	// Eigenvectors (1,0) and (1,1) diagonalise A.
	p := MustRatSquare(t, [][]int64{{1, 1}, {0, 1}})
	d, err := a.InBasis(p)
	require.NoError(t, err)
	assert.Equal(t, "[2 0]\n[0 3]", d.String())

	_, err = a.InBasis(MustRatSquare(t, [][]int64{{1, 1}, {1, 1}}))
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, err = a.InBasis(MustRatSquare(t, [][]int64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSquare_Mismatch(t *testing.T) {
	t.Parallel()

	a := MustRatSquare(t, [][]int64{{1, 2}, {3, 4}})
	b := MustRatSquare(t, [][]int64{{1}})
	_, err := a.Mul(b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AsSquare[field.Rat](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

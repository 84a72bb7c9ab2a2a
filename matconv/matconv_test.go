package matconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matconv"
	"github.com/katalvlaran/lvlalg/matrix"
)

func realSquare(t *testing.T, rows [][]float64) *matrix.Square[field.Real] {
	t.Helper()
	raw := make([][]field.Real, len(rows))
	for i, r := range rows {
		raw[i] = field.Reals(nil, r...)
	}
	s, err := matrix.NewSquare(raw)
	require.NoError(t, err)

	return s
}

func requireClose(t *testing.T, want [][]float64, got *matrix.Matrix[field.Real], tol float64) {
	t.Helper()
	for i, row := range want {
		for j, w := range row {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, w, v.Float(), tol, "(%d,%d)", i, j)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	a := realSquare(t, [][]float64{{1, 2}, {3, 4}})
	d, err := matconv.ToDense(a.Matrix)
	require.NoError(t, err)
	assert.Equal(t, 3.0, d.At(1, 0))
	assert.InDelta(t, -2.0, mat.Det(d), 1e-12)

	back, err := matconv.FromDense(d)
	require.NoError(t, err)
	assert.True(t, back.Equal(a.Matrix))

	_, err = matconv.ToDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matconv.FromDense(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestReconstruct_Diag941(t *testing.T) {
	t.Parallel()

	q := realSquare(t, [][]float64{
		{0, -0.8, -0.6},
		{0.8, -0.36, 0.48},
		{0.6, 0.48, -0.64},
	})
	a, err := matconv.Reconstruct([]float64{9, 4, 1}, q)
	require.NoError(t, err)
	requireClose(t, [][]float64{
		{2.92, 0.864, -1.152},
		{0.864, 6.5088, 3.3216},
		{-1.152, 3.3216, 4.5712},
	}, a.Matrix, 1e-9)
	assert.True(t, a.Equal(a.T()))
	assert.InDelta(t, 14.0, a.Trace().Float(), 1e-9)
	assert.InDelta(t, 36.0, a.Det().Float(), 1e-9)

	_, err = matconv.Reconstruct([]float64{1}, q)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestEigenSym(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{2.92, 0.864, -1.152},
		{0.864, 6.5088, 3.3216},
		{-1.152, 3.3216, 4.5712},
	}
	a := realSquare(t, rows)
	e, err := matconv.EigenSym(a)
	require.NoError(t, err)
	require.Len(t, e.Values, 3)
	assert.InDelta(t, 1.0, e.Values[0], 1e-9)
	assert.InDelta(t, 4.0, e.Values[1], 1e-9)
	assert.InDelta(t, 9.0, e.Values[2], 1e-9)

	back, err := matconv.Reconstruct(e.Values, e.Q)
	require.NoError(t, err)
	requireClose(t, rows, back.Matrix, 1e-9)

	// Qᵀ·Q = I
	qtq, err := matrix.Mul(e.Q.T(), e.Q.Matrix)
	require.NoError(t, err)
	requireClose(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, qtq, 1e-9)

	_, err = matconv.EigenSym(realSquare(t, [][]float64{{1, 2}, {0, 1}}))
	require.ErrorIs(t, err, matconv.ErrNotSymmetric)
}

package problem_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/internal/problem"
)

func section(t *testing.T, rep *problem.Report, op string) problem.Section {
	t.Helper()
	s, ok := rep.Section(op)
	require.True(t, ok, "missing section %s", op)

	return s
}

func TestEvaluate_NilpotentDemo(t *testing.T) {
	t.Parallel()

	rep, err := problem.Evaluate(mustParse(t, demo))
	require.NoError(t, err)
	assert.Equal(t, "demo", rep.Name)
	assert.Equal(t, 3, rep.Rows)
	assert.Equal(t, 3, rep.Cols)

	assert.Equal(t, "1", section(t, rep, problem.OpRank).Value)
	assert.Equal(t, "0", section(t, rep, problem.OpDet).Value)
	assert.Equal(t, "singular", section(t, rep, problem.OpInverse).Note)

	ns := section(t, rep, problem.OpNullSpace)
	assert.Equal(t, "dim 2", ns.Value)
	require.Len(t, ns.Matrix, 3)
	assert.Len(t, ns.Matrix[0], 2)

	assert.Equal(t, "skipped: no rhs", section(t, rep, problem.OpSolve).Note)

	j := section(t, rep, problem.OpJordan)
	assert.Equal(t, "chains [2 1], index 2", j.Value)
	assert.Equal(t, [][]string{{"0", "1", "0"}, {"0", "0", "0"}, {"0", "0", "0"}}, j.Matrix)
	assert.Len(t, section(t, rep, problem.OpJordanBasis).Matrix, 3)
}

func TestEvaluate_System(t *testing.T) {
	t.Parallel()

	p := mustParse(t, system)

	rep, err := problem.Evaluate(p, problem.OpDet, problem.OpInverse, problem.OpSolve, problem.OpNullSpace)
	require.NoError(t, err)
	require.Len(t, rep.Sections, 4)
	assert.Equal(t, "5", section(t, rep, problem.OpDet).Value)
	assert.Equal(t, [][]string{{"3/5", "-1/5"}, {"-1/5", "2/5"}}, section(t, rep, problem.OpInverse).Matrix)
	assert.Equal(t, [][]string{{"4/5"}, {"7/5"}}, section(t, rep, problem.OpSolve).Matrix)
	ns := section(t, rep, problem.OpNullSpace)
	assert.Equal(t, "dim 0", ns.Value)
	assert.Nil(t, ns.Matrix)

	rep, err = problem.Evaluate(p)
	require.NoError(t, err)
	assert.Equal(t, "skipped: not nilpotent", section(t, rep, problem.OpJordan).Note)

	_, err = problem.Evaluate(p, problem.OpJordan)
	require.ErrorIs(t, err, problem.ErrNotApplicable)
}

func TestEvaluate_Inconsistent(t *testing.T) {
	t.Parallel()

	p := mustParse(t, "matrix: [[1, 1], [1, 1]]\nrhs: [1, 2]\n")
	rep, err := problem.Evaluate(p, problem.OpSolve)
	require.NoError(t, err)
	assert.Equal(t, "no solution", section(t, rep, problem.OpSolve).Note)
}

func TestEvaluate_FileOps(t *testing.T) {
	t.Parallel()

	p := mustParse(t, "matrix: [[1, 2, 3], [2, 4, 6]]\nops: [rank, det]\n")
	rep, err := problem.Evaluate(p)
	require.NoError(t, err)
	require.Len(t, rep.Sections, 2)
	assert.Equal(t, "1", rep.Sections[0].Value)
	assert.Equal(t, "skipped: matrix is 2x3, not square", rep.Sections[1].Note)

	_, err = problem.Evaluate(p, problem.OpDet)
	require.ErrorIs(t, err, problem.ErrNotApplicable)

	_, err = problem.Evaluate(p, "trace")
	require.ErrorIs(t, err, problem.ErrUnknownOp)
}

func TestEvaluate_Fields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		doc   string
		op    string
		label string
		value string
		cells [][]string
	}{
		{"GF2", "field: gf2\nmatrix: [[1, 1], [1, 1]]\n", problem.OpDet, "gf2", "0", nil},
		{"ModP", "field: modp\nmodulus: 7\nmatrix: [[3]]\n", problem.OpInverse, "GF(7)", "", [][]string{{"5"}}},
		{"Real", "field: real\nmatrix: [[2, 0], [0, 4]]\n", problem.OpDet, "real (eps 1e-09)", "8", nil},
		{"Complex", "field: complex\nmatrix: [['1+1i']]\n", problem.OpRank, "complex (eps 1e-09)", "1", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rep, err := problem.Evaluate(mustParse(t, tc.doc), tc.op)
			require.NoError(t, err)
			assert.Equal(t, tc.label, rep.Field)
			s := section(t, rep, tc.op)
			assert.Equal(t, tc.value, s.Value)
			assert.Equal(t, tc.cells, s.Matrix)
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	_, err := problem.Evaluate(mustParse(t, "field: modp\nmodulus: 8\nmatrix: [[1]]\n"))
	require.ErrorIs(t, err, field.ErrModulusNotPrime)

	_, err = problem.Evaluate(mustParse(t, "matrix: [[1, x]]\n"))
	require.ErrorIs(t, err, field.ErrParse)

	_, err = problem.Evaluate(mustParse(t, "matrix: [[1]]\nrhs: [y]\n"))
	require.ErrorIs(t, err, field.ErrParse)

	_, err = problem.Evaluate(mustParse(t, "matrix: [[1, 2], [3]]\n"))
	require.Error(t, err)

	rep, err := problem.Evaluate(mustParse(t, "matrix: [[1, 2], [3, 4]]\nrhs: [1]\n"))
	require.NoError(t, err)
	assert.Contains(t, section(t, rep, problem.OpSolve).Note, "rhs has 1 entries")
}

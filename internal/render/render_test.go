package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/internal/problem"
	"github.com/katalvlaran/lvlalg/internal/render"
)

func sample() *problem.Report {
	return &problem.Report{
		Name:  "demo",
		Field: "rational",
		Rows:  2,
		Cols:  2,
		Sections: []problem.Section{
			{Op: problem.OpRank, Value: "2"},
			{Op: problem.OpInverse, Matrix: [][]string{{"1", "-1/2"}, {"10", "3"}}},
			{Op: problem.OpJordan, Note: "skipped: not nilpotent"},
		},
	}
}

func TestMatrix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[ 1 -1/2]\n[10    3]", render.Matrix([][]string{{"1", "-1/2"}, {"10", "3"}}))
	assert.Equal(t, "[x]", render.Matrix([][]string{{"x"}}))
	assert.Empty(t, render.Matrix(nil))
}

func TestReport_Plain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, sample(), render.FormatPlain))
	assert.Equal(t, `== demo: 2x2 over rational ==
rank: 2
inverse:
[ 1 -1/2]
[10    3]
jordan: skipped: not nilpotent
`, buf.String())
}

func TestReport_Table(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, sample(), render.FormatTable))
	out := buf.String()
	assert.Contains(t, out, "demo: 2x2 over rational")
	assert.Contains(t, out, "rank")
	assert.Contains(t, out, "[ 1 -1/2]")
	assert.Contains(t, out, "[10    3]")
	assert.Contains(t, out, "skipped: not nilpotent")
	assert.Contains(t, out, "┌")
}

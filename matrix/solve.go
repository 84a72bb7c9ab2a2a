// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlalg/field"

// Solve finds one x with a·x = b.
//
// Implementation:
//   - Stage 1: Validate a non-nil and len(b) == a.Rows().
//   - Stage 2: Reduce a clone of a to canonical form, recording the row ops.
//   - Stage 3: Replay the transcript on a clone of b.
//   - Stage 4: Rows past the rank must have a zero right-hand side, otherwise
//     the system is inconsistent (ok = false). Free variables are Zero();
//     each pivot column takes the transformed b entry of its row.
//
// Returns:
//   - x, true, nil   when the system is consistent (len(x) == a.Cols()).
//   - nil, false, nil when it has no solution; this is not an error.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Solve").
// Complexity: O(r·c·min(r,c)).
func Solve[F field.Field[F]](a *Matrix[F], b Column[F]) (Column[F], bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, false, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, false, matrixErrorf(opSolve, err)
	}
	x, ok := solve(a, b)

	return x, ok, nil
}

// solve assumes validated shapes.
func solve[F field.Field[F]](a *Matrix[F], b Column[F]) (Column[F], bool) {
	w := a.Clone()
	rec := &transcript[F]{}
	pivots := gaussJordan(w, rec)
	rhs := b.Clone()
	rec.replay(rhs)
	for i := len(pivots); i < a.r; i++ {
		if !field.IsZero(rhs[i]) {
			return nil, false
		}
	}
	x := ZeroColumn(a.c, a.data[0])
	for row, col := range pivots {
		x[col] = rhs[row]
	}

	return x, true
}

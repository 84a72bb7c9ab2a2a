// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlalg/field"

// rowTarget is anything elementary row operations can be replayed on.
// *Matrix and Column implement it; both update in place.
type rowTarget[F field.Field[F]] interface {
	swapRows(i, j int)
	scaleRow(i int, k F)
	addRowMultiple(dst, src int, k F)
}

type rowOpKind uint8

const (
	rowSwap   rowOpKind = iota // swap rows i and j
	rowScale                   // row i *= k
	rowAddMul                  // row i += k · row j
)

// rowOp is one elementary row operation.
type rowOp[F field.Field[F]] struct {
	kind rowOpKind
	i, j int
	k    F
}

// transcript records the row operations an elimination performed, in order,
// so they can be replayed on a second structure (a right-hand side for
// Solve, the identity for Inverse). A nil *transcript records nothing.
type transcript[F field.Field[F]] struct {
	ops []rowOp[F]
}

func (t *transcript[F]) swap(i, j int) {
	if t != nil {
		t.ops = append(t.ops, rowOp[F]{kind: rowSwap, i: i, j: j})
	}
}

func (t *transcript[F]) scale(i int, k F) {
	if t != nil {
		t.ops = append(t.ops, rowOp[F]{kind: rowScale, i: i, k: k})
	}
}

func (t *transcript[F]) addMul(dst, src int, k F) {
	if t != nil {
		t.ops = append(t.ops, rowOp[F]{kind: rowAddMul, i: dst, j: src, k: k})
	}
}

// replay applies every recorded operation to dst in order.
func (t *transcript[F]) replay(dst rowTarget[F]) {
	for _, op := range t.ops {
		switch op.kind {
		case rowSwap:
			dst.swapRows(op.i, op.j)
		case rowScale:
			dst.scaleRow(op.i, op.k)
		case rowAddMul:
			dst.addRowMultiple(op.i, op.j, op.k)
		}
	}
}

// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/lvlalg/field"
)

const panicColumnLen = "matrix: Column: length mismatch"

// Column is a coordinate column vector. It satisfies Vector[Column[F], F]
// relative to the standard basis. Operations never mutate the receiver.
type Column[F field.Field[F]] []F

// NewColumn copies entries into a fresh Column.
func NewColumn[F field.Field[F]](entries ...F) Column[F] {
	out := make(Column[F], len(entries))
	copy(out, entries)

	return out
}

// ZeroColumn returns a column of n additive identities taken from sample.
func ZeroColumn[F field.Field[F]](n int, sample F) Column[F] {
	z := sample.Zero()
	out := make(Column[F], n)
	for i := range out {
		out[i] = z
	}

	return out
}

// Len returns the number of entries.
func (c Column[F]) Len() int { return len(c) }

// Clone returns an independent copy.
func (c Column[F]) Clone() Column[F] { return NewColumn(c...) }

// Add returns c + o. Panics when lengths differ.
func (c Column[F]) Add(o Column[F]) Column[F] {
	if len(c) != len(o) {
		panic(panicColumnLen)
	}
	out := make(Column[F], len(c))
	for i := range c {
		out[i] = c[i].Add(o[i])
	}

	return out
}

// Scale returns k·c.
func (c Column[F]) Scale(k F) Column[F] {
	out := make(Column[F], len(c))
	for i := range c {
		out[i] = c[i].Mul(k)
	}

	return out
}

// Neg returns −c.
func (c Column[F]) Neg() Column[F] {
	out := make(Column[F], len(c))
	for i := range c {
		out[i] = c[i].Neg()
	}

	return out
}

// Zero returns the zero column of the same length.
// The zero of an empty column is empty.
func (c Column[F]) Zero() Column[F] {
	if len(c) == 0 {
		return Column[F]{}
	}

	return ZeroColumn(len(c), c[0])
}

// Coordinates returns a copy of c; columns are their own coordinates.
func (c Column[F]) Coordinates() Column[F] { return c.Clone() }

// Dot returns Σ c[i]·o[i]. Panics when lengths differ or c is empty.
func (c Column[F]) Dot(o Column[F]) F {
	if len(c) != len(o) || len(c) == 0 {
		panic(panicColumnLen)
	}
	acc := c[0].Mul(o[0])
	for i := 1; i < len(c); i++ {
		acc = acc.Add(c[i].Mul(o[i]))
	}

	return acc
}

// IsZero reports whether every entry is the additive identity.
func (c Column[F]) IsZero() bool {
	for _, v := range c {
		if !field.IsZero(v) {
			return false
		}
	}

	return true
}

// Equal reports entry-wise field equality; columns of different length differ.
func (c Column[F]) Equal(o Column[F]) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if !c[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// String formats the column as "(a, b, c)".
func (c Column[F]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(')')

	return b.String()
}

// Row-operation targets; see transcript.go. Columns are updated in place.

func (c Column[F]) swapRows(i, j int) { c[i], c[j] = c[j], c[i] }

func (c Column[F]) scaleRow(i int, k F) { c[i] = c[i].Mul(k) }

func (c Column[F]) addRowMultiple(dst, src int, k F) { c[dst] = c[dst].Add(c[src].Mul(k)) }

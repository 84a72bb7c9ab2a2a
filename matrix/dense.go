// SPDX-License-Identifier: MIT

// Package matrix: Matrix is the concrete row-major grid over a field,
// storing elements in a flat slice.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlalg/field"
)

const panicShape = "matrix: Matrix: shape mismatch"

// matrixAtErrorf wraps an underlying error with Matrix method context.
func matrixAtErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an r×c grid of field values, r, c > 0, in row-major order.
// A Matrix is immutable through its public API; every operation returns a
// fresh value. It satisfies Vector[*Matrix[F], F] with row-major coordinates.
type Matrix[F field.Field[F]] struct {
	r, c int // number of rows and columns
	data []F // flat backing storage, length == r*c
}

// New builds a Matrix from rows (copied).
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrRaggedRows when rows differ in length.
//
// Complexity: O(r*c).
func New[F field.Field[F]](rows [][]F) (*Matrix[F], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("New", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	data := make([]F, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(fmt.Sprintf("New: row %d", i), ErrRaggedRows)
		}
		data = append(data, row...)
	}

	return &Matrix[F]{r: r, c: c, data: data}, nil
}

// NewZeros returns an r×c matrix of additive identities of sample's field.
func NewZeros[F field.Field[F]](r, c int, sample F) (*Matrix[F], error) {
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf("NewZeros", ErrInvalidDimensions)
	}

	return zeros(r, c, sample.Zero()), nil
}

// NewIdentity returns the n×n identity over sample's field.
func NewIdentity[F field.Field[F]](n int, sample F) (*Square[F], error) {
	if n <= 0 {
		return nil, matrixErrorf("NewIdentity", ErrInvalidDimensions)
	}

	return &Square[F]{Matrix: identity(n, sample)}, nil
}

// Diag returns the square matrix with entries on its main diagonal.
func Diag[F field.Field[F]](entries ...F) (*Square[F], error) {
	if len(entries) == 0 {
		return nil, matrixErrorf("Diag", ErrInvalidDimensions)
	}
	n := len(entries)
	m := zeros(n, n, entries[0].Zero())
	for i, e := range entries {
		m.data[i*n+i] = e
	}

	return &Square[F]{Matrix: m}, nil
}

// FromColumns assembles a matrix whose j-th column is cols[j].
//
// Errors: ErrInvalidDimensions for no columns or empty columns,
// ErrDimensionMismatch when columns differ in length.
func FromColumns[F field.Field[F]](cols ...Column[F]) (*Matrix[F], error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf("FromColumns", ErrInvalidDimensions)
	}
	r, c := len(cols[0]), len(cols)
	m := &Matrix[F]{r: r, c: c, data: make([]F, r*c)}
	for j, col := range cols {
		if len(col) != r {
			return nil, matrixErrorf(fmt.Sprintf("FromColumns: column %d", j), ErrDimensionMismatch)
		}
		for i, v := range col {
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// FromRows assembles a matrix whose i-th row is rows[i].
func FromRows[F field.Field[F]](rows ...Column[F]) (*Matrix[F], error) {
	raw := make([][]F, len(rows))
	for i, r := range rows {
		raw[i] = r
	}

	return New(raw)
}

func zeros[F field.Field[F]](r, c int, z F) *Matrix[F] {
	data := make([]F, r*c)
	for i := range data {
		data[i] = z
	}

	return &Matrix[F]{r: r, c: c, data: data}
}

func identity[F field.Field[F]](n int, sample F) *Matrix[F] {
	m := zeros(n, n, sample.Zero())
	one := sample.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m
}

// Rows returns the number of rows.
func (m *Matrix[F]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[F]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix[F]) Shape() (int, int) { return m.r, m.c }

// IsSquare reports rows == cols.
func (m *Matrix[F]) IsSquare() bool { return m.r == m.c }

// At retrieves the element at (row, col) or ErrOutOfRange.
func (m *Matrix[F]) At(row, col int) (F, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero F

		return zero, matrixAtErrorf("At", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// at is the unchecked accessor used by kernels.
func (m *Matrix[F]) at(i, j int) F { return m.data[i*m.c+j] }

func (m *Matrix[F]) set(i, j int, v F) { m.data[i*m.c+j] = v }

// Row returns a copy of row i.
func (m *Matrix[F]) Row(i int) (Column[F], error) {
	if i < 0 || i >= m.r {
		return nil, matrixAtErrorf("Row", i, 0, ErrOutOfRange)
	}

	return m.row(i), nil
}

func (m *Matrix[F]) row(i int) Column[F] {
	return NewColumn(m.data[i*m.c : (i+1)*m.c]...)
}

// Col returns a copy of column j.
func (m *Matrix[F]) Col(j int) (Column[F], error) {
	if j < 0 || j >= m.c {
		return nil, matrixAtErrorf("Col", 0, j, ErrOutOfRange)
	}

	return m.col(j), nil
}

func (m *Matrix[F]) col(j int) Column[F] {
	out := make(Column[F], m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Columns returns copies of all columns in order.
func (m *Matrix[F]) Columns() []Column[F] {
	out := make([]Column[F], m.c)
	for j := range out {
		out[j] = m.col(j)
	}

	return out
}

// Clone returns a deep copy.
func (m *Matrix[F]) Clone() *Matrix[F] {
	data := make([]F, len(m.data))
	copy(data, m.data)

	return &Matrix[F]{r: m.r, c: m.c, data: data}
}

// Equal reports same shape and entry-wise field equality.
func (m *Matrix[F]) Equal(o *Matrix[F]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// IsZero reports whether every entry is the additive identity.
func (m *Matrix[F]) IsZero() bool { return Column[F](m.data).IsZero() }

// String renders one bracketed row per line: "[1 2]\n[3 4]".
func (m *Matrix[F]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteByte(']')
	}

	return b.String()
}

// Vector capability. These methods cannot report errors and panic on
// mismatched shapes; use the package-level Add/Sub for checked arithmetic.

// Add returns m + o. Panics when shapes differ.
func (m *Matrix[F]) Add(o *Matrix[F]) *Matrix[F] {
	if m.r != o.r || m.c != o.c {
		panic(panicShape)
	}

	return m.addUnchecked(o)
}

// Scale returns k·m.
func (m *Matrix[F]) Scale(k F) *Matrix[F] {
	data := make([]F, len(m.data))
	for i, v := range m.data {
		data[i] = v.Mul(k)
	}

	return &Matrix[F]{r: m.r, c: m.c, data: data}
}

// Neg returns −m.
func (m *Matrix[F]) Neg() *Matrix[F] {
	data := make([]F, len(m.data))
	for i, v := range m.data {
		data[i] = v.Neg()
	}

	return &Matrix[F]{r: m.r, c: m.c, data: data}
}

// Zero returns the zero matrix of the same shape.
func (m *Matrix[F]) Zero() *Matrix[F] { return zeros(m.r, m.c, m.data[0].Zero()) }

// Coordinates returns the entries in row-major order.
func (m *Matrix[F]) Coordinates() Column[F] { return NewColumn(m.data...) }

// FromCoordinates is the inverse of Coordinates for an r×c shape.
func FromCoordinates[F field.Field[F]](r, c int, coords Column[F]) (*Matrix[F], error) {
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf("FromCoordinates", ErrInvalidDimensions)
	}
	if len(coords) != r*c {
		return nil, matrixErrorf("FromCoordinates", ErrDimensionMismatch)
	}

	return &Matrix[F]{r: r, c: c, data: NewColumn(coords...)}, nil
}

func (m *Matrix[F]) addUnchecked(o *Matrix[F]) *Matrix[F] {
	data := make([]F, len(m.data))
	for i := range m.data {
		data[i] = m.data[i].Add(o.data[i])
	}

	return &Matrix[F]{r: m.r, c: m.c, data: data}
}

// Row-operation targets; see transcript.go. These mutate m and are only
// applied to private working copies.

func (m *Matrix[F]) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

func (m *Matrix[F]) scaleRow(i int, k F) {
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		row[j] = row[j].Mul(k)
	}
}

func (m *Matrix[F]) addRowMultiple(dst, src int, k F) {
	d := m.data[dst*m.c : (dst+1)*m.c]
	s := m.data[src*m.c : (src+1)*m.c]
	for j := range d {
		d[j] = d[j].Add(s[j].Mul(k))
	}
}

// Package matconv bridges lvlalg matrices over field.Real and gonum's
// float64 matrices. It lets real-valued results of the generic engine be
// handed to gonum (and back) and exposes gonum's symmetric eigensolver,
// which the field-generic engine cannot provide.
package matconv

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

// ToDense copies m into a new *mat.Dense.
func ToDense(m *matrix.Matrix[field.Real]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("matconv.ToDense: %w", err)
	}
	r, c := m.Shape()
	data := make([]float64, 0, r*c)
	for _, v := range m.Coordinates() {
		data = append(data, v.Float())
	}

	return mat.NewDense(r, c, data), nil
}

// FromDense copies any gonum matrix into a Real matrix whose entries carry
// the tolerance resolved from opts.
func FromDense(d mat.Matrix, opts ...field.Option) (*matrix.Matrix[field.Real], error) {
	if d == nil {
		return nil, fmt.Errorf("matconv.FromDense: %w", matrix.ErrNilMatrix)
	}
	r, c := d.Dims()
	rows := make([][]field.Real, r)
	for i := range rows {
		row := make([]float64, c)
		for j := range row {
			row[j] = d.At(i, j)
		}
		rows[i] = field.Reals(opts, row...)
	}

	return matrix.New(rows)
}

// Eigen is a symmetric eigendecomposition A = Q·diag(Values)·Qᵀ with
// orthonormal eigenvectors in the columns of Q. Values are ascending.
type Eigen struct {
	Values []float64
	Q      *matrix.Square[field.Real]
}

// EigenSym factorises a symmetric Real matrix with gonum's mat.EigenSym.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotSymmetric, ErrEigenFailed.
func EigenSym(a *matrix.Square[field.Real]) (*Eigen, error) {
	if a == nil || a.Matrix == nil {
		return nil, fmt.Errorf("matconv.EigenSym: %w", matrix.ErrNilMatrix)
	}
	if !a.Equal(a.T()) {
		return nil, fmt.Errorf("matconv.EigenSym: %w", ErrNotSymmetric)
	}
	n := a.Size()
	data := make([]float64, 0, n*n)
	for _, v := range a.Coordinates() {
		data = append(data, v.Float())
	}
	eps, _ := a.At(0, 0)

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), true); !ok {
		return nil, fmt.Errorf("matconv.EigenSym: %w", ErrEigenFailed)
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	qm, err := FromDense(&vecs, field.WithEpsilon(eps.Epsilon()))
	if err != nil {
		return nil, fmt.Errorf("matconv.EigenSym: %w", err)
	}
	q, err := matrix.AsSquare(qm)
	if err != nil {
		return nil, fmt.Errorf("matconv.EigenSym: %w", err)
	}

	return &Eigen{Values: es.Values(nil), Q: q}, nil
}

// Reconstruct returns Q·diag(values)·Qᵀ computed with the generic engine.
//
// Errors: matrix.ErrDimensionMismatch when len(values) != Q's size.
func Reconstruct(values []float64, q *matrix.Square[field.Real]) (*matrix.Square[field.Real], error) {
	if q == nil || q.Matrix == nil {
		return nil, fmt.Errorf("matconv.Reconstruct: %w", matrix.ErrNilMatrix)
	}
	if len(values) != q.Size() {
		return nil, fmt.Errorf("matconv.Reconstruct: %w", matrix.ErrDimensionMismatch)
	}
	sample, _ := q.At(0, 0)
	d := make([]field.Real, len(values))
	for i, v := range values {
		d[i] = field.NewReal(v, field.WithEpsilon(sample.Epsilon()))
	}
	dm, err := matrix.Diag(d...)
	if err != nil {
		return nil, fmt.Errorf("matconv.Reconstruct: %w", err)
	}
	qd, err := matrix.Mul(q.Matrix, dm.Matrix)
	if err != nil {
		return nil, fmt.Errorf("matconv.Reconstruct: %w", err)
	}
	out, err := matrix.Mul(qd, q.T())
	if err != nil {
		return nil, fmt.Errorf("matconv.Reconstruct: %w", err)
	}

	return matrix.AsSquare(out)
}

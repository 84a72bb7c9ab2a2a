// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and kernels return these sentinels (wrapped with an
// operation tag via matrixErrorf); tests match them with errors.Is.
// Panics are reserved for the Vector-capability methods, which cannot
// return errors, when they receive operands of mismatched shape.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRaggedRows indicates that the rows passed to New have different lengths.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add with different shapes, Mul where a.Cols != b.Rows, or a
	// right-hand side whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned where an invertible matrix is a precondition
	// (InBasis with a non-basis change matrix).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNegativeExponent is returned by Square.Power for exp < 0.
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrEmptySpace indicates an operation that needs at least one basis vector.
	ErrEmptySpace = errors.New("matrix: vector space has no basis vectors")

	// ErrNotSpanning indicates that a spanning basis was required (TransitionMatrix).
	ErrNotSpanning = errors.New("matrix: basis does not span the ambient space")

	// ErrDegenerate indicates that Gram–Schmidt met a non-zero vector with
	// zero inner product against itself.
	ErrDegenerate = errors.New("matrix: degenerate inner product")

	// ErrNoSquareRoot indicates that Orthonormalize needed a square root the
	// field does not have.
	ErrNoSquareRoot = errors.New("matrix: no square root in the field")
)

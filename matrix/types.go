// SPDX-License-Identifier: MIT

// Package matrix: the Vector capability contract.
// Anything that behaves as an element of a finite-dimensional vector space
// over F implements Vector[V, F] with V its own concrete type.

package matrix

import "github.com/katalvlaran/lvlalg/field"

// Vector is the capability set the engine requires of a vector type V over F.
// The engine never inspects a vector except through these methods.
//
// Contract:
//   - Add, Scale and Neg return fresh values; receivers are not mutated.
//   - Zero returns the additive identity of the receiver's space (same shape).
//   - Coordinates returns the coordinate column relative to the type's fixed
//     reference ordering (standard basis for columns, row-major for matrices,
//     ascending powers for polynomials). Its length is the ambient dimension.
//   - Add on operands of different shape panics.
type Vector[V any, F field.Field[F]] interface {
	Add(other V) V
	Scale(k F) V
	Neg() V
	Zero() V
	Coordinates() Column[F]
}

// IsZeroVector reports whether every coordinate of v is the additive identity.
func IsZeroVector[V Vector[V, F], F field.Field[F]](v V) bool {
	return v.Coordinates().IsZero()
}

// SubVectors returns a − b through the Vector contract.
func SubVectors[V Vector[V, F], F field.Field[F]](a, b V) V {
	return a.Add(b.Neg())
}

// EqualVectors compares two vectors coordinate-wise.
func EqualVectors[V Vector[V, F], F field.Field[F]](a, b V) bool {
	return a.Coordinates().Equal(b.Coordinates())
}

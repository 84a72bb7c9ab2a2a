// SPDX-License-Identifier: MIT

// Package matrix is the generic linear-algebra engine of lvlalg: matrices over
// any field.Field, the Gaussian-elimination family built on them, and the
// vector-space (basis) abstraction that the elimination results are expressed in.
//
// What
//
//   - Matrix[F]: an immutable r×c grid (r, c > 0) in row-major storage.
//   - Square[F]: the square refinement unlocking Det, Inverse, Power, Trace, LU.
//   - Column[F]: the coordinate column, itself a Vector.
//   - Vector[V, F]: the capability contract every vector type satisfies
//     (Column, *Matrix, poly.Polynomial, transform.Transform, Coset).
//   - Space[V, F]: an ordered basis of linearly independent vectors of a fixed
//     ambient dimension, with membership, coordinates, sum and intersection.
//
// Engine
//
//   - EchelonForm / CanonicalForm: row-echelon and reduced row-echelon form by
//     first-non-zero pivoting (no magnitude pivoting; the field decides equality).
//   - Rank, Pivots, NullSpace, ColumnSpace, RowSpace.
//   - Solve: Ax = b with an explicit "no solution" outcome.
//   - Square.Det (Bareiss), Minor, Adjugate, Inverse, LU, Power, InBasis.
//
// Every elimination records its row operations (swap, scale, add-multiple) in
// a transcript that can be replayed on a second structure. Solve replays it on
// the right-hand side and Inverse replays it on the identity.
//
// Errors
//
//	Structural faults (non-positive shape, ragged rows, mismatched operands,
//	non-square input, out-of-range index) are returned as wrapped sentinels from
//	errors.go. Expected negative outcomes are not errors: Solve, Coordinates and
//	Inverse report them through an ok flag. Methods that implement Vector cannot
//	return an error and panic on mismatched shapes (programmer error).
//
// Determinism
//
//	All algorithms are single-threaded and deterministic; inputs are never
//	mutated; every result is freshly allocated.
package matrix

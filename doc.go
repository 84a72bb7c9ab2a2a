// Package lvlalg is a linear-algebra toolkit that works over any field:
// matrices, vector spaces, linear transforms and Jordan forms, written once
// and instantiated for reals, complex numbers, rationals, GF(2) or GF(p).
//
// 🚀 What is lvlalg?
//
//	A generic, exact-where-possible library that brings together:
//		• Fields: Real and Complex with tolerance, Rat, GF2, ModP
//		• Matrix engine: echelon forms, rank, solve, determinant, inverse, LU
//		• Vector spaces: span, membership, coordinates, sum, intersection, quotients
//		• Linear transforms: kernel, image, inverse, composition, matrix in any bases
//		• Jordan form of nilpotent operators, with the chain basis
//		• Polynomials as vectors, differentiation as a nilpotent operator
//		• gonum bridge for float64 matrices and symmetric eigendecomposition
//
// ✨ Why choose lvlalg?
//
//   - One algorithm, every field: elimination never assumes float64
//   - Exact answers over Rat, GF2 and ModP; tolerance-aware over Real and Complex
//   - Anything with Add, Scale, Neg, Zero and Coordinates is a vector:
//     columns, matrices, polynomials, cosets and transforms all live in spaces
//   - Pure Go core; gonum only in matconv
//
// Packages:
//
//	field/      — the Field contract and the concrete scalar fields
//	matrix/     — Matrix, Square, Column, Space, Quotient/Coset, elimination
//	transform/  — linear maps between spaces, quotient maps
//	jordan/     — nilpotent Jordan basis and form
//	poly/       — bounded-degree polynomials
//	matconv/    — conversion to and from gonum mat.Dense, EigenSym
//	cmd/lvlalg/ — CLI evaluating YAML problem files (see examples/)
//
// Quick example:
//
//	A := [[4 -8 4] [1 -2 1] [-2 4 -2]] over ℚ
//	A² = 0, rank 1, Jordan chains [2 1], J = [[0 1 0] [0 0 0] [0 0 0]]
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg

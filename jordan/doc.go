// Package jordan builds Jordan bases for nilpotent operators.
//
// For a nilpotent T with index l (Tˡ = 0, Tˡ⁻¹ ≠ 0) the kernels
//
//	{0} = ker T⁰ ⊂ ker T¹ ⊂ … ⊂ ker Tˡ = V
//
// grow strictly. The builder walks the levels from l down to 1 and, at each
// level, starts a new chain T^(i−1)v, …, Tv, v for every vector v of ker Tⁱ that
// is missing from the span of ker Tⁱ⁻¹ and the chains already collected. In the
// resulting basis T is block diagonal with nilpotent Jordan blocks: ones on
// the superdiagonal inside each chain, zeros elsewhere.
//
// Nilpotent works on square matrices over any field; NilpotentTransform works
// on any endomorphism whose vectors satisfy matrix.Vector.
package jordan

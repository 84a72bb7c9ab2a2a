// SPDX-License-Identifier: MIT

// Package field defines the scalar capability every other package in lvlalg is
// generic over, together with the concrete fields shipped with the module.
//
// What
//
//   - Field[F]: the self-referential constraint (Add, Mul, Neg, Inv, Zero, One,
//     Equal, String) that matrix, transform, jordan and poly are parameterised by.
//   - Real    — float64 with tolerance-based equality (see WithEpsilon).
//   - Complex — complex128 with the same tolerance policy.
//   - GF2     — the two-element boolean field (XOR addition, AND multiplication).
//   - ModP    — integers modulo a prime, created through a Modulus.
//   - Rat     — exact rationals backed by math/big.
//
// Contract
//
//   - Values are immutable; every operation returns a fresh value.
//   - Zero() and One() are called on a value because some fields carry
//     per-value context (a modulus, a tolerance) that a bare type cannot.
//   - Inv is only ever invoked by the engine on values that are not Zero();
//     calling it on zero is undefined and the concrete fields return a
//     documented but meaningless value instead of panicking.
//   - Mixing values from different moduli or tolerance policies is undefined.
//
// Determinism
//
//	All fields are pure value types; no global state is consulted after
//	construction, so every algorithm built on them is reproducible.
package field

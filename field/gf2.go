// SPDX-License-Identifier: MIT

package field

// GF2 is the two-element field {0, 1}: addition is XOR, multiplication is AND.
// Every non-zero element is its own inverse.
type GF2 bool

// Add returns g XOR o.
func (g GF2) Add(o GF2) GF2 { return g != o }

// Mul returns g AND o.
func (g GF2) Mul(o GF2) GF2 { return g && o }

// Neg returns g; in characteristic 2 every element is its own negative.
func (g GF2) Neg() GF2 { return g }

// Inv returns g; the only invertible element is 1 = 1⁻¹.
func (g GF2) Inv() GF2 { return g }

// Zero returns 0 (false).
func (GF2) Zero() GF2 { return false }

// One returns 1 (true).
func (GF2) One() GF2 { return true }

// Equal reports g == o.
func (g GF2) Equal(o GF2) bool { return g == o }

// String returns "1" or "0".
func (g GF2) String() string {
	if g {
		return "1"
	}

	return "0"
}

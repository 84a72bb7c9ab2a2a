// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// Parsers and constructors return these sentinels (wrapped with context);
// tests match them with errors.Is.

package field

import "errors"

var (
	// ErrModulusNotPrime is returned by NewModulus when p is not prime.
	ErrModulusNotPrime = errors.New("field: modulus is not prime")

	// ErrParse indicates that a textual scalar could not be parsed for the target field.
	ErrParse = errors.New("field: cannot parse scalar")
)

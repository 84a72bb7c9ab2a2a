// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseReal parses a float64 literal into a Real with the given options.
func ParseReal(s string, opts ...Option) (Real, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Real{}, fmt.Errorf("ParseReal(%q): %w", s, ErrParse)
	}

	return NewReal(v, opts...), nil
}

// ParseComplex parses literals accepted by strconv.ParseComplex ("1+2i", "3i", "(4-1i)").
func ParseComplex(s string, opts ...Option) (Complex, error) {
	v, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return Complex{}, fmt.Errorf("ParseComplex(%q): %w", s, ErrParse)
	}

	return NewComplex(real(v), imag(v), opts...), nil
}

// ParseGF2 accepts 0/1 and true/false.
func ParseGF2(s string) (GF2, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "false":
		return false, nil
	case "1", "true":
		return true, nil
	}

	return false, fmt.Errorf("ParseGF2(%q): %w", s, ErrParse)
}

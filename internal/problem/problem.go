// Package problem reads YAML problem files for the lvlalg command and
// evaluates linear-algebra operations on them over the field they name.
//
// A problem file looks like:
//
//	name: demo
//	field: rational
//	matrix:
//	  - [4, -8, 4]
//	  - [1, -2, 1]
//	  - [-2, 4, -2]
//	rhs: [0, 0, 0]
//
// Entries are kept as text until the field is known, so "1/3" (rational),
// "1+2i" (complex) and "true" (gf2) are all valid.
package problem

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/field"
)

// Field names accepted in problem files and configuration.
const (
	FieldReal     = "real"
	FieldComplex  = "complex"
	FieldRational = "rational"
	FieldGF2      = "gf2"
	FieldModP     = "modp"
)

// Fields lists every supported field name.
var Fields = []string{FieldReal, FieldComplex, FieldRational, FieldGF2, FieldModP}

// Entry is a matrix or rhs entry in its source text form. YAML numbers,
// booleans and strings all decode into an Entry unchanged.
type Entry string

// UnmarshalYAML keeps the scalar's literal text.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("problem: line %d: entry must be a scalar", node.Line)
	}
	*e = Entry(node.Value)

	return nil
}

// Problem is one decoded problem file.
type Problem struct {
	Name    string    `yaml:"name,omitempty"`
	Field   string    `yaml:"field,omitempty"`
	Modulus uint64    `yaml:"modulus,omitempty"`
	Epsilon float64   `yaml:"epsilon,omitempty"`
	Matrix  [][]Entry `yaml:"matrix"`
	RHS     []Entry   `yaml:"rhs,omitempty"`
	Ops     []string  `yaml:"ops,omitempty"`
}

// Defaults fill the settings a problem file leaves out.
type Defaults struct {
	Field   string
	Modulus uint64
	Epsilon float64
}

// Load reads and decodes the problem file at path. A missing name
// defaults to the file's base name without extension.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem.Load: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("problem.Load(%s): %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return p, nil
}

// Parse decodes a problem document. Unknown keys are rejected.
func Parse(data []byte) (*Problem, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Problem
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}

		return nil, fmt.Errorf("problem: decode: %w", err)
	}
	if len(p.Matrix) == 0 {
		return nil, ErrEmpty
	}
	p.Field = strings.ToLower(strings.TrimSpace(p.Field))
	for i, op := range p.Ops {
		p.Ops[i] = strings.ToLower(strings.TrimSpace(op))
	}

	return &p, nil
}

// WithDefaults returns a copy of p with unset field, modulus and epsilon
// taken from d.
func (p *Problem) WithDefaults(d Defaults) *Problem {
	out := *p
	if out.Field == "" {
		out.Field = strings.ToLower(d.Field)
	}
	if out.Modulus == 0 {
		out.Modulus = d.Modulus
	}
	if out.Epsilon == 0 {
		out.Epsilon = d.Epsilon
	}
	if out.Epsilon == 0 {
		out.Epsilon = field.DefaultEpsilon
	}

	return &out
}

// Validate checks the settings that can be checked without parsing entries.
func (p *Problem) Validate() error {
	if len(p.Matrix) == 0 {
		return ErrEmpty
	}
	if !slices.Contains(Fields, p.Field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, p.Field)
	}
	if p.Epsilon < 0 || math.IsNaN(p.Epsilon) || math.IsInf(p.Epsilon, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidEpsilon, p.Epsilon)
	}
	for _, op := range p.Ops {
		if !slices.Contains(Ops, op) {
			return fmt.Errorf("%w: %q", ErrUnknownOp, op)
		}
	}

	return nil
}

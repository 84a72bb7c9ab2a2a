package problem

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/jordan"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Operation names.
const (
	OpRank      = "rank"
	OpDet       = "det"
	OpInverse   = "inverse"
	OpNullSpace = "nullspace"
	OpSolve     = "solve"
	OpJordan    = "jordan"

	// OpJordanBasis is the section carrying P next to OpJordan's J.
	OpJordanBasis = "jordan-basis"
)

// Ops lists the operations in report order.
var Ops = []string{OpRank, OpDet, OpInverse, OpNullSpace, OpSolve, OpJordan}

// Evaluate runs ops on p. With no ops it runs p.Ops, or every operation
// when the file names none; in that mode operations that do not apply are
// reported as skipped. Explicitly requested operations that do not apply
// fail with ErrNotApplicable.
func Evaluate(p *Problem, ops ...string) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	strict := len(ops) > 0
	if !strict {
		ops = p.Ops
	}
	if len(ops) == 0 {
		ops = Ops
	}
	for _, op := range ops {
		if !slices.Contains(Ops, op) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
		}
	}

	start := time.Now()
	var (
		rep *Report
		err error
	)
	switch p.Field {
	case FieldReal:
		opts := []field.Option{field.WithEpsilon(p.Epsilon)}
		rep, err = evaluate(p, ops, strict, func(s string) (field.Real, error) {
			return field.ParseReal(s, opts...)
		})
	case FieldComplex:
		opts := []field.Option{field.WithEpsilon(p.Epsilon)}
		rep, err = evaluate(p, ops, strict, func(s string) (field.Complex, error) {
			return field.ParseComplex(s, opts...)
		})
	case FieldRational:
		rep, err = evaluate(p, ops, strict, field.ParseRat)
	case FieldGF2:
		rep, err = evaluate(p, ops, strict, field.ParseGF2)
	case FieldModP:
		mod, merr := field.NewModulus(p.Modulus)
		if merr != nil {
			return nil, fmt.Errorf("problem: %w", merr)
		}
		rep, err = evaluate(p, ops, strict, mod.Parse)
	}
	if err != nil {
		return nil, err
	}
	rep.Elapsed = time.Since(start)

	return rep, nil
}

func evaluate[F field.Field[F]](p *Problem, ops []string, strict bool, parse func(string) (F, error)) (*Report, error) {
	rows := make([][]F, len(p.Matrix))
	for i, r := range p.Matrix {
		row, err := parseEntries(r, parse)
		if err != nil {
			return nil, fmt.Errorf("problem: matrix row %d: %w", i, err)
		}
		rows[i] = row
	}
	m, err := matrix.New(rows)
	if err != nil {
		return nil, fmt.Errorf("problem: %w", err)
	}
	var rhs matrix.Column[F]
	if len(p.RHS) > 0 {
		if rhs, err = parseEntries(p.RHS, parse); err != nil {
			return nil, fmt.Errorf("problem: rhs: %w", err)
		}
	}

	rep := &Report{Name: p.Name, Field: fieldLabel(p), Rows: m.Rows(), Cols: m.Cols()}
	for _, op := range ops {
		secs, err := run(m, rhs, op)
		var skip skipError
		if errors.As(err, &skip) {
			if strict {
				return nil, fmt.Errorf("%w: %s: %s", ErrNotApplicable, op, skip.reason)
			}
			rep.Sections = append(rep.Sections, Section{Op: op, Note: "skipped: " + skip.reason})

			continue
		}
		if err != nil {
			return nil, fmt.Errorf("problem: %s: %w", op, err)
		}
		rep.Sections = append(rep.Sections, secs...)
	}

	return rep, nil
}

// skipError marks an operation that does not apply to the problem.
type skipError struct{ reason string }

func (e skipError) Error() string { return e.reason }

func run[F field.Field[F]](m *matrix.Matrix[F], rhs matrix.Column[F], op string) ([]Section, error) {
	switch op {
	case OpRank:
		return []Section{{Op: op, Value: strconv.Itoa(m.Rank())}}, nil

	case OpDet:
		s, err := square(m)
		if err != nil {
			return nil, err
		}

		return []Section{{Op: op, Value: s.Det().String()}}, nil

	case OpInverse:
		s, err := square(m)
		if err != nil {
			return nil, err
		}
		inv, ok := s.Inverse()
		if !ok {
			return []Section{{Op: op, Note: "singular"}}, nil
		}

		return []Section{{Op: op, Matrix: cells(inv.Matrix)}}, nil

	case OpNullSpace:
		ns, err := matrix.NullSpace(m)
		if err != nil {
			return nil, err
		}
		sec := Section{Op: op, Value: "dim " + strconv.Itoa(ns.Dimension())}
		if !ns.IsEmpty() {
			basis, err := matrix.FromColumns(ns.Basis()...)
			if err != nil {
				return nil, err
			}
			sec.Matrix = cells(basis)
		}

		return []Section{sec}, nil

	case OpSolve:
		if rhs == nil {
			return nil, skipError{"no rhs"}
		}
		if len(rhs) != m.Rows() {
			return nil, skipError{fmt.Sprintf("rhs has %d entries, matrix has %d rows", len(rhs), m.Rows())}
		}
		x, ok, err := matrix.Solve(m, rhs)
		if err != nil {
			return nil, err
		}
		if !ok {
			return []Section{{Op: op, Note: "no solution"}}, nil
		}
		xm, err := matrix.FromColumns(x)
		if err != nil {
			return nil, err
		}

		return []Section{{Op: op, Matrix: cells(xm)}}, nil

	case OpJordan:
		s, err := square(m)
		if err != nil {
			return nil, err
		}
		f, err := jordan.Nilpotent(s)
		if errors.Is(err, jordan.ErrNotNilpotent) {
			return nil, skipError{"not nilpotent"}
		}
		if err != nil {
			return nil, err
		}

		return []Section{
			{Op: op, Value: fmt.Sprintf("chains %v, index %d", f.Chains, f.Index), Matrix: cells(f.J.Matrix)},
			{Op: OpJordanBasis, Matrix: cells(f.P.Matrix)},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

func square[F field.Field[F]](m *matrix.Matrix[F]) (*matrix.Square[F], error) {
	if !m.IsSquare() {
		return nil, skipError{fmt.Sprintf("matrix is %dx%d, not square", m.Rows(), m.Cols())}
	}

	return matrix.AsSquare(m)
}

func parseEntries[F field.Field[F]](entries []Entry, parse func(string) (F, error)) ([]F, error) {
	out := make([]F, len(entries))
	for i, e := range entries {
		v, err := parse(string(e))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

func cells[F field.Field[F]](m *matrix.Matrix[F]) [][]string {
	out := make([][]string, m.Rows())
	for i := range out {
		row, _ := m.Row(i)
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = v.String()
		}
	}

	return out
}

func fieldLabel(p *Problem) string {
	switch p.Field {
	case FieldModP:
		return "GF(" + strconv.FormatUint(p.Modulus, 10) + ")"
	case FieldReal, FieldComplex:
		return p.Field + " (eps " + strconv.FormatFloat(p.Epsilon, 'g', -1, 64) + ")"
	}

	return p.Field
}

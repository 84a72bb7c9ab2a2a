package transform

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

// Transform is a linear map from a domain space of V to a range space of W.
type Transform[V matrix.Vector[V, F], W matrix.Vector[W, F], F field.Field[F]] struct {
	domain *matrix.Space[V, F]
	rng    *matrix.Space[W, F]
	rule   func(V) W
}

// Endo is a linear operator on a single space.
type Endo[V matrix.Vector[V, F], F field.Field[F]] = Transform[V, V, F]

// New builds a transform. Both spaces are cloned. Whether the rule lands in
// rng is only checked when a representation is requested (see Matrix).
//
// Errors: ErrNilSpace, ErrNilRule.
func New[V matrix.Vector[V, F], W matrix.Vector[W, F], F field.Field[F]](
	domain *matrix.Space[V, F], rng *matrix.Space[W, F], rule func(V) W,
) (*Transform[V, W, F], error) {
	if domain == nil || rng == nil {
		return nil, fmt.Errorf("transform.New: %w", ErrNilSpace)
	}
	if rule == nil {
		return nil, fmt.Errorf("transform.New: %w", ErrNilRule)
	}

	return &Transform[V, W, F]{domain: domain.Clone(), rng: rng.Clone(), rule: rule}, nil
}

// NewEndo builds an operator on s.
func NewEndo[V matrix.Vector[V, F], F field.Field[F]](s *matrix.Space[V, F], rule func(V) V) (*Endo[V, F], error) {
	return New(s, s, rule)
}

// Identity returns the identity operator on s.
func Identity[V matrix.Vector[V, F], F field.Field[F]](s *matrix.Space[V, F]) (*Endo[V, F], error) {
	return NewEndo(s, func(v V) V { return v })
}

// Zero returns the zero map domain → rng.
func Zero[V matrix.Vector[V, F], W matrix.Vector[W, F], F field.Field[F]](
	domain *matrix.Space[V, F], rng *matrix.Space[W, F],
) (*Transform[V, W, F], error) {
	if rng == nil || rng.IsEmpty() {
		return nil, fmt.Errorf("transform.Zero: %w", matrix.ErrEmptySpace)
	}
	z := rng.Basis()[0].Zero()

	return New(domain, rng, func(V) W { return z })
}

// FromMatrix returns x ↦ a·x from F^cols to F^rows with standard bases.
func FromMatrix[F field.Field[F]](a *matrix.Matrix[F]) (*Transform[matrix.Column[F], matrix.Column[F], F], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("transform.FromMatrix: %w", err)
	}
	r, c := a.Shape()
	sample, _ := a.At(0, 0)
	domain, err := standardSpace(c, sample)
	if err != nil {
		return nil, err
	}
	rng, err := standardSpace(r, sample)
	if err != nil {
		return nil, err
	}
	rep := a.Clone()

	return New(domain, rng, func(x matrix.Column[F]) matrix.Column[F] {
		y, err := matrix.MulColumn(rep, x)
		if err != nil {
			panic(err)
		}

		return y
	})
}

// Standard returns F^n with its standard basis e₁ … eₙ.
func Standard[F field.Field[F]](n int, sample F) (*matrix.Space[matrix.Column[F], F], error) {
	return standardSpace(n, sample)
}

func standardSpace[F field.Field[F]](n int, sample F) (*matrix.Space[matrix.Column[F], F], error) {
	id, err := matrix.NewIdentity(n, sample)
	if err != nil {
		return nil, fmt.Errorf("transform.Standard: %w", err)
	}

	return matrix.Span(n, id.Columns()...)
}

// FromBases returns the transform whose representation in (domain, rng) is
// rep: v ↦ Σ (rep·[v]_domain)ᵢ · rngᵢ.
//
// Errors: ErrNilSpace, matrix.ErrEmptySpace, matrix.ErrDimensionMismatch
// when rep is not rng.Dimension() × domain.Dimension().
func FromBases[V matrix.Vector[V, F], W matrix.Vector[W, F], F field.Field[F]](
	domain *matrix.Space[V, F], rng *matrix.Space[W, F], rep *matrix.Matrix[F],
) (*Transform[V, W, F], error) {
	if domain == nil || rng == nil || rep == nil {
		return nil, fmt.Errorf("transform.FromBases: %w", ErrNilSpace)
	}
	if domain.IsEmpty() || rng.IsEmpty() {
		return nil, fmt.Errorf("transform.FromBases: %w", matrix.ErrEmptySpace)
	}
	if r, c := rep.Shape(); r != rng.Dimension() || c != domain.Dimension() {
		return nil, fmt.Errorf("transform.FromBases: %w", matrix.ErrDimensionMismatch)
	}
	dom, rg, m := domain.Clone(), rng.Clone(), rep.Clone()

	return New(dom, rg, func(v V) W {
		x, ok := dom.Coordinates(v)
		if !ok {
			panic(fmt.Errorf("transform: %s not in domain", v.Coordinates()))
		}
		y, err := matrix.MulColumn(m, x)
		if err != nil {
			panic(err)
		}
		w, err := rg.LinearCombination(y...)
		if err != nil {
			panic(err)
		}

		return w
	})
}

// Apply evaluates the rule at v.
func (t *Transform[V, W, F]) Apply(v V) W { return t.rule(v) }

// Domain returns a copy of the domain space.
func (t *Transform[V, W, F]) Domain() *matrix.Space[V, F] { return t.domain.Clone() }

// Range returns a copy of the range space.
func (t *Transform[V, W, F]) Range() *matrix.Space[W, F] { return t.rng.Clone() }

// Matrix returns the representation of t: column j holds the range
// coordinates of t(domainⱼ).
//
// Errors: matrix.ErrEmptySpace when domain or range has no basis,
// ErrNotInRange when an image is not in the range.
func (t *Transform[V, W, F]) Matrix() (*matrix.Matrix[F], error) {
	return representation(t.domain, t.rng, t.rule)
}

// MatrixIn returns the representation of t relative to the bases of b
// (domain side) and c (range side).
func (t *Transform[V, W, F]) MatrixIn(b *matrix.Space[V, F], c *matrix.Space[W, F]) (*matrix.Matrix[F], error) {
	if b == nil || c == nil {
		return nil, fmt.Errorf("transform.MatrixIn: %w", ErrNilSpace)
	}

	return representation(b, c, t.rule)
}

func representation[V matrix.Vector[V, F], W matrix.Vector[W, F], F field.Field[F]](
	domain *matrix.Space[V, F], rng *matrix.Space[W, F], rule func(V) W,
) (*matrix.Matrix[F], error) {
	if domain.IsEmpty() || rng.IsEmpty() {
		return nil, fmt.Errorf("transform.Matrix: %w", matrix.ErrEmptySpace)
	}
	basis := domain.Basis()
	cols := make([]matrix.Column[F], len(basis))
	for j, b := range basis {
		x, ok := rng.Coordinates(rule(b))
		if !ok {
			return nil, fmt.Errorf("transform.Matrix: basis vector %d: %w", j, ErrNotInRange)
		}
		cols[j] = x
	}

	return matrix.FromColumns(cols...)
}

// Kernel returns {v ∈ domain : t(v) = 0}.
//
// Implementation: null space of the representation, each null vector mapped
// back into the domain by linear combination. A range with no basis sends
// everything to zero, so the kernel is the whole domain.
func (t *Transform[V, W, F]) Kernel() (*matrix.Space[V, F], error) {
	if t.domain.IsEmpty() {
		return t.domain.Empty(), nil
	}
	if t.rng.IsEmpty() {
		return t.domain.Clone(), nil
	}
	rep, err := t.Matrix()
	if err != nil {
		return nil, err
	}
	ns, err := matrix.NullSpace(rep)
	if err != nil {
		return nil, fmt.Errorf("transform.Kernel: %w", err)
	}
	out := t.domain.Empty()
	for _, x := range ns.Basis() {
		v, err := t.domain.LinearCombination(x...)
		if err != nil {
			return nil, fmt.Errorf("transform.Kernel: %w", err)
		}
		out.Add(v)
	}

	return out, nil
}

// Image returns the span of t applied to the domain basis, inside a fresh
// copy of the range's ambient space.
func (t *Transform[V, W, F]) Image() *matrix.Space[W, F] {
	return t.ImageOf(t.domain)
}

// ImageOf returns t(s) for a subspace s of the domain.
func (t *Transform[V, W, F]) ImageOf(s *matrix.Space[V, F]) *matrix.Space[W, F] {
	out := t.rng.Empty()
	for _, b := range s.Basis() {
		out.Add(t.rule(b))
	}

	return out
}

// IsInvertible reports whether the kernel is {0}.
func (t *Transform[V, W, F]) IsInvertible() (bool, error) {
	k, err := t.Kernel()
	if err != nil {
		return false, err
	}

	return k.IsEmpty(), nil
}

// IsIsomorphism reports whether t is injective and its image is the range.
func (t *Transform[V, W, F]) IsIsomorphism() (bool, error) {
	inv, err := t.IsInvertible()
	if err != nil || !inv {
		return false, err
	}

	return t.Image().Dimension() == t.rng.Dimension(), nil
}

// Inverse returns t⁻¹: range → domain and true, or (nil, false, nil) when t
// is not an isomorphism.
func (t *Transform[V, W, F]) Inverse() (*Transform[W, V, F], bool, error) {
	iso, err := t.IsIsomorphism()
	if err != nil || !iso {
		return nil, false, err
	}
	rep, err := t.Matrix()
	if err != nil {
		return nil, false, err
	}
	sq, err := matrix.AsSquare(rep)
	if err != nil {
		return nil, false, fmt.Errorf("transform.Inverse: %w", err)
	}
	inv, ok := sq.Inverse()
	if !ok {
		return nil, false, nil
	}
	out, err := FromBases(t.rng, t.domain, inv.Matrix)
	if err != nil {
		return nil, false, err
	}

	return out, true, nil
}

// Equal reports whether t and o have the same domain subspace and agree on
// every domain basis vector.
func (t *Transform[V, W, F]) Equal(o *Transform[V, W, F]) bool {
	if !matrix.EqualSpaces(t.domain, o.domain) {
		return false
	}
	for _, b := range t.domain.Basis() {
		if !t.rule(b).Coordinates().Equal(o.rule(b).Coordinates()) {
			return false
		}
	}

	return true
}

// String renders the representation, or a placeholder when it is undefined.
func (t *Transform[V, W, F]) String() string {
	rep, err := t.Matrix()
	if err != nil {
		return fmt.Sprintf("transform(%v)", err)
	}

	return rep.String()
}

package jordan

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
	"github.com/katalvlaran/lvlalg/transform"
)

// Form is the Jordan decomposition of a nilpotent square matrix A:
// J = P⁻¹·A·P, where the columns of P are the Jordan basis.
type Form[F field.Field[F]] struct {
	// J is strictly upper triangular with ones only on the superdiagonal.
	J *matrix.Square[F]
	// P holds the Jordan basis as columns.
	P *matrix.Square[F]
	// Basis is the Jordan basis as a space (same order as P's columns).
	Basis *matrix.Space[matrix.Column[F], F]
	// Chains lists the chain (block) lengths in basis order.
	Chains []int
	// Index is the nilpotency index: the least k with Aᵏ = 0.
	Index int
}

// TransformForm is the Jordan decomposition of a nilpotent endomorphism.
type TransformForm[V matrix.Vector[V, F], F field.Field[F]] struct {
	// Transform is the operator re-based on the Jordan basis.
	Transform *transform.Endo[V, F]
	// J is the representation of Transform in the Jordan basis.
	J *matrix.Square[F]
	// Basis is the Jordan basis.
	Basis *matrix.Space[V, F]
	// Chains lists the chain (block) lengths in basis order.
	Chains []int
	// Index is the nilpotency index.
	Index int
}

// Nilpotent computes the Jordan form of a nilpotent square matrix.
//
// Errors: matrix.ErrNilMatrix, ErrNotNilpotent.
func Nilpotent[F field.Field[F]](a *matrix.Square[F]) (*Form[F], error) {
	if a == nil || a.Matrix == nil {
		return nil, fmt.Errorf("jordan.Nilpotent: %w", matrix.ErrNilMatrix)
	}
	t, err := transform.FromMatrix(a.Matrix)
	if err != nil {
		return nil, fmt.Errorf("jordan.Nilpotent: %w", err)
	}
	basis, chains, index, err := build(t)
	if err != nil {
		return nil, fmt.Errorf("jordan.Nilpotent: %w", err)
	}
	pm, err := matrix.FromColumns(basis.Basis()...)
	if err != nil {
		return nil, fmt.Errorf("jordan.Nilpotent: %w", err)
	}
	p, err := matrix.AsSquare(pm)
	if err != nil {
		return nil, fmt.Errorf("jordan.Nilpotent: %w", err)
	}
	j, err := a.InBasis(p)
	if err != nil {
		return nil, fmt.Errorf("jordan.Nilpotent: %w", err)
	}

	return &Form[F]{J: j, P: p, Basis: basis, Chains: chains, Index: index}, nil
}

// NilpotentTransform computes a Jordan basis for a nilpotent operator and
// returns the operator re-expressed in it.
//
// Errors: matrix.ErrEmptySpace for an operator on {0}, ErrNotNilpotent, and
// transform.ErrNotInRange when the rule leaves its space.
func NilpotentTransform[V matrix.Vector[V, F], F field.Field[F]](t *transform.Endo[V, F]) (*TransformForm[V, F], error) {
	basis, chains, index, err := build(t)
	if err != nil {
		return nil, fmt.Errorf("jordan.NilpotentTransform: %w", err)
	}
	jt, err := transform.NewEndo(basis, t.Apply)
	if err != nil {
		return nil, fmt.Errorf("jordan.NilpotentTransform: %w", err)
	}
	rep, err := jt.Matrix()
	if err != nil {
		return nil, fmt.Errorf("jordan.NilpotentTransform: %w", err)
	}
	j, err := matrix.AsSquare(rep)
	if err != nil {
		return nil, fmt.Errorf("jordan.NilpotentTransform: %w", err)
	}

	return &TransformForm[V, F]{Transform: jt, J: j, Basis: basis, Chains: chains, Index: index}, nil
}

// level caches Tⁱ and its kernel.
type level[V matrix.Vector[V, F], F field.Field[F]] struct {
	power  *transform.Endo[V, F]
	kernel *matrix.Space[V, F]
}

// kernelChain returns levels 0..l where level l's kernel is the whole domain.
func kernelChain[V matrix.Vector[V, F], F field.Field[F]](t *transform.Endo[V, F]) ([]level[V, F], error) {
	domain := t.Domain()
	n := domain.Dimension()
	if n == 0 {
		return nil, matrix.ErrEmptySpace
	}
	id, err := transform.Power(t, 0)
	if err != nil {
		return nil, err
	}
	levels := []level[V, F]{{power: id, kernel: domain.Empty()}}
	for i := 1; ; i++ {
		p, err := transform.Power(t, i)
		if err != nil {
			return nil, err
		}
		k, err := p.Kernel()
		if err != nil {
			return nil, err
		}
		if k.Dimension() == levels[i-1].kernel.Dimension() {
			return nil, ErrNotNilpotent
		}
		levels = append(levels, level[V, F]{power: p, kernel: k})
		if k.Dimension() == n {
			return levels, nil
		}
	}
}

// build runs the level-by-level chain completion and returns the Jordan
// basis, the chain lengths and the nilpotency index.
//
// Implementation:
//   - Stage 1: kernelChain.
//   - Stage 2: For i = l..1: C = (B ∩ ker Tⁱ⁻¹) + ker Tⁱ⁻¹ + (B ∩ ker Tⁱ).
//     need = dim ker Tⁱ − dim C new chains start here.
//   - Stage 3: For each basis vector v of ker Tⁱ outside C (until need is
//     met) add T^(i−1)v, …, Tv, v to B and v to C.
func build[V matrix.Vector[V, F], F field.Field[F]](t *transform.Endo[V, F]) (*matrix.Space[V, F], []int, int, error) {
	levels, err := kernelChain(t)
	if err != nil {
		return nil, nil, 0, err
	}
	l := len(levels) - 1
	b := levels[0].kernel.Empty()
	var chains []int
	for i := l; i >= 1; i-- {
		prev, cur := levels[i-1].kernel, levels[i].kernel
		c, err := matrix.Intersection(b, prev)
		if err != nil {
			return nil, nil, 0, err
		}
		c.Add(prev.Basis()...)
		top, err := matrix.Intersection(b, cur)
		if err != nil {
			return nil, nil, 0, err
		}
		c.Add(top.Basis()...)

		need := cur.Dimension() - c.Dimension()
		for _, v := range cur.Basis() {
			if need == 0 {
				break
			}
			if c.Contains(v) {
				continue
			}
			for j := i - 1; j >= 0; j-- {
				b.Add(levels[j].power.Apply(v))
			}
			c.Add(v)
			chains = append(chains, i)
			need--
		}
	}

	return b, chains, l, nil
}

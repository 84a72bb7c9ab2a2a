// Package matrix_test provides benchmarks for the elimination kernels over an
// exact field (Rat) and a prime field (ModP), using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/field"
	"github.com/katalvlaran/lvlalg/matrix"
)

// benchSizes are the matrix sizes to benchmark. Rat entries grow during
// elimination, so sizes stay small.
var benchSizes = []int{8, 16, 32}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Matrix[field.ModP]
	sinkS *matrix.Square[field.Rat]
	sinkI int
	sinkB bool
)

const benchPrime = 1_000_000_007

func randModP(b *testing.B, n int, seed int64) *matrix.Square[field.ModP] {
	b.Helper()
	mod, err := field.NewModulus(benchPrime)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]field.ModP, n)
	for i := range rows {
		rows[i] = make([]field.ModP, n)
		for j := range rows[i] {
			rows[i][j] = mod.Int(rng.Int63())
		}
	}
	s, err := matrix.NewSquare(rows)
	if err != nil {
		b.Fatal(err)
	}

	return s
}

func randRat(b *testing.B, n int, seed int64) *matrix.Square[field.Rat] {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]field.Rat, n)
	for i := range rows {
		rows[i] = make([]field.Rat, n)
		for j := range rows[i] {
			rows[i][j] = field.NewRat(rng.Int63n(19)-9, 1)
		}
	}
	s, err := matrix.NewSquare(rows)
	if err != nil {
		b.Fatal(err)
	}

	return s
}

func BenchmarkMulModP(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randModP(b, n, 1337)
			B := randModP(b, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				C, err := matrix.Mul(A.Matrix, B.Matrix)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = C
			}
		})
	}
}

func BenchmarkRankModP(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randModP(b, n, 7)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = A.Rank()
			}
		})
	}
}

func BenchmarkSolveModP(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randModP(b, n, 99)
			rhs, err := A.Col(0)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, ok, err := matrix.Solve(A.Matrix, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = ok
			}
		})
	}
}

func BenchmarkDetRat(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randRat(b, n, 11)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = field.IsZero(A.Det())
			}
		})
	}
}

func BenchmarkInverseRat(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randRat(b, n, 12)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, _ := A.Inverse()
				sinkS = inv
			}
		})
	}
}

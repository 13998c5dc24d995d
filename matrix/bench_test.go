// Package matrix_test provides benchmarks for the MatrixX kernels,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/qs/matrix"
)

// benchSizes are the matrix sizes for the polynomial kernels.
var benchSizes = []int{16, 64, 128}

// detSizes stay small: cofactor expansion is O(n!).
var detSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.MatrixX[float64]
	sinkF float64
	sinkB bool
)

// mustRand builds an n×n random matrix from seed or stops the benchmark.
func mustRand(b *testing.B, n int, seed int64) *matrix.MatrixX[float64] {
	b.Helper()
	m, err := matrix.Rand[float64](n, n, matrix.NewRand(seed))
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// mustDominant returns a random diagonally dominant matrix, which is never singular.
func mustDominant(b *testing.B, n int, seed int64) *matrix.MatrixX[float64] {
	b.Helper()
	m := mustRand(b, n, seed)
	var i int
	for i = 0; i < n; i++ {
		if err := m.Set(i, i, float64(n)+1); err != nil {
			b.Fatal(err)
		}
	}

	return m
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustRand(b, n, 1337)
			B := mustRand(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Add(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustRand(b, n, 1337)
			B := mustRand(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Mul(B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustRand(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, _ = A.T()
			}
		})
	}
}

func BenchmarkInv(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDominant(b, n, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := A.Inv()
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range detSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDominant(b, n, 5)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := A.Det()
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkIsPD(b *testing.B) {
	b.ReportAllocs()
	for _, n := range detSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDominant(b, n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ok, err := A.IsPD()
				if err != nil {
					b.Fatal(err)
				}
				sinkB = ok
			}
		})
	}
}

// Package matrix_test provides benchmarks for the product kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlsvd/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkR *matrix.Dense[float64]
	sinkC *matrix.Dense[complex128]
	sinkF float64
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense[float64](b, n, n)
			B := MustDense[float64](b, n, n)
			RandomFill(A, 1337)
			RandomFill(B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkR = m
			}
		})
	}
}

func BenchmarkMulComplex(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense[complex128](b, n, n)
			B := MustDense[complex128](b, n, n)
			RandomFill(A, 11)
			RandomFill(B, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = m
			}
		})
	}
}

func BenchmarkMulConjTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense[complex128](b, n, n)
			B := MustDense[complex128](b, n, n)
			RandomFill(A, 7)
			RandomFill(B, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.MulConjTranspose(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkC = m
			}
		})
	}
}

func BenchmarkFrobeniusNorm(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := MustDense[float64](b, n, n)
			RandomFill(A, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f, err := matrix.FrobeniusNorm(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = f
			}
		})
	}
}

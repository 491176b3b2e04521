// Package matrix_test provides benchmarks for Multiply on both kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mmult/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinkM defeats dead-code elimination.
var sinkM *matrix.Dense

func BenchmarkMultiplyDense(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandDense(b, n, n, 1337)
			y := RandDense(b, n, n, 4242)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMultiplyGeneric(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := hide{RandDense(b, n, n, 1337)}
			y := hide{RandDense(b, n, n, 4242)}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Multiply(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

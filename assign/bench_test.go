package assign_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pointmatch/assign"
)

// benchmarkSolve runs Solve on a deterministic pseudo-random n×n matrix.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkSolve(b *testing.B, n int) {
	cost := mat.NewDense(n, n, nil)
	v := 3.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v = math.Mod(v*31+17, 997)
			cost.Set(i, j, v)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := assign.Solve(cost); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

func BenchmarkSolve_16(b *testing.B)  { benchmarkSolve(b, 16) }
func BenchmarkSolve_64(b *testing.B)  { benchmarkSolve(b, 64) }
func BenchmarkSolve_128(b *testing.B) { benchmarkSolve(b, 128) }

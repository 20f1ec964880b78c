package match_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pointmatch/match"
)

// benchmarkMatch runs Match on n synthetic detections per side, half of
// them exact duplicates so the pre-match fast path has work to do.
func benchmarkMatch(b *testing.B, n int, opts ...match.Option) {
	a := mat.NewDense(n, 3, nil)
	bb := mat.NewDense(n, 3, nil)
	v := 11.0
	for i := 0; i < n; i++ {
		v = math.Mod(v*31+17, 4093)
		a.Set(i, 0, v)
		a.Set(i, 1, math.Mod(v*7, 509))
		a.Set(i, 2, math.Mod(v*3, 127))
		if i%2 == 0 {
			// exact duplicate of the A row
			bb.Set(i, 0, a.At(i, 0))
			bb.Set(i, 1, a.At(i, 1))
			bb.Set(i, 2, a.At(i, 2))
		} else {
			bb.Set(i, 0, a.At(i, 0)+3)
			bb.Set(i, 1, a.At(i, 1)-2)
			bb.Set(i, 2, a.At(i, 2)+1)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := match.Match(a, bb, opts...); err != nil {
			b.Fatalf("Match failed: %v", err)
		}
	}
}

func BenchmarkMatch_64(b *testing.B)  { benchmarkMatch(b, 64) }
func BenchmarkMatch_256(b *testing.B) { benchmarkMatch(b, 256) }

func BenchmarkMatch_256_NoPreMatch(b *testing.B) {
	benchmarkMatch(b, 256, match.WithoutPreMatch())
}

func BenchmarkMatch_256_Threshold(b *testing.B) {
	benchmarkMatch(b, 256, match.WithThreshold(10))
}

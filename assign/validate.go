// Package assign - validation shared by the strict and max-cardinality
// solvers.
//
// Design principles (matching the rest of the module):
//   - Deterministic, side-effect free, no logging, no panics on user input -
//     only sentinel errors from types.go.
//   - All errors are raised eagerly, before any assignment work starts.
package assign

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validate checks the cost matrix against the solver contract and returns
// its dimensions plus a flattened row-major copy of the costs.
//
// Contract:
//   - cost non-nil, rows ≤ cols;
//   - no NaN anywhere, no -Inf anywhere;
//   - +Inf admitted only when allowInf (the max-cardinality variant, where
//     it marks a forbidden edge);
//   - no negative entries (costs are distances).
//
// Complexity: O(m·n) time, O(m·n) space for the copy.
func validate(cost mat.Matrix, allowInf bool) (m, n int, c []float64, err error) {
	if cost == nil {
		return 0, 0, nil, ErrNilMatrix
	}
	m, n = cost.Dims()
	if m > n {
		return 0, 0, nil, ErrDimensionMismatch
	}

	c = make([]float64, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := cost.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, -1) {
				return 0, 0, nil, ErrNonFinite
			}
			if math.IsInf(v, 1) && !allowInf {
				return 0, 0, nil, ErrNonFinite
			}
			if v < 0 {
				return 0, 0, nil, ErrNegativeCost
			}
			c[i*n+j] = v
		}
	}

	return m, n, c, nil
}

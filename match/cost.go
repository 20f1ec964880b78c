package match

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// validateCoords rejects any non-finite coordinate in m. A nil matrix is
// the empty set and trivially valid.
func validateCoords(m *mat.Dense) error {
	if m == nil {
		return nil
	}
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		for _, v := range m.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFinite
			}
		}
	}
	return nil
}

// costMatrix materializes the pairwise Euclidean distances between the
// selected rows of a and b. Only the residual problem left after
// pre-matching is ever materialized, never the full |A|×|B| matrix.
// Both index slices must be non-empty.
//
// Finite coordinates can still produce an overflowed distance; such a cost
// cannot be optimized over and yields ErrNonFinite.
//
// Complexity: O(|rowsA|·|rowsB|·d).
func costMatrix(a, b *mat.Dense, rowsA, rowsB []int) (*mat.Dense, error) {
	c := mat.NewDense(len(rowsA), len(rowsB), nil)
	for i, ai := range rowsA {
		av := a.RawRowView(ai)
		for j, bj := range rowsB {
			d := floats.Distance(av, b.RawRowView(bj), 2)
			if math.IsInf(d, 0) || math.IsNaN(d) {
				return nil, ErrNonFinite
			}
			c.Set(i, j, d)
		}
	}
	return c, nil
}

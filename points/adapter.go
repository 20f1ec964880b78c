package points

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Dims is the coordinate dimensionality of Point.
const Dims = 3

// ErrBadDimension indicates a coordinate matrix whose column count is not
// Dims and therefore cannot be reconstructed into 3-D points.
var ErrBadDimension = errors.New("points: coordinate matrix must have exactly 3 columns")

// Matrix converts s to an n×3 coordinate matrix. Row i holds s[i] in
// x, y, z column order; no reordering is performed. The empty set converts
// to a nil matrix, which the matching engine treats as the empty point set
// (gonum rejects zero-row Dense matrices).
func (s Set) Matrix() *mat.Dense {
	if len(s) == 0 {
		return nil
	}
	m := mat.NewDense(len(s), Dims, nil)
	for i, p := range s {
		m.Set(i, 0, p.X)
		m.Set(i, 1, p.Y)
		m.Set(i, 2, p.Z)
	}
	return m
}

// FromMatrix reconstructs a Set from an n×3 coordinate matrix, tagging all
// points with the one shared label t — a raw coordinate matrix carries no
// per-point category. A nil matrix yields an empty Set. Returns
// ErrBadDimension if m does not have exactly 3 columns.
func FromMatrix(m *mat.Dense, t Type) (Set, error) {
	if m == nil {
		return Set{}, nil
	}
	r, c := m.Dims()
	if c != Dims {
		return nil, ErrBadDimension
	}
	s := make(Set, r)
	for i := 0; i < r; i++ {
		s[i] = Point{X: m.At(i, 0), Y: m.At(i, 1), Z: m.At(i, 2), Type: t}
	}
	return s, nil
}

// Package points defines the labeled 3-D Point and Set types used across
// the matching engine, plus adapters between typed sets and raw gonum
// coordinate matrices.
//
// Overview:
//
//   - A Point is an immutable (x, y, z) coordinate with a classification
//     label (Artifact, Unknown, Cell).
//   - A Set is an ordered, index-addressable sequence of points. Everywhere
//     in this module the index, never the coordinate, is a point's identity:
//     matching results refer back to positions in the caller's Set.
//   - Adapters convert a Set to an n×3 coordinate matrix and back. A raw
//     coordinate matrix carries no per-point category, so reconstruction
//     tags every point with one shared label.
//
// Conventions:
//
//   - Row i of the matrix corresponds to points[i]; no reordering happens
//     in either direction.
//   - The empty set is valid input, not an error. It converts to a nil
//     matrix (gonum rejects zero-row Dense matrices) and back.
//   - Sorting orders by plane first (z), then y, then x, matching the
//     acquisition order of plane-by-plane detectors.
//
// Errors (sentinel):
//
//   - ErrBadDimension — a coordinate matrix whose column count is not 3
//     cannot be reconstructed into 3-D points.
//
// Example usage:
//
//	s := points.Set{
//	    points.New(392, 522, 10, points.Cell),
//	    points.New(390, 510, 11, points.Cell),
//	}
//	m := s.Matrix()            // 2×3 gonum matrix
//	t, err := points.FromMatrix(m, points.Unknown)
package points

package points

import (
	"fmt"
	"sort"
)

// Type is the classification label attached to a point. Values follow the
// upstream detector convention: negative for rejected detections, positive
// for genuine ones.
type Type int

const (
	// Artifact marks a detection rejected as noise.
	Artifact Type = -1

	// Unknown marks a detection that has not been classified yet.
	Unknown Type = 1

	// NoCell is the classification-compatibility alias of Unknown.
	NoCell Type = 1

	// Cell marks a confirmed detection.
	Cell Type = 2
)

// Point is an immutable 3-D coordinate with a classification label.
// Points are value types; treat them as read-only after construction.
type Point struct {
	X, Y, Z float64
	Type    Type
}

// New constructs a Point at (x, y, z) with label t.
func New(x, y, z float64, t Type) Point {
	return Point{X: x, Y: y, Z: z, Type: t}
}

// Equal reports whether p and q share both position and label.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y && p.Z == q.Z && p.Type == q.Type
}

// Less orders points by plane first (z), then y, then x. The label does not
// participate in ordering.
func (p Point) Less(q Point) bool {
	if p.Z != q.Z {
		return p.Z < q.Z
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// String renders the point coordinate and label.
func (p Point) String() string {
	return fmt.Sprintf("Point: x: %g, y: %g, z: %g, type: %d", p.X, p.Y, p.Z, p.Type)
}

// Set is an ordered, index-addressable sequence of points. The index is the
// identity used by the matching engine; results always refer to positions
// in the original Set.
type Set []Point

// Sort orders the set in place by Point.Less, stably, so equal-position
// points keep their relative order.
func (s Set) Sort() {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Less(s[j]) })
}

// GroupByZ splits s into per-plane subsets keyed by the z coordinate.
// Within each subset the original ordering is preserved. Callers matching
// very large sets can use this to batch the solve plane by plane.
func GroupByZ(s Set) map[float64]Set {
	groups := make(map[float64]Set)
	for _, p := range s {
		groups[p.Z] = append(groups[p.Z], p)
	}
	return groups
}

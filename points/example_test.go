package points_test

import (
	"fmt"

	"github.com/katalvlaran/pointmatch/points"
)

// ExampleSet_Matrix converts a detection set to its coordinate matrix and
// back, tagging the reconstructed points with one shared label.
func ExampleSet_Matrix() {
	s := points.Set{
		points.New(392, 522, 10, points.Cell),
		points.New(390, 510, 11, points.Cell),
	}

	m := s.Matrix()
	fmt.Println(m.RawRowView(0))
	fmt.Println(m.RawRowView(1))

	back, err := points.FromMatrix(m, points.Unknown)
	if err != nil {
		fmt.Println("reconstruction failed:", err)
		return
	}
	fmt.Println(back[0])
	// Output:
	// [392 522 10]
	// [390 510 11]
	// Point: x: 392, y: 522, z: 10, type: 1
}

package assign_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pointmatch/assign"
)

// ExampleSolve demonstrates the anti-greedy optimum: pairing each row with
// its nearest column costs 22+2=24, while the global optimum costs 10+10=20.
func ExampleSolve() {
	cost := mat.NewDense(2, 2, []float64{
		10, 22,
		2, 10,
	})

	cols, err := assign.Solve(cost)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println(cols)
	// Output:
	// [0 1]
}

// ExampleSolveMaxCardinality demonstrates forbidden-edge semantics: the
// +Inf entries are never traversed, so the second row stays Unassigned
// rather than being forced into an infeasible column.
func ExampleSolveMaxCardinality() {
	inf := math.Inf(1)
	cost := mat.NewDense(2, 2, []float64{
		1, inf,
		2, inf,
	})

	cols, err := assign.SolveMaxCardinality(cost)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println(cols)
	// Output:
	// [0 -1]
}

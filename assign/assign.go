package assign

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve computes the minimum-cost full assignment of rows to columns.
//
// Description:
//
//	Given a dense m×n cost matrix with m ≤ n and all entries finite and
//	non-negative, Solve returns a length-m slice mapping every row to a
//	distinct column so that the total assigned cost is minimal. A full
//	assignment is guaranteed; filtering "too expensive" pairs is the
//	caller's concern, not this layer's.
//
// Algorithm Outline (successive shortest augmenting paths):
//  1. Maintain dual potentials u (rows) and v (columns) so that every
//     reduced cost c[i][j] − u[i] − v[j] stays non-negative.
//  2. For each row in caller order, run a Dijkstra pass over columns to
//     find the cheapest alternating path from the row to any free column.
//  3. Update the potentials along the scanned tree, then flip the
//     alternating path, growing the matching by one.
//  4. After m passes the matching is a minimum-cost full assignment.
//
// Complexity:
//
//	Time   = O(m·n²), i.e. O(n³) worst case
//	Memory = O(m·n)
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNonFinite, ErrNegativeCost —
//     eager validation, see validate.go.
//   - ErrInfeasible — invariant check only; unreachable for finite inputs.
func Solve(cost mat.Matrix, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, n, c, err := validate(cost, false)
	if err != nil {
		return nil, err
	}

	out, err := solveCore(m, n, c, o, false)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// SolveMaxCardinality computes a minimum-cost matching over the feasible
// sub-graph of a dense m×n cost matrix, m ≤ n, where +Inf entries mark
// forbidden edges.
//
// A forbidden edge is infeasible, not merely expensive: it is never
// traversed, not even transiently. A row with no feasible augmenting path
// is reported as Unassigned, and the remaining matching uses as many
// feasible edges as possible (maximum cardinality — once a row admits no
// augmenting path, later augmentations cannot create one, so skipping it
// is final).
//
// NaN and -Inf entries are still rejected with ErrNonFinite.
func SolveMaxCardinality(cost mat.Matrix, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, n, c, err := validate(cost, true)
	if err != nil {
		return nil, err
	}

	return solveCore(m, n, c, o, true)
}

// solveCore is the canonical rows≤cols solver shared by Solve and
// SolveMaxCardinality. c is the validated row-major m×n cost copy.
// When partial is false an unreachable row aborts with ErrInfeasible;
// when true it is left Unassigned.
func solveCore(m, n int, c []float64, o Options, partial bool) ([]int, error) {
	inf := math.Inf(1)

	u := make([]float64, m)        // row potentials
	v := make([]float64, n)        // column potentials
	col4row := make([]int, m)      // row → assigned column
	row4col := make([]int, n)      // column → assigned row
	shortest := make([]float64, n) // tentative shortest-path reduced costs
	pred := make([]int, n)         // predecessor row on the path to each column
	inTreeRow := make([]bool, m)   // rows scanned into the alternating tree
	inTreeCol := make([]bool, n)   // columns already settled by Dijkstra

	var i, j, cur int
	for i = 0; i < m; i++ {
		col4row[i] = Unassigned
	}
	for j = 0; j < n; j++ {
		row4col[j] = Unassigned
	}

	for cur = 0; cur < m; cur++ {
		// Reset per-pass scratch.
		for j = 0; j < n; j++ {
			shortest[j] = inf
			pred[j] = Unassigned
			inTreeCol[j] = false
		}
		for i = 0; i < m; i++ {
			inTreeRow[i] = false
		}

		// Dijkstra over columns, starting from the current row. pathCost
		// carries the cost of the shortest settled path so far, keeping
		// reduced costs relative to it.
		pathCost := 0.0
		sink := Unassigned
		i = cur
		for sink == Unassigned {
			inTreeRow[i] = true

			// Relax all unsettled columns through row i and pick the next
			// column to settle. Ascending scan + strict improvement means
			// cost ties resolve to the lowest column index.
			lowest := inf
			next := Unassigned
			for j = 0; j < n; j++ {
				if inTreeCol[j] {
					continue
				}
				if r := pathCost + c[i*n+j] - u[i] - v[j]; r < shortest[j] {
					shortest[j] = r
					pred[j] = i
				}
				if shortest[j] < lowest {
					lowest = shortest[j]
					next = j
				}
			}

			if next == Unassigned {
				// Every remaining column sits behind a forbidden edge:
				// the current row has no feasible augmenting path.
				break
			}

			pathCost = lowest
			inTreeCol[next] = true
			if row4col[next] == Unassigned {
				sink = next // reached a free column: augmenting path found
			} else {
				i = row4col[next] // continue the tree through its owner
			}
		}

		if sink == Unassigned {
			if !partial {
				return nil, ErrInfeasible
			}
			// Leave col4row[cur] == Unassigned; the tree built so far did
			// not augment, so duals and matching are untouched.
			if o.OnRow != nil {
				o.OnRow(cur+1, m)
			}
			continue
		}

		// Dual update over the scanned tree keeps reduced costs
		// non-negative for the next pass.
		u[cur] += pathCost
		for i = 0; i < m; i++ {
			if inTreeRow[i] && i != cur {
				u[i] += pathCost - shortest[col4row[i]]
			}
		}
		for j = 0; j < n; j++ {
			if inTreeCol[j] {
				v[j] -= pathCost - shortest[j]
			}
		}

		// Flip the alternating path back from the sink to the current row.
		j = sink
		for {
			i = pred[j]
			row4col[j] = i
			prev := col4row[i]
			col4row[i] = j
			if i == cur {
				break
			}
			j = prev
		}

		if o.OnRow != nil {
			o.OnRow(cur+1, m)
		}
	}

	return col4row, nil
}

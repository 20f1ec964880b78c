package match

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pointmatch/assign"
	"github.com/katalvlaran/pointmatch/points"
)

// Match computes the optimal correspondence between two coordinate sets of
// arbitrary relative size, honoring the configured maximum distance.
//
// a and b are n×d coordinate matrices sharing the same column count; a nil
// matrix is the empty set. The result refers to row indices of a and b in
// the caller's argument order, regardless of which side was larger.
//
// Algorithm Outline:
//  1. Validate the threshold, shapes and coordinate finiteness — eagerly,
//     before any assignment work.
//  2. Register the process-wide solve ticket (released on every exit path).
//  3. Orientation-normalize: if rows(a) > rows(b), solve with the roles
//     swapped and transpose the result labels on return.
//  4. Pre-match bit-identical coordinates at zero cost (unless disabled).
//  5. Solve the residual rows≤cols assignment; with a threshold, pairs
//     beyond the cap are forbidden edges and the solve is maximum
//     cardinality over the feasible sub-graph.
//  6. Merge, classify and sort: unmatched rows into MissingA, unused
//     columns into MissingB, pairs by A index ascending.
//
// Errors: ErrBadThreshold, ErrDimensionMismatch, ErrNonFinite,
// ErrSolveInProgress.
func Match(a, b *mat.Dense, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if math.IsNaN(o.Threshold) || o.Threshold < 0 {
		return nil, ErrBadThreshold
	}
	if a != nil && b != nil {
		_, ca := a.Dims()
		_, cb := b.Dims()
		if ca != cb {
			return nil, ErrDimensionMismatch
		}
	}
	if err := validateCoords(a); err != nil {
		return nil, err
	}
	if err := validateCoords(b); err != nil {
		return nil, err
	}

	t, err := solveState().begin(o.Progress)
	if err != nil {
		return nil, err
	}
	defer t.release()

	if numRows(a) > numRows(b) {
		res, err := matchOriented(b, a, o, t)
		if err != nil {
			return nil, err
		}
		return res.transpose(), nil
	}
	return matchOriented(a, b, o, t)
}

// MatchSets matches two typed point sets. It is a thin wrapper over Match
// and the points adapter; the result refers to Set indices.
func MatchSets(a, b points.Set, opts ...Option) (*Result, error) {
	return Match(a.Matrix(), b.Matrix(), opts...)
}

// matchOriented is the canonical rows≤cols engine. It assumes validated
// inputs with numRows(a) ≤ numRows(b) and an acquired ticket, keeping the
// algorithm itself free of order-dependent branching.
func matchOriented(a, b *mat.Dense, o Options, t *ticket) (*Result, error) {
	na := numRows(a)
	nb := numRows(b)

	res := &Result{MissingA: []int{}, Pairs: [][2]int{}, MissingB: []int{}}
	if na == 0 {
		res.MissingB = indexRange(nb)
		return res, nil
	}

	// Zero-cost pairs are set aside before the expensive solve. They are
	// feasible under any threshold (0 ≤ cap).
	var pre [][2]int
	restA := indexRange(na)
	restB := indexRange(nb)
	if o.PreMatch {
		pre, restA, restB = preMatch(a, b)
	}

	if len(restA) == 0 {
		res.Pairs = pre
		res.MissingB = restB
		return res, nil
	}

	cost, err := costMatrix(a, b, restA, restB)
	if err != nil {
		return nil, err
	}

	bounded := !math.IsInf(o.Threshold, 1)
	if bounded {
		// Beyond-cap pairs become forbidden edges. A pair at exactly the
		// cap remains feasible.
		r, c := cost.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if cost.At(i, j) > o.Threshold {
					cost.Set(i, j, math.Inf(1))
				}
			}
		}
	}

	onRow := assign.WithOnRow(func(done, total int) { t.step(done, total) })
	var cols []int
	if bounded {
		cols, err = assign.SolveMaxCardinality(cost, onRow)
	} else {
		cols, err = assign.Solve(cost, onRow)
	}
	if err != nil {
		return nil, err
	}

	usedB := make([]bool, nb)
	for _, ab := range pre {
		usedB[ab[1]] = true
	}
	pairs := append([][2]int{}, pre...)
	for i, j := range cols {
		if j == assign.Unassigned {
			res.MissingA = append(res.MissingA, restA[i])
			continue
		}
		pairs = append(pairs, [2]int{restA[i], restB[j]})
		usedB[restB[j]] = true
	}
	for j := 0; j < nb; j++ {
		if !usedB[j] {
			res.MissingB = append(res.MissingB, j)
		}
	}

	sortPairs(pairs)
	res.Pairs = pairs
	return res, nil
}

// transpose swaps the roles of A and B in r, restoring the caller's
// argument order after an internal orientation swap.
func (r *Result) transpose() *Result {
	pairs := make([][2]int, len(r.Pairs))
	for i, ab := range r.Pairs {
		pairs[i] = [2]int{ab[1], ab[0]}
	}
	sortPairs(pairs)
	return &Result{MissingA: r.MissingB, Pairs: pairs, MissingB: r.MissingA}
}

// numRows treats a nil matrix as the empty point set.
func numRows(m *mat.Dense) int {
	if m == nil {
		return 0
	}
	r, _ := m.Dims()
	return r
}

// indexRange returns [0, 1, …, n-1].
func indexRange(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// sortPairs orders pairs by A index ascending. A indices are unique within
// one result, so the order is total.
func sortPairs(pairs [][2]int) {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })
}

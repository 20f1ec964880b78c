// Package match produces an optimal one-to-one correspondence between two
// sets of d-dimensional coordinates under an optional maximum-distance
// constraint.
//
// Overview:
//
//   - The cost of pairing two points is their Euclidean distance, computed
//     pairwise for all of A against all of B.
//   - Match accepts arbitrary relative sizes: when |A| > |B| the roles are
//     swapped internally and the result labels inverted, so callers never
//     pre-sort by size.
//   - Bit-identical coordinate pairs are pre-matched at zero cost before
//     the O(n³)-class solve (default on). This is strictly a speed path:
//     disabling it never changes the total optimal cost and, absent cost
//     ties, never changes the pairing.
//   - With a threshold, any pair farther apart than the cap is infeasible,
//     not merely expensive: the solver matches over the feasible sub-graph
//     with maximum cardinality, leaving a point with no feasible partner
//     unmatched instead of forcing a full assignment and discarding
//     over-cap pairs afterwards.
//
// Result model:
//
//	(MissingA, Pairs, MissingB) — every A index appears exactly once across
//	Pairs ∪ MissingA, symmetric for B; Pairs is sorted by A index, the
//	missing lists ascending; every pair's distance ≤ the threshold when one
//	is supplied.
//
// Concurrency:
//
//   - A solve is single-threaded and synchronous: it runs to completion on
//     the calling goroutine. Progress callbacks fire synchronously from
//     inside the solver's own iteration; there is no background goroutine.
//   - Progress reporting uses one shared mutable slot, so at most one solve
//     may be active process-wide. A second concurrent call fails
//     immediately with ErrSolveInProgress rather than queuing. There is no
//     mid-solve cancellation; a caller unwilling to wait must not start a
//     solve.
//
// Error handling (sentinel errors), raised eagerly before any assignment
// work; ErrSolveInProgress is the only one observable mid-flight of another
// call:
//
//   - ErrDimensionMismatch: the two coordinate matrices differ in column
//     count.
//   - ErrNonFinite:         a NaN/±Inf coordinate, or a pairwise distance
//     that overflows to +Inf.
//   - ErrBadThreshold:      a NaN or negative threshold.
//   - ErrSolveInProgress:   another solve is already registered.
//
// API reference:
//
//	func Match(a, b *mat.Dense, opts ...Option) (*Result, error)
//	func MatchSets(a, b points.Set, opts ...Option) (*Result, error)
//
//	  - a, b:  n×d coordinate matrices (nil = empty set) or typed Sets.
//	  - opts:  functional options:
//	      • WithThreshold(d): maximum pairwise distance (default unbounded).
//	      • WithoutPreMatch(): disable exact-duplicate pre-matching.
//	      • WithProgress(fn): fn(done, total) per solver row, synchronous.
//
// Example usage:
//
//	res, err := match.Match(a, b, match.WithThreshold(5))
//	if err != nil {
//	    // handle ErrSolveInProgress, ErrNonFinite, ...
//	}
//	fmt.Println(res.MissingA, res.Pairs, res.MissingB)
package match

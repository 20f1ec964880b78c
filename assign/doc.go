// Package assign provides a precise, high-performance minimum-cost bipartite
// assignment solver for dense rows≤cols cost matrices.
//
// Overview:
//
//   - Solve computes a full assignment of every row to a distinct column
//     minimizing total cost, via successive shortest augmenting paths with
//     dual potentials (the Jonker–Volgenant family, same class as the
//     classical Hungarian method).
//   - SolveMaxCardinality is the forbidden-edge variant: +Inf entries are
//     infeasible and never traversed. Rows with no feasible augmenting path
//     are left Unassigned, and the remaining matching uses as many feasible
//     edges as possible.
//   - Both solvers share one canonical core; they differ only in validation
//     and in how an unreachable row is treated.
//
// The solvers deliberately know nothing about distance caps: translating
// "cost too high" into +Inf entries is the caller's concern. Encoding
// forbidden edges as large-but-finite penalties is exactly what this split
// avoids — a finite penalty can dominate the numerics and manufacture
// false ties.
//
// Performance and complexity:
//
//   - Time:  O(m·n²) for an m×n matrix, m ≤ n — O(n³) worst case.
//   - Each row triggers one Dijkstra pass over columns with dual
//     potentials keeping reduced costs non-negative.
//   - Space: O(m·n) for the flattened cost copy, O(n) per-pass scratch.
//
// Determinism:
//
//   - Rows are processed in caller order. The column scan moves only on
//     strict improvement in ascending index order, so ties in reduced cost
//     resolve to the lowest column index. Equal-cost optima therefore
//     resolve the same way on every run.
//
// Error handling (sentinel errors), all raised before any assignment work:
//
//   - ErrNilMatrix:          the cost matrix is nil.
//   - ErrDimensionMismatch:  more rows than columns; transpose first.
//   - ErrNonFinite:          NaN anywhere, or an infinity the chosen solver
//     does not admit (Solve admits none; SolveMaxCardinality admits +Inf).
//   - ErrNegativeCost:       a negative entry; distances are non-negative.
//   - ErrInfeasible:         Solve could not complete a full assignment.
//     Unreachable for validated finite inputs; kept as an invariant check.
//
// API reference:
//
//	func Solve(cost mat.Matrix, opts ...Option) ([]int, error)
//	func SolveMaxCardinality(cost mat.Matrix, opts ...Option) ([]int, error)
//
//	  - cost:  dense m×n matrix, m ≤ n, of non-negative costs.
//	  - opts:  functional options, currently:
//	      • WithOnRow(fn): fn(done, total) is invoked synchronously from
//	        inside the solver loop after each row is processed.
//	  - out:   length-m slice; out[i] is the column assigned to row i,
//	           or Unassigned (SolveMaxCardinality only).
package assign

package assign

import "errors"

// Sentinel errors returned by the assignment solvers.
var (
	// ErrNilMatrix indicates that a nil cost matrix was passed to a solver.
	ErrNilMatrix = errors.New("assign: cost matrix is nil")

	// ErrDimensionMismatch indicates a cost matrix with more rows than
	// columns. The canonical solver works on rows ≤ cols only; transpose
	// the problem before calling.
	ErrDimensionMismatch = errors.New("assign: cost matrix must have rows <= cols")

	// ErrNonFinite indicates a NaN entry, or an infinite entry that the
	// chosen solver does not admit. A non-finite cost cannot be optimized
	// over.
	ErrNonFinite = errors.New("assign: non-finite cost entry")

	// ErrNegativeCost indicates a negative cost entry. The solvers operate
	// on distances, which are non-negative by construction.
	ErrNegativeCost = errors.New("assign: negative cost entry")

	// ErrInfeasible indicates that Solve could not assign every row. It is
	// unreachable for validated all-finite inputs and exists as an
	// invariant check.
	ErrInfeasible = errors.New("assign: no feasible full assignment")
)

// Unassigned marks a row for which SolveMaxCardinality found no feasible
// column.
const Unassigned = -1

// Options configures the assignment solvers.
//
// OnRow — if non-nil, invoked synchronously from inside the solver loop
// after each row has been processed, as fn(done, total) with
// 1 ≤ done ≤ total. There is no background goroutine; the callback runs on
// the solving goroutine and blocks it.
type Options struct {
	OnRow func(done, total int)
}

// Option represents a functional option for configuring a solver call.
type Option func(*Options)

// WithOnRow installs a synchronous per-row progress hook.
func WithOnRow(fn func(done, total int)) Option {
	return func(o *Options) {
		o.OnRow = fn
	}
}

// DefaultOptions returns the zero configuration: no progress hook.
func DefaultOptions() Options {
	return Options{}
}

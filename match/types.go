package match

import (
	"errors"
	"math"
)

// Sentinel errors returned by the matching façade.
var (
	// ErrDimensionMismatch indicates that the two coordinate matrices do
	// not share the same column count.
	ErrDimensionMismatch = errors.New("match: coordinate matrices must share the same column count")

	// ErrNonFinite indicates a NaN or infinite coordinate, or a derived
	// pairwise distance that overflowed to +Inf. Non-finite costs cannot be
	// optimized over, so they are rejected before any solve begins.
	ErrNonFinite = errors.New("match: non-finite coordinate or distance")

	// ErrBadThreshold indicates a NaN or negative maximum distance.
	ErrBadThreshold = errors.New("match: threshold must be non-negative and not NaN")

	// ErrSolveInProgress indicates that another solve is already registered
	// in the process-wide progress slot. Concurrent solves are rejected,
	// never queued.
	ErrSolveInProgress = errors.New("match: another solve is already in progress")
)

// Result is the classification triple produced by a match. All three parts
// refer to indices in the caller's original argument order: MissingA and
// MissingB list unmatched indices ascending, Pairs holds [aIndex, bIndex]
// pairs sorted by A index. Every A index appears exactly once across
// Pairs ∪ MissingA, and symmetrically for B.
type Result struct {
	MissingA []int
	Pairs    [][2]int
	MissingB []int
}

// Options configures a match.
//
// Threshold — maximum permissible pairwise distance for a pair to count as
// a valid match. Pairs farther apart are infeasible, not merely expensive.
// Default +Inf (unbounded).
//
// PreMatch — pre-pair bit-identical coordinates at zero cost before the
// expensive solve. Default true; purely a speed optimization.
//
// Progress — if non-nil, invoked synchronously as fn(done, total) from
// inside the solver's iteration, once per processed row of the residual
// problem.
type Options struct {
	Threshold float64
	PreMatch  bool
	Progress  func(done, total int)
}

// Option represents a functional option for configuring Match.
type Option func(*Options)

// WithThreshold caps the pairwise distance of reported pairs at d.
// A pair at exactly d is still feasible.
func WithThreshold(d float64) Option {
	return func(o *Options) {
		o.Threshold = d
	}
}

// WithoutPreMatch disables exact-duplicate pre-matching. The optimum is
// unchanged; only speed suffers.
func WithoutPreMatch() Option {
	return func(o *Options) {
		o.PreMatch = false
	}
}

// WithProgress installs a synchronous progress callback.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// DefaultOptions returns the default configuration: unbounded threshold,
// pre-matching enabled, no progress callback.
func DefaultOptions() Options {
	return Options{
		Threshold: math.Inf(1),
		PreMatch:  true,
	}
}

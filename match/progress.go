package match

import "sync"

// progressState is the process-wide slot tracking the one active solve.
// Progress reporting shares a single mutable slot rather than per-call
// state, so at most one solve may be registered at a time; a second caller
// is rejected, never queued.
type progressState struct {
	mu     sync.Mutex
	active *ticket
}

// The singleton is created lazily on first use.
var (
	stateOnce sync.Once
	state     *progressState
)

func solveState() *progressState {
	stateOnce.Do(func() {
		state = &progressState{}
	})
	return state
}

// ticket is the explicit handle registered for the duration of one solve.
// It must be released on every exit path; Match defers release immediately
// after acquisition.
type ticket struct {
	done     int
	total    int
	progress func(done, total int)
}

// begin registers a new solve ticket, or fails with ErrSolveInProgress if
// one is already active.
func (s *progressState) begin(fn func(done, total int)) (*ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return nil, ErrSolveInProgress
	}
	t := &ticket{progress: fn}
	s.active = t
	return t, nil
}

// release frees the slot. Calling it more than once is safe: only the
// owning ticket clears the slot.
func (t *ticket) release() {
	s := solveState()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == t {
		s.active = nil
	}
}

// step records solver progress and forwards it to the user callback,
// synchronously on the solving goroutine.
func (t *ticket) step(done, total int) {
	t.done, t.total = done, total
	if t.progress != nil {
		t.progress(done, total)
	}
}

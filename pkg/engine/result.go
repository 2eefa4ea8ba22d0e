package engine

import (
	"time"
)

// Status describes how a solve ended.
type Status uint8

const (
	// StatusSolved means the returned move sequence reaches the goal.
	StatusSolved Status = iota
	// StatusExhausted means the frontier emptied without reaching the goal:
	// a proof of unsolvability within the explored space.
	StatusExhausted
	// StatusIterationLimit means the iteration ceiling was hit first.
	StatusIterationLimit
	// StatusTimeLimit means the wall-clock deadline was hit first.
	StatusTimeLimit
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusExhausted:
		return "exhausted"
	case StatusIterationLimit:
		return "iteration-limit"
	case StatusTimeLimit:
		return "time-limit"
	}
	return "unknown"
}

// Result is the normalized outcome of one solve invocation, regardless of
// which algorithm produced it.
type Result struct {
	Status     Status
	Moves      []Direction   // Solution moves; nil unless Status is StatusSolved.
	Iterations int           // Node expansions consumed, including partial progress on failure.
	Duration   time.Duration // Wall-clock time spent inside the solver.
}

// Solved reports whether the solve succeeded.
func (r *Result) Solved() bool {
	return r.Status == StatusSolved
}

// Progress is a periodic snapshot of a running solve, delivered through
// Options.Progress. Frontier and Visited are zero for the stochastic
// solver, which keeps neither.
type Progress struct {
	Iterations int
	Frontier   int
	Visited    int
	BestH      int // Lowest heuristic estimate seen so far; -1 for BFS.
	Elapsed    time.Duration
}

// ProgressFunc receives Progress snapshots. It is called synchronously from
// the solver loop and must return quickly.
type ProgressFunc func(Progress)

package engine

import (
	"errors"
	"fmt"
	"time"
)

// Algorithm selects which solver a Solve call dispatches to.
type Algorithm string

const (
	// AlgorithmBFS is exhaustive breadth-first search. Optimal: a returned
	// solution is a shortest move sequence.
	AlgorithmBFS Algorithm = "bfs"
	// AlgorithmAStar is heuristic best-first search with dynamic dock
	// reassignment. Fast, near-optimal, not guaranteed shortest.
	AlgorithmAStar Algorithm = "astar"
	// AlgorithmAnneal is annealed stochastic local search for state spaces
	// too large for exhaustive or priority search. Non-deterministic unless
	// seeded.
	AlgorithmAnneal Algorithm = "sa"
)

// Algorithms lists the supported solvers.
var Algorithms = []Algorithm{AlgorithmBFS, AlgorithmAStar, AlgorithmAnneal}

// ParseAlgorithm converts a name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmBFS, AlgorithmAStar, AlgorithmAnneal:
		return Algorithm(s), nil
	}
	return "", fmt.Errorf("unknown algorithm %q (want bfs, astar or sa)", s)
}

// Configuration errors returned by Solve before any search starts.
var (
	ErrBoxDockMismatch = errors.New("box count does not match dock count")
	ErrInitialDeadlock = errors.New("initial state is already deadlocked")
)

// Options control a solve. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Algorithm Algorithm

	// TimeLimit is the wall-clock deadline. Zero means no deadline.
	TimeLimit time.Duration
	// MaxIterations caps node expansions. Zero means no ceiling.
	MaxIterations int

	// NoDockReassignment freezes boxes that rest on docks: the best-first
	// solver will not generate pushes that move a docked box. Off by
	// default, deliberately. Treating docked boxes as finished provably
	// loses solutions on boards where boxes must be shuffled between docks;
	// the flag exists so that behavior stays testable.
	NoDockReassignment bool

	// Seed fixes the stochastic solver's random source. Zero seeds from the
	// clock.
	Seed int64

	// Progress, when set, receives a snapshot every ProgressEvery
	// expansions.
	Progress      ProgressFunc
	ProgressEvery int
}

// DefaultOptions returns the per-algorithm defaults: 60s wall clock and an
// iteration ceiling scaled to how cheap the algorithm's iterations are.
func DefaultOptions(a Algorithm) Options {
	opts := Options{
		Algorithm:     a,
		TimeLimit:     60 * time.Second,
		ProgressEvery: 5000,
	}
	switch a {
	case AlgorithmBFS:
		opts.MaxIterations = 50000
	case AlgorithmAStar:
		opts.MaxIterations = 75000
	case AlgorithmAnneal:
		opts.MaxIterations = 100000
	}
	return opts
}

// budget enforces the wall-clock deadline and iteration ceiling uniformly
// across solvers. Solvers call spend once per node expansion, so
// cancellation latency is bounded by the cost of expanding one node.
type budget struct {
	start       time.Time
	deadline    time.Time
	hasDeadline bool
	maxIter     int
	iterations  int
	overrun     Status
}

func newBudget(opts Options) *budget {
	b := &budget{
		start:   time.Now(),
		maxIter: opts.MaxIterations,
	}
	if opts.TimeLimit > 0 {
		b.deadline = b.start.Add(opts.TimeLimit)
		b.hasDeadline = true
	}
	return b
}

// spend accounts for one node expansion. It returns false once a bound is
// exceeded; the solver must then stop expanding and return.
func (b *budget) spend() bool {
	if b.maxIter > 0 && b.iterations >= b.maxIter {
		b.overrun = StatusIterationLimit
		return false
	}
	if b.hasDeadline && time.Now().After(b.deadline) {
		b.overrun = StatusTimeLimit
		return false
	}
	b.iterations++
	return true
}

// exceeded returns which bound was hit.
func (b *budget) exceeded() Status {
	return b.overrun
}

func (b *budget) elapsed() time.Duration {
	return time.Since(b.start)
}

// Solve runs the selected algorithm on the puzzle and normalizes its
// outcome into a Result.
//
// Preconditions are validated before dispatch: the box count must equal the
// dock count and the initial state must be structurally valid and not
// already deadlocked. Violations are configuration errors surfaced to the
// caller, never search failures, and are never retried internally.
func Solve(l *Layout, start State, opts Options) (*Result, error) {
	if opts.Algorithm == "" {
		opts.Algorithm = AlgorithmBFS
	}
	if opts.Progress != nil && opts.ProgressEvery <= 0 {
		opts.ProgressEvery = 5000
	}

	if len(start.Boxes) != l.DockCount() {
		return nil, fmt.Errorf("%w: %d boxes, %d docks", ErrBoxDockMismatch, len(start.Boxes), l.DockCount())
	}
	if err := start.Validate(l); err != nil {
		return nil, fmt.Errorf("invalid initial state: %w", err)
	}
	if !start.Solved(l) && Deadlocked(l, start) {
		return nil, ErrInitialDeadlock
	}

	b := newBudget(opts)
	var res *Result
	switch opts.Algorithm {
	case AlgorithmBFS:
		res = solveBFS(l, start, b, opts)
	case AlgorithmAStar:
		res = solveAStar(l, start, b, opts)
	case AlgorithmAnneal:
		res = solveAnneal(l, start, b, opts)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", opts.Algorithm)
	}
	res.Duration = b.elapsed()
	return res, nil
}

package engine

import (
	"reflect"
	"testing"
	"time"
)

func TestBFSSolvesShortCorridor(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})
	res, err := Solve(l, s, DefaultOptions(AlgorithmBFS))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("status = %v, want solved", res.Status)
	}
	if want := []Direction{Right}; !reflect.DeepEqual(res.Moves, want) {
		t.Errorf("moves = %v, want %v", res.Moves, want)
	}
	if res.Iterations > 5 {
		t.Errorf("iterations = %d, want at most 5", res.Iterations)
	}
}

func TestBFSFindsShortestSolution(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#######",
		"#@ $ .#",
		"#######",
	})
	res, err := Solve(l, s, DefaultOptions(AlgorithmBFS))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !res.Solved() {
		t.Fatalf("status = %v, want solved", res.Status)
	}
	if len(res.Moves) != 3 {
		t.Errorf("solution length = %d, want 3", len(res.Moves))
	}
	final, err := Replay(l, s, res.Moves)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !final.Solved(l) {
		t.Error("replayed solution does not reach goal")
	}
}

func TestBFSAlreadySolved(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#@* #",
		"#####",
	})
	res, err := Solve(l, s, DefaultOptions(AlgorithmBFS))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("status = %v, want solved", res.Status)
	}
	if len(res.Moves) != 0 {
		t.Errorf("moves = %v, want empty", res.Moves)
	}
	if res.Iterations > 1 {
		t.Errorf("iterations = %d, want at most 1", res.Iterations)
	}
}

func TestBFSDeterministic(t *testing.T) {
	lines := []string{
		"######",
		"#    #",
		"# $$ #",
		"# .. #",
		"#@   #",
		"######",
	}
	l, s := mustBoard(t, lines)
	first, err := Solve(l, s, DefaultOptions(AlgorithmBFS))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	second, err := Solve(l, s, DefaultOptions(AlgorithmBFS))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !reflect.DeepEqual(first.Moves, second.Moves) {
		t.Errorf("runs differ: %v vs %v", first.Moves, second.Moves)
	}
	if first.Iterations != second.Iterations {
		t.Errorf("iteration counts differ: %d vs %d", first.Iterations, second.Iterations)
	}
}

func TestBFSRespectsIterationCeiling(t *testing.T) {
	l, s := mustBoard(t, []string{
		"########",
		"#      #",
		"# $$   #",
		"#  ..  #",
		"#@     #",
		"########",
	})
	opts := DefaultOptions(AlgorithmBFS)
	opts.MaxIterations = 10
	opts.TimeLimit = 0
	res, err := Solve(l, s, opts)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Status != StatusIterationLimit {
		t.Fatalf("status = %v, want iteration limit", res.Status)
	}
	if res.Iterations > 10 {
		t.Errorf("iterations = %d, want at most 10", res.Iterations)
	}
	if len(res.Moves) != 0 {
		t.Errorf("unsolved result carries moves: %v", res.Moves)
	}
}

func TestBFSUnsolvableExhausts(t *testing.T) {
	// The box can only be pushed into corners; every line of play dead-ends
	// and the reachable space is finite.
	l, s := mustBoard(t, []string{
		"#####",
		"#@$ #",
		"#  .#",
		"#####",
	})
	opts := DefaultOptions(AlgorithmBFS)
	opts.TimeLimit = time.Minute
	res, err := Solve(l, s, opts)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Status != StatusExhausted {
		t.Fatalf("status = %v, want exhausted", res.Status)
	}
}

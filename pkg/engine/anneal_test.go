package engine

import (
	"reflect"
	"testing"
)

func TestAnnealSolvesCorridor(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#######",
		"#@ $ .#",
		"#######",
	})
	opts := DefaultOptions(AlgorithmAnneal)
	opts.Seed = 1
	res, err := Solve(l, s, opts)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !res.Solved() {
		t.Fatalf("status = %v after %d iterations, want solved", res.Status, res.Iterations)
	}
	final, err := Replay(l, s, res.Moves)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !final.Solved(l) {
		t.Error("replayed solution does not reach goal")
	}
}

func TestAnnealSeededIsDeterministic(t *testing.T) {
	l, s := mustBoard(t, []string{
		"######",
		"#    #",
		"# $$ #",
		"# .. #",
		"#@   #",
		"######",
	})
	opts := DefaultOptions(AlgorithmAnneal)
	opts.Seed = 42
	first, err := Solve(l, s, opts)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	second, err := Solve(l, s, opts)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if first.Status != second.Status {
		t.Fatalf("statuses differ: %v vs %v", first.Status, second.Status)
	}
	if !reflect.DeepEqual(first.Moves, second.Moves) {
		t.Errorf("runs differ: %v vs %v", first.Moves, second.Moves)
	}
	if first.Iterations != second.Iterations {
		t.Errorf("iteration counts differ: %d vs %d", first.Iterations, second.Iterations)
	}
}

func TestAnnealBudgetBound(t *testing.T) {
	l, s := mustBoard(t, []string{
		"########",
		"#      #",
		"# $ $  #",
		"#  . . #",
		"#@     #",
		"########",
	})
	opts := DefaultOptions(AlgorithmAnneal)
	opts.Seed = 3
	opts.MaxIterations = 50
	opts.TimeLimit = 0
	res, err := Solve(l, s, opts)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Iterations > 50 {
		t.Errorf("iterations = %d, want at most 50", res.Iterations)
	}
	if !res.Solved() && res.Status != StatusIterationLimit {
		t.Errorf("status = %v, want solved or iteration limit", res.Status)
	}
}

func TestAnnealAlreadySolved(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#@* #",
		"#####",
	})
	opts := DefaultOptions(AlgorithmAnneal)
	opts.Seed = 1
	res, err := Solve(l, s, opts)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Status != StatusSolved || len(res.Moves) != 0 {
		t.Errorf("got status %v moves %v, want immediate empty solution", res.Status, res.Moves)
	}
}

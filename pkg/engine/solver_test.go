package engine

import (
	"errors"
	"testing"
	"time"
)

func TestSolveRejectsBoxDockMismatch(t *testing.T) {
	l, s := mustBoard(t, []string{
		"######",
		"#@$..#",
		"######",
	})
	_, err := Solve(l, s, DefaultOptions(AlgorithmBFS))
	if !errors.Is(err, ErrBoxDockMismatch) {
		t.Fatalf("err = %v, want ErrBoxDockMismatch", err)
	}
}

func TestSolveRejectsInitialDeadlock(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#$ @#",
		"#  .#",
		"#####",
	})
	for _, a := range Algorithms {
		_, err := Solve(l, s, DefaultOptions(a))
		if !errors.Is(err, ErrInitialDeadlock) {
			t.Errorf("%s: err = %v, want ErrInitialDeadlock", a, err)
		}
	}
}

func TestSolveRejectsInvalidState(t *testing.T) {
	l, base := mustBoard(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})
	s := base.Clone()
	s.Boxes[0] = Pos{0, 0} // wall cell
	if _, err := Solve(l, s, DefaultOptions(AlgorithmBFS)); err == nil {
		t.Fatal("box on wall accepted")
	}
}

func TestSolveRejectsUnknownAlgorithm(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})
	opts := DefaultOptions(AlgorithmBFS)
	opts.Algorithm = "dfs"
	if _, err := Solve(l, s, opts); err == nil {
		t.Fatal("unknown algorithm accepted")
	}
}

func TestSolveDefaultsToBFS(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})
	res, err := Solve(l, s, Options{MaxIterations: 100})
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !res.Solved() {
		t.Errorf("status = %v, want solved", res.Status)
	}
}

func TestSolveTimeLimit(t *testing.T) {
	l, s := mustBoard(t, []string{
		"##########",
		"#        #",
		"# $ $ $  #",
		"#        #",
		"# . . .  #",
		"#@       #",
		"##########",
	})
	opts := DefaultOptions(AlgorithmBFS)
	opts.TimeLimit = time.Nanosecond
	opts.MaxIterations = 0
	start := time.Now()
	res, err := Solve(l, s, opts)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Status != StatusTimeLimit {
		t.Fatalf("status = %v, want time limit", res.Status)
	}
	// Cancellation latency is bounded by one node expansion.
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("solve returned after %v, want prompt cancellation", elapsed)
	}
	if res.Duration <= 0 {
		t.Error("result duration not recorded")
	}
}

func TestSolveReportsProgress(t *testing.T) {
	l, s := mustBoard(t, []string{
		"######",
		"#    #",
		"# $$ #",
		"# .. #",
		"#@   #",
		"######",
	})
	var calls int
	opts := DefaultOptions(AlgorithmBFS)
	opts.ProgressEvery = 1
	opts.Progress = func(p Progress) {
		calls++
		if p.Iterations <= 0 {
			t.Errorf("progress iterations = %d", p.Iterations)
		}
	}
	if _, err := Solve(l, s, opts); err != nil {
		t.Fatalf("solve: %v", err)
	}
	if calls == 0 {
		t.Error("progress callback never invoked")
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms {
		got, err := ParseAlgorithm(string(a))
		if err != nil || got != a {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", a, got, err)
		}
	}
	if _, err := ParseAlgorithm("dijkstra"); err == nil {
		t.Error("ParseAlgorithm accepted unknown name")
	}
}

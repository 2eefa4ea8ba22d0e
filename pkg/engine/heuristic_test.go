package engine

import (
	"testing"
)

func TestHeuristicZeroAtGoal(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#@**#",
		"#####",
	})
	if h := heuristic(l, s); h != 0 {
		t.Errorf("heuristic at goal = %d, want 0", h)
	}
}

func TestHeuristicSingleBoxDistance(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#######",
		"#@ $ .#",
		"#######",
	})
	if h := heuristic(l, s); h != 2 {
		t.Errorf("heuristic = %d, want 2", h)
	}
}

func TestHeuristicGreedyAssignment(t *testing.T) {
	// Two boxes, two docks on the same row. Each box claims the dock beside
	// it, one apiece.
	l, s := mustBoard(t, []string{
		"########",
		"#$.  $.#",
		"#@     #",
		"########",
	})
	if h := heuristic(l, s); h != 2 {
		t.Errorf("heuristic = %d, want 2", h)
	}
}

func TestHeuristicDistinctDocksPerBox(t *testing.T) {
	// Both boxes sit nearest the same dock; one must settle for the far
	// dock, so the estimate is 1 + 4 rather than 1 + 1.
	l, s := mustBoard(t, []string{
		"#########",
		"#$.$   .#",
		"#@      #",
		"#########",
	})
	if h := heuristic(l, s); h != 5 {
		t.Errorf("heuristic = %d, want 5", h)
	}
}

func TestHeuristicSeesOccupiedDock(t *testing.T) {
	// The docked box blocks its dock: the free box must be priced against
	// the remaining dock, not the occupied one beside it.
	l, s := mustBoard(t, []string{
		"#######",
		"#$*  .#",
		"#@    #",
		"#######",
	})
	if h := heuristic(l, s); h != 4 {
		t.Errorf("heuristic = %d, want 4", h)
	}
}

func TestHeuristicDecreasesTowardGoal(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#######",
		"#@ $ .#",
		"#######",
	})
	before := heuristic(l, s)
	s, err := Replay(l, s, []Direction{Right, Right})
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	after := heuristic(l, s)
	if after >= before {
		t.Errorf("heuristic did not decrease after a push toward the dock: %d -> %d", before, after)
	}
}

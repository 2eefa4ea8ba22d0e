package engine

import (
	"testing"
)

// mustBoard parses an ASCII fixture into a layout and initial state.
// Chars: '#' wall, ' ' floor, '.' dock, '@' player, '+' player on dock,
// '$' box, '*' box on dock.
func mustBoard(t *testing.T, lines []string) (*Layout, State) {
	t.Helper()
	var walls, docks, boxes []Pos
	player := Pos{X: -1, Y: -1}
	width := 0
	for _, row := range lines {
		if len(row) > width {
			width = len(row)
		}
	}
	for y, row := range lines {
		for x, ch := range row {
			p := Pos{X: x, Y: y}
			switch ch {
			case '#':
				walls = append(walls, p)
			case '.':
				docks = append(docks, p)
			case '@':
				player = p
			case '+':
				player = p
				docks = append(docks, p)
			case '$':
				boxes = append(boxes, p)
			case '*':
				boxes = append(boxes, p)
				docks = append(docks, p)
			}
		}
	}
	l, err := NewLayout(width, len(lines), walls, docks)
	if err != nil {
		t.Fatalf("NewLayout failed: %v", err)
	}
	if player.X < 0 {
		t.Fatal("fixture has no player")
	}
	return l, NewState(player, boxes)
}

func TestLayoutWallAndDockLookup(t *testing.T) {
	l, _ := mustBoard(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})
	if !l.Wall(Pos{0, 0}) {
		t.Error("expected wall at (0,0)")
	}
	if l.Wall(Pos{1, 1}) {
		t.Error("unexpected wall at (1,1)")
	}
	if !l.Dock(Pos{3, 1}) {
		t.Error("expected dock at (3,1)")
	}
	if l.Dock(Pos{2, 1}) {
		t.Error("unexpected dock at (2,1)")
	}
	// Out-of-bounds cells count as walls, never docks.
	if !l.Wall(Pos{-1, 0}) || !l.Wall(Pos{0, 99}) {
		t.Error("out-of-bounds cells should be walls")
	}
	if l.Dock(Pos{-1, 0}) {
		t.Error("out-of-bounds cell should not be a dock")
	}
}

func TestNewLayoutRejectsDockOnWall(t *testing.T) {
	_, err := NewLayout(3, 3, []Pos{{1, 1}}, []Pos{{1, 1}})
	if err == nil {
		t.Fatal("expected error for dock on wall cell")
	}
}

func TestStateCanonicalBoxOrder(t *testing.T) {
	s1 := NewState(Pos{1, 1}, []Pos{{3, 2}, {1, 2}, {2, 1}})
	s2 := NewState(Pos{1, 1}, []Pos{{2, 1}, {3, 2}, {1, 2}})
	if len(s1.Boxes) != 3 || len(s2.Boxes) != 3 {
		t.Fatal("boxes lost during construction")
	}
	for i := range s1.Boxes {
		if s1.Boxes[i] != s2.Boxes[i] {
			t.Fatalf("box order differs at %d: %v vs %v", i, s1.Boxes, s2.Boxes)
		}
	}
}

func TestStateKeyIgnoresBoxOrdering(t *testing.T) {
	l, _ := mustBoard(t, []string{
		"######",
		"#@$$.#",
		"#  . #",
		"######",
	})
	s1 := NewState(Pos{1, 1}, []Pos{{2, 1}, {3, 1}})
	s2 := NewState(Pos{1, 1}, []Pos{{3, 1}, {2, 1}})
	if s1.Key(l) != s2.Key(l) {
		t.Error("canonical keys differ for identical placements")
	}
	s3 := NewState(Pos{1, 2}, []Pos{{2, 1}, {3, 1}})
	if s1.Key(l) == s3.Key(l) {
		t.Error("canonical keys equal for different player cells")
	}
}

func TestSolvedPredicate(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#@* #",
		"#####",
	})
	if !s.Solved(l) {
		t.Error("box on dock should satisfy the goal predicate")
	}

	l2, s2 := mustBoard(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})
	if s2.Solved(l2) {
		t.Error("box off dock should not satisfy the goal predicate")
	}
}

func TestValidate(t *testing.T) {
	l, s := mustBoard(t, []string{
		"#####",
		"#@$.#",
		"#####",
	})
	if err := s.Validate(l); err != nil {
		t.Errorf("valid state rejected: %v", err)
	}

	bad := NewState(Pos{0, 0}, s.Boxes)
	if err := bad.Validate(l); err == nil {
		t.Error("player inside wall not rejected")
	}

	stacked := NewState(Pos{1, 1}, []Pos{{2, 1}, {2, 1}})
	if err := stacked.Validate(l); err == nil {
		t.Error("stacked boxes not rejected")
	}
}

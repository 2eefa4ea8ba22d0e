package engine

import (
	"fmt"
	"sort"

	"github.com/yourusername/sokoengine/internal/statekey"
)

// Pos is a cell coordinate. X grows rightward, Y grows downward.
type Pos struct {
	X, Y int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Layout is the static part of a puzzle: dimensions, walls and docks. It
// never changes during a solve, so a single Layout is shared by every state
// derived from it.
type Layout struct {
	Width  int
	Height int

	walls    []bool
	docks    []bool
	dockList []Pos
}

// NewLayout builds a layout from explicit wall and dock cells. Docks must
// lie on non-wall cells and everything must be in bounds.
func NewLayout(width, height int, walls, docks []Pos) (*Layout, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", width, height)
	}
	if width*height > statekey.MaxCells {
		return nil, fmt.Errorf("board %dx%d exceeds %d cells", width, height, statekey.MaxCells)
	}
	l := &Layout{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
		docks:  make([]bool, width*height),
	}
	for _, p := range walls {
		if !l.InBounds(p) {
			return nil, fmt.Errorf("wall %v out of bounds", p)
		}
		l.walls[l.index(p)] = true
	}
	for _, p := range docks {
		if !l.InBounds(p) {
			return nil, fmt.Errorf("dock %v out of bounds", p)
		}
		if l.walls[l.index(p)] {
			return nil, fmt.Errorf("dock %v on a wall cell", p)
		}
		if !l.docks[l.index(p)] {
			l.docks[l.index(p)] = true
			l.dockList = append(l.dockList, p)
		}
	}
	sortPositions(l.dockList)
	return l, nil
}

func (l *Layout) index(p Pos) int {
	return p.Y*l.Width + p.X
}

// InBounds reports whether p lies on the board.
func (l *Layout) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// Wall reports whether p is a wall. Out-of-bounds cells count as walls, so
// movement code needs no separate bounds check.
func (l *Layout) Wall(p Pos) bool {
	if !l.InBounds(p) {
		return true
	}
	return l.walls[l.index(p)]
}

// Dock reports whether p is a dock cell.
func (l *Layout) Dock(p Pos) bool {
	if !l.InBounds(p) {
		return false
	}
	return l.docks[l.index(p)]
}

// Docks returns the dock cells in row-major order. Callers must not modify
// the returned slice.
func (l *Layout) Docks() []Pos {
	return l.dockList
}

// DockCount returns the number of dock cells.
func (l *Layout) DockCount() int {
	return len(l.dockList)
}

// State is the dynamic part of a puzzle: the player cell and the box cells.
// Boxes are kept sorted in row-major order so that states reached by
// different move orders compare and key identically.
type State struct {
	Player Pos
	Boxes  []Pos
}

// NewState builds a state, copying and canonically ordering the boxes.
func NewState(player Pos, boxes []Pos) State {
	b := make([]Pos, len(boxes))
	copy(b, boxes)
	sortPositions(b)
	return State{Player: player, Boxes: b}
}

func sortPositions(ps []Pos) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].Y != ps[j].Y {
			return ps[i].Y < ps[j].Y
		}
		return ps[i].X < ps[j].X
	})
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	boxes := make([]Pos, len(s.Boxes))
	copy(boxes, s.Boxes)
	return State{Player: s.Player, Boxes: boxes}
}

// BoxAt reports whether a box occupies p.
func (s State) BoxAt(p Pos) bool {
	for _, b := range s.Boxes {
		if b == p {
			return true
		}
	}
	return false
}

// Solved reports whether every box rests on a dock. The player's cell does
// not matter.
func (s State) Solved(l *Layout) bool {
	for _, b := range s.Boxes {
		if !l.Dock(b) {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants: player and boxes on in-bounds
// non-wall cells, no two boxes stacked, player not inside a box.
func (s State) Validate(l *Layout) error {
	if l.Wall(s.Player) {
		return fmt.Errorf("player %v on a wall or out of bounds", s.Player)
	}
	seen := make(map[Pos]struct{}, len(s.Boxes))
	for _, b := range s.Boxes {
		if l.Wall(b) {
			return fmt.Errorf("box %v on a wall or out of bounds", b)
		}
		if _, dup := seen[b]; dup {
			return fmt.Errorf("two boxes on %v", b)
		}
		seen[b] = struct{}{}
		if b == s.Player {
			return fmt.Errorf("player and box share %v", b)
		}
	}
	return nil
}

// Key returns the canonical identity of the state on layout l. Layout
// construction caps the cell count, so encoding cannot fail; an encode error
// here means state and layout were mixed up across boards.
func (s State) Key(l *Layout) statekey.Key {
	boxes := make([]int, len(s.Boxes))
	for i, b := range s.Boxes {
		boxes[i] = l.index(b)
	}
	k, err := statekey.Make(l.index(s.Player), boxes)
	if err != nil {
		panic(fmt.Sprintf("engine: state key encoding failed: %v", err))
	}
	return k
}

// boxKey returns a key over box placement only, ignoring the player.
func (s State) boxKey(l *Layout) statekey.Key {
	boxes := make([]int, len(s.Boxes))
	for i, b := range s.Boxes {
		boxes[i] = l.index(b)
	}
	k, err := statekey.MakeBoxes(boxes)
	if err != nil {
		panic(fmt.Sprintf("engine: box key encoding failed: %v", err))
	}
	return k
}

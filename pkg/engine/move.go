package engine

import (
	"fmt"
)

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the four moves in the fixed order solvers enumerate them.
// The order matters for determinism of BFS and best-first search.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the coordinate offset of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("engine: invalid direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection converts a direction name ("up", "down", "left", "right")
// to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// MoveKind classifies what applying a direction to a state would do.
type MoveKind uint8

const (
	// Illegal moves run the player or a box into a wall or another box.
	Illegal MoveKind = iota
	// Walk moves the player onto an empty floor or dock cell.
	Walk
	// Push advances the player into a box, displacing the box one cell
	// further in the same direction.
	Push
)

func (k MoveKind) String() string {
	switch k {
	case Walk:
		return "walk"
	case Push:
		return "push"
	default:
		return "illegal"
	}
}

func (p Pos) step(d Direction) Pos {
	dx, dy := d.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Classify determines whether moving in direction d from state s is a walk,
// a push, or illegal. It is a pure function over (state, direction).
func Classify(l *Layout, s State, d Direction) MoveKind {
	dest := s.Player.step(d)
	if l.Wall(dest) {
		return Illegal
	}
	if !s.BoxAt(dest) {
		return Walk
	}
	beyond := dest.step(d)
	if l.Wall(beyond) || s.BoxAt(beyond) {
		return Illegal
	}
	return Push
}

// LegalMoves returns every direction whose application to s is legal, in
// the fixed Directions order.
func LegalMoves(l *Layout, s State) []Direction {
	moves := make([]Direction, 0, 4)
	for _, d := range Directions {
		if Classify(l, s, d) != Illegal {
			moves = append(moves, d)
		}
	}
	return moves
}

// Apply returns the state reached by moving in direction d. It never mutates
// its input. Applying an illegal move is a caller bug (generators must only
// ever offer legal moves) and panics rather than returning a corrupt state.
func Apply(l *Layout, s State, d Direction) State {
	dest := s.Player.step(d)
	switch Classify(l, s, d) {
	case Walk:
		return State{Player: dest, Boxes: s.Boxes}
	case Push:
		boxes := make([]Pos, len(s.Boxes))
		copy(boxes, s.Boxes)
		for i, b := range boxes {
			if b == dest {
				boxes[i] = dest.step(d)
				break
			}
		}
		sortPositions(boxes)
		return State{Player: dest, Boxes: boxes}
	}
	panic(fmt.Sprintf("engine: illegal move %v from player %v", d, s.Player))
}

// Replay applies a move sequence to a state, validating each move. It is
// the compatibility surface callers use to verify returned solutions: the
// moves a solver returns, replayed from the original initial state, must
// land on a state satisfying the goal predicate.
func Replay(l *Layout, s State, moves []Direction) (State, error) {
	cur := s
	for i, d := range moves {
		if Classify(l, cur, d) == Illegal {
			return cur, fmt.Errorf("move %d (%v) is illegal from player %v", i, d, cur.Player)
		}
		cur = Apply(l, cur, d)
	}
	return cur, nil
}

package level

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/yourusername/sokoengine/pkg/engine"
)

// GenerateOptions controls procedural board generation. The zero value is
// not useful; start from DefaultGenerateOptions.
type GenerateOptions struct {
	Width  int
	Height int
	Boxes  int

	// Walls is how many extra wall cells to scatter inside the room.
	Walls int
	// Pulls is how many reverse pulls to walk the boxes away from their
	// docks. More pulls tends to mean longer solutions.
	Pulls int
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64
}

// DefaultGenerateOptions returns a midsize room with two boxes.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		Width:  8,
		Height: 8,
		Boxes:  2,
		Walls:  3,
		Pulls:  30,
	}
}

const generateAttempts = 50

// Generate produces a solvable board. It works the puzzle backwards: boxes
// start on their docks and are pulled away by a random walk, so the pull
// sequence reversed is a solution and the board is solvable by
// construction. Each candidate is still verified with the exhaustive solver
// before being returned; candidates whose walk left a box on its dock or
// that verification rejects are discarded and redrawn.
func Generate(opts GenerateOptions) (*Level, error) {
	if opts.Width < 4 || opts.Height < 4 {
		return nil, fmt.Errorf("room %dx%d too small, want at least 4x4", opts.Width, opts.Height)
	}
	interior := (opts.Width - 2) * (opts.Height - 2)
	if opts.Boxes < 1 || opts.Boxes*4 > interior {
		return nil, fmt.Errorf("%d boxes do not fit a %dx%d room", opts.Boxes, opts.Width, opts.Height)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	for attempt := 0; attempt < generateAttempts; attempt++ {
		lvl, ok := generateOnce(opts, rng)
		if !ok {
			continue
		}
		verify := engine.DefaultOptions(engine.AlgorithmBFS)
		verify.TimeLimit = 5 * time.Second
		res, err := engine.Solve(lvl.Layout, lvl.Start, verify)
		if err != nil || !res.Solved() || len(res.Moves) == 0 {
			continue
		}
		return lvl, nil
	}
	return nil, fmt.Errorf("no solvable %dx%d board with %d boxes after %d attempts",
		opts.Width, opts.Height, opts.Boxes, generateAttempts)
}

func generateOnce(opts GenerateOptions, rng *rand.Rand) (*Level, bool) {
	walls := borderWalls(opts.Width, opts.Height)
	occupied := make(map[engine.Pos]bool, len(walls))
	for _, w := range walls {
		occupied[w] = true
	}

	interior := func() engine.Pos {
		return engine.Pos{
			X: 1 + rng.Intn(opts.Width-2),
			Y: 1 + rng.Intn(opts.Height-2),
		}
	}

	for i := 0; i < opts.Walls; i++ {
		p := interior()
		if !occupied[p] {
			occupied[p] = true
			walls = append(walls, p)
		}
	}

	var docks []engine.Pos
	for len(docks) < opts.Boxes {
		p := interior()
		if occupied[p] {
			continue
		}
		occupied[p] = true
		docks = append(docks, p)
	}

	var player engine.Pos
	for {
		p := interior()
		if !occupied[p] {
			player = p
			break
		}
	}

	layout, err := engine.NewLayout(opts.Width, opts.Height, walls, docks)
	if err != nil {
		return nil, false
	}
	state := engine.NewState(player, docks)

	state = pullWalk(layout, state, opts.Pulls, rng)

	// A box still resting on its dock makes for a dull puzzle; redraw.
	for _, b := range state.Boxes {
		if layout.Dock(b) {
			return nil, false
		}
	}
	return &Level{Layout: layout, Start: state}, true
}

// pullWalk walks the boxes away from the solved placement. A pull is the
// exact reverse of a push: the player, standing beside a box with a free
// cell at their back, steps backwards and drags the box along. Every pulled
// state therefore pushes back to the solved one.
func pullWalk(l *engine.Layout, s engine.State, pulls int, rng *rand.Rand) engine.State {
	for i := 0; i < pulls; i++ {
		type pull struct {
			box engine.Pos
			d   engine.Direction
		}
		var candidates []pull
		for _, b := range s.Boxes {
			for _, d := range engine.Directions {
				dx, dy := d.Delta()
				at := engine.Pos{X: b.X + dx, Y: b.Y + dy}
				back := engine.Pos{X: b.X + 2*dx, Y: b.Y + 2*dy}
				if s.Player != at || l.Wall(back) || s.BoxAt(back) {
					continue
				}
				candidates = append(candidates, pull{box: b, d: d})
			}
		}
		if len(candidates) == 0 {
			// Walk the player to a random reachable cell and try again.
			moved := randomWalk(l, s, rng)
			if moved == s.Player {
				return s
			}
			s = engine.State{Player: moved, Boxes: s.Boxes}
			continue
		}
		c := candidates[rng.Intn(len(candidates))]
		dx, dy := c.d.Delta()
		boxes := make([]engine.Pos, len(s.Boxes))
		copy(boxes, s.Boxes)
		for j, b := range boxes {
			if b == c.box {
				boxes[j] = engine.Pos{X: b.X + dx, Y: b.Y + dy}
				break
			}
		}
		s = engine.NewState(engine.Pos{X: c.box.X + 2*dx, Y: c.box.Y + 2*dy}, boxes)
	}
	return s
}

// randomWalk moves the player a few legal non-push steps.
func randomWalk(l *engine.Layout, s engine.State, rng *rand.Rand) engine.Pos {
	p := s.Player
	for i := 0; i < 8; i++ {
		d := engine.Directions[rng.Intn(len(engine.Directions))]
		dx, dy := d.Delta()
		next := engine.Pos{X: p.X + dx, Y: p.Y + dy}
		if l.Wall(next) || s.BoxAt(next) {
			continue
		}
		p = next
	}
	return p
}

func borderWalls(width, height int) []engine.Pos {
	var walls []engine.Pos
	for x := 0; x < width; x++ {
		walls = append(walls, engine.Pos{X: x, Y: 0}, engine.Pos{X: x, Y: height - 1})
	}
	for y := 1; y < height-1; y++ {
		walls = append(walls, engine.Pos{X: 0, Y: y}, engine.Pos{X: width - 1, Y: y})
	}
	return walls
}

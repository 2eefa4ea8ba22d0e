// Package level loads, renders and generates puzzle boards.
//
// Boards travel as lines of text in the de facto standard notation:
//
//	#  wall        .  dock
//	@  player      +  player on dock
//	$  box         *  box on dock
//
// Space is floor. Unknown characters are tolerated and read as floor, which
// keeps the parser working across the minor dialect differences found in
// level files in the wild.
package level

import (
	"fmt"
	"os"
	"strings"

	"github.com/yourusername/sokoengine/pkg/engine"
)

// Level is a parsed board: the static layout plus the initial state.
type Level struct {
	// ID names the level inside its collection; empty for ad hoc boards.
	ID     string
	Number int

	Layout *engine.Layout
	Start  engine.State
}

// Parse reads a board from text lines. Lines may have ragged lengths; short
// lines are padded with floor. The board must contain exactly one player.
func Parse(lines []string) (*Level, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty board")
	}
	width := 0
	for _, row := range lines {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("empty board")
	}

	var walls, docks, boxes []engine.Pos
	player := engine.Pos{X: -1, Y: -1}
	players := 0
	for y, row := range lines {
		for x := 0; x < len(row); x++ {
			p := engine.Pos{X: x, Y: y}
			switch row[x] {
			case '#':
				walls = append(walls, p)
			case '.':
				docks = append(docks, p)
			case '@':
				player = p
				players++
			case '+':
				player = p
				players++
				docks = append(docks, p)
			case '$':
				boxes = append(boxes, p)
			case '*':
				boxes = append(boxes, p)
				docks = append(docks, p)
			}
		}
	}
	if players != 1 {
		return nil, fmt.Errorf("board has %d players, want exactly 1", players)
	}

	layout, err := engine.NewLayout(width, len(lines), walls, docks)
	if err != nil {
		return nil, fmt.Errorf("bad board geometry: %w", err)
	}
	lvl := &Level{
		Layout: layout,
		Start:  engine.NewState(player, boxes),
	}
	if err := lvl.Start.Validate(layout); err != nil {
		return nil, fmt.Errorf("bad initial state: %w", err)
	}
	return lvl, nil
}

// Format renders a state on a layout back to text lines. Parse(Format(l, s))
// reproduces the same layout and state.
func Format(l *engine.Layout, s engine.State) []string {
	lines := make([]string, l.Height)
	for y := 0; y < l.Height; y++ {
		var sb strings.Builder
		for x := 0; x < l.Width; x++ {
			p := engine.Pos{X: x, Y: y}
			sb.WriteByte(cellChar(l, s, p))
		}
		lines[y] = sb.String()
	}
	return lines
}

func cellChar(l *engine.Layout, s engine.State, p engine.Pos) byte {
	switch {
	case l.Wall(p):
		return '#'
	case s.BoxAt(p):
		if l.Dock(p) {
			return '*'
		}
		return '$'
	case p == s.Player:
		if l.Dock(p) {
			return '+'
		}
		return '@'
	case l.Dock(p):
		return '.'
	}
	return ' '
}

// Load reads a single board from a text file. Blank lines and lines starting
// with ';' (the common comment convention in level files) are skipped.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lines []string
	for _, row := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n") {
		if strings.TrimSpace(row) == "" || strings.HasPrefix(row, ";") {
			continue
		}
		lines = append(lines, row)
	}
	lvl, err := Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

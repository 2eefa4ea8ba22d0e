// Package tui implements the interactive terminal play mode.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/sokoengine/pkg/engine"
	"github.com/yourusername/sokoengine/pkg/level"
)

var (
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	dockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	boxStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	winStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// hintMsg carries a finished hint solve back into the update loop.
type hintMsg struct {
	result *engine.Result
	err    error
}

// Model is the bubbletea model for playing one level.
type Model struct {
	lvl     *level.Level
	state   engine.State
	history []engine.State
	pushes  int

	hinting bool
	hint    []engine.Direction
	status  string
}

// NewModel creates a play model for the given level.
func NewModel(lvl *level.Level) Model {
	return Model{
		lvl:   lvl,
		state: lvl.Start,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case hintMsg:
		m.hinting = false
		switch {
		case msg.err != nil:
			m.status = "hint failed: " + msg.err.Error()
		case !msg.result.Solved():
			m.status = "no solution found (" + msg.result.Status.String() + ")"
		default:
			m.hint = msg.result.Moves
			m.status = fmt.Sprintf("solution found: %d moves, press n to step", len(m.hint))
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up":
		return m.move(engine.Up), nil
	case "down":
		return m.move(engine.Down), nil
	case "left":
		return m.move(engine.Left), nil
	case "right":
		return m.move(engine.Right), nil
	case "u":
		return m.undo(), nil
	case "r":
		m.state = m.lvl.Start
		m.history = nil
		m.pushes = 0
		m.hint = nil
		m.status = "reset"
		return m, nil
	case "h":
		if m.hinting {
			return m, nil
		}
		m.hinting = true
		m.status = "solving..."
		return m, m.solveCmd()
	case "n":
		return m.stepHint(), nil
	}
	return m, nil
}

func (m Model) move(d engine.Direction) Model {
	if m.state.Solved(m.lvl.Layout) {
		return m
	}
	kind := engine.Classify(m.lvl.Layout, m.state, d)
	if kind == engine.Illegal {
		m.status = "blocked"
		return m
	}
	m.history = append(m.history, m.state)
	m.state = engine.Apply(m.lvl.Layout, m.state, d)
	if kind == engine.Push {
		m.pushes++
	}
	m.status = ""
	// A manual move invalidates a previously computed solution path.
	m.hint = nil
	return m
}

func (m Model) undo() Model {
	if len(m.history) == 0 {
		m.status = "nothing to undo"
		return m
	}
	prev := m.history[len(m.history)-1]
	if engine.Classify(m.lvl.Layout, prev, lastDirection(prev, m.state)) == engine.Push {
		m.pushes--
	}
	m.state = prev
	m.history = m.history[:len(m.history)-1]
	m.hint = nil
	m.status = "undo"
	return m
}

// lastDirection recovers the direction that led from prev to cur.
func lastDirection(prev, cur engine.State) engine.Direction {
	for _, d := range engine.Directions {
		dx, dy := d.Delta()
		if prev.Player.X+dx == cur.Player.X && prev.Player.Y+dy == cur.Player.Y {
			return d
		}
	}
	return engine.Up
}

func (m Model) stepHint() Model {
	if len(m.hint) == 0 {
		m.status = "no solution cached, press h first"
		return m
	}
	d := m.hint[0]
	rest := m.hint[1:]
	next := m.move(d)
	next.hint = rest
	if len(rest) > 0 {
		next.status = fmt.Sprintf("%d hint moves left", len(rest))
	}
	return next
}

func (m Model) solveCmd() tea.Cmd {
	layout, state := m.lvl.Layout, m.state
	return func() tea.Msg {
		res, err := engine.Solve(layout, state, engine.DefaultOptions(engine.AlgorithmAStar))
		return hintMsg{result: res, err: err}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := m.lvl.ID
	if title == "" {
		title = "sokoban"
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	if m.state.Solved(m.lvl.Layout) {
		b.WriteString(winStyle.Render(fmt.Sprintf("Solved in %d moves (%d pushes)!", len(m.history), m.pushes)))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("moves %d  pushes %d  %s", len(m.history), m.pushes, m.status)))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows move · u undo · r reset · h solve · n step solution · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderBoard() string {
	l := m.lvl.Layout
	var b strings.Builder
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := engine.Pos{X: x, Y: y}
			switch {
			case l.Wall(p):
				b.WriteString(wallStyle.Render("#"))
			case m.state.BoxAt(p):
				if l.Dock(p) {
					b.WriteString(dockedStyle.Render("*"))
				} else {
					b.WriteString(boxStyle.Render("$"))
				}
			case p == m.state.Player:
				b.WriteString(playerStyle.Render("@"))
			case l.Dock(p):
				b.WriteString(dockStyle.Render("."))
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Run plays the level in the terminal until the user quits.
func Run(lvl *level.Level) error {
	_, err := tea.NewProgram(NewModel(lvl)).Run()
	return err
}

package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/sokoengine/pkg/engine"
)

func TestParseBasicBoard(t *testing.T) {
	lvl, err := Parse([]string{
		"#####",
		"#@$.#",
		"#####",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, lvl.Layout.Width)
	assert.Equal(t, 3, lvl.Layout.Height)
	assert.Equal(t, engine.Pos{X: 1, Y: 1}, lvl.Start.Player)
	require.Len(t, lvl.Start.Boxes, 1)
	assert.Equal(t, engine.Pos{X: 2, Y: 1}, lvl.Start.Boxes[0])
	assert.True(t, lvl.Layout.Dock(engine.Pos{X: 3, Y: 1}))
}

func TestParseOverlayCharacters(t *testing.T) {
	lvl, err := Parse([]string{
		"#####",
		"#+*.#",
		"#####",
	})
	require.NoError(t, err)
	assert.True(t, lvl.Layout.Dock(lvl.Start.Player), "player-on-dock cell")
	require.Len(t, lvl.Start.Boxes, 1)
	assert.True(t, lvl.Layout.Dock(lvl.Start.Boxes[0]), "box-on-dock cell")
	assert.Equal(t, 3, lvl.Layout.DockCount())
}

func TestParseRaggedAndUnknownChars(t *testing.T) {
	// Short rows pad with floor; unknown characters read as floor.
	lvl, err := Parse([]string{
		"#####",
		"#@$.#",
		"#?_x#",
		"#####",
	})
	require.NoError(t, err)
	assert.False(t, lvl.Layout.Wall(engine.Pos{X: 1, Y: 2}))
	assert.False(t, lvl.Layout.Dock(engine.Pos{X: 2, Y: 2}))
}

func TestParseRejectsPlayerCount(t *testing.T) {
	_, err := Parse([]string{
		"#####",
		"# $.#",
		"#####",
	})
	assert.Error(t, err, "no player")

	_, err = Parse([]string{
		"######",
		"#@@$.#",
		"######",
	})
	assert.Error(t, err, "two players")
}

func TestFormatRoundTrip(t *testing.T) {
	lines := []string{
		"#######",
		"#+*$ .#",
		"#     #",
		"#######",
	}
	lvl, err := Parse(lines)
	require.NoError(t, err)
	assert.Equal(t, lines, Format(lvl.Layout, lvl.Start))
}

func TestFormatAfterMoves(t *testing.T) {
	lvl, err := Parse([]string{
		"#####",
		"#@$.#",
		"#####",
	})
	require.NoError(t, err)
	end := engine.Apply(lvl.Layout, lvl.Start, engine.Right)
	assert.Equal(t, []string{
		"#####",
		"# @*#",
		"#####",
	}, Format(lvl.Layout, end))
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	content := "; a tiny test board\n\n#####\n#@$.#\n#####\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lvl, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, lvl.Layout.Height)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

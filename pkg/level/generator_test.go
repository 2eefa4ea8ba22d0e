package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/sokoengine/pkg/engine"
)

func TestGenerateProducesSolvableBoard(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Seed = 1
	lvl, err := Generate(opts)
	require.NoError(t, err)

	require.Len(t, lvl.Start.Boxes, opts.Boxes)
	assert.Equal(t, opts.Boxes, lvl.Layout.DockCount())
	require.NoError(t, lvl.Start.Validate(lvl.Layout))

	res, err := engine.Solve(lvl.Layout, lvl.Start, engine.DefaultOptions(engine.AlgorithmBFS))
	require.NoError(t, err)
	require.True(t, res.Solved(), "generated board must be solvable, got %v", res.Status)
	assert.NotEmpty(t, res.Moves, "generated board must not start solved")

	final, err := engine.Replay(lvl.Layout, lvl.Start, res.Moves)
	require.NoError(t, err)
	assert.True(t, final.Solved(lvl.Layout))
}

func TestGenerateSeededIsDeterministic(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Seed = 42
	first, err := Generate(opts)
	require.NoError(t, err)
	second, err := Generate(opts)
	require.NoError(t, err)
	assert.Equal(t, Format(first.Layout, first.Start), Format(second.Layout, second.Start))
}

func TestGenerateBoxesStartOffDocks(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Seed = 7
	lvl, err := Generate(opts)
	require.NoError(t, err)
	for _, b := range lvl.Start.Boxes {
		assert.False(t, lvl.Layout.Dock(b), "box at %v starts on a dock", b)
	}
}

func TestGenerateRejectsBadDimensions(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Width = 3
	_, err := Generate(opts)
	assert.Error(t, err)

	opts = DefaultGenerateOptions()
	opts.Boxes = 50
	_, err = Generate(opts)
	assert.Error(t, err)
}

func TestGenerateRoundTripsThroughText(t *testing.T) {
	opts := DefaultGenerateOptions()
	opts.Seed = 3
	lvl, err := Generate(opts)
	require.NoError(t, err)

	lines := Format(lvl.Layout, lvl.Start)
	reparsed, err := Parse(lines)
	require.NoError(t, err)
	assert.Equal(t, lines, Format(reparsed.Layout, reparsed.Start))
}

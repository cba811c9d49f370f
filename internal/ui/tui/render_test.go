package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sash/internal/domain/entity"
)

func TestGrid(t *testing.T) {
	g := grid{cellW: 8, cellH: 16}

	assert.Equal(t, entity.Rect{Width: 800, Height: 480}, g.bounds(100, 30))

	x, y := g.pointer(0, 0)
	assert.Equal(t, 4.0, x)
	assert.Equal(t, 8.0, y)

	w, h := g.span(entity.Rect{Left: 316, Top: 0, Width: 484, Height: 480})
	assert.Equal(t, 60, w, "316px rounds to column 40")
	assert.Equal(t, 30, h)
}

func TestRenderer_BlocksTileTheTerminal(t *testing.T) {
	cfg := entity.Pair{
		entity.Scalar{Value: 0.3},
		entity.Pair{entity.Scalar{Value: "top"}, entity.Pair{entity.Scalar{Value: 0.5}, nil}},
	}
	tree, err := entity.NewTree(cfg, entity.Rect{Width: 640, Height: 384})
	require.NoError(t, err)

	r := renderer{tree: tree, grid: grid{cellW: 8, cellH: 16}, styles: newPaneStyles(colors{})}
	out := r.render()

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 24)
	for i, line := range lines {
		assert.Equal(t, 80, lipgloss.Width(line), "row %d", i)
	}
}

func TestRenderer_CachesPanesInHandle(t *testing.T) {
	tree, err := entity.NewTree(entity.Pair{nil, nil}, entity.Rect{Width: 320, Height: 160})
	require.NoError(t, err)
	r := renderer{tree: tree, grid: grid{cellW: 8, cellH: 16}, styles: newPaneStyles(colors{})}

	first := r.render()
	leaf := tree.Leaves()[0]
	cached, ok := leaf.Handle.(renderedPane)
	require.True(t, ok)
	assert.NotEmpty(t, cached.view)

	assert.Equal(t, first, r.render())

	r.state = func(id entity.NodeID) paneState {
		if id == leaf.ID {
			return paneFocused
		}
		return paneNormal
	}
	r.render()
	updated, _ := tree.Node(leaf.ID)
	assert.NotEqual(t, cached.key, updated.Handle.(renderedPane).key)
}

func TestRenderer_TinyPanes(t *testing.T) {
	r := renderer{grid: grid{cellW: 8, cellH: 16}, styles: newPaneStyles(colors{})}

	assert.Empty(t, r.drawPane("x", entity.Rect{}, 0, 3, paneNormal))

	out := r.drawPane("narrow", entity.Rect{}, 2, 4, paneNormal)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, 2, lipgloss.Width(lines[0]))

	out = r.drawPane("a very long pane title", entity.Rect{Width: 80, Height: 48}, 10, 3, paneNormal)
	lines = strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, 10, lipgloss.Width(lines[1]))
	assert.Contains(t, lines[1], "…")
}

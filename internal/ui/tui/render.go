package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
)

// grid maps container pixels onto terminal cells.
type grid struct {
	cellW, cellH float64
}

func (g grid) col(px float64) int { return int(math.Round(px / g.cellW)) }
func (g grid) row(px float64) int { return int(math.Round(px / g.cellH)) }

// bounds is the container rectangle covering cols x rows cells.
func (g grid) bounds(cols, rows int) entity.Rect {
	return entity.Rect{Width: float64(cols) * g.cellW, Height: float64(rows) * g.cellH}
}

// pointer maps a cell to the pixel at its centre.
func (g grid) pointer(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * g.cellW, (float64(y) + 0.5) * g.cellH
}

// span returns the cell width and height a node covers.
func (g grid) span(r entity.Rect) (int, int) {
	return g.col(r.Right()) - g.col(r.Left), g.row(r.Bottom()) - g.row(r.Top)
}

// paneState selects the border color of a pane.
type paneState int

const (
	paneNormal paneState = iota
	paneFocused
	paneResizing
	paneMatched
)

// paneStyles holds lipgloss styles for the pane boxes.
type paneStyles struct {
	border   lipgloss.Color
	focus    lipgloss.Color
	active   lipgloss.Color
	title    lipgloss.Style
	subtle   lipgloss.Style
	status   lipgloss.Style
	statusOK lipgloss.Style
	errStyle lipgloss.Style
}

func newPaneStyles(c colors) paneStyles {
	return paneStyles{
		border:   lipgloss.Color(c.Border),
		focus:    lipgloss.Color(c.Focus),
		active:   lipgloss.Color(c.ActiveDivider),
		title:    lipgloss.NewStyle().Bold(true),
		subtle:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Border)),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Focus)),
		statusOK: lipgloss.NewStyle().Foreground(lipgloss.Color(c.ActiveDivider)),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")),
	}
}

func (s paneStyles) borderColor(state paneState) lipgloss.Color {
	switch state {
	case paneFocused:
		return s.focus
	case paneResizing, paneMatched:
		return s.active
	default:
		return s.border
	}
}

// renderedPane is stored in the pane's rendering handle so unchanged panes
// are not re-rendered every frame.
type renderedPane struct {
	key  string
	view string
}

// renderer draws a tree as nested lipgloss blocks.
type renderer struct {
	tree   *entity.Tree
	grid   grid
	styles paneStyles
	state  func(id entity.NodeID) paneState
}

func (r *renderer) render() string {
	return r.node(r.tree.Root())
}

func (r *renderer) node(s entity.Sash) string {
	if s.IsLeaf() {
		return r.pane(s)
	}

	axis := r.tree.SplitAxis(s.ID)
	parts := make([]string, 0, 2)
	for _, id := range s.Children {
		child, ok := r.tree.Node(id)
		if !ok {
			continue
		}
		w, h := r.grid.span(child.Rect)
		// A child rounded away to nothing would still add a line when joined.
		if (axis == entity.AxisHorizontal && w <= 0) || (axis == entity.AxisVertical && h <= 0) {
			continue
		}
		parts = append(parts, r.node(child))
	}
	if axis == entity.AxisHorizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *renderer) pane(s entity.Sash) string {
	w, h := r.grid.span(s.Rect)
	state := paneNormal
	if r.state != nil {
		state = r.state(s.ID)
	}
	label := usecase.PaneLabel(s)
	key := fmt.Sprintf("%d:%d:%d:%s:%s", w, h, state, label, r.styles.borderColor(state))

	if cached, ok := s.Handle.(renderedPane); ok && cached.key == key {
		return cached.view
	}
	view := r.drawPane(label, s.Rect, w, h, state)
	_ = r.tree.SetHandle(s.ID, renderedPane{key: key, view: view})
	return view
}

func (r *renderer) drawPane(label string, rect entity.Rect, w, h int, state paneState) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	if w < 3 || h < 3 {
		// No room for a border.
		return lipgloss.NewStyle().
			Width(w).
			Height(h).
			Background(r.styles.borderColor(state)).
			Render("")
	}

	innerW, innerH := w-2, h-2
	lines := []string{r.styles.title.Render(runewidth.Truncate(label, innerW, "…"))}
	if innerH > 1 {
		dims := fmt.Sprintf("%.0f×%.0f", rect.Width, rect.Height)
		lines = append(lines, r.styles.subtle.Render(runewidth.Truncate(dims, innerW, "…")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.styles.borderColor(state)).
		Width(innerW).
		Height(innerH).
		MaxHeight(h).
		Render(strings.Join(lines, "\n"))
}

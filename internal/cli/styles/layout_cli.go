package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/sash/internal/domain/entity"
)

// ValidationResult is the outcome of checking one layout document.
type ValidationResult struct {
	Path  string
	Panes int
	Err   error
}

// LayoutCLIRenderer renders layout geometry and validation results.
type LayoutCLIRenderer struct {
	theme *Theme
}

func NewLayoutCLIRenderer(theme *Theme) *LayoutCLIRenderer {
	return &LayoutCLIRenderer{theme: theme}
}

// RenderGeometry renders every node of tree as a table row, indented by
// depth. Leaves in highlight are marked.
func (r *LayoutCLIRenderer) RenderGeometry(tree *entity.Tree, highlight map[entity.NodeID]bool) string {
	bounds := tree.Bounds()
	header := fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(IconLayout),
		r.theme.Title.Render("Layout"),
		r.theme.Subtle.Render(fmt.Sprintf("%g×%g, %d panes", bounds.Width, bounds.Height, len(tree.Leaves()))),
	)

	depth := make(map[entity.NodeID]int)
	var rows [][]string
	var marked []bool
	tree.Walk(func(s entity.Sash) bool {
		d := 0
		if !s.IsRoot() {
			d = depth[s.Parent] + 1
		}
		depth[s.ID] = d

		kind := "pane"
		if !s.IsLeaf() {
			kind = "split " + tree.SplitAxis(s.ID).String()
		}
		rows = append(rows, []string{
			strings.Repeat("  ", d) + string(s.ID),
			kind,
			s.Position.String(),
			formatPx(s.Rect.Left),
			formatPx(s.Rect.Top),
			formatPx(s.Rect.Width),
			formatPx(s.Rect.Height),
			s.Store.String(entity.StoreTitle),
		})
		marked = append(marked, highlight[s.ID])
		return true
	})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers("NODE", "KIND", "POSITION", "LEFT", "TOP", "WIDTH", "HEIGHT", "TITLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.theme.TableHeader
			case row >= 0 && row < len(marked) && marked[row]:
				return r.theme.TableCell.Foreground(r.theme.Accent).Bold(true)
			case col >= 3 && col <= 6:
				return r.theme.TableCell.Align(lipgloss.Right)
			default:
				return r.theme.TableCell
			}
		})

	return header + "\n" + t.String()
}

// RenderValidation renders one line per document and a summary.
func (r *LayoutCLIRenderer) RenderValidation(results []ValidationResult) string {
	var b strings.Builder
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			b.WriteString(fmt.Sprintf("%s %s\n    %s\n",
				r.theme.ErrorStyle.Render(IconX),
				r.theme.Normal.Render(res.Path),
				r.theme.ErrorStyle.Render(res.Err.Error()),
			))
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			r.theme.SuccessStyle.Render(IconCheck),
			r.theme.Normal.Render(res.Path),
			r.theme.Subtle.Render(fmt.Sprintf("(%d panes)", res.Panes)),
		))
	}

	summary := fmt.Sprintf("%d valid, %d invalid", len(results)-failed, failed)
	if failed > 0 {
		b.WriteString(r.theme.ErrorStyle.Render(summary))
	} else {
		b.WriteString(r.theme.SuccessStyle.Render(summary))
	}
	return b.String()
}

// formatPx prints at most two decimals.
func formatPx(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

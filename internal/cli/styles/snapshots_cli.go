package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/sash/internal/domain/entity"
)

// SnapshotsCLIRenderer renders non-interactive output for the snapshots
// subcommands (e.g. `sash snapshots list`, `show`, `delete`).
type SnapshotsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewSnapshotsCLIRenderer(theme *Theme) *SnapshotsCLIRenderer {
	return &SnapshotsCLIRenderer{theme: theme, now: time.Now}
}

func (r *SnapshotsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *SnapshotsCLIRenderer) RenderList(items []*entity.LayoutSnapshot) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconLayout), r.theme.Title.Render("Layouts"))
	b.WriteString(title)
	b.WriteString("\n\n")

	for _, s := range items {
		b.WriteString(r.renderOne(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: use `sash run --restore <name>` to open one."))
	return b.String()
}

func (r *SnapshotsCLIRenderer) renderOne(s *entity.LayoutSnapshot) string {
	name := r.theme.Highlight.Render(s.Name)
	panes := r.theme.BadgeMuted.Render(fmt.Sprintf("%d panes", s.PaneCount))
	size := r.theme.BadgeMuted.Render(fmt.Sprintf("%.0f×%.0f", s.Width, s.Height))
	updated := r.theme.Subtle.Render(RelativeTime(s.SavedAt, r.now()))

	return fmt.Sprintf("%s %s  %s %s  %s",
		r.theme.Subtle.Render(IconCursor),
		name,
		panes,
		size,
		updated,
	)
}

func (r *SnapshotsCLIRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Deleted layout %s",
		r.theme.SuccessStyle.Render(IconTrash),
		r.theme.Highlight.Render(name),
	)
}

func (r *SnapshotsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

// RelativeTime formats t relative to now ("just now", "5m ago", "3d ago").
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case t.IsZero():
		return "never"
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the files and directories sash reads and writes.
func (r *ConfigRenderer) RenderPaths(configFile string, exists bool, layoutsDir, database, logDir string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	pathStyle := r.theme.Normal

	status := r.theme.SuccessStyle.Render(IconCheck)
	if !exists {
		status = r.theme.Subtle.Render("(created on first run)")
	}

	row := func(icon, name, path string) string {
		return fmt.Sprintf("  %s %s %s", iconStyle.Render(icon), keyStyle.Render(fmt.Sprintf("%-9s", name)), pathStyle.Render(path))
	}
	return fmt.Sprintf("\n%s %s\n%s\n%s\n%s\n",
		row(IconConfig, "Config", configFile),
		status,
		row(IconLayout, "Layouts", layoutsDir),
		row(IconDatabase, "Snapshots", database),
		row(IconFolder, "Logs", logDir),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

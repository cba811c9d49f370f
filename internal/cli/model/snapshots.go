// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/sash/internal/cli/styles"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/logging"
)

// SnapshotStore is the part of the snapshot use case the browser needs.
type SnapshotStore interface {
	List(ctx context.Context) ([]*entity.LayoutSnapshot, error)
	Delete(ctx context.Context, name string) error
}

// SnapshotsModel is the Bubble Tea model for the interactive layout browser.
type SnapshotsModel struct {
	// UI components
	help help.Model
	keys snapshotsKeyMap

	// State
	snapshots     []*entity.LayoutSnapshot
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	confirming    bool
	selected      string
	width         int
	height        int
	err           error
	statusMessage string

	// Dependencies
	ctx   context.Context
	store SnapshotStore
	theme *styles.Theme
	now   func() time.Time
}

type snapshotsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Open    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k snapshotsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Open, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k snapshotsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Open, k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultSnapshotsKeyMap() snapshotsKeyMap {
	return snapshotsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("tab", " "),
			key.WithHelp("tab", "expand/collapse"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewSnapshotsModel creates a new layout browser model.
func NewSnapshotsModel(ctx context.Context, theme *styles.Theme, store SnapshotStore) *SnapshotsModel {
	return &SnapshotsModel{
		help:        help.New(),
		keys:        defaultSnapshotsKeyMap(),
		expandedIdx: -1,
		width:       80,
		height:      24,
		ctx:         ctx,
		store:       store,
		theme:       theme,
		now:         time.Now,
	}
}

// Selected returns the snapshot the user chose to open, if any.
func (m *SnapshotsModel) Selected() string {
	return m.selected
}

type snapshotsLoadedMsg struct {
	snapshots []*entity.LayoutSnapshot
	err       error
}

type snapshotDeletedMsg struct {
	name string
	err  error
}

// Init implements tea.Model.
func (m *SnapshotsModel) Init() tea.Cmd {
	return m.loadSnapshots
}

func (m *SnapshotsModel) loadSnapshots() tea.Msg {
	log := logging.FromContext(m.ctx)

	if m.store == nil {
		return snapshotsLoadedMsg{err: fmt.Errorf("snapshots are not available")}
	}
	snapshots, err := m.store.List(m.ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load snapshots")
		return snapshotsLoadedMsg{err: err}
	}
	log.Debug().Int("count", len(snapshots)).Msg("loaded snapshots")
	return snapshotsLoadedMsg{snapshots: snapshots}
}

// Update implements tea.Model.
func (m *SnapshotsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.handleConfirm(msg)
		}
		return m.handleKeyMsg(msg)

	case snapshotsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.snapshots = msg.snapshots
			if m.selectedIdx >= len(m.snapshots) {
				m.selectedIdx = max(0, len(m.snapshots)-1)
			}
			if m.expandedIdx >= len(m.snapshots) {
				m.expandedIdx = -1
			}
		}
		return m, nil

	case snapshotDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMessage = fmt.Sprintf("Layout %s deleted", msg.name)
		}
		return m, m.loadSnapshots
	}

	return m, nil
}

func (m *SnapshotsModel) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirming = false
	switch msg.String() {
	case "y", "Y", "enter":
		if current := m.current(); current != nil {
			return m, m.deleteSnapshot(current.Name)
		}
	}
	m.statusMessage = "Cancelled"
	return m, nil
}

func (m *SnapshotsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.snapshots)-1 {
			m.selectedIdx++
		}

	case key.Matches(msg, m.keys.Expand):
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
		} else {
			m.expandedIdx = m.selectedIdx
		}

	case key.Matches(msg, m.keys.Open):
		if current := m.current(); current != nil {
			m.selected = current.Name
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Delete):
		if m.current() != nil {
			m.confirming = true
		}

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadSnapshots

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *SnapshotsModel) current() *entity.LayoutSnapshot {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.snapshots) {
		return nil
	}
	return m.snapshots[m.selectedIdx]
}

func (m *SnapshotsModel) deleteSnapshot(name string) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("snapshot", name).Msg("deleting snapshot")
		return snapshotDeletedMsg{name: name, err: m.store.Delete(m.ctx, name)}
	}
}

// View implements tea.Model.
func (m *SnapshotsModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}

	switch {
	case m.confirming:
		if current := m.current(); current != nil {
			b.WriteString(t.WarningStyle.Render(fmt.Sprintf("%s Delete layout %s? (y/N)", styles.IconWarning, current.Name)))
			b.WriteString("\n\n")
		}
	case m.statusMessage != "":
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.snapshots) == 0 {
		b.WriteString(t.Subtle.Render("  No saved layouts found."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *SnapshotsModel) renderHeader() string {
	t := m.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	panes := 0
	for _, s := range m.snapshots {
		panes += s.PaneCount
	}
	stats := t.Subtle.Render(fmt.Sprintf("  %d saved  %s %d panes", len(m.snapshots), styles.IconPane, panes))
	return iconStyle.Render(styles.IconLayout) + t.Title.MarginLeft(1).Render("Layouts") + stats
}

func (m *SnapshotsModel) renderList() string {
	var b strings.Builder
	for i, s := range m.snapshots {
		b.WriteString(m.renderRow(s, i == m.selectedIdx, i == m.expandedIdx))
		b.WriteString("\n")
		if i == m.expandedIdx {
			b.WriteString(m.renderDetails(s))
		}
	}
	return b.String()
}

func (m *SnapshotsModel) renderRow(s *entity.LayoutSnapshot, isSelected, isExpanded bool) string {
	t := m.theme

	cursor := "  "
	nameStyle := t.Normal
	if isSelected {
		cursor = t.Highlight.Render(styles.IconCursor + " ")
		nameStyle = t.Highlight
	}

	expand := "▸"
	if isExpanded {
		expand = "▾"
	}

	return fmt.Sprintf("%s%s %s  %s  %s",
		cursor,
		t.Subtle.Render(expand),
		nameStyle.Render(s.Name),
		t.BadgeMuted.Render(fmt.Sprintf("%s %d  %.0f×%.0f", styles.IconPane, s.PaneCount, s.Width, s.Height)),
		t.Subtle.Render(fmt.Sprintf("%s %s", styles.IconClock, styles.RelativeTime(s.SavedAt, m.now()))),
	)
}

func (m *SnapshotsModel) renderDetails(s *entity.LayoutSnapshot) string {
	var b strings.Builder
	layout := s.Layout
	m.renderNode(&b, &layout, "      ", true)
	b.WriteString("\n")
	return b.String()
}

func (m *SnapshotsModel) renderNode(b *strings.Builder, cfg *entity.LayoutConfig, prefix string, isLast bool) {
	t := m.theme
	treeStyle := lipgloss.NewStyle().Foreground(t.Border)
	leafStyle := lipgloss.NewStyle().Foreground(t.Muted)

	branch := "├── "
	childPrefix := prefix + "│   "
	if isLast {
		branch = "└── "
		childPrefix = prefix + "    "
	}

	label := cfg.Store.String(entity.StoreTitle)
	if label == "" {
		label = string(cfg.ID)
	}
	if cfg.Size.IsSet() {
		label = fmt.Sprintf("%s (%v)", label, cfg.Size.Raw())
	}

	icon := styles.IconPane
	if len(cfg.Children) > 0 {
		icon = styles.IconLayout
	}
	fmt.Fprintf(b, "%s%s%s %s\n", prefix, treeStyle.Render(branch), leafStyle.Render(icon), t.Subtle.Render(label))

	for i, entry := range cfg.Children {
		child, err := entity.Normalize(entry)
		if err != nil {
			continue
		}
		m.renderNode(b, &child, childPrefix, i == len(cfg.Children)-1)
	}
}

var _ tea.Model = (*SnapshotsModel)(nil)

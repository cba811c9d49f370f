// Package tui hosts a layout in the terminal with Bubble Tea. Mouse events
// become pointer events on a dispatcher.Document, so the same resize and
// drag/drop controllers drive the layout as in any other host.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/infrastructure/config"
	"github.com/bnema/sash/internal/infrastructure/snapshot"
	"github.com/bnema/sash/internal/logging"
	"github.com/bnema/sash/internal/ui/dispatcher"
	"github.com/bnema/sash/internal/ui/mainloop"
)

// statusRows is the number of terminal rows below the layout.
const statusRows = 1

type colors struct {
	Border        string
	Focus         string
	ActiveDivider string
}

// settings is the part of the configuration the host reads.
type settings struct {
	grid          grid
	hitTolerance  float64
	frameInterval time.Duration
	dragDrop      bool
	edgeRatio     float64
	colors        colors
	showHelp      bool
	keys          config.KeyBindings
}

func settingsFrom(cfg *config.Config) settings {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return settings{
		grid:          grid{cellW: cfg.Layout.CellWidth, cellH: cfg.Layout.CellHeight},
		hitTolerance:  cfg.Resize.HitTolerance,
		frameInterval: cfg.Resize.FrameInterval(),
		dragDrop:      cfg.DragDrop.Enabled,
		edgeRatio:     cfg.DragDrop.EdgeRatio,
		colors: colors{
			Border:        cfg.UI.BorderColor,
			Focus:         cfg.UI.FocusBorderColor,
			ActiveDivider: cfg.UI.ActiveDividerColor,
		},
		showHelp: cfg.UI.ShowHelp,
		keys:     cfg.Keys,
	}
}

// tolerance is the divider grab distance. A divider sits between two border
// cells, so anything closer than half a cell would miss both of them.
func (s settings) tolerance() float64 {
	return max(s.hitTolerance, s.grid.cellW/2, s.grid.cellH/2)
}

// Option configures a Model.
type Option func(*Model)

// WithSnapshots enables the save key, storing the layout under name.
func WithSnapshots(uc *usecase.SnapshotLayoutUseCase, name string) Option {
	return func(m *Model) {
		m.snapshots = uc
		m.saveName = name
	}
}

// WithAutosave marks the layout dirty on svc after every committed change.
func WithAutosave(svc *snapshot.Service) Option {
	return func(m *Model) {
		m.autosave = svc
	}
}

// frameMsg runs the queued resize frames.
type frameMsg struct{}

// postedMsg runs fn on the update loop.
type postedMsg struct{ fn func() }

// savedMsg reports the result of an explicit save.
type savedMsg struct {
	name string
	err  error
}

// Model is the Bubble Tea model hosting one layout.
type Model struct {
	ctx      context.Context
	settings settings
	styles   paneStyles

	layout *usecase.ManageLayoutUseCase
	doc    *dispatcher.Document
	frames *mainloop.FrameQueue
	armed  bool
	resize *usecase.ResizeGestureController
	drag   *usecase.DragDropController
	finder *usecase.FindPanesUseCase

	snapshots *usecase.SnapshotLayoutUseCase
	saveName  string
	autosave  *snapshot.Service

	keys     keyMap
	help     help.Model
	showHelp bool
	search   textinput.Model
	matches  []usecase.PaneMatch

	focus  entity.NodeID
	width  int
	height int
	status string
	err    error
}

var _ tea.Model = (*Model)(nil)

// New creates a host for layout. The layout's tree is resized to the
// terminal on the first window size message.
func New(ctx context.Context, layout *usecase.ManageLayoutUseCase, cfg *config.Config, opts ...Option) *Model {
	ctx = logging.WithComponent(ctx, "tui")
	s := settingsFrom(cfg)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "pane title"

	m := &Model{
		ctx:      ctx,
		settings: s,
		styles:   newPaneStyles(s.colors),
		layout:   layout,
		doc:      dispatcher.NewDocument(),
		finder:   usecase.NewFindPanesUseCase(),
		keys:     newKeyMap(s.keys),
		help:     help.New(),
		showHelp: s.showHelp,
		search:   search,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.frames = mainloop.NewFrameQueue(func() { m.armed = true })
	m.resize = usecase.NewResizeGestureController(ctx, layout, m.frames, m.doc)
	m.resize.OnCommit(func(usecase.ResizeCommit) { m.commit() })
	m.resize.Attach(m.doc)
	if s.dragDrop {
		m.attachDragDrop()
	}

	layout.OnChange(m.handleChange)
	if leaves := layout.Tree().Leaves(); len(leaves) > 0 {
		m.focus = leaves[0].ID
	}
	return m
}

func (m *Model) attachDragDrop() {
	m.drag = usecase.NewDragDropController(m.ctx, m.layout, m.doc, m.settings.edgeRatio)
	m.drag.OnDrop(func(res usecase.DropResult) {
		// A swap moves the dragged content into the target pane.
		m.focus = res.Source
		if res.Action == usecase.DropSwap {
			m.focus = res.Target
		}
		m.status = fmt.Sprintf("%s %s onto %s", res.Action, res.Source, res.Target)
		m.commit()
	})
	m.drag.Attach(m.doc)
}

// Post returns a function that runs fn on the update loop of program. It
// is the post hook for a mainloop.Coalescer.
func Post(program *tea.Program) func(func()) {
	return func(fn func()) {
		program.Send(postedMsg{fn: fn})
	}
}

// ApplyConfig swaps in new rendering and interaction settings. It must run on
// the update loop; use Post from other goroutines.
func (m *Model) ApplyConfig(cfg *config.Config) {
	s := settingsFrom(cfg)
	gridChanged := s.grid != m.settings.grid
	dragChanged := s.dragDrop != m.settings.dragDrop || s.edgeRatio != m.settings.edgeRatio

	m.settings = s
	m.styles = newPaneStyles(s.colors)
	m.keys = newKeyMap(s.keys)

	if dragChanged {
		if m.drag != nil {
			m.drag.Detach()
			m.drag = nil
		}
		if s.dragDrop {
			m.attachDragDrop()
		}
	}
	if gridChanged && m.width > 0 {
		m.resizeTo(m.width, m.height)
	}
	logging.FromContext(m.ctx).Info().Msg("configuration applied")
}

// Close detaches the controllers and flushes the autosave.
func (m *Model) Close(ctx context.Context) error {
	m.resize.Detach()
	if m.drag != nil {
		m.drag.Detach()
	}
	if m.autosave != nil {
		return m.autosave.Stop(ctx)
	}
	return nil
}

// Focus returns the focused pane.
func (m *Model) Focus() entity.NodeID {
	return m.focus
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resizeTo(msg.Width, msg.Height)
		m.help.Width = msg.Width

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case frameMsg:
		m.frames.RunFrame()

	case postedMsg:
		msg.fn()

	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.err = nil
			m.status = fmt.Sprintf("saved %q", msg.name)
		}
	}

	if m.armed {
		m.armed = false
		return m, tea.Batch(cmd, tea.Tick(m.settings.frameInterval, func(time.Time) tea.Msg {
			return frameMsg{}
		}))
	}
	return m, cmd
}

func (m *Model) resizeTo(width, height int) {
	m.width, m.height = width, height
	rows := max(height-statusRows, 1)
	cols := max(width, 1)
	if err := m.layout.SetBounds(m.ctx, m.settings.grid.bounds(cols, rows)); err != nil {
		m.err = err
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	var kind port.PointerEventKind
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		kind = port.PointerDown
	case tea.MouseActionMotion:
		kind = port.PointerMove
	case tea.MouseActionRelease:
		kind = port.PointerUp
	default:
		return
	}

	x, y := m.settings.grid.pointer(msg.X, msg.Y)
	target := dispatcher.HitTest(m.layout.Tree(), x, y, m.settings.tolerance())
	if kind == port.PointerDown && target.Kind == port.HitLeaf {
		m.focus = target.ID
	}
	m.doc.Dispatch(port.PointerEvent{
		Kind:   kind,
		X:      x,
		Y:      y,
		Button: int(msg.Button),
		Target: target,
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.search.Focused() {
		return m.handleSearchKey(msg)
	}
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.SplitRight):
		m.split(entity.PositionRight)
	case key.Matches(msg, m.keys.SplitDown):
		m.split(entity.PositionBottom)
	case key.Matches(msg, m.keys.Close):
		m.closeFocused()
	case key.Matches(msg, m.keys.FocusNext):
		m.focusNext()
	case key.Matches(msg, m.keys.Save):
		return m.save()
	case key.Matches(msg, m.keys.Search):
		m.search.SetValue("")
		m.matches = nil
		return m.search.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.showHelp = true
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.Blur()
		m.matches = nil
		return nil
	case tea.KeyEnter:
		if len(m.matches) > 0 {
			m.focus = m.matches[0].ID
		}
		m.search.Blur()
		m.matches = nil
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != "" {
		m.matches = m.finder.Find(m.ctx, m.layout.Tree(), q)
	} else {
		m.matches = nil
	}
	return cmd
}

func (m *Model) split(pos entity.Position) {
	pane, err := m.layout.Split(m.ctx, usecase.SplitInput{Target: m.focus, Position: pos})
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.focus = pane.ID
	m.commit()
}

func (m *Model) closeFocused() {
	tree := m.layout.Tree()
	parent, ok := tree.Parent(m.focus)
	if !ok {
		m.err = errors.New("cannot close the last pane")
		return
	}
	sibling := parent.Children[0]
	if sibling == m.focus {
		sibling = parent.Children[1]
	}
	if err := m.layout.Close(m.ctx, m.focus); err != nil {
		m.err = err
		return
	}
	m.err = nil
	// The sibling survives in the parent's place.
	if under, err := tree.LeafDescendants(sibling); err == nil && len(under) > 0 {
		m.focus = under[0].ID
	}
	m.commit()
}

func (m *Model) focusNext() {
	leaves := m.layout.Tree().Leaves()
	if len(leaves) == 0 {
		return
	}
	for i, leaf := range leaves {
		if leaf.ID == m.focus {
			m.focus = leaves[(i+1)%len(leaves)].ID
			return
		}
	}
	m.focus = leaves[0].ID
}

func (m *Model) save() tea.Cmd {
	if m.snapshots == nil {
		m.err = errors.New("snapshots are not available")
		return nil
	}
	snap := entity.NewLayoutSnapshot(m.saveName, m.layout.Tree(), time.Now())
	uc, ctx := m.snapshots, m.ctx
	return func() tea.Msg {
		return savedMsg{name: snap.Name, err: uc.Store(ctx, snap)}
	}
}

// handleChange keeps focus on a live pane after any mutation.
func (m *Model) handleChange(change usecase.LayoutChange) {
	if _, ok := m.layout.Tree().Node(m.focus); ok {
		return
	}
	if leaves := m.layout.Tree().Leaves(); len(leaves) > 0 {
		m.focus = leaves[0].ID
	}
	logging.FromContext(m.ctx).Trace().Str("change", string(change.Kind)).Msg("focus reset")
}

// commit runs after a gesture or key action that changed the layout.
func (m *Model) commit() {
	if m.autosave != nil {
		m.autosave.MarkDirty(m.layout.Tree())
	}
}

func (m *Model) paneState(id entity.NodeID) paneState {
	if muntin, ok := m.resize.ActiveMuntin(); ok {
		if under, err := m.layout.Tree().LeafDescendants(muntin); err == nil {
			for _, leaf := range under {
				if leaf.ID == id {
					return paneResizing
				}
			}
		}
	}
	for _, match := range m.matches {
		if match.ID == id {
			return paneMatched
		}
	}
	if id == m.focus {
		return paneFocused
	}
	return paneNormal
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	r := renderer{
		tree:   m.layout.Tree(),
		grid:   m.settings.grid,
		styles: m.styles,
		state:  m.paneState,
	}
	return r.render() + "\n" + m.statusLine()
}

func (m *Model) statusLine() string {
	switch {
	case m.search.Focused():
		line := m.search.View()
		if len(m.matches) > 0 {
			names := make([]string, 0, len(m.matches))
			for _, match := range m.matches {
				names = append(names, match.Label)
			}
			line += "  " + m.styles.subtle.Render(strings.Join(names, " "))
		}
		return line
	case m.err != nil:
		return m.styles.errStyle.Render(m.err.Error())
	case m.resize.State() == usecase.GestureDragging:
		return m.styles.statusOK.Render(cursorLabel(m.doc.Cursor()) + " resizing")
	case m.drag != nil && m.drag.State() == usecase.GestureDragging && m.doc.Cursor() == port.CursorMove:
		source, _ := m.drag.Source()
		return m.styles.statusOK.Render(cursorLabel(port.CursorMove) + " moving " + string(source))
	case m.status != "":
		return m.styles.status.Render(m.status)
	case m.showHelp:
		return m.help.View(m.keys)
	default:
		return ""
	}
}

func cursorLabel(c port.Cursor) string {
	switch c {
	case port.CursorColResize:
		return "↔"
	case port.CursorRowResize:
		return "↕"
	case port.CursorMove:
		return "✥"
	default:
		return ""
	}
}

package entity

import (
	"fmt"
	"slices"
)

// NodeID uniquely identifies a sash within a tree.
type NodeID string

// IDGenerator produces candidate node IDs. The tree skips values already in use.
type IDGenerator func() string

// NewSequentialIDGenerator returns a generator yielding short, readable IDs
// such as "sb0", "sc0", ... for the given prefix.
func NewSequentialIDGenerator(prefix string) IDGenerator {
	const idAlphabetSize = 26
	var counter uint64
	return func() string {
		counter++
		return fmt.Sprintf("%s%c%d", prefix, 'a'+rune(counter%idAlphabetSize), counter/idAlphabetSize)
	}
}

// DefaultMinPaneSize is the floor applied to every pane on both axes when
// neither the node nor the tree options ask for more.
const DefaultMinPaneSize = 10.0

// handle addresses a slot in the tree arena.
type handle int

const noHandle handle = -1

var leafChildren = [2]handle{noHandle, noHandle}

// sash is the arena record of one node. Children are stored in geometric
// order: the left/top child first.
type sash struct {
	id        NodeID
	position  Position
	rect      Rect
	minWidth  float64
	minHeight float64
	parent    handle
	children  [2]handle
	store     Store
	domNode   any
	live      bool
}

func (s *sash) isLeaf() bool {
	return s.children[0] == noHandle
}

func (s *sash) minOn(axis Axis) float64 {
	if axis == AxisVertical {
		return s.minHeight
	}
	return s.minWidth
}

// Sash is a read-only snapshot of one node, handed out by the lookup surface.
// Mutating its fields has no effect on the tree; the Store map is shared.
type Sash struct {
	ID        NodeID
	Position  Position
	Rect      Rect
	MinWidth  float64
	MinHeight float64
	Store     Store
	// Handle is the rendering handle slot owned by the renderer.
	Handle   any
	Parent   NodeID
	Children []NodeID
}

// IsLeaf reports whether the node is a pane.
func (s Sash) IsLeaf() bool {
	return len(s.Children) == 0
}

// IsRoot reports whether the node is the tree root.
func (s Sash) IsRoot() bool {
	return s.Position == PositionRoot
}

// Tree is a binary split tree of sashes stored in an arena. Parent and child
// links are arena handles; public methods address nodes by NodeID.
//
// A Tree is not safe for concurrent use. It is meant to be owned by the UI
// event loop.
type Tree struct {
	nodes       []sash
	free        []handle
	index       map[NodeID]handle
	root        handle
	nextID      IDGenerator
	minPaneSize float64
	// reserved holds the configuration's explicit IDs while NewTree runs.
	reserved map[NodeID]struct{}
}

// TreeOption customizes a Tree at construction time.
type TreeOption func(*Tree)

// WithIDGenerator sets the generator used for IDs the configuration does not provide.
func WithIDGenerator(gen IDGenerator) TreeOption {
	return func(t *Tree) {
		if gen != nil {
			t.nextID = gen
		}
	}
}

// WithMinPaneSize sets the floor applied to every pane on both axes.
func WithMinPaneSize(px float64) TreeOption {
	return func(t *Tree) {
		if px >= 0 {
			t.minPaneSize = px
		}
	}
}

// NewTree compiles a layout configuration into a tree filling bounds.
// The root's own size and position are ignored: it always covers bounds.
func NewTree(cfg LayoutEntry, bounds Rect, opts ...TreeOption) (*Tree, error) {
	if !(bounds.Width > 0) || !(bounds.Height > 0) {
		return nil, fmt.Errorf("%w: container %gx%g", ErrInvalidSize, bounds.Width, bounds.Height)
	}
	t := &Tree{
		index:       make(map[NodeID]handle),
		root:        noHandle,
		nextID:      NewSequentialIDGenerator("s"),
		minPaneSize: DefaultMinPaneSize,
	}
	for _, opt := range opts {
		opt(t)
	}

	rootCfg, err := Normalize(cfg)
	if err != nil {
		return nil, err
	}
	t.reserved = make(map[NodeID]struct{})
	reserveIDs(rootCfg, t.reserved)
	root, err := t.build(rootCfg, PositionRoot, bounds, noHandle)
	t.reserved = nil
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

// placement is a normalized child config with its negotiated tag and rect.
type placement struct {
	cfg  LayoutConfig
	pos  Position
	rect Rect
}

func (t *Tree) build(cfg LayoutConfig, pos Position, rect Rect, parent handle) (handle, error) {
	id, err := t.claimID(cfg.ID)
	if err != nil {
		return noHandle, err
	}
	store := cfg.Store
	if store == nil {
		store = Store{}
	}
	h := t.alloc(sash{
		id:        id,
		position:  pos,
		rect:      rect,
		minWidth:  cfg.MinWidth,
		minHeight: cfg.MinHeight,
		parent:    parent,
		children:  leafChildren,
		store:     store,
		live:      true,
	})
	t.index[id] = h

	switch len(cfg.Children) {
	case 0:
		return h, nil
	case 2:
	default:
		return noHandle, fmt.Errorf("%w: node %q has %d children, want 0 or 2", ErrInvalidConfig, id, len(cfg.Children))
	}

	pair, err := negotiate(cfg.Children[0], cfg.Children[1], rect)
	if err != nil {
		return noHandle, fmt.Errorf("node %q: %w", id, err)
	}
	var children [2]handle
	for i, p := range pair {
		child, err := t.build(p.cfg, p.pos, p.rect, h)
		if err != nil {
			return noHandle, err
		}
		children[i] = child
	}
	t.nodes[h].children = children
	return h, nil
}

// negotiate settles the positions and sizes of two sibling configurations
// inside parent. The entry carrying explicit geometry is primary; the other
// derives its tag and size from it. The result is in geometric order.
func negotiate(a, b LayoutEntry, parent Rect) ([2]placement, error) {
	first, err := Normalize(a)
	if err != nil {
		return [2]placement{}, err
	}
	second, err := Normalize(b)
	if err != nil {
		return [2]placement{}, err
	}

	primary, secondary := &first, &second
	if !first.hasGeometry() && second.hasGeometry() {
		primary, secondary = &second, &first
	}

	for _, c := range []*LayoutConfig{primary, secondary} {
		if c.Position != PositionNone && !c.Position.IsDirectional() {
			return [2]placement{}, fmt.Errorf("%w: child cannot be %s", ErrInvalidPosition, c.Position)
		}
	}

	switch {
	case primary.Position != PositionNone && secondary.Position != PositionNone:
		if secondary.Position != primary.Position.Opposite() {
			return [2]placement{}, fmt.Errorf("%w: %s and %s", ErrSiblingPositionMismatch, primary.Position, secondary.Position)
		}
	case primary.Position != PositionNone:
		secondary.Position = primary.Position.Opposite()
	case secondary.Position != PositionNone:
		primary.Position = secondary.Position.Opposite()
	default:
		primary.Position = PositionLeft
		secondary.Position = PositionRight
	}

	axis := primary.Position.Axis()
	extent := parent.Extent(axis)

	var primarySize, secondarySize float64
	switch {
	case primary.Size.IsSet() && secondary.Size.IsSet():
		primarySize = primary.Size.Resolve(extent)
		secondarySize = secondary.Size.Resolve(extent)
		if !approxEqual(primarySize+secondarySize, extent, sizeTolerance(extent)) {
			return [2]placement{}, fmt.Errorf("%w: %s + %s != %g", ErrSiblingSizeMismatch, primary.Size, secondary.Size, extent)
		}
		secondarySize = extent - primarySize
	case primary.Size.IsSet():
		primarySize = primary.Size.Resolve(extent)
		secondarySize = extent - primarySize
	case secondary.Size.IsSet():
		secondarySize = secondary.Size.Resolve(extent)
		primarySize = extent - secondarySize
	default:
		primarySize = extent / 2
		secondarySize = extent - primarySize
	}
	if !(primarySize > 0) || !(secondarySize > 0) {
		return [2]placement{}, fmt.Errorf("%w: split of %g leaves %g and %g", ErrInvalidSize, extent, primarySize, secondarySize)
	}

	p := placement{cfg: *primary, pos: primary.Position, rect: childRect(parent, primary.Position, primarySize)}
	s := placement{cfg: *secondary, pos: secondary.Position, rect: childRect(parent, secondary.Position, secondarySize)}
	if p.pos.IsLeading() {
		return [2]placement{p, s}, nil
	}
	return [2]placement{s, p}, nil
}

func (t *Tree) alloc(n sash) handle {
	if k := len(t.free); k > 0 {
		h := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[h] = n
		return h
	}
	t.nodes = append(t.nodes, n)
	return handle(len(t.nodes) - 1)
}

// release returns a slot to the free list. The caller maintains the index.
func (t *Tree) release(h handle) {
	t.nodes[h] = sash{parent: noHandle, children: leafChildren}
	t.free = append(t.free, h)
}

func (t *Tree) claimID(id NodeID) (NodeID, error) {
	if id == "" {
		return t.generateID(), nil
	}
	if _, taken := t.index[id]; taken {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	return id, nil
}

func (t *Tree) generateID() NodeID {
	for {
		id := NodeID(t.nextID())
		if id == "" {
			continue
		}
		if _, taken := t.index[id]; taken {
			continue
		}
		if _, taken := t.reserved[id]; taken {
			continue
		}
		return id
	}
}

// reserveIDs records every explicit ID in cfg so generated IDs avoid the
// ones later siblings will claim. Entries that fail to normalize are left
// for build to report.
func reserveIDs(cfg LayoutConfig, into map[NodeID]struct{}) {
	if cfg.ID != "" {
		into[cfg.ID] = struct{}{}
	}
	for _, child := range cfg.Children {
		if c, err := Normalize(child); err == nil {
			reserveIDs(c, into)
		}
	}
}

func (t *Tree) lookup(id NodeID) (handle, error) {
	h, ok := t.index[id]
	if !ok {
		return noHandle, fmt.Errorf("%w: %s", ErrTargetNotFound, id)
	}
	return h, nil
}

func (t *Tree) sibling(h handle) handle {
	p := t.nodes[h].parent
	if p == noHandle {
		return noHandle
	}
	c := t.nodes[p].children
	if c[0] == h {
		return c[1]
	}
	return c[0]
}

func (t *Tree) view(h handle) Sash {
	n := &t.nodes[h]
	out := Sash{
		ID:        n.id,
		Position:  n.position,
		Rect:      n.rect,
		MinWidth:  n.minWidth,
		MinHeight: n.minHeight,
		Store:     n.store,
		Handle:    n.domNode,
	}
	if n.parent != noHandle {
		out.Parent = t.nodes[n.parent].id
	}
	if !n.isLeaf() {
		out.Children = []NodeID{t.nodes[n.children[0]].id, t.nodes[n.children[1]].id}
	}
	return out
}

// Node returns the node with the given ID.
func (t *Tree) Node(id NodeID) (Sash, bool) {
	h, ok := t.index[id]
	if !ok {
		return Sash{}, false
	}
	return t.view(h), true
}

// Root returns the root node.
func (t *Tree) Root() Sash {
	return t.view(t.root)
}

// Bounds returns the container rectangle the tree fills.
func (t *Tree) Bounds() Rect {
	return t.nodes[t.root].rect
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.index)
}

// MinPaneSize returns the floor applied to every pane.
func (t *Tree) MinPaneSize() float64 {
	return t.minPaneSize
}

// Parent returns the parent of id. It reports false for the root and for
// unknown IDs.
func (t *Tree) Parent(id NodeID) (Sash, bool) {
	h, ok := t.index[id]
	if !ok || t.nodes[h].parent == noHandle {
		return Sash{}, false
	}
	return t.view(t.nodes[h].parent), true
}

// Walk visits every node in pre-order. Traversal stops as soon as fn returns false.
func (t *Tree) Walk(fn func(Sash) bool) {
	t.walk(t.root, func(h handle) bool { return fn(t.view(h)) })
}

func (t *Tree) walk(start handle, fn func(handle) bool) {
	stack := []handle{start}
	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(h) {
			return
		}
		if c := t.nodes[h].children; c[0] != noHandle {
			stack = append(stack, c[1], c[0])
		}
	}
}

// Leaves returns every pane, left/top subtrees first.
func (t *Tree) Leaves() []Sash {
	return t.leavesUnder(t.root)
}

// LeafDescendants returns the panes below id (id itself when it is a pane).
func (t *Tree) LeafDescendants(id NodeID) ([]Sash, error) {
	h, err := t.lookup(id)
	if err != nil {
		return nil, err
	}
	return t.leavesUnder(h), nil
}

func (t *Tree) leavesUnder(start handle) []Sash {
	var out []Sash
	t.walk(start, func(h handle) bool {
		if t.nodes[h].isLeaf() {
			out = append(out, t.view(h))
		}
		return true
	})
	return out
}

// SplitAxis returns the axis along which id arranges its children, or
// AxisNone for a pane or an unknown ID.
func (t *Tree) SplitAxis(id NodeID) Axis {
	h, ok := t.index[id]
	if !ok || t.nodes[h].isLeaf() {
		return AxisNone
	}
	return t.nodes[t.nodes[h].children[0]].position.Axis()
}

// IsHorizontalSplit reports whether id has a Left child, i.e. its children
// sit side by side.
func (t *Tree) IsHorizontalSplit(id NodeID) bool {
	return t.SplitAxis(id) == AxisHorizontal
}

// IsVerticalSplit reports whether id has a Top child, i.e. its children are stacked.
func (t *Tree) IsVerticalSplit(id NodeID) bool {
	return t.SplitAxis(id) == AxisVertical
}

// LeafAt returns the pane containing the point.
func (t *Tree) LeafAt(x, y float64) (Sash, bool) {
	h := t.root
	if !t.nodes[h].rect.Contains(x, y) {
		return Sash{}, false
	}
	for !t.nodes[h].isLeaf() {
		c := t.nodes[h].children
		if t.nodes[c[0]].rect.Contains(x, y) {
			h = c[0]
		} else {
			h = c[1]
		}
	}
	return t.view(h), true
}

// MuntinAt returns the muntin whose divider line lies within tolerance of
// the point. When several qualify the closest wins, the deepest on ties.
func (t *Tree) MuntinAt(x, y, tolerance float64) (Sash, bool) {
	best := noHandle
	bestDist := tolerance
	t.walk(t.root, func(h handle) bool {
		n := &t.nodes[h]
		if n.isLeaf() {
			return true
		}
		second := &t.nodes[n.children[1]]
		axis := second.position.Axis()
		line := second.rect.Offset(axis)
		along, cross := x, y
		if axis == AxisVertical {
			along, cross = y, x
		}
		crossAxis := axis.Cross()
		if cross < n.rect.Offset(crossAxis) || cross >= n.rect.Offset(crossAxis)+n.rect.Extent(crossAxis) {
			return true
		}
		if d := abs(along - line); d <= bestDist {
			best, bestDist = h, d
		}
		return true
	})
	if best == noHandle {
		return Sash{}, false
	}
	return t.view(best), true
}

// SetHandle stores the renderer's handle for id.
func (t *Tree) SetHandle(id NodeID, rendering any) error {
	h, err := t.lookup(id)
	if err != nil {
		return err
	}
	t.nodes[h].domNode = rendering
	return nil
}

// IDs returns all node IDs in pre-order.
func (t *Tree) IDs() []NodeID {
	ids := make([]NodeID, 0, len(t.index))
	t.walk(t.root, func(h handle) bool {
		ids = append(ids, t.nodes[h].id)
		return true
	})
	return slices.Clip(ids)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

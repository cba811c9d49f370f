package entity

import (
	"fmt"
	"maps"
	"slices"
)

// AddPaneOptions describes the pane created by AddPane.
type AddPaneOptions struct {
	// Position is the side of the target the new pane takes. Required.
	Position Position
	// Size of the new pane along the split axis. Defaults to 50%.
	Size SizeSpec
	// ID of the new pane; generated when empty.
	ID        NodeID
	Store     Store
	Handle    any
	MinWidth  float64
	MinHeight float64
}

func (o AddPaneOptions) minOn(axis Axis) float64 {
	if axis == AxisVertical {
		return o.MinHeight
	}
	return o.MinWidth
}

// AddPane splits the pane target. The target slot becomes a muntin with a
// fresh ID; its two children are the new, empty pane and a pane that keeps
// the target's ID, payload, handle and minimums. It returns the new pane.
// A split that would leave either pane below its minimum fails with
// ErrInvalidSize.
func (t *Tree) AddPane(target NodeID, opts AddPaneOptions) (Sash, error) {
	h, err := t.lookup(target)
	if err != nil {
		return Sash{}, err
	}
	if !t.nodes[h].isLeaf() {
		return Sash{}, fmt.Errorf("add pane to %s: %w", target, ErrNotLeaf)
	}
	if !opts.Position.IsDirectional() {
		return Sash{}, fmt.Errorf("add pane to %s at %s: %w", target, opts.Position, ErrInvalidPosition)
	}
	if opts.ID != "" {
		if _, taken := t.index[opts.ID]; taken {
			return Sash{}, fmt.Errorf("add pane to %s: %w: %s", target, ErrDuplicateID, opts.ID)
		}
	}

	old := t.nodes[h]
	axis := opts.Position.Axis()
	extent := old.rect.Extent(axis)
	size := opts.Size
	if !size.IsSet() {
		size = Percent(50)
	}
	newExtent := size.Resolve(extent)
	if !(newExtent > 0) || !(newExtent < extent) {
		return Sash{}, fmt.Errorf("add pane to %s: %w: %s does not fit in %g", target, ErrInvalidSize, size, extent)
	}
	freshMin := max(opts.minOn(axis), t.minPaneSize)
	inheritMin := max(old.minOn(axis), t.minPaneSize)
	if newExtent < freshMin || extent-newExtent < inheritMin {
		return Sash{}, fmt.Errorf("add pane to %s: %w: splitting %g into %g and %g breaks the minimums %g and %g",
			target, ErrInvalidSize, extent, newExtent, extent-newExtent, freshMin, inheritMin)
	}

	store := opts.Store
	if store == nil {
		store = Store{}
	}
	inheritPos := opts.Position.Opposite()
	inherit := t.alloc(sash{
		id:        old.id,
		position:  inheritPos,
		rect:      childRect(old.rect, inheritPos, extent-newExtent),
		minWidth:  old.minWidth,
		minHeight: old.minHeight,
		parent:    h,
		children:  leafChildren,
		store:     old.store,
		domNode:   old.domNode,
		live:      true,
	})
	fresh := t.alloc(sash{
		position:  opts.Position,
		rect:      childRect(old.rect, opts.Position, newExtent),
		minWidth:  opts.MinWidth,
		minHeight: opts.MinHeight,
		parent:    h,
		children:  leafChildren,
		store:     store,
		domNode:   opts.Handle,
		live:      true,
	})

	// The new pane's ID is claimed first so the muntin's generated ID
	// cannot collide with it.
	freshID := opts.ID
	if freshID == "" {
		freshID = t.generateID()
	}
	t.nodes[fresh].id = freshID
	t.index[freshID] = fresh

	muntinID := t.generateID()
	muntin := &t.nodes[h]
	delete(t.index, old.id)
	muntin.id = muntinID
	t.index[muntinID] = h
	muntin.store = Store{}
	muntin.domNode = nil
	muntin.minWidth, muntin.minHeight = 0, 0
	if opts.Position.IsLeading() {
		muntin.children = [2]handle{fresh, inherit}
	} else {
		muntin.children = [2]handle{inherit, fresh}
	}
	t.index[old.id] = inherit

	return t.view(fresh), nil
}

// RemovePane deletes the pane id. Its parent collapses into the surviving
// sibling: it adopts the sibling's ID, payload, handle, minimums and
// children, keeps its own rectangle, and re-lays any promoted children to
// fill it. Removing the root pane fails with ErrParentNotFound.
func (t *Tree) RemovePane(id NodeID) error {
	h, err := t.lookup(id)
	if err != nil {
		return err
	}
	if !t.nodes[h].isLeaf() {
		return fmt.Errorf("remove %s: %w", id, ErrNotLeaf)
	}
	ph := t.nodes[h].parent
	if ph == noHandle {
		return fmt.Errorf("remove %s: %w", id, ErrParentNotFound)
	}
	sh := t.sibling(h)
	sib := t.nodes[sh]
	parent := &t.nodes[ph]
	parentRect := parent.rect

	delete(t.index, id)
	delete(t.index, parent.id)
	parent.id = sib.id
	parent.store = sib.store
	parent.domNode = sib.domNode
	parent.minWidth = sib.minWidth
	parent.minHeight = sib.minHeight
	parent.children = sib.children
	t.index[sib.id] = ph

	t.release(h)
	t.release(sh)

	if !sib.isLeaf() {
		for _, c := range sib.children {
			t.nodes[c].parent = ph
		}
		// The promoted subtree still carries the sibling's rectangle.
		t.nodes[ph].rect = sib.rect
		t.fit(ph, parentRect)
	}
	return nil
}

// PairExtents records a muntin's child extents along its split axis.
// Resize gestures capture it once and resize relative to it.
type PairExtents struct {
	Axis   Axis
	First  float64
	Second float64
}

// PairExtents returns the current extents of the muntin's two children.
func (t *Tree) PairExtents(id NodeID) (PairExtents, error) {
	h, err := t.lookup(id)
	if err != nil {
		return PairExtents{}, err
	}
	n := &t.nodes[h]
	if n.isLeaf() {
		return PairExtents{}, fmt.Errorf("pair extents of %s: %w", id, ErrNotMuntin)
	}
	axis := t.nodes[n.children[0]].position.Axis()
	return PairExtents{
		Axis:   axis,
		First:  t.nodes[n.children[0]].rect.Extent(axis),
		Second: t.nodes[n.children[1]].rect.Extent(axis),
	}, nil
}

// ResizeSiblingPair moves the divider of muntin id so its first (left/top)
// child is start.First+delta long; the second child takes the rest and its
// offset shifts accordingly. delta is measured from the gesture start, so
// repeated calls never compound. When either child would drop below its
// minimum the call changes nothing and reports false.
func (t *Tree) ResizeSiblingPair(id NodeID, start PairExtents, delta float64) (bool, error) {
	h, err := t.lookup(id)
	if err != nil {
		return false, err
	}
	n := &t.nodes[h]
	if n.isLeaf() {
		return false, fmt.Errorf("resize %s: %w", id, ErrNotMuntin)
	}
	first, second := n.children[0], n.children[1]
	axis := t.nodes[first].position.Axis()
	total := n.rect.Extent(axis)

	newFirst := start.First + delta
	newSecond := total - newFirst
	if newFirst < t.minExtent(first, axis) || newSecond < t.minExtent(second, axis) {
		return false, nil
	}
	t.fit(first, n.rect.slice(axis, 0, newFirst))
	t.fit(second, n.rect.slice(axis, newFirst, newSecond))
	return true, nil
}

// SwapLeaves exchanges the payload and rendering handle of two panes.
// Topology, IDs and geometry are untouched.
func (t *Tree) SwapLeaves(a, b NodeID) error {
	ha, err := t.lookup(a)
	if err != nil {
		return err
	}
	hb, err := t.lookup(b)
	if err != nil {
		return err
	}
	if ha == hb {
		return nil
	}
	na, nb := &t.nodes[ha], &t.nodes[hb]
	if !na.isLeaf() || !nb.isLeaf() {
		return fmt.Errorf("swap %s and %s: %w", a, b, ErrNotLeaf)
	}
	na.store, nb.store = nb.store, na.store
	na.domNode, nb.domNode = nb.domNode, na.domNode
	return nil
}

// MoveLeaf detaches pane src and re-inserts it on side pos of pane target,
// keeping its ID, payload, handle and minimums. Moving a pane onto itself
// is a no-op. When the pane does not fit beside target the tree is left
// unchanged.
func (t *Tree) MoveLeaf(src, target NodeID, pos Position) (Sash, error) {
	hs, err := t.lookup(src)
	if err != nil {
		return Sash{}, err
	}
	ht, err := t.lookup(target)
	if err != nil {
		return Sash{}, err
	}
	if hs == ht {
		return t.view(hs), nil
	}
	if !t.nodes[hs].isLeaf() || !t.nodes[ht].isLeaf() {
		return Sash{}, fmt.Errorf("move %s to %s: %w", src, target, ErrNotLeaf)
	}
	if !pos.IsDirectional() {
		return Sash{}, fmt.Errorf("move %s to %s at %s: %w", src, target, pos, ErrInvalidPosition)
	}

	moved := t.nodes[hs]
	before := t.checkpoint()
	if err := t.RemovePane(src); err != nil {
		return Sash{}, err
	}
	added, err := t.AddPane(target, AddPaneOptions{
		Position:  pos,
		ID:        moved.id,
		Store:     moved.store,
		Handle:    moved.domNode,
		MinWidth:  moved.minWidth,
		MinHeight: moved.minHeight,
	})
	if err != nil {
		t.rollback(before)
		return Sash{}, fmt.Errorf("move %s to %s: %w", src, target, err)
	}
	return added, nil
}

// treeCheckpoint captures the arena so a failed compound edit can be undone.
// Stores and handles are shared, not copied.
type treeCheckpoint struct {
	nodes []sash
	free  []handle
	index map[NodeID]handle
	root  handle
}

func (t *Tree) checkpoint() treeCheckpoint {
	return treeCheckpoint{
		nodes: slices.Clone(t.nodes),
		free:  slices.Clone(t.free),
		index: maps.Clone(t.index),
		root:  t.root,
	}
}

func (t *Tree) rollback(c treeCheckpoint) {
	t.nodes, t.free, t.index, t.root = c.nodes, c.free, c.index, c.root
}

// SetBounds re-lays the whole tree into a new container rectangle, keeping
// every split's proportions where the minimums allow it.
func (t *Tree) SetBounds(bounds Rect) error {
	if !(bounds.Width > 0) || !(bounds.Height > 0) {
		return fmt.Errorf("%w: container %gx%g", ErrInvalidSize, bounds.Width, bounds.Height)
	}
	t.fit(t.root, bounds)
	return nil
}

// fit re-lays the subtree at h into rect. Each split keeps the share its
// first child had; the share is clamped so both sides keep their minimums
// whenever rect is large enough for both.
func (t *Tree) fit(h handle, rect Rect) {
	n := &t.nodes[h]
	old := n.rect
	n.rect = rect
	if n.isLeaf() {
		return
	}
	first, second := n.children[0], n.children[1]
	axis := t.nodes[first].position.Axis()
	extent := rect.Extent(axis)
	oldExtent := old.Extent(axis)
	oldFirst := t.nodes[first].rect.Extent(axis)

	firstExtent := oldFirst
	switch {
	case approxEqual(extent, oldExtent, 0):
	case oldExtent > 0:
		firstExtent = extent * oldFirst / oldExtent
	default:
		firstExtent = extent / 2
	}
	minFirst, minSecond := t.minExtent(first, axis), t.minExtent(second, axis)
	if minFirst+minSecond <= extent {
		firstExtent = clamp(firstExtent, minFirst, extent-minSecond)
	}

	t.fit(first, rect.slice(axis, 0, firstExtent))
	t.fit(second, rect.slice(axis, firstExtent, extent-firstExtent))
}

// minExtent is the smallest extent the subtree at h accepts along axis.
func (t *Tree) minExtent(h handle, axis Axis) float64 {
	n := &t.nodes[h]
	if n.isLeaf() {
		return max(n.minOn(axis), t.minPaneSize)
	}
	a := t.minExtent(n.children[0], axis)
	b := t.minExtent(n.children[1], axis)
	combined := max(a, b)
	if t.nodes[n.children[0]].position.Axis() == axis {
		combined = a + b
	}
	return max(n.minOn(axis), combined)
}

// MinExtent returns the smallest extent the subtree at id accepts along axis.
func (t *Tree) MinExtent(id NodeID, axis Axis) (float64, error) {
	h, err := t.lookup(id)
	if err != nil {
		return 0, err
	}
	return t.minExtent(h, axis), nil
}

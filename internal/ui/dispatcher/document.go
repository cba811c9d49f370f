// Package dispatcher delivers pointer events to document-level listeners.
package dispatcher

import (
	"slices"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/domain/entity"
)

type listener struct {
	id port.ListenerID
	fn port.PointerListener
}

// Document is the process-wide pointer event source. Controllers register
// here instead of on individual panes so a drag survives the pointer leaving
// the divider. It also records the cursor hint for the renderer.
//
// Document is not safe for concurrent use; it lives on the UI loop.
type Document struct {
	nextID    port.ListenerID
	listeners map[port.PointerEventKind][]listener
	cursor    port.Cursor
}

var (
	_ port.PointerEventTarget = (*Document)(nil)
	_ port.CursorHinter       = (*Document)(nil)
)

// NewDocument creates a document with no listeners.
func NewDocument() *Document {
	return &Document{listeners: make(map[port.PointerEventKind][]listener)}
}

// AddPointerListener registers fn for events of kind.
func (d *Document) AddPointerListener(kind port.PointerEventKind, fn port.PointerListener) port.ListenerID {
	d.nextID++
	d.listeners[kind] = append(d.listeners[kind], listener{id: d.nextID, fn: fn})
	return d.nextID
}

// RemovePointerListener unregisters a listener. Unknown IDs are ignored.
func (d *Document) RemovePointerListener(id port.ListenerID) {
	for kind, ls := range d.listeners {
		d.listeners[kind] = slices.DeleteFunc(ls, func(l listener) bool { return l.id == id })
	}
}

// ListenerCount returns the number of registered listeners.
func (d *Document) ListenerCount() int {
	n := 0
	for _, ls := range d.listeners {
		n += len(ls)
	}
	return n
}

// Dispatch delivers ev to the listeners registered for its kind, in
// registration order. Listeners removed by an earlier listener during the
// same dispatch are skipped.
func (d *Document) Dispatch(ev port.PointerEvent) {
	snapshot := slices.Clone(d.listeners[ev.Kind])
	for _, l := range snapshot {
		if !d.registered(ev.Kind, l.id) {
			continue
		}
		l.fn(ev)
	}
}

func (d *Document) registered(kind port.PointerEventKind, id port.ListenerID) bool {
	return slices.ContainsFunc(d.listeners[kind], func(l listener) bool { return l.id == id })
}

// SetCursor records the cursor hint.
func (d *Document) SetCursor(c port.Cursor) {
	d.cursor = c
}

// ClearCursor resets the cursor hint.
func (d *Document) ClearCursor() {
	d.cursor = port.CursorDefault
}

// Cursor returns the current cursor hint.
func (d *Document) Cursor() port.Cursor {
	return d.cursor
}

// HitTest finds what lies under (x, y). Dividers take precedence over panes
// within tolerance.
func HitTest(tree *entity.Tree, x, y, tolerance float64) port.HitTarget {
	if tree == nil {
		return port.HitTarget{}
	}
	if muntin, ok := tree.MuntinAt(x, y, tolerance); ok {
		return port.HitTarget{Kind: port.HitMuntin, ID: muntin.ID}
	}
	if leaf, ok := tree.LeafAt(x, y); ok {
		return port.HitTarget{Kind: port.HitLeaf, ID: leaf.ID}
	}
	return port.HitTarget{}
}

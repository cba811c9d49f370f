package port

import "github.com/bnema/sash/internal/domain/entity"

// PointerEventKind identifies a pointer event type.
type PointerEventKind int

const (
	PointerDown PointerEventKind = iota
	PointerMove
	PointerUp
)

func (k PointerEventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// HitKind says what a pointer event landed on.
type HitKind int

const (
	HitNone HitKind = iota
	// HitMuntin is the divider between the two children of a muntin.
	HitMuntin
	// HitLeaf is the body of a pane.
	HitLeaf
)

// HitTarget is the node under the pointer.
type HitTarget struct {
	Kind HitKind
	ID   entity.NodeID
}

// PointerEvent is a pointer sample in container coordinates.
type PointerEvent struct {
	Kind   PointerEventKind
	X, Y   float64
	Button int
	Target HitTarget
}

// PointerListener receives pointer events.
type PointerListener func(PointerEvent)

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

// PointerEventTarget is the document-level event source controllers attach to.
// Listeners see every event of their kind wherever the pointer is, so a drag
// keeps tracking after the pointer leaves the divider.
type PointerEventTarget interface {
	AddPointerListener(kind PointerEventKind, fn PointerListener) ListenerID
	RemovePointerListener(id ListenerID)
}

package usecase

import (
	"context"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/logging"
)

// DefaultDropEdgeRatio is the share of a pane's width or height, measured
// from each edge, that docks a dropped pane on that side.
const DefaultDropEdgeRatio = 0.25

// DropAction is what a completed drag did.
type DropAction string

const (
	DropSwap DropAction = "swap"
	DropMove DropAction = "move"
)

// DropResult is sent to OnDrop listeners after a successful drop.
type DropResult struct {
	Action   DropAction
	Source   entity.NodeID
	Target   entity.NodeID
	Position entity.Position
}

// DragDropController turns a press on one pane and a release on another
// into a swap (release in the centre) or a move (release near an edge).
type DragDropController struct {
	ctx       context.Context
	layout    *ManageLayoutUseCase
	cursor    port.CursorHinter
	edgeRatio float64

	target    port.PointerEventTarget
	listeners []port.ListenerID

	state  GestureState
	source entity.NodeID
	hinted bool

	onDrop []func(DropResult)
}

// NewDragDropController creates an idle controller. cursor may be nil; an
// edgeRatio outside (0, 0.5] falls back to DefaultDropEdgeRatio.
func NewDragDropController(
	ctx context.Context,
	layout *ManageLayoutUseCase,
	cursor port.CursorHinter,
	edgeRatio float64,
) *DragDropController {
	if edgeRatio <= 0 || edgeRatio > 0.5 {
		edgeRatio = DefaultDropEdgeRatio
	}
	return &DragDropController{
		ctx:       logging.WithComponent(ctx, "dragdrop"),
		layout:    layout,
		cursor:    cursor,
		edgeRatio: edgeRatio,
	}
}

// OnDrop registers fn to run after each successful drop.
func (c *DragDropController) OnDrop(fn func(DropResult)) {
	if fn != nil {
		c.onDrop = append(c.onDrop, fn)
	}
}

// State reports whether a pane is being dragged.
func (c *DragDropController) State() GestureState {
	return c.state
}

// Source returns the pane being dragged, if any.
func (c *DragDropController) Source() (entity.NodeID, bool) {
	return c.source, c.state == GestureDragging
}

// Attach registers the controller's listeners on target.
func (c *DragDropController) Attach(target port.PointerEventTarget) {
	if c.target != nil {
		c.Detach()
	}
	c.target = target
	c.listeners = []port.ListenerID{
		target.AddPointerListener(port.PointerDown, c.handleDown),
		target.AddPointerListener(port.PointerMove, c.handleMove),
		target.AddPointerListener(port.PointerUp, c.handleUp),
	}
}

// Detach removes the listeners and abandons a drag in progress.
func (c *DragDropController) Detach() {
	if c.target == nil {
		return
	}
	for _, id := range c.listeners {
		c.target.RemovePointerListener(id)
	}
	c.listeners = nil
	c.target = nil
	c.cancel()
}

func (c *DragDropController) droppable(id entity.NodeID) bool {
	tree := c.layout.Tree()
	if tree == nil {
		return false
	}
	node, ok := tree.Node(id)
	return ok && node.IsLeaf() && node.Store.Flag(entity.StoreDroppable, true)
}

func (c *DragDropController) handleDown(ev port.PointerEvent) {
	if c.state == GestureDragging || ev.Target.Kind != port.HitLeaf {
		return
	}
	if !c.droppable(ev.Target.ID) {
		return
	}
	c.state = GestureDragging
	c.source = ev.Target.ID
}

func (c *DragDropController) handleMove(ev port.PointerEvent) {
	if c.state != GestureDragging || c.hinted {
		return
	}
	// The hint appears once the pointer leaves the source pane.
	if ev.Target.Kind == port.HitLeaf && ev.Target.ID == c.source {
		return
	}
	c.hinted = true
	if c.cursor != nil {
		c.cursor.SetCursor(port.CursorMove)
	}
}

func (c *DragDropController) handleUp(ev port.PointerEvent) {
	if c.state != GestureDragging {
		return
	}
	source := c.source
	c.cancel()

	if ev.Target.Kind != port.HitLeaf || ev.Target.ID == source || !c.droppable(ev.Target.ID) {
		return
	}
	tree := c.layout.Tree()
	node, ok := tree.Node(ev.Target.ID)
	if !ok {
		return
	}

	result := DropResult{Source: source, Target: node.ID}
	result.Position = DropZone(node.Rect, ev.X, ev.Y, c.edgeRatio)

	var err error
	if result.Position == entity.PositionNone {
		result.Action = DropSwap
		err = c.layout.Swap(c.ctx, source, node.ID)
	} else {
		result.Action = DropMove
		_, err = c.layout.Move(c.ctx, source, node.ID, result.Position)
	}
	if err != nil {
		logging.FromContext(c.ctx).Warn().Err(err).
			Str("source", string(source)).
			Str("target", string(node.ID)).
			Msg("drop rejected")
		return
	}
	for _, fn := range c.onDrop {
		fn(result)
	}
}

func (c *DragDropController) cancel() {
	if c.hinted && c.cursor != nil {
		c.cursor.ClearCursor()
	}
	c.hinted = false
	c.state = GestureIdle
	c.source = ""
}

// DropZone maps a point inside rect to the side a dropped pane docks on.
// Points within edgeRatio of an edge pick that edge, the closest edge
// winning in corners; anything else is the centre, reported as PositionNone.
func DropZone(rect entity.Rect, x, y, edgeRatio float64) entity.Position {
	if rect.Width <= 0 || rect.Height <= 0 {
		return entity.PositionNone
	}
	fx := (x - rect.Left) / rect.Width
	fy := (y - rect.Top) / rect.Height

	best := entity.PositionNone
	bestDist := edgeRatio
	for _, side := range []struct {
		pos  entity.Position
		dist float64
	}{
		{entity.PositionLeft, fx},
		{entity.PositionRight, 1 - fx},
		{entity.PositionTop, fy},
		{entity.PositionBottom, 1 - fy},
	} {
		if side.dist < bestDist {
			best, bestDist = side.pos, side.dist
		}
	}
	return best
}

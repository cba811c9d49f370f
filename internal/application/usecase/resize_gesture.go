package usecase

import (
	"context"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/logging"
)

// GestureState is the state of an interaction controller.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
)

func (s GestureState) String() string {
	if s == GestureDragging {
		return "dragging"
	}
	return "idle"
}

// ResizeCommit is sent once when a resize gesture that moved a divider ends.
type ResizeCommit struct {
	Muntin  entity.NodeID
	Delta   float64
	Extents entity.PairExtents
}

// ResizeGestureController turns a divider drag into resize calls. Deltas are
// measured from the pointer position at gesture start, and pointer moves
// arriving between frames collapse into one resize per frame.
type ResizeGestureController struct {
	ctx    context.Context
	layout *ManageLayoutUseCase
	frames port.FrameScheduler
	cursor port.CursorHinter

	target    port.PointerEventTarget
	listeners []port.ListenerID

	state   GestureState
	muntin  entity.NodeID
	start   entity.PairExtents
	origin  float64
	latest  float64
	applied float64
	moved   bool

	framePending bool
	frameID      port.FrameID

	onCommit []func(ResizeCommit)
}

// NewResizeGestureController creates an idle controller. cursor may be nil.
func NewResizeGestureController(
	ctx context.Context,
	layout *ManageLayoutUseCase,
	frames port.FrameScheduler,
	cursor port.CursorHinter,
) *ResizeGestureController {
	return &ResizeGestureController{
		ctx:    logging.WithComponent(ctx, "resize"),
		layout: layout,
		frames: frames,
		cursor: cursor,
	}
}

// OnCommit registers fn to run when a gesture that changed the layout ends.
func (c *ResizeGestureController) OnCommit(fn func(ResizeCommit)) {
	if fn != nil {
		c.onCommit = append(c.onCommit, fn)
	}
}

// State reports whether a drag is in progress.
func (c *ResizeGestureController) State() GestureState {
	return c.state
}

// ActiveMuntin returns the muntin being dragged, if any.
func (c *ResizeGestureController) ActiveMuntin() (entity.NodeID, bool) {
	return c.muntin, c.state == GestureDragging
}

// Attach registers the controller's listeners on target. Attaching again
// moves the controller to the new target.
func (c *ResizeGestureController) Attach(target port.PointerEventTarget) {
	if c.target != nil {
		c.Detach()
	}
	c.target = target
	c.listeners = []port.ListenerID{
		target.AddPointerListener(port.PointerDown, c.handleDown),
		target.AddPointerListener(port.PointerMove, c.handleMove),
		target.AddPointerListener(port.PointerUp, c.handleUp),
	}
	logging.FromContext(c.ctx).Debug().Msg("resize controller attached")
}

// Detach removes every listener and cancels a pending frame before
// returning, so no resize runs after it. An active gesture is abandoned
// without a commit.
func (c *ResizeGestureController) Detach() {
	if c.target == nil {
		return
	}
	for _, id := range c.listeners {
		c.target.RemovePointerListener(id)
	}
	c.listeners = nil
	c.target = nil

	c.cancelFrame()
	if c.state == GestureDragging {
		c.clearCursor()
		c.reset()
	}
	logging.FromContext(c.ctx).Debug().Msg("resize controller detached")
}

func (c *ResizeGestureController) handleDown(ev port.PointerEvent) {
	log := logging.FromContext(c.ctx)
	if c.state == GestureDragging {
		// One gesture at a time.
		log.Debug().Str("muntin_id", string(c.muntin)).Msg("ignoring pointer-down during resize")
		return
	}
	if ev.Target.Kind != port.HitMuntin {
		return
	}
	tree := c.layout.Tree()
	if tree == nil || !DividerResizable(tree, ev.Target.ID) {
		return
	}
	start, err := tree.PairExtents(ev.Target.ID)
	if err != nil {
		log.Debug().Err(err).Str("muntin_id", string(ev.Target.ID)).Msg("pointer-down on unknown divider")
		return
	}

	c.state = GestureDragging
	c.muntin = ev.Target.ID
	c.start = start
	c.origin = axisCoord(start.Axis, ev.X, ev.Y)
	c.latest = c.origin
	c.applied = 0
	c.moved = false

	if c.cursor != nil {
		if start.Axis == entity.AxisVertical {
			c.cursor.SetCursor(port.CursorRowResize)
		} else {
			c.cursor.SetCursor(port.CursorColResize)
		}
	}
	log.Debug().
		Str("muntin_id", string(c.muntin)).
		Str("axis", start.Axis.String()).
		Float64("first", start.First).
		Float64("second", start.Second).
		Msg("resize started")
}

func (c *ResizeGestureController) handleMove(ev port.PointerEvent) {
	if c.state != GestureDragging {
		return
	}
	c.latest = axisCoord(c.start.Axis, ev.X, ev.Y)
	if c.framePending {
		return
	}
	c.framePending = true
	c.frameID = c.frames.RequestFrame(c.runFrame)
}

func (c *ResizeGestureController) runFrame() {
	c.framePending = false
	if c.state != GestureDragging {
		return
	}
	c.apply()
}

func (c *ResizeGestureController) apply() {
	delta := c.latest - c.origin
	if delta == c.applied {
		return
	}
	changed, err := c.layout.Resize(c.ctx, c.muntin, c.start, delta)
	if err != nil {
		logging.FromContext(c.ctx).Warn().Err(err).Str("muntin_id", string(c.muntin)).Msg("resize frame failed")
		return
	}
	if changed {
		c.applied = delta
		c.moved = true
	}
}

func (c *ResizeGestureController) handleUp(ev port.PointerEvent) {
	if c.state != GestureDragging {
		return
	}
	c.latest = axisCoord(c.start.Axis, ev.X, ev.Y)
	c.cancelFrame()
	c.apply()
	c.clearCursor()

	commit := ResizeCommit{Muntin: c.muntin, Delta: c.applied}
	moved := c.moved
	if tree := c.layout.Tree(); tree != nil {
		if extents, err := tree.PairExtents(c.muntin); err == nil {
			commit.Extents = extents
		}
	}
	c.reset()

	logging.FromContext(c.ctx).Debug().
		Str("muntin_id", string(commit.Muntin)).
		Float64("delta", commit.Delta).
		Bool("moved", moved).
		Msg("resize ended")

	if !moved {
		return
	}
	for _, fn := range c.onCommit {
		fn(commit)
	}
}

func (c *ResizeGestureController) cancelFrame() {
	if c.framePending {
		c.frames.CancelFrame(c.frameID)
		c.framePending = false
	}
}

func (c *ResizeGestureController) clearCursor() {
	if c.cursor != nil {
		c.cursor.ClearCursor()
	}
}

func (c *ResizeGestureController) reset() {
	c.state = GestureIdle
	c.muntin = ""
	c.start = entity.PairExtents{}
	c.origin, c.latest, c.applied = 0, 0, 0
	c.moved = false
}

// DividerResizable reports whether the divider of muntin id may be dragged.
// The muntin and both of its children must allow it; the flag defaults to true.
func DividerResizable(tree *entity.Tree, id entity.NodeID) bool {
	node, ok := tree.Node(id)
	if !ok || node.IsLeaf() {
		return false
	}
	if !node.Store.Flag(entity.StoreResizable, true) {
		return false
	}
	for _, childID := range node.Children {
		child, ok := tree.Node(childID)
		if !ok || !child.Store.Flag(entity.StoreResizable, true) {
			return false
		}
	}
	return true
}

func axisCoord(axis entity.Axis, x, y float64) float64 {
	if axis == entity.AxisVertical {
		return y
	}
	return x
}

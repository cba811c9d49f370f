package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// ChangeKind names the mutation that produced a LayoutChange.
type ChangeKind string

const (
	ChangeSplit   ChangeKind = "split"
	ChangeRemove  ChangeKind = "remove"
	ChangeResize  ChangeKind = "resize"
	ChangeSwap    ChangeKind = "swap"
	ChangeMove    ChangeKind = "move"
	ChangeBounds  ChangeKind = "bounds"
	ChangeReplace ChangeKind = "replace"
)

// LayoutChange is delivered to OnChange listeners once the tree geometry is
// complete for the mutation.
type LayoutChange struct {
	Kind ChangeKind
	// Target is the node the mutation was applied to.
	Target entity.NodeID
	// Result is the pane created or moved, when there is one.
	Result entity.NodeID
}

// ErrNoLayout is returned when a mutation is requested before a tree is set.
var ErrNoLayout = errors.New("no layout loaded")

// ManageLayoutUseCase is the mutation surface of a split tree. Every
// operation is logged and successful ones notify the registered listeners.
// It is not safe for concurrent use; the UI loop owns it.
type ManageLayoutUseCase struct {
	tree        *entity.Tree
	idGenerator IDGenerator
	listeners   []func(LayoutChange)
}

// NewManageLayoutUseCase creates a layout use case over tree. idGenerator is
// used for new panes whose ID the caller leaves empty; nil lets the tree
// generate IDs itself.
func NewManageLayoutUseCase(tree *entity.Tree, idGenerator IDGenerator) *ManageLayoutUseCase {
	return &ManageLayoutUseCase{
		tree:        tree,
		idGenerator: idGenerator,
	}
}

// Tree returns the managed tree.
func (uc *ManageLayoutUseCase) Tree() *entity.Tree {
	return uc.tree
}

// OnChange registers fn to run after every successful mutation.
func (uc *ManageLayoutUseCase) OnChange(fn func(LayoutChange)) {
	if fn != nil {
		uc.listeners = append(uc.listeners, fn)
	}
}

func (uc *ManageLayoutUseCase) notify(change LayoutChange) {
	for _, fn := range uc.listeners {
		fn(change)
	}
}

// SplitInput contains parameters for splitting a pane.
type SplitInput struct {
	Target   entity.NodeID
	Position entity.Position
	// Size of the new pane; defaults to half the target.
	Size  entity.SizeSpec
	ID    entity.NodeID
	Store entity.Store
}

// Split adds a pane on one side of the target pane and returns it.
func (uc *ManageLayoutUseCase) Split(ctx context.Context, input SplitInput) (entity.Sash, error) {
	log := logging.FromContext(ctx)
	if uc.tree == nil {
		return entity.Sash{}, ErrNoLayout
	}

	id := input.ID
	if id == "" && uc.idGenerator != nil {
		id = uc.freshID()
	}

	log.Debug().
		Str("target_id", string(input.Target)).
		Str("position", input.Position.String()).
		Str("size", input.Size.String()).
		Msg("splitting pane")

	pane, err := uc.tree.AddPane(input.Target, entity.AddPaneOptions{
		Position: input.Position,
		Size:     input.Size,
		ID:       id,
		Store:    input.Store,
	})
	if err != nil {
		log.Warn().Err(err).Str("target_id", string(input.Target)).Msg("split rejected")
		return entity.Sash{}, fmt.Errorf("split %s: %w", input.Target, err)
	}

	uc.notify(LayoutChange{Kind: ChangeSplit, Target: input.Target, Result: pane.ID})
	return pane, nil
}

// freshID asks the generator for an ID the tree does not use yet.
func (uc *ManageLayoutUseCase) freshID() entity.NodeID {
	const maxAttempts = 64
	for range maxAttempts {
		id := entity.NodeID(uc.idGenerator())
		if _, taken := uc.tree.Node(id); !taken && id != "" {
			return id
		}
	}
	// Let the tree pick one.
	return ""
}

// Close removes a pane; its sibling takes over the parent's space and is
// reported as the change's Result.
func (uc *ManageLayoutUseCase) Close(ctx context.Context, id entity.NodeID) error {
	log := logging.FromContext(ctx)
	if uc.tree == nil {
		return ErrNoLayout
	}

	var survivor entity.NodeID
	if parent, ok := uc.tree.Parent(id); ok {
		for _, child := range parent.Children {
			if child != id {
				survivor = child
			}
		}
	}
	log.Debug().Str("pane_id", string(id)).Msg("closing pane")

	if err := uc.tree.RemovePane(id); err != nil {
		log.Warn().Err(err).Str("pane_id", string(id)).Msg("close rejected")
		return fmt.Errorf("close %s: %w", id, err)
	}

	uc.notify(LayoutChange{Kind: ChangeRemove, Target: id, Result: survivor})
	return nil
}

// Resize moves the divider of a muntin relative to extents captured at
// gesture start. A refused resize (minimum size) reports false and does not
// notify.
func (uc *ManageLayoutUseCase) Resize(ctx context.Context, muntin entity.NodeID, start entity.PairExtents, delta float64) (bool, error) {
	if uc.tree == nil {
		return false, ErrNoLayout
	}

	changed, err := uc.tree.ResizeSiblingPair(muntin, start, delta)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("muntin_id", string(muntin)).Msg("resize rejected")
		return false, fmt.Errorf("resize %s: %w", muntin, err)
	}
	if !changed {
		logging.FromContext(ctx).Trace().
			Str("muntin_id", string(muntin)).
			Float64("delta", delta).
			Msg("resize clamped by minimum size")
		return false, nil
	}

	uc.notify(LayoutChange{Kind: ChangeResize, Target: muntin})
	return true, nil
}

// Swap exchanges the payload of two panes.
func (uc *ManageLayoutUseCase) Swap(ctx context.Context, a, b entity.NodeID) error {
	if uc.tree == nil {
		return ErrNoLayout
	}
	logging.FromContext(ctx).Debug().Str("a", string(a)).Str("b", string(b)).Msg("swapping panes")

	if err := uc.tree.SwapLeaves(a, b); err != nil {
		return fmt.Errorf("swap %s and %s: %w", a, b, err)
	}
	uc.notify(LayoutChange{Kind: ChangeSwap, Target: a, Result: b})
	return nil
}

// Move detaches src and docks it on side pos of target.
func (uc *ManageLayoutUseCase) Move(ctx context.Context, src, target entity.NodeID, pos entity.Position) (entity.Sash, error) {
	if uc.tree == nil {
		return entity.Sash{}, ErrNoLayout
	}
	logging.FromContext(ctx).Debug().
		Str("pane_id", string(src)).
		Str("target_id", string(target)).
		Str("position", pos.String()).
		Msg("moving pane")

	moved, err := uc.tree.MoveLeaf(src, target, pos)
	if err != nil {
		return entity.Sash{}, fmt.Errorf("move %s: %w", src, err)
	}
	if src != target {
		uc.notify(LayoutChange{Kind: ChangeMove, Target: target, Result: moved.ID})
	}
	return moved, nil
}

// SetBounds re-lays the tree into a resized container.
func (uc *ManageLayoutUseCase) SetBounds(ctx context.Context, bounds entity.Rect) error {
	if uc.tree == nil {
		return ErrNoLayout
	}
	if uc.tree.Bounds() == bounds {
		return nil
	}
	if err := uc.tree.SetBounds(bounds); err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().
		Float64("width", bounds.Width).
		Float64("height", bounds.Height).
		Msg("layout bounds changed")
	uc.notify(LayoutChange{Kind: ChangeBounds, Target: uc.tree.Root().ID})
	return nil
}

// Replace swaps in a whole new tree, for example a restored snapshot.
func (uc *ManageLayoutUseCase) Replace(ctx context.Context, tree *entity.Tree) {
	uc.tree = tree
	if tree == nil {
		return
	}
	logging.FromContext(ctx).Info().Int("panes", len(tree.Leaves())).Msg("layout replaced")
	uc.notify(LayoutChange{Kind: ChangeReplace, Target: tree.Root().ID})
}

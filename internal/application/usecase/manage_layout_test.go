package usecase_test

import (
	"testing"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManageLayoutUseCase_SplitNotifiesAfterLayout(t *testing.T) {
	ctx := testContext()
	ids := []string{"left", "", "pane-1"}
	tree, err := entity.NewTree(&entity.LayoutConfig{
		ID: "root",
		Children: []entity.LayoutEntry{
			&entity.LayoutConfig{ID: "left"},
			&entity.LayoutConfig{ID: "right"},
		},
	}, entity.Rect{Width: 800, Height: 600})
	require.NoError(t, err)

	uc := usecase.NewManageLayoutUseCase(tree, func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	})

	var changes []usecase.LayoutChange
	uc.OnChange(func(c usecase.LayoutChange) {
		// Geometry is final when listeners run.
		node, ok := uc.Tree().Node(c.Result)
		require.True(t, ok)
		assert.InDelta(t, 200, node.Rect.Height, 1e-9)
		changes = append(changes, c)
	})

	pane, err := uc.Split(ctx, usecase.SplitInput{
		Target:   "right",
		Position: entity.PositionBottom,
		Size:     entity.Fraction(1.0 / 3),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.NodeID("pane-1"), pane.ID, "taken and empty ids are skipped")
	assert.Equal(t, []usecase.LayoutChange{{Kind: usecase.ChangeSplit, Target: "right", Result: "pane-1"}}, changes)
}

func TestManageLayoutUseCase_SplitErrors(t *testing.T) {
	ctx := testContext()
	uc := newTwoPaneLayout(t)
	notified := false
	uc.OnChange(func(usecase.LayoutChange) { notified = true })

	_, err := uc.Split(ctx, usecase.SplitInput{Target: "nope", Position: entity.PositionLeft})
	assert.ErrorIs(t, err, entity.ErrTargetNotFound)

	_, err = uc.Split(ctx, usecase.SplitInput{Target: "left", Position: entity.PositionRoot})
	assert.ErrorIs(t, err, entity.ErrInvalidPosition)

	_, err = uc.Split(ctx, usecase.SplitInput{Target: "root", Position: entity.PositionLeft})
	assert.ErrorIs(t, err, entity.ErrNotLeaf)

	assert.False(t, notified)
}

func TestManageLayoutUseCase_CloseReportsSurvivor(t *testing.T) {
	ctx := testContext()
	uc := newTwoPaneLayout(t)
	var got usecase.LayoutChange
	uc.OnChange(func(c usecase.LayoutChange) { got = c })

	require.NoError(t, uc.Close(ctx, "left"))
	assert.Equal(t, usecase.LayoutChange{Kind: usecase.ChangeRemove, Target: "left", Result: "right"}, got)
	assert.Equal(t, entity.Rect{Width: 800, Height: 600}, rectOf(t, uc.Tree(), "right"))

	err := uc.Close(ctx, "right")
	assert.ErrorIs(t, err, entity.ErrParentNotFound, "the last pane cannot be closed")
}

func TestManageLayoutUseCase_ResizeClampIsSilent(t *testing.T) {
	ctx := testContext()
	uc := newTwoPaneLayout(t)
	changes := 0
	uc.OnChange(func(usecase.LayoutChange) { changes++ })

	start, err := uc.Tree().PairExtents("root")
	require.NoError(t, err)

	ok, err := uc.Resize(ctx, "root", start, 80)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 400, rectOf(t, uc.Tree(), "left").Width, 1e-9)

	ok, err = uc.Resize(ctx, "root", start, -315)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.InDelta(t, 400, rectOf(t, uc.Tree(), "left").Width, 1e-9)
	assert.Equal(t, 1, changes)

	_, err = uc.Resize(ctx, "left", start, 10)
	assert.ErrorIs(t, err, entity.ErrNotMuntin)
}

func TestManageLayoutUseCase_SwapMoveAndBounds(t *testing.T) {
	ctx := testContext()
	uc := newTwoPaneLayout(t)
	var kinds []usecase.ChangeKind
	uc.OnChange(func(c usecase.LayoutChange) { kinds = append(kinds, c.Kind) })

	require.NoError(t, uc.Swap(ctx, "left", "right"))
	left, _ := uc.Tree().Node("left")
	assert.Equal(t, "Right", left.Store.String(entity.StoreTitle))

	moved, err := uc.Move(ctx, "left", "right", entity.PositionBottom)
	require.NoError(t, err)
	assert.Equal(t, entity.Rect{Top: 300, Width: 800, Height: 300}, moved.Rect)

	_, err = uc.Move(ctx, "left", "left", entity.PositionTop)
	require.NoError(t, err, "moving onto itself is a no-op")

	require.NoError(t, uc.SetBounds(ctx, entity.Rect{Width: 800, Height: 600}), "same bounds")
	require.NoError(t, uc.SetBounds(ctx, entity.Rect{Width: 400, Height: 300}))
	assert.Equal(t, entity.Rect{Top: 150, Width: 400, Height: 150}, rectOf(t, uc.Tree(), "left"))

	assert.Error(t, uc.SetBounds(ctx, entity.Rect{}))
	assert.Equal(t, []usecase.ChangeKind{usecase.ChangeSwap, usecase.ChangeMove, usecase.ChangeBounds}, kinds)
}

func TestManageLayoutUseCase_ReplaceAndEmpty(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewManageLayoutUseCase(nil, nil)

	_, err := uc.Split(ctx, usecase.SplitInput{Target: "x", Position: entity.PositionLeft})
	assert.ErrorIs(t, err, usecase.ErrNoLayout)
	assert.ErrorIs(t, uc.Close(ctx, "x"), usecase.ErrNoLayout)
	assert.ErrorIs(t, uc.Swap(ctx, "x", "y"), usecase.ErrNoLayout)

	var got []usecase.LayoutChange
	uc.OnChange(func(c usecase.LayoutChange) { got = append(got, c) })

	tree, err := entity.NewTree(nil, entity.Rect{Width: 100, Height: 100})
	require.NoError(t, err)
	uc.Replace(ctx, tree)

	require.Len(t, got, 1)
	assert.Equal(t, usecase.ChangeReplace, got[0].Kind)
	assert.Same(t, tree, uc.Tree())
}

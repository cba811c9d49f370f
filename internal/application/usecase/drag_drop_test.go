package usecase_test

import (
	"testing"

	"github.com/bnema/sash/internal/application/port"
	portmocks "github.com/bnema/sash/internal/application/port/mocks"
	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/ui/dispatcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDragDrop(t *testing.T, cursor port.CursorHinter) (*usecase.ManageLayoutUseCase, *usecase.DragDropController, *dispatcher.Document, *[]usecase.DropResult) {
	t.Helper()
	layout := newTwoPaneLayout(t)
	doc := dispatcher.NewDocument()
	ctrl := usecase.NewDragDropController(testContext(), layout, cursor, 0)
	ctrl.Attach(doc)
	var drops []usecase.DropResult
	ctrl.OnDrop(func(r usecase.DropResult) { drops = append(drops, r) })
	return layout, ctrl, doc, &drops
}

func TestDragDrop_CentreDropSwaps(t *testing.T) {
	cursor := portmocks.NewMockCursorHinter(t)
	cursor.EXPECT().SetCursor(port.CursorMove).Return().Once()
	cursor.EXPECT().ClearCursor().Return().Once()

	layout, ctrl, doc, drops := newDragDrop(t, cursor)
	tree := layout.Tree()

	pointer(doc, tree, port.PointerDown, 100, 300)
	src, ok := ctrl.Source()
	require.True(t, ok)
	assert.Equal(t, entity.NodeID("left"), src)

	pointer(doc, tree, port.PointerMove, 150, 300)
	pointer(doc, tree, port.PointerMove, 500, 300)
	pointer(doc, tree, port.PointerMove, 560, 310)
	pointer(doc, tree, port.PointerUp, 560, 300)

	require.Len(t, *drops, 1)
	assert.Equal(t, usecase.DropResult{Action: usecase.DropSwap, Source: "left", Target: "right", Position: entity.PositionNone}, (*drops)[0])

	left, _ := tree.Node("left")
	right, _ := tree.Node("right")
	assert.Equal(t, "Right", left.Store.String(entity.StoreTitle))
	assert.Equal(t, "Left", right.Store.String(entity.StoreTitle))
	assert.Equal(t, entity.Rect{Width: 320, Height: 600}, left.Rect, "swaps leave geometry alone")
	assert.Equal(t, usecase.GestureIdle, ctrl.State())
}

func TestDragDrop_EdgeDropMoves(t *testing.T) {
	layout, _, doc, drops := newDragDrop(t, nil)

	pointer(doc, layout.Tree(), port.PointerDown, 100, 300)
	pointer(doc, layout.Tree(), port.PointerUp, 790, 300)

	require.Len(t, *drops, 1)
	assert.Equal(t, usecase.DropMove, (*drops)[0].Action)
	assert.Equal(t, entity.PositionRight, (*drops)[0].Position)

	tree := layout.Tree()
	require.NoError(t, tree.Validate())
	assert.Equal(t, entity.Rect{Left: 400, Width: 400, Height: 600}, rectOf(t, tree, "left"))
	assert.Equal(t, entity.Rect{Width: 400, Height: 600}, rectOf(t, tree, "right"))
}

func TestDragDrop_Cancels(t *testing.T) {
	layout, ctrl, doc, drops := newDragDrop(t, nil)
	tree := layout.Tree()

	t.Run("release on the source", func(t *testing.T) {
		pointer(doc, tree, port.PointerDown, 100, 300)
		pointer(doc, tree, port.PointerUp, 110, 300)
		assert.Empty(t, *drops)
		assert.Equal(t, usecase.GestureIdle, ctrl.State())
	})

	t.Run("release outside every pane", func(t *testing.T) {
		pointer(doc, tree, port.PointerDown, 100, 300)
		pointer(doc, tree, port.PointerUp, 900, 300)
		assert.Empty(t, *drops)
	})

	t.Run("target not droppable", func(t *testing.T) {
		right, _ := tree.Node("right")
		right.Store[entity.StoreDroppable] = false
		defer delete(right.Store, entity.StoreDroppable)

		pointer(doc, tree, port.PointerDown, 100, 300)
		pointer(doc, tree, port.PointerUp, 560, 300)
		assert.Empty(t, *drops)
	})

	t.Run("press on a divider", func(t *testing.T) {
		pointer(doc, tree, port.PointerDown, 320, 300)
		assert.Equal(t, usecase.GestureIdle, ctrl.State())
	})

	t.Run("detach mid drag", func(t *testing.T) {
		pointer(doc, tree, port.PointerDown, 100, 300)
		require.Equal(t, usecase.GestureDragging, ctrl.State())
		ctrl.Detach()
		assert.Equal(t, usecase.GestureIdle, ctrl.State())
		assert.Zero(t, doc.ListenerCount())
	})
}

func TestDropZone(t *testing.T) {
	rect := entity.Rect{Left: 100, Top: 100, Width: 400, Height: 200}
	tests := []struct {
		name string
		x, y float64
		want entity.Position
	}{
		{"centre", 300, 200, entity.PositionNone},
		{"left band", 120, 200, entity.PositionLeft},
		{"right band", 480, 200, entity.PositionRight},
		{"top band", 300, 110, entity.PositionTop},
		{"bottom band", 300, 290, entity.PositionBottom},
		{"top-left corner closer to the top", 140, 105, entity.PositionTop},
		{"top-left corner closer to the left", 102, 130, entity.PositionLeft},
		{"just inside the centre", 200, 150, entity.PositionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.DropZone(rect, tt.x, tt.y, 0.25))
		})
	}
	assert.Equal(t, entity.PositionNone, usecase.DropZone(entity.Rect{}, 0, 0, 0.25))
}

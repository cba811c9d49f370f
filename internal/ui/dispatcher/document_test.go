package dispatcher_test

import (
	"testing"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/ui/dispatcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_DispatchByKind(t *testing.T) {
	doc := dispatcher.NewDocument()
	var got []string

	doc.AddPointerListener(port.PointerDown, func(ev port.PointerEvent) { got = append(got, "down-a") })
	doc.AddPointerListener(port.PointerDown, func(ev port.PointerEvent) { got = append(got, "down-b") })
	doc.AddPointerListener(port.PointerUp, func(ev port.PointerEvent) { got = append(got, "up") })

	doc.Dispatch(port.PointerEvent{Kind: port.PointerDown})
	doc.Dispatch(port.PointerEvent{Kind: port.PointerMove})
	doc.Dispatch(port.PointerEvent{Kind: port.PointerUp})

	assert.Equal(t, []string{"down-a", "down-b", "up"}, got)
	assert.Equal(t, 3, doc.ListenerCount())
}

func TestDocument_RemoveDuringDispatch(t *testing.T) {
	doc := dispatcher.NewDocument()
	calls := 0

	var second port.ListenerID
	doc.AddPointerListener(port.PointerMove, func(port.PointerEvent) {
		calls++
		doc.RemovePointerListener(second)
	})
	second = doc.AddPointerListener(port.PointerMove, func(port.PointerEvent) { calls += 10 })

	doc.Dispatch(port.PointerEvent{Kind: port.PointerMove})
	assert.Equal(t, 1, calls, "a listener removed mid-dispatch does not run")
	assert.Equal(t, 1, doc.ListenerCount())

	doc.RemovePointerListener(999)
	assert.Equal(t, 1, doc.ListenerCount())
}

func TestDocument_Cursor(t *testing.T) {
	doc := dispatcher.NewDocument()
	assert.Equal(t, port.CursorDefault, doc.Cursor())
	doc.SetCursor(port.CursorColResize)
	assert.Equal(t, port.CursorColResize, doc.Cursor())
	doc.ClearCursor()
	assert.Equal(t, port.CursorDefault, doc.Cursor())
}

func TestHitTest(t *testing.T) {
	tree, err := entity.NewTree(entity.Pair{entity.Scalar{Value: 0.5}, nil}, entity.Rect{Width: 800, Height: 600})
	require.NoError(t, err)
	leaves := tree.Leaves()

	hit := dispatcher.HitTest(tree, 401, 300, 3)
	assert.Equal(t, port.HitMuntin, hit.Kind)
	assert.Equal(t, tree.Root().ID, hit.ID)

	hit = dispatcher.HitTest(tree, 100, 300, 3)
	assert.Equal(t, port.HitTarget{Kind: port.HitLeaf, ID: leaves[0].ID}, hit)

	hit = dispatcher.HitTest(tree, 900, 300, 3)
	assert.Equal(t, port.HitNone, hit.Kind)

	assert.Equal(t, port.HitTarget{}, dispatcher.HitTest(nil, 1, 1, 1))
}

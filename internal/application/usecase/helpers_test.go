package usecase_test

import (
	"context"
	"io"
	"testing"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/logging"
	"github.com/bnema/sash/internal/ui/dispatcher"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Format: logging.FormatJSON, Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

// newTwoPaneLayout is an 800x600 container split 40/60 into "left" and "right".
func newTwoPaneLayout(t *testing.T) *usecase.ManageLayoutUseCase {
	t.Helper()
	cfg := &entity.LayoutConfig{
		ID: "root",
		Children: []entity.LayoutEntry{
			&entity.LayoutConfig{ID: "left", Position: entity.PositionLeft, Size: entity.Percent(40), Store: entity.Store{"title": "Left"}},
			&entity.LayoutConfig{ID: "right", Position: entity.PositionRight, Store: entity.Store{"title": "Right"}},
		},
	}
	tree, err := entity.NewTree(cfg, entity.Rect{Width: 800, Height: 600})
	require.NoError(t, err)
	return usecase.NewManageLayoutUseCase(tree, nil)
}

func rectOf(t *testing.T, tree *entity.Tree, id entity.NodeID) entity.Rect {
	t.Helper()
	node, ok := tree.Node(id)
	require.True(t, ok, "node %s not found", id)
	return node.Rect
}

// pointer dispatches an event, hit-testing the tree the way the terminal host does.
func pointer(doc *dispatcher.Document, tree *entity.Tree, kind port.PointerEventKind, x, y float64) {
	doc.Dispatch(port.PointerEvent{
		Kind:   kind,
		X:      x,
		Y:      y,
		Target: dispatcher.HitTest(tree, x, y, 3),
	})
}

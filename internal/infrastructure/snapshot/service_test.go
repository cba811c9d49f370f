package snapshot

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
	repomocks "github.com/bnema/sash/internal/domain/repository/mocks"
	"github.com/bnema/sash/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.New(logging.Config{Level: zerolog.DebugLevel, Output: io.Discard})
	return logging.WithContext(context.Background(), logger)
}

func newTree(t *testing.T) *entity.Tree {
	t.Helper()
	tree, err := entity.NewTree(entity.Pair{entity.Scalar{Value: 0.5}, nil}, entity.Rect{Width: 400, Height: 200})
	require.NoError(t, err)
	return tree
}

func TestService_SaveNowWritesLatestMark(t *testing.T) {
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	var saved *entity.LayoutSnapshot
	repo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).
		RunAndReturn(func(_ context.Context, snap *entity.LayoutSnapshot) error {
			saved = snap
			return nil
		}).Once()

	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo, 0), "last", time.Hour)
	ctx := testCtx()
	svc.Start(ctx)

	tree := newTree(t)
	svc.MarkDirty(tree)
	_, err := tree.AddPane(tree.Leaves()[0].ID, entity.AddPaneOptions{Position: entity.PositionBottom})
	require.NoError(t, err)
	svc.MarkDirty(tree)
	assert.True(t, svc.Dirty())

	require.NoError(t, svc.SaveNow(ctx))
	require.NotNil(t, saved)
	assert.Equal(t, "last", saved.Name)
	assert.Equal(t, 3, saved.PaneCount)
	assert.False(t, svc.Dirty())

	// Nothing pending, nothing written.
	require.NoError(t, svc.SaveNow(ctx))
}

func TestService_DebouncedSave(t *testing.T) {
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	done := make(chan struct{})
	repo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).
		RunAndReturn(func(context.Context, *entity.LayoutSnapshot) error {
			close(done)
			return nil
		}).Once()

	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo, 0), "last", 5*time.Millisecond)
	svc.Start(testCtx())
	svc.MarkDirty(newTree(t))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced save did not run")
	}
	assert.Eventually(t, func() bool { return !svc.Dirty() }, time.Second, time.Millisecond)
}

func TestService_FailedSaveKeepsPending(t *testing.T) {
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	repo.EXPECT().
		Save(mock.Anything, mock.Anything).
		Return(errors.New("disk full")).Once()

	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo, 0), "last", time.Hour)
	ctx := testCtx()
	svc.Start(ctx)
	svc.MarkDirty(newTree(t))

	err := svc.SaveNow(ctx)
	require.Error(t, err)
	assert.True(t, svc.Dirty())

	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
	require.NoError(t, svc.Stop(ctx))
	assert.False(t, svc.Dirty())
}

func TestService_InvalidNameIsRejected(t *testing.T) {
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo, 0), " bad ", time.Hour)
	ctx := testCtx()
	svc.Start(ctx)
	svc.MarkDirty(newTree(t))

	err := svc.SaveNow(ctx)
	assert.ErrorIs(t, err, usecase.ErrInvalidSnapshotName)
}

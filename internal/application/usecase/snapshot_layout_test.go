package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
	repomocks "github.com/bnema/sash/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLayoutUseCase_SaveExportsAndPrunes(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	layout := newTwoPaneLayout(t)

	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).
		Run(func(_ context.Context, s *entity.LayoutSnapshot) {
			require.Equal(t, "work", s.Name)
			require.Equal(t, 2, s.PaneCount)
			require.Equal(t, entity.LayoutSnapshotVersion, s.Version)
			require.InDelta(t, 800, s.Width, 1e-9)
			require.Len(t, s.Layout.Children, 2)
		}).
		Return(nil)
	repo.EXPECT().Prune(mock.Anything, 5).Return(int64(0), nil)

	uc := usecase.NewSnapshotLayoutUseCase(repo, 5)
	snapshot, err := uc.Save(ctx, "work", layout.Tree())
	require.NoError(t, err)
	assert.False(t, snapshot.SavedAt.IsZero())
}

func TestSnapshotLayoutUseCase_SaveSurvivesPruneFailure(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutSnapshotRepository(t)

	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	repo.EXPECT().Prune(mock.Anything, 1).Return(int64(0), errors.New("disk full"))

	_, err := usecase.NewSnapshotLayoutUseCase(repo, 1).Save(ctx, "last", newTwoPaneLayout(t).Tree())
	assert.NoError(t, err)
}

func TestSnapshotLayoutUseCase_SaveRejects(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	uc := usecase.NewSnapshotLayoutUseCase(repo, 0)
	tree := newTwoPaneLayout(t).Tree()

	for _, name := range []string{"", "  ", " padded", "tab\tname", strings.Repeat("x", 65)} {
		_, err := uc.Save(ctx, name, tree)
		assert.ErrorIs(t, err, usecase.ErrInvalidSnapshotName, "name %q", name)
	}

	_, err := uc.Save(ctx, "ok", nil)
	assert.ErrorIs(t, err, usecase.ErrNoLayout)

	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("locked"))
	_, err = uc.Save(ctx, "ok", tree)
	assert.ErrorContains(t, err, "locked")
}

func TestSnapshotLayoutUseCase_Restore(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	saved := entity.NewLayoutSnapshot("work", newTwoPaneLayout(t).Tree(), time.Now())

	repo.EXPECT().Get(mock.Anything, "work").Return(saved, nil)
	repo.EXPECT().Get(mock.Anything, "missing").Return(nil, nil)

	uc := usecase.NewSnapshotLayoutUseCase(repo, 0)

	tree, err := uc.Restore(ctx, "work", entity.Rect{Width: 400, Height: 300})
	require.NoError(t, err)
	assert.Equal(t, entity.Rect{Width: 160, Height: 300}, rectOf(t, tree, "left"))

	tree, err = uc.Restore(ctx, "work", entity.Rect{})
	require.NoError(t, err)
	assert.Equal(t, entity.Rect{Width: 800, Height: 600}, tree.Bounds())

	_, err = uc.Restore(ctx, "missing", entity.Rect{})
	assert.ErrorIs(t, err, usecase.ErrSnapshotNotFound)
}

func TestSnapshotLayoutUseCase_ListAndDelete(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	saved := entity.NewLayoutSnapshot("work", newTwoPaneLayout(t).Tree(), time.Now())

	repo.EXPECT().List(mock.Anything).Return([]*entity.LayoutSnapshot{saved}, nil)
	repo.EXPECT().Get(mock.Anything, "work").Return(saved, nil)
	repo.EXPECT().Get(mock.Anything, "gone").Return(nil, nil)
	repo.EXPECT().Delete(mock.Anything, "work").Return(nil)

	uc := usecase.NewSnapshotLayoutUseCase(repo, 0)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, uc.Delete(ctx, "work"))
	assert.ErrorIs(t, uc.Delete(ctx, "gone"), usecase.ErrSnapshotNotFound)
}

package model

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/cli/styles"
	"github.com/bnema/sash/internal/domain/entity"
	repomocks "github.com/bnema/sash/internal/domain/repository/mocks"
	"github.com/bnema/sash/internal/infrastructure/config"
)

func testSnapshot(t *testing.T, name string, savedAt time.Time) *entity.LayoutSnapshot {
	t.Helper()
	tree, err := entity.NewTree(&entity.LayoutConfig{
		ID: "root",
		Children: []entity.LayoutEntry{
			&entity.LayoutConfig{ID: "nav", Size: entity.Percent(25), Store: entity.Store{entity.StoreTitle: "Navigator"}},
			&entity.LayoutConfig{ID: "main"},
		},
	}, entity.Rect{Width: 800, Height: 600})
	require.NoError(t, err)
	return entity.NewLayoutSnapshot(name, tree, savedAt)
}

func newTestSnapshotsModel(t *testing.T, repo *repomocks.MockLayoutSnapshotRepository) *SnapshotsModel {
	t.Helper()
	uc := usecase.NewSnapshotLayoutUseCase(repo, 0)
	m := NewSnapshotsModel(context.Background(), styles.NewTheme(config.DefaultConfig()), uc)
	m.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return m
}

func press(m *SnapshotsModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestSnapshotsModel_LoadAndExpand(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]*entity.LayoutSnapshot{
		testSnapshot(t, "work", now.Add(-5*time.Minute)),
		testSnapshot(t, "last", now.Add(-2*time.Hour)),
	}, nil)

	m := newTestSnapshotsModel(t, repo)
	m.Update(m.Init()())

	view := m.View()
	assert.Contains(t, view, "work")
	assert.Contains(t, view, "5m ago")
	assert.Contains(t, view, "2h ago")
	assert.NotContains(t, view, "Navigator")

	press(m, "j", "tab")
	assert.Equal(t, 1, m.expandedIdx)
	view = m.View()
	assert.Contains(t, view, "Navigator (25%)")
	assert.Contains(t, view, "main")

	press(m, "tab")
	assert.Equal(t, -1, m.expandedIdx)
}

func TestSnapshotsModel_OpenSelectsAndQuits(t *testing.T) {
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]*entity.LayoutSnapshot{
		testSnapshot(t, "a", time.Time{}),
		testSnapshot(t, "b", time.Time{}),
	}, nil)

	m := newTestSnapshotsModel(t, repo)
	m.Update(m.Init()())

	cmd := press(m, "j", "j", "enter")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "b", m.Selected())
}

func TestSnapshotsModel_DeleteAsksFirst(t *testing.T) {
	snap := testSnapshot(t, "old", time.Time{})
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]*entity.LayoutSnapshot{snap}, nil).Once()
	repo.EXPECT().Get(mock.Anything, "old").Return(snap, nil).Once()
	repo.EXPECT().Delete(mock.Anything, "old").Return(nil).Once()
	repo.EXPECT().List(mock.Anything).Return(nil, nil).Once()

	m := newTestSnapshotsModel(t, repo)
	m.Update(m.Init()())

	assert.Nil(t, press(m, "x"))
	assert.True(t, m.confirming)
	assert.Contains(t, m.View(), "Delete layout old?")

	cmd := press(m, "y")
	require.NotNil(t, cmd)
	_, reload := m.Update(cmd())
	assert.Equal(t, "Layout old deleted", m.statusMessage)

	m.Update(reload())
	assert.Empty(t, m.snapshots)
	assert.Contains(t, m.View(), "No saved layouts found.")
}

func TestSnapshotsModel_DeleteCancelled(t *testing.T) {
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]*entity.LayoutSnapshot{testSnapshot(t, "keep", time.Time{})}, nil)

	m := newTestSnapshotsModel(t, repo)
	m.Update(m.Init()())

	press(m, "d", "n")
	assert.False(t, m.confirming)
	assert.Equal(t, "Cancelled", m.statusMessage)
	assert.Len(t, m.snapshots, 1)
}

func TestSnapshotsModel_LoadError(t *testing.T) {
	repo := repomocks.NewMockLayoutSnapshotRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("disk on fire"))

	m := newTestSnapshotsModel(t, repo)
	m.Update(m.Init()())

	assert.Contains(t, m.View(), "disk on fire")
	assert.Nil(t, press(m, "enter"))
	assert.Empty(t, m.Selected())
}

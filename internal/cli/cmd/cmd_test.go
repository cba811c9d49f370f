package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sash/internal/cli"
	"github.com/bnema/sash/internal/domain/entity"
)

const ideLayout = `id = "root"

[[children]]
id = "files"
position = "left"
size = "25%"
title = "Files"

[[children]]
id = "main"
title = "Main"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestApp(t *testing.T) (*cli.App, string) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	app, err := cli.NewApp(cli.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, root
}

func resetRunFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		runLayout = ""
		runRestore = ""
	})
}

func TestValidateLayouts_KeepsOrderAndReportsErrors(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "good.toml", ideLayout),
		writeFile(t, dir, "bad.json", `[0.3, 0.6]`),
		writeFile(t, dir, "compact.json", `[0.5, ["top", null]]`),
		filepath.Join(dir, "missing.toml"),
		writeFile(t, dir, "notes.txt", "hello"),
	}

	results := validateLayouts(context.Background(), paths, 10)
	require.Len(t, results, len(paths))

	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 2, results[0].Panes)
	assert.ErrorIs(t, results[1].Err, entity.ErrSiblingSizeMismatch)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 3, results[2].Panes)
	assert.ErrorIs(t, results[3].Err, os.ErrNotExist)
	assert.Error(t, results[4].Err)
}

func TestLayoutName(t *testing.T) {
	assert.Equal(t, "work", layoutName("/home/me/layouts/work.toml"))
	assert.Equal(t, "dev", layoutName("dev"))
	assert.Equal(t, "a.b", layoutName("a.b.json"))
}

func TestInitialTree_DefaultsToEvenSplit(t *testing.T) {
	app, _ := newTestApp(t)
	resetRunFlags(t)

	tree, name, err := initialTree(context.Background(), app, false)
	require.NoError(t, err)
	assert.Len(t, tree.Leaves(), 2)
	assert.Equal(t, app.Config.Snapshots.AutoSaveName, name)

	bounds := tree.Bounds()
	assert.InDelta(t, initialCols*app.Config.Layout.CellWidth, bounds.Width, 1e-9)
	assert.InDelta(t, initialRows*app.Config.Layout.CellHeight, bounds.Height, 1e-9)
}

func TestInitialTree_ResolvesNamedLayout(t *testing.T) {
	app, root := newTestApp(t)
	resetRunFlags(t)
	writeFile(t, filepath.Join(root, "config", "sash", "layouts"), "ide.toml", ideLayout)

	runLayout = "ide"
	tree, name, err := initialTree(context.Background(), app, false)
	require.NoError(t, err)
	assert.Equal(t, "ide", name)

	files, ok := tree.Node("files")
	require.True(t, ok)
	assert.InDelta(t, tree.Bounds().Width*0.25, files.Rect.Width, 1e-9)
}

func TestInitialTree_RestoresSnapshot(t *testing.T) {
	app, _ := newTestApp(t)
	resetRunFlags(t)

	saved, err := entity.NewTree(&entity.LayoutConfig{
		ID: "root",
		Children: []entity.LayoutEntry{
			&entity.LayoutConfig{ID: "a", Position: entity.PositionTop, Size: entity.Percent(30)},
			&entity.LayoutConfig{ID: "b"},
		},
	}, entity.Rect{Width: 1000, Height: 1000})
	require.NoError(t, err)
	_, err = app.SnapshotUC.Save(context.Background(), app.Config.Snapshots.AutoSaveName, saved)
	require.NoError(t, err)

	runRestore = autoSaveMarker
	tree, name, err := initialTree(context.Background(), app, true)
	require.NoError(t, err)
	assert.Equal(t, app.Config.Snapshots.AutoSaveName, name)
	assert.True(t, tree.IsVerticalSplit(tree.Root().ID))

	runRestore = "missing"
	_, _, err = initialTree(context.Background(), app, true)
	assert.Error(t, err)
}

func TestLoadLayoutTree_OverridesBounds(t *testing.T) {
	app, _ := newTestApp(t)
	path := writeFile(t, t.TempDir(), "sized.toml", "width = 1000\nheight = 500\n"+ideLayout)

	tree, err := loadLayoutTree(app, path, entity.Rect{Width: 2000})
	require.NoError(t, err)
	assert.InDelta(t, 2000, tree.Bounds().Width, 1e-9)
	assert.InDelta(t, 500, tree.Bounds().Height, 1e-9)
}

func TestExportLayout_RoundTrips(t *testing.T) {
	app, _ := newTestApp(t)
	src := writeFile(t, t.TempDir(), "ide.toml", ideLayout)
	tree, err := loadLayoutTree(app, src, entity.Rect{})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out", "copy.json")
	require.NoError(t, exportLayout(out, tree))

	back, err := loadLayoutTree(app, out, entity.Rect{})
	require.NoError(t, err)
	assert.Equal(t, tree.IDs(), back.IDs())
	assert.Equal(t, tree.Bounds(), back.Bounds())
}

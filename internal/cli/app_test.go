package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/logging"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("SASH_LOG_LEVEL", "")
	t.Setenv("SASH_LOG_FORMAT", "")
	return root
}

func TestNewApp_OpensSnapshotStoreLazily(t *testing.T) {
	root := isolateXDG(t)

	app, err := NewApp(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Equal(t, filepath.Join(root, "data", "sash", "sash.sqlite"), app.Config.Database.Path)
	assert.False(t, app.db.IsInitialized())
	assert.NotNil(t, app.Theme)
	assert.NotNil(t, logging.FromContext(app.Ctx()))

	tree, err := entity.NewTree(entity.Pair{nil, nil}, entity.Rect{Width: 400, Height: 300})
	require.NoError(t, err)
	_, err = app.SnapshotUC.Save(app.Ctx(), "first", tree)
	require.NoError(t, err)
	assert.True(t, app.db.IsInitialized())

	list, err := app.SnapshotUC.List(app.Ctx())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].PaneCount)

	out, err := app.ConfigSchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Keys)
}

func TestNewApp_MissingExplicitConfigFails(t *testing.T) {
	root := isolateXDG(t)

	_, err := NewApp(Options{ConfigFile: filepath.Join(root, "nope.toml")})
	assert.Error(t, err)
}

func TestApp_UseFileLogWritesToLogDir(t *testing.T) {
	isolateXDG(t)

	app, err := NewApp(Options{})
	require.NoError(t, err)
	require.True(t, app.Config.Logging.EnableFileLog)

	require.NoError(t, app.UseFileLog())
	logging.FromContext(app.Ctx()).Warn().Msg("into the file")
	require.NoError(t, app.Close())

	data, err := os.ReadFile(filepath.Join(app.Config.Logging.LogDir, "sash.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "into the file")
}

func TestApp_UseFileLogDisabledDiscards(t *testing.T) {
	isolateXDG(t)

	app, err := NewApp(Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	app.Config.Logging.EnableFileLog = false

	require.NoError(t, app.UseFileLog())
	logging.FromContext(app.Ctx()).Warn().Msg("nowhere")

	_, err = os.Stat(filepath.Join(app.Config.Logging.LogDir, "sash.log"))
	assert.True(t, os.IsNotExist(err))
}

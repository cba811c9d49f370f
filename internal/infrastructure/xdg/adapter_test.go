package xdg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Dirs(t *testing.T) {
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	adapter := New()

	tests := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"config", adapter.ConfigDir, filepath.Join(base, "config", "sash")},
		{"data", adapter.DataDir, filepath.Join(base, "data", "sash")},
		{"state", adapter.StateDir, filepath.Join(base, "state", "sash")},
		{"layouts", adapter.LayoutsDir, filepath.Join(base, "config", "sash", "layouts")},
		{"logs", adapter.LogDir, filepath.Join(base, "state", "sash", "logs")},
		{"man", adapter.ManDir, filepath.Join(base, "data", "man", "man1")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAdapter_ManDirFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := New().ManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "man", "man1"), dir)
}

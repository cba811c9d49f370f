// Package xdg exposes the config package's XDG layout through port.XDGPaths.
package xdg

import (
	"os"
	"path/filepath"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths.
type Adapter struct{}

// New creates a new XDG adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

func (a *Adapter) StateDir() (string, error) {
	dirs, err := config.GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

func (a *Adapter) LayoutsDir() (string, error) {
	return config.GetLayoutsDir()
}

func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

func (a *Adapter) ManDir() (string, error) {
	// XDG_DATA_HOME/man/man1 is on the default MANPATH, unlike the sash data dir.
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}

var _ port.XDGPaths = (*Adapter)(nil)

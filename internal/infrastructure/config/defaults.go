package config

import "time"

// Default configuration constants
const (
	// Layout defaults
	defaultMinPaneSize = 10.0 // pixels
	defaultCellWidth   = 8.0  // pixels per terminal column
	defaultCellHeight  = 16.0 // pixels per terminal row

	// Resize defaults
	defaultFrameRate    = 60
	defaultHitTolerance = 6.0 // pixels

	// Drag/drop defaults
	defaultEdgeRatio = 0.25

	// Snapshot defaults
	defaultAutoSaveName = "last"
	defaultMaxSnapshots = 50

	// Database defaults
	defaultMaxConnections = 4
	defaultMaxIdleTime    = 5 * time.Minute

	// Logging defaults
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7

	// UI defaults
	defaultBorderColor        = "#5C6370"
	defaultFocusBorderColor   = "#61AFEF"
	defaultActiveDividerColor = "#E5C07B"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	logDir, _ := GetLogDir()

	return &Config{
		Layout: LayoutConfig{
			MinPaneSize: defaultMinPaneSize,
			CellWidth:   defaultCellWidth,
			CellHeight:  defaultCellHeight,
		},
		Resize: ResizeConfig{
			FrameRate:    defaultFrameRate,
			HitTolerance: defaultHitTolerance,
		},
		DragDrop: DragDropConfig{
			Enabled:   true,
			EdgeRatio: defaultEdgeRatio,
		},
		Snapshots: SnapshotConfig{
			AutoSave:     true,
			AutoSaveName: defaultAutoSaveName,
			MaxSnapshots: defaultMaxSnapshots,
		},
		Database: DatabaseConfig{
			MaxConnections: defaultMaxConnections,
			MaxIdleTime:    defaultMaxIdleTime,
		},
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        logDir,
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAgeDays:    defaultMaxLogAgeDays,
			Compress:      true,
		},
		UI: UIConfig{
			BorderColor:        defaultBorderColor,
			FocusBorderColor:   defaultFocusBorderColor,
			ActiveDividerColor: defaultActiveDividerColor,
			ShowHelp:           true,
		},
		Keys: DefaultKeyBindings(),
	}
}

// DefaultKeyBindings returns the default terminal host key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		SplitRight: []string{"|", "v"},
		SplitDown:  []string{"-", "s"},
		Close:      []string{"x"},
		FocusNext:  []string{"tab"},
		Save:       []string{"ctrl+s"},
		Search:     []string{"/"},
		Help:       []string{"?"},
		Quit:       []string{"q", "ctrl+c"},
	}
}

// Package config provides configuration management for sash with Viper integration.
package config

import "time"

// File permission constants
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for sash.
type Config struct {
	Layout    LayoutConfig   `mapstructure:"layout" toml:"layout" json:"layout"`
	Resize    ResizeConfig   `mapstructure:"resize" toml:"resize" json:"resize"`
	DragDrop  DragDropConfig `mapstructure:"drag_drop" toml:"drag_drop" json:"drag_drop"`
	Snapshots SnapshotConfig `mapstructure:"snapshots" toml:"snapshots" json:"snapshots"`
	Database  DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	Logging   LoggingConfig  `mapstructure:"logging" toml:"logging" json:"logging"`
	UI        UIConfig       `mapstructure:"ui" toml:"ui" json:"ui"`
	Keys      KeyBindings    `mapstructure:"keys" toml:"keys" json:"keys"`
}

// LayoutConfig controls how layouts are loaded and mapped onto the terminal.
type LayoutConfig struct {
	// DefaultFile is the layout document opened by `sash run` when no
	// --layout flag is given. Empty means a single split in two.
	DefaultFile string `mapstructure:"default_file" toml:"default_file" json:"default_file" jsonschema:"description=Layout document loaded on startup"`
	// MinPaneSize is the floor, in pixels, applied to every pane on both axes.
	MinPaneSize float64 `mapstructure:"min_pane_size" toml:"min_pane_size" json:"min_pane_size" jsonschema:"minimum=0"`
	// CellWidth and CellHeight are the pixel size of one terminal cell.
	CellWidth  float64 `mapstructure:"cell_width" toml:"cell_width" json:"cell_width" jsonschema:"exclusiveMinimum=0"`
	CellHeight float64 `mapstructure:"cell_height" toml:"cell_height" json:"cell_height" jsonschema:"exclusiveMinimum=0"`
}

// ResizeConfig controls divider dragging.
type ResizeConfig struct {
	// FrameRate caps how often a drag re-lays the tree.
	FrameRate int `mapstructure:"frame_rate" toml:"frame_rate" json:"frame_rate" jsonschema:"minimum=1,maximum=240"`
	// HitTolerance is how far, in pixels, a press may land from a divider.
	HitTolerance float64 `mapstructure:"hit_tolerance" toml:"hit_tolerance" json:"hit_tolerance" jsonschema:"minimum=0"`
}

// DragDropConfig controls moving panes with the pointer.
type DragDropConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// EdgeRatio is the share of a pane, measured from each edge, that
	// counts as "drop beside". The centre swaps the two panes.
	EdgeRatio float64 `mapstructure:"edge_ratio" toml:"edge_ratio" json:"edge_ratio" jsonschema:"exclusiveMinimum=0,maximum=0.5"`
}

// SnapshotConfig controls layout snapshots.
type SnapshotConfig struct {
	// AutoSave stores the layout under AutoSaveName after each committed gesture.
	AutoSave     bool   `mapstructure:"auto_save" toml:"auto_save" json:"auto_save"`
	AutoSaveName string `mapstructure:"auto_save_name" toml:"auto_save_name" json:"auto_save_name"`
	// MaxSnapshots bounds the number of stored snapshots; 0 keeps everything.
	MaxSnapshots int `mapstructure:"max_snapshots" toml:"max_snapshots" json:"max_snapshots" jsonschema:"minimum=0"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path           string        `mapstructure:"path" toml:"path" json:"path"`
	MaxConnections int           `mapstructure:"max_connections" toml:"max_connections" json:"max_connections" jsonschema:"minimum=1"`
	MaxIdleTime    time.Duration `mapstructure:"max_idle_time" toml:"max_idle_time" json:"max_idle_time"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// UIConfig holds terminal rendering options.
type UIConfig struct {
	BorderColor        string `mapstructure:"border_color" toml:"border_color" json:"border_color"`
	FocusBorderColor   string `mapstructure:"focus_border_color" toml:"focus_border_color" json:"focus_border_color"`
	ActiveDividerColor string `mapstructure:"active_divider_color" toml:"active_divider_color" json:"active_divider_color"`
	ShowHelp           bool   `mapstructure:"show_help" toml:"show_help" json:"show_help"`
}

// KeyBindings maps terminal host actions to key names understood by Bubble Tea.
type KeyBindings struct {
	SplitRight []string `mapstructure:"split_right" toml:"split_right" json:"split_right"`
	SplitDown  []string `mapstructure:"split_down" toml:"split_down" json:"split_down"`
	Close      []string `mapstructure:"close" toml:"close" json:"close"`
	FocusNext  []string `mapstructure:"focus_next" toml:"focus_next" json:"focus_next"`
	Save       []string `mapstructure:"save" toml:"save" json:"save"`
	Search     []string `mapstructure:"search" toml:"search" json:"search"`
	Help       []string `mapstructure:"help" toml:"help" json:"help"`
	Quit       []string `mapstructure:"quit" toml:"quit" json:"quit"`
}

// FrameInterval is the minimum time between two resize frames.
func (r ResizeConfig) FrameInterval() time.Duration {
	if r.FrameRate <= 0 {
		return time.Second / defaultFrameRate
	}
	return time.Second / time.Duration(r.FrameRate)
}

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/sash/internal/application/port"
	"github.com/bnema/sash/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLayout    = "Layout"
	SectionResize    = "Resize"
	SectionDragDrop  = "Drag and drop"
	SectionSnapshots = "Snapshots"
	SectionDatabase  = "Database"
	SectionLogging   = "Logging"
	SectionUI        = "UI"
	SectionKeys      = "Keys"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 40)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getResizeKeys(defaults)...)
	keys = append(keys, p.getDragDropKeys(defaults)...)
	keys = append(keys, p.getSnapshotKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys(defaults)...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getUIKeys(defaults)...)
	keys = append(keys, p.getKeyBindingKeys(defaults)...)
	return keys
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.default_file",
			Type:        "string",
			Default:     defaults.Layout.DefaultFile,
			Description: "Layout document opened by `sash run` (relative to the layouts directory)",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.min_pane_size",
			Type:        "float64",
			Default:     formatFloat(defaults.Layout.MinPaneSize),
			Description: "Minimum width and height of every pane, in pixels",
			Range:       ">=0",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.cell_width",
			Type:        "float64",
			Default:     formatFloat(defaults.Layout.CellWidth),
			Description: "Pixel width of one terminal column",
			Range:       ">0",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.cell_height",
			Type:        "float64",
			Default:     formatFloat(defaults.Layout.CellHeight),
			Description: "Pixel height of one terminal row",
			Range:       ">0",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getResizeKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "resize.frame_rate",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Resize.FrameRate),
			Description: "Maximum number of layout passes per second while dragging a divider",
			Range:       "1-240",
			Section:     SectionResize,
		},
		{
			Key:         "resize.hit_tolerance",
			Type:        "float64",
			Default:     formatFloat(defaults.Resize.HitTolerance),
			Description: "Distance in pixels within which a press grabs a divider",
			Range:       ">=0",
			Section:     SectionResize,
		},
	}
}

func (*SchemaProvider) getDragDropKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "drag_drop.enabled",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.DragDrop.Enabled),
			Description: "Allow moving panes by dragging them onto each other",
			Section:     SectionDragDrop,
		},
		{
			Key:         "drag_drop.edge_ratio",
			Type:        "float64",
			Default:     formatFloat(defaults.DragDrop.EdgeRatio),
			Description: "Share of a pane near each edge that docks the dropped pane beside it",
			Range:       "0-0.5",
			Section:     SectionDragDrop,
		},
	}
}

func (*SchemaProvider) getSnapshotKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "snapshots.auto_save",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Snapshots.AutoSave),
			Description: "Save the layout after every resize or drop",
			Section:     SectionSnapshots,
		},
		{
			Key:         "snapshots.auto_save_name",
			Type:        "string",
			Default:     defaults.Snapshots.AutoSaveName,
			Description: "Snapshot name used by auto save and `sash run --restore` without a value",
			Section:     SectionSnapshots,
		},
		{
			Key:         "snapshots.max_snapshots",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Snapshots.MaxSnapshots),
			Description: "Number of snapshots kept, oldest pruned first (0 keeps all)",
			Range:       ">=0",
			Section:     SectionSnapshots,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "(XDG data dir)/sash.sqlite",
			Description: "SQLite file holding layout snapshots",
			Section:     SectionDatabase,
		},
		{
			Key:         "database.max_connections",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Database.MaxConnections),
			Description: "Connection pool size",
			Range:       ">=1",
			Section:     SectionDatabase,
		},
		{
			Key:         "database.max_idle_time",
			Type:        "duration",
			Default:     defaults.Database.MaxIdleTime.String(),
			Description: "Idle time after which pooled connections close",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.log_dir",
			Type:        "string",
			Default:     "(XDG state dir)/logs",
			Description: "Directory for log files",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.enable_file_log",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.EnableFileLog),
			Description: "Write logs to a rotated file while the terminal host runs",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxSizeMB),
			Description: "Size at which the log file is rotated",
			Range:       ">=1",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_age_days",
			Type:        "int",
			Default:     strconv.Itoa(defaults.Logging.MaxAgeDays),
			Description: "Days after which rotated logs are deleted",
			Range:       ">=0",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.compress",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.Logging.Compress),
			Description: "Gzip rotated log files",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getUIKeys(defaults *Config) []entity.ConfigKeyInfo {
	color := func(key, def, desc string) entity.ConfigKeyInfo {
		return entity.ConfigKeyInfo{
			Key:         key,
			Type:        "string",
			Default:     def,
			Description: desc,
			Range:       "#rgb, #rrggbb or 0-255",
			Section:     SectionUI,
		}
	}
	return []entity.ConfigKeyInfo{
		color("ui.border_color", defaults.UI.BorderColor, "Pane border color"),
		color("ui.focus_border_color", defaults.UI.FocusBorderColor, "Border color of the focused pane"),
		color("ui.active_divider_color", defaults.UI.ActiveDividerColor, "Color of the divider being dragged"),
		{
			Key:         "ui.show_help",
			Type:        "bool",
			Default:     strconv.FormatBool(defaults.UI.ShowHelp),
			Description: "Show the key help line at startup",
			Section:     SectionUI,
		},
	}
}

func (*SchemaProvider) getKeyBindingKeys(defaults *Config) []entity.ConfigKeyInfo {
	k := defaults.Keys
	bindings := []struct {
		name string
		keys []string
		desc string
	}{
		{"split_right", k.SplitRight, "Split the focused pane, new pane on the right"},
		{"split_down", k.SplitDown, "Split the focused pane, new pane below"},
		{"close", k.Close, "Close the focused pane"},
		{"focus_next", k.FocusNext, "Focus the next pane"},
		{"save", k.Save, "Save the layout as a snapshot"},
		{"search", k.Search, "Search panes by title"},
		{"help", k.Help, "Toggle the help line"},
		{"quit", k.Quit, "Quit"},
	}
	out := make([]entity.ConfigKeyInfo, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, entity.ConfigKeyInfo{
			Key:         fmt.Sprintf("keys.%s", b.name),
			Type:        "[]string",
			Default:     strings.Join(b.keys, ", "),
			Description: b.desc,
			Section:     SectionKeys,
		})
	}
	return out
}

package config

import (
	"fmt"
	"strings"

	"github.com/bnema/sash/internal/domain/validation"
	"github.com/bnema/sash/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateResize(config)...)
	validationErrors = append(validationErrors, validateDragDrop(config)...)
	validationErrors = append(validationErrors, validateSnapshots(config)...)
	validationErrors = append(validationErrors, validateDatabase(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateUI(config)...)
	validationErrors = append(validationErrors, validateKeys(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLayout(config *Config) []string {
	var errs []string
	if config.Layout.MinPaneSize < 0 {
		errs = append(errs, "layout.min_pane_size must be non-negative")
	}
	if config.Layout.CellWidth <= 0 {
		errs = append(errs, "layout.cell_width must be positive")
	}
	if config.Layout.CellHeight <= 0 {
		errs = append(errs, "layout.cell_height must be positive")
	}
	return errs
}

func validateResize(config *Config) []string {
	var errs []string
	if config.Resize.FrameRate < 1 || config.Resize.FrameRate > 240 {
		errs = append(errs, "resize.frame_rate must be between 1 and 240")
	}
	if config.Resize.HitTolerance < 0 {
		errs = append(errs, "resize.hit_tolerance must be non-negative")
	}
	return errs
}

func validateDragDrop(config *Config) []string {
	if r := config.DragDrop.EdgeRatio; r <= 0 || r > 0.5 {
		return []string{"drag_drop.edge_ratio must be in (0, 0.5]"}
	}
	return nil
}

func validateSnapshots(config *Config) []string {
	if config.Snapshots.MaxSnapshots < 0 {
		return []string{"snapshots.max_snapshots must be non-negative"}
	}
	return nil
}

func validateDatabase(config *Config) []string {
	var errs []string
	if config.Database.MaxConnections < 1 {
		errs = append(errs, "database.max_connections must be at least 1")
	}
	if config.Database.MaxIdleTime < 0 {
		errs = append(errs, "database.max_idle_time must be non-negative")
	}
	return errs
}

func validateLogging(config *Config) []string {
	var errs []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		errs = append(errs, fmt.Sprintf("logging.level: %v", err))
	}
	switch config.Logging.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be console or json, got %q", config.Logging.Format))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		errs = append(errs, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		errs = append(errs, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return errs
}

func validateUI(config *Config) []string {
	var errs []string
	colors := map[string]string{
		"ui.border_color":         config.UI.BorderColor,
		"ui.focus_border_color":   config.UI.FocusBorderColor,
		"ui.active_divider_color": config.UI.ActiveDividerColor,
	}
	for _, field := range []string{"ui.active_divider_color", "ui.border_color", "ui.focus_border_color"} {
		if !validation.IsTerminalColor(colors[field]) {
			errs = append(errs, fmt.Sprintf("%s must be a #RRGGBB hex color or an ANSI color number, got %q", field, colors[field]))
		}
	}
	return errs
}

func validateKeys(config *Config) []string {
	bindings := map[string][]string{
		"split_right": config.Keys.SplitRight,
		"split_down":  config.Keys.SplitDown,
		"close":       config.Keys.Close,
		"focus_next":  config.Keys.FocusNext,
		"save":        config.Keys.Save,
		"search":      config.Keys.Search,
		"help":        config.Keys.Help,
		"quit":        config.Keys.Quit,
	}
	actions := []string{"close", "focus_next", "help", "quit", "save", "search", "split_down", "split_right"}

	var errs []string
	owner := make(map[string]string)
	for _, action := range actions {
		keys := bindings[action]
		if action == "quit" && len(keys) == 0 {
			errs = append(errs, "keys.quit must have at least one key")
		}
		for _, k := range keys {
			for _, e := range validation.ValidateKeyBinding(k) {
				errs = append(errs, fmt.Sprintf("keys.%s: %s", action, e))
			}
			if prev, taken := owner[k]; taken {
				errs = append(errs, fmt.Sprintf("key %q is bound to both keys.%s and keys.%s", k, prev, action))
				continue
			}
			owner[k] = action
		}
	}
	return errs
}

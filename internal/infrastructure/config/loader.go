package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/sash/internal/logging"
	"github.com/spf13/viper"
)

const envPrefix = "SASH"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	explicitFile   string
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithConfigFile makes the manager read path instead of searching the XDG
// config directory. A missing explicit file is an error; it is not created.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) {
		m.explicitFile = path
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{viper: viper.New()}
	for _, opt := range opts {
		opt(m)
	}
	v := m.viper

	if m.explicitFile != "" {
		v.SetConfigFile(m.explicitFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
	}

	// SASH_LAYOUT_MIN_PANE_SIZE, SASH_RESIZE_FRAME_RATE, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SASH_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SASH_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SASH_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SASH_LOG_FORMAT: %w", err)
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}
	return m.reload(false)
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	switch {
	case m.explicitFile != "" && errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("config file %s does not exist: %w", m.explicitFile, err)
	case errors.As(err, &notFound):
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir, createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
		return nil
	default:
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
			m.configFilePath(), err)
	}
}

// reload rebuilds m.config from viper. Must be called with m.mu held for write.
func (m *Manager) reload(reread bool) error {
	if reread {
		if err := m.viper.ReadInConfig(); err != nil {
			return err
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFilePath(), err,
		)
	}
	if err := fillPaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func fillPaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}
	config.Layout.DefaultFile = strings.TrimSpace(config.Layout.DefaultFile)
	if config.Snapshots.AutoSaveName == "" {
		config.Snapshots.AutoSaveName = defaultAutoSaveName
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the active config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := WriteConfigOrdered(cfg, m.configFilePath()); err != nil {
		return err
	}

	if m.watching {
		// The watcher will see our own write; the in-memory copy is already current.
		m.skipNextReload = true
		configCopy := *cfg
		m.config = &configCopy
		return nil
	}
	return m.reload(true)
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFilePath()
}

func (m *Manager) configFilePath() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.explicitFile != "" {
		return m.explicitFile
	}
	path, err := GetConfigFile()
	if err != nil {
		return configFileName
	}
	return path
}

// createDefaultConfig writes the default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}

	log := logging.NewFromEnv()
	log.Debug().Str("file", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.default_file", defaults.Layout.DefaultFile)
	m.viper.SetDefault("layout.min_pane_size", defaults.Layout.MinPaneSize)
	m.viper.SetDefault("layout.cell_width", defaults.Layout.CellWidth)
	m.viper.SetDefault("layout.cell_height", defaults.Layout.CellHeight)

	m.viper.SetDefault("resize.frame_rate", defaults.Resize.FrameRate)
	m.viper.SetDefault("resize.hit_tolerance", defaults.Resize.HitTolerance)

	m.viper.SetDefault("drag_drop.enabled", defaults.DragDrop.Enabled)
	m.viper.SetDefault("drag_drop.edge_ratio", defaults.DragDrop.EdgeRatio)

	m.viper.SetDefault("snapshots.auto_save", defaults.Snapshots.AutoSave)
	m.viper.SetDefault("snapshots.auto_save_name", defaults.Snapshots.AutoSaveName)
	m.viper.SetDefault("snapshots.max_snapshots", defaults.Snapshots.MaxSnapshots)

	// database.path is filled in after unmarshalling
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("database.max_connections", defaults.Database.MaxConnections)
	m.viper.SetDefault("database.max_idle_time", defaults.Database.MaxIdleTime)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("ui.border_color", defaults.UI.BorderColor)
	m.viper.SetDefault("ui.focus_border_color", defaults.UI.FocusBorderColor)
	m.viper.SetDefault("ui.active_divider_color", defaults.UI.ActiveDividerColor)
	m.viper.SetDefault("ui.show_help", defaults.UI.ShowHelp)

	m.viper.SetDefault("keys.split_right", defaults.Keys.SplitRight)
	m.viper.SetDefault("keys.split_down", defaults.Keys.SplitDown)
	m.viper.SetDefault("keys.close", defaults.Keys.Close)
	m.viper.SetDefault("keys.focus_next", defaults.Keys.FocusNext)
	m.viper.SetDefault("keys.save", defaults.Keys.Save)
	m.viper.SetDefault("keys.search", defaults.Keys.Search)
	m.viper.SetDefault("keys.help", defaults.Keys.Help)
	m.viper.SetDefault("keys.quit", defaults.Keys.Quit)
}

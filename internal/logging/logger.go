package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "SASH_LOG_LEVEL"
	envLogFormat = "SASH_LOG_FORMAT"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output defaults to stderr. The terminal host points it at a file
	// because it owns the screen.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     FormatConsole,
		TimeFormat: time.RFC3339,
	}
}

// ParseLevel maps a configuration string onto a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format != FormatJSON {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ApplyEnv overrides cfg with the environment:
// SASH_LOG_LEVEL: trace, debug, info, warn, error, disabled
// SASH_LOG_FORMAT: json, console
// Unknown values are ignored.
func ApplyEnv(cfg Config) Config {
	if level := os.Getenv(envLogLevel); level != "" {
		if lvl, err := ParseLevel(level); err == nil {
			cfg.Level = lvl
		}
	}
	switch format := os.Getenv(envLogFormat); format {
	case FormatJSON, FormatConsole:
		cfg.Format = format
	}
	return cfg
}

// NewFromEnv creates a logger from the defaults and the environment.
func NewFromEnv() zerolog.Logger {
	return New(ApplyEnv(DefaultConfig()))
}

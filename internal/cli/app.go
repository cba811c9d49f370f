// Package cli wires the sash command line: configuration, logging, the
// snapshot store and the use cases shared by the cobra commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/cli/styles"
	"github.com/bnema/sash/internal/domain/build"
	"github.com/bnema/sash/internal/domain/repository"
	"github.com/bnema/sash/internal/infrastructure/config"
	"github.com/bnema/sash/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/sash/internal/logging"
)

const logTimeFormat = "15:04:05"

// Options control how the App is created.
type Options struct {
	// ConfigFile replaces the XDG config file when set.
	ConfigFile string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	db        *sqlite.LazyDB
	Snapshots repository.LayoutSnapshotRepository

	// Use cases
	SnapshotUC     *usecase.SnapshotLayoutUseCase
	FindPanesUC    *usecase.FindPanesUseCase
	ConfigSchemaUC *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies. The snapshot
// database is opened on first use.
func NewApp(opts Options) (*App, error) {
	var managerOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}
	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.New(loggingConfig(cfg, os.Stderr))
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path, sqlite.WithPool(sqlite.PoolConfig{
		MaxConnections: cfg.Database.MaxConnections,
		MaxIdleTime:    cfg.Database.MaxIdleTime,
	}))
	snapshots := sqlite.NewLazyLayoutSnapshotRepository(db)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("cli initialized")

	return &App{
		Config:         cfg,
		ConfigManager:  mgr,
		Theme:          styles.NewTheme(cfg),
		db:             db,
		Snapshots:      snapshots,
		SnapshotUC:     usecase.NewSnapshotLayoutUseCase(snapshots, cfg.Snapshots.MaxSnapshots),
		FindPanesUC:    usecase.NewFindPanesUseCase(),
		ConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:            ctx,
	}, nil
}

func loggingConfig(cfg *config.Config, out io.Writer) logging.Config {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
		lc.Level = level
	}
	lc.Format = cfg.Logging.Format
	lc.TimeFormat = logTimeFormat
	lc.Output = out
	return logging.ApplyEnv(lc)
}

// UseFileLog sends logs to the rotated log file, or discards them when file
// logging is disabled. Commands that take over the terminal call it first.
func (a *App) UseFileLog() error {
	out := io.Discard
	if a.Config.Logging.EnableFileLog {
		rotator, err := logging.NewLogRotator(logging.RotatorConfig{
			Dir:        a.Config.Logging.LogDir,
			MaxSizeMB:  a.Config.Logging.MaxSizeMB,
			MaxBackups: a.Config.Logging.MaxBackups,
			MaxAgeDays: a.Config.Logging.MaxAgeDays,
			Compress:   a.Config.Logging.Compress,
		})
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out = rotator
		a.logCleanup = func() { _ = rotator.Close() }
	}

	lc := loggingConfig(a.Config, out)
	lc.TimeFormat = "2006-01-02T15:04:05.000"
	a.ctx = logging.WithContext(context.Background(), logging.New(lc))
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

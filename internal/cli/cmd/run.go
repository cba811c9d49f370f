package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/cli"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/infrastructure/config"
	"github.com/bnema/sash/internal/infrastructure/layoutfile"
	"github.com/bnema/sash/internal/infrastructure/snapshot"
	"github.com/bnema/sash/internal/logging"
	"github.com/bnema/sash/internal/ui/mainloop"
	"github.com/bnema/sash/internal/ui/tui"
)

// Size of the tree before the terminal reports its own.
const (
	initialCols = 80
	initialRows = 24
)

var (
	runLayout  string
	runRestore string
	runExport  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a layout in the terminal host",
	Long: `Open a layout full screen. Drag a divider to resize the panes on either
side of it, drag a pane onto another to swap them, or onto one of its edges
to move it there.

The layout comes from, in order:
  --restore <name>   a saved snapshot (the autosave when no name is given)
  --layout <ref>     a layout file, or a name looked up in the layouts dir
  layout.default_file from the config
  otherwise an even split in two.

Examples:
  sash run
  sash run --layout dev
  sash run --layout ./work.toml --export ./work.toml
  sash run --restore`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runLayout, "layout", "l", "", "layout file or name in the layouts directory")
	runCmd.Flags().StringVarP(&runRestore, "restore", "r", "", "restore a saved snapshot")
	runCmd.Flags().Lookup("restore").NoOptDefVal = autoSaveMarker
	runCmd.Flags().StringVar(&runExport, "export", "", "write the final layout to this file on exit")
	runCmd.MarkFlagsMutuallyExclusive("layout", "restore")
}

// autoSaveMarker stands for "the configured autosave name" when --restore
// is given without a value.
const autoSaveMarker = "\x00autosave"

func runRun(cmd *cobra.Command, _ []string) error {
	return runHost(cmd.Flags().Changed("restore"))
}

// runHost runs the terminal host until the user quits.
func runHost(restore bool) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if err := app.UseFileLog(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)
	cfg := app.Config

	tree, name, err := initialTree(ctx, app, restore)
	if err != nil {
		return err
	}
	ctx = logging.WithLayout(ctx, name)
	log = logging.FromContext(ctx)
	log.Info().Int("panes", len(tree.Leaves())).Msg("starting terminal host")

	layout := usecase.NewManageLayoutUseCase(tree, nil)
	opts := []tui.Option{tui.WithSnapshots(app.SnapshotUC, name)}

	var autosave *snapshot.Service
	if cfg.Snapshots.AutoSave {
		autosave = snapshot.NewService(app.SnapshotUC, cfg.Snapshots.AutoSaveName, 0)
		autosave.Start(ctx)
		opts = append(opts, tui.WithAutosave(autosave))
	}

	model := tui.New(ctx, layout, cfg, opts...)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	coalescer := mainloop.NewCoalescer(tui.Post(program))
	app.ConfigManager.OnConfigChange(func(next *config.Config) {
		coalescer.Post("config", func() { model.ApplyConfig(next) })
	})
	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload unavailable")
	}

	_, runErr := program.Run()
	coalescer.Destroy()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		runErr = nil
	}

	// The program has exited, so the tree is ours again.
	closeErr := model.Close(context.WithoutCancel(ctx))
	var exportErr error
	if runExport != "" {
		exportErr = exportLayout(runExport, layout.Tree())
		if exportErr == nil {
			fmt.Printf("Layout written to %s\n", runExport)
		}
	}
	return errors.Join(runErr, closeErr, exportErr)
}

// initialTree builds the tree the host opens with and the name ctrl+s saves
// it under.
func initialTree(ctx context.Context, app *cli.App, restore bool) (*entity.Tree, string, error) {
	cfg := app.Config
	bounds := entity.Rect{
		Width:  initialCols * cfg.Layout.CellWidth,
		Height: initialRows * cfg.Layout.CellHeight,
	}
	treeOpts := []entity.TreeOption{entity.WithMinPaneSize(cfg.Layout.MinPaneSize)}

	if restore {
		name := runRestore
		if name == autoSaveMarker || name == "" {
			name = cfg.Snapshots.AutoSaveName
		}
		tree, err := app.SnapshotUC.Restore(ctx, name, bounds, treeOpts...)
		if err != nil {
			return nil, "", err
		}
		return tree, name, nil
	}

	ref := runLayout
	if ref == "" {
		ref = cfg.Layout.DefaultFile
	}
	if ref == "" {
		tree, err := entity.NewTree(entity.Pair{nil, nil}, bounds, treeOpts...)
		if err != nil {
			return nil, "", err
		}
		return tree, cfg.Snapshots.AutoSaveName, nil
	}

	layoutsDir, err := config.GetLayoutsDir()
	if err != nil {
		return nil, "", err
	}
	path, err := layoutfile.Resolve(ref, layoutsDir)
	if err != nil {
		return nil, "", err
	}
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, "", err
	}
	// The document's own size only matters until the terminal reports in.
	tree, err := entity.NewTree(doc.Root, bounds, treeOpts...)
	if err != nil {
		return nil, "", fmt.Errorf("build layout %s: %w", path, err)
	}
	name := doc.Name
	if name == "" {
		name = cfg.Snapshots.AutoSaveName
	}
	return tree, name, nil
}

func exportLayout(path string, tree *entity.Tree) error {
	if err := layoutfile.Save(path, layoutfile.FromTree(tree)); err != nil {
		return fmt.Errorf("export layout: %w", err)
	}
	return nil
}

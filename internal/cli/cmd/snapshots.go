package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/sash/internal/cli/model"
	"github.com/bnema/sash/internal/cli/styles"
	"github.com/bnema/sash/internal/domain/entity"
)

var (
	snapshotsJSON   bool
	snapshotsExport string
	snapshotsName   string
)

var snapshotsCmd = &cobra.Command{
	Use:     "snapshots",
	Aliases: []string{"snap"},
	Short:   "Manage saved layouts",
	Long: `Browse, inspect and delete layout snapshots.

Snapshots are written by ctrl+s in 'sash run' and, when snapshots.auto_save
is on, after every resize or drop. Run without arguments to open the
interactive browser; enter opens the selected layout.`,
	Args: cobra.NoArgs,
	RunE: runSnapshots,
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)
}

func runSnapshots(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewSnapshotsModel(app.Ctx(), app.Theme, app.SnapshotUC)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	if m.Selected() == "" {
		return nil
	}

	runRestore = m.Selected()
	return runHost(true)
}

// snapshots list
var snapshotsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved layouts",
	Args:  cobra.NoArgs,
	RunE:  runSnapshotsList,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsListCmd.Flags().BoolVar(&snapshotsJSON, "json", false, "output as JSON")
}

type snapshotJSON struct {
	Name    string  `json:"name"`
	Panes   int     `json:"panes"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	SavedAt string  `json:"saved_at"`
	Version int     `json:"version"`
}

func runSnapshotsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	snapshots, err := app.SnapshotUC.List(app.Ctx())
	if err != nil {
		return err
	}

	if snapshotsJSON {
		out := make([]snapshotJSON, 0, len(snapshots))
		for _, s := range snapshots {
			out = append(out, snapshotJSON{
				Name:    s.Name,
				Panes:   s.PaneCount,
				Width:   s.Width,
				Height:  s.Height,
				SavedAt: s.SavedAt.Format("2006-01-02T15:04:05Z07:00"),
				Version: s.Version,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(styles.NewSnapshotsCLIRenderer(app.Theme).RenderList(snapshots))
	return nil
}

// snapshots show <name>
var snapshotsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print the geometry of a saved layout",
	Long: `Print the pane rectangles of a saved layout at the size it was saved.

Examples:
  sash snapshots show last
  sash snapshots show work --export ./work.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotsShow,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsShowCmd)
	snapshotsShowCmd.Flags().StringVar(&snapshotsExport, "export", "", "also write the layout to this .toml or .json file")
}

func runSnapshotsShow(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	tree, err := app.SnapshotUC.Restore(app.Ctx(), args[0], entity.Rect{})
	if err != nil {
		return err
	}
	fmt.Println(styles.NewLayoutCLIRenderer(app.Theme).RenderGeometry(tree, nil))

	if snapshotsExport != "" {
		if err := exportLayout(snapshotsExport, tree); err != nil {
			return err
		}
		fmt.Printf("Layout written to %s\n", snapshotsExport)
	}
	return nil
}

// snapshots import <file>
var snapshotsImportCmd = &cobra.Command{
	Use:   "import <layout>",
	Short: "Store a layout file as a snapshot",
	Long: `Compile a layout document and store it as a snapshot, so it can be
opened with 'sash run --restore <name>'. The name defaults to the file name.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotsImport,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsImportCmd)
	snapshotsImportCmd.Flags().StringVar(&snapshotsName, "name", "", "snapshot name")
}

func runSnapshotsImport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	tree, err := loadLayoutTree(app, args[0], entity.Rect{})
	if err != nil {
		return err
	}

	name := snapshotsName
	if name == "" {
		name = layoutName(args[0])
	}
	snap, err := app.SnapshotUC.Save(app.Ctx(), name, tree)
	if err != nil {
		return err
	}
	fmt.Printf("%s Saved layout %s (%d panes)\n",
		app.Theme.SuccessStyle.Render(styles.IconCheck),
		app.Theme.Highlight.Render(snap.Name),
		snap.PaneCount,
	)
	return nil
}

// snapshots delete <name>
var snapshotsDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runSnapshotsDelete,
}

func init() {
	snapshotsCmd.AddCommand(snapshotsDeleteCmd)
}

func runSnapshotsDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewSnapshotsCLIRenderer(app.Theme)
	if err := app.SnapshotUC.Delete(app.Ctx(), args[0]); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderDeleted(args[0]))
	return nil
}

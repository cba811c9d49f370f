package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/sash/internal/cli"
	"github.com/bnema/sash/internal/cli/styles"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/infrastructure/config"
	"github.com/bnema/sash/internal/infrastructure/layoutfile"
)

const (
	defaultInspectWidth  = 1280
	defaultInspectHeight = 800
)

var (
	inspectWidth  float64
	inspectHeight float64
	inspectFind   string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <layout>",
	Short: "Print the geometry of every pane in a layout",
	Long: `Compile a layout document and print the rectangle of every node.

The container size comes from --width/--height, then from the document,
then defaults to 1280x800. --find highlights the panes whose title or id
fuzzily matches the query.

Examples:
  sash inspect dev
  sash inspect ./work.toml --width 1920 --height 1080
  sash inspect dev --find term`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Float64Var(&inspectWidth, "width", 0, "container width in pixels")
	inspectCmd.Flags().Float64Var(&inspectHeight, "height", 0, "container height in pixels")
	inspectCmd.Flags().StringVar(&inspectFind, "find", "", "highlight panes matching this query")
}

func runInspect(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	tree, err := loadLayoutTree(app, args[0], entity.Rect{Width: inspectWidth, Height: inspectHeight})
	if err != nil {
		return err
	}

	var highlight map[entity.NodeID]bool
	if inspectFind != "" {
		matches := app.FindPanesUC.Find(app.Ctx(), tree, inspectFind)
		if len(matches) == 0 {
			fmt.Println(app.Theme.WarningStyle.Render(fmt.Sprintf("%s no pane matches %q", styles.IconWarning, inspectFind)))
		}
		highlight = make(map[entity.NodeID]bool, len(matches))
		for _, m := range matches {
			highlight[m.ID] = true
		}
	}

	fmt.Println(styles.NewLayoutCLIRenderer(app.Theme).RenderGeometry(tree, highlight))
	return nil
}

// loadLayoutTree resolves ref against the layouts directory and compiles
// it. Non-zero override dimensions win over the document's own.
func loadLayoutTree(app *cli.App, ref string, override entity.Rect) (*entity.Tree, error) {
	layoutsDir, err := config.GetLayoutsDir()
	if err != nil {
		return nil, err
	}
	path, err := layoutfile.Resolve(ref, layoutsDir)
	if err != nil {
		return nil, err
	}
	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := doc.Bounds(entity.Rect{Width: defaultInspectWidth, Height: defaultInspectHeight})
	if override.Width > 0 {
		bounds.Width = override.Width
	}
	if override.Height > 0 {
		bounds.Height = override.Height
	}

	tree, err := entity.NewTree(doc.Root, bounds, entity.WithMinPaneSize(app.Config.Layout.MinPaneSize))
	if err != nil {
		return nil, fmt.Errorf("build layout %s: %w", path, err)
	}
	return tree, nil
}

// layoutName is the file name of ref without its extension.
func layoutName(ref string) string {
	base := filepath.Base(ref)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

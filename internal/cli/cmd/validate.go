package cmd

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/sash/internal/cli/styles"
	"github.com/bnema/sash/internal/domain/entity"
	"github.com/bnema/sash/internal/infrastructure/layoutfile"
	"github.com/bnema/sash/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate <layout>...",
	Short: "Check that layout documents compile",
	Long: `Parse and compile each layout document and check the resulting tree.
Exits non-zero when any document is invalid.

Examples:
  sash validate ~/.config/sash/layouts/*.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	results := validateLayouts(app.Ctx(), args, app.Config.Layout.MinPaneSize)
	fmt.Println(styles.NewLayoutCLIRenderer(app.Theme).RenderValidation(results))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d layouts are invalid", failed, len(results))
	}
	return nil
}

// validateLayouts checks paths concurrently. Results keep the order of paths.
func validateLayouts(ctx context.Context, paths []string, minPaneSize float64) []styles.ValidationResult {
	log := logging.FromContext(ctx)
	results := make([]styles.ValidationResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			results[i] = validateLayout(path, minPaneSize)
			log.Debug().Str("path", path).Err(results[i].Err).Msg("layout validated")
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func validateLayout(path string, minPaneSize float64) styles.ValidationResult {
	res := styles.ValidationResult{Path: path}

	doc, err := layoutfile.Load(path)
	if err != nil {
		res.Err = err
		return res
	}
	tree, err := doc.Build(entity.Rect{Width: defaultInspectWidth, Height: defaultInspectHeight}, entity.WithMinPaneSize(minPaneSize))
	if err != nil {
		res.Err = err
		return res
	}
	if err := tree.Validate(); err != nil {
		res.Err = err
		return res
	}
	res.Panes = len(tree.Leaves())
	return res
}

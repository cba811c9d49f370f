// Package cmd provides Cobra CLI commands for sash.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sash/internal/cli"
	"github.com/bnema/sash/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "sash",
		Short: "A binary split-tree tiling layout engine for the terminal",
		Long: `Sash - split a rectangle into panes and drag the dividers around.

A layout is a binary tree: every split holds exactly two children laid out
side by side or stacked, sized in percent, fractions or pixels. Sash opens
layouts in a terminal host where dividers can be dragged with the mouse and
panes dropped onto each other to swap or move them.

Use 'sash run' to open a layout, or explore the subcommands to inspect and
validate layout files and manage saved snapshots.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/sash/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Summary()
}

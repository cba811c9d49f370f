package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sash/internal/application/usecase"
	"github.com/bnema/sash/internal/cli/styles"
	"github.com/bnema/sash/internal/infrastructure/config"
	"github.com/bnema/sash/internal/infrastructure/xdg"
)

var (
	configKeysJSON    bool
	configKeysSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where sash keeps its files, the effective configuration and every supported key.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, layout, snapshot and log locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and SASH_*
environment variables have been merged.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default",
	Long: `List every configuration key with its type, default and description.

Examples:
  sash config keys
  sash config keys --section resize
  sash config keys --json`,
	Args: cobra.NoArgs,
	RunE: runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configKeysCmd)
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only list keys of this section")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	paths := xdg.New()

	layoutsDir, err := paths.LayoutsDir()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	configFile := app.ConfigManager.GetConfigFile()
	_, statErr := os.Stat(configFile)
	fmt.Println(renderer.RenderPaths(
		configFile,
		statErr == nil,
		layoutsDir,
		app.Config.Database.Path,
		app.Config.Logging.LogDir,
	))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	data, err := config.EncodeConfig(app.Config)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.ConfigSchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return fmt.Errorf("get config schema: %w", err)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		s, err := renderer.RenderJSON(out.Keys)
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	}
	fmt.Println(renderer.Render(out.Keys))
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/sash/internal/infrastructure/config"
	"github.com/bnema/sash/internal/infrastructure/layoutfile"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [layout|config]",
	Short: "Print a JSON schema for layout documents or the config file",
	Long: `Print a JSON schema editors can use to validate and complete layout
documents (the default) or the config file.

Examples:
  sash schema > layout.schema.json
  sash schema config`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"layout", "config"},
	RunE:      runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(_ *cobra.Command, args []string) error {
	kind := "layout"
	if len(args) == 1 {
		kind = args[0]
	}

	var (
		data []byte
		err  error
	)
	switch kind {
	case "layout":
		data, err = layoutfile.SchemaJSON()
	case "config":
		data, err = config.SchemaJSON()
	default:
		return fmt.Errorf("unknown schema %q (use: layout, config)", kind)
	}
	if err != nil {
		return fmt.Errorf("generate %s schema: %w", kind, err)
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}

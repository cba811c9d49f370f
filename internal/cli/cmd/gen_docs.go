package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/sash/internal/infrastructure/xdg"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown from the command tree",
	Long: `Generate documentation for every sash command.

Supported formats:
  man       Unix manual pages, installed to $XDG_DATA_HOME/man/man1 by default
  markdown  Markdown files, written to ./docs by default

Examples:
  sash gen-docs
  sash gen-docs --format markdown --output ./site/cli`,
	Args: cobra.NoArgs,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "output directory")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "output format: man, markdown")
}

func runGenDocs(_ *cobra.Command, _ []string) error {
	// Reproducible output: no "Auto generated by" footer.
	rootCmd.DisableAutoGenTag = true

	switch genDocsFormat {
	case "man":
		dir := genDocsOutputDir
		if dir == "" {
			manDir, err := xdg.New().ManDir()
			if err != nil {
				return fmt.Errorf("resolve man directory: %w", err)
			}
			dir = manDir
		}
		now := time.Now()
		header := &doc.GenManHeader{
			Title:   "SASH",
			Section: "1",
			Source:  "sash " + buildInfo.Version,
			Manual:  "Sash Manual",
			Date:    &now,
		}
		if err := writeDocs(dir, ".1", func(dir string) error { return doc.GenManTree(rootCmd, header, dir) }); err != nil {
			return err
		}
		fmt.Println("Run 'mandb' if 'man sash' doesn't work immediately.")
		return nil
	case "markdown":
		dir := genDocsOutputDir
		if dir == "" {
			dir = "./docs"
		}
		return writeDocs(dir, ".md", func(dir string) error { return doc.GenMarkdownTree(rootCmd, dir) })
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}
}

func writeDocs(dir, ext string, generate func(dir string) error) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := generate(dir); err != nil {
		return fmt.Errorf("generate docs: %w", err)
	}

	fmt.Printf("Generated docs in %s\n", dir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Printf("  - %s\n", e.Name())
		}
	}
	return nil
}

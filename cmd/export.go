package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grow-cli/grow/internal/export"
)

// Export command flags.
var (
	exportFlagOutput string
	exportFlagStdout bool
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"dump", "backup"},
	Short:   "Export everything in the store",
	Long: `Write a snapshot of every key in the store as one JSON document of
[key, value] pairs. The snapshot captures whatever is persisted at call
time.

Examples:
  grow export
  grow export -o ~/backups/grow.json
  grow export --stdout > grow.json`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "",
		"Output file (default "+export.DefaultFilename+")")
	exportCmd.Flags().BoolVar(&exportFlagStdout, "stdout", false,
		"Write the document to stdout instead of a file")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFlagStdout {
		doc, err := export.Document(ctx.DB)
		if err != nil {
			return err
		}
		ctx.Formatter.Println(string(doc))
		return nil
	}

	path, err := export.WriteFile(ctx.DB, exportFlagOutput)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(map[string]string{"exported": path})
	}
	ctx.CLIFormatter().Success("Exported to " + path)
	return nil
}

package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Clear command flags.
var clearFlagYes bool

// clearCmd represents the clear command.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Wipe every key in the store",
	Long: `Irreversibly delete all tasks, fitness logs, coding logs, and journal
entries. Asks for confirmation unless --yes is passed. Consider running
'grow export' first.`,
	RunE: runClear,
}

func init() {
	clearCmd.Flags().BoolVar(&clearFlagYes, "yes", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	cli := ctx.CLIFormatter()

	if !clearFlagYes {
		cli.Warning("This permanently deletes all data. Type 'yes' to continue:")
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil || strings.TrimSpace(answer) != "yes" {
			cli.Muted("Aborted.")
			return nil
		}
	}

	if err := ctx.DB.Clear(); err != nil {
		return err
	}

	// The in-memory collections still hold the pre-wipe sequences; reset
	// them so anything running in this process sees the empty store.
	ctx.Tasks.Reset()
	ctx.Fitness.Reset()
	ctx.Coding.Reset()
	ctx.Journal.Reset()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(map[string]bool{"cleared": true})
	}
	cli.Success("All data cleared.")
	return nil
}

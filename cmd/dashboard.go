package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grow-cli/grow/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive dashboard",
	Long: `Open a live terminal dashboard with pending tasks, today's logs,
the coding streak, weekly fitness totals, and recent moods.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.DashboardConfig{
		Tasks:   ctx.Tasks,
		Fitness: ctx.Fitness,
		Coding:  ctx.Coding,
		Journal: ctx.Journal,
	})
}

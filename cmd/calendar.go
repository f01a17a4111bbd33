package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/stats"
)

// calendarCmd groups records by calendar date, newest date first.
var calendarCmd = &cobra.Command{
	Use:     "calendar DOMAIN",
	Aliases: []string{"cal"},
	Short:   "Show records grouped by day",
	Long: `Show one domain's records grouped by calendar date, most recent
first, capped to the 30 most recent dates.

Examples:
  grow calendar tasks
  grow cal code`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"tasks", "fit", "code", "journal"},
	RunE:      runCalendar,
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}

func runCalendar(cmd *cobra.Command, args []string) error {
	switch args[0] {
	case "tasks", "task", "t":
		return printCalendar(stats.GroupByDay(ctx.Tasks.Records()), func(t model.Task) string {
			glyph := "○"
			if t.Completed {
				glyph = "✓"
			}
			return glyph + " " + t.Title
		})
	case "fit", "fitness":
		return printCalendar(stats.GroupByDay(ctx.Fitness.Records()), func(l model.FitnessLog) string {
			return l.Type + ": " + formatAmount(l.Amount()) + " " + l.Unit()
		})
	case "code", "coding":
		return printCalendar(stats.GroupByDay(ctx.Coding.Records()), func(l model.CodingLog) string {
			if l.LeetCodeProblem != nil {
				return l.Learned + " [" + l.LeetCodeProblem.Title + "]"
			}
			return l.Learned
		})
	case "journal", "j":
		return printCalendar(stats.GroupByDay(ctx.Journal.Records()), func(e model.JournalEntry) string {
			return e.Mood + ": " + e.WhatHappened
		})
	default:
		return cmd.Help()
	}
}

// printCalendar renders date buckets with a per-record row renderer.
func printCalendar[T stats.Dated](buckets []stats.Bucket[T], render func(T) string) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(buckets)
	}

	cli := ctx.CLIFormatter()
	if len(buckets) == 0 {
		cli.Muted("Nothing to show.")
		return nil
	}

	today := time.Now().Format(stats.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(stats.DateLayout)

	for _, bucket := range buckets {
		label := bucket.Date
		switch bucket.Date {
		case today:
			label = "Today"
		case yesterday:
			label = "Yesterday"
		}
		cli.Title(label)
		for _, rec := range bucket.Records {
			cli.Println("  " + strings.TrimSpace(render(rec)))
		}
		cli.Println()
	}
	return nil
}

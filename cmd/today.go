package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/stats"
)

// todayCmd represents the today command.
var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's summary across all domains",
	Long: `Display today's pending tasks, workouts, coding logs, and journal
entry in one view. This is also the default when grow is run bare.`,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

// todaySummary is the JSON shape of the summary.
type todaySummary struct {
	Date         string              `json:"date"`
	PendingTasks []model.Task        `json:"pending_tasks"`
	FitnessLogs  []model.FitnessLog  `json:"fitness_logs"`
	CodingLogs   []model.CodingLog   `json:"coding_logs"`
	CodingStreak int                 `json:"coding_streak"`
	JournalEntry *model.JournalEntry `json:"journal_entry"`
}

func runToday(cmd *cobra.Command, args []string) error {
	now := time.Now()

	summary := todaySummary{
		Date:         now.Format(stats.DateLayout),
		PendingTasks: ctx.Tasks.Pending(),
		FitnessLogs:  stats.FilterDay(ctx.Fitness.Records(), now),
		CodingLogs:   stats.FilterDay(ctx.Coding.Records(), now),
		CodingStreak: stats.Streak(ctx.Coding.Records(), now),
	}
	if entry, ok := ctx.Journal.Today(now); ok {
		summary.JournalEntry = &entry
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(summary)
	}

	cli := ctx.CLIFormatter()
	cli.Title(todayLabel(now))
	cli.Println()

	cli.Println(cli.Accent("Tasks"))
	if len(summary.PendingTasks) == 0 {
		cli.Muted("  nothing pending")
	}
	for _, t := range summary.PendingTasks {
		line := "  ○ " + t.Title
		if t.Overdue(now) {
			line += " (overdue)"
		} else if t.DueDate != "" {
			line += " (due " + t.DueDate + ")"
		}
		cli.Println(line)
	}
	cli.Println()

	cli.Println(cli.Accent("Fitness"))
	if len(summary.FitnessLogs) == 0 {
		cli.Muted("  no workouts yet")
	}
	for _, l := range summary.FitnessLogs {
		cli.Println("  " + l.Type + ": " + formatAmount(l.Amount()) + " " + l.Unit())
	}
	cli.Println()

	cli.Println(cli.Accent("Coding"))
	cli.Println(fmt.Sprintf("  streak: %d day(s)", summary.CodingStreak))
	for _, l := range summary.CodingLogs {
		cli.Println("  · " + l.Learned)
	}
	cli.Println()

	cli.Println(cli.Accent("Journal"))
	if summary.JournalEntry != nil {
		cli.Println("  " + summary.JournalEntry.Mood + ": " + summary.JournalEntry.WhatHappened)
	} else {
		cli.Muted("  no entry yet")
	}
	return nil
}

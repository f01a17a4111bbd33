package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/stats"
	"github.com/grow-cli/grow/internal/validate"
)

// Journal command flags.
var (
	journalWriteFlagGrateful []string
	journalWriteFlagMood     string
)

// journalCmd groups the journal commands.
var journalCmd = &cobra.Command{
	Use:     "journal",
	Aliases: []string{"j"},
	Short:   "Keep a daily journal",
}

var journalWriteCmd = &cobra.Command{
	Use:   "write TEXT",
	Short: "Write or update today's entry",
	Long: `Write today's journal entry. There is one entry per day: writing
again on the same day replaces today's entry in place.

Examples:
  grow journal write "shipped the feature" --mood happy
  grow journal write "long day" --mood sad --grateful coffee --grateful friends`,
	Args: cobra.MinimumNArgs(1),
	RunE: runJournalWrite,
}

var journalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List journal entries",
	RunE:    runJournalList,
}

var journalMoodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "Show mood counts over the last stored entries",
	RunE:  runJournalMoods,
}

var journalRmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a journal entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runJournalRm,
}

func init() {
	journalWriteCmd.Flags().StringArrayVar(&journalWriteFlagGrateful, "grateful", nil,
		"Something you are grateful for (repeatable, up to 3)")
	journalWriteCmd.Flags().StringVar(&journalWriteFlagMood, "mood", model.MoodNeutral,
		"Mood: happy, neutral, sad")

	journalCmd.AddCommand(journalWriteCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalMoodsCmd)
	journalCmd.AddCommand(journalRmCmd)
	rootCmd.AddCommand(journalCmd)
}

func runJournalWrite(cmd *cobra.Command, args []string) error {
	whatHappened := strings.TrimSpace(strings.Join(args, " "))
	if err := validate.FreeText("entry", whatHappened); err != nil {
		return err
	}
	if err := validate.Mood(journalWriteFlagMood); err != nil {
		return err
	}
	grateful, err := validate.GratefulFor(journalWriteFlagGrateful)
	if err != nil {
		return err
	}

	entry := model.NewJournalEntry(whatHappened, grateful, journalWriteFlagMood)
	hadToday := false
	if _, ok := ctx.Journal.Today(time.Now()); ok {
		hadToday = true
	}

	saved, err := ctx.Journal.SaveToday(entry, time.Now())
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(saved)
	}
	cli := ctx.CLIFormatter()
	if hadToday {
		cli.Success("Updated today's entry")
	} else {
		cli.Success("Saved today's entry")
	}
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	entries := ctx.Journal.Records()

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(entries)
	}

	cli := ctx.CLIFormatter()
	if len(entries) == 0 {
		cli.Muted("No journal entries.")
		return nil
	}

	table := cli.NewTable()
	table.AddRow("ID", "MOOD", "WHAT HAPPENED", "GRATEFUL FOR", "WHEN")
	for _, e := range entries {
		table.AddRow(shortID(e.ID), e.Mood, e.WhatHappened,
			strings.Join(e.GratefulFor, ", "), formatWhen(e))
	}
	cli.PrintTable(table)
	return nil
}

func runJournalMoods(cmd *cobra.Command, args []string) error {
	counts := stats.MoodCounts(ctx.Journal.Records())

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(counts)
	}

	cli := ctx.CLIFormatter()
	cli.Title("Recent moods")
	if len(counts) == 0 {
		cli.Muted("No journal entries yet.")
		return nil
	}
	for _, mood := range model.Moods {
		if n := counts[mood]; n > 0 {
			cli.Println(fmt.Sprintf("  %-8s %s", mood, strings.Repeat("█", n)))
		}
	}
	return nil
}

func runJournalRm(cmd *cobra.Command, args []string) error {
	id, err := resolveID(ctx.Journal.Records(), args[0])
	if err != nil {
		return err
	}
	if id == "" {
		ctx.CLIFormatter().Muted("No journal entry matches " + args[0])
		return nil
	}

	if err := ctx.Journal.Remove(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(map[string]string{"removed": id})
	}
	ctx.CLIFormatter().Success("Removed entry " + shortID(id))
	return nil
}

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grow-cli/grow/internal/errors"
	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/stats"
	"github.com/grow-cli/grow/internal/validate"
)

// Coding command flags.
var (
	codeLogFlagProblem    string
	codeLogFlagDifficulty string
	codeLogFlagLink       string
	codeLogFlagNotes      string

	codeListFlagToday bool

	codeEditFlagLearned      string
	codeEditFlagProblem      string
	codeEditFlagDifficulty   string
	codeEditFlagLink         string
	codeEditFlagNotes        string
	codeEditFlagClearProblem bool
)

// codeCmd groups the coding-log commands.
var codeCmd = &cobra.Command{
	Use:     "code",
	Aliases: []string{"coding"},
	Short:   "Track coding practice",
}

var codeLogCmd = &cobra.Command{
	Use:   "log TEXT",
	Short: "Log what you learned today",
	Long: `Log a coding study note, optionally tied to a LeetCode problem.

Examples:
  grow code log "learned about sliding windows"
  grow code log "two pointers" --problem "Container With Most Water" --difficulty Medium`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCodeLog,
}

var codeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List coding logs",
	RunE:    runCodeList,
}

var codeEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a coding log",
	Args:  cobra.ExactArgs(1),
	RunE:  runCodeEdit,
}

var codeStreakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the consecutive-day coding streak",
	RunE:  runCodeStreak,
}

var codeRmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a coding log",
	Args:    cobra.ExactArgs(1),
	RunE:    runCodeRm,
}

func init() {
	codeLogCmd.Flags().StringVar(&codeLogFlagProblem, "problem", "", "LeetCode problem title")
	codeLogCmd.Flags().StringVar(&codeLogFlagDifficulty, "difficulty", model.DifficultyEasy,
		"Problem difficulty: Easy, Medium, Hard")
	codeLogCmd.Flags().StringVar(&codeLogFlagLink, "link", "", "Problem link")
	codeLogCmd.Flags().StringVar(&codeLogFlagNotes, "notes", "", "Problem notes")

	codeListCmd.Flags().BoolVar(&codeListFlagToday, "today", false, "Only today's logs")

	codeEditCmd.Flags().StringVar(&codeEditFlagLearned, "learned", "", "New study note text")
	codeEditCmd.Flags().StringVar(&codeEditFlagProblem, "problem", "", "New problem title")
	codeEditCmd.Flags().StringVar(&codeEditFlagDifficulty, "difficulty", "", "New problem difficulty")
	codeEditCmd.Flags().StringVar(&codeEditFlagLink, "link", "", "New problem link")
	codeEditCmd.Flags().StringVar(&codeEditFlagNotes, "notes", "", "New problem notes")
	codeEditCmd.Flags().BoolVar(&codeEditFlagClearProblem, "clear-problem", false, "Detach the problem")

	codeCmd.AddCommand(codeLogCmd)
	codeCmd.AddCommand(codeListCmd)
	codeCmd.AddCommand(codeEditCmd)
	codeCmd.AddCommand(codeStreakCmd)
	codeCmd.AddCommand(codeRmCmd)
	rootCmd.AddCommand(codeCmd)
}

func runCodeLog(cmd *cobra.Command, args []string) error {
	learned := strings.TrimSpace(strings.Join(args, " "))
	if err := validate.FreeText("learned", learned); err != nil {
		return err
	}

	var problem *model.LeetCodeProblem
	if strings.TrimSpace(codeLogFlagProblem) != "" {
		if err := validate.Difficulty(codeLogFlagDifficulty); err != nil {
			return err
		}
		problem = &model.LeetCodeProblem{
			Title:      strings.TrimSpace(codeLogFlagProblem),
			Difficulty: codeLogFlagDifficulty,
			Link:       strings.TrimSpace(codeLogFlagLink),
			Notes:      strings.TrimSpace(codeLogFlagNotes),
		}
	}

	log := model.NewCodingLog(learned, problem)
	if err := ctx.Coding.Add(log); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(log)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Logged coding note " + shortID(log.ID))
	streak := stats.Streak(ctx.Coding.Records(), time.Now())
	cli.Muted(fmt.Sprintf("  streak: %d day(s)", streak))
	return nil
}

func runCodeList(cmd *cobra.Command, args []string) error {
	logs := ctx.Coding.Records()
	if codeListFlagToday {
		logs = stats.FilterDay(logs, time.Now())
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(logs)
	}

	cli := ctx.CLIFormatter()
	if len(logs) == 0 {
		cli.Muted("No coding logs.")
		return nil
	}

	table := cli.NewTable()
	table.AddRow("ID", "LEARNED", "PROBLEM", "WHEN")
	for _, l := range logs {
		problem := ""
		if l.LeetCodeProblem != nil {
			problem = l.LeetCodeProblem.Title + " (" + l.LeetCodeProblem.Difficulty + ")"
		}
		table.AddRow(shortID(l.ID), l.Learned, problem, formatWhen(l))
	}
	cli.PrintTable(table)
	return nil
}

func runCodeEdit(cmd *cobra.Command, args []string) error {
	id, err := resolveID(ctx.Coding.Records(), args[0])
	if err != nil {
		return err
	}
	if id == "" {
		ctx.CLIFormatter().Muted("No coding log matches " + args[0])
		return nil
	}

	log, _ := ctx.Coding.Find(id)

	if cmd.Flags().Changed("learned") {
		if err := validate.FreeText("learned", codeEditFlagLearned); err != nil {
			return err
		}
		log.Learned = strings.TrimSpace(codeEditFlagLearned)
	}

	if codeEditFlagClearProblem {
		log.LeetCodeProblem = nil
	} else if cmd.Flags().Changed("problem") || cmd.Flags().Changed("difficulty") ||
		cmd.Flags().Changed("link") || cmd.Flags().Changed("notes") {
		problem := &model.LeetCodeProblem{Difficulty: model.DifficultyEasy}
		if log.LeetCodeProblem != nil {
			copied := *log.LeetCodeProblem
			problem = &copied
		}
		if cmd.Flags().Changed("problem") {
			problem.Title = strings.TrimSpace(codeEditFlagProblem)
		}
		if cmd.Flags().Changed("difficulty") {
			if err := validate.Difficulty(codeEditFlagDifficulty); err != nil {
				return err
			}
			problem.Difficulty = codeEditFlagDifficulty
		}
		if cmd.Flags().Changed("link") {
			problem.Link = strings.TrimSpace(codeEditFlagLink)
		}
		if cmd.Flags().Changed("notes") {
			problem.Notes = strings.TrimSpace(codeEditFlagNotes)
		}
		if problem.Title == "" {
			return errors.NewUserError("Problem needs a title",
				"Pass --problem TITLE, or --clear-problem to detach it")
		}
		log.LeetCodeProblem = problem
	}

	if err := ctx.Coding.Update(id, log); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(log)
	}
	ctx.CLIFormatter().Success("Updated log " + shortID(id))
	return nil
}

func runCodeStreak(cmd *cobra.Command, args []string) error {
	now := time.Now()
	streak := stats.Streak(ctx.Coding.Records(), now)
	today := stats.FilterDay(ctx.Coding.Records(), now)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(map[string]int{
			"streak":     streak,
			"logs_today": len(today),
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("%d day streak", streak))
	if len(today) == 0 {
		cli.Muted("Nothing logged today yet.")
	} else {
		cli.Muted(fmt.Sprintf("%d log(s) today.", len(today)))
	}
	return nil
}

func runCodeRm(cmd *cobra.Command, args []string) error {
	id, err := resolveID(ctx.Coding.Records(), args[0])
	if err != nil {
		return err
	}
	if id == "" {
		ctx.CLIFormatter().Muted("No coding log matches " + args[0])
		return nil
	}

	if err := ctx.Coding.Remove(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(map[string]string{"removed": id})
	}
	ctx.CLIFormatter().Success("Removed log " + shortID(id))
	return nil
}

package cmd

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grow-cli/grow/internal/errors"
	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/stats"
	"github.com/grow-cli/grow/internal/validate"
)

// Fitness command flags.
var (
	fitLogFlagDistance float64
	fitLogFlagPace     string

	fitListFlagToday bool
)

// fitCmd groups the fitness commands.
var fitCmd = &cobra.Command{
	Use:     "fit",
	Aliases: []string{"fitness"},
	Short:   "Track workouts",
}

var fitLogCmd = &cobra.Command{
	Use:   "log TYPE [REPS]",
	Short: "Log a workout",
	Long: `Log a workout. Set exercises take a rep count; running takes a
distance in kilometers.

Examples:
  grow fit log pushups 20
  grow fit log running --distance 5.2 --pace 5:30/km
  grow fit log "jump rope" 100`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFitLog,
}

var fitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List fitness logs",
	RunE:    runFitList,
}

var fitWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show weekly totals per exercise",
	RunE:  runFitWeek,
}

var fitRmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a fitness log",
	Args:    cobra.ExactArgs(1),
	RunE:    runFitRm,
}

func init() {
	fitLogCmd.Flags().Float64Var(&fitLogFlagDistance, "distance", 0, "Distance in kilometers (running)")
	fitLogCmd.Flags().StringVar(&fitLogFlagPace, "pace", "", "Pace, free text (running)")

	fitListCmd.Flags().BoolVar(&fitListFlagToday, "today", false, "Only today's logs")

	fitCmd.AddCommand(fitLogCmd)
	fitCmd.AddCommand(fitListCmd)
	fitCmd.AddCommand(fitWeekCmd)
	fitCmd.AddCommand(fitRmCmd)
	rootCmd.AddCommand(fitCmd)
}

func runFitLog(cmd *cobra.Command, args []string) error {
	exerciseType := strings.ToLower(strings.TrimSpace(args[0]))
	if err := validate.ExerciseType(exerciseType); err != nil {
		return err
	}

	var log model.FitnessLog
	if exerciseType == model.ExerciseRunning {
		if !cmd.Flags().Changed("distance") {
			return errors.NewUserError("Running needs a distance",
				"Pass --distance KM")
		}
		if err := validate.Distance(fitLogFlagDistance); err != nil {
			return err
		}
		log = model.NewRunLog(fitLogFlagDistance, strings.TrimSpace(fitLogFlagPace))
	} else {
		if len(args) < 2 {
			return errors.NewUserError("Missing rep count",
				"Pass the number of reps, e.g. 'grow fit log pushups 20'")
		}
		reps, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.NewUserErrorWithField("reps", args[1],
				"Invalid rep count", "Reps must be a whole number")
		}
		if err := validate.Reps(reps); err != nil {
			return err
		}
		log = model.NewRepsLog(exerciseType, reps)
	}

	if err := ctx.Fitness.Add(log); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(log)
	}
	ctx.CLIFormatter().Success("Logged " + log.Type + " (" + formatAmount(log.Amount()) + " " + log.Unit() + ")")
	return nil
}

func runFitList(cmd *cobra.Command, args []string) error {
	logs := ctx.Fitness.Records()
	if fitListFlagToday {
		logs = stats.FilterDay(logs, time.Now())
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(logs)
	}

	cli := ctx.CLIFormatter()
	if len(logs) == 0 {
		cli.Muted("No fitness logs.")
		return nil
	}

	table := cli.NewTable()
	table.AddRow("ID", "TYPE", "AMOUNT", "PACE", "WHEN")
	for _, l := range logs {
		table.AddRow(shortID(l.ID), l.Type,
			formatAmount(l.Amount())+" "+l.Unit(), l.Pace, formatWhen(l))
	}
	cli.PrintTable(table)
	return nil
}

func runFitWeek(cmd *cobra.Command, args []string) error {
	totals := stats.WeeklyTotals(ctx.Fitness.Records(), time.Now())

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(totals)
	}

	cli := ctx.CLIFormatter()
	cli.Title("This week")
	if len(totals) == 0 {
		cli.Muted("No workouts in the last 7 days.")
		return nil
	}

	table := cli.NewTable()
	table.AddRow("EXERCISE", "TOTAL", "LOGS")
	for _, kind := range stats.Kinds(totals) {
		agg := totals[kind]
		table.AddRow(kind, formatAmount(agg.Total)+" "+agg.Unit, strconv.Itoa(agg.Count))
	}
	cli.PrintTable(table)
	return nil
}

func runFitRm(cmd *cobra.Command, args []string) error {
	id, err := resolveID(ctx.Fitness.Records(), args[0])
	if err != nil {
		return err
	}
	if id == "" {
		ctx.CLIFormatter().Muted("No fitness log matches " + args[0])
		return nil
	}

	if err := ctx.Fitness.Remove(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(map[string]string{"removed": id})
	}
	ctx.CLIFormatter().Success("Removed log " + shortID(id))
	return nil
}

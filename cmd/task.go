package cmd

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grow-cli/grow/internal/model"
	"github.com/grow-cli/grow/internal/parser"
	"github.com/grow-cli/grow/internal/validate"
)

// Task command flags.
var (
	taskAddFlagDesc string
	taskAddFlagDue  string

	taskListFlagPending bool
	taskListFlagDone    bool

	taskEditFlagTitle    string
	taskEditFlagDesc     string
	taskEditFlagDue      string
	taskEditFlagClearDue bool
)

// taskCmd groups the to-do commands.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t", "tasks"},
	Short:   "Manage to-do tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add TITLE",
	Short: "Add a new task",
	Long: `Add a new task. The due date accepts YYYY-MM-DD or natural language.

Examples:
  grow task add "buy groceries"
  grow task add "file taxes" --due "next friday" -d "use the new portal"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runTaskList,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Toggle a task's completed flag",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskEdit,
}

var taskRmCmd = &cobra.Command{
	Use:     "rm ID",
	Aliases: []string{"remove", "delete"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskRm,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskAddFlagDesc, "desc", "d", "", "Task description")
	taskAddCmd.Flags().StringVar(&taskAddFlagDue, "due", "", "Due date (YYYY-MM-DD or natural language)")

	taskListCmd.Flags().BoolVar(&taskListFlagPending, "pending", false, "Only pending tasks")
	taskListCmd.Flags().BoolVar(&taskListFlagDone, "done", false, "Only completed tasks")

	taskEditCmd.Flags().StringVar(&taskEditFlagTitle, "title", "", "New title")
	taskEditCmd.Flags().StringVarP(&taskEditFlagDesc, "desc", "d", "", "New description")
	taskEditCmd.Flags().StringVar(&taskEditFlagDue, "due", "", "New due date")
	taskEditCmd.Flags().BoolVar(&taskEditFlagClearDue, "clear-due", false, "Remove the due date")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskRmCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if err := validate.TaskTitle(title); err != nil {
		return err
	}

	var due string
	if taskAddFlagDue != "" {
		var err error
		due, err = parser.Date(taskAddFlagDue)
		if err != nil {
			return err
		}
	}

	task := model.NewTask(title, strings.TrimSpace(taskAddFlagDesc), due)
	if err := ctx.Tasks.Add(task); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(task)
	}
	cli := ctx.CLIFormatter()
	cli.Success("Added task " + shortID(task.ID))
	if due != "" {
		cli.Muted("  due " + due)
	}
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	var tasks []model.Task
	switch {
	case taskListFlagPending:
		tasks = ctx.Tasks.Pending()
	case taskListFlagDone:
		tasks = ctx.Tasks.Completed()
	default:
		tasks = ctx.Tasks.Records()
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(tasks)
	}

	cli := ctx.CLIFormatter()
	if len(tasks) == 0 {
		cli.Muted("No tasks.")
		return nil
	}

	now := time.Now()
	table := cli.NewTable()
	table.AddRow("", "ID", "TITLE", "DUE", "CREATED")
	for _, t := range tasks {
		glyph := "○"
		if t.Completed {
			glyph = "✓"
		}
		due := t.DueDate
		if t.Overdue(now) {
			due += " (overdue)"
		}
		table.AddRow(glyph, shortID(t.ID), t.Title, due, formatWhen(t))
	}
	cli.PrintTable(table)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	id, err := resolveID(ctx.Tasks.Records(), args[0])
	if err != nil {
		return err
	}
	if id == "" {
		ctx.CLIFormatter().Muted("No task matches " + args[0])
		return nil
	}

	if err := ctx.Tasks.Toggle(id); err != nil {
		return err
	}

	task, _ := ctx.Tasks.Find(id)
	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(task)
	}
	cli := ctx.CLIFormatter()
	if task.Completed {
		cli.Success("Completed: " + task.Title)
	} else {
		cli.Success("Reopened: " + task.Title)
	}
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	id, err := resolveID(ctx.Tasks.Records(), args[0])
	if err != nil {
		return err
	}
	if id == "" {
		ctx.CLIFormatter().Muted("No task matches " + args[0])
		return nil
	}

	task, _ := ctx.Tasks.Find(id)

	if cmd.Flags().Changed("title") {
		if err := validate.TaskTitle(taskEditFlagTitle); err != nil {
			return err
		}
		task.Title = strings.TrimSpace(taskEditFlagTitle)
	}
	if cmd.Flags().Changed("desc") {
		task.Description = strings.TrimSpace(taskEditFlagDesc)
	}
	if taskEditFlagClearDue {
		task.DueDate = ""
	} else if cmd.Flags().Changed("due") {
		due, err := parser.Date(taskEditFlagDue)
		if err != nil {
			return err
		}
		task.DueDate = due
	}

	if err := ctx.Tasks.Update(id, task); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(task)
	}
	ctx.CLIFormatter().Success("Updated task " + shortID(id))
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	id, err := resolveID(ctx.Tasks.Records(), args[0])
	if err != nil {
		return err
	}
	if id == "" {
		ctx.CLIFormatter().Muted("No task matches " + args[0])
		return nil
	}

	task, _ := ctx.Tasks.Find(id)
	if err := ctx.Tasks.Remove(id); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().Print(map[string]string{"removed": id})
	}
	ctx.CLIFormatter().Success("Removed: " + task.Title)
	return nil
}

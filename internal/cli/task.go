// task.go implements the "vibeflo task" subcommands for the task list.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/app"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/config"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/tasks"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage the task list",
	Long: `Manage the tasks that pomodoro sessions can be logged against.
Numbers shown by "vibeflo task list" address tasks in done/rm.`,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runTaskList,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <number>",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskDone,
}

var taskRemoveCmd = &cobra.Command{
	Use:     "rm <number>",
	Aliases: []string{"remove"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskRemove,
}

func init() {
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskRemoveCmd)
}

func openTaskStore() (*tasks.Store, error) {
	dir, err := config.Dir(app.AppName)
	if err != nil {
		return nil, fmt.Errorf("locate config dir: %w", err)
	}
	return tasks.NewStore(dir), nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}
	all, err := store.List()
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	if len(all) == 0 {
		fmt.Println(`No tasks. Add one with: vibeflo task add "write report"`)
		return nil
	}
	for i, task := range all {
		mark := " "
		if task.Done {
			mark = "x"
		}
		line := fmt.Sprintf("%2d. [%s] %s", i+1, mark, task.Text)
		if task.Pomodoros > 0 {
			line += fmt.Sprintf("  (%d %s)", task.Pomodoros, pomodoroWord(task.Pomodoros))
		}
		fmt.Println(line)
	}
	return nil
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}
	task, err := store.Add(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	fmt.Printf("Added: %s\n", task.Text)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}
	task, err := taskByNumber(store, args[0])
	if err != nil {
		return err
	}
	if err := store.Complete(task.ID); err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	fmt.Printf("Done: %s\n", task.Text)
	return nil
}

func runTaskRemove(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}
	task, err := taskByNumber(store, args[0])
	if err != nil {
		return err
	}
	if err := store.Remove(task.ID); err != nil {
		return fmt.Errorf("remove task: %w", err)
	}
	fmt.Printf("Removed: %s\n", task.Text)
	return nil
}

// taskByNumber resolves a 1-based list position into the stored task.
func taskByNumber(store *tasks.Store, arg string) (tasks.Task, error) {
	number, err := strconv.Atoi(arg)
	if err != nil || number < 1 {
		return tasks.Task{}, fmt.Errorf("task number must be a positive integer, got %q", arg)
	}
	all, err := store.List()
	if err != nil {
		return tasks.Task{}, fmt.Errorf("list tasks: %w", err)
	}
	if number > len(all) {
		return tasks.Task{}, fmt.Errorf("no task %d (the list has %d)", number, len(all))
	}
	return all[number-1], nil
}

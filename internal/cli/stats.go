// stats.go implements the "vibeflo stats" command for session summaries.
package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/app"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/config"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/stats"
)

var (
	statsWeek   bool
	statsAll    bool
	statsRecent int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show focus session totals",
	Long: `Display completed pomodoro totals and per-task breakdowns.
Defaults to today; use --week or --all for longer windows.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsWeek, "week", false, "Totals since Monday of the current week")
	statsCmd.Flags().BoolVar(&statsAll, "all", false, "Totals across all recorded sessions")
	statsCmd.Flags().IntVar(&statsRecent, "recent", 0, "Also list the N most recent sessions")
}

func runStats(cmd *cobra.Command, args []string) error {
	dir, err := config.Dir(app.AppName)
	if err != nil {
		return fmt.Errorf("locate config dir: %w", err)
	}
	store, err := stats.NewStore(filepath.Join(dir, app.StatsFileName))
	if err != nil {
		return fmt.Errorf("open stats store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	now := time.Now()
	from := stats.StartOfDay(now)
	label := "Today"
	switch {
	case statsAll:
		from = time.Time{}
		label = "All time"
	case statsWeek:
		from = stats.StartOfWeek(now)
		label = "This week"
	}
	to := now.Add(time.Minute)

	totals, err := store.TotalsBetween(from, to)
	if err != nil {
		return fmt.Errorf("load totals: %w", err)
	}
	fmt.Printf("%s: %d %s, %d min focused\n", label, totals.Sessions, pomodoroWord(totals.Sessions), totals.Minutes)

	byTask, err := store.TaskTotalsBetween(from, to)
	if err != nil {
		return fmt.Errorf("load task totals: %w", err)
	}
	if len(byTask) > 0 {
		fmt.Println()
		for _, row := range byTask {
			fmt.Printf("  %-28s %3d x %4d min\n", taskOrPlaceholder(row.Task), row.Sessions, row.Minutes)
		}
	}

	if statsRecent > 0 {
		recent, err := store.RecentSessions(statsRecent)
		if err != nil {
			return fmt.Errorf("load recent sessions: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println()
			for _, session := range recent {
				fmt.Printf("  %s  %2d min  %s\n",
					session.CompletedAt.Format("Jan 02 15:04"),
					session.DurationMinutes,
					taskOrPlaceholder(session.Task))
			}
		}
	}
	return nil
}

func taskOrPlaceholder(task string) string {
	if task == "" {
		return "(no task)"
	}
	return task
}

func pomodoroWord(count int) string {
	if count == 1 {
		return "pomodoro"
	}
	return "pomodoros"
}

// tui.go implements the "vibeflo tui" command, the terminal timer.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/app"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/config"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/timer"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/notify"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/stats"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/tasks"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the timer in the terminal",
	Long: `Run the pomodoro timer as a full-screen terminal UI. Completed
sessions land in the same stats database and task list as the tray app.`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !tui.IsTTY() {
		return fmt.Errorf("stdout is not a terminal; launch the tray app with plain \"vibeflo\" instead")
	}

	dir, err := config.Dir(app.AppName)
	if err != nil {
		return fmt.Errorf("locate config dir: %w", err)
	}
	settings, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v (using defaults)\n", err)
	}

	store, err := stats.NewStore(filepath.Join(dir, app.StatsFileName))
	if err != nil {
		return fmt.Errorf("open stats store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	taskStore := tasks.NewStore(dir)

	engine := timer.New(settings.TimerConfig(), timer.Options{
		Reporter: store,
		Notifier: notify.Nop{},
	})
	defer engine.Close()

	return tui.Run(tui.New(engine, store, taskStore))
}

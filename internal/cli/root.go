// Package cli defines Cobra command definitions for the vibeflo CLI.
// This file contains the root command, which launches the tray app.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/app"
)

var (
	verbose bool
	version = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "vibeflo",
	Short: "Pomodoro focus timer for the system tray and the terminal",
	Long: `VibeFlo is a pomodoro timer that lives in your system tray.
Focus sessions alternate with short and long breaks, completed
pomodoros are recorded per task, and "vibeflo tui" runs the same
timer inside the terminal.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(app.Options{Verbose: verbose})
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log engine events to stderr (tray mode)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(taskCmd)
}

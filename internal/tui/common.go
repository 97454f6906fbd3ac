package tui

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// ErrNotTerminal is returned by Run when stdout is not a TTY.
var ErrNotTerminal = errors.New("stdout is not a terminal")

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the TUI program in alternate screen mode. Callers should check
// IsTTY first to print a friendlier hint before falling back.
func Run(m tea.Model) error {
	if !IsTTY() {
		return ErrNotTerminal
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the timer display.
const (
	primaryColor   = "#E05E52" // Tomato
	secondaryColor = "#10B981" // Green
	warningColor   = "#F59E0B" // Amber
	dimColor       = "#6B7280" // Gray
)

// Style variables for consistent TUI rendering.
var (
	// TitleStyle renders the app title in primary color with bold.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// ClockStyle renders the remaining time readout.
	ClockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB")).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// RunningStyle renders the running state indicator.
	RunningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// PausedStyle renders the paused state indicator.
	PausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// FlashStyle renders transient status messages.
	FlashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(secondaryColor))

	// ActiveTabStyle renders the tab for the current mode.
	ActiveTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(primaryColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)

	// InactiveTabStyle renders tabs for the other modes.
	InactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#374151")).
				Foreground(lipgloss.Color("#9CA3AF")).
				Padding(0, 2)
)

// Package tui implements the terminal timer interface using Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/timer"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/stats"
	"github.com/josephwaugh312/VibeFlo-sub006/internal/tasks"
)

const (
	defaultProgressWidth = 40
	maxProgressWidth     = 60
	minProgressWidth     = 10
)

// modeTabs is the display order of the mode tab bar.
var modeTabs = []timer.Mode{timer.ModePomodoro, timer.ModeShortBreak, timer.ModeLongBreak}

// tickMsg advances the timer once per second while a session is running.
type tickMsg time.Time

func scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubble Tea model for the timer screen. It owns the engine's
// tick cadence: at most one tick command is pending at any time, tracked by
// the ticking flag, and a new one is scheduled only when the previous one
// has fired and the engine is still running.
type Model struct {
	engine    *timer.Engine
	store     *stats.Store
	taskStore *tasks.Store

	state    timer.State
	today    stats.Totals
	progress progress.Model
	input    textinput.Model
	help     help.Model
	keys     KeyMap

	entering bool
	ticking  bool
	flash    string
}

// New creates the timer screen model. store and taskStore may be nil, in
// which case daily totals and task pomodoro counts are not shown or updated.
func New(engine *timer.Engine, store *stats.Store, taskStore *tasks.Store) Model {
	input := textinput.New()
	input.Placeholder = "What are you working on?"
	input.CharLimit = 64
	input.Width = 32

	bar := progress.New(
		progress.WithGradient(primaryColor, warningColor),
		progress.WithoutPercentage(),
	)
	bar.Width = defaultProgressWidth

	m := Model{
		engine:    engine,
		store:     store,
		taskStore: taskStore,
		state:     engine.State(),
		progress:  bar,
		input:     input,
		help:      help.New(),
		keys:      DefaultKeyMap,
	}
	m.ticking = m.state.Running
	m.refreshToday()
	return m
}

// Init starts the tick loop if the engine is already running.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return scheduleTick()
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		barWidth := msg.Width - 8
		if barWidth > maxProgressWidth {
			barWidth = maxProgressWidth
		}
		if barWidth < minProgressWidth {
			barWidth = minProgressWidth
		}
		m.progress.Width = barWidth
		return m, nil

	case tickMsg:
		return m.handleTick()

	case tea.KeyMsg:
		if m.entering {
			return m.handleTaskEntry(msg)
		}
		return m.handleKey(msg)
	}

	if m.entering {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleTick advances the engine by one second and re-arms the tick loop
// while the engine keeps running. A tick that arrives after a pause clears
// the ticking flag without scheduling a successor.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false
	before := m.state.CompletedPomodoros
	m.engine.Tick()
	m.state = m.engine.State()
	if m.state.CompletedPomodoros > before {
		m.logCompletion()
	}
	if m.state.Running {
		m.ticking = true
		return m, scheduleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.flash = ""
		if m.state.Running {
			m.engine.Pause()
		} else {
			m.engine.Start()
		}
		m.state = m.engine.State()
		return m.armTick()

	case key.Matches(msg, m.keys.Reset):
		m.flash = ""
		m.engine.Reset()
		m.state = m.engine.State()
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		m.flash = ""
		m.engine.Skip()
		m.state = m.engine.State()
		return m.armTick()

	case key.Matches(msg, m.keys.Mode):
		m.flash = ""
		m.engine.SwitchMode(nextMode(m.state.Mode))
		m.state = m.engine.State()
		return m, nil

	case key.Matches(msg, m.keys.Task):
		m.entering = true
		m.input.SetValue(m.state.Task)
		m.input.CursorEnd()
		return m, m.input.Focus()
	}
	return m, nil
}

// handleTaskEntry routes keys to the task input while it has focus.
func (m Model) handleTaskEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.engine.SetTask(m.input.Value())
		m.state = m.engine.State()
		m.entering = false
		m.input.Blur()
		return m, nil
	case tea.KeyEsc:
		m.entering = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// armTick schedules a tick if the engine is running and none is pending.
func (m Model) armTick() (tea.Model, tea.Cmd) {
	if m.state.Running && !m.ticking {
		m.ticking = true
		return m, scheduleTick()
	}
	return m, nil
}

// logCompletion records a finished pomodoro against the active task and
// refreshes the daily totals line.
func (m *Model) logCompletion() {
	if m.taskStore != nil && m.state.Task != "" {
		if err := m.taskStore.IncrementPomodoros(m.state.Task); err != nil {
			m.flash = fmt.Sprintf("task update failed: %v", err)
			m.refreshToday()
			return
		}
	}
	m.refreshToday()
	m.flash = "Pomodoro logged"
}

func (m *Model) refreshToday() {
	if m.store == nil {
		return
	}
	start := stats.StartOfDay(time.Now())
	totals, err := m.store.TotalsBetween(start, start.AddDate(0, 0, 1))
	if err != nil {
		return
	}
	m.today = totals
}

func (m Model) progressPercent() float64 {
	total := timer.DurationSeconds(m.engine.Config(), m.state.Mode)
	if total <= 0 {
		return 0
	}
	done := total - m.state.RemainingSeconds
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	return float64(done) / float64(total)
}

func (m Model) renderTabs() string {
	rendered := make([]string, 0, len(modeTabs))
	for _, mode := range modeTabs {
		style := InactiveTabStyle
		if mode == m.state.Mode {
			style = ActiveTabStyle
		}
		rendered = append(rendered, style.Render(mode.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// View renders the timer screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("VibeFlo"))
	b.WriteString(DimStyle.Render("  focus timer"))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	b.WriteString(ClockStyle.Render(m.state.Clock()))
	if m.state.Running {
		b.WriteString(RunningStyle.Render("  running"))
	} else {
		b.WriteString(PausedStyle.Render("  paused"))
	}
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.progressPercent()))
	b.WriteString("\n\n")

	switch {
	case m.entering:
		b.WriteString("Task: " + m.input.View())
	case m.state.Task != "":
		b.WriteString("Task: " + m.state.Task)
	default:
		b.WriteString(DimStyle.Render("No task (press t to set one)"))
	}
	b.WriteString("\n")

	sessionsLabel := "pomodoros"
	if m.today.Sessions == 1 {
		sessionsLabel = "pomodoro"
	}
	b.WriteString(fmt.Sprintf("Today: %d %s, %d min focused", m.today.Sessions, sessionsLabel, m.today.Minutes))
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString(FlashStyle.Render(m.flash))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func nextMode(mode timer.Mode) timer.Mode {
	switch mode {
	case timer.ModePomodoro:
		return timer.ModeShortBreak
	case timer.ModeShortBreak:
		return timer.ModeLongBreak
	default:
		return timer.ModePomodoro
	}
}

// Package tray renders the system tray menu, the app's main surface.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/timer"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggleRun   func()
	OnReset       func()
	OnSkip        func()
	OnSwitchMode  func(mode timer.Mode)
	OnSelectTask  func(label string)
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state. All methods must run on the fyne
// main goroutine.
type Manager struct {
	app        desktop.App
	statusItem *fyne.MenuItem
	todayItem  *fyne.MenuItem
	toggleItem *fyne.MenuItem
	resetItem  *fyne.MenuItem
	skipItem   *fyne.MenuItem
	modeItem   *fyne.MenuItem
	modeItems  []*fyne.MenuItem
	modeOrder  []timer.Mode
	taskItem   *fyne.MenuItem
	prefsItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
		modeOrder: []timer.Mode{timer.ModePomodoro, timer.ModeShortBreak, timer.ModeLongBreak},
	}

	manager.statusItem = fyne.NewMenuItem("Pomodoro 25:00", nil)
	manager.statusItem.Disabled = true

	manager.todayItem = fyne.NewMenuItem("Today: 0 pomodoros", nil)
	manager.todayItem.Disabled = true

	manager.toggleItem = fyne.NewMenuItem("Start", func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})
	manager.toggleItem.Icon = theme.MediaPlayIcon()

	manager.resetItem = fyne.NewMenuItem("Reset", func() {
		if manager.callbacks.OnReset != nil {
			manager.callbacks.OnReset()
		}
	})

	manager.skipItem = fyne.NewMenuItem("Skip", func() {
		if manager.callbacks.OnSkip != nil {
			manager.callbacks.OnSkip()
		}
	})
	manager.skipItem.Icon = theme.MediaSkipNextIcon()

	for _, mode := range manager.modeOrder {
		mode := mode
		item := fyne.NewMenuItem(mode.Label(), func() {
			if manager.callbacks.OnSwitchMode != nil {
				manager.callbacks.OnSwitchMode(mode)
			}
		})
		manager.modeItems = append(manager.modeItems, item)
	}
	manager.modeItems[0].Checked = true
	manager.modeItem = fyne.NewMenuItem("Mode", nil)
	manager.modeItem.ChildMenu = fyne.NewMenu("", manager.modeItems...)

	manager.taskItem = fyne.NewMenuItem("Task", nil)
	manager.taskItem.ChildMenu = fyne.NewMenu("", manager.taskChildItems(nil, "")...)

	manager.prefsItem = fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})

	manager.quitItem = fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})

	manager.refreshMenu()
	return manager
}

// Update redraws the timer-driven items from an engine snapshot.
func (manager *Manager) Update(state timer.State) {
	status := fmt.Sprintf("%s %s", state.Mode.Label(), state.Clock())
	if !state.Running {
		status += " (paused)"
	}
	manager.statusItem.Label = status

	if state.Running {
		manager.toggleItem.Label = "Pause"
		manager.toggleItem.Icon = theme.MediaPauseIcon()
	} else {
		manager.toggleItem.Label = "Start"
		manager.toggleItem.Icon = theme.MediaPlayIcon()
	}

	for i, mode := range manager.modeOrder {
		manager.modeItems[i].Checked = state.Mode == mode
	}

	manager.refreshMenu()
}

// SetToday updates the completed-today line.
func (manager *Manager) SetToday(sessions int) {
	noun := "pomodoros"
	if sessions == 1 {
		noun = "pomodoro"
	}
	manager.todayItem.Label = fmt.Sprintf("Today: %d %s", sessions, noun)
	manager.refreshMenu()
}

// SetTasks rebuilds the task submenu from the open task labels, marking
// the currently bound one.
func (manager *Manager) SetTasks(labels []string, current string) {
	manager.taskItem.ChildMenu = fyne.NewMenu("", manager.taskChildItems(labels, current)...)
	manager.refreshMenu()
}

func (manager *Manager) taskChildItems(labels []string, current string) []*fyne.MenuItem {
	none := fyne.NewMenuItem("No task", func() {
		if manager.callbacks.OnSelectTask != nil {
			manager.callbacks.OnSelectTask("")
		}
	})
	none.Checked = current == ""

	items := []*fyne.MenuItem{none}
	for _, label := range labels {
		label := label
		item := fyne.NewMenuItem(label, func() {
			if manager.callbacks.OnSelectTask != nil {
				manager.callbacks.OnSelectTask(label)
			}
		})
		item.Checked = label == current
		items = append(items, item)
	}
	return items
}

// refreshMenu pushes the rebuilt menu to the tray; some platforms do not
// repaint label changes otherwise.
func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("VibeFlo",
		manager.statusItem,
		manager.todayItem,
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		manager.resetItem,
		manager.skipItem,
		fyne.NewMenuItemSeparator(),
		manager.modeItem,
		manager.taskItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	))
}

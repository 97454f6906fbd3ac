// Package preferences implements the settings window.
package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/config"
)

// Window handles the preferences UI. Duration fields that fail to parse as
// positive integers keep their previous values on save.
type Window struct {
	window   fyne.Window
	settings config.Config
	onSave   func(config.Config)

	pomodoro  *widget.Entry
	shortBrk  *widget.Entry
	longBrk   *widget.Entry
	cadence   *widget.Entry
	idleAfter *widget.Entry

	autoBreaks    *widget.Check
	autoPomodoros *widget.Check
	notifications *widget.Check
	breakWindow   *widget.Check
	pauseOnIdle   *widget.Check
	launchAtLogin *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings config.Config, onSave func(config.Config)) *Window {
	window := app.NewWindow("VibeFlo Preferences")

	prefs := &Window{
		window:   window,
		settings: settings,
		onSave:   onSave,

		pomodoro:  widget.NewEntry(),
		shortBrk:  widget.NewEntry(),
		longBrk:   widget.NewEntry(),
		cadence:   widget.NewEntry(),
		idleAfter: widget.NewEntry(),

		autoBreaks:    widget.NewCheck("Auto-start breaks", nil),
		autoPomodoros: widget.NewCheck("Auto-start pomodoros", nil),
		notifications: widget.NewCheck("Desktop notifications", nil),
		breakWindow:   widget.NewCheck("Show break window", nil),
		pauseOnIdle:   widget.NewCheck("Pause timer when idle", nil),
		launchAtLogin: widget.NewCheck("Launch at login", nil),
	}
	prefs.applySettings(settings)

	durations := container.NewVBox(
		widget.NewLabelWithStyle("Durations", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Pomodoro"), prefs.pomodoro, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Short break"), prefs.shortBrk, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), prefs.longBrk, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break every"), prefs.cadence, widget.NewLabel("pomodoros")),
	)

	behavior := container.NewVBox(
		widget.NewLabelWithStyle("Behavior", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.autoBreaks,
		prefs.autoPomodoros,
		prefs.notifications,
		prefs.breakWindow,
		prefs.pauseOnIdle,
		container.NewHBox(widget.NewLabel("Idle after"), prefs.idleAfter, widget.NewLabel("min")),
		prefs.launchAtLogin,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.applySettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil,
		container.NewVBox(durations, widget.NewSeparator(), behavior)))
	window.Resize(fyne.NewSize(420, 480))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces the window's values.
func (prefs *Window) UpdateSettings(settings config.Config) {
	prefs.settings = settings
	prefs.applySettings(settings)
}

func (prefs *Window) applySettings(settings config.Config) {
	prefs.pomodoro.SetText(fmt.Sprintf("%d", settings.PomodoroMinutes))
	prefs.shortBrk.SetText(fmt.Sprintf("%d", settings.ShortBreakMinutes))
	prefs.longBrk.SetText(fmt.Sprintf("%d", settings.LongBreakMinutes))
	prefs.cadence.SetText(fmt.Sprintf("%d", settings.PomodorosUntilLongBreak))
	prefs.idleAfter.SetText(fmt.Sprintf("%d", settings.IdleAfterMinutes))

	prefs.autoBreaks.SetChecked(settings.AutoStartBreaks)
	prefs.autoPomodoros.SetChecked(settings.AutoStartPomodoros)
	prefs.notifications.SetChecked(settings.NotificationsEnabled)
	prefs.breakWindow.SetChecked(settings.ShowBreakWindow)
	prefs.pauseOnIdle.SetChecked(settings.PauseOnIdle)
	prefs.launchAtLogin.SetChecked(settings.LaunchAtLogin)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.pomodoro.Text); ok {
		settings.PomodoroMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.shortBrk.Text); ok {
		settings.ShortBreakMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.longBrk.Text); ok {
		settings.LongBreakMinutes = minutes
	}
	if count, ok := parsePositiveInt(prefs.cadence.Text); ok {
		settings.PomodorosUntilLongBreak = count
	}
	if minutes, ok := parsePositiveInt(prefs.idleAfter.Text); ok {
		settings.IdleAfterMinutes = minutes
	}

	settings.AutoStartBreaks = prefs.autoBreaks.Checked
	settings.AutoStartPomodoros = prefs.autoPomodoros.Checked
	settings.NotificationsEnabled = prefs.notifications.Checked
	settings.ShowBreakWindow = prefs.breakWindow.Checked
	settings.PauseOnIdle = prefs.pauseOnIdle.Checked
	settings.LaunchAtLogin = prefs.launchAtLogin.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

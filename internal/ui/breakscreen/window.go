// Package breakscreen shows a small countdown window while a break runs.
package breakscreen

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/josephwaugh312/VibeFlo-sub006/internal/core/timer"
)

// Window manages the break countdown UI. All methods must run on the fyne
// main goroutine.
type Window struct {
	window     fyne.Window
	titleLabel *canvas.Text
	clockLabel *canvas.Text
	visible    bool
}

// New creates the break window. onSkip runs when the user skips the break.
func New(app fyne.App, onSkip func()) *Window {
	window := app.NewWindow("VibeFlo Break")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	background := canvas.NewRectangle(color.NRGBA{R: 18, G: 22, B: 32, A: 255})

	titleLabel := canvas.NewText("Short Break", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 20

	clockLabel := canvas.NewText("05:00", color.NRGBA{R: 224, G: 94, B: 82, A: 255})
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clockLabel.TextSize = 48

	skipButton := widget.NewButton("Skip break", func() {
		if onSkip != nil {
			onSkip()
		}
	})

	content := container.NewVBox(titleLabel, clockLabel, container.NewCenter(skipButton))
	window.SetContent(container.NewMax(background, container.NewCenter(content)))
	window.Resize(fyne.NewSize(360, 240))
	window.CenterOnScreen()

	breakWindow := &Window{
		window:     window,
		titleLabel: titleLabel,
		clockLabel: clockLabel,
	}
	window.SetCloseIntercept(breakWindow.Hide)

	return breakWindow
}

// Show presents the window for the given break snapshot.
func (breakWindow *Window) Show(state timer.State) {
	breakWindow.titleLabel.Text = state.Mode.Label()
	breakWindow.titleLabel.Refresh()
	breakWindow.SetRemaining(state.RemainingSeconds)

	if !breakWindow.visible {
		breakWindow.visible = true
		breakWindow.window.Show()
	}
}

// SetRemaining updates the countdown text.
func (breakWindow *Window) SetRemaining(seconds int) {
	breakWindow.clockLabel.Text = timer.FormatClock(seconds)
	breakWindow.clockLabel.Refresh()
}

// Hide dismisses the window without touching the timer.
func (breakWindow *Window) Hide() {
	if !breakWindow.visible {
		return
	}
	breakWindow.visible = false
	breakWindow.window.Hide()
}

// Visible reports whether the window is currently shown.
func (breakWindow *Window) Visible() bool {
	return breakWindow.visible
}

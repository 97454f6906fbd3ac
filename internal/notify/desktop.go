package notify

import (
	"errors"

	"fyne.io/fyne/v2"
)

// Desktop posts notifications through the running Fyne application.
type Desktop struct {
	app fyne.App
}

// NewDesktop returns a Desktop notifier bound to app.
func NewDesktop(app fyne.App) *Desktop {
	return &Desktop{app: app}
}

// RequestPermission is a successful no-op; desktop notifications need no
// runtime permission grant on the supported platforms.
func (desktop *Desktop) RequestPermission() error {
	return nil
}

// Notify posts a desktop notification.
func (desktop *Desktop) Notify(title, body string) error {
	if desktop.app == nil {
		return errors.New("no fyne app")
	}
	desktop.app.SendNotification(fyne.NewNotification(title, body))
	return nil
}

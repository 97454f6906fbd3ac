// Package notify abstracts the desktop notification capability so headless
// frontends can run without one.
package notify

// Notifier posts user-facing notifications. RequestPermission runs once at
// startup; implementations without a permission step succeed immediately.
type Notifier interface {
	RequestPermission() error
	Notify(title, body string) error
}

// Nop is a Notifier that silently does nothing.
type Nop struct{}

// RequestPermission implements Notifier.
func (Nop) RequestPermission() error { return nil }

// Notify implements Notifier.
func (Nop) Notify(title, body string) error { return nil }

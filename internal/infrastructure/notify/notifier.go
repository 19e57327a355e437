// Package notify delivers desktop notifications.
package notify

import "github.com/gen2brain/beeep"

// Desktop sends OS-native toast notifications.
type Desktop struct{}

// NewDesktop creates a desktop notifier.
func NewDesktop() *Desktop {
	return &Desktop{}
}

// Notify shows a notification. Best-effort; the returned error is
// informational and callers typically only log it.
func (d *Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// DialogNotifier shows executor notifications as modal dialogs. It is safe to
// call from any goroutine.
type DialogNotifier struct {
	window fyne.Window
}

// NewDialogNotifier creates a notifier bound to window.
func NewDialogNotifier(window fyne.Window) *DialogNotifier {
	return &DialogNotifier{window: window}
}

// Info implements app.Notifier.
func (n *DialogNotifier) Info(title, message string) {
	log.Printf("Info dialog: %s: %s", title, message)
	fyne.Do(func() {
		dialog.ShowInformation(title, message, n.window)
	})
}

// Error implements app.Notifier.
func (n *DialogNotifier) Error(title, message string) {
	log.Printf("Error dialog: %s: %s", title, message)
	fyne.Do(func() {
		dialog.ShowError(errors.New(message), n.window)
	})
}

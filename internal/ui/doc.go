// Package ui contains the Fyne desktop form for cutting clips. It collects a
// request, hands it to the executor without blocking the UI thread and shows
// the results as dialogs and task rows. All UI strings are localized via
// Localization.
package ui

package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestCompactTheme(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Size(theme.SizeNameText); got != 13 {
		t.Errorf("text size = %v, want 13", got)
	}
	if got, want := th.Size(theme.SizeNameInputBorder), theme.DefaultTheme().Size(theme.SizeNameInputBorder); got != want {
		t.Errorf("unlisted sizes should come from the default theme: got %v, want %v", got, want)
	}
	if th.Color(theme.ColorNamePrimary, theme.VariantLight) != ColorAccent {
		t.Error("primary color should be the accent")
	}
}

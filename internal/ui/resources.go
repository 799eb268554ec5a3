package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "yt-clipper.png"
)

// LoadLogoResource loads the logo from the working directory, falling back to
// the theme's media icon when the file is not shipped next to the binary.
func LoadLogoResource() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.MediaVideoIcon()
	}
	return res
}

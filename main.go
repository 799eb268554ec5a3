package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	clipper "github.com/ytget/yt-clipper/internal/app"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-clipper"
	AppName = "YT Clipper"
)

func main() {
	fmt.Printf("YT Clipper v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	tools, err := config.LoadTools(settings.GetToolsConfigPath())
	if err != nil {
		log.Printf("failed to load tool config, using defaults: %v", err)
		tools = config.DefaultTools()
	}
	log.Printf("Tool config: %s (engine=%s)", tools.Path(), tools.Engine)

	executor, err := clipper.NewFromTools(tools)
	if err != nil {
		log.Printf("failed to create engine %q, falling back to defaults: %v", tools.Engine, err)
		if executor, err = clipper.NewFromTools(config.DefaultTools()); err != nil {
			log.Fatalf("failed to start: %v", err)
		}
	}

	ui.NewRootUI(myWindow, settings, executor, tools)

	myWindow.ShowAndRun()
}

package ui

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-clipper/internal/app"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
)

// Executor runs submitted requests in the background.
type Executor interface {
	Submit(req model.ClipRequest, n app.Notifier) (*model.ClipTask, error)
	Cancel(id string) bool
	Get(id string) (model.ClipTask, bool)
	Active() []model.ClipTask
	SetOnChange(fn func())
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	executor     Executor
	notifier     app.Notifier
	settings     *config.Settings
	tools        *config.Tools
	localization *Localization

	urlEntry        *widget.Entry
	startEntry      *widget.Entry
	endEntry        *widget.Entry
	fullCheck       *widget.Check
	transcriptCheck *widget.Check
	audioCheck      *widget.Check
	resolution      *widget.Select
	folderEntry     *widget.Entry
	browseBtn       *widget.Button
	downloadBtn     *widget.Button
	statusLabel     *widget.Label
	taskList        *widget.List

	labels map[string]*widget.Label

	mu       sync.Mutex
	taskIDs  []string // newest first
	revealed map[string]bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, executor Executor, tools *config.Tools) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		executor:     executor,
		notifier:     NewDialogNotifier(window),
		settings:     settings,
		tools:        tools,
		localization: localization,
		labels:       make(map[string]*widget.Label),
		revealed:     make(map[string]bool),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	executor.SetOnChange(ui.onExecutorChange)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) { ui.onDownloadClick() }

	ui.startEntry = widget.NewEntry()
	ui.startEntry.SetText(DefaultStartTime)
	ui.endEntry = widget.NewEntry()
	ui.endEntry.SetText(DefaultEndTime)

	ui.fullCheck = widget.NewCheck(ui.localization.GetText(KeyFullVideo), ui.onFullVideoChanged)
	ui.transcriptCheck = widget.NewCheck(ui.localization.GetText(KeyTranscript), nil)
	ui.audioCheck = widget.NewCheck(ui.localization.GetText(KeyAudioOnly), ui.onAudioOnlyChanged)

	options := make([]string, 0, len(model.Resolutions()))
	for _, r := range model.Resolutions() {
		options = append(options, string(r))
	}
	ui.resolution = widget.NewSelect(options, nil)

	ui.folderEntry = widget.NewEntry()
	ui.browseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyBrowse), ui.onBrowseFolder)

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyIdle))

	ui.loadRemembered()

	logo := canvas.NewImageFromResource(LoadLogoResource())
	logo.SetMinSize(fyne.NewSize(32, 32))
	logo.FillMode = canvas.ImageFillContain

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	form := container.New(newFormLayout(),
		ui.label(KeyVideoURL), ui.urlEntry,
		ui.label(KeyStartTime), ui.startEntry,
		ui.label(KeyEndTime), ui.endEntry,
		ui.label(KeyResolution), ui.resolution,
		ui.label(KeyOutputFolder), container.NewBorder(nil, nil, nil, ui.browseBtn, ui.folderEntry),
	)
	toggles := container.NewHBox(ui.fullCheck, ui.transcriptCheck, ui.audioCheck)
	header := container.NewBorder(nil, nil, logo, settingsBtn, widget.NewLabelWithStyle(
		ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	top := container.NewVBox(
		header,
		form,
		toggles,
		container.NewBorder(nil, nil, nil, ui.downloadBtn, ui.statusLabel),
		widget.NewSeparator(),
		ui.label(KeyRecentRequests),
	)

	ui.taskList = widget.NewList(
		ui.taskCount,
		func() fyne.CanvasObject {
			row := NewTaskRow(ui.localization)
			row.SetCallbacks(ui.onStopTask, ui.onRevealFile, ui.onOpenFile)
			return row
		},
		ui.updateTaskItem,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.taskList))
	log.Printf("UI setup completed successfully")
}

// label returns a localized label registered for language refreshes
func (ui *RootUI) label(key string) *widget.Label {
	l := widget.NewLabel(ui.localization.GetText(key))
	ui.labels[key] = l
	return l
}

func newFormLayout() fyne.Layout {
	return &formLayout{}
}

// formLayout aligns label/field pairs in two columns
type formLayout struct{}

func (f *formLayout) labelWidth(objects []fyne.CanvasObject) float32 {
	var w float32
	for i := 0; i < len(objects); i += 2 {
		w = max(w, objects[i].MinSize().Width)
	}
	return w
}

func (f *formLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	lw := f.labelWidth(objects)
	var y float32
	for i := 0; i+1 < len(objects); i += 2 {
		h := max(objects[i].MinSize().Height, objects[i+1].MinSize().Height)
		objects[i].Move(fyne.NewPos(0, y))
		objects[i].Resize(fyne.NewSize(lw, h))
		objects[i+1].Move(fyne.NewPos(lw, y))
		objects[i+1].Resize(fyne.NewSize(size.Width-lw, h))
		y += h
	}
}

func (f *formLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	lw := f.labelWidth(objects)
	var fw, h float32
	for i := 0; i+1 < len(objects); i += 2 {
		fw = max(fw, objects[i+1].MinSize().Width)
		h += max(objects[i].MinSize().Height, objects[i+1].MinSize().Height)
	}
	return fyne.NewSize(lw+fw, h)
}

// loadRemembered restores the last used form state
func (ui *RootUI) loadRemembered() {
	var req model.ClipRequest
	ui.settings.Apply(&req)

	ui.folderEntry.SetText(req.Folder)
	ui.resolution.SetSelected(string(req.Resolution))
	ui.transcriptCheck.SetChecked(req.Transcript)
	ui.audioCheck.SetChecked(req.AudioOnly)
	ui.fullCheck.SetChecked(req.FullVideo)
	ui.onFullVideoChanged(req.FullVideo)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		item.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	for key, l := range ui.labels {
		l.SetText(ui.localization.GetText(key))
	}
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.fullCheck.Text = ui.localization.GetText(KeyFullVideo)
	ui.fullCheck.Refresh()
	ui.transcriptCheck.Text = ui.localization.GetText(KeyTranscript)
	ui.transcriptCheck.Refresh()
	ui.audioCheck.Text = ui.localization.GetText(KeyAudioOnly)
	ui.audioCheck.Refresh()
	ui.browseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyBrowse))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.refreshStatus()
	ui.taskList.Refresh()
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed until Download is pressed
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

func (ui *RootUI) onFullVideoChanged(full bool) {
	if full || ui.audioCheck.Checked {
		ui.startEntry.Disable()
		ui.endEntry.Disable()
	} else {
		ui.startEntry.Enable()
		ui.endEntry.Enable()
	}
}

func (ui *RootUI) onAudioOnlyChanged(audio bool) {
	if audio {
		ui.resolution.Disable()
	} else {
		ui.resolution.Enable()
	}
	ui.onFullVideoChanged(ui.fullCheck.Checked)
}

// onBrowseFolder opens the native folder picker
func (ui *RootUI) onBrowseFolder() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.folderEntry.SetText(uri.Path())
	}, ui.window)
	if dir := strings.TrimSpace(ui.folderEntry.Text); dir != "" {
		if loc, err := listableURI(dir); err == nil {
			d.SetLocation(loc)
		}
	}
	d.Show()
}

func listableURI(dir string) (fyne.ListableURI, error) {
	return storage.ListerForURI(storage.NewFileURI(dir))
}

// collectRequest reads the form. It returns a localization key when a
// required field is missing.
func (ui *RootUI) collectRequest() (model.ClipRequest, string) {
	req := model.ClipRequest{
		URL:        strings.TrimSpace(ui.urlEntry.Text),
		StartTime:  strings.TrimSpace(ui.startEntry.Text),
		EndTime:    strings.TrimSpace(ui.endEntry.Text),
		Folder:     strings.TrimSpace(ui.folderEntry.Text),
		FullVideo:  ui.fullCheck.Checked,
		Transcript: ui.transcriptCheck.Checked,
		AudioOnly:  ui.audioCheck.Checked,
	}
	if r, err := model.ParseResolution(ui.resolution.Selected); err == nil {
		req.Resolution = r
	} else {
		req.Resolution = model.DefaultResolution
	}

	switch {
	case req.URL == "":
		return req, KeyPleaseEnterURL
	case !req.FullVideo && !req.AudioOnly && (req.StartTime == "" || req.EndTime == ""):
		return req, KeyPleaseEnterTimes
	case req.Folder == "":
		return req, KeyPleaseChooseDir
	}
	return req, ""
}

func (ui *RootUI) showInputError(message string) {
	dialog.ShowError(fmt.Errorf("%s: %s", ui.localization.GetText(KeyInputError), message), ui.window)
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	req, problem := ui.collectRequest()
	if problem != "" {
		ui.showInputError(ui.localization.GetText(problem))
		return
	}
	if err := ui.validateURL(req.URL); err != nil {
		ui.showInputError(err.Error())
		return
	}

	ui.settings.Remember(req)
	if err := platform.CreateDirectoryIfNotExists(req.Folder); err != nil {
		log.Printf("failed to ensure output folder: %v", err)
	}

	task, err := ui.executor.Submit(req, ui.notifier)
	if err != nil {
		// the executor has already reported it
		log.Printf("Submit rejected for %s: %v", req.URL, err)
		return
	}
	log.Printf("Task submitted: ID=%s URL=%s", task.ID, req.URL)

	ui.mu.Lock()
	ui.taskIDs = append([]string{task.ID}, ui.taskIDs...)
	ui.mu.Unlock()

	ui.refreshStatus()
	ui.taskList.Refresh()
}

// onExecutorChange is called from executor goroutines
func (ui *RootUI) onExecutorChange() {
	ui.revealFinished()
	fyne.Do(func() {
		ui.refreshStatus()
		ui.taskList.Refresh()
	})
}

// revealFinished opens the file manager once for every newly completed task
func (ui *RootUI) revealFinished() {
	if !ui.settings.GetRevealOnSuccess() {
		return
	}
	ui.mu.Lock()
	ids := append([]string(nil), ui.taskIDs...)
	ui.mu.Unlock()

	for _, id := range ids {
		task, ok := ui.executor.Get(id)
		if !ok || task.Status != model.TaskStatusCompleted || task.OutputPath == "" {
			continue
		}
		ui.mu.Lock()
		done := ui.revealed[id]
		ui.revealed[id] = true
		ui.mu.Unlock()
		if !done {
			ui.onRevealFile(task.OutputPath)
		}
	}
}

// refreshStatus shows how many requests are in flight
func (ui *RootUI) refreshStatus() {
	n := len(ui.executor.Active())
	if n == 0 {
		ui.statusLabel.SetText(ui.localization.GetText(KeyIdle))
		return
	}
	ui.statusLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyInProgressFormat), n))
}

func (ui *RootUI) taskCount() int {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return len(ui.taskIDs)
}

func (ui *RootUI) updateTaskItem(id widget.ListItemID, item fyne.CanvasObject) {
	ui.mu.Lock()
	if id < 0 || id >= len(ui.taskIDs) {
		ui.mu.Unlock()
		return
	}
	taskID := ui.taskIDs[id]
	ui.mu.Unlock()

	task, ok := ui.executor.Get(taskID)
	if !ok {
		return
	}
	if row, ok := item.(*TaskRow); ok {
		row.UpdateTask(task)
	}
}

// onStopTask cancels a running request
func (ui *RootUI) onStopTask(taskID string) {
	if ui.executor.Cancel(taskID) {
		ui.statusLabel.SetText(ui.localization.GetText(KeyStoppingDownload))
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		ui.notifier.Error(ui.localization.GetText(KeyErrorOpeningFile), err.Error())
	}
}

// onOpenFile handles opening a produced file with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		ui.notifier.Error(ui.localization.GetText(KeyErrorOpeningFile), err.Error())
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.tools, ui.localization, ui.window).Show()
}

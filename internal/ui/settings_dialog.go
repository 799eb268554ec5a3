package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/engine"
)

// SettingsDialog edits the interface preferences and the tool config file
type SettingsDialog struct {
	settings     *config.Settings
	tools        *config.Tools
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog

	engineSelect   *widget.Select
	ytdlpEntry     *widget.Entry
	ffmpegEntry    *widget.Entry
	downloaderEnt  *widget.Entry
	prefixEntry    *widget.Entry
	langsEntry     *widget.Entry
	languageSelect *widget.Select
	revealCheck    *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, tools *config.Tools, localization *Localization, window fyne.Window) *SettingsDialog {
	if tools == nil {
		tools = config.DefaultTools()
	}
	sd := &SettingsDialog{
		settings:     settings,
		tools:        tools,
		localization: localization,
		window:       window,
	}
	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.engineSelect = widget.NewSelect([]string{engine.KindYTDLP, engine.KindNative}, nil)
	sd.ytdlpEntry = widget.NewEntry()
	sd.ffmpegEntry = widget.NewEntry()
	sd.downloaderEnt = widget.NewEntry()
	sd.downloaderEnt.SetPlaceHolder(config.DefaultExternalDownloader)
	sd.prefixEntry = widget.NewEntry()
	sd.langsEntry = widget.NewEntry()
	sd.langsEntry.SetPlaceHolder("en")

	languageOptions := make([]string, 0, len(sd.settings.GetLanguageOptions()))
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.revealCheck = widget.NewCheck(t(KeyRevealOnSuccess), nil)

	form := widget.NewForm(
		widget.NewFormItem(t(KeyEngine), sd.engineSelect),
		widget.NewFormItem(t(KeyYTDLPPath), sd.ytdlpEntry),
		widget.NewFormItem(t(KeyFFmpegPath), sd.ffmpegEntry),
		widget.NewFormItem(t(KeyExternalDL), sd.downloaderEnt),
		widget.NewFormItem(t(KeyOutputPrefix), sd.prefixEntry),
		widget.NewFormItem(t(KeySubtitleLangs), sd.langsEntry),
		widget.NewFormItem(t(KeyLanguage), sd.languageSelect),
	)

	content := container.NewVBox(
		form,
		sd.revealCheck,
		widget.NewSeparator(),
		widget.NewLabel(t(KeyRestartRequired)),
	)

	sd.dialog = dialog.NewCustomConfirm(t(KeySettings), t(KeySave), t(KeyCancel), content, sd.onSave, sd.window)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.engineSelect.SetSelected(sd.tools.Engine)
	sd.ytdlpEntry.SetText(sd.tools.YTDLPPath)
	sd.ffmpegEntry.SetText(sd.tools.FFmpegPath)
	sd.downloaderEnt.SetText(sd.tools.ExternalDownloader)
	sd.prefixEntry.SetText(sd.tools.OutputPrefix)
	sd.langsEntry.SetText(strings.Join(sd.tools.SubtitleLangs, ", "))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnSuccess())
}

// apply copies the form into the tool config and preferences
func (sd *SettingsDialog) apply() {
	if sd.engineSelect.Selected != "" {
		sd.tools.Engine = sd.engineSelect.Selected
	}
	if v := strings.TrimSpace(sd.ytdlpEntry.Text); v != "" {
		sd.tools.YTDLPPath = v
	}
	if v := strings.TrimSpace(sd.ffmpegEntry.Text); v != "" {
		sd.tools.FFmpegPath = v
	}
	sd.tools.ExternalDownloader = strings.TrimSpace(sd.downloaderEnt.Text)
	if v := strings.TrimSpace(sd.prefixEntry.Text); v != "" {
		sd.tools.OutputPrefix = v
	}
	var langs []string
	for _, l := range strings.Split(sd.langsEntry.Text, ",") {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	if len(langs) > 0 {
		sd.tools.SubtitleLangs = langs
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	sd.settings.SetRevealOnSuccess(sd.revealCheck.Checked)
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	if err := sd.tools.Save(sd.settings.GetToolsConfigPath()); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved)+"\n"+sd.tools.Path(), sd.window)
}

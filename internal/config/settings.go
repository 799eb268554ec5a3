package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir     = "download_directory"
	KeyResolution      = "resolution"
	KeyFullVideo       = "full_video"
	KeyTranscript      = "download_transcript"
	KeyAudioOnly       = "audio_only"
	KeyLanguage        = "app_language"
	KeyRevealOnSuccess = "reveal_on_success"
	KeyToolsConfig     = "tools_config_path"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultRevealOnSuccess = false
	FallbackDownloadDir    = "downloads"
)

// Settings manages the form state remembered between runs
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(".", FallbackDownloadDir)
		}
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetResolution returns the last selected resolution
func (s *Settings) GetResolution() model.Resolution {
	r, err := model.ParseResolution(s.app.Preferences().String(KeyResolution))
	if err != nil {
		return model.DefaultResolution
	}
	return r
}

// SetResolution stores the selected resolution
func (s *Settings) SetResolution(r model.Resolution) {
	s.app.Preferences().SetString(KeyResolution, string(r))
}

// GetFullVideo returns the full video toggle
func (s *Settings) GetFullVideo() bool {
	return s.app.Preferences().Bool(KeyFullVideo)
}

// SetFullVideo stores the full video toggle
func (s *Settings) SetFullVideo(v bool) {
	s.app.Preferences().SetBool(KeyFullVideo, v)
}

// GetTranscript returns the transcript toggle
func (s *Settings) GetTranscript() bool {
	return s.app.Preferences().Bool(KeyTranscript)
}

// SetTranscript stores the transcript toggle
func (s *Settings) SetTranscript(v bool) {
	s.app.Preferences().SetBool(KeyTranscript, v)
}

// GetAudioOnly returns the audio-only toggle
func (s *Settings) GetAudioOnly() bool {
	return s.app.Preferences().Bool(KeyAudioOnly)
}

// SetAudioOnly stores the audio-only toggle
func (s *Settings) SetAudioOnly(v bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, v)
}

// GetRevealOnSuccess returns whether to open the folder after a download
func (s *Settings) GetRevealOnSuccess() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealOnSuccess, DefaultRevealOnSuccess)
}

// SetRevealOnSuccess sets whether to open the folder after a download
func (s *Settings) SetRevealOnSuccess(v bool) {
	s.app.Preferences().SetBool(KeyRevealOnSuccess, v)
}

// GetToolsConfigPath returns the tool config file path, empty for the default location
func (s *Settings) GetToolsConfigPath() string {
	return s.app.Preferences().String(KeyToolsConfig)
}

// SetToolsConfigPath stores the tool config file path
func (s *Settings) SetToolsConfigPath(path string) {
	s.app.Preferences().SetString(KeyToolsConfig, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Apply copies the remembered form state onto req.
func (s *Settings) Apply(req *model.ClipRequest) {
	req.Folder = s.GetDownloadDirectory()
	req.Resolution = s.GetResolution()
	req.FullVideo = s.GetFullVideo()
	req.Transcript = s.GetTranscript()
	req.AudioOnly = s.GetAudioOnly()
}

// Remember stores the form state of req for the next run.
func (s *Settings) Remember(req model.ClipRequest) {
	if req.Folder != "" {
		s.SetDownloadDirectory(req.Folder)
	}
	if req.Resolution != "" {
		s.SetResolution(req.Resolution)
	}
	s.SetFullVideo(req.FullVideo)
	s.SetTranscript(req.Transcript)
	s.SetAudioOnly(req.AudioOnly)
}

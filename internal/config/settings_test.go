package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-clipper/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestResolution(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if r := settings.GetResolution(); r != model.DefaultResolution {
		t.Errorf("Expected default resolution %s, got %s", model.DefaultResolution, r)
	}

	settings.SetResolution(model.Resolution1080p)
	if r := settings.GetResolution(); r != model.Resolution1080p {
		t.Errorf("Expected resolution 1080p, got %s", r)
	}

	// Unknown stored values fall back to the default
	app.Preferences().SetString(KeyResolution, "4k")
	if r := settings.GetResolution(); r != model.DefaultResolution {
		t.Errorf("Expected fallback resolution %s, got %s", model.DefaultResolution, r)
	}
}

func TestToggles(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetFullVideo() || settings.GetTranscript() || settings.GetAudioOnly() {
		t.Error("Toggles should default to off")
	}

	settings.SetFullVideo(true)
	settings.SetTranscript(true)
	settings.SetAudioOnly(true)

	if !settings.GetFullVideo() || !settings.GetTranscript() || !settings.GetAudioOnly() {
		t.Error("Toggles should be stored")
	}
}

func TestRememberAndApply(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	settings.Remember(model.ClipRequest{
		URL:        "https://youtu.be/x",
		Folder:     "/clips",
		Resolution: model.Resolution480p,
		Transcript: true,
	})

	var req model.ClipRequest
	settings.Apply(&req)

	if req.Folder != "/clips" {
		t.Errorf("Expected folder /clips, got %s", req.Folder)
	}
	if req.Resolution != model.Resolution480p {
		t.Errorf("Expected resolution 480p, got %s", req.Resolution)
	}
	if !req.Transcript || req.FullVideo || req.AudioOnly {
		t.Errorf("Unexpected toggles: %+v", req)
	}
	if req.URL != "" {
		t.Error("URL must not be remembered")
	}
}

func TestRevealOnSuccess(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetRevealOnSuccess() != DefaultRevealOnSuccess {
		t.Error("Expected default reveal setting")
	}
	settings.SetRevealOnSuccess(true)
	if !settings.GetRevealOnSuccess() {
		t.Error("Expected reveal setting to be stored")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

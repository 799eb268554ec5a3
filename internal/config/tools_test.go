package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-clipper/internal/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ToolsFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTools_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	tools, err := LoadTools(path)
	require.NoError(t, err)

	want := DefaultTools()
	want.path = path
	assert.Equal(t, want, tools)
}

func TestLoadTools_Overlay(t *testing.T) {
	path := writeConfig(t, `
engine: Native
ffmpeg_path: C:\tools\ffmpeg.exe
external_downloader: ""
subtitle_langs: [" de ", "", "en"]
`)

	tools, err := LoadTools(path)
	require.NoError(t, err)

	assert.Equal(t, engine.KindNative, tools.Engine)
	assert.Equal(t, "C:/tools/ffmpeg.exe", tools.FFmpegPath)
	assert.Equal(t, DefaultYTDLPPath, tools.YTDLPPath)
	assert.Empty(t, tools.ExternalDownloader)
	assert.Equal(t, []string{"de", "en"}, tools.SubtitleLangs)
	assert.Equal(t, DefaultOutputPrefix, tools.OutputPrefix)
	assert.Equal(t, path, tools.Path())
}

func TestLoadTools_UnknownEngine(t *testing.T) {
	_, err := LoadTools(writeConfig(t, "engine: vlc\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown engine "vlc"`)
}

func TestLoadTools_Malformed(t *testing.T) {
	_, err := LoadTools(writeConfig(t, "engine: [\n"))
	require.Error(t, err)
}

func TestTools_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ToolsFileName)
	tools := DefaultTools()
	tools.OutputPrefix = "clip"

	require.NoError(t, tools.Save(path))

	loaded, err := LoadTools(path)
	require.NoError(t, err)
	assert.Equal(t, "clip", loaded.OutputPrefix)
}

func TestTools_EngineOptions(t *testing.T) {
	opts := DefaultTools().EngineOptions()
	assert.Equal(t, engine.KindYTDLP, opts.Kind)
	assert.Equal(t, DefaultYTDLPPath, opts.Executable)
	assert.Equal(t, "aria2c", opts.ExternalDownloader)
	assert.Equal(t, []string{"-x", "16", "-s", "16", "-k", "1M"}, opts.DownloaderArgs)
}

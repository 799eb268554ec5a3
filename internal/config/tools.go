package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-clipper/internal/engine"
)

// ToolsFileName is the tool config file looked up in the user config dir.
const ToolsFileName = "yt-clipper.yaml"

// Tool defaults
const (
	DefaultEngine             = engine.KindYTDLP
	DefaultYTDLPPath          = "yt-dlp"
	DefaultFFmpegPath         = "ffmpeg"
	DefaultExternalDownloader = "aria2c"
	DefaultOutputPrefix       = "output"
)

// Tools configures the external programs the pipeline drives.
type Tools struct {
	Engine             string   `yaml:"engine"`
	YTDLPPath          string   `yaml:"ytdlp_path"`
	FFmpegPath         string   `yaml:"ffmpeg_path"`
	ExternalDownloader string   `yaml:"external_downloader"`
	DownloaderArgs     []string `yaml:"downloader_args"`
	OutputPrefix       string   `yaml:"output_prefix"`
	SubtitleLangs      []string `yaml:"subtitle_langs"`
	Verbose            bool     `yaml:"verbose"`

	path string
}

// DefaultTools returns the built-in tool configuration.
func DefaultTools() *Tools {
	return &Tools{
		Engine:             DefaultEngine,
		YTDLPPath:          DefaultYTDLPPath,
		FFmpegPath:         DefaultFFmpegPath,
		ExternalDownloader: DefaultExternalDownloader,
		DownloaderArgs:     []string{"-x", "16", "-s", "16", "-k", "1M"},
		OutputPrefix:       DefaultOutputPrefix,
		SubtitleLangs:      []string{"en"},
	}
}

// DefaultToolsPath returns <user config dir>/yt-clipper/yt-clipper.yaml.
func DefaultToolsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ToolsFileName
	}
	return filepath.Join(dir, "yt-clipper", ToolsFileName)
}

// LoadTools reads path over the defaults. A missing file yields the defaults.
func LoadTools(path string) (*Tools, error) {
	if path == "" {
		path = DefaultToolsPath()
	}
	t := DefaultTools()
	t.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tool config %s: %w", path, err)
	}

	// Windows paths written with backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tool config %s: %w", path, err)
	}
	if err := t.normalize(); err != nil {
		return nil, fmt.Errorf("tool config %s: %w", path, err)
	}
	return t, nil
}

// Save writes the configuration back to the file it was loaded from, or path.
func (t *Tools) Save(path string) error {
	if path == "" {
		path = t.path
	}
	if path == "" {
		path = DefaultToolsPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode tool config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write tool config %s: %w", path, err)
	}
	t.path = path
	return nil
}

// Path returns the file the configuration was loaded from.
func (t *Tools) Path() string {
	return t.path
}

// EngineOptions maps the configuration onto engine.Options.
func (t *Tools) EngineOptions() engine.Options {
	return engine.Options{
		Kind:               t.Engine,
		Executable:         t.YTDLPPath,
		ExternalDownloader: t.ExternalDownloader,
		DownloaderArgs:     t.DownloaderArgs,
		Verbose:            t.Verbose,
	}
}

func (t *Tools) normalize() error {
	t.Engine = strings.ToLower(strings.TrimSpace(t.Engine))
	switch t.Engine {
	case "":
		t.Engine = DefaultEngine
	case engine.KindYTDLP, engine.KindNative:
	default:
		return fmt.Errorf("unknown engine %q", t.Engine)
	}

	t.YTDLPPath = strings.TrimSpace(t.YTDLPPath)
	if t.YTDLPPath == "" {
		t.YTDLPPath = DefaultYTDLPPath
	}
	t.FFmpegPath = strings.TrimSpace(t.FFmpegPath)
	if t.FFmpegPath == "" {
		t.FFmpegPath = DefaultFFmpegPath
	}
	t.ExternalDownloader = strings.TrimSpace(t.ExternalDownloader)
	t.OutputPrefix = strings.TrimSpace(t.OutputPrefix)
	if t.OutputPrefix == "" {
		t.OutputPrefix = DefaultOutputPrefix
	}

	langs := t.SubtitleLangs[:0]
	for _, l := range t.SubtitleLangs {
		if l = strings.TrimSpace(l); l != "" {
			langs = append(langs, l)
		}
	}
	t.SubtitleLangs = langs
	if len(t.SubtitleLangs) == 0 {
		t.SubtitleLangs = []string{"en"}
	}
	return nil
}

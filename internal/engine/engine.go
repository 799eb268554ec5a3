// Package engine adapts media extraction backends behind a single interface.
// The yt-dlp backend drives the yt-dlp executable through go-ytdlp; the native
// backend downloads progressive YouTube streams in-process.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Engine kinds accepted by New.
const (
	KindYTDLP  = "ytdlp"
	KindNative = "native"
)

// ErrUnsupported is returned when a backend cannot serve a request mode.
var ErrUnsupported = errors.New("operation not supported by engine")

// Capabilities describes what a backend does on its own.
type Capabilities struct {
	Mux          bool // merges separate video and audio streams
	ExtractAudio bool // converts to an audio-only file
	Subtitles    bool // writes caption files
}

// FetchOptions configures one media download.
type FetchOptions struct {
	URL         string
	OutputBase  string // absolute path without extension
	Height      int
	AudioOnly   bool
	AudioFormat string

	// OnSegmentFinished is called with the segment path each time the
	// backend finishes writing a stream.
	OnSegmentFinished func(path string)
}

// SubtitleOptions configures a caption-only fetch.
type SubtitleOptions struct {
	URL        string
	OutputBase string
	Langs      []string
	Format     string
}

// Result is the subset of extraction metadata the pipeline consumes.
type Result struct {
	ID    string
	Title string
	Files []string
}

// Engine resolves a URL to media on disk.
type Engine interface {
	Name() string
	Capabilities() Capabilities
	Fetch(ctx context.Context, opts FetchOptions) (*Result, error)
	FetchSubtitles(ctx context.Context, opts SubtitleOptions) (*Result, error)
}

// Options selects and configures a backend.
type Options struct {
	Kind               string
	Executable         string
	ExternalDownloader string
	DownloaderArgs     []string
	Verbose            bool
}

// New builds the backend named by opts.Kind; empty means yt-dlp.
func New(opts Options) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Kind)) {
	case "", KindYTDLP:
		return NewYTDLP(opts), nil
	case KindNative:
		return NewNative(), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", opts.Kind)
	}
}

// FormatSelector returns the yt-dlp selector for a height cap or audio mode.
func FormatSelector(height int, audioOnly bool) string {
	if audioOnly {
		return "bestaudio/best"
	}
	if height <= 0 {
		return "bestvideo+bestaudio/best"
	}
	return fmt.Sprintf("bestvideo[height<=%d]+bestaudio/best[height<=%d]", height, height)
}

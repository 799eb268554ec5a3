// Package transcript fetches caption files through the extraction engine and
// converts them to plain-text transcripts. It is best-effort: every failure
// is logged and reported as "no transcript".
package transcript

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ytget/yt-clipper/internal/engine"
	"github.com/ytget/yt-clipper/internal/platform"
)

// Transcript constants
const (
	CaptionExt     = ".vtt"
	TranscriptExt  = "txt"
	TempBasePrefix = ".transcript-"
	DefaultPrefix  = "output"
	DefaultTitle   = "transcript"
)

// DefaultLangs are the caption languages requested when none are configured.
var DefaultLangs = []string{"en"}

// Fetcher defines the interface for the transcript service.
type Fetcher interface {
	FetchTranscript(ctx context.Context, url, folder, prefix string) (string, bool)
}

// Service converts engine captions to text files.
type Service struct {
	engine engine.Engine
	langs  []string
}

// NewService creates a transcript service; empty langs means DefaultLangs.
func NewService(eng engine.Engine, langs []string) *Service {
	if len(langs) == 0 {
		langs = DefaultLangs
	}
	return &Service{engine: eng, langs: langs}
}

// FetchTranscript writes <folder>/<prefix>_<title>.txt and returns its path.
// The boolean is false when no transcript is available for any reason.
func (s *Service) FetchTranscript(ctx context.Context, url, folder, prefix string) (string, bool) {
	path, err := s.fetch(ctx, url, folder, prefix)
	if err != nil {
		log.Printf("Error downloading transcript: %v", err)
		return "", false
	}
	if path == "" {
		log.Printf("No transcript available for %s", url)
		return "", false
	}
	log.Printf("Transcript saved as %s", path)
	return path, true
}

func (s *Service) fetch(ctx context.Context, url, folder, prefix string) (string, error) {
	if !s.engine.Capabilities().Subtitles {
		return "", fmt.Errorf("engine %s: %w", s.engine.Name(), engine.ErrUnsupported)
	}

	base := TempBasePrefix + uuid.NewString()
	defer platform.RemoveMatching(folder, base)

	res, err := s.engine.FetchSubtitles(ctx, engine.SubtitleOptions{
		URL:        url,
		OutputBase: filepath.Join(folder, base),
		Langs:      s.langs,
		Format:     strings.TrimPrefix(CaptionExt, "."),
	})
	if err != nil {
		return "", err
	}

	caption, err := findCaption(folder, base)
	if err != nil || caption == "" {
		return "", err
	}

	raw, err := os.ReadFile(caption)
	if err != nil {
		return "", fmt.Errorf("read captions: %w", err)
	}
	text := CleanVTT(string(raw))
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	if prefix == "" {
		prefix = DefaultPrefix
	}
	title := res.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	out := filepath.Join(folder, fmt.Sprintf("%s_%s.%s", prefix, platform.SanitizeFilename(title), TranscriptExt))
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	if err := os.Remove(caption); err != nil {
		log.Printf("Failed to remove caption file %s: %v", caption, err)
	}
	return out, nil
}

// findCaption returns the first caption file in folder that belongs to base,
// or "" when the engine wrote none.
func findCaption(folder, base string) (string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", folder, err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, base) && strings.HasSuffix(name, CaptionExt) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return filepath.Join(folder, names[0]), nil
}

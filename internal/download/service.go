package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ytget/yt-clipper/internal/engine"
	"github.com/ytget/yt-clipper/internal/errs"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
	"github.com/ytget/yt-clipper/internal/trim"
)

// Naming constants
const (
	DefaultPrefix  = "output"
	TempBasePrefix = ".clip-"
	DefaultTitle   = "video"
	VideoExt       = "mp4"
	AudioExt       = "mp3"
)

// Job describes one media fetch.
type Job struct {
	URL        string
	Trim       *model.TrimWindow // nil keeps the full media
	Folder     string
	Prefix     string // final name prefix, DefaultPrefix when empty
	TempBase   string // per-request temporary base name, generated when empty
	Resolution model.Resolution
	AudioOnly  bool

	// OnStatus reports pipeline stage changes.
	OnStatus func(model.TaskStatus)
}

// Outcome is the result of a successful fetch.
type Outcome struct {
	Path  string
	Title string
}

// Service handles download operations
type Service struct {
	engine     engine.Engine
	transcoder trim.Transcoder
}

// NewService creates a new download service
func NewService(eng engine.Engine, transcoder trim.Transcoder) *Service {
	return &Service{
		engine:     eng,
		transcoder: transcoder,
	}
}

// NewTempBase returns a unique hidden base name for a request.
func NewTempBase() string {
	id, err := uuid.NewV7()
	if err != nil {
		return TempBasePrefix + uuid.NewString()
	}
	return TempBasePrefix + id.String()
}

// FinalName returns <prefix>_<sanitized title>.<ext>.
func FinalName(prefix, title, ext string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return fmt.Sprintf("%s_%s.%s", prefix, platform.SanitizeFilename(title), ext)
}

// Fetch downloads job.URL into job.Folder and returns the final artifact path.
func (s *Service) Fetch(ctx context.Context, job Job) (*Outcome, error) {
	if strings.TrimSpace(job.URL) == "" {
		return nil, fmt.Errorf("%w: url is empty", errs.ErrInvalidInput)
	}
	if job.Trim != nil && !job.Trim.Valid() {
		return nil, fmt.Errorf("%w: invalid trim window %d-%d", errs.ErrInvalidInput, job.Trim.Start, job.Trim.End)
	}
	if err := platform.CreateDirectoryIfNotExists(job.Folder); err != nil {
		return nil, fmt.Errorf("prepare output folder: %w", err)
	}
	if job.TempBase == "" {
		job.TempBase = NewTempBase()
	}

	log.Printf("Starting download process for URL: %s (engine=%s)", job.URL, s.engine.Name())
	s.notify(job, model.TaskStatusDownloading)

	res, err := s.engine.Fetch(ctx, engine.FetchOptions{
		URL:               job.URL,
		OutputBase:        filepath.Join(job.Folder, job.TempBase),
		Height:            job.Resolution.Height(),
		AudioOnly:         job.AudioOnly,
		AudioFormat:       AudioExt,
		OnSegmentFinished: platform.RemoveSidecars,
	})
	if err != nil {
		s.cleanup(job)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Printf("Download error for %s: %v", job.URL, err)
		return nil, fmt.Errorf("%w: %w", errs.ErrExternalFetch, err)
	}

	reported := ""
	if len(res.Files) > 0 {
		reported = res.Files[len(res.Files)-1]
	}
	tmp, err := platform.FindArtifact(job.Folder, job.TempBase, reported)
	if err != nil {
		s.cleanup(job)
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no media produced for %s", errs.ErrFileNotFound, job.URL)
		}
		return nil, err
	}
	log.Printf("Download completed. Temporary file: %s", tmp)

	out, err := s.finish(ctx, job, tmp, res.Title)
	s.cleanup(job)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	log.Printf("Saved as %s", out)
	return &Outcome{Path: out, Title: res.Title}, nil
}

// finish turns the temporary download into the final artifact.
func (s *Service) finish(ctx context.Context, job Job, tmp, title string) (string, error) {
	caps := s.engine.Capabilities()

	if job.AudioOnly {
		final := filepath.Join(job.Folder, FinalName(job.Prefix, title, AudioExt))
		if job.Trim != nil {
			log.Printf("Trim window ignored for audio-only request %s", job.URL)
		}
		if caps.ExtractAudio {
			return final, rename(tmp, final)
		}
		s.notify(job, model.TaskStatusTrimming)
		if err := s.transcoder.ExtractAudio(ctx, tmp, final); err != nil {
			return "", fmt.Errorf("extract audio: %w", err)
		}
		return final, nil
	}

	final := filepath.Join(job.Folder, FinalName(job.Prefix, title, VideoExt))
	if job.Trim == nil {
		return final, rename(tmp, final)
	}

	log.Printf("Preparing to extract clip %d-%d (%ds) to: %s", job.Trim.Start, job.Trim.End, job.Trim.Duration(), final)
	s.notify(job, model.TaskStatusTrimming)
	if err := s.transcoder.Trim(ctx, tmp, *job.Trim, final); err != nil {
		return "", fmt.Errorf("trim clip: %w", err)
	}
	return final, nil
}

// cleanup removes every file that still carries the request's temporary base.
func (s *Service) cleanup(job Job) {
	if n := platform.RemoveMatching(job.Folder, job.TempBase); n > 0 {
		log.Printf("Removed %d temporary file(s) for %s", n, job.TempBase)
	}
}

func (s *Service) notify(job Job, status model.TaskStatus) {
	if job.OnStatus != nil {
		job.OnStatus(status)
	}
}

func rename(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(from), err)
	}
	return nil
}

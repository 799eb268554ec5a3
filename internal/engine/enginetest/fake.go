// Package enginetest provides an in-memory engine.Engine for tests.
package enginetest

import (
	"context"
	"os"
	"sync"

	"github.com/ytget/yt-clipper/internal/engine"
)

// Fake writes placeholder files where a real backend would put media.
type Fake struct {
	mu sync.Mutex

	Title   string
	Ext     string // extension of the produced media, "mp4" when empty
	Caps    engine.Capabilities
	Err     error
	NoFile  bool   // report success without producing a file
	Sidecar bool   // leave a .part file and report the finished segment
	VTT     string // caption body written by FetchSubtitles; empty writes nothing
	SubErr  error

	Fetches   []engine.FetchOptions
	Subtitles []engine.SubtitleOptions
}

// New returns a Fake that behaves like the yt-dlp backend.
func New(title string) *Fake {
	return &Fake{
		Title: title,
		Caps:  engine.Capabilities{Mux: true, ExtractAudio: true, Subtitles: true},
	}
}

// Name implements engine.Engine.
func (f *Fake) Name() string { return "fake" }

// Capabilities implements engine.Engine.
func (f *Fake) Capabilities() engine.Capabilities { return f.Caps }

// Fetch implements engine.Engine.
func (f *Fake) Fetch(ctx context.Context, opts engine.FetchOptions) (*engine.Result, error) {
	f.mu.Lock()
	f.Fetches = append(f.Fetches, opts)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		// a failed download may still leave a partial stream behind
		_ = os.WriteFile(opts.OutputBase+".mp4.part", []byte("partial"), 0644)
		return nil, f.Err
	}
	if f.NoFile {
		return &engine.Result{Title: f.Title}, nil
	}

	ext := f.Ext
	if ext == "" {
		ext = "mp4"
		if opts.AudioOnly && f.Caps.ExtractAudio {
			ext = "mp3"
		}
	}
	path := opts.OutputBase + "." + ext
	if err := os.WriteFile(path, []byte("media"), 0644); err != nil {
		return nil, err
	}
	if f.Sidecar {
		_ = os.WriteFile(path+".part", []byte("part"), 0644)
		if opts.OnSegmentFinished != nil {
			opts.OnSegmentFinished(path)
		}
	}
	return &engine.Result{Title: f.Title, Files: []string{path}}, nil
}

// FetchSubtitles implements engine.Engine.
func (f *Fake) FetchSubtitles(ctx context.Context, opts engine.SubtitleOptions) (*engine.Result, error) {
	f.mu.Lock()
	f.Subtitles = append(f.Subtitles, opts)
	f.mu.Unlock()

	if f.SubErr != nil {
		return nil, f.SubErr
	}
	res := &engine.Result{Title: f.Title}
	if f.VTT == "" {
		return res, nil
	}
	path := opts.OutputBase + ".en.vtt"
	if err := os.WriteFile(path, []byte(f.VTT), 0644); err != nil {
		return nil, err
	}
	res.Files = append(res.Files, path)
	return res, nil
}

// FetchCount returns the number of Fetch calls.
func (f *Fake) FetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Fetches)
}

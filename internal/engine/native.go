package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	ytdlperrs "github.com/ytget/ytdlp/errs"
	"github.com/ytget/ytdlp/v2"
)

// NativeExt is the container the native backend writes; it only selects
// progressive streams, which YouTube serves as mp4.
const NativeExt = "mp4"

// Native downloads progressive YouTube streams without external tools.
type Native struct {
	newDownloader func() *ytdlp.Downloader
}

// NewNative creates the in-process YouTube backend.
func NewNative() *Native {
	return &Native{newDownloader: ytdlp.New}
}

// Name implements Engine.
func (n *Native) Name() string { return KindNative }

// Capabilities implements Engine.
func (n *Native) Capabilities() Capabilities {
	return Capabilities{}
}

// NativeSelector maps a height cap to the native format selector.
func NativeSelector(height int) string {
	if height <= 0 {
		return "best"
	}
	return fmt.Sprintf("height<=%d", height)
}

// Fetch implements Engine. Audio-only requests receive the progressive
// stream; the caller extracts the audio track.
func (n *Native) Fetch(ctx context.Context, opts FetchOptions) (*Result, error) {
	output := opts.OutputBase + "." + NativeExt

	var once sync.Once
	dl := n.newDownloader().
		WithFormat(NativeSelector(opts.Height), NativeExt).
		WithOutputPath(output).
		WithProgress(func(p ytdlp.Progress) {
			if p.Percent >= 100 && opts.OnSegmentFinished != nil {
				once.Do(func() { opts.OnSegmentFinished(output) })
			}
		})

	log.Printf("native: fetching %s (format=%s)", opts.URL, NativeSelector(opts.Height))
	info, err := dl.Download(ctx, opts.URL)
	if err != nil {
		return nil, classifyNative(err)
	}

	res := &Result{Files: []string{output}}
	if info != nil {
		res.ID = info.ID
		res.Title = info.Title
	}
	return res, nil
}

// FetchSubtitles implements Engine.
func (n *Native) FetchSubtitles(ctx context.Context, opts SubtitleOptions) (*Result, error) {
	return nil, fmt.Errorf("native subtitles: %w", ErrUnsupported)
}

// classifyNative adds a readable reason to the library's sentinel errors.
func classifyNative(err error) error {
	reasons := []struct {
		target error
		reason string
	}{
		{ytdlperrs.ErrPrivate, "video is private"},
		{ytdlperrs.ErrAgeRestricted, "video is age restricted"},
		{ytdlperrs.ErrGeoBlocked, "video is not available in this region"},
		{ytdlperrs.ErrRateLimited, "rate limited by the remote service"},
		{ytdlperrs.ErrCipherFailed, "failed to decipher stream URL"},
		{ytdlperrs.ErrVideoUnavailable, "video unavailable"},
	}
	for _, r := range reasons {
		if errors.Is(err, r.target) {
			return fmt.Errorf("native: %s: %w", r.reason, err)
		}
	}
	return fmt.Errorf("native: %w", err)
}

package engine

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
)

// Defaults for the yt-dlp backend.
const (
	DefaultAudioFormat    = "mp3"
	DefaultMergeFormat    = "mp4"
	DefaultSubtitleFormat = "vtt"
	OutputExtTemplate     = ".%(ext)s"
	ProgressInterval      = 500 * time.Millisecond
)

// YTDLP drives the yt-dlp executable.
type YTDLP struct {
	executable         string
	externalDownloader string
	downloaderArgs     []string
	verbose            bool
}

// NewYTDLP creates a yt-dlp backend.
func NewYTDLP(opts Options) *YTDLP {
	return &YTDLP{
		executable:         opts.Executable,
		externalDownloader: opts.ExternalDownloader,
		downloaderArgs:     opts.DownloaderArgs,
		verbose:            opts.Verbose,
	}
}

// Name implements Engine.
func (e *YTDLP) Name() string { return KindYTDLP }

// Capabilities implements Engine.
func (e *YTDLP) Capabilities() Capabilities {
	return Capabilities{Mux: true, ExtractAudio: true, Subtitles: true}
}

// command returns a fresh builder with the flags shared by every invocation.
func (e *YTDLP) command(outputBase string) *ytdlp.Command {
	dl := ytdlp.New().
		NoPlaylist().
		ForceOverwrites().
		DumpJSON().
		NoSimulate().
		Output(outputBase + OutputExtTemplate)
	if e.executable != "" {
		dl.SetExecutable(e.executable)
	}
	if e.verbose {
		dl.Verbose()
	}
	return dl
}

// DownloaderArgsValue renders the --downloader-args value, e.g. "aria2c:-x 16 -s 16 -k 1M".
func (e *YTDLP) DownloaderArgsValue() string {
	if e.externalDownloader == "" || len(e.downloaderArgs) == 0 {
		return ""
	}
	return e.externalDownloader + ":" + strings.Join(e.downloaderArgs, " ")
}

// Fetch implements Engine.
func (e *YTDLP) Fetch(ctx context.Context, opts FetchOptions) (*Result, error) {
	dl := e.buildFetch(opts)

	log.Printf("yt-dlp: fetching %s (format=%s, audio=%v)", opts.URL, FormatSelector(opts.Height, opts.AudioOnly), opts.AudioOnly)
	res, err := dl.Run(ctx, opts.URL)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: %w", err)
	}
	return resultFromYTDLP(res)
}

// buildFetch configures the media download invocation.
func (e *YTDLP) buildFetch(opts FetchOptions) *ytdlp.Command {
	dl := e.command(opts.OutputBase).Format(FormatSelector(opts.Height, opts.AudioOnly))

	if opts.AudioOnly {
		format := opts.AudioFormat
		if format == "" {
			format = DefaultAudioFormat
		}
		dl.ExtractAudio().AudioFormat(format)
	} else {
		dl.MergeOutputFormat(DefaultMergeFormat)
	}

	if e.externalDownloader != "" {
		dl.Downloader(e.externalDownloader)
		if v := e.DownloaderArgsValue(); v != "" {
			dl.DownloaderArgs(v)
		}
	}

	if opts.OnSegmentFinished != nil {
		dl.ProgressFunc(ProgressInterval, func(update ytdlp.ProgressUpdate) {
			if update.Status == ytdlp.ProgressStatusFinished {
				opts.OnSegmentFinished(update.Filename)
			}
		})
	}
	return dl
}

// FetchSubtitles implements Engine.
func (e *YTDLP) FetchSubtitles(ctx context.Context, opts SubtitleOptions) (*Result, error) {
	dl, langs := e.buildSubtitles(opts)

	log.Printf("yt-dlp: fetching %s subtitles for %s", strings.Join(langs, ","), opts.URL)
	res, err := dl.Run(ctx, opts.URL)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp subtitles: %w", err)
	}
	return resultFromYTDLP(res)
}

// buildSubtitles configures a caption-only invocation and reports the
// languages it requests.
func (e *YTDLP) buildSubtitles(opts SubtitleOptions) (*ytdlp.Command, []string) {
	format := opts.Format
	if format == "" {
		format = DefaultSubtitleFormat
	}
	langs := opts.Langs
	if len(langs) == 0 {
		langs = []string{"en"}
	}

	dl := e.command(opts.OutputBase).
		SkipDownload().
		WriteSubs().
		WriteAutoSubs().
		SubLangs(strings.Join(langs, ",")).
		SubFormat(format)
	return dl, langs
}

func resultFromYTDLP(res *ytdlp.Result) (*Result, error) {
	out := &Result{}
	if res == nil {
		return out, nil
	}

	info, err := res.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp: read extracted info: %w", err)
	}
	for _, item := range info {
		if item == nil {
			continue
		}
		if out.Title == "" && item.Title != nil {
			out.Title = *item.Title
		}
		if item.Filename != nil && *item.Filename != "" {
			out.Files = append(out.Files, *item.Filename)
		}
	}
	return out, nil
}

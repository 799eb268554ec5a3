// Command yt-clipper downloads a clip, the full video, its audio track or its
// transcript from the command line, using the same pipeline as the desktop app.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-clipper/internal/app"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

// options holds the command-line flags.
type options struct {
	start         string
	end           string
	full          bool
	transcript    bool
	audio         bool
	resolution    string
	folder        string
	configPath    string
	fromClipboard bool
}

// errReported marks a failure the notifier has already printed.
var errReported = errors.New("reported")

func main() {
	os.Exit(execute(newRootCmd(), os.Stderr))
}

// execute runs cmd and returns the process exit code, printing any error
// not yet shown to the user.
func execute(cmd *cobra.Command, stderr io.Writer) int {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "yt-clipper [url]",
		Short:   "Download a trimmed clip, full video, audio or transcript",
		Version: version,
		Long: `yt-clipper fetches a video with yt-dlp (or the built-in YouTube engine),
optionally cuts it to a time range with ffmpeg and saves the result as
<folder>/output_<title>.mp4, .mp3 or .txt.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.start, "start", "s", "0:00:00", "clip start (hh:mm:ss or mm:ss)")
	f.StringVarP(&opts.end, "end", "e", "0:03:00", "clip end (hh:mm:ss or mm:ss)")
	f.BoolVar(&opts.full, "full", false, "download the full video instead of a clip")
	f.BoolVarP(&opts.transcript, "transcript", "t", false, "also save the transcript as text")
	f.BoolVarP(&opts.audio, "audio", "a", false, "save the audio track as mp3")
	f.StringVarP(&opts.resolution, "resolution", "r", string(model.DefaultResolution), "maximum video height (144p-1080p)")
	f.StringVarP(&opts.folder, "folder", "o", "", "output folder (default: ~/Downloads)")
	f.StringVar(&opts.configPath, "config", "", "tool config file (default: user config dir)")
	f.BoolVar(&opts.fromClipboard, "from-clipboard", false, "read the URL from the clipboard")

	return cmd
}

func run(ctx context.Context, opts *options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	url, err := resolveURL(opts, args)
	if err != nil {
		return err
	}
	req, err := buildRequest(opts, url)
	if err != nil {
		return err
	}

	tools, err := config.LoadTools(opts.configPath)
	if err != nil {
		return err
	}
	executor, err := app.NewFromTools(tools)
	if err != nil {
		return err
	}

	out, err := executor.Execute(ctx, req, consoleNotifier{})
	if err != nil {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	fmt.Println(out.VideoPath)
	if out.TranscriptPath != "" {
		fmt.Println(out.TranscriptPath)
	}
	return nil
}

func resolveURL(opts *options, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}
	if !opts.fromClipboard {
		return "", fmt.Errorf("a video URL is required (or use --from-clipboard)")
	}
	clip, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	clip = strings.TrimSpace(clip)
	if !strings.HasPrefix(clip, "http://") && !strings.HasPrefix(clip, "https://") {
		return "", fmt.Errorf("clipboard does not contain a URL: %q", clip)
	}
	return clip, nil
}

func buildRequest(opts *options, url string) (model.ClipRequest, error) {
	res, err := model.ParseResolution(opts.resolution)
	if err != nil {
		return model.ClipRequest{}, err
	}
	folder := opts.folder
	if folder == "" {
		if folder, err = platform.GetHomeDownloadsDir(); err != nil {
			return model.ClipRequest{}, fmt.Errorf("resolve downloads folder: %w", err)
		}
	}
	return model.ClipRequest{
		URL:        url,
		StartTime:  opts.start,
		EndTime:    opts.end,
		Resolution: res,
		Folder:     folder,
		FullVideo:  opts.full,
		Transcript: opts.transcript,
		AudioOnly:  opts.audio,
	}, nil
}

// consoleNotifier prints notifications to stdout and stderr.
type consoleNotifier struct{}

func (consoleNotifier) Info(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}

func (consoleNotifier) Error(title, message string) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", title, message)
}

package trim

import (
	"bytes"
	"context"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/ytget/yt-clipper/internal/errs"
	"github.com/ytget/yt-clipper/internal/model"
)

// FFmpeg constants for clip settings
const (
	// Video codec settings
	VideoCodec = "libx264"

	// Audio codec settings
	AudioCodec    = "aac"
	MP3Codec      = "libmp3lame"
	MP3Quality    = "2"
	StrictFlag    = "-strict"
	StrictSetting = "experimental"

	// Executable
	FFmpegCommand = "ffmpeg"

	// WaitDelay bounds how long a cancelled run waits for its output pipes.
	WaitDelay = 2 * time.Second
)

// Service handles ffmpeg operations
type Service struct {
	ffmpeg string
	runner Runner
}

// NewService creates a transcoder using the given ffmpeg executable; empty means "ffmpeg" from PATH.
func NewService(ffmpegPath string) *Service {
	if strings.TrimSpace(ffmpegPath) == "" {
		ffmpegPath = FFmpegCommand
	}
	return &Service{ffmpeg: ffmpegPath, runner: ExecRunner{}}
}

// WithRunner replaces the command runner.
func (s *Service) WithRunner(r Runner) *Service {
	s.runner = r
	return s
}

// BuildTrimArgs builds the ffmpeg arguments that cut window out of inputPath
// and re-encode it to H.264/AAC at outputPath.
func BuildTrimArgs(inputPath string, window model.TrimWindow, outputPath string) []string {
	return []string{
		"-y",            // Overwrite output file
		"-i", inputPath, // Input file
		"-ss", strconv.Itoa(window.Start),
		"-to", strconv.Itoa(window.End),
		"-c:v", VideoCodec,
		"-c:a", AudioCodec,
		StrictFlag, StrictSetting,
		outputPath,
	}
}

// BuildAudioArgs builds the ffmpeg arguments that drop the video stream and
// encode the audio track to mp3.
func BuildAudioArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",
		"-i", inputPath,
		"-vn",
		"-c:a", MP3Codec,
		"-q:a", MP3Quality,
		outputPath,
	}
}

// Trim cuts window out of inputPath into outputPath. A failed run removes the
// partial output and returns *errs.CommandError, or the context error when
// ctx ended the run.
func (s *Service) Trim(ctx context.Context, inputPath string, window model.TrimWindow, outputPath string) error {
	return s.run(ctx, BuildTrimArgs(inputPath, window, outputPath), outputPath)
}

// ExtractAudio encodes the audio track of inputPath to mp3 at outputPath.
func (s *Service) ExtractAudio(ctx context.Context, inputPath, outputPath string) error {
	return s.run(ctx, BuildAudioArgs(inputPath, outputPath), outputPath)
}

func (s *Service) run(ctx context.Context, args []string, outputPath string) error {
	log.Printf("Executing FFmpeg command: %s %s", s.ffmpeg, strings.Join(args, " "))

	stdout, stderr, err := s.runner.Run(ctx, s.ffmpeg, args...)
	if stdout != "" {
		log.Printf("FFmpeg output: %s", stdout)
	}
	if err != nil {
		log.Printf("FFmpeg error: %v", err)
		if rmErr := os.Remove(outputPath); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Printf("Failed to remove partial output %s: %v", outputPath, rmErr)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &errs.CommandError{
			Command: s.ffmpeg,
			Args:    args,
			Stdout:  stdout,
			Stderr:  stderr,
			Err:     err,
		}
	}
	return nil
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = WaitDelay
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

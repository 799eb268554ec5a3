package trim

import (
	"context"

	"github.com/ytget/yt-clipper/internal/model"
)

// Runner executes an external command and returns its captured output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
}

// Transcoder defines the interface for the transcoding service.
type Transcoder interface {
	Trim(ctx context.Context, inputPath string, window model.TrimWindow, outputPath string) error
	ExtractAudio(ctx context.Context, inputPath, outputPath string) error
}

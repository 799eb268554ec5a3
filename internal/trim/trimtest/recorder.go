// Package trimtest provides a recording trim.Transcoder for tests.
package trimtest

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/ytget/yt-clipper/internal/errs"
	"github.com/ytget/yt-clipper/internal/model"
)

// Recorder is a trim.Transcoder that records calls and writes placeholder output.
type Recorder struct {
	mu sync.Mutex

	Err error

	// Block makes Trim wait for ctx to end and then fail the way a killed
	// ffmpeg process does. Started, when set, receives one value on entry.
	Block   bool
	Started chan struct{}

	TrimCalls  []TrimCall
	AudioCalls []AudioCall
}

// TrimCall records one Trim invocation.
type TrimCall struct {
	Input  string
	Window model.TrimWindow
	Output string
}

// AudioCall records one ExtractAudio invocation.
type AudioCall struct {
	Input  string
	Output string
}

// Trim implements trim.Transcoder.
func (r *Recorder) Trim(ctx context.Context, inputPath string, window model.TrimWindow, outputPath string) error {
	r.mu.Lock()
	r.TrimCalls = append(r.TrimCalls, TrimCall{Input: inputPath, Window: window, Output: outputPath})
	r.mu.Unlock()
	if r.Block {
		if r.Started != nil {
			r.Started <- struct{}{}
		}
		<-ctx.Done()
		return &errs.CommandError{Command: "ffmpeg", Err: errors.New("signal: killed")}
	}
	return r.write(outputPath)
}

// ExtractAudio implements trim.Transcoder.
func (r *Recorder) ExtractAudio(ctx context.Context, inputPath, outputPath string) error {
	r.mu.Lock()
	r.AudioCalls = append(r.AudioCalls, AudioCall{Input: inputPath, Output: outputPath})
	r.mu.Unlock()
	return r.write(outputPath)
}

func (r *Recorder) write(path string) error {
	if r.Err != nil {
		return r.Err
	}
	return os.WriteFile(path, []byte("encoded"), 0644)
}

package trim

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
	"time"

	"github.com/ytget/yt-clipper/internal/errs"
	"github.com/ytget/yt-clipper/internal/model"
)

type call struct {
	name string
	args []string
}

type fakeRunner struct {
	calls  []call
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	return f.stdout, f.stderr, f.err
}

func TestBuildTrimArgs(t *testing.T) {
	args := BuildTrimArgs("/tmp/in.mp4", model.TrimWindow{Start: 10, End: 70}, "/tmp/out.mp4")

	expected := []string{
		"-y",
		"-i", "/tmp/in.mp4",
		"-ss", "10",
		"-to", "70",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-strict", "experimental",
		"/tmp/out.mp4",
	}
	if !reflect.DeepEqual(args, expected) {
		t.Errorf("BuildTrimArgs() = %v, expected %v", args, expected)
	}
}

func TestBuildAudioArgs(t *testing.T) {
	args := BuildAudioArgs("in.mp4", "out.mp3")

	if args[len(args)-1] != "out.mp3" {
		t.Errorf("Expected output path last, got %v", args)
	}
	found := false
	for _, a := range args {
		if a == "-vn" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected -vn in %v", args)
	}
}

func TestNewService_DefaultExecutable(t *testing.T) {
	if s := NewService(""); s.ffmpeg != FFmpegCommand {
		t.Errorf("Expected default executable %s, got %s", FFmpegCommand, s.ffmpeg)
	}
	if s := NewService("/opt/ffmpeg/bin/ffmpeg"); s.ffmpeg != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Expected configured executable, got %s", s.ffmpeg)
	}
}

func TestTrim_Success(t *testing.T) {
	runner := &fakeRunner{}
	svc := NewService("ffmpeg").WithRunner(runner)

	err := svc.Trim(context.Background(), "in.mp4", model.TrimWindow{Start: 0, End: 180}, "out.mp4")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("Expected exactly one ffmpeg call, got %d", len(runner.calls))
	}
	if runner.calls[0].name != "ffmpeg" {
		t.Errorf("Expected ffmpeg, got %s", runner.calls[0].name)
	}
}

func TestTrim_FailureCarriesOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.mp4")
	if err := os.WriteFile(output, []byte("partial"), 0644); err != nil {
		t.Fatal(err)
	}

	runner := &fakeRunner{
		stdout: "",
		stderr: "in.mp4: No such file or directory",
		err:    errors.New("exit status 1"),
	}
	svc := NewService("ffmpeg").WithRunner(runner)

	err := svc.Trim(context.Background(), "in.mp4", model.TrimWindow{Start: 1, End: 2}, output)
	if !errors.Is(err, errs.ErrCommandFailed) {
		t.Fatalf("Expected ErrCommandFailed, got %v", err)
	}

	var cmdErr *errs.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Expected *errs.CommandError, got %T", err)
	}
	if cmdErr.Stderr != runner.stderr {
		t.Errorf("Expected captured stderr %q, got %q", runner.stderr, cmdErr.Stderr)
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("Expected partial output to be removed")
	}
}

func TestTrim_CancelledReturnsContextError(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.mp4")
	if err := os.WriteFile(output, []byte("partial"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runner := &fakeRunner{err: errors.New("signal: killed")}
	svc := NewService("ffmpeg").WithRunner(runner)

	err := svc.Trim(ctx, "in.mp4", model.TrimWindow{Start: 1, End: 2}, output)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if errors.Is(err, errs.ErrCommandFailed) {
		t.Error("Cancelled run must not be reported as a command failure")
	}
	if _, statErr := os.Stat(output); !os.IsNotExist(statErr) {
		t.Error("Expected partial output to be removed")
	}
}

func TestExecRunner_CancelStopsWrapperScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script runner")
	}
	script := filepath.Join(t.TempDir(), "ffmpeg")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nsleep 30\n"), 0755); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	started := time.Now()
	err := NewService(script).Trim(ctx, "in.mp4", model.TrimWindow{Start: 0, End: 1}, filepath.Join(t.TempDir(), "out.mp4"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(started); elapsed > WaitDelay+5*time.Second {
		t.Errorf("Cancelled run took %v", elapsed)
	}
}

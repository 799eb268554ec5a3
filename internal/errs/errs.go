// Package errs defines the error taxonomy shared by the clip pipeline.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput indicates malformed user input such as a bad time string.
	ErrInvalidInput = errors.New("invalid input")
	// ErrExternalFetch indicates that the extraction engine reported a failure.
	ErrExternalFetch = errors.New("download failed")
	// ErrFileNotFound indicates that an expected artifact is missing after a fetch.
	ErrFileNotFound = errors.New("file not found")
	// ErrCommandFailed indicates that an external command exited with a non-zero status.
	ErrCommandFailed = errors.New("command failed")
	// ErrBusy indicates that an identical request is already in flight.
	ErrBusy = errors.New("already in progress")
)

// Kind labels used for logging and diagnostics.
const (
	KindInvalidInput   = "InvalidInput"
	KindExternalFetch  = "ExternalFetchFailure"
	KindFileNotFound   = "FileNotFound"
	KindCommandFailure = "CommandFailure"
	KindUnexpected     = "Unexpected"
)

// CommandError carries the captured output of a failed external command.
type CommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	if tail := lastLine(e.Stderr); tail != "" {
		msg += ": " + tail
	}
	return msg
}

// Unwrap returns the underlying process error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports CommandError as ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// Kind maps err onto the taxonomy label.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrBusy):
		return KindInvalidInput
	case errors.Is(err, ErrCommandFailed):
		return KindCommandFailure
	case errors.Is(err, ErrFileNotFound):
		return KindFileNotFound
	case errors.Is(err, ErrExternalFetch):
		return KindExternalFetch
	default:
		return KindUnexpected
	}
}

// lastLine returns the last non-empty line of s; ffmpeg prints the cause last.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			return l
		}
	}
	return ""
}

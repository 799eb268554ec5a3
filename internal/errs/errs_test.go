package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"invalid input", fmt.Errorf("parse %q: %w", "x", ErrInvalidInput), KindInvalidInput},
		{"busy", ErrBusy, KindInvalidInput},
		{"fetch", fmt.Errorf("%w: boom", ErrExternalFetch), KindExternalFetch},
		{"not found", fmt.Errorf("locate: %w", ErrFileNotFound), KindFileNotFound},
		{"command", &CommandError{Command: "ffmpeg", Err: errors.New("exit status 1")}, KindCommandFailure},
		{"other", errors.New("disk on fire"), KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.expected {
				t.Errorf("Kind() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestCommandError(t *testing.T) {
	exit := errors.New("exit status 1")
	err := fmt.Errorf("trim: %w", &CommandError{
		Command: "ffmpeg",
		Stderr:  "frame=0\nInvalid duration specification\n\n",
		Err:     exit,
	})

	if !errors.Is(err, ErrCommandFailed) {
		t.Error("CommandError should match ErrCommandFailed")
	}
	if !errors.Is(err, exit) {
		t.Error("CommandError should unwrap to the process error")
	}

	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatal("expected errors.As to find CommandError")
	}
	expected := "ffmpeg failed: exit status 1: Invalid duration specification"
	if cmdErr.Error() != expected {
		t.Errorf("Error() = %q, expected %q", cmdErr.Error(), expected)
	}
}

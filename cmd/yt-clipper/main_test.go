package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-clipper/internal/model"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--full", "-r", "1080", "-o", "/clips", "--transcript"}))

	for name, want := range map[string]string{
		"full":       "true",
		"resolution": "1080",
		"folder":     "/clips",
		"transcript": "true",
		"start":      "0:00:00",
		"end":        "0:03:00",
	} {
		assert.Equal(t, want, cmd.Flags().Lookup(name).Value.String(), name)
	}
}

func TestBuildRequest(t *testing.T) {
	opts := &options{start: "1:30", end: "2:00", resolution: "480", folder: "/clips", audio: true}

	req, err := buildRequest(opts, "https://youtu.be/x")
	require.NoError(t, err)
	assert.Equal(t, model.ClipRequest{
		URL:        "https://youtu.be/x",
		StartTime:  "1:30",
		EndTime:    "2:00",
		Resolution: model.Resolution480p,
		Folder:     "/clips",
		AudioOnly:  true,
	}, req)

	opts.resolution = "4k"
	_, err = buildRequest(opts, "https://youtu.be/x")
	require.Error(t, err)
}

func TestResolveURL(t *testing.T) {
	url, err := resolveURL(&options{}, []string{" https://youtu.be/x "})
	require.NoError(t, err)
	assert.Equal(t, "https://youtu.be/x", url)

	_, err = resolveURL(&options{}, nil)
	require.Error(t, err)
}

func TestExecute_PrintsInputErrors(t *testing.T) {
	badConfig := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(badConfig, []byte("engine: [unterminated"), 0644))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing url", []string{}, "a video URL is required"},
		{"bad resolution", []string{"--resolution", "999p", "https://x"}, `unsupported resolution "999p"`},
		{"malformed config", []string{"--config", badConfig, "-o", t.TempDir(), "https://x"}, "parse tool config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			var stderr bytes.Buffer

			assert.Equal(t, 1, execute(cmd, &stderr))
			assert.Contains(t, stderr.String(), "Error: ")
			assert.Contains(t, stderr.String(), tt.want)
		})
	}
}

func TestExecute_ReportedErrorsNotRepeated(t *testing.T) {
	cmd := newRootCmd()
	cmd.RunE = func(*cobra.Command, []string) error {
		return fmt.Errorf("%w: %w", errReported, errors.New("download failed"))
	}
	cmd.SetArgs([]string{"https://x"})
	var stderr bytes.Buffer

	assert.Equal(t, 1, execute(cmd, &stderr))
	assert.Empty(t, stderr.String())
}

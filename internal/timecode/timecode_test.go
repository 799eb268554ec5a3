package timecode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-clipper/internal/errs"
	"github.com/ytget/yt-clipper/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1:30", 90},
		{"1:02:03", 3723},
		{"0:00:00", 0},
		{"0:03:00", 180},
		{"00:90", 90},
		{" 2:00 ", 120},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"1:2:3:4", "90", "", "a:b", "1:-2", "1::2"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestParseWindow(t *testing.T) {
	w, err := ParseWindow("0:00:10", "1:00")
	require.NoError(t, err)
	assert.Equal(t, model.TrimWindow{Start: 10, End: 60}, w)

	_, err = ParseWindow("1:00", "0:30")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = ParseWindow("1:00", "1:00")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = ParseWindow("x", "1:00")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0:00:00", Format(0))
	assert.Equal(t, "0:03:00", Format(180))
	assert.Equal(t, "1:02:03", Format(3723))
	assert.Equal(t, "0:00:00", Format(-5))
}

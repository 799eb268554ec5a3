// Package timecode converts "hh:mm:ss" and "mm:ss" strings to seconds and back.
package timecode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/yt-clipper/internal/errs"
	"github.com/ytget/yt-clipper/internal/model"
)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// Parse converts "mm:ss" or "hh:mm:ss" to seconds. Components are unsigned
// integers; values of 60 or more are accepted as-is.
func Parse(text string) (int, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")

	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid time component %q in %q", errs.ErrInvalidInput, p, text)
		}
		values[i] = int(v)
	}

	switch len(values) {
	case 2:
		return values[0]*secondsPerMinute + values[1], nil
	case 3:
		return values[0]*secondsPerHour + values[1]*secondsPerMinute + values[2], nil
	default:
		return 0, fmt.Errorf("%w: invalid time format %q", errs.ErrInvalidInput, text)
	}
}

// ParseWindow parses both ends of a trim range and requires start < end.
func ParseWindow(start, end string) (model.TrimWindow, error) {
	s, err := Parse(start)
	if err != nil {
		return model.TrimWindow{}, fmt.Errorf("start time: %w", err)
	}
	e, err := Parse(end)
	if err != nil {
		return model.TrimWindow{}, fmt.Errorf("end time: %w", err)
	}

	w := model.TrimWindow{Start: s, End: e}
	if !w.Valid() {
		return model.TrimWindow{}, fmt.Errorf("%w: start time %s must be before end time %s", errs.ErrInvalidInput, start, end)
	}
	return w, nil
}

// Format renders seconds as h:mm:ss.
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / secondsPerHour
	m := (seconds % secondsPerHour) / secondsPerMinute
	s := seconds % secondsPerMinute
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

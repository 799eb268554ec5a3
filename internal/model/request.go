package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Resolution is one of the fixed target heights offered by the form.
type Resolution string

const (
	Resolution144p  Resolution = "144p"
	Resolution240p  Resolution = "240p"
	Resolution360p  Resolution = "360p"
	Resolution480p  Resolution = "480p"
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"

	DefaultResolution = Resolution720p
)

// Resolutions returns the selectable resolutions in ascending order.
func Resolutions() []Resolution {
	return []Resolution{
		Resolution144p,
		Resolution240p,
		Resolution360p,
		Resolution480p,
		Resolution720p,
		Resolution1080p,
	}
}

// ParseResolution accepts "720p" or "720" and returns the matching resolution.
func ParseResolution(s string) (Resolution, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s != "" && !strings.HasSuffix(s, "p") {
		s += "p"
	}
	for _, r := range Resolutions() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unsupported resolution %q", s)
}

// Height returns the pixel height, e.g. 720 for "720p".
func (r Resolution) Height() int {
	h, err := strconv.Atoi(strings.TrimSuffix(string(r), "p"))
	if err != nil {
		return 0
	}
	return h
}

// TrimWindow is the [Start, End] range in seconds kept from a full download.
type TrimWindow struct {
	Start int
	End   int
}

// Valid reports whether the window describes a non-empty forward range.
func (w TrimWindow) Valid() bool {
	return w.Start >= 0 && w.Start < w.End
}

// Duration returns the window length in seconds.
func (w TrimWindow) Duration() int {
	return w.End - w.Start
}

// ClipRequest captures one submission of the form. It is not modified after
// it is handed to the executor.
type ClipRequest struct {
	ID         string
	URL        string
	StartTime  string // raw "hh:mm:ss" or "mm:ss"
	EndTime    string
	Resolution Resolution
	Folder     string
	FullVideo  bool
	Transcript bool
	AudioOnly  bool
}

// WantsTrim reports whether the request asks for a clip rather than the full
// media. Audio-only requests always fetch the full track.
func (r ClipRequest) WantsTrim() bool {
	return !r.FullVideo && !r.AudioOnly
}

// Key identifies requests that would write the same artifacts.
func (r ClipRequest) Key() string {
	return strings.TrimSpace(r.URL) + "|" + strings.TrimSpace(r.Folder)
}

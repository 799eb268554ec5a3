package model

import (
	"fmt"
	"strings"
	"time"
)

// ClipTask is the handle for one in-flight request.
type ClipTask struct {
	ID             string
	Request        ClipRequest
	Status         TaskStatus
	Title          string    // media title reported by the engine
	OutputPath     string    // final video/audio artifact
	TranscriptPath string    // transcript artifact, empty if none
	LastError      string    // last error message if any
	StartedAt      time.Time // when the task was submitted
	FinishedAt     time.Time // when the task reached a finished status
}

// GetElapsedString returns the run time formatted as mm:ss or hh:mm:ss, or "—" before start
func (ct *ClipTask) GetElapsedString() string {
	if ct.StartedAt.IsZero() {
		return "—"
	}
	end := ct.FinishedAt
	if end.IsZero() {
		end = time.Now()
	}
	total := int(end.Sub(ct.StartedAt).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (ct *ClipTask) GetDisplayTitle() string {
	if ct.Title != "" && !strings.HasPrefix(ct.Title, "http") {
		return ct.Title
	}

	if ct.OutputPath != "" {
		// support both / and \ separators
		parts := strings.FieldsFunc(ct.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	return ct.Request.URL
}

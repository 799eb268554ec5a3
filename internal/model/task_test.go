package model

import (
	"testing"
	"time"
)

func TestClipTask_GetElapsedString(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		finished time.Duration
		expected string
	}{
		{30 * time.Second, "00:30"},
		{90 * time.Second, "01:30"},
		{3661 * time.Second, "01:01:01"},
	}

	for _, test := range tests {
		task := &ClipTask{StartedAt: start, FinishedAt: start.Add(test.finished)}
		if result := task.GetElapsedString(); result != test.expected {
			t.Errorf("GetElapsedString() after %v = %s, expected %s", test.finished, result, test.expected)
		}
	}

	if result := (&ClipTask{}).GetElapsedString(); result != "—" {
		t.Errorf("GetElapsedString() on unstarted task = %s, expected —", result)
	}
}

func TestClipTask_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		url      string
		expected string
	}{
		{"Video Title", "", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "/tmp/out/output_My Clip.mp4", "https://youtube.com/watch?v=123", "output_My Clip"},
		{"", `C:\Users\me\Downloads\output_x.mp3`, "https://youtube.com/watch?v=1", "output_x"},
		{"", "", "https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456"},
	}

	for _, test := range tests {
		task := &ClipTask{Title: test.title, OutputPath: test.output, Request: ClipRequest{URL: test.url}}
		if result := task.GetDisplayTitle(); result != test.expected {
			t.Errorf("GetDisplayTitle() with title=%q output=%q = %q, expected %q",
				test.title, test.output, result, test.expected)
		}
	}
}

package platform

import "testing"

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"punctuation replaced", "My Video: Part #1!", "My Video_ Part _1_"},
		{"path separators", "a/b\\c", "a_b_c"},
		{"kept characters", "clip_01 final.v2", "clip_01 final.v2"},
		{"unicode letters kept", "Привет мир", "Привет мир"},
		{"empty", "", ""},
		{"hyphen replaced", "live-set", "live_set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

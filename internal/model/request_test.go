package model

import "testing"

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input    string
		expected Resolution
		wantErr  bool
	}{
		{"720p", Resolution720p, false},
		{"1080", Resolution1080p, false},
		{" 144P ", Resolution144p, false},
		{"4320p", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		got, err := ParseResolution(test.input)
		if (err != nil) != test.wantErr {
			t.Errorf("ParseResolution(%q) error = %v, wantErr %v", test.input, err, test.wantErr)
			continue
		}
		if got != test.expected {
			t.Errorf("ParseResolution(%q) = %s, expected %s", test.input, got, test.expected)
		}
	}
}

func TestResolution_Height(t *testing.T) {
	for _, r := range Resolutions() {
		if r.Height() <= 0 {
			t.Errorf("Resolution %s has non-positive height", r)
		}
	}
	if Resolution480p.Height() != 480 {
		t.Errorf("expected 480, got %d", Resolution480p.Height())
	}
}

func TestTrimWindow_Valid(t *testing.T) {
	tests := []struct {
		window   TrimWindow
		expected bool
	}{
		{TrimWindow{Start: 0, End: 180}, true},
		{TrimWindow{Start: 10, End: 10}, false},
		{TrimWindow{Start: 20, End: 10}, false},
		{TrimWindow{Start: -1, End: 10}, false},
	}

	for _, test := range tests {
		if got := test.window.Valid(); got != test.expected {
			t.Errorf("%+v.Valid() = %v, expected %v", test.window, got, test.expected)
		}
	}
}

func TestClipRequest_Key(t *testing.T) {
	a := ClipRequest{URL: " https://youtu.be/x ", Folder: "/tmp"}
	b := ClipRequest{URL: "https://youtu.be/x", Folder: "/tmp "}
	if a.Key() != b.Key() {
		t.Errorf("expected equal keys, got %q and %q", a.Key(), b.Key())
	}
	if !(ClipRequest{}).WantsTrim() {
		t.Error("request without FullVideo should want a trim")
	}
	if (ClipRequest{AudioOnly: true}).WantsTrim() {
		t.Error("audio-only request should not want a trim")
	}
}

package transcript

import (
	"html"
	"regexp"
	"strings"
)

var (
	vttHeaderRe  = regexp.MustCompile(`^\x{FEFF}?WEBVTT\b`)
	timingLineRe = regexp.MustCompile(`^(\d{2}:)?\d{2}:\d{2}[.,]\d{3}\s*-->\s*(\d{2}:)?\d{2}:\d{2}[.,]\d{3}`)
	inlineTagRe  = regexp.MustCompile(`<[^>]+>`)

	// NOTE, STYLE and REGION open a non-cue block only as its first line.
	nonCueBlockRe = regexp.MustCompile(`^(NOTE|STYLE|REGION)(\s|$)`)
)

// CleanVTT strips a WebVTT caption file down to its spoken text, one caption
// line per output line. Auto-generated captions repeat each line across
// overlapping cues, so a line equal to the previous one is dropped.
func CleanVTT(raw string) string {
	if raw == "" {
		return ""
	}

	var (
		out  []string
		prev string
	)
	for i, block := range splitBlocks(raw) {
		if i == 0 && vttHeaderRe.MatchString(block[0]) {
			// Header metadata (Kind:, Language:) ends at the first blank line;
			// tolerate a cue that follows it without one.
			t := timingIndex(block)
			if t < 0 {
				continue
			}
			block = block[t:]
		}
		if nonCueBlockRe.MatchString(block[0]) {
			continue
		}

		// Lines before the timing line are the optional cue identifier.
		text := block
		if t := timingIndex(block); t >= 0 {
			text = block[t+1:]
		}
		for _, line := range text {
			line = inlineTagRe.ReplaceAllString(line, "")
			line = strings.ReplaceAll(html.UnescapeString(line), "\u00a0", " ")
			line = strings.TrimSpace(line)
			if line == "" || line == prev {
				continue
			}
			out = append(out, line)
			prev = line
		}
	}

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

// splitBlocks groups the trimmed non-empty lines of raw into blank-line
// separated blocks.
func splitBlocks(raw string) [][]string {
	var (
		blocks  [][]string
		current []string
	)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r"))
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func timingIndex(block []string) int {
	for i, line := range block {
		if timingLineRe.MatchString(line) {
			return i
		}
	}
	return -1
}

package ui

import "github.com/ytget/yt-clipper/internal/timecode"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconStop     = "⏹"
	IconFolder   = "📁"
	IconError    = "❌"
	IconScissors = "✂"
	IconMusic    = "🎵"
)

// Form defaults
var (
	DefaultStartTime = timecode.Format(0)
	DefaultEndTime   = timecode.Format(3 * 60)
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 560

	StatusLabelWidth  float32 = 110
	ElapsedLabelWidth float32 = 64

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
)

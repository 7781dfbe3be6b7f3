package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Text fragments
const (
	ProgressLabelFormat = "%d%%"
	DashPlaceholder     = "—"
)

// Window sizing
const (
	WindowWidth  float32 = 600
	WindowHeight float32 = 520
)

// Timing
const (
	UIUpdateDebounce = 100 * time.Millisecond
	ProbeTimeout     = 60 * time.Second
)

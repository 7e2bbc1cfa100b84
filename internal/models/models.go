package models

import "strings"

// Mode enumerates the countdown kinds of a session.
type Mode string

const (
	ModeFocus      Mode = "focus"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeFocus, ModeShortBreak, ModeLongBreak}

func (m Mode) Valid() bool {
	switch m {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// Label returns a human-readable name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeFocus:
		return "Focus"
	case ModeShortBreak:
		return "Short break"
	case ModeLongBreak:
		return "Long break"
	}
	return string(m)
}

// IsBreak reports whether the mode is one of the break kinds.
func (m Mode) IsBreak() bool {
	return m == ModeShortBreak || m == ModeLongBreak
}

// ParseMode accepts the canonical names plus a few common aliases.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "focus", "pomodoro", "work":
		return ModeFocus, true
	case "short", "short_break", "shortbreak", "short-break":
		return ModeShortBreak, true
	case "long", "long_break", "longbreak", "long-break":
		return ModeLongBreak, true
	}
	return "", false
}

// Status enumerates the controller lifecycle states.
type Status string

const (
	StatusReady     Status = "ready"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// SessionConfig holds the user-controlled, persisted settings.
type SessionConfig struct {
	FocusMinutes      int
	ShortBreakMinutes int
	LongBreakMinutes  int
	AutoAdvance       bool
}

// Minutes returns the configured duration for mode. Unknown modes yield 0.
func (c SessionConfig) Minutes(mode Mode) int {
	switch mode {
	case ModeFocus:
		return c.FocusMinutes
	case ModeShortBreak:
		return c.ShortBreakMinutes
	case ModeLongBreak:
		return c.LongBreakMinutes
	}
	return 0
}

// SessionState is the runtime countdown snapshot. It is never persisted
// except for CompletedCycles.
type SessionState struct {
	Mode             Mode
	TotalSeconds     int
	RemainingSeconds int
	Running          bool
	CompletedCycles  int
}

// Elapsed returns the number of whole seconds already counted down.
func (s SessionState) Elapsed() int {
	return s.TotalSeconds - s.RemainingSeconds
}

// Progress returns the completed fraction in [0, 1].
func (s SessionState) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 1
	}
	p := float64(s.Elapsed()) / float64(s.TotalSeconds)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// CompletedEvent is raised when a countdown reaches zero.
type CompletedEvent struct {
	Mode            Mode
	CompletedCycles int
}

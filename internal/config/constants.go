package config

import "time"

// Duration defaults, in minutes.
const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultAutoAdvance       = false
)

// Duration ranges, in minutes.
const (
	MinMinutes           = 1
	MaxFocusMinutes      = 120
	MaxBreakMinutes      = 60
	LongBreakEvery       = 4
	SecondsPerMinute     = 60
	TickLength           = time.Second
	FrameInterval        = 100 * time.Millisecond
	AutoAdvanceDelay     = 2 * time.Second
	NotificationLifetime = 5 * time.Second
)

// Persistence keys.
const (
	KeyFocusMinutes      = "focus_minutes"
	KeyShortBreakMinutes = "short_break_minutes"
	KeyLongBreakMinutes  = "long_break_minutes"
	KeyAutoAdvance       = "auto_advance"
	KeyCompletedCycles   = "completed_cycles"
	KeyTheme             = "theme"
)

// Application settings.
const (
	AppName          = "pomo"
	DBFileName       = "pomo.db"
	SettingsFileName = "settings.yaml"
	LogFileName      = "debug.log"
	DefaultTheme     = "default"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreYAML   = "yaml"
	StoreMemory = "memory"
)

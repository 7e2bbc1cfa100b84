package tui

import (
	"fmt"

	"github.com/akyairhashvil/pomo/internal/models"
)

// FormatTimeRemaining formats whole seconds as MM:SS.
func FormatTimeRemaining(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatStatus returns a human-readable controller status.
func FormatStatus(status models.Status) string {
	switch status {
	case models.StatusRunning:
		return "Running"
	case models.StatusPaused:
		return "Paused"
	case models.StatusCompleted:
		return "Completed"
	default:
		return "Ready"
	}
}

// FormatCycles formats the completed focus count.
func FormatCycles(n int) string {
	if n == 1 {
		return "1 pomodoro"
	}
	return fmt.Sprintf("%d pomodoros", n)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

package tui

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg drives the controller once per frame.
type FrameMsg time.Time

// advanceMsg fires after the auto-advance delay. seq guards against a
// stale advance after the user already moved on.
type advanceMsg struct{ seq int }

type clearMessageMsg struct{ seq int }

func frameCmd() tea.Cmd {
	return tea.Tick(config.FrameInterval, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func advanceCmd(seq int) tea.Cmd {
	return tea.Tick(config.AutoAdvanceDelay, func(time.Time) tea.Msg { return advanceMsg{seq: seq} })
}

func clearMessageCmd(seq int) tea.Cmd {
	return tea.Tick(config.NotificationLifetime, func(time.Time) tea.Msg { return clearMessageMsg{seq: seq} })
}

package tui

import (
	"fmt"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prefs"
	"github.com/akyairhashvil/pomo/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

var idleStatuses = []models.Status{models.StatusReady, models.StatusPaused}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: " ", Label: "space", Description: "start", Statuses: idleStatuses, Handler: handleStart, Priority: 10})
	r.Register(KeyBinding{Key: " ", Label: "space", Description: "pause", Statuses: []models.Status{models.StatusRunning}, Handler: handlePause, Priority: 10})
	r.Register(KeyBinding{Key: " ", Label: "space", Description: "next", Statuses: []models.Status{models.StatusCompleted}, Handler: handleAdvanceKey, Priority: 10})
	r.Register(KeyBinding{Key: "r", Description: "reset", Handler: handleReset, Priority: 9})
	r.Register(KeyBinding{Key: "n", Description: "skip", Handler: handleSkip, Priority: 8})
	r.Register(KeyBinding{Key: "1", Label: "1-3", Description: "mode", Handler: handleModeKey, Priority: 7})
	r.Register(KeyBinding{Key: "2", Label: "1-3", Handler: handleModeKey, Priority: 7})
	r.Register(KeyBinding{Key: "3", Label: "1-3", Handler: handleModeKey, Priority: 7})
	r.Register(KeyBinding{Key: "a", Description: "auto", Handler: handleAutoToggle, Priority: 6})
	r.Register(KeyBinding{Key: "s", Description: "settings", Handler: handleOpenSettings, Priority: 5})
	r.Register(KeyBinding{Key: "t", Description: "theme", Handler: handleThemeCycle, Priority: 4})
	r.Register(KeyBinding{Key: "q", Description: "quit", Handler: handleQuit, Priority: 1})
	return r
}

func handleStart(m Model, _ string) (Model, tea.Cmd, bool) {
	if err := m.ctrl.Start(); err != nil {
		next, cmd := m.setError(fmt.Sprintf("Cannot start: %v", err))
		return next, cmd, true
	}
	return m, m.titleCmd(), true
}

func handlePause(m Model, _ string) (Model, tea.Cmd, bool) {
	m.ctrl.Pause()
	return m, nil, true
}

func handleAdvanceKey(m Model, _ string) (Model, tea.Cmd, bool) {
	m.advanceSeq++
	if err := m.ctrl.Advance(); err != nil {
		next, cmd := m.setError(fmt.Sprintf("Cannot start next: %v", err))
		return next, cmd, true
	}
	return m, m.titleCmd(), true
}

func handleReset(m Model, _ string) (Model, tea.Cmd, bool) {
	next, cmd := m.resetTo(m.ctrl.State().Mode)
	return next, cmd, true
}

func handleSkip(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.ctrl.Status() == models.StatusCompleted {
		next, cmd := m.resetTo(m.ctrl.NextMode())
		return next, cmd, true
	}
	m.advanceSeq++
	m.ctrl.Skip()
	return m, m.titleCmd(), true
}

func handleModeKey(m Model, key string) (Model, tea.Cmd, bool) {
	var mode models.Mode
	switch key {
	case "1":
		mode = models.ModeFocus
	case "2":
		mode = models.ModeShortBreak
	case "3":
		mode = models.ModeLongBreak
	default:
		return m, nil, false
	}
	next, cmd := m.resetTo(mode)
	return next, cmd, true
}

func handleAutoToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	cfg := m.ctrl.Config()
	cfg.AutoAdvance = !cfg.AutoAdvance
	util.LogError("configure", m.ctrl.Configure(cfg))
	m.persistConfig()
	next, cmd := m.setMessage("Auto-advance " + onOff(cfg.AutoAdvance))
	return next, cmd, true
}

func handleOpenSettings(m Model, _ string) (Model, tea.Cmd, bool) {
	m.settings = NewSettingsModal(m.ctrl.Config())
	return m, m.settings.Focus(), true
}

func handleThemeCycle(m Model, _ string) (Model, tea.Cmd, bool) {
	m.themeName = NextThemeName(m.themeName)
	m.theme = ResolveTheme(m.themeName)
	util.LogError("save theme", prefs.SaveTheme(m.store, m.themeName))
	next, cmd := m.setMessage("Theme: " + m.theme.Name)
	return next, cmd, true
}

func handleQuit(m Model, _ string) (Model, tea.Cmd, bool) {
	m.quitting = true
	return m, tea.Quit, true
}

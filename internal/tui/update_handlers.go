package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prefs"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case FrameMsg:
		return m.handleFrame(msg)
	case advanceMsg:
		return m.handleAdvance(msg)
	case clearMessageMsg:
		if msg.seq == m.messageSeq {
			m.Message = ""
			m.messageErr = false
		}
		return m, nil
	case progress.FrameMsg:
		newProg, cmd := m.progress.Update(msg)
		m.progress = newProg.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	if m.width > 0 {
		target := config.TargetProgressWidth
		if m.width < config.CompactModeThreshold || target > m.width-8 {
			target = m.width - 8
		}
		if target < config.MinProgressWidth {
			target = config.MinProgressWidth
		}
		m.progress.Width = target
	}
	return m, nil
}

func (m Model) handleFrame(msg FrameMsg) (Model, tea.Cmd) {
	m.ctrl.FrameAt(time.Time(msg))
	next, cmd := m.applyEvents()
	return next, tea.Batch(frameCmd(), cmd)
}

func (m Model) handleAdvance(msg advanceMsg) (Model, tea.Cmd) {
	if msg.seq != m.advanceSeq || !m.ctrl.ShouldAutoAdvance() {
		return m, nil
	}
	if err := m.ctrl.Advance(); err != nil {
		return m.setError(fmt.Sprintf("Auto-advance failed: %v", err))
	}
	next, cmd := m.applyEvents()
	return next, tea.Batch(cmd, next.titleCmd())
}

// applyEvents reacts to everything the controller raised since the last
// drain: completion feedback, persistence and the auto-advance timer.
func (m Model) applyEvents() (Model, tea.Cmd) {
	ev := m.events.drain()
	var cmds []tea.Cmd
	if ev.ticked {
		cmds = append(cmds, m.titleCmd())
	}
	for _, done := range ev.completed {
		nextMode := m.ctrl.NextMode()
		m.notifier.Notify(done, nextMode)
		var cmd tea.Cmd
		m, cmd = m.setMessage(fmt.Sprintf("%s complete, next: %s", done.Mode.Label(), nextMode.Label()))
		cmds = append(cmds, cmd)
		if m.ctrl.ShouldAutoAdvance() {
			m.advanceSeq++
			cmds = append(cmds, advanceCmd(m.advanceSeq))
		}
	}
	if len(ev.modeChanged) > 0 {
		cmds = append(cmds, m.titleCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	if m.settings != nil {
		return m.handleSettingsInput(msg)
	}
	if next, cmd, handled := m.registry.Handle(m, key); handled {
		ev, evCmd := next.applyEvents()
		return ev, tea.Batch(cmd, evCmd)
	}
	return m, nil
}

func (m Model) setMessage(text string) (Model, tea.Cmd) {
	m.messageSeq++
	m.Message = text
	m.messageErr = false
	return m, clearMessageCmd(m.messageSeq)
}

func (m Model) setError(text string) (Model, tea.Cmd) {
	m, cmd := m.setMessage(text)
	m.messageErr = true
	return m, cmd
}

func (m Model) titleCmd() tea.Cmd {
	st := m.ctrl.State()
	return tea.SetWindowTitle(fmt.Sprintf("%s %s", FormatTimeRemaining(st.RemainingSeconds), st.Mode.Label()))
}

func (m Model) persistConfig() {
	util.LogError("save settings", prefs.Save(m.store, m.ctrl.Config()))
}

func (m Model) resetTo(mode models.Mode) (Model, tea.Cmd) {
	m.advanceSeq++
	m.ctrl.ResetTo(mode)
	return m, m.titleCmd()
}

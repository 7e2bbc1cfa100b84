package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldFocus = iota
	fieldShort
	fieldLong
	fieldAuto
	fieldCount
)

var settingsLabels = [fieldCount]string{"Focus (min)", "Short break (min)", "Long break (min)", "Auto-advance"}

// SettingsModal edits the session durations and auto-advance flag.
type SettingsModal struct {
	inputs      [fieldAuto]textinput.Model
	autoAdvance bool
	cursor      int
}

func NewSettingsModal(cfg models.SessionConfig) *SettingsModal {
	s := &SettingsModal{autoAdvance: cfg.AutoAdvance}
	values := [fieldAuto]int{cfg.FocusMinutes, cfg.ShortBreakMinutes, cfg.LongBreakMinutes}
	for i := range s.inputs {
		ti := textinput.New()
		ti.CharLimit = config.MinutesInputCharLimit
		ti.Width = config.MinutesInputWidth
		ti.Prompt = ""
		ti.SetValue(strconv.Itoa(values[i]))
		s.inputs[i] = ti
	}
	return s
}

// Focus moves keyboard focus to the current row.
func (s *SettingsModal) Focus() tea.Cmd {
	var cmd tea.Cmd
	for i := range s.inputs {
		if i == s.cursor {
			cmd = s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
	return cmd
}

func (s *SettingsModal) move(delta int) tea.Cmd {
	s.cursor = (s.cursor + delta + fieldCount) % fieldCount
	return s.Focus()
}

// Config returns the edited values. Non-numeric input becomes 0 so that
// normalization replaces it with the field default.
func (s *SettingsModal) Config() models.SessionConfig {
	parse := func(ti textinput.Model) int {
		v, _ := util.ParseInt(ti.Value())
		return v
	}
	return models.SessionConfig{
		FocusMinutes:      parse(s.inputs[fieldFocus]),
		ShortBreakMinutes: parse(s.inputs[fieldShort]),
		LongBreakMinutes:  parse(s.inputs[fieldLong]),
		AutoAdvance:       s.autoAdvance,
	}
}

func (m Model) handleSettingsInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	s := m.settings
	switch msg.String() {
	case "esc":
		m.settings = nil
		return m, nil
	case "enter":
		return m.saveSettings()
	case "tab", "down":
		return m, s.move(1)
	case "shift+tab", "up":
		return m, s.move(-1)
	case " ":
		// Minutes are digits only; a space would make the value unparseable.
		if s.cursor == fieldAuto {
			s.autoAdvance = !s.autoAdvance
		}
		return m, nil
	case "left", "right":
		if s.cursor == fieldAuto {
			s.autoAdvance = !s.autoAdvance
			return m, nil
		}
	}
	if s.cursor == fieldAuto {
		return m, nil
	}
	var cmd tea.Cmd
	s.inputs[s.cursor], cmd = s.inputs[s.cursor].Update(msg)
	return m, cmd
}

func (m Model) saveSettings() (Model, tea.Cmd) {
	cfg := m.settings.Config()
	m.settings = nil
	err := m.ctrl.Configure(cfg)
	m.persistConfig()
	if err != nil {
		return m.setError("Adjusted: " + describeConfigErr(err))
	}
	return m.setMessage("Settings saved")
}

func describeConfigErr(err error) string {
	var parts []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			parts = append(parts, e.Error())
		}
	} else {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}

func (m Model) renderSettings() string {
	s := m.settings
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Settings"))
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		label := fmt.Sprintf("%-18s", settingsLabels[i])
		var value string
		if i == fieldAuto {
			value = "[" + onOff(s.autoAdvance) + "]"
		} else {
			value = s.inputs[i].View()
		}
		line := label + " " + value
		if i == s.cursor {
			line = m.theme.Focused.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Dim.Render(fmt.Sprintf("focus %d-%d, breaks %d-%d  [enter]save [esc]cancel [tab]next", config.MinMinutes, config.MaxFocusMinutes, config.MinMinutes, config.MaxBreakMinutes)))
	return m.theme.Input.Render(b.String())
}

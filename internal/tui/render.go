package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	st := m.ctrl.State()
	accent := m.theme.ModeStyle(st.Mode)

	sections := []string{
		m.renderHeader(),
		m.renderModeTabs(st.Mode),
		m.theme.Clock.BorderForeground(m.theme.Border).Inherit(accent).Render(FormatTimeRemaining(st.RemainingSeconds)),
		m.progress.ViewAs(st.Progress()),
		m.renderStatusLine(st),
	}
	if m.settings != nil {
		sections = append(sections, m.renderSettings())
	}
	if m.Message != "" {
		style := m.theme.Notice
		if m.messageErr {
			style = m.theme.Error
		}
		sections = append(sections, style.Render(m.fit(m.Message)))
	}
	sections = append(sections, m.renderFooter())

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return m.theme.Base.Render(body)
}

func (m Model) renderHeader() string {
	return m.theme.Header.Render(strings.ToUpper(config.AppName)) + " " + m.theme.Dim.Render("v"+VersionLabel())
}

func (m Model) renderModeTabs(active models.Mode) string {
	tabs := make([]string, 0, len(models.Modes))
	for i, mode := range models.Modes {
		label := fmt.Sprintf("%d %s", i+1, mode.Label())
		if mode == active {
			tabs = append(tabs, m.theme.ModeStyle(mode).Render(label))
		} else {
			tabs = append(tabs, m.theme.Dim.Render(label))
		}
	}
	sep := "  |  "
	if m.width > 0 && m.width < config.CompactModeThreshold {
		sep = " "
	}
	return strings.Join(tabs, m.theme.Dim.Render(sep))
}

func (m Model) renderStatusLine(st models.SessionState) string {
	cfg := m.ctrl.Config()
	parts := []string{
		FormatStatus(m.ctrl.Status()),
		FormatCycles(st.CompletedCycles),
		"next: " + m.ctrl.NextMode().Label(),
		"auto " + onOff(cfg.AutoAdvance),
	}
	return m.theme.Highlight.Render(m.fit(strings.Join(parts, " · ")))
}

func (m Model) renderFooter() string {
	help := m.registry.HelpForStatus(m.ctrl.Status())
	if m.settings != nil {
		help = ""
	}
	return m.theme.Dim.Render(m.fit(help))
}

// fit truncates s to the window width, leaving room for the margins.
func (m Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	limit := m.width - 4
	if limit <= 0 || ansi.StringWidth(s) <= limit {
		return s
	}
	return ansi.Truncate(s, limit, config.TruncationSuffix)
}

package tui

import (
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Border     lipgloss.Color
	Header     lipgloss.Style
	Focus      lipgloss.Style
	ShortBreak lipgloss.Style
	LongBreak  lipgloss.Style
	Clock      lipgloss.Style
	Notice     lipgloss.Style
	Error      lipgloss.Style
	Input      lipgloss.Style
	Focused    lipgloss.Style
	Dim        lipgloss.Style
	Highlight  lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("63"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Focus:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		ShortBreak: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		LongBreak:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
		Clock:      lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("62"),                                             // Purple
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Focus:      lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Red/Pink
		ShortBreak: lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		LongBreak:  lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true), // Purple
		Clock:      lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
	},
	"mono": {
		Name:       "Mono",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("250"),
		Header:     lipgloss.NewStyle().Bold(true),
		Focus:      lipgloss.NewStyle().Bold(true),
		ShortBreak: lipgloss.NewStyle().Underline(true),
		LongBreak:  lipgloss.NewStyle().Italic(true),
		Clock:      lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.NormalBorder()),
		Notice:     lipgloss.NewStyle().Reverse(true),
		Error:      lipgloss.NewStyle().Bold(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Focused:    lipgloss.NewStyle().Reverse(true),
		Dim:        lipgloss.NewStyle().Faint(true),
		Highlight:  lipgloss.NewStyle().Bold(true),
	},
}

// ThemeOrder is the cycling order of the theme key.
var ThemeOrder = []string{"default", "dracula", "mono"}

// ResolveTheme returns the named theme, or the default one.
func ResolveTheme(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes[config.DefaultTheme]
}

// NextThemeName returns the theme after name in ThemeOrder.
func NextThemeName(name string) string {
	for i, n := range ThemeOrder {
		if n == name {
			return ThemeOrder[(i+1)%len(ThemeOrder)]
		}
	}
	return ThemeOrder[0]
}

// ModeStyle returns the accent style for mode.
func (t Theme) ModeStyle(mode models.Mode) lipgloss.Style {
	switch mode {
	case models.ModeShortBreak:
		return t.ShortBreak
	case models.ModeLongBreak:
		return t.LongBreak
	}
	return t.Focus
}

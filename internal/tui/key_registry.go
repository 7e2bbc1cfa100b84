package tui

import (
	"sort"
	"strings"

	"github.com/akyairhashvil/pomo/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Label       string
	Handler     KeyHandler
	Description string
	Statuses    []models.Status
	Priority    int
}

func (b KeyBinding) AppliesToStatus(status models.Status) bool {
	if len(b.Statuses) == 0 {
		return true
	}
	for _, s := range b.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	status := m.ctrl.Status()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesToStatus(status) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForStatus(status models.Status) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesToStatus(status) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForStatus(status models.Status) string {
	bindings := r.GetBindingsForStatus(status)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		label := b.Label
		if label == "" {
			label = b.Key
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		parts = append(parts, "["+label+"]"+b.Description)
	}
	return strings.Join(parts, " ")
}

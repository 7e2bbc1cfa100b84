package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prefs"
	"github.com/akyairhashvil/pomo/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advance(d time.Duration) FrameMsg {
	c.now = c.now.Add(d)
	return FrameMsg(c.now)
}

type testEnv struct {
	clock *testClock
	store *prefs.MemoryStore
	bell  *bytes.Buffer
}

func setupTestModel(t *testing.T, cfg models.SessionConfig) (Model, *testEnv) {
	t.Helper()
	env := &testEnv{
		clock: &testClock{now: time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)},
		store: prefs.NewMemoryStore(),
		bell:  &bytes.Buffer{},
	}
	ctrl := timer.NewController(cfg, env.clock)
	prefs.Bind(ctrl, env.store)
	m := NewModel(ctrl, env.store, Options{Theme: "default", Bell: env.bell})
	return m, env
}

func oneMinute() models.SessionConfig {
	return models.SessionConfig{FocusMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1}
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	updated, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return updated
}

func TestNewModelDefaults(t *testing.T) {
	m, _ := setupTestModel(t, timer.DefaultConfig())
	if m.ctrl.Status() != models.StatusReady {
		t.Fatalf("expected ready status")
	}
	if m.themeName != "default" {
		t.Fatalf("themeName = %q", m.themeName)
	}
	if !strings.Contains(m.View(), "25:00") {
		t.Fatalf("expected initial countdown in view")
	}
}

func TestSpaceStartsAndFramesCountDown(t *testing.T) {
	m, env := setupTestModel(t, timer.DefaultConfig())
	m = send(t, m, key(" "))
	if m.ctrl.Status() != models.StatusRunning {
		t.Fatalf("status = %s want running", m.ctrl.Status())
	}
	m = send(t, m, env.clock.advance(400*time.Millisecond))
	m = send(t, m, env.clock.advance(700*time.Millisecond))
	if got := m.ctrl.State().RemainingSeconds; got != 25*60-1 {
		t.Fatalf("remaining = %d want %d", got, 25*60-1)
	}
	if !strings.Contains(m.View(), "24:59") {
		t.Fatalf("expected view to show 24:59")
	}

	m = send(t, m, key(" "))
	if m.ctrl.Status() != models.StatusPaused {
		t.Fatalf("status = %s want paused", m.ctrl.Status())
	}
}

func TestCompletionNotifiesAndPersists(t *testing.T) {
	m, env := setupTestModel(t, oneMinute())
	m = send(t, m, key(" "))
	m = send(t, m, env.clock.advance(time.Minute))

	if m.ctrl.Status() != models.StatusCompleted {
		t.Fatalf("status = %s want completed", m.ctrl.Status())
	}
	if !strings.Contains(m.Message, "Focus complete") || !strings.Contains(m.Message, "Short break") {
		t.Fatalf("unexpected message %q", m.Message)
	}
	if env.bell.String() != "\a" {
		t.Fatalf("expected one bell, got %q", env.bell.String())
	}
	if prefs.LoadCycles(env.store) != 1 {
		t.Fatalf("expected persisted cycle count")
	}
}

func TestAutoAdvanceAfterDelay(t *testing.T) {
	cfg := oneMinute()
	cfg.AutoAdvance = true
	m, env := setupTestModel(t, cfg)
	m = send(t, m, key(" "))
	m = send(t, m, env.clock.advance(time.Minute))
	if m.advanceSeq == 0 {
		t.Fatalf("expected auto-advance to be scheduled")
	}
	m = send(t, m, advanceMsg{seq: m.advanceSeq})
	st := m.ctrl.State()
	if st.Mode != models.ModeShortBreak || m.ctrl.Status() != models.StatusRunning {
		t.Fatalf("expected running short break, got %s %s", st.Mode, m.ctrl.Status())
	}
}

func TestStaleAdvanceIgnoredAfterReset(t *testing.T) {
	cfg := oneMinute()
	cfg.AutoAdvance = true
	m, env := setupTestModel(t, cfg)
	m = send(t, m, key(" "))
	m = send(t, m, env.clock.advance(time.Minute))
	stale := m.advanceSeq
	m = send(t, m, key("r"))
	m = send(t, m, advanceMsg{seq: stale})
	if m.ctrl.Status() != models.StatusReady || m.ctrl.State().Mode != models.ModeFocus {
		t.Fatalf("expected stale advance to be ignored, got %s %s", m.ctrl.State().Mode, m.ctrl.Status())
	}
}

func TestSpaceOnCompletedStartsNext(t *testing.T) {
	m, env := setupTestModel(t, oneMinute())
	m = send(t, m, key(" "))
	m = send(t, m, env.clock.advance(time.Minute))
	m = send(t, m, key(" "))
	if m.ctrl.State().Mode != models.ModeShortBreak || m.ctrl.Status() != models.StatusRunning {
		t.Fatalf("expected running short break, got %s %s", m.ctrl.State().Mode, m.ctrl.Status())
	}
}

func TestModeKeys(t *testing.T) {
	m, _ := setupTestModel(t, timer.DefaultConfig())
	m = send(t, m, key("3"))
	if m.ctrl.State().Mode != models.ModeLongBreak {
		t.Fatalf("mode = %s want long_break", m.ctrl.State().Mode)
	}
	if m.ctrl.State().TotalSeconds != config.DefaultLongBreakMinutes*60 {
		t.Fatalf("unexpected total %d", m.ctrl.State().TotalSeconds)
	}
	m = send(t, m, key("2"))
	if m.ctrl.State().Mode != models.ModeShortBreak {
		t.Fatalf("mode = %s want short_break", m.ctrl.State().Mode)
	}
	m = send(t, m, key("n"))
	if m.ctrl.State().Mode != models.ModeFocus {
		t.Fatalf("skip from break should return to focus, got %s", m.ctrl.State().Mode)
	}
}

func TestAutoToggleSaves(t *testing.T) {
	m, env := setupTestModel(t, timer.DefaultConfig())
	m = send(t, m, key("a"))
	if !m.ctrl.Config().AutoAdvance {
		t.Fatalf("expected auto-advance on")
	}
	cfg, err := prefs.Load(env.store)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.AutoAdvance {
		t.Fatalf("expected auto-advance persisted")
	}
}

func TestThemeCycleSaves(t *testing.T) {
	m, env := setupTestModel(t, timer.DefaultConfig())
	m = send(t, m, key("t"))
	if m.themeName != "dracula" {
		t.Fatalf("themeName = %q want dracula", m.themeName)
	}
	if prefs.LoadTheme(env.store) != "dracula" {
		t.Fatalf("expected theme persisted")
	}
}

func TestQuit(t *testing.T) {
	m, _ := setupTestModel(t, timer.DefaultConfig())
	next, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !isQuit(cmd) {
		t.Fatalf("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestHelpDependsOnStatus(t *testing.T) {
	m, _ := setupTestModel(t, timer.DefaultConfig())
	if help := m.registry.HelpForStatus(models.StatusReady); !strings.Contains(help, "[space]start") {
		t.Fatalf("unexpected ready help %q", help)
	}
	if help := m.registry.HelpForStatus(models.StatusRunning); !strings.Contains(help, "[space]pause") {
		t.Fatalf("unexpected running help %q", help)
	}
	if help := m.registry.HelpForStatus(models.StatusReady); strings.Count(help, "[1-3]") != 1 {
		t.Fatalf("expected mode keys to collapse into one entry, got %q", help)
	}
}

func TestWindowSizeNarrow(t *testing.T) {
	m, _ := setupTestModel(t, timer.DefaultConfig())
	m = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 20})
	if m.progress.Width != 22 {
		t.Fatalf("progress width = %d want 22", m.progress.Width)
	}
	m = send(t, m, tea.WindowSizeMsg{Width: 12, Height: 20})
	if m.progress.Width != config.MinProgressWidth {
		t.Fatalf("progress width = %d want %d", m.progress.Width, config.MinProgressWidth)
	}
}

func TestClearMessage(t *testing.T) {
	m, _ := setupTestModel(t, timer.DefaultConfig())
	m = send(t, m, key("a"))
	if m.Message == "" {
		t.Fatalf("expected message")
	}
	m = send(t, m, clearMessageMsg{seq: m.messageSeq - 1})
	if m.Message == "" {
		t.Fatalf("stale clear should keep message")
	}
	m = send(t, m, clearMessageMsg{seq: m.messageSeq})
	if m.Message != "" {
		t.Fatalf("expected message cleared")
	}
}

package tui

import (
	"io"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/prefs"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// eventQueue collects controller events raised during one Update call.
// It is shared by pointer so copies of the model see the same queue.
type eventQueue struct {
	ticked      bool
	completed   []models.CompletedEvent
	modeChanged []models.Mode
}

func (q *eventQueue) drain() eventQueue {
	out := *q
	*q = eventQueue{}
	return out
}

// Model is the bubbletea presentation adapter around a timer.Controller.
type Model struct {
	ctrl     *timer.Controller
	store    prefs.Store
	events   *eventQueue
	registry *HandlerRegistry
	notifier Notifier

	progress  progress.Model
	settings  *SettingsModal
	theme     Theme
	themeName string

	width  int
	height int

	Message    string
	messageErr bool
	messageSeq int
	advanceSeq int
	quitting   bool
}

// Options configures NewModel.
type Options struct {
	Theme string
	Bell  io.Writer
}

// NewModel wires the controller's events into the model. store may be a
// MemoryStore; it must not be nil.
func NewModel(ctrl *timer.Controller, store prefs.Store, opts Options) Model {
	if store == nil {
		store = prefs.NewMemoryStore()
	}
	name := opts.Theme
	if _, ok := Themes[name]; !ok {
		name = config.DefaultTheme
	}

	events := &eventQueue{}
	ctrl.OnTick(func(int, int) { events.ticked = true })
	ctrl.OnCompleted(func(ev models.CompletedEvent) { events.completed = append(events.completed, ev) })
	ctrl.OnModeChanged(func(mode models.Mode) { events.modeChanged = append(events.modeChanged, mode) })

	m := Model{
		ctrl:      ctrl,
		store:     store,
		events:    events,
		registry:  defaultRegistry(),
		notifier:  NewBellNotifier(opts.Bell),
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		theme:     ResolveTheme(name),
		themeName: name,
	}
	m.progress.Width = config.TargetProgressWidth
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), m.titleCmd())
}

// Controller exposes the wrapped controller for read access.
func (m Model) Controller() *timer.Controller {
	return m.ctrl
}

package timer

import (
	"log"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

// TickHandler receives the countdown after every accounted second.
type TickHandler func(remainingSeconds, totalSeconds int)

// CompletedHandler receives the finished mode and the cycle count after
// any focus increment.
type CompletedHandler func(models.CompletedEvent)

// ModeChangedHandler receives the new mode after a reset switched it.
type ModeChangedHandler func(models.Mode)

// Controller is the session state machine over {ready, running, paused,
// completed}. It owns the one SessionState and the one Scheduler; callers
// read copies and drive it through Start, Pause, Reset and Frame.
//
// Controller is not safe for concurrent use.
type Controller struct {
	clock  Clock
	cfg    models.SessionConfig
	state  models.SessionState
	status models.Status
	sched  Scheduler

	onTick        []TickHandler
	onCompleted   []CompletedHandler
	onModeChanged []ModeChangedHandler
}

// NewController creates a controller in focus mode, ready to start. The
// config is normalized; adjustments are logged and otherwise ignored.
func NewController(cfg models.SessionConfig, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock
	}
	normalized, err := Normalize(cfg)
	if err != nil {
		log.Printf("session config adjusted: %v", err)
	}
	c := &Controller{
		clock: clock,
		cfg:   normalized,
		state: models.SessionState{Mode: models.ModeFocus},
	}
	c.refill(models.ModeFocus)
	return c
}

func (c *Controller) OnTick(fn TickHandler) {
	if fn != nil {
		c.onTick = append(c.onTick, fn)
	}
}

func (c *Controller) OnCompleted(fn CompletedHandler) {
	if fn != nil {
		c.onCompleted = append(c.onCompleted, fn)
	}
}

func (c *Controller) OnModeChanged(fn ModeChangedHandler) {
	if fn != nil {
		c.onModeChanged = append(c.onModeChanged, fn)
	}
}

// Config returns the active normalized configuration.
func (c *Controller) Config() models.SessionConfig {
	return c.cfg
}

// State returns a copy of the current session state.
func (c *Controller) State() models.SessionState {
	return c.state
}

func (c *Controller) Status() models.Status {
	return c.status
}

// Configure normalizes and applies cfg. When the controller is ready the
// current countdown is recomputed from the new durations; a running or
// paused countdown keeps its snapshot until the next reset.
func (c *Controller) Configure(cfg models.SessionConfig) error {
	normalized, err := Normalize(cfg)
	c.cfg = normalized
	if c.status == models.StatusReady {
		c.refill(c.state.Mode)
	}
	return err
}

// SetCompletedCycles restores a persisted cycle count.
func (c *Controller) SetCompletedCycles(n int) {
	if n < 0 {
		n = 0
	}
	c.state.CompletedCycles = n
}

// Start begins or resumes the countdown. It is a no-op while running.
func (c *Controller) Start() error {
	switch c.status {
	case models.StatusRunning:
		return nil
	case models.StatusCompleted:
		return &TransitionError{Op: "start", Status: string(c.status)}
	}
	if c.state.RemainingSeconds <= 0 {
		return &TransitionError{Op: "start", Status: string(c.status)}
	}
	c.sched.Start(c.clock.Now())
	c.status = models.StatusRunning
	c.state.Running = true
	return nil
}

// Pause stops the scheduler and keeps the remaining time.
func (c *Controller) Pause() {
	if c.status != models.StatusRunning {
		return
	}
	c.sched.Stop()
	c.status = models.StatusPaused
	c.state.Running = false
}

// Toggle pauses a running countdown and starts any other.
func (c *Controller) Toggle() error {
	if c.status == models.StatusRunning {
		c.Pause()
		return nil
	}
	return c.Start()
}

// Reset stops the countdown and refills it for the current mode.
func (c *Controller) Reset() {
	c.ResetTo(c.state.Mode)
}

// ResetTo stops the countdown, switches to mode and refills it. An
// invalid mode keeps the current one.
func (c *Controller) ResetTo(mode models.Mode) {
	if !mode.Valid() {
		mode = c.state.Mode
	}
	changed := mode != c.state.Mode
	c.refill(mode)
	if changed {
		c.emitModeChanged(mode)
	}
}

// Skip abandons the current countdown and moves to the mode that would
// follow it, without counting a cycle.
func (c *Controller) Skip() {
	c.ResetTo(NextMode(c.state.Mode, c.state.CompletedCycles+1))
}

// NextMode is the mode that follows the current one given the cycle count.
func (c *Controller) NextMode() models.Mode {
	return NextMode(c.state.Mode, c.state.CompletedCycles)
}

// ShouldAutoAdvance reports whether the presentation layer should call
// Advance after its delay.
func (c *Controller) ShouldAutoAdvance() bool {
	return c.status == models.StatusCompleted && c.cfg.AutoAdvance
}

// Advance resets to the next mode and starts it.
func (c *Controller) Advance() error {
	c.ResetTo(c.NextMode())
	return c.Start()
}

// Frame feeds one frame timestamp into the scheduler and applies every
// resulting tick.
func (c *Controller) Frame() {
	c.FrameAt(c.clock.Now())
}

// FrameAt is Frame with an explicit timestamp, for frame sources that
// deliver their own time.
func (c *Controller) FrameAt(now time.Time) {
	if c.status != models.StatusRunning {
		return
	}
	ticks := c.sched.Frame(now)
	for i := 0; i < ticks && c.status == models.StatusRunning; i++ {
		c.tick()
	}
}

func (c *Controller) tick() {
	if c.state.RemainingSeconds > 0 {
		c.state.RemainingSeconds--
	}
	c.emitTick(c.state.RemainingSeconds, c.state.TotalSeconds)
	if c.state.RemainingSeconds == 0 {
		c.complete()
	}
}

func (c *Controller) complete() {
	c.sched.Stop()
	c.status = models.StatusCompleted
	c.state.Running = false
	if !c.state.Mode.IsBreak() {
		c.state.CompletedCycles++
	}
	c.emitCompleted(models.CompletedEvent{
		Mode:            c.state.Mode,
		CompletedCycles: c.state.CompletedCycles,
	})
}

func (c *Controller) refill(mode models.Mode) {
	c.sched.Stop()
	c.state.Mode = mode
	c.state.TotalSeconds = c.cfg.Minutes(mode) * config.SecondsPerMinute
	c.state.RemainingSeconds = c.state.TotalSeconds
	c.state.Running = false
	c.status = models.StatusReady
}

// NextMode decides what follows mode. cycles must already include the
// increment for a focus countdown that just completed.
func NextMode(mode models.Mode, cycles int) models.Mode {
	if mode == models.ModeFocus {
		if cycles%config.LongBreakEvery == 0 {
			return models.ModeLongBreak
		}
		return models.ModeShortBreak
	}
	return models.ModeFocus
}

func (c *Controller) emitTick(remaining, total int) {
	for _, fn := range c.onTick {
		safeCall("tick", func() { fn(remaining, total) })
	}
}

func (c *Controller) emitCompleted(ev models.CompletedEvent) {
	for _, fn := range c.onCompleted {
		safeCall("completed", func() { fn(ev) })
	}
}

func (c *Controller) emitModeChanged(mode models.Mode) {
	for _, fn := range c.onModeChanged {
		safeCall("mode changed", func() { fn(mode) })
	}
}

// safeCall keeps a failing handler from stalling the frame loop.
func safeCall(event string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s handler panicked: %v", event, r)
		}
	}()
	fn()
}

// Package headless drives a session controller without a terminal UI,
// printing one line per second of countdown.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
)

// Runner prints the countdown of a controller to a writer.
type Runner struct {
	ctrl  *timer.Controller
	out   io.Writer
	delay time.Duration

	completed []models.CompletedEvent
	lastShown int
	advanceAt time.Time
}

// NewRunner returns a runner using config.AutoAdvanceDelay.
func NewRunner(ctrl *timer.Controller, out io.Writer) *Runner {
	r := &Runner{ctrl: ctrl, out: out, delay: config.AutoAdvanceDelay, lastShown: -1}
	ctrl.OnCompleted(func(ev models.CompletedEvent) {
		r.completed = append(r.completed, ev)
	})
	return r
}

// Run starts the countdown and feeds it every timestamp received on
// frames. It returns when ctx is done, when frames is closed, or when a
// countdown completes and auto-advance is off.
func (r *Runner) Run(ctx context.Context, frames <-chan time.Time) error {
	if r.ctrl.Status() != models.StatusRunning {
		if err := r.ctrl.Start(); err != nil {
			return fmt.Errorf("start countdown: %w", err)
		}
	}
	r.printState()

	for {
		select {
		case <-ctx.Done():
			r.ctrl.Pause()
			r.printf("stopped at %s\n", formatClock(r.ctrl.State().RemainingSeconds))
			return nil
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			done, err := r.frame(now)
			if err != nil || done {
				return err
			}
		}
	}
}

func (r *Runner) frame(now time.Time) (bool, error) {
	r.ctrl.FrameAt(now)
	if r.ctrl.State().RemainingSeconds != r.lastShown {
		r.printState()
	}

	for _, ev := range r.completed {
		r.printf("%s complete (%d completed), next: %s\n", ev.Mode.Label(), ev.CompletedCycles, r.ctrl.NextMode().Label())
		if r.ctrl.ShouldAutoAdvance() {
			r.advanceAt = now.Add(r.delay)
		}
	}
	r.completed = r.completed[:0]

	if r.ctrl.Status() != models.StatusCompleted {
		return false, nil
	}
	if !r.ctrl.ShouldAutoAdvance() {
		return true, nil
	}
	if now.Before(r.advanceAt) {
		return false, nil
	}
	r.advanceAt = time.Time{}
	if err := r.ctrl.Advance(); err != nil {
		return true, fmt.Errorf("advance: %w", err)
	}
	r.printState()
	return false, nil
}

func (r *Runner) printState() {
	st := r.ctrl.State()
	r.lastShown = st.RemainingSeconds
	r.printf("%s %s\n", st.Mode, formatClock(st.RemainingSeconds))
}

func (r *Runner) printf(format string, args ...any) {
	// Output errors are not actionable here; the countdown keeps going.
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Ticker adapts a time.Ticker to the frames channel Run expects. The
// returned stop function releases it.
func Ticker(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

package timer

import (
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
)

// Scheduler turns a stream of frame timestamps into whole-second ticks.
//
// The anchor is only ever advanced by the seconds actually accounted for,
// so the sub-second remainder of each frame carries over to the next one
// and the cumulative error stays below one frame interval.
type Scheduler struct {
	anchor  time.Time
	running bool
}

// Start records now as the anchor. It returns false and leaves the anchor
// untouched when the scheduler is already running.
func (s *Scheduler) Start(now time.Time) bool {
	if s.running {
		return false
	}
	s.anchor = now
	s.running = true
	return true
}

// Frame returns the number of ticks elapsed since the anchor and moves
// the anchor forward by exactly that many seconds.
func (s *Scheduler) Frame(now time.Time) int {
	if !s.running {
		return 0
	}
	elapsed := now.Sub(s.anchor)
	if elapsed < config.TickLength {
		return 0
	}
	ticks := int(elapsed / config.TickLength)
	s.anchor = s.anchor.Add(time.Duration(ticks) * config.TickLength)
	return ticks
}

// Stop discards the anchor.
func (s *Scheduler) Stop() {
	s.running = false
	s.anchor = time.Time{}
}

func (s *Scheduler) Running() bool {
	return s.running
}

// Anchor returns the current anchor and whether the scheduler is running.
func (s *Scheduler) Anchor() (time.Time, bool) {
	return s.anchor, s.running
}

// Package timer holds the countdown core: a drift-free one-second
// scheduler and the session state machine built on top of it. Nothing in
// this package touches the terminal, the filesystem or goroutines.
package timer

import "time"

// Clock abstracts the wall-clock source so the countdown can be driven
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock backed by time.Now.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

package timer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned when a lifecycle call is not allowed
	// in the current state, e.g. starting a countdown that already reached zero.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidConfig marks a configuration field that had to be defaulted
	// or clamped. The adjusted value is always applied.
	ErrInvalidConfig = errors.New("invalid config")
)

// ConfigError describes a single adjusted configuration field.
type ConfigError struct {
	Field   string
	Value   int
	Applied int
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d out of range, using %d", e.Field, e.Value, e.Applied)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// TransitionError carries the status a rejected call was made in.
type TransitionError struct {
	Op     string
	Status string
}

func (e *TransitionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s while %s: %v", e.Op, e.Status, ErrInvalidTransition)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

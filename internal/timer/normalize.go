package timer

import (
	"errors"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/util"
)

// DefaultConfig returns the built-in session settings.
func DefaultConfig() models.SessionConfig {
	return models.SessionConfig{
		FocusMinutes:      config.DefaultFocusMinutes,
		ShortBreakMinutes: config.DefaultShortBreakMinutes,
		LongBreakMinutes:  config.DefaultLongBreakMinutes,
		AutoAdvance:       config.DefaultAutoAdvance,
	}
}

// Normalize validates every duration field independently. Non-positive
// values fall back to that field's default and values above the range are
// clamped to the maximum. The returned config is always usable; the error
// lists what was adjusted.
func Normalize(cfg models.SessionConfig) (models.SessionConfig, error) {
	var errs []error
	cfg.FocusMinutes = normalizeField(config.KeyFocusMinutes, cfg.FocusMinutes, config.DefaultFocusMinutes, config.MaxFocusMinutes, &errs)
	cfg.ShortBreakMinutes = normalizeField(config.KeyShortBreakMinutes, cfg.ShortBreakMinutes, config.DefaultShortBreakMinutes, config.MaxBreakMinutes, &errs)
	cfg.LongBreakMinutes = normalizeField(config.KeyLongBreakMinutes, cfg.LongBreakMinutes, config.DefaultLongBreakMinutes, config.MaxBreakMinutes, &errs)
	return cfg, errors.Join(errs...)
}

func normalizeField(field string, value, def, max int, errs *[]error) int {
	applied := value
	if value < config.MinMinutes {
		applied = def
	} else {
		applied = util.Clamp(value, config.MinMinutes, max)
	}
	if applied != value {
		*errs = append(*errs, &ConfigError{Field: field, Value: value, Applied: applied})
	}
	return applied
}

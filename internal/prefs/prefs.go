package prefs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/akyairhashvil/pomo/internal/util"
)

// Load reads the session config from store. Each field is resolved on its
// own: a missing key keeps the default, a garbage value falls back to the
// default and out-of-range values are clamped. The returned config is
// always usable; the error describes what was recovered.
func Load(store Store) (models.SessionConfig, error) {
	cfg := timer.DefaultConfig()
	if store == nil {
		return cfg, ErrPersistenceUnavailable
	}

	var errs []error
	cfg.FocusMinutes = loadMinutes(store, config.KeyFocusMinutes, cfg.FocusMinutes, &errs)
	cfg.ShortBreakMinutes = loadMinutes(store, config.KeyShortBreakMinutes, cfg.ShortBreakMinutes, &errs)
	cfg.LongBreakMinutes = loadMinutes(store, config.KeyLongBreakMinutes, cfg.LongBreakMinutes, &errs)
	if raw, ok := store.GetSetting(config.KeyAutoAdvance); ok {
		if v, parsed := util.ParseBool(raw); parsed {
			cfg.AutoAdvance = v
		} else {
			errs = append(errs, fmt.Errorf("%s: %q is not a boolean: %w", config.KeyAutoAdvance, raw, timer.ErrInvalidConfig))
		}
	}

	normalized, err := timer.Normalize(cfg)
	if err != nil {
		errs = append(errs, err)
	}
	return normalized, errors.Join(errs...)
}

func loadMinutes(store Store, key string, def int, errs *[]error) int {
	raw, ok := store.GetSetting(key)
	if !ok {
		return def
	}
	v, parsed := util.ParseInt(raw)
	if !parsed {
		*errs = append(*errs, fmt.Errorf("%s: %q is not a number: %w", key, raw, timer.ErrInvalidConfig))
		return def
	}
	return v
}

// Save writes every config field. All fields are attempted even if one
// write fails.
func Save(store Store, cfg models.SessionConfig) error {
	if store == nil {
		return ErrPersistenceUnavailable
	}
	return errors.Join(
		store.SetSetting(config.KeyFocusMinutes, strconv.Itoa(cfg.FocusMinutes)),
		store.SetSetting(config.KeyShortBreakMinutes, strconv.Itoa(cfg.ShortBreakMinutes)),
		store.SetSetting(config.KeyLongBreakMinutes, strconv.Itoa(cfg.LongBreakMinutes)),
		store.SetSetting(config.KeyAutoAdvance, util.BoolToString(cfg.AutoAdvance)),
	)
}

// LoadCycles returns the persisted completed cycle count, 0 when missing
// or unreadable.
func LoadCycles(store Store) int {
	if store == nil {
		return 0
	}
	raw, ok := store.GetSetting(config.KeyCompletedCycles)
	if !ok {
		return 0
	}
	v, parsed := util.ParseInt(raw)
	if !parsed || v < 0 {
		return 0
	}
	return v
}

func SaveCycles(store Store, n int) error {
	if store == nil {
		return ErrPersistenceUnavailable
	}
	return store.SetSetting(config.KeyCompletedCycles, strconv.Itoa(n))
}

// ResetCycles clears the completed cycle count, removing the key when the
// store supports it.
func ResetCycles(store Store) error {
	if store == nil {
		return ErrPersistenceUnavailable
	}
	if r, ok := store.(Remover); ok {
		return r.DeleteSetting(config.KeyCompletedCycles)
	}
	return SaveCycles(store, 0)
}

// LoadTheme returns the persisted theme name or the default one.
func LoadTheme(store Store) string {
	if store == nil {
		return config.DefaultTheme
	}
	raw, ok := store.GetSetting(config.KeyTheme)
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" {
		return config.DefaultTheme
	}
	return raw
}

func SaveTheme(store Store, name string) error {
	if store == nil {
		return ErrPersistenceUnavailable
	}
	return store.SetSetting(config.KeyTheme, name)
}

// NewSession builds a controller from the persisted config and cycle
// count and binds it back to store. The error is informational.
func NewSession(store Store, clock timer.Clock) (*timer.Controller, error) {
	cfg, err := Load(store)
	ctrl := timer.NewController(cfg, clock)
	ctrl.SetCompletedCycles(LoadCycles(store))
	Bind(ctrl, store)
	return ctrl, err
}

// Bind persists the cycle count whenever a countdown completes. Write
// failures are logged and ignored.
func Bind(ctrl *timer.Controller, store Store) {
	if ctrl == nil || store == nil {
		return
	}
	ctrl.OnCompleted(func(ev models.CompletedEvent) {
		util.LogError("save completed cycles", SaveCycles(store, ev.CompletedCycles))
	})
}

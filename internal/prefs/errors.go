package prefs

import "errors"

// ErrPersistenceUnavailable reports that no store was available and the
// in-memory defaults are in use.
var ErrPersistenceUnavailable = errors.New("persistence unavailable")

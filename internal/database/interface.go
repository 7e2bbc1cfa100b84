package database

import "github.com/akyairhashvil/pomo/internal/prefs"

var (
	_ prefs.Store   = (*Database)(nil)
	_ prefs.Remover = (*Database)(nil)
	_ prefs.Locator = (*Database)(nil)
)

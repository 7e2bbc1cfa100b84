package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/prefs"
	"github.com/akyairhashvil/pomo/internal/util"
)

// openStore opens the settings store named by kind. path overrides the
// default location in the data dir. The returned close func is never nil.
func openStore(ctx context.Context, kind, path string) (prefs.Store, func() error, error) {
	noop := func() error { return nil }
	switch kind {
	case config.StoreMemory:
		return prefs.NewMemoryStore(), noop, nil
	case config.StoreYAML:
		path, err := resolvePath(path, config.SettingsFileName)
		if err != nil {
			return nil, noop, err
		}
		store, err := prefs.OpenYAML(path)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case config.StoreSQLite, "":
		path, err := resolvePath(path, config.DBFileName)
		if err != nil {
			return nil, noop, err
		}
		db, err := database.Open(ctx, path)
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	}
	return nil, noop, checkStoreKind(kind)
}

var errUnknownStore = errors.New("unknown store")

func checkStoreKind(kind string) error {
	switch kind {
	case config.StoreSQLite, config.StoreYAML, config.StoreMemory, "":
		return nil
	}
	return fmt.Errorf("%w %q (want %s, %s or %s)", errUnknownStore, kind, config.StoreSQLite, config.StoreYAML, config.StoreMemory)
}

// storeLocation describes where store keeps its data.
func storeLocation(store prefs.Store) string {
	if l, ok := store.(prefs.Locator); ok {
		return l.Path()
	}
	return "(memory, not persisted)"
}

func resolvePath(path, name string) (string, error) {
	if path != "" {
		return util.ExpandHome(path), nil
	}
	p, err := util.DataFile(config.AppName, name)
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return p, nil
}

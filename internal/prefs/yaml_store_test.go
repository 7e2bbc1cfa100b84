package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
)

func TestYAMLStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	store, err := OpenYAML(path)
	if err != nil {
		t.Fatalf("OpenYAML failed: %v", err)
	}
	if _, ok := store.GetSetting(config.KeyTheme); ok {
		t.Fatalf("expected empty store")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file to be created lazily")
	}
}

func TestYAMLStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := OpenYAML(path)
	if err != nil {
		t.Fatalf("OpenYAML failed: %v", err)
	}
	cfg := models.SessionConfig{FocusMinutes: 40, ShortBreakMinutes: 8, LongBreakMinutes: 25}
	if err := Save(store, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.Contains(string(data), "focus_minutes: \"40\"") {
		t.Fatalf("unexpected yaml:\n%s", data)
	}

	reopened, err := OpenYAML(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := Load(reopened)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != cfg {
		t.Fatalf("Load = %+v want %+v", got, cfg)
	}
}

func TestYAMLStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("focus_minutes: [oops"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := OpenYAML(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestYAMLStoreFailedWriteKeepsMemoryInSync(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := OpenYAML(path)
	if err != nil {
		t.Fatalf("OpenYAML failed: %v", err)
	}
	if err := store.SetSetting(config.KeyTheme, "mono"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	// A directory in place of the file makes every later write fail.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	if err := store.SetSetting(config.KeyTheme, "dracula"); err == nil {
		t.Fatalf("expected write error")
	}
	if v, _ := store.GetSetting(config.KeyTheme); v != "mono" {
		t.Fatalf("theme = %q want previous value mono", v)
	}
	if err := store.SetSetting(config.KeyFocusMinutes, "30"); err == nil {
		t.Fatalf("expected write error")
	}
	if _, ok := store.GetSetting(config.KeyFocusMinutes); ok {
		t.Fatalf("expected failed insert to be rolled back")
	}
	if err := store.DeleteSetting(config.KeyTheme); err == nil {
		t.Fatalf("expected delete error")
	}
	if v, _ := store.GetSetting(config.KeyTheme); v != "mono" {
		t.Fatalf("theme = %q want mono after failed delete", v)
	}
}

func TestYAMLStoreDeleteSetting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	store, err := OpenYAML(path)
	if err != nil {
		t.Fatalf("OpenYAML failed: %v", err)
	}
	if store.Path() != path {
		t.Fatalf("Path() = %q want %q", store.Path(), path)
	}
	_ = store.SetSetting(config.KeyCompletedCycles, "4")
	if err := store.DeleteSetting(config.KeyCompletedCycles); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if err := store.DeleteSetting("missing"); err != nil {
		t.Fatalf("DeleteSetting on missing key failed: %v", err)
	}

	reopened, err := OpenYAML(path)
	if err != nil {
		t.Fatalf("OpenYAML failed: %v", err)
	}
	if _, ok := reopened.GetSetting(config.KeyCompletedCycles); ok {
		t.Fatalf("expected deleted key to stay deleted on disk")
	}
}

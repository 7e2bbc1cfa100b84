package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirHonoursXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_DATA_HOME", base)
	if got := DataDir("pomo"); got != filepath.Join(base, "pomo") {
		t.Fatalf("DataDir = %q", got)
	}
	path, err := DataFile("pomo", "pomo.db")
	if err != nil {
		t.Fatalf("DataFile failed: %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected data dir to exist: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home dir")
	}
	if got := ExpandHome("~/x.db"); got != filepath.Join(home, "x.db") {
		t.Fatalf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Fatalf("ExpandHome changed absolute path: %q", got)
	}
}

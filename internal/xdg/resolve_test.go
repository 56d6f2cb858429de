package xdg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smykla-skalski/chatnotify/internal/xdg"
)

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()

	xdgPath := filepath.Join(dir, "xdg", "chatnotify.json")
	gamePath := xdg.GameConfigFile(filepath.Join(dir, "game"))

	t.Run("neither exists returns XDG", func(t *testing.T) {
		got := xdg.ResolveFile(xdgPath, gamePath)
		if got != xdgPath {
			t.Errorf("ResolveFile() = %q, want %q", got, xdgPath)
		}
	})

	t.Run("fallback exists returns fallback", func(t *testing.T) {
		if err := os.MkdirAll(filepath.Dir(gamePath), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(gamePath, []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}

		got := xdg.ResolveFile(xdgPath, gamePath)
		if got != gamePath {
			t.Errorf("ResolveFile() = %q, want %q", got, gamePath)
		}
	})

	t.Run("both exist returns XDG", func(t *testing.T) {
		if err := os.MkdirAll(filepath.Dir(xdgPath), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(xdgPath, []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}

		got := xdg.ResolveFile(xdgPath, gamePath)
		if got != xdgPath {
			t.Errorf("ResolveFile() = %q, want %q", got, xdgPath)
		}
	})

	t.Run("empty fallback is ignored", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.json")

		got := xdg.ResolveFile(missing, "")
		if got != missing {
			t.Errorf("ResolveFile() = %q, want %q", got, missing)
		}
	})
}

func TestGameConfigFile(t *testing.T) {
	got := xdg.GameConfigFile("/games/minecraft")
	want := filepath.Join("/games/minecraft", "config", "chatnotify.json")

	if got != want {
		t.Errorf("GameConfigFile() = %q, want %q", got, want)
	}
}

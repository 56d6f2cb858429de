package xdg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smykla-skalski/chatnotify/internal/xdg"
)

func TestConfigHome(t *testing.T) {
	t.Run("respects XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")

		got := xdg.ConfigHome()
		if got != "/custom/config" {
			t.Errorf("ConfigHome() = %q, want /custom/config", got)
		}
	})

	t.Run("defaults to ~/.config", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		got := xdg.ConfigHome()
		home, _ := os.UserHomeDir()
		want := filepath.Join(home, ".config")

		if got != want {
			t.Errorf("ConfigHome() = %q, want %q", got, want)
		}
	})
}

func TestStateHome(t *testing.T) {
	t.Run("respects XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")

		got := xdg.StateHome()
		if got != "/custom/state" {
			t.Errorf("StateHome() = %q, want /custom/state", got)
		}
	})

	t.Run("defaults to ~/.local/state", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")

		got := xdg.StateHome()
		home, _ := os.UserHomeDir()
		want := filepath.Join(home, ".local", "state")

		if got != want {
			t.Errorf("StateHome() = %q, want %q", got, want)
		}
	})
}

func TestFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_STATE_HOME", "/state")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"ConfigDir", xdg.ConfigDir(), "/cfg/chatnotify"},
		{"StateDir", xdg.StateDir(), "/state/chatnotify"},
		{"ConfigFile", xdg.ConfigFile(), "/cfg/chatnotify/chatnotify.json"},
		{"SettingsFile", xdg.SettingsFile(), "/cfg/chatnotify/settings.toml"},
		{"LogFile", xdg.LogFile(), "/state/chatnotify/chatnotify.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != filepath.FromSlash(tt.want) {
				t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"tilde only", "~", home, false},
		{"tilde slash", "~/notes", filepath.Join(home, "notes"), false},
		{"absolute", "/tmp/x", "/tmp/x", false},
		{"empty", "", "", false},
		{"tilde user", "~other", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := xdg.ExpandPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}

			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := xdg.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}

	if !info.IsDir() {
		t.Errorf("%s is not a directory", dir)
	}
}

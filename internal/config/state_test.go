package config

import (
	"path/filepath"
	"testing"
)

func TestLoadStateMissingFileIsDefault(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "state.toml"))
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if state.Version != StateVersion {
		t.Errorf("expected version %d, got %d", StateVersion, state.Version)
	}
	if state.ActiveProject != "" {
		t.Errorf("expected no active project, got %q", state.ActiveProject)
	}
}

func TestSaveLoadStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	if err := SaveState(path, &State{ActiveProject: "my-novel"}); err != nil {
		t.Fatalf("SaveState failed: %v", err)
	}

	state, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState failed: %v", err)
	}
	if state.ActiveProject != "my-novel" {
		t.Errorf("expected my-novel, got %q", state.ActiveProject)
	}
	if state.Version != StateVersion {
		t.Errorf("expected version %d, got %d", StateVersion, state.Version)
	}
}

func TestResolveStatePathPrecedence(t *testing.T) {
	t.Run("explicit flag wins", func(t *testing.T) {
		got := ResolveStatePath("/tmp/explicit.toml", "/etc/novelkit/config.toml", &Config{StateFile: "other.toml"})
		if got != "/tmp/explicit.toml" {
			t.Errorf("expected explicit path, got %s", got)
		}
	})

	t.Run("config relative state_file resolves against config dir", func(t *testing.T) {
		got := ResolveStatePath("", "/etc/novelkit/config.toml", &Config{StateFile: "sub/state.toml"})
		if got != filepath.Join("/etc/novelkit", "sub", "state.toml") {
			t.Errorf("unexpected path %s", got)
		}
	})

	t.Run("default is sibling state.toml", func(t *testing.T) {
		got := ResolveStatePath("", "/etc/novelkit/config.toml", &Config{})
		if got != filepath.Join("/etc/novelkit", "state.toml") {
			t.Errorf("unexpected path %s", got)
		}
	})
}

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := &Config{}
	cfg.RegisterProject("my-novel", "/srv/novels/my-novel")
	cfg.DefaultProject = "my-novel"
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.DefaultProject != "my-novel" {
		t.Errorf("expected default project my-novel, got %q", loaded.DefaultProject)
	}
	root, err := loaded.GetProjectPath("my-novel")
	if err != nil {
		t.Fatalf("GetProjectPath failed: %v", err)
	}
	if root != "/srv/novels/my-novel" {
		t.Errorf("unexpected project path %s", root)
	}
}

func TestLoadFromMissingFileIsEmptyConfig(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if len(cfg.Projects) != 0 || cfg.DefaultProject != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

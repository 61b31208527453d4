package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/yansilmi/novel-kit/internal/atomicfile"
)

type persistedConfig struct {
	DefaultProject *string           `toml:"default_project,omitempty"`
	Projects       map[string]string `toml:"projects,omitempty"`
	Editor         *string           `toml:"editor,omitempty"`
	StateFile      *string           `toml:"state_file,omitempty"`
}

func nonEmptyPtr(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Save writes the global config to the default config path.
func Save(cfg *Config) error {
	return SaveTo(DefaultPath(), cfg)
}

// SaveTo writes the global config to a specific path atomically.
func SaveTo(path string, cfg *Config) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("config path is required")
	}
	if cfg == nil {
		cfg = &Config{}
	}

	out := persistedConfig{
		DefaultProject: nonEmptyPtr(cfg.DefaultProject),
		Editor:         nonEmptyPtr(cfg.Editor),
		StateFile:      nonEmptyPtr(cfg.StateFile),
	}
	if len(cfg.Projects) > 0 {
		out.Projects = cfg.Projects
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// Package config manages machine-local configuration and runtime state for
// the nvk CLI. Per-project settings live in the project itself (novel.yaml);
// this package only covers what belongs to the machine, not the project.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the global configuration loaded from config.toml.
type Config struct {
	// DefaultProject is the name of the default project (from Projects).
	DefaultProject string `toml:"default_project"`

	// Projects maps project names to their root paths.
	Projects map[string]string `toml:"projects"`

	// Editor is the editor used for opening files (defaults to $EDITOR).
	Editor string `toml:"editor"`

	// StateFile optionally relocates state.toml (relative to the config dir
	// when not absolute).
	StateFile string `toml:"state_file"`
}

// DefaultPath returns the default config file location
// (~/.config/novelkit/config.toml, respecting XDG on Linux).
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "config.toml"
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "novelkit", "config.toml")
}

// Load reads the config from the default path.
// Returns an empty config when the file does not exist.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the config from a specific path.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// GetProjectPath returns the root path for a named project.
// An empty name falls back to the default project.
func (c *Config) GetProjectPath(name string) (string, error) {
	if name == "" {
		name = c.DefaultProject
	}
	if name == "" {
		return "", fmt.Errorf("no project name given and no default_project configured")
	}
	path, ok := c.Projects[name]
	if !ok {
		return "", fmt.Errorf("project %q not found in config", name)
	}
	return path, nil
}

// RegisterProject records a project name/path pair, creating the map as needed.
func (c *Config) RegisterProject(name, path string) {
	if c.Projects == nil {
		c.Projects = make(map[string]string)
	}
	c.Projects[name] = path
	if c.DefaultProject == "" {
		c.DefaultProject = name
	}
}

// EditorCommand returns the configured editor, falling back to $EDITOR.
func (c *Config) EditorCommand() string {
	if strings.TrimSpace(c.Editor) != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}

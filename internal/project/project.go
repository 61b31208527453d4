// Package project represents an opened novel-kit project: its root directory,
// its optional novel.yaml configuration, and the canonical locations of every
// collection the tool manages.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yansilmi/novel-kit/internal/paths"
)

// ConfigFileName is the optional per-project configuration file.
const ConfigFileName = "novel.yaml"

// Config is per-project configuration from novel.yaml.
// Every field is optional; defaults reproduce the standard layout.
type Config struct {
	// Directories overrides collection directories, keyed by kind
	// (character, faction, main-plot, side-plot, foreshadow) plus "content"
	// for the chapter content directory.
	Directories map[string]string `yaml:"directories,omitempty"`

	// TrashDir is where soft-deleted entities go (default ".novelkit/trash").
	TrashDir string `yaml:"trash_dir,omitempty"`
}

// Project is an opened project rooted at Root.
type Project struct {
	Root   string
	Config *Config
}

// Find walks up from start to locate the project root and opens it.
func Find(start string) (*Project, error) {
	root, err := paths.FindRoot(start)
	if err != nil {
		return nil, err
	}
	return Open(root)
}

// Open opens the project at root, loading novel.yaml when present.
func Open(root string) (*Project, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, err
	}
	return &Project{Root: root, Config: cfg}, nil
}

func loadConfig(root string) (*Config, error) {
	configPath := filepath.Join(root, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read project config %s: %w", configPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse project config %s: %w", configPath, err)
	}
	return &cfg, nil
}

// MetaDir returns the absolute path of the .novelkit directory.
func (p *Project) MetaDir() string {
	return filepath.Join(p.Root, paths.MetaDirName)
}

// MemoryPath returns the path of the project state record.
func (p *Project) MemoryPath() string {
	return filepath.Join(p.MetaDir(), "memory", "config.json")
}

// TemplatesDir returns the directory holding placeholder templates.
func (p *Project) TemplatesDir() string {
	return filepath.Join(p.MetaDir(), "templates")
}

// WritersDir returns the directory holding writer profile bundles.
func (p *Project) WritersDir() string {
	return filepath.Join(p.MetaDir(), "writers")
}

// ChapterBundlesDir returns the directory holding chapter metadata bundles.
func (p *Project) ChapterBundlesDir() string {
	return filepath.Join(p.MetaDir(), "chapters")
}

// ChapterContentDir returns the directory holding user-facing chapter content.
func (p *Project) ChapterContentDir() string {
	return p.CollectionDir("content", "chapters")
}

// StatsDBPath returns the path of the writing statistics database.
func (p *Project) StatsDBPath() string {
	return filepath.Join(p.MetaDir(), "memory", "stats.db")
}

// TrashDir returns the soft-delete destination directory.
func (p *Project) TrashDir() string {
	dir := ".novelkit/trash"
	if p.Config != nil && p.Config.TrashDir != "" {
		dir = p.Config.TrashDir
	}
	return filepath.Join(p.Root, filepath.FromSlash(dir))
}

// CollectionDir resolves a collection directory for a kind, honoring
// novel.yaml overrides.
func (p *Project) CollectionDir(key, defaultDir string) string {
	dir := defaultDir
	if p.Config != nil {
		if override, ok := p.Config.Directories[key]; ok && override != "" {
			dir = override
		}
	}
	return filepath.Join(p.Root, filepath.FromSlash(dir))
}

// Rel returns path relative to the project root, with forward slashes.
func (p *Project) Rel(path string) string {
	return paths.Rel(p.Root, path)
}

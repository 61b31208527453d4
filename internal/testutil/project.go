// Package testutil provides reusable test fixtures for novel-kit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yansilmi/novel-kit/internal/memory"
	"github.com/yansilmi/novel-kit/internal/project"
)

// TestProject represents a temporary novel project for testing.
type TestProject struct {
	Path string

	t          *testing.T
	files      map[string]string
	noMemory   bool
	projectCfg string
}

// NewTestProject creates a new test project builder.
// Call Build() to create the actual project directory.
func NewTestProject(t *testing.T) *TestProject {
	t.Helper()
	return &TestProject{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the project, relative to the project root.
func (p *TestProject) WithFile(path, content string) *TestProject {
	p.files[path] = content
	return p
}

// WithProjectConfig sets the novel.yaml content.
func (p *TestProject) WithProjectConfig(yaml string) *TestProject {
	p.projectCfg = yaml
	return p
}

// WithoutMemory skips creating the memory record, producing an
// uninitialized project.
func (p *TestProject) WithoutMemory() *TestProject {
	p.noMemory = true
	return p
}

// Build creates the project directory and all configured files.
func (p *TestProject) Build() *TestProject {
	p.t.Helper()

	p.Path = p.t.TempDir()

	if err := os.MkdirAll(filepath.Join(p.Path, ".novelkit", "memory"), 0755); err != nil {
		p.t.Fatalf("failed to create metadata directory: %v", err)
	}

	if !p.noMemory {
		memoryPath := filepath.Join(p.Path, ".novelkit", "memory", "config.json")
		if err := memory.Save(memoryPath, &memory.State{}); err != nil {
			p.t.Fatalf("failed to seed memory record: %v", err)
		}
	}

	if p.projectCfg != "" {
		p.writeFile("novel.yaml", p.projectCfg)
	}

	for path, content := range p.files {
		p.writeFile(path, content)
	}

	return p
}

// Open returns the built project through the real loader.
func (p *TestProject) Open() *project.Project {
	p.t.Helper()
	proj, err := project.Open(p.Path)
	if err != nil {
		p.t.Fatalf("failed to open test project: %v", err)
	}
	return proj
}

// writeFile writes a file into the project, creating directories as needed.
func (p *TestProject) writeFile(relPath, content string) {
	p.t.Helper()
	fullPath := filepath.Join(p.Path, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		p.t.Fatalf("failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		p.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file from the project.
func (p *TestProject) ReadFile(relPath string) string {
	p.t.Helper()
	content, err := os.ReadFile(filepath.Join(p.Path, relPath))
	if err != nil {
		p.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(content)
}

// FileExists checks if a file exists in the project.
func (p *TestProject) FileExists(relPath string) bool {
	p.t.Helper()
	_, err := os.Stat(filepath.Join(p.Path, relPath))
	return err == nil
}

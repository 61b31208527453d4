package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindRootWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, MetaDirName), 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "world", "characters")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, err := FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot failed: %v", err)
	}
	if found != root {
		t.Errorf("expected %s, got %s", root, found)
	}
}

func TestFindRootNotAProject(t *testing.T) {
	_, err := FindRoot(t.TempDir())
	if !errors.Is(err, ErrRepoNotFound) {
		t.Errorf("expected ErrRepoNotFound, got %v", err)
	}
}

func TestIsProjectRoot(t *testing.T) {
	dir := t.TempDir()
	if IsProjectRoot(dir) {
		t.Error("bare directory should not be a project root")
	}
	if err := os.MkdirAll(filepath.Join(dir, MetaDirName), 0755); err != nil {
		t.Fatal(err)
	}
	if !IsProjectRoot(dir) {
		t.Error("directory with metadata dir should be a project root")
	}
}

func TestValidateWithinRoot(t *testing.T) {
	root := t.TempDir()

	if err := ValidateWithinRoot(root, filepath.Join(root, "world", "x.md")); err != nil {
		t.Errorf("expected nested path to pass: %v", err)
	}
	if err := ValidateWithinRoot(root, filepath.Join(root, "..", "escape.md")); err == nil {
		t.Error("expected escaping path to fail")
	}
}

func TestRelUsesForwardSlashes(t *testing.T) {
	root := t.TempDir()
	got := Rel(root, filepath.Join(root, "world", "characters", "character-001.md"))
	if got != "world/characters/character-001.md" {
		t.Errorf("unexpected relative path %s", got)
	}
}

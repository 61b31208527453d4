package ident

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNextIDEmptyDir(t *testing.T) {
	dir := t.TempDir()

	id, err := NextID(dir, "character")
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "character-001" {
		t.Errorf("expected character-001, got %s", id)
	}
}

func TestNextIDMissingDir(t *testing.T) {
	id, err := NextID(filepath.Join(t.TempDir(), "does-not-exist"), "faction")
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "faction-001" {
		t.Errorf("expected faction-001, got %s", id)
	}
}

func TestNextIDIncrementsFromMax(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"character-001.md", "character-007.md", "character-003.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	id, err := NextID(dir, "character")
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "character-008" {
		t.Errorf("expected character-008 (max+1), got %s", id)
	}
}

func TestNextIDIgnoresOtherPrefixes(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"faction-009.md", "character-002.md", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	id, err := NextID(dir, "character")
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "character-003" {
		t.Errorf("expected character-003, got %s", id)
	}
}

func TestNextIDNeverReusesAfterRemoval(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"character-001.md", "character-002.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// character-002 trashed: only the max survivor matters, but removing a
	// lower entry must not resurrect its number either.
	if err := os.Remove(filepath.Join(dir, "character-001.md")); err != nil {
		t.Fatal(err)
	}

	id, err := NextID(dir, "character")
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "character-003" {
		t.Errorf("expected character-003, got %s", id)
	}
}

func TestNextIDHandlesBundleDirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "chapter-004"), 0755); err != nil {
		t.Fatal(err)
	}

	id, err := NextID(dir, "chapter")
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "chapter-005" {
		t.Errorf("expected chapter-005, got %s", id)
	}
}

func TestNextIDParsesLeadingZerosAsDecimal(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "character-009.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	id, err := NextID(dir, "character")
	if err != nil {
		t.Fatalf("NextID failed: %v", err)
	}
	if id != "character-010" {
		t.Errorf("expected character-010, got %s", id)
	}
}

func TestFormatPadsBeyondThreeDigits(t *testing.T) {
	if got := Format("chapter", 7); got != "chapter-007" {
		t.Errorf("expected chapter-007, got %s", got)
	}
	if got := Format("chapter", 1234); got != "chapter-1234" {
		t.Errorf("expected chapter-1234, got %s", got)
	}
}

func TestSuffix(t *testing.T) {
	if n, ok := Suffix("character-042", "character"); !ok || n != 42 {
		t.Errorf("expected (42, true), got (%d, %v)", n, ok)
	}
	if _, ok := Suffix("faction-001", "character"); ok {
		t.Error("expected prefix mismatch to fail")
	}
	if _, ok := Suffix("character-abc", "character"); ok {
		t.Error("expected non-numeric suffix to fail")
	}
}

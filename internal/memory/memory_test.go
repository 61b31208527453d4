package memory

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// statePath returns a config.json path whose parent directory exists; Save
// deliberately never creates directories itself.
func statePath(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "memory")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(dir, "config.json")
}

func TestLoadMissingIsNotInitialized(t *testing.T) {
	_, err := Load(statePath(t))
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := statePath(t)

	state := &State{}
	state.SetCurrentChapter("chapter-003", 3)
	state.SetCurrentWriter("writer-002")
	state.AppendChapterCreation("chapter-003", time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	if err := Save(path, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.CurrentChapterID() != "chapter-003" {
		t.Errorf("expected chapter-003, got %s", loaded.CurrentChapterID())
	}
	if loaded.CurrentChapterNumber() != 3 {
		t.Errorf("expected number 3, got %d", loaded.CurrentChapterNumber())
	}
	if loaded.CurrentWriterID() != "writer-002" {
		t.Errorf("expected writer-002, got %s", loaded.CurrentWriterID())
	}
	if len(loaded.History.ChapterCreations) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(loaded.History.ChapterCreations))
	}
	if loaded.History.ChapterCreations[0].CreatedAt != "2026-08-30T12:00:00Z" {
		t.Errorf("unexpected timestamp %s", loaded.History.ChapterCreations[0].CreatedAt)
	}
}

func TestZeroStateAccessors(t *testing.T) {
	state := &State{}
	if state.CurrentChapterID() != "" {
		t.Error("expected empty current chapter")
	}
	if state.CurrentChapterNumber() != 0 {
		t.Error("expected number 0")
	}
	if state.CurrentWriterID() != "" {
		t.Error("expected empty current writer")
	}
	if state.LatestCompletedChapter() != "" {
		t.Error("expected empty latest chapter")
	}
}

func TestLatestCompletedChapterIsLastHistoryEntry(t *testing.T) {
	state := &State{}
	state.AppendChapterCreation("chapter-001", time.Now())
	state.AppendChapterCreation("chapter-002", time.Now())

	if got := state.LatestCompletedChapter(); got != "chapter-002" {
		t.Errorf("expected chapter-002, got %s", got)
	}
}

func TestHistoryIsAppendOnlyAcrossSaves(t *testing.T) {
	path := statePath(t)

	state := &State{}
	state.AppendChapterCreation("chapter-001", time.Now())
	if err := Save(path, state); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	loaded.AppendChapterCreation("chapter-002", time.Now())
	if err := Save(path, loaded); err != nil {
		t.Fatal(err)
	}

	final, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(final.History.ChapterCreations) != 2 {
		t.Errorf("expected 2 history entries, got %d", len(final.History.ChapterCreations))
	}
}

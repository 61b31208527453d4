package stats

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "memory", "stats.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndAggregateSessions(t *testing.T) {
	db := openTestDB(t)

	sessions := []struct {
		chapter string
		action  string
		before  int
		after   int
	}{
		{"chapter-001", "write", 0, 1200},
		{"chapter-001", "polish", 1200, 1200},
		{"chapter-002", "write", 0, 800},
	}
	for _, s := range sessions {
		if err := db.RecordSession(s.chapter, s.action, s.before, s.after); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}

	rows, err := db.ByChapter()
	if err != nil {
		t.Fatalf("ByChapter failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(rows))
	}

	byID := map[string]ChapterStats{}
	for _, row := range rows {
		byID[row.ChapterID] = row
	}
	if got := byID["chapter-001"]; got.Sessions != 2 || got.LatestWords != 1200 {
		t.Errorf("unexpected stats for chapter-001: %+v", got)
	}
	if got := byID["chapter-002"]; got.Sessions != 1 || got.LatestWords != 800 {
		t.Errorf("unexpected stats for chapter-002: %+v", got)
	}
}

func TestByChapterEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.ByChapter()
	if err != nil {
		t.Fatalf("ByChapter failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

package resolver

import (
	"errors"
	"testing"
)

func testEntries() []Entry {
	return []Entry{
		{ID: "character-001", Title: "Alice"},
		{ID: "character-002", Title: "Malicent"},
		{ID: "character-003", Title: "Bob"},
	}
}

func TestResolveExactID(t *testing.T) {
	entry, err := Resolve(testEntries(), "character", "character-003")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if entry.ID != "character-003" {
		t.Errorf("expected character-003, got %s", entry.ID)
	}
}

func TestResolveBareSuffix(t *testing.T) {
	t.Run("padded form", func(t *testing.T) {
		entry, err := Resolve(testEntries(), "character", "2")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if entry.ID != "character-002" {
			t.Errorf("expected character-002, got %s", entry.ID)
		}
	})

	t.Run("literal form", func(t *testing.T) {
		entries := []Entry{{ID: "character-7", Title: "Old Seven"}}
		entry, err := Resolve(entries, "character", "7")
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if entry.ID != "character-7" {
			t.Errorf("expected character-7, got %s", entry.ID)
		}
	})
}

func TestResolveTitleSubstring(t *testing.T) {
	entry, err := Resolve(testEntries(), "character", "BOB")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if entry.ID != "character-003" {
		t.Errorf("expected character-003, got %s", entry.ID)
	}
}

func TestResolveFirstSubstringMatchWins(t *testing.T) {
	// "ali" matches both Alice and Malicent; the earlier entry wins.
	entry, err := Resolve(testEntries(), "character", "ali")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if entry.ID != "character-001" {
		t.Errorf("expected character-001 (first match), got %s", entry.ID)
	}
}

func TestResolveExactIDBeatsTitle(t *testing.T) {
	entries := []Entry{
		{ID: "character-001", Title: "character-002"},
		{ID: "character-002", Title: "Impostor"},
	}
	entry, err := Resolve(entries, "character", "character-002")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if entry.ID != "character-002" {
		t.Errorf("expected id match to beat title match, got %s", entry.ID)
	}
}

func TestResolveEmptyToken(t *testing.T) {
	if _, err := Resolve(testEntries(), "character", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty token, got %v", err)
	}
	if _, err := Resolve(testEntries(), "character", "   "); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for blank token, got %v", err)
	}
}

func TestResolveNoMatch(t *testing.T) {
	if _, err := Resolve(testEntries(), "character", "zz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveEmptyCollection(t *testing.T) {
	if _, err := Resolve(nil, "character", "1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

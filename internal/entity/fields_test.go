package entity

import "testing"

func TestExtractFieldsFromTemplateShape(t *testing.T) {
	doc := []byte(`# Alice

- ID: character-001
- Status: Active
- Created: 2026-08-01
- Updated: 2026-08-31

## Appearance
`)
	fields := ExtractFields(doc)
	if fields.Title != "Alice" {
		t.Errorf("expected title Alice, got %q", fields.Title)
	}
	if fields.Status != "Active" {
		t.Errorf("expected status Active, got %q", fields.Status)
	}
	if fields.Updated != "2026-08-31" {
		t.Errorf("expected updated 2026-08-31, got %q", fields.Updated)
	}
}

func TestExtractFieldsSetextHeading(t *testing.T) {
	doc := []byte("Alice\n=====\n\n- Status: Retired\n")
	fields := ExtractFields(doc)
	if fields.Title != "Alice" {
		t.Errorf("expected setext heading to parse, got %q", fields.Title)
	}
	if fields.Status != "Retired" {
		t.Errorf("expected status Retired, got %q", fields.Status)
	}
}

func TestExtractFieldsBoldLabel(t *testing.T) {
	doc := []byte("# Alice\n\n- **Status**: On Hold\n")
	if fields := ExtractFields(doc); fields.Status != "On Hold" {
		t.Errorf("expected bold label to match, got %q", fields.Status)
	}
}

func TestExtractFieldsDegradesToPlaceholders(t *testing.T) {
	fields := ExtractFields([]byte("just prose, no structure\n"))
	if fields.Title != UnknownField {
		t.Errorf("expected %s title, got %q", UnknownField, fields.Title)
	}
	if fields.Status != UnknownField {
		t.Errorf("expected %s status, got %q", UnknownField, fields.Status)
	}
	if fields.Updated != "" {
		t.Errorf("expected empty updated, got %q", fields.Updated)
	}
}

func TestExtractFieldsFirstStatusWins(t *testing.T) {
	doc := []byte("# X\n\n- Status: First\n- Status: Second\n")
	if fields := ExtractFields(doc); fields.Status != "First" {
		t.Errorf("expected first status line to win, got %q", fields.Status)
	}
}

func TestExtractFieldsEmptyDocument(t *testing.T) {
	fields := ExtractFields(nil)
	if fields.Title != UnknownField || fields.Status != UnknownField {
		t.Errorf("expected placeholders for empty document, got %+v", fields)
	}
}

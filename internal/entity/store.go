package entity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/yansilmi/novel-kit/internal/ident"
	"github.com/yansilmi/novel-kit/internal/project"
	"github.com/yansilmi/novel-kit/internal/resolver"
	"github.com/yansilmi/novel-kit/internal/template"
)

// Summary is one row of a collection listing.
type Summary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Updated string `json:"updated,omitempty"`
	Path    string `json:"path"`
}

// Record is a resolved entity document.
type Record struct {
	ID    string
	Title string
	Path  string
}

// CreateResult reports a newly materialized entity.
type CreateResult struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Path    string `json:"path"`
	RelPath string `json:"file"`
}

// DeleteResult reports where a soft-deleted entity went.
type DeleteResult struct {
	ID        string `json:"id"`
	TrashPath string `json:"trash_path"`
}

// Store creates, lists, locates and soft-deletes entity records for one
// project. It owns all raw document access; callers only see typed records.
type Store struct {
	proj *project.Project
}

// NewStore creates a Store for the given project.
func NewStore(p *project.Project) *Store {
	return &Store{proj: p}
}

// CollectionDir returns the absolute collection directory for a kind.
func (s *Store) CollectionDir(kind Kind) string {
	return s.proj.CollectionDir(kind.DirKey, kind.DefaultDir)
}

// DocPath returns the document path for an id of the given kind.
func (s *Store) DocPath(kind Kind, id string) string {
	dir := s.CollectionDir(kind)
	if kind.Bundle {
		return filepath.Join(dir, id, kind.DocName)
	}
	return filepath.Join(dir, id+".md")
}

// Create allocates the next id for the kind and materializes its document
// from the kind's template (project template or builtin skeleton).
//
// The document is created with O_EXCL: if two racing invocations allocate the
// same id, the second create fails instead of silently clobbering the first.
func (s *Store) Create(kind Kind, title string, tp *template.Provider) (*CreateResult, error) {
	dir := s.CollectionDir(kind)

	id, err := ident.NextID(dir, kind.Prefix)
	if err != nil {
		return nil, err
	}

	docPath := s.DocPath(kind, id)
	if err := os.MkdirAll(filepath.Dir(docPath), 0o755); err != nil {
		return nil, fmt.Errorf("create collection directory: %w", err)
	}

	content := template.Apply(
		tp.LoadOrBuiltin(kind.Template),
		template.NewValues(title, id, "Active"),
	)

	f, err := os.OpenFile(docPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", docPath, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return nil, fmt.Errorf("write %s: %w", docPath, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close %s: %w", docPath, err)
	}

	return &CreateResult{
		ID:      id,
		Title:   title,
		Path:    docPath,
		RelPath: s.proj.Rel(docPath),
	}, nil
}

// List enumerates every document of the kind in directory-iteration order.
// Missing metadata degrades to placeholders; a missing collection directory
// is an empty listing, not an error.
func (s *Store) List(kind Kind) ([]Summary, error) {
	var summaries []Summary
	for _, rec := range s.scan(kind) {
		data, err := os.ReadFile(rec.Path)
		fields := Fields{Title: UnknownField, Status: UnknownField}
		if err == nil {
			fields = ExtractFields(data)
		}
		summaries = append(summaries, Summary{
			ID:      rec.ID,
			Title:   fields.Title,
			Status:  fields.Status,
			Updated: fields.Updated,
			Path:    s.proj.Rel(rec.Path),
		})
	}
	return summaries, nil
}

// Resolve finds the entity matching token per the lookup rules: exact id,
// bare suffix, then case-insensitive title substring.
func (s *Store) Resolve(kind Kind, token string) (*Record, error) {
	records := s.scan(kind)

	entries := make([]resolver.Entry, len(records))
	for i, rec := range records {
		title := ""
		if data, err := os.ReadFile(rec.Path); err == nil {
			if f := ExtractFields(data); f.Title != UnknownField {
				title = f.Title
			}
		}
		entries[i] = resolver.Entry{ID: rec.ID, Title: title}
	}

	entry, err := resolver.Resolve(entries, kind.Prefix, token)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID == entry.ID {
			title := entry.Title
			return &Record{ID: rec.ID, Title: title, Path: rec.Path}, nil
		}
	}
	return nil, resolver.ErrNotFound
}

// Delete soft-deletes the entity matching token: the document (or bundle
// directory) is moved into the project trash under a unique name, so the id
// is retired but the content stays recoverable by hand.
func (s *Store) Delete(kind Kind, token string) (*DeleteResult, error) {
	rec, err := s.Resolve(kind, token)
	if err != nil {
		return nil, err
	}

	trashDir := s.proj.TrashDir()
	if err := os.MkdirAll(trashDir, 0o755); err != nil {
		return nil, fmt.Errorf("create trash directory: %w", err)
	}

	src := rec.Path
	ext := ".md"
	if kind.Bundle {
		// Move the whole bundle directory.
		src = filepath.Dir(rec.Path)
		ext = ""
	}

	dest := filepath.Join(trashDir, trashName(rec.ID, rec.Title, ext))
	if err := os.Rename(src, dest); err != nil {
		return nil, fmt.Errorf("move to trash: %w", err)
	}

	return &DeleteResult{
		ID:        rec.ID,
		TrashPath: s.proj.Rel(dest),
	}, nil
}

// trashName builds a unique trash entry name. Re-deleting an id after it was
// recreated by hand must not overwrite the earlier trash entry.
func trashName(id, title, ext string) string {
	name := id
	if t := slug.Make(title); t != "" {
		name += "-" + t
	}
	stamp := time.Now().Format("20060102-150405")
	short := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return name + "-" + stamp + "-" + short + ext
}

// scan returns the kind's records in directory-iteration order without
// reading document contents.
func (s *Store) scan(kind Kind) []Record {
	dir := s.CollectionDir(kind)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var records []Record
	for _, entry := range entries {
		name := entry.Name()
		if kind.Bundle {
			if !entry.IsDir() {
				continue
			}
			if _, ok := ident.Suffix(name, kind.Prefix); !ok {
				continue
			}
			records = append(records, Record{
				ID:   name,
				Path: filepath.Join(dir, name, kind.DocName),
			})
			continue
		}

		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		id := strings.TrimSuffix(name, ".md")
		if _, ok := ident.Suffix(id, kind.Prefix); !ok {
			continue
		}
		records = append(records, Record{
			ID:   id,
			Path: filepath.Join(dir, name),
		})
	}
	return records
}

// Package memory reads and writes the project state record at
// .novelkit/memory/config.json: the current chapter, the current writer, and
// the append-only chapter creation history.
//
// The record is created once at project bootstrap; for every other operation
// its absence is a fatal precondition failure (ErrNotInitialized), never
// something this package repairs. Accessors are pure reads; all mutation
// happens through explicit Save calls at the command layer.
package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/yansilmi/novel-kit/internal/atomicfile"
)

// ErrNotInitialized indicates the project state record is missing.
var ErrNotInitialized = errors.New("project not initialized (missing .novelkit/memory/config.json)")

// ChapterRef identifies a chapter by id and declared number.
type ChapterRef struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
}

// WriterRef identifies a writer profile.
type WriterRef struct {
	ID string `json:"id"`
}

// CreationEvent is one entry of the chapter creation history.
type CreationEvent struct {
	ChapterID string `json:"chapter_id"`
	CreatedAt string `json:"created_at,omitempty"`
}

// History is the append-only event log kept in the state record.
type History struct {
	ChapterCreations []CreationEvent `json:"chapter_creations"`
}

// State is the persisted project state.
type State struct {
	CurrentChapter ChapterRef `json:"current_chapter"`
	CurrentWriter  WriterRef  `json:"current_writer"`
	History        History    `json:"history"`
}

// Load reads the state record at path.
// A missing file is ErrNotInitialized; the core never creates it.
func Load(path string) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to read project state %s: %w", path, err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse project state %s: %w", path, err)
	}
	return &state, nil
}

// Save writes the state record atomically.
func Save(path string, state *State) error {
	if state == nil {
		return fmt.Errorf("project state is nil")
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project state: %w", err)
	}
	data = append(data, '\n')

	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write project state %s: %w", path, err)
	}
	return nil
}

// CurrentChapterID returns the active chapter id, or "" when none is tracked.
func (s *State) CurrentChapterID() string {
	return s.CurrentChapter.ID
}

// CurrentChapterNumber returns the active chapter number (0 when untracked).
func (s *State) CurrentChapterNumber() int {
	return s.CurrentChapter.Number
}

// CurrentWriterID returns the active writer id, or "" when none is tracked.
func (s *State) CurrentWriterID() string {
	return s.CurrentWriter.ID
}

// LatestCompletedChapter returns the chapter id of the last creation event,
// or "" when the history is empty. Used to recover the working chapter when
// current-chapter tracking goes stale.
func (s *State) LatestCompletedChapter() string {
	events := s.History.ChapterCreations
	if len(events) == 0 {
		return ""
	}
	return events[len(events)-1].ChapterID
}

// SetCurrentChapter updates the tracked chapter. The caller saves.
func (s *State) SetCurrentChapter(id string, number int) {
	s.CurrentChapter = ChapterRef{ID: id, Number: number}
}

// SetCurrentWriter updates the tracked writer. The caller saves.
func (s *State) SetCurrentWriter(id string) {
	s.CurrentWriter = WriterRef{ID: id}
}

// AppendChapterCreation records a chapter creation event. The caller saves.
func (s *State) AppendChapterCreation(chapterID string, at time.Time) {
	s.History.ChapterCreations = append(s.History.ChapterCreations, CreationEvent{
		ChapterID: chapterID,
		CreatedAt: at.Format(time.RFC3339),
	})
}

// Package chapter implements the chapter lifecycle:
//
//	Planned -> Written -> (Reviewed | Polished, non-exclusive) -> Confirmed
//
// A chapter is split across two storage domains: a metadata bundle under
// .novelkit/chapters/<id>/ (plan, review report, polish history) and the
// user-facing content file at chapters/chapter-NNN.md, where NNN comes from
// the declared chapter *number*, not the id suffix. Review and Polish attach
// documents without changing the stored status; Confirmed exists only as a
// report to the caller, never as a field on the chapter.
//
// This package never writes the project state record. Updating the current
// chapter and the creation history after a successful Plan is the command
// layer's responsibility.
package chapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yansilmi/novel-kit/internal/entity"
	"github.com/yansilmi/novel-kit/internal/ident"
	"github.com/yansilmi/novel-kit/internal/project"
	"github.com/yansilmi/novel-kit/internal/resolver"
	"github.com/yansilmi/novel-kit/internal/template"
)

// Prefix is the chapter id prefix.
const Prefix = "chapter"

var (
	// ErrPlanNotFound indicates Write was invoked before Plan.
	ErrPlanNotFound = errors.New("chapter plan not found")

	// ErrChapterNotFound indicates the chapter (or its content file, for
	// operations that require one) does not exist.
	ErrChapterNotFound = errors.New("chapter not found")
)

// Statuses derived from what exists on disk.
const (
	StatusPlanned = "planned"
	StatusWritten = "written"
)

// Manager drives the chapter lifecycle for one project.
type Manager struct {
	proj *project.Project
}

// NewManager creates a Manager for the given project.
func NewManager(p *project.Project) *Manager {
	return &Manager{proj: p}
}

// BundleDir returns the metadata bundle directory for a chapter id.
func (m *Manager) BundleDir(id string) string {
	return filepath.Join(m.proj.ChapterBundlesDir(), id)
}

// PlanPath returns the plan document path for a chapter id.
func (m *Manager) PlanPath(id string) string {
	return filepath.Join(m.BundleDir(id), "plan.md")
}

// ReviewReportPath returns the review report path for a chapter id.
func (m *Manager) ReviewReportPath(id string) string {
	return filepath.Join(m.BundleDir(id), "review-report.md")
}

// PolishHistoryPath returns the polish history path for a chapter id.
func (m *Manager) PolishHistoryPath(id string) string {
	return filepath.Join(m.BundleDir(id), "polish-history.md")
}

// ContentPath returns the content file path for a chapter *number*.
func (m *Manager) ContentPath(number int) string {
	return filepath.Join(m.proj.ChapterContentDir(), fmt.Sprintf("chapter-%03d.md", number))
}

// PlanResult reports a planned chapter.
type PlanResult struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	PlanPath string `json:"plan"`
}

const planSkeleton = `# Chapter [NUMBER] Plan

- ID: [ID]
- Number: [NUMBER]
- Status: [STATUS]
- Created: [DATE]

## Plot Summary

## Characters

## Location

## Key Events

## Foreshadowing

## Connections

`

// Plan allocates the next chapter id and number and creates the metadata
// bundle with a pre-filled plan document. currentNumber is the number tracked
// in project state (0 when absent); the new chapter gets currentNumber+1.
// An already-existing plan file is never overwritten.
func (m *Manager) Plan(currentNumber int) (*PlanResult, error) {
	bundles := m.proj.ChapterBundlesDir()

	id, err := ident.NextID(bundles, Prefix)
	if err != nil {
		return nil, err
	}
	number := currentNumber + 1

	bundleDir := m.BundleDir(id)
	if err := os.MkdirAll(bundleDir, 0o755); err != nil {
		return nil, fmt.Errorf("create chapter bundle: %w", err)
	}

	planPath := m.PlanPath(id)
	if _, err := os.Stat(planPath); os.IsNotExist(err) {
		content := template.Apply(planSkeleton, template.Values{
			ID:     id,
			Status: "Planned",
			Date:   time.Now().Format(template.DateLayout),
		})
		content = strings.ReplaceAll(content, "[NUMBER]", strconv.Itoa(number))
		if err := os.WriteFile(planPath, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write plan: %w", err)
		}
	}

	return &PlanResult{
		ID:       id,
		Number:   number,
		PlanPath: m.proj.Rel(planPath),
	}, nil
}

// WriteResult reports the content file for a chapter.
type WriteResult struct {
	ID          string `json:"id"`
	Number      int    `json:"number"`
	ContentPath string `json:"content"`
	WordCount   int    `json:"word_count"`
	Created     bool   `json:"created"`
}

// Write creates the content file for a chapter if it is absent. The plan must
// already exist; an already-populated content file is left untouched, so
// repeated invocations are safe.
func (m *Manager) Write(id string, tp *template.Provider) (*WriteResult, error) {
	number, err := m.Number(id)
	if err != nil {
		return nil, err
	}

	contentPath := m.ContentPath(number)
	created := false
	if _, err := os.Stat(contentPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(contentPath), 0o755); err != nil {
			return nil, fmt.Errorf("create content directory: %w", err)
		}
		seed := template.Apply(
			tp.LoadOrBuiltin("chapter"),
			template.NewValues(fmt.Sprintf("Chapter %d", number), id, StatusWritten),
		)
		if err := os.WriteFile(contentPath, []byte(seed), 0o644); err != nil {
			return nil, fmt.Errorf("write content: %w", err)
		}
		created = true
	}

	words, err := m.wordCount(contentPath)
	if err != nil {
		return nil, err
	}

	return &WriteResult{
		ID:          id,
		Number:      number,
		ContentPath: m.proj.Rel(contentPath),
		WordCount:   words,
		Created:     created,
	}, nil
}

// ReviewResult reports where the review report for a chapter belongs.
type ReviewResult struct {
	ID         string `json:"id"`
	ReportPath string `json:"report"`
	WordCount  int    `json:"word_count"`
}

// Review computes the review report path for a chapter. The content file must
// exist; the report itself is created by the caller, not here.
func (m *Manager) Review(id string) (*ReviewResult, error) {
	contentPath, err := m.requireContent(id)
	if err != nil {
		return nil, err
	}

	words, err := m.wordCount(contentPath)
	if err != nil {
		return nil, err
	}

	return &ReviewResult{
		ID:         id,
		ReportPath: m.proj.Rel(m.ReviewReportPath(id)),
		WordCount:  words,
	}, nil
}

// PolishResult reports a polish bookkeeping session.
type PolishResult struct {
	ID          string `json:"id"`
	HistoryPath string `json:"history"`
	WordsBefore int    `json:"words_before"`
	WordsAfter  int    `json:"words_after"`
}

// Polish records a polish session in the chapter's polish history. The actual
// rewriting happens externally; this layer only manages the bookkeeping
// document and the measurement points, so before and after are equal here.
func (m *Manager) Polish(id string) (*PolishResult, error) {
	contentPath, err := m.requireContent(id)
	if err != nil {
		return nil, err
	}

	words, err := m.wordCount(contentPath)
	if err != nil {
		return nil, err
	}

	historyPath := m.PolishHistoryPath(id)
	session := fmt.Sprintf("## Session %s\n\n- Words before: %d\n- Words after: %d\n\n",
		time.Now().Format(template.DateLayout), words, words)

	if _, err := os.Stat(historyPath); os.IsNotExist(err) {
		content := "# Polish History\n\n" + session
		if err := os.WriteFile(historyPath, []byte(content), 0o644); err != nil {
			return nil, fmt.Errorf("write polish history: %w", err)
		}
	} else {
		f, err := os.OpenFile(historyPath, os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open polish history: %w", err)
		}
		if _, err := f.WriteString(session); err != nil {
			f.Close()
			return nil, fmt.Errorf("append polish history: %w", err)
		}
		if err := f.Close(); err != nil {
			return nil, err
		}
	}

	return &PolishResult{
		ID:          id,
		HistoryPath: m.proj.Rel(historyPath),
		WordsBefore: words,
		WordsAfter:  words,
	}, nil
}

// ConfirmResult reports a completed chapter.
type ConfirmResult struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	WordCount int    `json:"word_count"`
	Status    string `json:"status"`
}

// Confirm computes the final word count and signals completion. It does not
// touch the project state record; history policy lives at the command layer.
func (m *Manager) Confirm(id string) (*ConfirmResult, error) {
	contentPath, err := m.requireContent(id)
	if err != nil {
		return nil, err
	}

	words, err := m.wordCount(contentPath)
	if err != nil {
		return nil, err
	}

	number, err := m.Number(id)
	if err != nil {
		return nil, err
	}

	return &ConfirmResult{
		ID:        id,
		Number:    number,
		WordCount: words,
		Status:    "completed",
	}, nil
}

// Show returns the best document for a chapter: the user-facing content file
// when it exists, else the plan document.
func (m *Manager) Show(id string) (string, error) {
	if number, err := m.Number(id); err == nil {
		contentPath := m.ContentPath(number)
		if _, err := os.Stat(contentPath); err == nil {
			return contentPath, nil
		}
	}

	planPath := m.PlanPath(id)
	if _, err := os.Stat(planPath); err == nil {
		return planPath, nil
	}
	return "", ErrChapterNotFound
}

// Info is one row of a chapter listing.
type Info struct {
	ID        string `json:"id"`
	Number    int    `json:"number"`
	Status    string `json:"status"`
	WordCount int    `json:"word_count"`
	Current   bool   `json:"current"`
}

// List enumerates every chapter bundle in directory-iteration order.
// Status is derived from the content file's existence, never stored.
func (m *Manager) List(currentID string) ([]Info, error) {
	entries, err := os.ReadDir(m.proj.ChapterBundlesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var infos []Info
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		if _, ok := ident.Suffix(id, Prefix); !ok {
			continue
		}

		number, err := m.Number(id)
		if err != nil {
			// Bundle without a plan; fall back to the id suffix.
			number, _ = ident.Suffix(id, Prefix)
		}

		info := Info{
			ID:      id,
			Number:  number,
			Status:  StatusPlanned,
			Current: id == currentID,
		}
		contentPath := m.ContentPath(number)
		if _, err := os.Stat(contentPath); err == nil {
			info.Status = StatusWritten
			info.WordCount, _ = m.wordCount(contentPath)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Resolve turns a chapter token into an id. An empty token resolves to the
// current chapter from project state; chapters are the intentional exception
// to the empty-token-fails rule.
func (m *Manager) Resolve(token, currentID string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		if currentID == "" {
			return "", ErrChapterNotFound
		}
		return currentID, nil
	}

	entries, err := os.ReadDir(m.proj.ChapterBundlesDir())
	if err != nil {
		return "", ErrChapterNotFound
	}

	var candidates []resolver.Entry
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		if _, ok := ident.Suffix(id, Prefix); !ok {
			continue
		}
		title := ""
		if data, err := os.ReadFile(m.PlanPath(id)); err == nil {
			if f := entity.ExtractFields(data); f.Title != entity.UnknownField {
				title = f.Title
			}
		}
		candidates = append(candidates, resolver.Entry{ID: id, Title: title})
	}

	entry, err := resolver.Resolve(candidates, Prefix, token)
	if err != nil {
		return "", ErrChapterNotFound
	}
	return entry.ID, nil
}

var numberLine = regexp.MustCompile(`(?i)^\s*[-*]?\s*\*{0,2}number\*{0,2}\s*[:：]\s*(\d+)\s*$`)

// Number returns the declared chapter number from the plan document.
// The number may diverge from the id suffix when the project's chapter
// counter was edited out of band, so the plan is authoritative.
func (m *Manager) Number(id string) (int, error) {
	data, err := os.ReadFile(m.PlanPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrPlanNotFound
		}
		return 0, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if match := numberLine.FindStringSubmatch(line); match != nil {
			n, err := strconv.Atoi(match[1])
			if err == nil && n > 0 {
				return n, nil
			}
		}
	}

	// Plan exists but declares no number; fall back to the id suffix.
	if n, ok := ident.Suffix(id, Prefix); ok {
		return n, nil
	}
	return 0, fmt.Errorf("chapter %s: cannot determine number", id)
}

// CountWords counts whitespace-delimited tokens.
func CountWords(data []byte) int {
	return len(strings.Fields(string(data)))
}

func (m *Manager) wordCount(contentPath string) (int, error) {
	data, err := os.ReadFile(contentPath)
	if err != nil {
		return 0, err
	}
	return CountWords(data), nil
}

func (m *Manager) requireContent(id string) (string, error) {
	number, err := m.Number(id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return "", ErrChapterNotFound
		}
		return "", err
	}

	contentPath := m.ContentPath(number)
	if _, err := os.Stat(contentPath); err != nil {
		if os.IsNotExist(err) {
			return "", ErrChapterNotFound
		}
		return "", err
	}
	return contentPath, nil
}

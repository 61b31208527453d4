// Package template loads entity templates and substitutes their placeholder
// tokens.
//
// Templates live under .novelkit/templates/ and carry the literal placeholders
// [NAME], [ID], [STATUS] and [DATE]. When a project has no template for a
// kind, a minimal builtin skeleton with the same placeholders is used instead,
// so document creation never depends on the templates directory existing.
package template

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yansilmi/novel-kit/internal/paths"
)

// DateLayout is the date format written into documents.
const DateLayout = "2006-01-02"

// Values holds the concrete values substituted for placeholders.
type Values struct {
	Name   string
	ID     string
	Status string
	Date   string
}

// NewValues builds Values with Date set to today.
func NewValues(name, id, status string) Values {
	return Values{
		Name:   name,
		ID:     id,
		Status: status,
		Date:   time.Now().Format(DateLayout),
	}
}

// Apply substitutes placeholder tokens in content. Unknown bracketed tokens
// are left as-is for the author to fill in.
func Apply(content string, v Values) string {
	replacer := strings.NewReplacer(
		"[NAME]", v.Name,
		"[ID]", v.ID,
		"[STATUS]", v.Status,
		"[DATE]", v.Date,
	)
	return replacer.Replace(content)
}

// Provider loads named templates from a project's templates directory.
type Provider struct {
	// Root is the project root, used to refuse template paths escaping it.
	Root string
	// Dir is the templates directory.
	Dir string
}

// NewProvider creates a Provider for the given project root and templates dir.
func NewProvider(root, dir string) *Provider {
	return &Provider{Root: root, Dir: dir}
}

// Load reads the template for name (e.g. "character" loads character.md).
// Returns os.ErrNotExist when the project has no such template.
func (p *Provider) Load(name string) (string, error) {
	path := filepath.Join(p.Dir, name+".md")
	if err := paths.ValidateWithinRoot(p.Root, path); err != nil {
		return "", fmt.Errorf("template %q: %w", name, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadOrBuiltin returns the project template for name, falling back to the
// builtin skeleton when the project does not provide one.
func (p *Provider) LoadOrBuiltin(name string) string {
	if p != nil {
		if content, err := p.Load(name); err == nil {
			return content
		}
	}
	return Builtin(name)
}

// Builtin returns the builtin skeleton for a template name. Unknown names get
// a generic skeleton so creation still succeeds.
func Builtin(name string) string {
	if content, ok := builtins[name]; ok {
		return content
	}
	return genericSkeleton
}

const genericSkeleton = `# [NAME]

- ID: [ID]
- Status: [STATUS]
- Created: [DATE]
- Updated: [DATE]

## Notes

`

var builtins = map[string]string{
	"character": `# [NAME]

- ID: [ID]
- Status: [STATUS]
- Created: [DATE]
- Updated: [DATE]

## Appearance

## Personality

## Background

## Relationships

`,
	"faction": `# [NAME]

- ID: [ID]
- Status: [STATUS]
- Created: [DATE]
- Updated: [DATE]

## Overview

## Members

## Goals

`,
	"plot": `# [NAME]

- ID: [ID]
- Status: [STATUS]
- Created: [DATE]
- Updated: [DATE]

## Summary

## Arc

## Resolution

`,
	"writer": `# [NAME]

- ID: [ID]
- Status: [STATUS]
- Created: [DATE]
- Updated: [DATE]

## Voice

## Style Notes

`,
	"chapter": `# [NAME]

`,
}

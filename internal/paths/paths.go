// Package paths locates the project root and validates that file operations
// stay inside it.
//
// A directory is a novel-kit project root when it contains a `.novelkit/`
// directory. Commands may be invoked from anywhere inside the project; the
// root is found by walking up from the starting directory.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// MetaDirName is the project marker directory.
const MetaDirName = ".novelkit"

// ErrRepoNotFound indicates no project marker was found walking up from the
// starting directory.
var ErrRepoNotFound = errors.New("no novel-kit project found (missing .novelkit directory)")

// IsProjectRoot reports whether dir contains the project marker.
func IsProjectRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, MetaDirName))
	return err == nil && info.IsDir()
}

// FindRoot walks up from start looking for the project marker.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		if IsProjectRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrRepoNotFound
		}
		dir = parent
	}
}

// ValidateWithinRoot returns an error when path escapes root.
// Both paths are cleaned and compared lexically; path may not yet exist.
func ValidateWithinRoot(root, path string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.New("path escapes the project root")
	}
	return nil
}

// Rel returns path relative to root with forward slashes, falling back to the
// input when it cannot be made relative.
func Rel(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

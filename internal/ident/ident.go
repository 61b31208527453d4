// Package ident allocates sequential entity identifiers of the form
// `<prefix>-NNN` (zero-padded to three digits).
//
// Allocation is a pure query over a collection directory: NextID never
// reserves anything, so callers must create the file before allocating again.
// Soft-deleted entries live outside the scanned directory, which is what keeps
// retired numbers retired.
package ident

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// NextID scans dir for names matching `prefix-<digits>` and returns
// `prefix-<max+1>`, zero-padded to three digits. A missing or empty directory
// yields `prefix-001`. Numeric suffixes are parsed base 10, so leading zeros
// are never interpreted as octal.
func NextID(dir, prefix string) (string, error) {
	max, err := maxSuffix(dir, prefix)
	if err != nil {
		return "", err
	}
	return Format(prefix, max+1), nil
}

// Format renders an id from a prefix and a number.
func Format(prefix string, n int) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// Suffix extracts the numeric suffix of an id for the given prefix.
func Suffix(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix+"-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func maxSuffix(dir, prefix string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("scan %s: %w", dir, err)
	}

	pattern := regexp.MustCompile("^" + regexp.QuoteMeta(prefix) + `-(\d+)(?:\.[^.]+)?$`)

	max := 0
	for _, entry := range entries {
		m := pattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

// Package resolver turns user-supplied search tokens into entity ids.
//
// Matching order, short-circuiting at the first hit:
//  1. token equals a full existing id exactly
//  2. token is a bare suffix: `prefix-token` (and, for numeric tokens, the
//     zero-padded `prefix-NNN` form) exists
//  3. case-insensitive substring match against document titles, first match
//     in directory-iteration order wins
//
// The resolver is a pure function over the entries handed to it; it never
// touches the filesystem itself.
package resolver

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotFound indicates no entry matched the token.
var ErrNotFound = errors.New("no matching record found")

// Entry is one candidate record: an id plus its declared title (may be empty).
type Entry struct {
	ID    string
	Title string
}

// Resolve finds the entry matching token for a collection with the given id
// prefix. An empty token is ErrNotFound; "current" defaulting for chapters
// and writers is the caller's concern.
func Resolve(entries []Entry, prefix, token string) (*Entry, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNotFound
	}

	// 1. Exact id.
	for i := range entries {
		if entries[i].ID == token {
			return &entries[i], nil
		}
	}

	// 2. Bare suffix. "7" matches character-7 and character-007.
	candidates := []string{prefix + "-" + token}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		candidates = append(candidates, prefix+"-"+padded(n))
	}
	for _, candidate := range candidates {
		for i := range entries {
			if entries[i].ID == candidate {
				return &entries[i], nil
			}
		}
	}

	// 3. Case-insensitive title substring, first hit wins.
	needle := strings.ToLower(token)
	for i := range entries {
		if entries[i].Title == "" {
			continue
		}
		if strings.Contains(strings.ToLower(entries[i].Title), needle) {
			return &entries[i], nil
		}
	}

	return nil, ErrNotFound
}

func padded(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// Package entity implements the file-backed store for domain records:
// characters, factions, the three plot variants, and writer profiles.
//
// Every kind is described by one Kind entry; the store itself is generic over
// that table, so adding a kind is a one-line change rather than another
// near-duplicate code path.
package entity

// Kind describes one entity kind: where its collection lives, how its ids are
// prefixed, and which template seeds new documents.
type Kind struct {
	// Name is the CLI-facing kind name (e.g. "character", "main-plot").
	Name string

	// Prefix is the id prefix; ids are Prefix-NNN.
	Prefix string

	// DirKey is the novel.yaml directories override key.
	DirKey string

	// DefaultDir is the project-relative collection directory.
	DefaultDir string

	// Template is the template base name under .novelkit/templates/.
	Template string

	// Bundle marks kinds stored as one directory per entity (named by id)
	// containing DocName, instead of a flat <id>.md file.
	Bundle bool

	// DocName is the document filename inside a bundle directory.
	DocName string
}

var kinds = []Kind{
	{Name: "character", Prefix: "character", DirKey: "character", DefaultDir: "world/characters", Template: "character"},
	{Name: "faction", Prefix: "faction", DirKey: "faction", DefaultDir: "world/factions", Template: "faction"},
	{Name: "main-plot", Prefix: "main-plot", DirKey: "main-plot", DefaultDir: "plots/main", Template: "plot"},
	{Name: "side-plot", Prefix: "side-plot", DirKey: "side-plot", DefaultDir: "plots/side", Template: "plot"},
	{Name: "foreshadow", Prefix: "foreshadow", DirKey: "foreshadow", DefaultDir: "plots/foreshadowing", Template: "plot"},
	{Name: "writer", Prefix: "writer", DirKey: "writer", DefaultDir: ".novelkit/writers", Template: "writer", Bundle: true, DocName: "writer.md"},
}

// Lookup returns the Kind for a CLI kind name.
func Lookup(name string) (Kind, bool) {
	for _, k := range kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// Kinds returns all registered kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// KindNames returns the CLI names of all registered kinds.
func KindNames() []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name
	}
	return names
}

package object

import (
	"fmt"
	"sort"
)

// TreeBuilder rebuilds a tree copy-on-write: it starts from the
// entries of a base tree (or from nothing), takes insert/remove edits,
// and writes the result as a new tree object. The base tree is never
// touched; unedited entries are shared by hash.
type TreeBuilder struct {
	store   *Store
	entries map[string]TreeEntry
}

// NewTreeBuilder opens a builder over the given base tree. An empty
// base hash starts from an empty tree.
func NewTreeBuilder(s *Store, base Hash) (*TreeBuilder, error) {
	b := &TreeBuilder{
		store:   s,
		entries: make(map[string]TreeEntry),
	}
	if base != "" {
		tr, err := s.ReadTree(base)
		if err != nil {
			return nil, fmt.Errorf("tree builder: read base %s: %w", base, err)
		}
		for _, e := range tr.Entries {
			b.entries[e.Name] = e
		}
	}
	return b, nil
}

// Insert adds or overwrites a key entry pointing at the given blob.
func (b *TreeBuilder) Insert(name string, blob Hash, mode string) {
	if mode == "" {
		mode = TreeModeFile
	}
	b.entries[name] = TreeEntry{
		Name:     name,
		Mode:     mode,
		BlobHash: blob,
	}
}

// Remove drops the named entry. It reports whether the entry existed.
func (b *TreeBuilder) Remove(name string) bool {
	_, ok := b.entries[name]
	delete(b.entries, name)
	return ok
}

// Has reports whether the builder currently holds the named entry.
func (b *TreeBuilder) Has(name string) bool {
	_, ok := b.entries[name]
	return ok
}

// Len returns the number of entries the builder currently holds.
func (b *TreeBuilder) Len() int {
	return len(b.entries)
}

// Write serializes the current entry set, stores it, and returns the
// new tree's hash. The builder stays usable after Write.
func (b *TreeBuilder) Write() (Hash, error) {
	names := make([]string, 0, len(b.entries))
	for name := range b.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	tr := &TreeObj{Entries: make([]TreeEntry, 0, len(names))}
	for _, name := range names {
		tr.Entries = append(tr.Entries, b.entries[name])
	}

	h, err := b.store.WriteTree(tr)
	if err != nil {
		return "", fmt.Errorf("tree builder: write: %w", err)
	}
	return h, nil
}

package repo

import (
	"github.com/keva-store/keva/pkg/object"
)

// Read-only key queries. These are advisory existence checks: internal
// store errors are deliberately swallowed and mapped to a safe default
// (nil / false / empty) instead of propagating. Callers that need the
// failure use the mutating operations, which do return errors.

// Keys lists every key of the current tree, in canonical path order.
// The set is what matters; callers must not assume insertion order.
func (r *Repo) Keys() []string {
	tree, err := r.currentTreeID()
	if err != nil {
		return nil
	}

	// Diffing the current tree against no tree with unmodified
	// entries included reports every entry as a delta; the old-side
	// path of each delta is the key.
	deltas, err := object.DiffTrees(r.Store, tree, "", object.DiffOptions{IncludeUnmodified: true})
	if err != nil {
		return nil
	}

	keys := make([]string, 0, len(deltas))
	for _, d := range deltas {
		keys = append(keys, d.OldPath)
	}
	return keys
}

// Key returns the value stored under name, or nil if the key does not
// exist. Direct shallow lookup against the current tree; no diff.
func (r *Repo) Key(name string) []byte {
	tree, err := r.currentTreeID()
	if err != nil {
		return nil
	}
	tr, err := r.Store.ReadTree(tree)
	if err != nil {
		return nil
	}
	entry, ok := tr.Lookup(name)
	if !ok || entry.IsDir {
		return nil
	}
	blob, err := r.Store.ReadBlob(entry.BlobHash)
	if err != nil {
		return nil
	}
	return blob.Data
}

// HasKey reports whether the current tree has an entry under name.
func (r *Repo) HasKey(name string) bool {
	tree, err := r.currentTreeID()
	if err != nil {
		return false
	}
	tr, err := r.Store.ReadTree(tree)
	if err != nil {
		return false
	}
	_, ok := tr.Lookup(name)
	return ok
}

// HasKeys reports whether at least one key exists.
func (r *Repo) HasKeys() bool {
	return len(r.Keys()) > 0
}

// Len returns the number of keys.
func (r *Repo) Len() int {
	return len(r.Keys())
}

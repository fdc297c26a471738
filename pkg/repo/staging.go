package repo

import (
	"fmt"
	"strings"

	"github.com/keva-store/keva/pkg/object"
)

// Staging: every mutation resolves the current tree, rebuilds it
// copy-on-write through an object.TreeBuilder, and replaces the
// pending hash only after the new tree has been written. A failed
// store write leaves the pending hash exactly where it was.

// validateKey enforces flat key names. Separators are rejected so a
// key can never become a subtree and make enumeration disagree with
// shallow lookup; NUL and newline would corrupt the tree serialization.
func validateKey(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	if strings.ContainsAny(name, "/\x00\n") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, name)
	}
	return nil
}

// InsertKey stages a key with the given value, overwriting any staged
// or committed value under that name.
func (r *Repo) InsertKey(name string, value []byte) error {
	if err := validateKey(name); err != nil {
		return fmt.Errorf("insert key: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	base, err := r.resolveTree(r.pending)
	if err != nil {
		return fmt.Errorf("insert key %q: %w", name, err)
	}

	blobHash, err := r.Store.WriteBlob(&object.Blob{Data: value})
	if err != nil {
		return fmt.Errorf("insert key %q: write blob: %w", name, err)
	}

	b, err := object.NewTreeBuilder(r.Store, base)
	if err != nil {
		return fmt.Errorf("insert key %q: %w", name, err)
	}
	b.Insert(name, blobHash, object.TreeModeFile)

	newTree, err := b.Write()
	if err != nil {
		return fmt.Errorf("insert key %q: %w", name, err)
	}
	r.pending = newTree
	return nil
}

// RemoveKey stages removal of a key. Removing an absent key is a
// no-op: nothing is rebuilt and no error is returned.
func (r *Repo) RemoveKey(name string) error {
	if validateKey(name) != nil {
		// An invalid name cannot exist; nothing to remove.
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	base, err := r.resolveTree(r.pending)
	if err != nil {
		return fmt.Errorf("remove key %q: %w", name, err)
	}

	b, err := object.NewTreeBuilder(r.Store, base)
	if err != nil {
		return fmt.Errorf("remove key %q: %w", name, err)
	}
	if !b.Remove(name) {
		return nil
	}

	newTree, err := b.Write()
	if err != nil {
		return fmt.Errorf("remove key %q: %w", name, err)
	}
	r.pending = newTree
	return nil
}

// ResetKey discards any staged edit to one key, restoring it to its
// last-committed value. A key that was never committed is removed
// outright. The committed content is copied into a fresh blob rather
// than aliased, so the restored entry does not depend on history
// staying reachable.
func (r *Repo) ResetKey(name string) error {
	if validateKey(name) != nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	base, err := r.resolveTree(r.pending)
	if err != nil {
		return fmt.Errorf("reset key %q: %w", name, err)
	}

	b, err := object.NewTreeBuilder(r.Store, base)
	if err != nil {
		return fmt.Errorf("reset key %q: %w", name, err)
	}
	b.Remove(name)

	if r.HasCommits() {
		lastTree, err := r.lastTreeID()
		if err != nil {
			return fmt.Errorf("reset key %q: %w", name, err)
		}
		tr, err := r.Store.ReadTree(lastTree)
		if err != nil {
			return fmt.Errorf("reset key %q: %w", name, err)
		}
		if entry, ok := tr.Lookup(name); ok && !entry.IsDir {
			blob, err := r.Store.ReadBlob(entry.BlobHash)
			if err != nil {
				return fmt.Errorf("reset key %q: read committed blob: %w", name, err)
			}
			fresh, err := r.Store.WriteBlob(&object.Blob{Data: blob.Data})
			if err != nil {
				return fmt.Errorf("reset key %q: rewrite blob: %w", name, err)
			}
			b.Insert(name, fresh, entry.Mode)
		}
	}

	newTree, err := b.Write()
	if err != nil {
		return fmt.Errorf("reset key %q: %w", name, err)
	}
	r.pending = newTree
	return nil
}

// RemoveAll stages removal of every enumerated key.
func (r *Repo) RemoveAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	base, err := r.resolveTree(r.pending)
	if err != nil {
		return fmt.Errorf("remove all: %w", err)
	}

	deltas, err := object.DiffTrees(r.Store, base, "", object.DiffOptions{IncludeUnmodified: true})
	if err != nil {
		return fmt.Errorf("remove all: %w", err)
	}

	b, err := object.NewTreeBuilder(r.Store, base)
	if err != nil {
		return fmt.Errorf("remove all: %w", err)
	}
	for _, d := range deltas {
		// Deltas refer to leaves; removing the top-level segment
		// drops the whole entry either way.
		top, _, _ := strings.Cut(d.OldPath, "/")
		b.Remove(top)
	}

	newTree, err := b.Write()
	if err != nil {
		return fmt.Errorf("remove all: %w", err)
	}
	r.pending = newTree
	return nil
}

// ResetAll clears the pending tree, falling back to the last committed
// state (or the empty tree before the first commit). O(1), no store
// I/O.
func (r *Repo) ResetAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = ""
	return nil
}

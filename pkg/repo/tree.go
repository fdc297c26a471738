package repo

import (
	"fmt"

	"github.com/keva-store/keva/pkg/object"
)

// The tree resolver. Every read and every mutation funnels through
// resolveTree, which implements the one contract the rest of the
// package hangs off:
//
//	pending tree set      → pending tree
//	no commits yet        → canonical empty tree
//	otherwise             → tree of the commit HEAD resolves to

// snapshotPending returns the pending tree hash under the lock. Read
// paths use this; mutating paths hold the lock across the whole
// read-modify-write and access r.pending directly.
func (r *Repo) snapshotPending() object.Hash {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

// resolveTree computes the current tree given a pending hash snapshot.
func (r *Repo) resolveTree(pending object.Hash) (object.Hash, error) {
	if pending != "" {
		return pending, nil
	}
	if !r.HasCommits() {
		return r.emptyTreeID()
	}
	return r.lastTreeID()
}

// currentTreeID resolves the current tree for read paths.
func (r *Repo) currentTreeID() (object.Hash, error) {
	return r.resolveTree(r.snapshotPending())
}

// lastCommitID resolves HEAD to the last commit, or ErrNoCommits when
// HEAD is unborn.
func (r *Repo) lastCommitID() (object.Hash, error) {
	h, err := r.ResolveRef("HEAD")
	if err != nil || h == "" {
		return "", ErrNoCommits
	}
	return h, nil
}

// lastTreeID returns the tree of the last commit.
func (r *Repo) lastTreeID() (object.Hash, error) {
	commitID, err := r.lastCommitID()
	if err != nil {
		return "", err
	}
	c, err := r.Store.ReadCommit(commitID)
	if err != nil {
		return "", fmt.Errorf("last tree: %w", err)
	}
	return c.TreeHash, nil
}

// emptyTreeID writes (or re-derives; the store dedupes) the canonical
// empty tree and returns its hash.
func (r *Repo) emptyTreeID() (object.Hash, error) {
	h, err := r.Store.WriteTree(&object.TreeObj{})
	if err != nil {
		return "", fmt.Errorf("empty tree: %w", err)
	}
	return h, nil
}

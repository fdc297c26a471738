package repo

import (
	"github.com/keva-store/keva/pkg/object"
)

// Change detection: the last committed tree diffed against the current
// tree with default options (unmodified entries excluded). Like the
// other read-only queries, internal errors degrade to false.

// Changed reports whether any key differs from the last commit. Before
// the first commit it reports whether a non-empty pending tree exists.
func (r *Repo) Changed() bool {
	if !r.HasCommits() {
		// No baseline to diff against: changed means some edit was
		// staged and it left at least one key.
		return r.snapshotPending() != "" && r.Len() > 0
	}

	deltas, ok := r.diffAgainstLastCommit()
	return ok && len(deltas) > 0
}

// KeyChanged reports whether the named key differs from the last
// commit. Before the first commit it degrades to HasKey.
func (r *Repo) KeyChanged(name string) bool {
	if !r.HasCommits() {
		return r.HasKey(name)
	}

	deltas, ok := r.diffAgainstLastCommit()
	if !ok {
		return false
	}
	for _, d := range deltas {
		if d.NewPath == name {
			return true
		}
	}
	return false
}

func (r *Repo) diffAgainstLastCommit() ([]object.Delta, bool) {
	oldTree, err := r.lastTreeID()
	if err != nil {
		return nil, false
	}
	newTree, err := r.currentTreeID()
	if err != nil {
		return nil, false
	}
	deltas, err := object.DiffTrees(r.Store, oldTree, newTree, object.DiffOptions{})
	if err != nil {
		return nil, false
	}
	return deltas, true
}

package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/keva-store/keva/pkg/object"
)

// Branches lists all local branch names, sorted. Empty before the
// first commit (and on internal errors, per the read-only query
// contract).
func (r *Repo) Branches() []string {
	headsDir := filepath.Join(r.dir, "refs", "heads")

	entries, err := os.ReadDir(headsDir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".lock") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Branch returns the name of the branch HEAD points at, or "" when
// HEAD is detached, unborn (no commit behind the symbolic target yet),
// or unreadable.
func (r *Repo) Branch() string {
	head, err := r.Head()
	if err != nil {
		return ""
	}
	const prefix = "refs/heads/"
	if !strings.HasPrefix(head, prefix) {
		return ""
	}
	if _, err := r.ResolveRef(head); err != nil {
		return ""
	}
	return strings.TrimPrefix(head, prefix)
}

// HasBranch reports whether a local branch with the given name exists.
func (r *Repo) HasBranch(name string) bool {
	for _, b := range r.Branches() {
		if b == name {
			return true
		}
	}
	return false
}

// HasBranches reports whether at least one branch exists.
func (r *Repo) HasBranches() bool {
	return len(r.Branches()) > 0
}

// CreateBranch creates a new branch pointing at the given target hash.
// Returns ErrBranchExists if the name is taken.
func (r *Repo) CreateBranch(name string, target object.Hash) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("create branch: empty name")
	}
	refName := "refs/heads/" + name
	if err := r.UpdateRefCAS(refName, target, ""); err != nil {
		if errors.Is(err, ErrRefCASMismatch) {
			return fmt.Errorf("create branch %q: %w", name, ErrBranchExists)
		}
		return fmt.Errorf("create branch %q: %w", name, err)
	}
	return nil
}

// SwitchBranch makes name the active branch, creating it at the
// current HEAD commit if it does not exist yet. A branch must point at
// a real commit, so this fails with ErrNoCommits before the first
// commit. Switching to the branch already active is a no-op.
func (r *Repo) SwitchBranch(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("switch branch: empty name")
	}
	if !r.HasBranch(name) {
		head, err := r.lastCommitID()
		if err != nil {
			return fmt.Errorf("switch branch %q: %w", name, err)
		}
		if err := r.CreateBranch(name, head); err != nil && !errors.Is(err, ErrBranchExists) {
			return fmt.Errorf("switch branch: %w", err)
		}
	}
	if err := r.setHead(name); err != nil {
		return fmt.Errorf("switch branch %q: %w", name, err)
	}
	return nil
}

// RemoveBranch deletes a local branch. The active branch cannot be
// removed; switch away first.
func (r *Repo) RemoveBranch(name string) error {
	if r.Branch() == name {
		return fmt.Errorf("remove branch %q: %w", name, ErrIsActiveBranch)
	}

	refPath := filepath.Join(r.dir, "refs", "heads", name)
	oldHash, err := readRefHash(refPath)
	if err != nil {
		return fmt.Errorf("remove branch %q: %w", name, err)
	}

	if err := os.Remove(refPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("remove branch %q: %w", name, ErrBranchNotFound)
		}
		return fmt.Errorf("remove branch %q: %w", name, err)
	}

	// Branch deletion is recorded; a reflog failure here does not
	// undo the removal.
	_ = r.appendReflog("refs/heads/"+name, oldHash, "", "branch deleted")
	return nil
}

package repo

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/keva-store/keva/pkg/object"
)

// CommitSigner signs canonical commit payload bytes and returns an
// encoded signature string to be persisted in CommitObj.Signature.
type CommitSigner func(payload []byte) (string, error)

// Commit snapshots the current tree as a new commit on the active
// branch.
//
// The parent is the commit HEAD resolves to, or none when this is the
// first commit of the repository — history stays strictly linear. The
// very first commit establishes the default branch through HEAD's
// symbolic target. The pending tree is left untouched: it already
// denotes the just-committed content, so resolution stays correct.
func (r *Repo) Commit(message string) (object.Hash, error) {
	return r.CommitWithSigner(message, nil)
}

// CommitWithSigner creates a new commit and signs it when signer is
// provided.
func (r *Repo) CommitWithSigner(message string, signer CommitSigner) (object.Hash, error) {
	treeID, err := r.currentTreeID()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	cfg, err := r.ReadConfig()
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	identity := cfg.Identity()

	var parent object.Hash
	if h, err := r.lastCommitID(); err == nil {
		parent = h
	} else if !errors.Is(err, ErrNoCommits) {
		return "", fmt.Errorf("commit: resolve parent: %w", err)
	}

	now := time.Now().Unix()
	commitObj := &object.CommitObj{
		TreeHash:           treeID,
		Parent:             parent,
		Author:             identity,
		Timestamp:          now,
		Committer:          identity,
		CommitterTimestamp: now,
		Message:            message,
	}
	if signer != nil {
		signature, err := signer(object.CommitSigningPayload(commitObj))
		if err != nil {
			return "", fmt.Errorf("commit: sign commit: %w", err)
		}
		commitObj.Signature = signature
	}

	commitHash, err := r.Store.WriteCommit(commitObj)
	if err != nil {
		return "", fmt.Errorf("commit: write commit: %w", err)
	}

	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("commit: read HEAD: %w", err)
	}

	// head is either a ref path ("refs/heads/main") or a detached
	// hash. The CAS against the parent hash is what refuses a lost
	// update when another handle advanced the branch underneath us.
	if strings.HasPrefix(head, "refs/") {
		if err := r.UpdateRefCAS(head, commitHash, parent); err != nil {
			return "", fmt.Errorf("commit: update ref %q: %w", head, err)
		}
	} else {
		if err := r.UpdateRefCAS("HEAD", commitHash, object.Hash(strings.TrimSpace(head))); err != nil {
			return "", fmt.Errorf("commit: update detached HEAD: %w", err)
		}
	}

	return commitHash, nil
}

// Log walks the commit history starting from the given hash, following
// parent links, returning up to limit commits newest first.
func (r *Repo) Log(start object.Hash, limit int) ([]*object.CommitObj, error) {
	var commits []*object.CommitObj
	current := start

	for current != "" && len(commits) < limit {
		c, err := r.Store.ReadCommit(current)
		if err != nil {
			if errors.Is(err, object.ErrNotFound) {
				break
			}
			return nil, fmt.Errorf("log: read commit %s: %w", current, err)
		}
		commits = append(commits, c)
		current = c.Parent
	}

	return commits, nil
}

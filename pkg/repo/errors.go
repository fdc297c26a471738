package repo

import "errors"

var (
	// ErrNoCommits reports an operation that needs history the
	// repository doesn't have yet (HEAD is unborn).
	ErrNoCommits = errors.New("repository has no commits")

	// ErrIsActiveBranch reports a refused delete of the branch HEAD
	// points at.
	ErrIsActiveBranch = errors.New("branch is the active branch")

	// ErrBranchNotFound reports a branch name with no ref behind it.
	ErrBranchNotFound = errors.New("branch not found")

	// ErrBranchExists reports a create of a branch name already taken.
	ErrBranchExists = errors.New("branch already exists")

	// ErrInvalidKey reports a key name the store refuses: empty,
	// containing a path separator, NUL, or newline, or "." / "..".
	ErrInvalidKey = errors.New("invalid key name")

	// ErrRefCASMismatch reports a ref compare-and-swap that found a
	// different hash than expected.
	ErrRefCASMismatch = errors.New("ref compare-and-swap mismatch")
)

package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/keva-store/keva/pkg/object"
)

// Repo is a handle on a bare key-value store. It owns one object store
// connection and exactly one piece of mutable state: the pending tree
// hash holding uncommitted edits. The pending hash lives only as long
// as the handle; nothing about it is persisted.
//
// A handle is safe for use from multiple goroutines — the internal
// mutex serializes access to the pending hash — but the design assumes
// one logical owner per handle. Independent handles on the same path
// coordinate only through the store's atomic ref updates.
type Repo struct {
	dir   string        // store root (bare: no working tree)
	Store *object.Store // content-addressed object store

	mu      sync.Mutex
	pending object.Hash // uncommitted tree, "" when none
}

// Init creates a new bare store at path: HEAD pointing at an unborn
// refs/heads/main, empty objects/ and refs/heads/ directories, a
// reflog directory, and a default config.toml. It fails if a store
// already exists there.
func Init(path string) (*Repo, error) {
	headPath := filepath.Join(path, "HEAD")
	if _, err := os.Stat(headPath); err == nil {
		return nil, fmt.Errorf("init: repository already exists at %s", path)
	}

	dirs := []string{
		filepath.Join(path, "objects"),
		filepath.Join(path, "refs", "heads"),
		filepath.Join(path, "logs", "refs", "heads"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("init: mkdir %s: %w", d, err)
		}
	}

	if err := os.WriteFile(headPath, []byte("ref: refs/heads/"+DefaultBranch+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("init: write HEAD: %w", err)
	}

	r := &Repo{
		dir:   path,
		Store: object.NewStore(path),
	}
	if err := r.WriteConfig(DefaultConfig()); err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	return r, nil
}

// Open opens an existing bare store at path. Unlike a working-tree
// VCS there is no upward directory search: bare stores are addressed
// explicitly. The store's config is applied to the handle.
func Open(path string) (*Repo, error) {
	info, err := os.Stat(filepath.Join(path, "HEAD"))
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("open: not a keva repository: %s", path)
	}
	if info, err := os.Stat(filepath.Join(path, "objects")); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("open: not a keva repository (no objects dir): %s", path)
	}

	r := &Repo{
		dir:   path,
		Store: object.NewStore(path),
	}
	cfg, err := r.ReadConfig()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	r.Store.SetCompression(cfg.Store.Compression)
	return r, nil
}

// Path returns the store root.
func (r *Repo) Path() string {
	return r.dir
}

// HasCommits reports whether the repository has at least one commit.
// Internal errors degrade to false.
func (r *Repo) HasCommits() bool {
	_, err := r.lastCommitID()
	return err == nil
}

// IsEmpty reports whether the repository has no commits yet.
func (r *Repo) IsEmpty() bool {
	return !r.HasCommits()
}

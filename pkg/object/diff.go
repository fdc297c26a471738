package object

import (
	"fmt"
)

// DiffStatus classifies a single delta between two trees.
type DiffStatus int

const (
	DiffUnmodified DiffStatus = iota // entry identical on both sides
	DiffAdded                        // entry exists only on the to side
	DiffRemoved                      // entry exists only on the from side
	DiffModified                     // entry exists on both sides with different content
)

// Delta is one entry-level difference. Both path fields carry the
// entry path regardless of status, matching what callers of
// tree-to-tree diffs historically relied on (the old-side path of a
// deletion is also its new-side path).
type Delta struct {
	Status  DiffStatus
	OldPath string
	NewPath string
}

// DiffOptions controls delta reporting.
type DiffOptions struct {
	// IncludeUnmodified reports entries that are identical on both
	// sides as DiffUnmodified deltas. This is what turns a diff
	// against "no tree" into a full enumeration.
	IncludeUnmodified bool
}

// DiffTrees computes the structural difference between two trees.
// Either side may be empty (""), meaning "no tree". Deltas come out in
// canonical path order. Subtree entries are descended so deltas always
// refer to leaf entries.
func DiffTrees(s *Store, from, to Hash, opts DiffOptions) ([]Delta, error) {
	var out []Delta
	if err := diffTreeLevel(s, from, to, "", opts, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func diffTreeLevel(s *Store, from, to Hash, prefix string, opts DiffOptions, out *[]Delta) error {
	fromTree, err := loadTreeOrEmpty(s, from)
	if err != nil {
		return err
	}
	toTree, err := loadTreeOrEmpty(s, to)
	if err != nil {
		return err
	}

	// Merge walk over two name-sorted entry lists.
	i, j := 0, 0
	for i < len(fromTree.Entries) || j < len(toTree.Entries) {
		switch {
		case j >= len(toTree.Entries) || (i < len(fromTree.Entries) && fromTree.Entries[i].Name < toTree.Entries[j].Name):
			if err := emitEntry(s, fromTree.Entries[i], prefix, DiffRemoved, out); err != nil {
				return err
			}
			i++
		case i >= len(fromTree.Entries) || toTree.Entries[j].Name < fromTree.Entries[i].Name:
			if err := emitEntry(s, toTree.Entries[j], prefix, DiffAdded, out); err != nil {
				return err
			}
			j++
		default:
			fe, te := fromTree.Entries[i], toTree.Entries[j]
			if err := diffMatchedEntry(s, fe, te, prefix, opts, out); err != nil {
				return err
			}
			i++
			j++
		}
	}
	return nil
}

// diffMatchedEntry handles two entries sharing a name.
func diffMatchedEntry(s *Store, fe, te TreeEntry, prefix string, opts DiffOptions, out *[]Delta) error {
	path := joinPath(prefix, fe.Name)

	// Kind flip: report as remove + add.
	if fe.IsDir != te.IsDir {
		if err := emitEntry(s, fe, prefix, DiffRemoved, out); err != nil {
			return err
		}
		return emitEntry(s, te, prefix, DiffAdded, out)
	}

	if fe.IsDir {
		if fe.SubtreeHash == te.SubtreeHash && !opts.IncludeUnmodified {
			return nil
		}
		return diffTreeLevel(s, fe.SubtreeHash, te.SubtreeHash, path, opts, out)
	}

	if fe.BlobHash == te.BlobHash && fe.Mode == te.Mode {
		if opts.IncludeUnmodified {
			*out = append(*out, Delta{Status: DiffUnmodified, OldPath: path, NewPath: path})
		}
		return nil
	}
	*out = append(*out, Delta{Status: DiffModified, OldPath: path, NewPath: path})
	return nil
}

// emitEntry reports an entry present on a single side, descending into
// subtrees so only leaves appear as deltas.
func emitEntry(s *Store, e TreeEntry, prefix string, status DiffStatus, out *[]Delta) error {
	path := joinPath(prefix, e.Name)
	if !e.IsDir {
		*out = append(*out, Delta{Status: status, OldPath: path, NewPath: path})
		return nil
	}

	sub, err := s.ReadTree(e.SubtreeHash)
	if err != nil {
		return fmt.Errorf("diff: read subtree %s: %w", e.SubtreeHash, err)
	}
	for _, child := range sub.Entries {
		if err := emitEntry(s, child, path, status, out); err != nil {
			return err
		}
	}
	return nil
}

func loadTreeOrEmpty(s *Store, h Hash) (*TreeObj, error) {
	if h == "" {
		return &TreeObj{}, nil
	}
	tr, err := s.ReadTree(h)
	if err != nil {
		return nil, fmt.Errorf("diff: read tree %s: %w", h, err)
	}
	return tr, nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

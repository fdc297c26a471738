package object

import (
	"testing"
)

// helper: build and write a flat tree of name→content pairs.
func buildTree(t *testing.T, s *Store, entries map[string]string) Hash {
	t.Helper()
	b, err := NewTreeBuilder(s, "")
	if err != nil {
		t.Fatalf("NewTreeBuilder: %v", err)
	}
	for name, content := range entries {
		b.Insert(name, writeBlob(t, s, content), TreeModeFile)
	}
	h, err := b.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	return h
}

// Test 1: diffing a tree against no tree with unmodified entries
// included enumerates every entry, in name order.
func TestDiff_Enumeration(t *testing.T) {
	s := NewStore(t.TempDir())
	tree := buildTree(t, s, map[string]string{"zeta": "1", "alpha": "2", "mid": "3"})

	deltas, err := DiffTrees(s, tree, "", DiffOptions{IncludeUnmodified: true})
	if err != nil {
		t.Fatalf("DiffTrees: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(deltas) != len(want) {
		t.Fatalf("deltas = %d, want %d", len(deltas), len(want))
	}
	for i, d := range deltas {
		if d.OldPath != want[i] {
			t.Errorf("deltas[%d].OldPath = %q, want %q", i, d.OldPath, want[i])
		}
		if d.Status != DiffRemoved {
			t.Errorf("deltas[%d].Status = %v, want DiffRemoved", i, d.Status)
		}
	}
}

// Test 2: identical trees produce no deltas with default options.
func TestDiff_IdenticalTrees(t *testing.T) {
	s := NewStore(t.TempDir())
	a := buildTree(t, s, map[string]string{"k": "v"})
	b := buildTree(t, s, map[string]string{"k": "v"})

	deltas, err := DiffTrees(s, a, b, DiffOptions{})
	if err != nil {
		t.Fatalf("DiffTrees: %v", err)
	}
	if len(deltas) != 0 {
		t.Errorf("deltas = %d, want 0", len(deltas))
	}
}

// Test 3: added, removed, and modified entries all surface, and both
// path sides carry the entry path.
func TestDiff_ChangeKinds(t *testing.T) {
	s := NewStore(t.TempDir())
	from := buildTree(t, s, map[string]string{"gone": "x", "same": "s", "edit": "old"})
	to := buildTree(t, s, map[string]string{"new": "y", "same": "s", "edit": "new"})

	deltas, err := DiffTrees(s, from, to, DiffOptions{})
	if err != nil {
		t.Fatalf("DiffTrees: %v", err)
	}

	byPath := make(map[string]Delta)
	for _, d := range deltas {
		byPath[d.NewPath] = d
		if d.OldPath != d.NewPath {
			t.Errorf("path sides differ: old=%q new=%q", d.OldPath, d.NewPath)
		}
	}
	if len(deltas) != 3 {
		t.Fatalf("deltas = %d, want 3", len(deltas))
	}
	if byPath["gone"].Status != DiffRemoved {
		t.Errorf("gone: %v, want DiffRemoved", byPath["gone"].Status)
	}
	if byPath["new"].Status != DiffAdded {
		t.Errorf("new: %v, want DiffAdded", byPath["new"].Status)
	}
	if byPath["edit"].Status != DiffModified {
		t.Errorf("edit: %v, want DiffModified", byPath["edit"].Status)
	}
}

// Test 4: unmodified entries appear only when requested.
func TestDiff_IncludeUnmodified(t *testing.T) {
	s := NewStore(t.TempDir())
	from := buildTree(t, s, map[string]string{"same": "s", "edit": "old"})
	to := buildTree(t, s, map[string]string{"same": "s", "edit": "new"})

	deltas, err := DiffTrees(s, from, to, DiffOptions{IncludeUnmodified: true})
	if err != nil {
		t.Fatalf("DiffTrees: %v", err)
	}
	if len(deltas) != 2 {
		t.Fatalf("deltas = %d, want 2", len(deltas))
	}
	if deltas[0].NewPath != "edit" || deltas[0].Status != DiffModified {
		t.Errorf("deltas[0] = %+v", deltas[0])
	}
	if deltas[1].NewPath != "same" || deltas[1].Status != DiffUnmodified {
		t.Errorf("deltas[1] = %+v", deltas[1])
	}
}

// Test 5: subtree entries are descended, so deltas name leaf paths.
func TestDiff_Subtrees(t *testing.T) {
	s := NewStore(t.TempDir())

	inner := buildTree(t, s, map[string]string{"leaf": "v"})
	b, err := NewTreeBuilder(s, "")
	if err != nil {
		t.Fatalf("NewTreeBuilder: %v", err)
	}
	h, err := b.Write() // empty root
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	outer := &TreeObj{Entries: []TreeEntry{
		{Name: "dir", IsDir: true, Mode: TreeModeDir, SubtreeHash: inner},
	}}
	root, err := s.WriteTree(outer)
	if err != nil {
		t.Fatalf("WriteTree: %v", err)
	}

	deltas, err := DiffTrees(s, root, h, DiffOptions{})
	if err != nil {
		t.Fatalf("DiffTrees: %v", err)
	}
	if len(deltas) != 1 {
		t.Fatalf("deltas = %d, want 1", len(deltas))
	}
	if deltas[0].OldPath != "dir/leaf" || deltas[0].Status != DiffRemoved {
		t.Errorf("delta = %+v, want removed dir/leaf", deltas[0])
	}
}

// Test 6: diffing nothing against nothing is empty, not an error.
func TestDiff_BothEmpty(t *testing.T) {
	s := NewStore(t.TempDir())
	deltas, err := DiffTrees(s, "", "", DiffOptions{IncludeUnmodified: true})
	if err != nil {
		t.Fatalf("DiffTrees: %v", err)
	}
	if len(deltas) != 0 {
		t.Errorf("deltas = %d, want 0", len(deltas))
	}
}

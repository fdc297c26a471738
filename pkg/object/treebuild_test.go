package object

import (
	"testing"
)

// helper: write a blob and return its hash.
func writeBlob(t *testing.T, s *Store, data string) Hash {
	t.Helper()
	h, err := s.WriteBlob(&Blob{Data: []byte(data)})
	if err != nil {
		t.Fatalf("WriteBlob(%q): %v", data, err)
	}
	return h
}

// Test 1: build a tree from nothing.
func TestTreeBuilder_FromEmpty(t *testing.T) {
	s := NewStore(t.TempDir())

	b, err := NewTreeBuilder(s, "")
	if err != nil {
		t.Fatalf("NewTreeBuilder: %v", err)
	}
	b.Insert("foo", writeBlob(t, s, "1"), TreeModeFile)
	b.Insert("bar", writeBlob(t, s, "2"), "")

	h, err := b.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	tr, err := s.ReadTree(h)
	if err != nil {
		t.Fatalf("ReadTree: %v", err)
	}
	if len(tr.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(tr.Entries))
	}
	if tr.Entries[0].Name != "bar" || tr.Entries[1].Name != "foo" {
		t.Errorf("entries not sorted: %q, %q", tr.Entries[0].Name, tr.Entries[1].Name)
	}
	if tr.Entries[0].Mode != TreeModeFile {
		t.Errorf("default mode = %q, want %q", tr.Entries[0].Mode, TreeModeFile)
	}
}

// Test 2: rebuilding from a base shares unedited entries.
func TestTreeBuilder_CopyOnWrite(t *testing.T) {
	s := NewStore(t.TempDir())

	b, err := NewTreeBuilder(s, "")
	if err != nil {
		t.Fatalf("NewTreeBuilder: %v", err)
	}
	keepHash := writeBlob(t, s, "keep")
	b.Insert("keep", keepHash, TreeModeFile)
	b.Insert("edit", writeBlob(t, s, "v1"), TreeModeFile)
	base, err := b.Write()
	if err != nil {
		t.Fatalf("Write base: %v", err)
	}

	b2, err := NewTreeBuilder(s, base)
	if err != nil {
		t.Fatalf("NewTreeBuilder(base): %v", err)
	}
	b2.Insert("edit", writeBlob(t, s, "v2"), TreeModeFile)
	next, err := b2.Write()
	if err != nil {
		t.Fatalf("Write next: %v", err)
	}
	if next == base {
		t.Fatal("edit produced an identical tree")
	}

	// Base is untouched and the unedited entry kept its blob.
	baseTree, err := s.ReadTree(base)
	if err != nil {
		t.Fatalf("ReadTree(base): %v", err)
	}
	if e, ok := baseTree.Lookup("edit"); !ok || readBlobString(t, s, e.BlobHash) != "v1" {
		t.Error("base tree changed under copy-on-write rebuild")
	}
	nextTree, err := s.ReadTree(next)
	if err != nil {
		t.Fatalf("ReadTree(next): %v", err)
	}
	if e, ok := nextTree.Lookup("keep"); !ok || e.BlobHash != keepHash {
		t.Error("unedited entry not shared with base")
	}
}

// Test 3: Remove reports whether the entry existed.
func TestTreeBuilder_Remove(t *testing.T) {
	s := NewStore(t.TempDir())

	b, err := NewTreeBuilder(s, "")
	if err != nil {
		t.Fatalf("NewTreeBuilder: %v", err)
	}
	b.Insert("x", writeBlob(t, s, "x"), TreeModeFile)

	if !b.Remove("x") {
		t.Error("Remove(existing) = false")
	}
	if b.Remove("x") {
		t.Error("Remove(absent) = true")
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
}

// readBlobString reads a blob as a string, failing the test on error.
func readBlobString(t *testing.T, s *Store, h Hash) string {
	t.Helper()
	b, err := s.ReadBlob(h)
	if err != nil {
		t.Fatalf("ReadBlob(%s): %v", h, err)
	}
	return string(b.Data)
}

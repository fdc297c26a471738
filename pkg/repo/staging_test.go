package repo

import (
	"errors"
	"testing"
)

// Test 1: insert then read back, before any commit.
func TestStaging_InsertAndRead(t *testing.T) {
	r := initRepo(t)

	if err := r.InsertKey("greeting", []byte("hello")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if !r.HasKey("greeting") {
		t.Error("HasKey = false")
	}
	if got := r.Key("greeting"); string(got) != "hello" {
		t.Errorf("Key = %q, want %q", got, "hello")
	}
	if got := r.Keys(); len(got) != 1 || got[0] != "greeting" {
		t.Errorf("Keys = %v", got)
	}
}

// Test 2: insert overwrites a staged value under the same name.
func TestStaging_InsertOverwrites(t *testing.T) {
	r := initRepo(t)

	if err := r.InsertKey("k", []byte("v1")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if err := r.InsertKey("k", []byte("v2")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if got := r.Key("k"); string(got) != "v2" {
		t.Errorf("Key = %q, want v2", got)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

// Test 3: invalid key names are rejected at the mutation boundary.
func TestStaging_InvalidKeys(t *testing.T) {
	r := initRepo(t)

	for _, name := range []string{"", "a/b", "a\nb", "a\x00b", ".", ".."} {
		err := r.InsertKey(name, []byte("v"))
		if !errors.Is(err, ErrInvalidKey) {
			t.Errorf("InsertKey(%q): err = %v, want ErrInvalidKey", name, err)
		}
	}
	if r.HasKeys() {
		t.Error("invalid inserts left keys behind")
	}
}

// Test 4: removing an absent key is a no-op, removing a present one
// drops it from the staged view.
func TestStaging_RemoveKey(t *testing.T) {
	r := initRepo(t)

	if err := r.RemoveKey("absent"); err != nil {
		t.Fatalf("RemoveKey(absent): %v", err)
	}

	if err := r.InsertKey("k", []byte("v")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if err := r.RemoveKey("k"); err != nil {
		t.Fatalf("RemoveKey: %v", err)
	}
	if r.HasKey("k") {
		t.Error("HasKey = true after remove")
	}
}

// Test 5: removal staged over a committed key hides it until reset.
func TestStaging_RemoveCommittedKey(t *testing.T) {
	r := initRepo(t)

	if err := r.InsertKey("k", []byte("v")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if _, err := r.Commit("add k"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := r.RemoveKey("k"); err != nil {
		t.Fatalf("RemoveKey: %v", err)
	}
	if r.HasKey("k") {
		t.Error("HasKey = true after staged removal")
	}

	if err := r.ResetAll(); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	if got := r.Key("k"); string(got) != "v" {
		t.Errorf("Key after ResetAll = %q, want v", got)
	}
}

// Test 6: ResetKey restores the last-committed value of one key while
// other staged edits survive.
func TestStaging_ResetKey(t *testing.T) {
	r := initRepo(t)

	if err := r.InsertKey("a", []byte("a1")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if _, err := r.Commit("base"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := r.InsertKey("a", []byte("a2")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if err := r.InsertKey("b", []byte("b1")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}

	if err := r.ResetKey("a"); err != nil {
		t.Fatalf("ResetKey: %v", err)
	}
	if got := r.Key("a"); string(got) != "a1" {
		t.Errorf("Key(a) = %q, want a1", got)
	}
	if got := r.Key("b"); string(got) != "b1" {
		t.Errorf("Key(b) = %q, want b1 (other staged edits must survive)", got)
	}
}

// Test 7: ResetKey on a never-committed key removes it outright.
func TestStaging_ResetUncommittedKey(t *testing.T) {
	r := initRepo(t)

	if err := r.InsertKey("ephemeral", []byte("x")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if err := r.ResetKey("ephemeral"); err != nil {
		t.Fatalf("ResetKey: %v", err)
	}
	if r.HasKey("ephemeral") {
		t.Error("HasKey = true after resetting an uncommitted key")
	}
}

// Test 8: RemoveAll drops every key from the staged view.
func TestStaging_RemoveAll(t *testing.T) {
	r := initRepo(t)

	for _, k := range []string{"one", "two", "three"} {
		if err := r.InsertKey(k, []byte(k)); err != nil {
			t.Fatalf("InsertKey(%s): %v", k, err)
		}
	}
	if err := r.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

// Test 9: ResetAll after uncommitted edits restores exactly the
// last-committed key set.
func TestStaging_ResetAllIdempotence(t *testing.T) {
	r := initRepo(t)

	if err := r.InsertKey("kept", []byte("1")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if _, err := r.Commit("base"); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := r.InsertKey("extra", []byte("2")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if err := r.RemoveKey("kept"); err != nil {
		t.Fatalf("RemoveKey: %v", err)
	}

	if err := r.ResetAll(); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	got := r.Keys()
	if len(got) != 1 || got[0] != "kept" {
		t.Errorf("Keys after ResetAll = %v, want [kept]", got)
	}

	// Without any commit, ResetAll falls back to the empty tree.
	r2 := initRepo(t)
	if err := r2.InsertKey("x", []byte("1")); err != nil {
		t.Fatalf("InsertKey: %v", err)
	}
	if err := r2.ResetAll(); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	if r2.HasKeys() {
		t.Errorf("Keys after ResetAll with no commits = %v, want empty", r2.Keys())
	}
}

// Test 10: enumeration is a set: insertion order does not matter.
func TestStaging_EnumerationOrderIndependence(t *testing.T) {
	ra := initRepo(t)
	rb := initRepo(t)

	for _, k := range []string{"c", "a", "b"} {
		if err := ra.InsertKey(k, []byte(k)); err != nil {
			t.Fatalf("InsertKey: %v", err)
		}
	}
	for _, k := range []string{"b", "c", "a"} {
		if err := rb.InsertKey(k, []byte(k)); err != nil {
			t.Fatalf("InsertKey: %v", err)
		}
	}

	ka, kb := ra.Keys(), rb.Keys()
	if len(ka) != len(kb) {
		t.Fatalf("key counts differ: %v vs %v", ka, kb)
	}
	for i := range ka {
		if ka[i] != kb[i] {
			t.Errorf("key sets differ at %d: %q vs %q", i, ka[i], kb[i])
		}
	}
}

package object

import (
	"errors"
	"testing"
)

// Test 1: Blob round trip through the store.
func TestStore_BlobRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	h, err := s.WriteBlob(&Blob{Data: []byte("hello world")})
	if err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	if len(h) != 64 {
		t.Fatalf("hash length = %d, want 64", len(h))
	}

	b, err := s.ReadBlob(h)
	if err != nil {
		t.Fatalf("ReadBlob: %v", err)
	}
	if string(b.Data) != "hello world" {
		t.Errorf("Data = %q, want %q", b.Data, "hello world")
	}
}

// Test 2: identical content writes to the same hash.
func TestStore_Dedup(t *testing.T) {
	s := NewStore(t.TempDir())

	h1, err := s.WriteBlob(&Blob{Data: []byte("same")})
	if err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	h2, err := s.WriteBlob(&Blob{Data: []byte("same")})
	if err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	if h1 != h2 {
		t.Errorf("hashes differ: %s vs %s", h1, h2)
	}
}

// Test 3: reading a missing object reports ErrNotFound.
func TestStore_ReadMissing(t *testing.T) {
	s := NewStore(t.TempDir())

	_, _, err := s.Read(HashBytes([]byte("nothing here")))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read missing: err = %v, want ErrNotFound", err)
	}
}

// Test 4: reading an object as the wrong type fails.
func TestStore_TypeMismatch(t *testing.T) {
	s := NewStore(t.TempDir())

	h, err := s.WriteBlob(&Blob{Data: []byte("not a tree")})
	if err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	if _, err := s.ReadTree(h); err == nil {
		t.Fatal("ReadTree on a blob should fail")
	}
}

// Test 5: a store written without compression reads back, and a
// compressing store reads objects written uncompressed (magic sniff).
func TestStore_CompressionToggle(t *testing.T) {
	dir := t.TempDir()

	plain := NewStore(dir)
	plain.SetCompression(false)
	h, err := plain.WriteBlob(&Blob{Data: []byte("plain payload")})
	if err != nil {
		t.Fatalf("WriteBlob (uncompressed): %v", err)
	}

	compressed := NewStore(dir)
	b, err := compressed.ReadBlob(h)
	if err != nil {
		t.Fatalf("ReadBlob: %v", err)
	}
	if string(b.Data) != "plain payload" {
		t.Errorf("Data = %q, want %q", b.Data, "plain payload")
	}

	h2, err := compressed.WriteBlob(&Blob{Data: []byte("zstd payload")})
	if err != nil {
		t.Fatalf("WriteBlob (compressed): %v", err)
	}
	b2, err := plain.ReadBlob(h2)
	if err != nil {
		t.Fatalf("ReadBlob (compressed object via plain store): %v", err)
	}
	if string(b2.Data) != "zstd payload" {
		t.Errorf("Data = %q, want %q", b2.Data, "zstd payload")
	}
}

// Test 6: Has reports presence without reading.
func TestStore_Has(t *testing.T) {
	s := NewStore(t.TempDir())

	h, err := s.WriteBlob(&Blob{Data: []byte("x")})
	if err != nil {
		t.Fatalf("WriteBlob: %v", err)
	}
	if !s.Has(h) {
		t.Error("Has(written) = false")
	}
	if s.Has(HashBytes([]byte("absent"))) {
		t.Error("Has(absent) = true")
	}
}

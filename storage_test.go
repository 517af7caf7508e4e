package goalfolio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirStorage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s, err := NewDirStorage(dir)
	if err != nil {
		t.Fatal(err)
	}

	if _, ok, err := s.Get("positions"); ok || err != nil {
		t.Fatalf("unwritten key: ok=%v err=%v, want absent without error", ok, err)
	}

	if err := s.Set("positions", []byte(`{"version":1}`)); err != nil {
		t.Fatal(err)
	}
	data, ok, err := s.Get("positions")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("Get = %s", data)
	}

	// One file per key, with a .json suffix.
	if _, err := os.Stat(filepath.Join(dir, "positions.json")); err != nil {
		t.Errorf("expected positions.json on disk: %v", err)
	}
}

func TestDirStorageOverwrite(t *testing.T) {
	s, err := NewDirStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", []byte("two")); err != nil {
		t.Fatal(err)
	}
	data, _, _ := s.Get("k")
	if string(data) != "two" {
		t.Errorf("Get = %s want two", data)
	}
}

func TestMemStorageCopiesData(t *testing.T) {
	s := NewMemStorage()
	blob := []byte("abc")
	if err := s.Set("k", blob); err != nil {
		t.Fatal(err)
	}
	blob[0] = 'x' // mutating the caller's slice must not leak into the store
	data, ok, _ := s.Get("k")
	if !ok || string(data) != "abc" {
		t.Errorf("Get = %s,%v want abc", data, ok)
	}
}

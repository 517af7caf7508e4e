package goalfolio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Storage is the byte-level key-value persistence collaborator. Get reports
// absence separately from errors, so a caller can tell "never written" from
// "unreadable".
type Storage interface {
	Get(key string) (data []byte, ok bool, err error)
	Set(key string, data []byte) error
}

// DirStorage persists each key as a file in a directory. Writes are atomic,
// so a crash mid-write never leaves a half-written blob behind.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a storage rooted at dir, creating it if needed.
func NewDirStorage(dir string) (*DirStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create storage dir %q: %w", dir, err)
	}
	return &DirStorage{dir: dir}, nil
}

func (s *DirStorage) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s *DirStorage) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cannot read %q: %w", s.path(key), err)
	}
	return data, true, nil
}

func (s *DirStorage) Set(key string, data []byte) error {
	if err := atomic.WriteFile(s.path(key), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("cannot write %q: %w", s.path(key), err)
	}
	return nil
}

// MemStorage is an in-memory Storage, for tests and throwaway sessions.
type MemStorage struct {
	blobs map[string][]byte
}

func NewMemStorage() *MemStorage { return &MemStorage{blobs: make(map[string][]byte)} }

func (s *MemStorage) Get(key string) ([]byte, bool, error) {
	data, ok := s.blobs[key]
	return data, ok, nil
}

func (s *MemStorage) Set(key string, data []byte) error {
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

var slotKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// FileStore keeps each slot in its own file under dir:
//
//	<dir>/<key>.json
//
// Writes go to a temp file first and are renamed into place, so a reader
// sees either the previous or the new value.
type FileStore struct {
	dir string

	mu     sync.Mutex
	closed bool
}

var _ KV = (*FileStore)(nil)

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating slot directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) slotPath(key string) (string, error) {
	if !slotKeyPattern.MatchString(key) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid slot key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Read returns the contents of the slot file for key. A missing file is
// reported as ok == false.
func (s *FileStore) Read(_ context.Context, key string) (string, bool, error) {
	path, err := s.slotPath(key)
	if err != nil {
		return "", false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, ErrClosed
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading slot %s: %w", key, err)
	}
	return string(b), true, nil
}

// Write replaces the slot file for key via a uniquely named temp file.
func (s *FileStore) Write(_ context.Context, key, value string) error {
	path, err := s.slotPath(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	f, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for slot %s: %w", key, err)
	}
	tmp := f.Name()

	if _, err := f.WriteString(value); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing slot %s: %w", key, err)
	}
	return nil
}

// Close marks the store closed; later reads and writes fail with ErrClosed.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore keeps images as plain files under a configured root.
type LocalStore struct {
	root string
}

// NewLocalStore creates the upload root if needed and returns a store
// over it.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", root, err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) path(filename string) string {
	// filenames are generated server-side, but never trust them with
	// path separators anyway
	return filepath.Join(s.root, filepath.Base(filename))
}

func (s *LocalStore) Save(filename string, data []byte) error {
	if err := os.WriteFile(s.path(filename), data, 0o644); err != nil {
		return fmt.Errorf("failed to store image %s: %w", filename, err)
	}
	return nil
}

func (s *LocalStore) Load(filename string) ([]byte, error) {
	data, err := os.ReadFile(s.path(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", filename, err)
	}
	return data, nil
}

func (s *LocalStore) Remove(filename string) error {
	err := os.Remove(s.path(filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove image %s: %w", filename, err)
	}
	return nil
}

// Package storage keeps uploaded car images on local disk. Rows in the
// catalog store only the generated file name, never the binary content.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the image under a fresh unique name and returns that name.
func (s *DiskStore) Save(originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

// Remove deletes a stored image. Best effort: a missing file is not an
// error worth surfacing to the caller.
func (s *DiskStore) Remove(name string) {
	if name == "" {
		return
	}
	_ = os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}

func (s *DiskStore) Path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name))
}

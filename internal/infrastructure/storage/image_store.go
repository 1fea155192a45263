package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/working2003/breedingo/domain"
)

// FileImageStore implements domain.ImageStore on the local filesystem.
// Files are stored under <baseDir>/<folder>/ with a generated unique name
// keeping the original extension.
type FileImageStore struct {
	baseDir string
}

// NewFileImageStore creates a new filesystem image store
func NewFileImageStore(baseDir string) domain.ImageStore {
	return &FileImageStore{baseDir: baseDir}
}

// Store implements domain.ImageStore
func (s *FileImageStore) Store(data []byte, originalName, folder string) (string, error) {
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	path := filepath.Join(dir, uniqueName(originalName))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return path, nil
}

// uniqueName combines a fresh UUID with the original file extension
func uniqueName(originalName string) string {
	ext := filepath.Ext(originalName)
	return uuid.NewString() + ext
}

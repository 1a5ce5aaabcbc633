// Package covers writes extracted cover images to disk.
package covers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

// Storage manages cover files under one directory.
// Thread-safe for concurrent operations.
type Storage struct {
	basePath string
	mu       sync.Mutex // Protects file operations
}

// NewStorage creates a Storage rooted at basePath, creating the directory
// if it doesn't exist.
func NewStorage(basePath string) (*Storage, error) {
	if basePath == "" {
		return nil, errors.New("base path cannot be empty")
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create covers directory: %w", err)
	}

	return &Storage{basePath: basePath}, nil
}

// Save writes image data as {id}{ext}, where ext is detected from the data.
// Returns the path written.
func (s *Storage) Save(id string, imgData []byte) (string, error) {
	if id == "" {
		return "", errors.New("ID cannot be empty")
	}
	if len(imgData) == 0 {
		return "", errors.New("image data cannot be empty")
	}

	path := s.Path(id, imgData)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(path, imgData, 0o644); err != nil {
		return "", fmt.Errorf("write cover file: %w", err)
	}
	return path, nil
}

// Path returns the file path Save would use for id and imgData.
func (s *Storage) Path(id string, imgData []byte) string {
	return filepath.Join(s.basePath, id+Extension(imgData))
}

// Extension returns the file extension for encoded image data, detected from
// its content. Unrecognized data gets ".bin".
func Extension(imgData []byte) string {
	if ext := mimetype.Detect(imgData).Extension(); ext != "" {
		return ext
	}
	return ".bin"
}

package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps the serialized history in a single JSON file.
type FileBackend struct {
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history file: %w", err)
	}
	return data, nil
}

// Save writes to a temporary file first and renames it over the target, so a
// reader never observes a partial write.
func (b *FileBackend) Save(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o750); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	tempPath := b.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0o600); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	if err := os.Rename(tempPath, b.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("rename history file: %w", err)
	}
	return nil
}

// Remove deletes the file. A missing file is not an error.
func (b *FileBackend) Remove(_ context.Context) error {
	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete history file: %w", err)
	}
	return nil
}

package registry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/adapter-deploy/internal/domain"
	"github.com/trebuchet-org/adapter-deploy/internal/domain/config"
	"github.com/trebuchet-org/adapter-deploy/internal/usecase"
)

// FileStore stores the adapter registry as a single JSON file
type FileStore struct {
	path string
}

// NewFileStore creates a store for the registry file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// NewFileStoreFromConfig creates a store for the configured registry file
func NewFileStoreFromConfig(cfg *config.RuntimeConfig) *FileStore {
	return NewFileStore(cfg.RegistryPath)
}

// Path returns the registry file path
func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the registry file is present
func (s *FileStore) Exists(ctx context.Context) (bool, error) {
	info, err := os.Stat(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidRegistry, s.path)
	}
	return true, nil
}

// Load reads and parses the registry file
func (s *FileStore) Load(ctx context.Context) (*domain.Registry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRegistryNotFound, s.path)
	}
	if err != nil {
		return nil, err
	}

	registry, err := domain.DecodeRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidRegistry, s.path, err)
	}
	return registry, nil
}

// Save overwrites the registry file with the full registry
func (s *FileStore) Save(ctx context.Context, registry *domain.Registry) error {
	data, err := registry.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode registry: %w", err)
	}

	mode := os.FileMode(0644)
	if info, err := os.Stat(s.path); err == nil {
		mode = info.Mode().Perm()
	}

	// Write to temp file first
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, s.path)
}

// Ensure FileStore implements RegistryStore
var _ usecase.RegistryStore = (*FileStore)(nil)

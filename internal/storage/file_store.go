// Package storage implements a file-backed durable key-value store.
//
// The default store when no Redis URL is configured. All keys live in one JSON
// object file; every Set rewrites the file, which is acceptable for the single
// small favorites payload this application persists.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krywa5/forkify/internal/domain"
)

// FileStore implements domain.KeyValueStore over a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store persisting to path. The parent directory is
// created if missing; the file itself is created on first Set.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Get returns the value at key, or domain.ErrKeyNotFound when the key or the
// whole file is absent.
func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	data, err := s.read()
	if err != nil {
		return "", err
	}
	val, ok := data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return val, nil
}

// Set stores value at key and rewrites the file.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	data[key] = value

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal storage file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("storage file is corrupt: %w", err)
	}
	return data, nil
}

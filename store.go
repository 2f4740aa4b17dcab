package stylebot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// MemoryStore is an in-process Store. It is the default for embedding
// hosts that handle durability themselves, and for tests.
type MemoryStore struct {
	mu     sync.Mutex
	styles StyleMap
}

// NewMemoryStore creates a MemoryStore seeded with the given map. A nil
// seed starts empty.
func NewMemoryStore(seed StyleMap) *MemoryStore {
	if seed == nil {
		seed = StyleMap{}
	}
	return &MemoryStore{styles: seed.Clone()}
}

// Load returns a copy of the stored map.
func (s *MemoryStore) Load(_ context.Context) (StyleMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.styles.Clone(), nil
}

// Save replaces the stored map.
func (s *MemoryStore) Save(_ context.Context, styles StyleMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.styles = styles.Clone()
	return nil
}

// FileStore persists the style map as a JSON document on disk. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated document behind.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a FileStore writing to path. The file and its
// parent directory are created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the style map from disk. A missing file is an empty map,
// not an error.
func (s *FileStore) Load(_ context.Context) (StyleMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return StyleMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read styles file: %w", err)
	}

	styles := StyleMap{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &styles); err != nil {
			return nil, fmt.Errorf("decode styles file %s: %w", s.path, err)
		}
	}
	return styles, nil
}

// Save writes the style map to disk atomically.
func (s *FileStore) Save(_ context.Context, styles StyleMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(styles, "", "  ")
	if err != nil {
		return fmt.Errorf("encode styles: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create styles dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".styles-*.json")
	if err != nil {
		return fmt.Errorf("create temp styles file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write styles file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close styles file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace styles file: %w", err)
	}
	return nil
}

package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store persists preference values as a flat key-value JSON object.
// Reads never fail: a missing file, unreadable file, or corrupt content
// all behave as "no value stored".
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the file at path.
// The file is created lazily on first write.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value stored under key.
// Any read failure is reported as "not found".
func (s *Store) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.read()
	v, ok := entries[key]
	return v, ok
}

// Set writes value under key, preserving any other entries in the file.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.read()
	if entries == nil {
		entries = make(map[string]string, 1)
	}
	entries[key] = value

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	// Write-then-rename so a concurrent reader never sees a partial file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	return os.Rename(tmp, s.path)
}

// read loads the entry map, returning nil on any failure.
func (s *Store) read() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil
	}
	return entries
}

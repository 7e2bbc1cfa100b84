package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// YAMLStore keeps settings as a flat YAML mapping in a single file.
type YAMLStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// OpenYAML loads the file at path. A missing file yields an empty store;
// the file is created on the first write.
func OpenYAML(path string) (*YAMLStore, error) {
	store := &YAMLStore{path: path, values: make(map[string]string)}
	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("read settings file: %w", err)
	}
	if err := yaml.Unmarshal(rawData, &store.values); err != nil {
		return nil, fmt.Errorf("parse settings yaml: %w", err)
	}
	if store.values == nil {
		store.values = make(map[string]string)
	}
	return store, nil
}

func (s *YAMLStore) Path() string {
	return s.path
}

func (s *YAMLStore) GetSetting(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// SetSetting updates key and rewrites the file.
func (s *YAMLStore) SetSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	s.values[key] = value
	if err := s.flushLocked(); err != nil {
		s.restoreLocked(key, prev, had)
		return err
	}
	return nil
}

// DeleteSetting removes key and rewrites the file.
func (s *YAMLStore) DeleteSetting(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[key]
	if !had {
		return nil
	}
	delete(s.values, key)
	if err := s.flushLocked(); err != nil {
		s.restoreLocked(key, prev, had)
		return err
	}
	return nil
}

// restoreLocked puts back the value a failed flush was about to replace,
// keeping memory in step with the file.
func (s *YAMLStore) restoreLocked(key, prev string, had bool) {
	if had {
		s.values[key] = prev
		return
	}
	delete(s.values, key)
}

func (s *YAMLStore) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	serialized, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}
	if err := os.WriteFile(s.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}

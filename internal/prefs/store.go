// Package prefs persists session settings and the completed cycle count
// through a synchronous key-value store. Every read failure falls back to
// defaults and write failures are reported but never fatal.
package prefs

import "sync"

// Store is a synchronous key-value settings provider.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=prefs
type Store interface {
	GetSetting(key string) (string, bool)
	SetSetting(key, value string) error
}

// MemoryStore keeps settings for the lifetime of the process only. It is
// the fallback when no durable store can be opened.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) GetSetting(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) SetSetting(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) DeleteSetting(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

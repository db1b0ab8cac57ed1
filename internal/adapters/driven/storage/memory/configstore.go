package memory

import (
	"sync"

	"github.com/custodia-labs/droppath/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps droppath settings (platform, targets.recursive,
// history.limit) in a map for the lifetime of the process. Nothing is
// written to disk, so --memory runs leave ~/.droppath untouched.
type ConfigStore struct {
	mu       sync.RWMutex
	settings map[string]any
}

// NewConfigStore returns an empty store; every setting reads as its default.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{settings: make(map[string]any)}
}

// Get returns the raw value stored under key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.settings[key]
	return v, ok
}

// lookup returns the value under key when it has type T.
func lookup[T any](s *ConfigStore, key string) (T, bool) {
	raw, ok := s.Get(key)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}

// GetString returns the platform name or another string setting.
func (s *ConfigStore) GetString(key string) string {
	v, _ := lookup[string](s, key)
	return v
}

// GetInt accepts int and int64 so values behave the same as after a
// TOML round trip through the file store.
func (s *ConfigStore) GetInt(key string) int {
	if v, ok := lookup[int](s, key); ok {
		return v
	}
	v, _ := lookup[int64](s, key)
	return int(v)
}

func (s *ConfigStore) GetBool(key string) bool {
	v, _ := lookup[bool](s, key)
	return v
}

// Set replaces the value under key. It never fails.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	s.settings[key] = value
	s.mu.Unlock()
	return nil
}

// Load has nothing to read.
func (s *ConfigStore) Load() error { return nil }

// Path reports ":memory:"; there is no file.
func (s *ConfigStore) Path() string { return ":memory:" }

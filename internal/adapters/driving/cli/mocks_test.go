package cli

import (
	"slices"
	"sync"

	"github.com/custodia-labs/iso4217/internal/core/ports/driven"
)

// mockConfigStore implements driven.ConfigStore in memory.
// Set persists immediately, like the file store, so saves counts Set calls too.
type mockConfigStore struct {
	mu     sync.Mutex
	values map[string]any
	saves  int
}

var _ driven.ConfigStore = (*mockConfigStore)(nil)

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{values: map[string]any{}}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	v, _ := m.Get(key)
	s, _ := v.(string)
	return s
}

func (m *mockConfigStore) GetBool(key string) bool {
	v, _ := m.Get(key)
	b, _ := v.(bool)
	return b
}

func (m *mockConfigStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.saves++
	return nil
}

func (m *mockConfigStore) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	return nil
}

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return ":memory:" }

// Saves returns how many times the store was persisted.
func (m *mockConfigStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

package db

import (
	"context"
	"fmt"
	"sync"
)

// MockKVStore simulates the key-value store in memory for testing purposes.
type MockKVStore struct {
	data    map[string]string
	mu      sync.RWMutex
	context context.Context
}

// NewMockKVStore initializes a new MockKVStore.
func NewMockKVStore(ctx context.Context) *MockKVStore {
	return &MockKVStore{
		data:    make(map[string]string),
		context: ctx,
	}
}

// Set stores a key-value pair in the mock store.
func (m *MockKVStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock store.
func (m *MockKVStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return value, nil
}

// Del removes a key from the mock store.
func (m *MockKVStore) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// GetContext returns the mock store's context.
func (m *MockKVStore) GetContext() context.Context {
	return m.context
}

// Ping simulates a connectivity check; the mock is always reachable.
func (m *MockKVStore) Ping() error {
	return nil
}

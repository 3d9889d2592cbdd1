package db

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	data       map[string]string // Key-value store
	mu         sync.RWMutex      // Mutex for thread-safe operations
	context    context.Context
	writeError error // When set, Set fails with this error and stores nothing
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		data:    make(map[string]string),
		context: ctx,
	}
}

// FailWritesWith makes every subsequent Set fail with the given error,
// leaving stored data untouched. Pass nil to restore normal writes.
func (m *MockRedisClient) FailWritesWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeError = err
}

// Set stores a key-value pair in the mock Redis.
func (m *MockRedisClient) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeError != nil {
		return m.writeError
	}
	m.data[key] = value
	return nil
}

// Get retrieves a value for a given key from the mock Redis.
func (m *MockRedisClient) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, exists := m.data[key]
	if !exists {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return value, nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	// Always return nil (indicating Redis is "reachable").
	log.Println("MockRedisClient: Ping successful")
	return nil
}

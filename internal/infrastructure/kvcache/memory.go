package kvcache

import (
	"context"
	"sync"
)

// MemoryBlobs is a process-local BlobStore.
type MemoryBlobs struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryBlobs() *MemoryBlobs {
	return &MemoryBlobs{data: make(map[string]string)}
}

func (m *MemoryBlobs) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryBlobs) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.data[key] = value
	m.mu.Unlock()
	return nil
}

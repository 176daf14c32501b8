package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore is an in-process ObjectStore for local runs without a bucket.
// Presigned URLs are the plain retrieval URLs.
type MemoryStore struct {
	mu      sync.Mutex
	base    string
	objects map[string][]byte

	// FailDelete makes Delete fail, for exercising partial-failure paths.
	FailDelete bool
}

var _ ObjectStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store whose URLs start with base.
func NewMemoryStore(base string) *MemoryStore {
	return &MemoryStore{base: base, objects: make(map[string][]byte)}
}

func (m *MemoryStore) Put(_ context.Context, key, _ string, body []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), body...)
	return urlFor(m.base, key), nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDelete {
		return fmt.Errorf("delete object %s: store unavailable", key)
	}
	delete(m.objects, key)
	return nil
}

func (m *MemoryStore) KeyFromURL(rawURL string) (string, error) {
	return keyFromURL(m.base, rawURL)
}

func (m *MemoryStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return urlFor(m.base, key), nil
}

// Has reports whether key is stored.
func (m *MemoryStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

// Len is the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

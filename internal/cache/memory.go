package cache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// Memory is a concurrency-safe in-memory cache with per-entry expiry.
type Memory struct {
	mu   sync.RWMutex
	data map[string]memoryEntry

	// now is injectable for tests.
	now func() time.Time
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

// Get returns the cached value for key if present and not expired.
func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.data[key]
	if !ok || m.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl removes the entry.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		delete(m.data, key)
		return nil
	}

	m.data[key] = memoryEntry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
	return nil
}

// Prune removes expired entries and reports how many were dropped.
func (m *Memory) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now()
	removed := 0
	for key, e := range m.data {
		if cutoff.After(e.expiresAt) {
			delete(m.data, key)
			removed++
		}
	}
	return removed
}

// Close is a no-op for the in-memory cache.
func (m *Memory) Close() error {
	return nil
}

// Package cache provides the built-in in-memory render cache. Entries expire
// lazily: an expired value is treated as a miss and dropped on access.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value   string
	expires time.Time
}

// Memory is a mutex-guarded map cache with per-entry TTL. The zero value is
// not usable; construct with New.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

// New constructs an empty Memory cache.
func New() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for key when present and unexpired.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		delete(m.entries, key)
		return "", false
	}
	return e.value, true
}

// Set stores value under key for ttl. A non-positive ttl stores without
// expiry. Concurrent writers race last-write-wins, which is safe here because
// values are deterministic for a given key.
func (m *Memory) Set(key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := entry{value: value}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.entries[key] = e
}

// Clear removes every entry whose key starts with prefix. An empty prefix
// clears the whole cache.
func (m *Memory) Clear(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if prefix == "" {
		m.entries = make(map[string]entry)
		return
	}
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
}

// Len reports the number of stored entries, expired or not.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

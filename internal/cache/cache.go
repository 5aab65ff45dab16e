// Package cache provides the memoization layer for the analysis pipeline.
// The store is injected; handlers and services never touch a global map.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store is a minimal TTL cache. Get reports a miss for absent or stale
// entries; Set overwrites unconditionally.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Key normalizes raw URL text into a cache key
func Key(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-process Store. Stale entries are never swept; they are
// ignored on lookup and replaced on the next Set for the same key.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemory creates an in-memory store
func NewMemory() *Memory {
	return NewMemoryWithClock(time.Now)
}

// NewMemoryWithClock creates an in-memory store with an injectable clock
func NewMemoryWithClock(now func() time.Time) *Memory {
	return &Memory{
		entries: make(map[string]memoryEntry),
		now:     now,
	}
}

// Get retrieves a live entry; stale entries count as misses
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok || !m.now().Before(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

// Set stores a value, replacing any previous entry for the key
func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = memoryEntry{
		value:     value,
		expiresAt: m.now().Add(ttl),
	}
	return nil
}

// Len reports the number of entries, stale ones included
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Package cache provides the injected key/value store async validators use
// to guard redundant external checks. Implementations offer per-entry TTL
// expiry and last-write-wins semantics on key collision; there is no
// request-coalescing guarantee, so concurrent validations of the same key may
// both miss and both perform the underlying check.
package cache

import (
	"context"
	"sync"
	"time"
)

// Cache is the dependency async validators receive. A zero TTL stores the
// entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) (any, bool)
	Set(ctx context.Context, key string, value any, ttl time.Duration)
	Clear(ctx context.Context) error
}

type memoryEntry struct {
	value     any
	expiresAt time.Time // zero means no expiry
}

// Memory is a bounded in-process Cache. When at capacity, the
// oldest-inserted key is evicted; overwriting a key keeps its original
// insertion position. The clock is injectable so tests control time without
// sleeping.
type Memory struct {
	mu      sync.Mutex
	max     int
	entries map[string]memoryEntry
	order   []string
	now     func() time.Time
}

// MemoryOption configures NewMemory.
type MemoryOption func(*Memory)

// WithClock replaces the time source.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) { m.now = now }
}

// NewMemory builds a Memory cache holding at most max entries; max <= 0
// falls back to a capacity of 1000.
func NewMemory(max int, opts ...MemoryOption) *Memory {
	if max <= 0 {
		max = 1000
	}
	m := &Memory{
		max:     max,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) Get(ctx context.Context, key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.remove(key)
		return nil, false
	}
	return e.value, true
}

func (m *Memory) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var expires time.Time
	if ttl > 0 {
		expires = m.now().Add(ttl)
	}
	if _, exists := m.entries[key]; exists {
		m.entries[key] = memoryEntry{value: value, expiresAt: expires}
		return
	}
	if len(m.entries) >= m.max && len(m.order) > 0 {
		m.remove(m.order[0])
	}
	m.entries[key] = memoryEntry{value: value, expiresAt: expires}
	m.order = append(m.order, key)
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
	m.order = nil
	return nil
}

// Len reports the current number of entries, counting expired ones not yet
// collected by a Get.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) remove(key string) {
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

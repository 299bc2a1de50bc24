// Package intern provides a process-scoped canonicalization cache: a mapping
// from a normalized construction key to the single live value for that key.
package intern

import "sync"

// Cache guarantees referential identity per key: every call to Intern with a
// given key returns the value that the first successful call stored. Callers
// keep one Cache per value type.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
}

// New creates an empty Cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]V)}
}

// Intern returns the value stored under key, building and storing it via
// build on first use. The check-build-insert sequence is a single critical
// section, so goroutines racing on the same key observe one winner and build
// runs at most once per stored key. If build fails, nothing is stored and
// the error propagates to the caller.
func (c *Cache[K, V]) Intern(key K, build func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		return v, nil
	}

	v, err := build()
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries[key] = v
	return v, nil
}

// Len reports the number of interned entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Package inmemory provides a process-local counter for the creation quota.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/Igbinosa-Christian/scissorapp/internal/limiter"
)

// Check interface implementation explicitly
var (
	_ limiter.Counter = (*Counter)(nil)
)

type entry struct {
	count   int64
	expires time.Time
}

// Counter struct defines data structure handling and provides support for adding new implementations.
type Counter struct {
	mu      sync.Mutex
	entries map[string]entry
}

// InitCounter initializes a Counter object.
func InitCounter() *Counter {
	return &Counter{
		entries: make(map[string]entry),
	}
}

// Increment raises the counter under key by one, starting a fresh window when the previous one expired.
func (c *Counter) Increment(_ context.Context, key string, expiry time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	e, ok := c.entries[key]
	if !ok || now.After(e.expires) {
		e = entry{count: 0, expires: now.Add(expiry)}
	}
	e.count++
	c.entries[key] = e
	return e.count, nil
}

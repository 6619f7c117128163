// Package limiter provides interfaces for types to be in compliance with.
package limiter

import (
	"context"
	"time"
)

// Counter defines a set of methods for types implementing Counter.
// Increment raises the counter stored under key by one and returns the new
// value; the expiry is applied when the key is first created so the counter
// resets one window after the first hit.
type Counter interface {
	Increment(ctx context.Context, key string, expiry time.Duration) (int64, error)
}

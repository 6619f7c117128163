// Package geo provides interfaces for types to be in compliance with.
package geo

import "context"

// Resolver defines a set of methods for types implementing Resolver.
type Resolver interface {
	ResolveLocation(ctx context.Context) string
}

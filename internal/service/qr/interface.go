// Package qr provides interfaces for types to be in compliance with.
package qr

// Generator defines a set of methods for types implementing Generator.
type Generator interface {
	Generate(reachableURL string) (imgName string, err error)
}

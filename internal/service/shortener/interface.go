// Package shortener provides interfaces for types to be in compliance with.
package shortener

import (
	"context"

	"github.com/Igbinosa-Christian/scissorapp/internal/service/modellink"
)

// Creator defines a set of methods for types implementing Creator.
type Creator interface {
	CreateLink(ctx context.Context, owner string, originalURL string, customAlias string) (modellink.Link, error)
}

// Resolver defines a set of methods for types implementing Resolver.
type Resolver interface {
	Resolve(ctx context.Context, shortURL string) (modellink.Link, error)
	GetByID(ctx context.Context, id int64) (modellink.Link, error)
}

// Deleter defines a set of methods for types implementing Deleter.
type Deleter interface {
	Delete(ctx context.Context, requester string, id int64) error
}

// Historian defines a set of methods for types implementing Historian.
type Historian interface {
	History(ctx context.Context, owner string) ([]modellink.Link, error)
}

// Processor defines a set of embedded interfaces for types implementing Processor.
type Processor interface {
	Creator
	Resolver
	Deleter
	Historian
}

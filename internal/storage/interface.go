// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/Igbinosa-Christian/scissorapp/internal/storage/modelstorage"
)

// UserSetter defines a set of methods for types implementing UserSetter.
type UserSetter interface {
	AddUser(ctx context.Context, user modelstorage.UserEntry) (modelstorage.UserEntry, error)
}

// UserGetter defines a set of methods for types implementing UserGetter.
type UserGetter interface {
	GetUserByUsername(ctx context.Context, username string) (modelstorage.UserEntry, error)
}

// LinkSetter defines a set of methods for types implementing LinkSetter.
type LinkSetter interface {
	AddLink(ctx context.Context, link modelstorage.LinkEntry) (modelstorage.LinkEntry, error)
}

// LinkGetter defines a set of methods for types implementing LinkGetter.
type LinkGetter interface {
	GetLinkByShortURL(ctx context.Context, shortURL string) (modelstorage.LinkEntry, error)
	GetLinkByID(ctx context.Context, id int64) (modelstorage.LinkEntry, error)
	GetLinkByOwnerAndURL(ctx context.Context, owner string, originalURL string) (modelstorage.LinkEntry, error)
	GetLinksByOwner(ctx context.Context, owner string) ([]modelstorage.LinkEntry, error)
}

// LinkDeleter defines a set of methods for types implementing LinkDeleter.
type LinkDeleter interface {
	DeleteLink(ctx context.Context, id int64) error
}

// VisitRegistrar defines a set of methods for types implementing VisitRegistrar.
type VisitRegistrar interface {
	RegisterVisit(ctx context.Context, linkID int64, location string) error
}

// VisitGetter defines a set of methods for types implementing VisitGetter.
type VisitGetter interface {
	GetVisitsByLinkID(ctx context.Context, linkID int64) ([]modelstorage.VisitLocationEntry, error)
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB() error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// UserStorage defines a set of embedded interfaces for types implementing UserStorage.
type UserStorage interface {
	UserSetter
	UserGetter
}

// LinkStorage defines a set of embedded interfaces for types implementing LinkStorage.
type LinkStorage interface {
	LinkSetter
	LinkGetter
	LinkDeleter
}

// VisitStorage defines a set of embedded interfaces for types implementing VisitStorage.
type VisitStorage interface {
	VisitRegistrar
	VisitGetter
}

// Storage defines a set of embedded interfaces for types implementing Storage.
type Storage interface {
	UserStorage
	LinkStorage
	VisitStorage
	Pinger
	Closer
}

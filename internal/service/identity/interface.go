// Package identity provides interfaces for types to be in compliance with.
package identity

import (
	"context"

	"github.com/Igbinosa-Christian/scissorapp/internal/service/modellink"
)

// Registrar defines a set of methods for types implementing Registrar.
type Registrar interface {
	Register(ctx context.Context, username string, email string, password string) (modellink.User, error)
}

// Authenticator defines a set of methods for types implementing Authenticator.
type Authenticator interface {
	Authenticate(ctx context.Context, username string, password string) (modellink.User, error)
}

// Processor defines a set of embedded interfaces for types implementing Processor.
type Processor interface {
	Registrar
	Authenticator
}
